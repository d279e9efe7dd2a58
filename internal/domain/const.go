package domain

import "time"

const (
	// Dedup constants
	DEFAULT_DEDUP_WINDOW    = 30 * time.Second
	DEFAULT_DEDUP_RETENTION = 120 * time.Second

	// NO_WALLET_FINGERPRINT is used in identity sync fingerprints when no wallet is supplied
	NO_WALLET_FINGERPRINT = "no-wallet"

	// Identity constants
	IDENTITY_PROVIDER_CROSSMINT = "crossmint"

	// Resolution constants
	AVAILABLE_SAMPLE_LIMIT = 20

	// Mint constants
	SIMULATED_TX_PREFIX       = "mock_tx_"
	DEFAULT_SIMULATED_DELAY   = 500 * time.Millisecond
	PRODUCTION_API_KEY_PREFIX = "sk_production"

	// Payment constants
	DEFAULT_PAYMENT_ASSET = "USDXM"

	// Health check timeout per dependency
	HEALTH_CHECK_TIMEOUT = 3 * time.Second
)
