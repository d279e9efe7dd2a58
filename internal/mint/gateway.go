package mint

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/adapter"
	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
	"github.com/feral-file/ff-marketplace/internal/providers/crossmint"
)

const (
	ModeLive      = "live"
	ModeSimulated = "simulated"
)

// Result is the outcome of a mint call
type Result struct {
	// TransactionID is nil when the provider accepted the call without returning an id
	TransactionID *string
	// Raw is the provider response body, echoed to clients as crossmintData
	Raw       map[string]interface{}
	Simulated bool
}

// Gateway mints collectibles to a wallet
//
//go:generate mockgen -source=gateway.go -destination=../mocks/mint_gateway.go -package=mocks -mock_names=Gateway=MockMintGateway
type Gateway interface {
	Mint(ctx context.Context, buyerWallet string, metadataURL string) (*Result, error)
}

// Config holds the gateway selection settings
type Config struct {
	Mode                   string
	DevCertificateFallback bool
	SimulatedDelay         time.Duration
}

// NewGateway selects the gateway strategy for the configured mode
func NewGateway(cfg Config, client crossmint.Client, clock adapter.Clock) Gateway {
	simulated := NewSimulatedGateway(clock, cfg.SimulatedDelay)
	if cfg.Mode == ModeSimulated {
		logger.Info("Mint gateway running in simulated mode", zap.Duration("delay", cfg.SimulatedDelay))
		return simulated
	}

	live := NewLiveGateway(client)
	if !cfg.DevCertificateFallback {
		return live
	}

	if client.IsProductionKey() {
		logger.Warn("Ignoring certificate fallback for a production API key")
		return live
	}

	logger.Warn("Mint gateway falls back to simulation on certificate errors")
	return &devFallbackGateway{live: live, fallback: simulated}
}

type liveGateway struct {
	client crossmint.Client
}

// NewLiveGateway creates a gateway that mints through Crossmint
func NewLiveGateway(client crossmint.Client) Gateway {
	return &liveGateway{client: client}
}

func (g *liveGateway) Mint(ctx context.Context, buyerWallet string, metadataURL string) (*Result, error) {
	resp, err := g.client.Mint(ctx, crossmint.MintRequest{
		To:       buyerWallet,
		Metadata: metadataURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMintGatewayFailed, err)
	}

	result := &Result{Raw: resp.Raw}
	if resp.TransactionID != "" {
		txID := resp.TransactionID
		result.TransactionID = &txID
	}

	return result, nil
}

type simulatedGateway struct {
	clock adapter.Clock
	delay time.Duration
}

// NewSimulatedGateway creates a gateway that fabricates pending transactions without network access
func NewSimulatedGateway(clock adapter.Clock, delay time.Duration) Gateway {
	if delay < 0 {
		delay = domain.DEFAULT_SIMULATED_DELAY
	}
	return &simulatedGateway{clock: clock, delay: delay}
}

func (g *simulatedGateway) Mint(ctx context.Context, buyerWallet string, metadataURL string) (*Result, error) {
	if g.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", domain.ErrMintGatewayFailed, ctx.Err())
		case <-g.clock.After(g.delay):
		}
	}

	txID := fmt.Sprintf("%s%d", domain.SIMULATED_TX_PREFIX, g.clock.Now().UnixMilli())
	logger.InfoCtx(ctx, "Simulated mint", logger.Wallet(buyerWallet), logger.TxID(txID))

	return &Result{
		TransactionID: &txID,
		Raw: map[string]interface{}{
			"transactionId": txID,
			"status":        "pending",
			"to":            buyerWallet,
			"metadata":      metadataURL,
		},
		Simulated: true,
	}, nil
}

// devFallbackGateway retries a failed live mint in simulation, only for certificate failures
type devFallbackGateway struct {
	live     Gateway
	fallback Gateway
}

func (g *devFallbackGateway) Mint(ctx context.Context, buyerWallet string, metadataURL string) (*Result, error) {
	result, err := g.live.Mint(ctx, buyerWallet, metadataURL)
	if err == nil {
		return result, nil
	}

	if domain.KindOf(err) != domain.ErrorKindCertificate {
		return nil, err
	}

	logger.WarnCtx(ctx, "Certificate error from mint provider, using simulated mint", zap.Error(err))
	return g.fallback.Mint(ctx, buyerWallet, metadataURL)
}
