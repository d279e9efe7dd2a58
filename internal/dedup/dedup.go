package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/feral-file/ff-marketplace/internal/domain"
)

// Guard suppresses repeated requests carrying the same fingerprint within a short window.
// Suppression is best effort; it is not an exactly-once guarantee.
//
//go:generate mockgen -source=dedup.go -destination=../mocks/dedup.go -package=mocks -mock_names=Guard=MockDedupGuard
type Guard interface {
	// ShouldSuppress reports whether fingerprint was recorded within the window before now
	ShouldSuppress(ctx context.Context, fingerprint string, now time.Time) (bool, error)
	// RecordSeen marks fingerprint as seen at now
	RecordSeen(ctx context.Context, fingerprint string, now time.Time) error
	// Claim checks and marks fingerprint in one step and reports whether the caller may proceed
	Claim(ctx context.Context, fingerprint string, now time.Time) (bool, error)
	// Sweep evicts entries older than the retention period
	Sweep(ctx context.Context, now time.Time) error
}

// Config holds the guard timing configuration
type Config struct {
	Window    time.Duration
	Retention time.Duration
}

func (c Config) normalize() Config {
	if c.Window <= 0 {
		c.Window = domain.DEFAULT_DEDUP_WINDOW
	}
	if c.Retention <= 0 {
		c.Retention = domain.DEFAULT_DEDUP_RETENTION
	}
	if c.Retention < c.Window {
		c.Retention = c.Window
	}
	return c
}

// IdentitySyncFingerprint builds the fingerprint of an identity sync request
func IdentitySyncFingerprint(id string, walletAddress *string) string {
	wallet := domain.NO_WALLET_FINGERPRINT
	if walletAddress != nil && *walletAddress != "" {
		wallet = *walletAddress
	}
	return fmt.Sprintf("%s:%s", id, wallet)
}

// WalletUpdateFingerprint builds the fingerprint of a wallet binding update request
func WalletUpdateFingerprint(userID string, walletAddress string) string {
	return fmt.Sprintf("%s:%s", userID, walletAddress)
}
