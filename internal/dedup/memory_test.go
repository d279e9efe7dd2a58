package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGuard_SuppressesWithinWindow(t *testing.T) {
	ctx := context.Background()
	guard := NewMemoryGuard(Config{Window: 30 * time.Second, Retention: 120 * time.Second})
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	fp := IdentitySyncFingerprint("user-1", nil)

	suppress, err := guard.ShouldSuppress(ctx, fp, now)
	require.NoError(t, err)
	assert.False(t, suppress)

	require.NoError(t, guard.RecordSeen(ctx, fp, now))

	suppress, err = guard.ShouldSuppress(ctx, fp, now.Add(5*time.Second))
	require.NoError(t, err)
	assert.True(t, suppress)

	suppress, err = guard.ShouldSuppress(ctx, fp, now.Add(30*time.Second))
	require.NoError(t, err)
	assert.False(t, suppress, "window boundary is exclusive")

	suppress, err = guard.ShouldSuppress(ctx, "other:no-wallet", now.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, suppress)
}

func TestMemoryGuard_Claim(t *testing.T) {
	ctx := context.Background()
	guard := NewMemoryGuard(Config{})
	now := time.Now()
	fp := WalletUpdateFingerprint("user-1", "0xabc")

	claimed, err := guard.Claim(ctx, fp, now)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = guard.Claim(ctx, fp, now.Add(29*time.Second))
	require.NoError(t, err)
	assert.False(t, claimed)

	// A suppressed duplicate does not extend the window
	claimed, err = guard.Claim(ctx, fp, now.Add(31*time.Second))
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestMemoryGuard_SweepEvictsAfterRetention(t *testing.T) {
	ctx := context.Background()
	guard := NewMemoryGuard(Config{Window: 30 * time.Second, Retention: 120 * time.Second}).(*memoryGuard)
	now := time.Now()

	require.NoError(t, guard.RecordSeen(ctx, "a:no-wallet", now))
	require.NoError(t, guard.RecordSeen(ctx, "b:no-wallet", now.Add(100*time.Second)))
	assert.Equal(t, 2, guard.Len())

	require.NoError(t, guard.Sweep(ctx, now.Add(119*time.Second)))
	assert.Equal(t, 2, guard.Len())

	require.NoError(t, guard.Sweep(ctx, now.Add(121*time.Second)))
	assert.Equal(t, 1, guard.Len())
}

func TestMemoryGuard_SweepsOnEveryCall(t *testing.T) {
	ctx := context.Background()
	guard := NewMemoryGuard(Config{Window: 30 * time.Second, Retention: 120 * time.Second}).(*memoryGuard)
	now := time.Now()

	require.NoError(t, guard.RecordSeen(ctx, "a:no-wallet", now))

	_, err := guard.ShouldSuppress(ctx, "b:no-wallet", now.Add(100*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, guard.Len())

	// Less than a window after the previous call, the expired entry still goes
	proceed, err := guard.Claim(ctx, "c:no-wallet", now.Add(121*time.Second))
	require.NoError(t, err)
	assert.True(t, proceed)
	assert.Equal(t, 1, guard.Len())

	suppressed, err := guard.ShouldSuppress(ctx, "a:no-wallet", now.Add(121*time.Second))
	require.NoError(t, err)
	assert.False(t, suppressed)
}

func TestFingerprints(t *testing.T) {
	wallet := "0xabc"
	empty := ""

	assert.Equal(t, "user-1:0xabc", IdentitySyncFingerprint("user-1", &wallet))
	assert.Equal(t, "user-1:no-wallet", IdentitySyncFingerprint("user-1", nil))
	assert.Equal(t, "user-1:no-wallet", IdentitySyncFingerprint("user-1", &empty))
	assert.Equal(t, "user-1:0xabc", WalletUpdateFingerprint("user-1", "0xabc"))
}

func TestConfig_Normalize(t *testing.T) {
	cfg := Config{}.normalize()
	assert.Equal(t, 30*time.Second, cfg.Window)
	assert.Equal(t, 120*time.Second, cfg.Retention)

	cfg = Config{Window: time.Minute, Retention: time.Second}.normalize()
	assert.Equal(t, time.Minute, cfg.Retention)
}
