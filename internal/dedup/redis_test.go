package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisGuard(t *testing.T) (Guard, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisGuard(client, Config{Window: 30 * time.Second, Retention: 120 * time.Second}, "test:"), s
}

func TestRedisGuard_Claim(t *testing.T) {
	ctx := context.Background()
	guard, s := newTestRedisGuard(t)
	now := time.Now()
	fp := IdentitySyncFingerprint("user-1", nil)

	claimed, err := guard.Claim(ctx, fp, now)
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.True(t, s.Exists("test:user-1:no-wallet"))

	claimed, err = guard.Claim(ctx, fp, now.Add(10*time.Second))
	require.NoError(t, err)
	assert.False(t, claimed)

	claimed, err = guard.Claim(ctx, fp, now.Add(31*time.Second))
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestRedisGuard_ShouldSuppressAndRecordSeen(t *testing.T) {
	ctx := context.Background()
	guard, _ := newTestRedisGuard(t)
	now := time.Now()
	fp := WalletUpdateFingerprint("user-1", "0xabc")

	suppress, err := guard.ShouldSuppress(ctx, fp, now)
	require.NoError(t, err)
	assert.False(t, suppress)

	require.NoError(t, guard.RecordSeen(ctx, fp, now))

	suppress, err = guard.ShouldSuppress(ctx, fp, now.Add(29*time.Second))
	require.NoError(t, err)
	assert.True(t, suppress)

	suppress, err = guard.ShouldSuppress(ctx, fp, now.Add(30*time.Second))
	require.NoError(t, err)
	assert.False(t, suppress)
}

func TestRedisGuard_RetentionExpiresKeys(t *testing.T) {
	ctx := context.Background()
	guard, s := newTestRedisGuard(t)
	now := time.Now()

	require.NoError(t, guard.RecordSeen(ctx, "user-1:no-wallet", now))
	assert.True(t, s.Exists("test:user-1:no-wallet"))

	s.FastForward(121 * time.Second)
	assert.False(t, s.Exists("test:user-1:no-wallet"))
	require.NoError(t, guard.Sweep(ctx, now))
}

func TestRedisGuard_ErrorsWhenUnavailable(t *testing.T) {
	ctx := context.Background()
	guard, s := newTestRedisGuard(t)
	s.Close()

	_, err := guard.Claim(ctx, "user-1:no-wallet", time.Now())
	assert.Error(t, err)
}
