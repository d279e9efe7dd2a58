package dedup

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "ff-market:dedup:"

// claimScript stores the last-seen timestamp unless it falls inside the window.
// KEYS[1] fingerprint key, ARGV[1] now (ms), ARGV[2] window (ms), ARGV[3] retention (ms).
var claimScript = redis.NewScript(`
local last = redis.call("GET", KEYS[1])
if last and (tonumber(ARGV[1]) - tonumber(last)) < tonumber(ARGV[2]) then
  return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[3])
return 1
`)

type redisGuard struct {
	client redis.Cmdable
	cfg    Config
	prefix string
}

// NewRedisGuard creates a guard shared by every instance using the same Redis.
// Retention is enforced by key expiry so Sweep is a no-op.
func NewRedisGuard(client redis.Cmdable, cfg Config, prefix string) Guard {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &redisGuard{
		client: client,
		cfg:    cfg.normalize(),
		prefix: prefix,
	}
}

func (g *redisGuard) key(fingerprint string) string {
	return g.prefix + fingerprint
}

func (g *redisGuard) ShouldSuppress(ctx context.Context, fingerprint string, now time.Time) (bool, error) {
	raw, err := g.client.Get(ctx, g.key(fingerprint)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read fingerprint: %w", err)
	}

	lastMS, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("invalid fingerprint timestamp: %w", err)
	}

	return now.UnixMilli()-lastMS < g.cfg.Window.Milliseconds(), nil
}

func (g *redisGuard) RecordSeen(ctx context.Context, fingerprint string, now time.Time) error {
	err := g.client.Set(ctx, g.key(fingerprint), now.UnixMilli(), g.cfg.Retention).Err()
	if err != nil {
		return fmt.Errorf("failed to record fingerprint: %w", err)
	}
	return nil
}

func (g *redisGuard) Claim(ctx context.Context, fingerprint string, now time.Time) (bool, error) {
	res, err := claimScript.Run(ctx, g.client, []string{g.key(fingerprint)},
		now.UnixMilli(), g.cfg.Window.Milliseconds(), g.cfg.Retention.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to claim fingerprint: %w", err)
	}
	return res == 1, nil
}

func (g *redisGuard) Sweep(context.Context, time.Time) error {
	return nil
}
