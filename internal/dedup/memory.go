package dedup

import (
	"context"
	"sync"
	"time"
)

type memoryGuard struct {
	mu       sync.Mutex
	cfg      Config
	lastSeen map[string]time.Time
}

// NewMemoryGuard creates a process-local guard.
// Every call evicts fingerprints older than the retention.
func NewMemoryGuard(cfg Config) Guard {
	return &memoryGuard{
		cfg:      cfg.normalize(),
		lastSeen: make(map[string]time.Time),
	}
}

func (g *memoryGuard) ShouldSuppress(_ context.Context, fingerprint string, now time.Time) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sweep(now)
	return g.suppressed(fingerprint, now), nil
}

func (g *memoryGuard) RecordSeen(_ context.Context, fingerprint string, now time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sweep(now)
	g.lastSeen[fingerprint] = now
	return nil
}

func (g *memoryGuard) Claim(_ context.Context, fingerprint string, now time.Time) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sweep(now)
	if g.suppressed(fingerprint, now) {
		return false, nil
	}
	g.lastSeen[fingerprint] = now
	return true, nil
}

func (g *memoryGuard) Sweep(_ context.Context, now time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sweep(now)
	return nil
}

// Len returns the number of retained fingerprints
func (g *memoryGuard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.lastSeen)
}

func (g *memoryGuard) suppressed(fingerprint string, now time.Time) bool {
	seen, ok := g.lastSeen[fingerprint]
	return ok && now.Sub(seen) < g.cfg.Window
}

func (g *memoryGuard) sweep(now time.Time) {
	for fingerprint, seen := range g.lastSeen {
		if now.Sub(seen) > g.cfg.Retention {
			delete(g.lastSeen, fingerprint)
		}
	}
}
