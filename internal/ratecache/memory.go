package ratecache

import (
	"context"
	"sync"
	"time"

	"converterservice/internal/clock"
)

var _ Cache = (*MemoryCache)(nil)

type entry struct {
	rate      float64
	expiresAt time.Time
}

// MemoryCache keeps rates in a process-local map. Entries are replaced whole,
// so concurrent writers can only ever leave one complete entry behind.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[Pair]entry
	clock   clock.Clock
}

// NewMemoryCache creates an empty MemoryCache. A nil clock means wall time.
func NewMemoryCache(c clock.Clock) *MemoryCache {
	if c == nil {
		c = clock.Real{}
	}
	return &MemoryCache{
		entries: make(map[Pair]entry),
		clock:   c,
	}
}

// Get returns the cached rate for pair if it has not expired.
func (c *MemoryCache) Get(_ context.Context, pair Pair) (float64, bool) {
	c.mu.RLock()
	e, ok := c.entries[pair]
	c.mu.RUnlock()
	if !ok || !c.clock.Now().Before(e.expiresAt) {
		return 0, false
	}
	return e.rate, true
}

// Put stores rate for pair, expiring ttl from now.
func (c *MemoryCache) Put(_ context.Context, pair Pair, rate float64, ttl time.Duration) error {
	if !(rate > 0) {
		return ErrInvalidRate
	}
	e := entry{rate: rate, expiresAt: c.clock.Now().Add(ttl)}

	c.mu.Lock()
	c.entries[pair] = e
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, stale ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
