// Package ratecache stores exchange rates per currency pair until they expire.
package ratecache

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidRate is returned by Put for rates that are not strictly positive.
var ErrInvalidRate = errors.New("rate must be positive")

// Pair is an ordered (from, to) currency tuple.
type Pair struct {
	From string
	To   string
}

// String returns the pair as FROM_TO.
func (p Pair) String() string {
	return p.From + "_" + p.To
}

// Cache is a time-bounded rate store. Get reports a hit only while the
// entry's expiry lies strictly in the future; stale entries are ignored
// until the next Put overwrites them.
type Cache interface {
	Get(ctx context.Context, pair Pair) (float64, bool)
	Put(ctx context.Context, pair Pair, rate float64, ttl time.Duration) error
}
