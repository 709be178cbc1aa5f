package ratecache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"converterservice/internal/clock"
)

var _ Cache = (*RedisCache)(nil)

// RedisCache shares rates between service instances through Redis.
// Expiry is decided by the injected clock against the stored expires_at
// field; the key TTL set in Redis only reclaims memory.
type RedisCache struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedisCache creates a RedisCache. A nil clock means wall time.
func NewRedisCache(client *redis.Client, c clock.Clock) *RedisCache {
	if c == nil {
		c = clock.Real{}
	}
	return &RedisCache{client: client, clock: c}
}

func (c *RedisCache) cacheKey(pair Pair) string {
	return fmt.Sprintf("rate_cache:{%s:%s}", pair.From, pair.To)
}

// Get reads the rate for pair. Any Redis or decoding error is reported as a miss.
func (c *RedisCache) Get(ctx context.Context, pair Pair) (float64, bool) {
	vals, err := c.client.HMGet(ctx, c.cacheKey(pair), "rate", "expires_at").Result()
	if err != nil || len(vals) != 2 || vals[0] == nil || vals[1] == nil {
		return 0, false
	}

	rateStr, ok1 := vals[0].(string)
	expStr, ok2 := vals[1].(string)
	if !ok1 || !ok2 {
		return 0, false
	}
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil {
		return 0, false
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, expStr)
	if err != nil {
		return 0, false
	}
	if !c.clock.Now().Before(expiresAt) {
		return 0, false
	}
	return rate, true
}

// Put writes both fields in a single HSET so readers never see a torn entry.
func (c *RedisCache) Put(ctx context.Context, pair Pair, rate float64, ttl time.Duration) error {
	if !(rate > 0) {
		return ErrInvalidRate
	}
	key := c.cacheKey(pair)
	expiresAt := c.clock.Now().Add(ttl)

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, key,
		"rate", strconv.FormatFloat(rate, 'f', -1, 64),
		"expires_at", expiresAt.UTC().Format(time.RFC3339Nano))
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis rate cache write %s: %w", pair, err)
	}
	return nil
}
