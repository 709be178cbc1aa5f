package ratecache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"converterservice/internal/clock"
)

func TestRedisCache_GetPut(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	ctx := context.Background()
	pair := Pair{From: "USD", To: "EUR"}

	t.Run("miss then hit", func(t *testing.T) {
		mr.FlushAll()
		c := NewRedisCache(rdb, clock.NewFake(testStart))

		_, ok := c.Get(ctx, pair)
		assert.False(t, ok)

		require.NoError(t, c.Put(ctx, pair, 0.856, time.Hour))
		rate, ok := c.Get(ctx, pair)
		assert.True(t, ok)
		assert.Equal(t, 0.856, rate)
	})

	t.Run("clock expiry", func(t *testing.T) {
		mr.FlushAll()
		clk := clock.NewFake(testStart)
		c := NewRedisCache(rdb, clk)
		require.NoError(t, c.Put(ctx, pair, 0.856, time.Hour))

		clk.Advance(time.Hour)
		_, ok := c.Get(ctx, pair)
		assert.False(t, ok)
	})

	t.Run("redis key ttl reclaims entry", func(t *testing.T) {
		mr.FlushAll()
		c := NewRedisCache(rdb, clock.NewFake(testStart))
		require.NoError(t, c.Put(ctx, pair, 0.856, time.Hour))

		mr.FastForward(time.Hour + time.Second)
		assert.False(t, mr.Exists("rate_cache:{USD:EUR}"))
	})

	t.Run("corrupt entry is a miss", func(t *testing.T) {
		mr.FlushAll()
		mr.HSet("rate_cache:{USD:EUR}", "rate", "abc", "expires_at", testStart.Add(time.Hour).Format(time.RFC3339Nano))
		c := NewRedisCache(rdb, clock.NewFake(testStart))

		_, ok := c.Get(ctx, pair)
		assert.False(t, ok)
	})

	t.Run("non-positive rate rejected", func(t *testing.T) {
		mr.FlushAll()
		c := NewRedisCache(rdb, clock.NewFake(testStart))
		assert.ErrorIs(t, c.Put(ctx, pair, 0, time.Hour), ErrInvalidRate)
		assert.False(t, mr.Exists("rate_cache:{USD:EUR}"))
	})

	t.Run("unreachable redis is a miss and a put error", func(t *testing.T) {
		dead := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
		defer func() { _ = dead.Close() }()
		c := NewRedisCache(dead, clock.NewFake(testStart))

		_, ok := c.Get(ctx, pair)
		assert.False(t, ok)
		assert.Error(t, c.Put(ctx, pair, 1.1, time.Hour))
	})
}
