package ratecache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"converterservice/internal/clock"
)

var testStart = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestMemoryCache_GetPut(t *testing.T) {
	ctx := context.Background()
	pair := Pair{From: "USD", To: "EUR"}

	t.Run("miss on empty cache", func(t *testing.T) {
		c := NewMemoryCache(clock.NewFake(testStart))
		_, ok := c.Get(ctx, pair)
		assert.False(t, ok)
	})

	t.Run("hit before expiry", func(t *testing.T) {
		clk := clock.NewFake(testStart)
		c := NewMemoryCache(clk)
		require.NoError(t, c.Put(ctx, pair, 0.92, time.Hour))

		clk.Advance(59 * time.Minute)
		rate, ok := c.Get(ctx, pair)
		assert.True(t, ok)
		assert.Equal(t, 0.92, rate)
	})

	t.Run("miss at exact expiry, entry kept", func(t *testing.T) {
		clk := clock.NewFake(testStart)
		c := NewMemoryCache(clk)
		require.NoError(t, c.Put(ctx, pair, 0.92, time.Hour))

		clk.Advance(time.Hour)
		_, ok := c.Get(ctx, pair)
		assert.False(t, ok)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("put overwrites stale entry", func(t *testing.T) {
		clk := clock.NewFake(testStart)
		c := NewMemoryCache(clk)
		require.NoError(t, c.Put(ctx, pair, 0.92, time.Hour))
		clk.Advance(2 * time.Hour)

		require.NoError(t, c.Put(ctx, pair, 0.95, time.Hour))
		rate, ok := c.Get(ctx, pair)
		assert.True(t, ok)
		assert.Equal(t, 0.95, rate)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("pairs are ordered", func(t *testing.T) {
		c := NewMemoryCache(clock.NewFake(testStart))
		require.NoError(t, c.Put(ctx, pair, 0.92, time.Hour))

		_, ok := c.Get(ctx, Pair{From: "EUR", To: "USD"})
		assert.False(t, ok)
	})

	t.Run("non-positive rate rejected", func(t *testing.T) {
		c := NewMemoryCache(clock.NewFake(testStart))
		assert.ErrorIs(t, c.Put(ctx, pair, 0, time.Hour), ErrInvalidRate)
		assert.ErrorIs(t, c.Put(ctx, pair, -1.5, time.Hour), ErrInvalidRate)
		assert.Equal(t, 0, c.Len())
	})
}

func TestMemoryCache_ConcurrentPut(t *testing.T) {
	ctx := context.Background()
	pair := Pair{From: "USD", To: "JPY"}
	c := NewMemoryCache(clock.NewFake(testStart))

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(rate float64) {
			defer wg.Done()
			_ = c.Put(ctx, pair, rate, time.Hour)
			_, _ = c.Get(ctx, pair)
		}(float64(i))
	}
	wg.Wait()

	rate, ok := c.Get(ctx, pair)
	require.True(t, ok)
	assert.GreaterOrEqual(t, rate, 1.0)
	assert.LessOrEqual(t, rate, 50.0)
	assert.Equal(t, 1, c.Len())
}

func TestPair_String(t *testing.T) {
	assert.Equal(t, "USD_EUR", Pair{From: "USD", To: "EUR"}.String())
}
