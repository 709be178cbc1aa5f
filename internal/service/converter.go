// Package service implements currency conversion on top of the rate cache and provider.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"converterservice/internal/metrics"
	"converterservice/internal/provider"
	"converterservice/internal/ratecache"
)

// RateTTL is how long a fetched rate is served from cache.
const RateTTL = time.Hour

// ConverterInterface defines the operations the HTTP layer needs.
type ConverterInterface interface {
	Convert(ctx context.Context, amount float64, from, to string) (*ConversionResult, error)
	SupportedCurrencies(ctx context.Context) CurrencyList
	Rates(ctx context.Context, base string) ([]byte, error)
}

// ConversionResult is the outcome of a successful conversion.
type ConversionResult struct {
	Amount float64
	From   string
	To     string
	Result float64
}

// Converter answers conversions from cached rates, fetching on a miss.
type Converter struct {
	cache   ratecache.Cache
	fetcher provider.RateFetcher
	log     *zap.SugaredLogger
	flight  singleflight.Group
}

var _ ConverterInterface = (*Converter)(nil)

// NewConverter creates a Converter.
func NewConverter(cache ratecache.Cache, fetcher provider.RateFetcher, logger *zap.SugaredLogger) *Converter {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Converter{
		cache:   cache,
		fetcher: fetcher,
		log:     logger,
	}
}

// Convert converts amount from one currency to another, rounding the result
// to two decimal places (half away from zero). Converting a currency to itself
// returns amount untouched without consulting the cache or provider.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) (*ConversionResult, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidInput
	}
	from, err := NormalizeCode(from)
	if err != nil {
		return nil, err
	}
	to, err = NormalizeCode(to)
	if err != nil {
		return nil, err
	}

	res := &ConversionResult{Amount: amount, From: from, To: to}
	if from == to {
		res.Result = amount
		return res, nil
	}

	rate, err := c.rate(ctx, ratecache.Pair{From: from, To: to})
	if err != nil {
		return nil, err
	}
	res.Result = roundProduct(amount, rate)
	if math.IsInf(res.Result, 0) {
		return nil, fmt.Errorf("%w: %v %s is out of range in %s", ErrInvalidInput, amount, from, to)
	}
	return res, nil
}

func (c *Converter) rate(ctx context.Context, pair ratecache.Pair) (float64, error) {
	if rate, ok := c.cache.Get(ctx, pair); ok {
		metrics.RateCacheHits.Inc()
		return rate, nil
	}
	metrics.RateCacheMisses.Inc()

	// Concurrent misses for one pair share a single provider call. The call
	// outlives any one caller; each caller still stops waiting on its own ctx.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(pair.String(), func() (any, error) {
		rate, err := c.fetcher.FetchRate(fetchCtx, pair.From, pair.To)
		if err != nil {
			return nil, err
		}
		if err := c.cache.Put(fetchCtx, pair, rate, RateTTL); err != nil {
			c.log.Warnw("Failed to cache rate", "pair", pair.String(), "error", err)
		}
		return rate, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return 0, fmt.Errorf("%w: %s: %w", ErrConversionFailed, pair, ctx.Err())
	}
	if err := res.Err; err != nil {
		metrics.ProviderFailures.WithLabelValues(failureKind(err)).Inc()
		c.log.Errorw("Rate lookup failed", "pair", pair.String(), "error", err)
		return 0, fmt.Errorf("%w: %s: %w", ErrConversionFailed, pair, err)
	}
	return res.Val.(float64), nil
}

// Rates returns the provider's raw rate table for base.
func (c *Converter) Rates(ctx context.Context, base string) ([]byte, error) {
	base, err := NormalizeCode(base)
	if err != nil {
		return nil, err
	}
	body, err := c.fetcher.FetchRaw(ctx, base)
	if err != nil {
		metrics.ProviderFailures.WithLabelValues(failureKind(err)).Inc()
		c.log.Errorw("Rate table fetch failed", "base", base, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrRatesUnavailable, base, err)
	}
	return body, nil
}

func roundProduct(amount, rate float64) float64 {
	v, _ := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Round(2).Float64()
	return v
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, provider.ErrTransport):
		return "transport"
	case errors.Is(err, provider.ErrNotFound):
		return "not_found"
	default:
		return "other"
	}
}
