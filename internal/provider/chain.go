package provider

import (
	"context"
	"errors"
	"fmt"
)

var _ RateFetcher = (*FetcherChain)(nil)

// FetcherChain tries fetchers in order, moving on only after a transport failure.
// A NotFound answer is authoritative and returned immediately.
type FetcherChain struct {
	fetchers []RateFetcher
}

// NewFetcherChain creates a FetcherChain over the given fetchers.
func NewFetcherChain(fetchers ...RateFetcher) *FetcherChain {
	return &FetcherChain{fetchers: fetchers}
}

// FetchRate calls fetchers sequentially until one answers.
func (c *FetcherChain) FetchRate(ctx context.Context, from, to string) (float64, error) {
	var rate float64
	err := c.try(func(f RateFetcher) error {
		var err error
		rate, err = f.FetchRate(ctx, from, to)
		return err
	})
	return rate, err
}

// FetchAllRates calls fetchers sequentially until one answers.
func (c *FetcherChain) FetchAllRates(ctx context.Context, base string) (map[string]float64, error) {
	var rates map[string]float64
	err := c.try(func(f RateFetcher) error {
		var err error
		rates, err = f.FetchAllRates(ctx, base)
		return err
	})
	return rates, err
}

// FetchRaw calls fetchers sequentially until one answers.
func (c *FetcherChain) FetchRaw(ctx context.Context, base string) ([]byte, error) {
	var body []byte
	err := c.try(func(f RateFetcher) error {
		var err error
		body, err = f.FetchRaw(ctx, base)
		return err
	})
	return body, err
}

func (c *FetcherChain) try(call func(RateFetcher) error) error {
	if len(c.fetchers) == 0 {
		return fmt.Errorf("%w: no providers configured", ErrTransport)
	}

	var errs []error
	for _, f := range c.fetchers {
		err := call(f)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrTransport) {
			return err
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}
