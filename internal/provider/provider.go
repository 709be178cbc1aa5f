// Package provider fetches exchange rates from external quote providers.
package provider

import (
	"context"
	"errors"
)

var (
	// ErrTransport covers network failures, timeouts, non-2xx responses and unreadable bodies.
	ErrTransport = errors.New("rate provider transport failure")

	// ErrNotFound means the provider answered but had no usable rate for the requested currency.
	ErrNotFound = errors.New("rate not found")
)

// RateFetcher defines an interface for fetching exchange rates from external sources.
type RateFetcher interface {
	FetchRate(ctx context.Context, from, to string) (float64, error)
	FetchAllRates(ctx context.Context, base string) (map[string]float64, error)
	FetchRaw(ctx context.Context, base string) ([]byte, error)
}
