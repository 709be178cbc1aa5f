package service

import (
	"context"
	"slices"

	"converterservice/internal/metrics"
)

// BaseCurrency is the base used to discover the supported currency set.
const BaseCurrency = "USD"

// FallbackCurrencies is served when the provider cannot be reached.
var FallbackCurrencies = []string{"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "SEK", "NZD"}

// CurrencyList is the set of currencies offered to clients.
// Codes is sorted, deduplicated and never empty.
type CurrencyList struct {
	Codes    []string
	Fallback bool // true when Codes came from FallbackCurrencies
}

// SupportedCurrencies lists the currencies the provider quotes against USD,
// plus USD itself. Provider failures degrade to FallbackCurrencies.
func (c *Converter) SupportedCurrencies(ctx context.Context) CurrencyList {
	rates, err := c.fetcher.FetchAllRates(ctx, BaseCurrency)
	if err != nil {
		metrics.CurrencyFallbacks.Inc()
		c.log.Warnw("Using fallback currency list", "error", err)
		return fallbackList()
	}

	codes := make([]string, 0, len(rates)+1)
	codes = append(codes, BaseCurrency)
	for key := range rates {
		code, err := NormalizeCode(key)
		if err != nil {
			c.log.Warnw("Skipping malformed currency code from provider", "code", key)
			continue
		}
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return CurrencyList{Codes: slices.Compact(codes)}
}

func fallbackList() CurrencyList {
	codes := slices.Clone(FallbackCurrencies)
	slices.Sort(codes)
	return CurrencyList{Codes: codes, Fallback: true}
}
