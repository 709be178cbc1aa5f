package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"converterservice/internal/provider"
)

func TestSupportedCurrencies(t *testing.T) {
	ctx := context.Background()

	t.Run("provider omits base", func(t *testing.T) {
		f := new(mockFetcher)
		f.On("FetchAllRates", mock.Anything, "USD").Return(map[string]float64{"EUR": 0.9, "GBP": 0.8, "AED": 3.67}, nil)
		conv, _, _ := newTestConverter(t, f)

		list := conv.SupportedCurrencies(ctx)
		assert.False(t, list.Fallback)
		assert.Equal(t, []string{"AED", "EUR", "GBP", "USD"}, list.Codes)
	})

	t.Run("provider includes base, no duplicate", func(t *testing.T) {
		f := new(mockFetcher)
		f.On("FetchAllRates", mock.Anything, "USD").Return(map[string]float64{"USD": 1, "EUR": 0.9}, nil)
		conv, _, _ := newTestConverter(t, f)

		list := conv.SupportedCurrencies(ctx)
		assert.Equal(t, []string{"EUR", "USD"}, list.Codes)
	})

	t.Run("empty rates", func(t *testing.T) {
		f := new(mockFetcher)
		f.On("FetchAllRates", mock.Anything, "USD").Return(map[string]float64{}, nil)
		conv, _, _ := newTestConverter(t, f)

		list := conv.SupportedCurrencies(ctx)
		assert.Equal(t, []string{"USD"}, list.Codes)
	})

	t.Run("provider keys are normalized", func(t *testing.T) {
		f := new(mockFetcher)
		f.On("FetchAllRates", mock.Anything, "USD").Return(map[string]float64{
			"eur": 0.9, "EUR": 0.9, " gbp ": 0.8, "": 1, "X1Y": 2, "EURO": 1, "usd": 1,
		}, nil)
		conv, _, _ := newTestConverter(t, f)

		list := conv.SupportedCurrencies(ctx)
		assert.False(t, list.Fallback)
		assert.Equal(t, []string{"EUR", "GBP", "USD"}, list.Codes)
	})

	t.Run("failure falls back", func(t *testing.T) {
		f := new(mockFetcher)
		f.On("FetchAllRates", mock.Anything, "USD").Return(nil, fmt.Errorf("%w: dns", provider.ErrTransport))
		conv, _, _ := newTestConverter(t, f)

		list := conv.SupportedCurrencies(ctx)
		assert.True(t, list.Fallback)
		assert.ElementsMatch(t, []string{"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "SEK", "NZD"}, list.Codes)
		assert.IsIncreasing(t, list.Codes)
	})

	t.Run("fallback list is not shared", func(t *testing.T) {
		list := fallbackList()
		list.Codes[0] = "XXX"
		assert.Equal(t, "USD", FallbackCurrencies[0])
	})
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"USD", "USD", true},
		{"usd", "USD", true},
		{"  eur ", "EUR", true},
		{"US", "", false},
		{"USDA", "", false},
		{"US1", "", false},
		{"US$", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizeCode(tc.in)
			if !tc.ok {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
