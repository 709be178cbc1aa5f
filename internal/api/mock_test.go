package api

import (
	"context"

	"converterservice/internal/service"
)

// mockConverter implements service.ConverterInterface for testing.
type mockConverter struct {
	convertFunc    func(ctx context.Context, amount float64, from, to string) (*service.ConversionResult, error)
	currenciesFunc func(ctx context.Context) service.CurrencyList
	ratesFunc      func(ctx context.Context, base string) ([]byte, error)
}

func (m *mockConverter) Convert(ctx context.Context, amount float64, from, to string) (*service.ConversionResult, error) {
	return m.convertFunc(ctx, amount, from, to)
}

func (m *mockConverter) SupportedCurrencies(ctx context.Context) service.CurrencyList {
	return m.currenciesFunc(ctx)
}

func (m *mockConverter) Rates(ctx context.Context, base string) ([]byte, error) {
	return m.ratesFunc(ctx, base)
}
