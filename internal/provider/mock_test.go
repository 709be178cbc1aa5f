package provider

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchRate(ctx context.Context, from, to string) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockFetcher) FetchAllRates(ctx context.Context, base string) (map[string]float64, error) {
	args := m.Called(ctx, base)
	rates, _ := args.Get(0).(map[string]float64)
	return rates, args.Error(1)
}

func (m *MockFetcher) FetchRaw(ctx context.Context, base string) ([]byte, error) {
	args := m.Called(ctx, base)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}
