package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchRate(ctx context.Context, from, to string) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockFetcher) FetchAllRates(ctx context.Context, base string) (map[string]float64, error) {
	args := m.Called(ctx, base)
	rates, _ := args.Get(0).(map[string]float64)
	return rates, args.Error(1)
}

func (m *mockFetcher) FetchRaw(ctx context.Context, base string) ([]byte, error) {
	args := m.Called(ctx, base)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}

// slowFetcher returns a fixed rate after a delay and counts calls.
type slowFetcher struct {
	rate  float64
	delay time.Duration
	calls atomic.Int32
}

func (f *slowFetcher) FetchRate(_ context.Context, _, _ string) (float64, error) {
	f.calls.Add(1)
	time.Sleep(f.delay)
	return f.rate, nil
}

func (f *slowFetcher) FetchAllRates(_ context.Context, _ string) (map[string]float64, error) {
	return nil, nil
}

func (f *slowFetcher) FetchRaw(_ context.Context, _ string) ([]byte, error) {
	return nil, nil
}

// gatedFetcher blocks FetchRate until release is closed or its ctx ends.
type gatedFetcher struct {
	rate    float64
	started chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func newGatedFetcher(rate float64) *gatedFetcher {
	return &gatedFetcher{rate: rate, started: make(chan struct{}), release: make(chan struct{})}
}

func (f *gatedFetcher) FetchRate(ctx context.Context, _, _ string) (float64, error) {
	if f.calls.Add(1) == 1 {
		close(f.started)
	}
	select {
	case <-f.release:
		return f.rate, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (f *gatedFetcher) FetchAllRates(_ context.Context, _ string) (map[string]float64, error) {
	return nil, nil
}

func (f *gatedFetcher) FetchRaw(_ context.Context, _ string) ([]byte, error) {
	return nil, nil
}
