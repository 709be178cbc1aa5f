package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public exchangerate-api.com v4 endpoint.
const DefaultBaseURL = "https://api.exchangerate-api.com/v4"

// DefaultTimeout bounds every outbound request.
const DefaultTimeout = 10 * time.Second

var _ RateFetcher = (*ExchangeRateAPIProvider)(nil)

// ExchangeRateAPIProvider fetches rates from an exchangerate-api.com compatible endpoint.
type ExchangeRateAPIProvider struct {
	baseURL string
	client  *http.Client
}

// NewExchangeRateAPIProvider creates a provider for baseURL. A non-positive timeout means DefaultTimeout.
func NewExchangeRateAPIProvider(baseURL string, timeout time.Duration) *ExchangeRateAPIProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ExchangeRateAPIProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// latestResponse holds the part of the payload we read; other fields are ignored.
type latestResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (p *ExchangeRateAPIProvider) latestURL(base string) string {
	return p.baseURL + "/latest/" + url.PathEscape(base)
}

// FetchRaw returns the provider's JSON body for base unchanged.
func (p *ExchangeRateAPIProvider) FetchRaw(ctx context.Context, base string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.latestURL(base), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: request creation failed: %w", ErrTransport, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: provider returned status %d for %s", ErrTransport, resp.StatusCode, base)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: provider returned invalid JSON for %s", ErrTransport, base)
	}
	return body, nil
}

// FetchAllRates returns every rate the provider quotes against base.
func (p *ExchangeRateAPIProvider) FetchAllRates(ctx context.Context, base string) (map[string]float64, error) {
	body, err := p.FetchRaw(ctx, base)
	if err != nil {
		return nil, err
	}

	var result latestResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode provider response: %w", ErrTransport, err)
	}
	if result.Rates == nil {
		return nil, fmt.Errorf("%w: provider response for %s has no rates", ErrTransport, base)
	}
	return result.Rates, nil
}

// FetchRate returns the rate for converting one unit of from into to.
func (p *ExchangeRateAPIProvider) FetchRate(ctx context.Context, from, to string) (float64, error) {
	rates, err := p.FetchAllRates(ctx, from)
	if err != nil {
		return 0, err
	}

	rate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: no rate for %s in %s response", ErrNotFound, to, from)
	}
	if !(rate > 0) {
		return 0, fmt.Errorf("%w: non-positive rate %v for %s/%s", ErrNotFound, rate, from, to)
	}
	return rate, nil
}
