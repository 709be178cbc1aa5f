// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled requests.
// Labels: method, route, status
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "converter_http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration observes handler latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "converter_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"method", "route"},
)

// RateCacheHits counts conversions served from the rate cache.
var RateCacheHits = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "converter_rate_cache_hits_total",
		Help: "Total number of rate cache hits",
	},
)

// RateCacheMisses counts lookups that had to go to the provider.
var RateCacheMisses = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "converter_rate_cache_misses_total",
		Help: "Total number of rate cache misses",
	},
)

// ProviderFailures counts failed provider calls.
// Labels: kind (transport, not_found, other)
var ProviderFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "converter_provider_failures_total",
		Help: "Total number of failed rate provider calls",
	},
	[]string{"kind"},
)

// CurrencyFallbacks counts currency listings answered from the built-in fallback list.
var CurrencyFallbacks = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "converter_currency_list_fallbacks_total",
		Help: "Total number of supported-currency listings served from the fallback list",
	},
)
