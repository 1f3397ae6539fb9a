// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fx"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeStale   = "stale"

	CacheHit  = "hit"
	CacheMiss = "miss"
)

var (
	// FetchGenerations counts parameter changes that started a new fetch generation.
	FetchGenerations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_generations_total",
		Help:      "Fetch generations started by parameter changes.",
	})

	// FetchResults counts settled fetches by outcome.
	FetchResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_results_total",
		Help:      "Settled fetch results by outcome.",
	}, []string{"outcome"})

	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Requests sent to the upstream rate provider by outcome.",
	}, []string{"outcome"})

	RateCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_cache_total",
		Help:      "Rate lookups served from cache (hit) or passed through (miss).",
	}, []string{"result"})

	// ResponseCache counts upstream responses served from the response cache.
	ResponseCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "response_cache_total",
		Help:      "Upstream responses served from the response cache (hit) or fetched (miss).",
	}, []string{"result"})

	MalformedRates = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "malformed_rates_total",
		Help:      "Upstream rate values dropped because they were unusable.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
