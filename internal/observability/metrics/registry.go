package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream outcomes used as the "outcome" label.
const (
	OutcomeSuccess        = "success"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
)

// Search results used as the "result" label.
const (
	ResultOK        = "ok"
	ResultNoResults = "no_results"
	ResultError     = "error"
	ResultRejected  = "rejected"
)

// Upstream metrics track the single outbound call made per search.
var (
	// UpstreamRequestsTotal counts provider calls by provider and outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_upstream_requests_total",
			Help: "Total number of requests sent to the news provider",
		},
		[]string{"provider", "outcome"},
	)

	// UpstreamResponsesTotal counts provider responses by HTTP status code.
	UpstreamResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_upstream_responses_total",
			Help: "Total number of news provider responses by status code",
		},
		[]string{"provider", "code"},
	)

	// UpstreamRequestDuration measures provider latency. Buckets run from
	// 50ms to 20s since third-party news APIs are slow and the upstream
	// timeout is capped at two minutes.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_upstream_request_duration_seconds",
			Help:    "News provider request duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 20},
		},
		[]string{"provider"},
	)
)

// Business metrics track what the endpoint returns.
var (
	// SearchesTotal counts searches by result.
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_searches_total",
			Help: "Total number of news searches by result",
		},
		[]string{"provider", "result"},
	)

	// ArticlesReturnedTotal counts normalized articles returned to callers.
	ArticlesReturnedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_articles_returned_total",
			Help: "Total number of normalized articles returned",
		},
		[]string{"provider"},
	)
)
