package http

import (
	"net/http"
	"strconv"
	"time"

	"news-proxy/internal/handler/http/pathutil"
	"news-proxy/internal/handler/http/responsewriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Inbound request metrics. The route label is always a pathutil.NormalizePath
// value; upstream call metrics live in internal/observability/metrics.
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and exact status code",
		},
		[]string{"method", "route", "status"},
	)

	// Latency is keyed by status class only; /api/news waits on the provider
	// for up to NEWS_UPSTREAM_TIMEOUT, hence the 20s bucket.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"method", "route", "status_class"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// Article arrays dominate the response sizes.
	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		},
		[]string{"route"},
	)
)

// MetricsMiddleware records request count, latency, in-flight requests and
// response size per normalized route.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		route := pathutil.NormalizePath(r.URL.Path)
		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)
		elapsed := time.Since(start)

		code := rw.StatusCode()
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(code)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route, statusClass(code)).Observe(elapsed.Seconds())
		httpResponseSize.WithLabelValues(route).Observe(float64(rw.BytesWritten()))
	})
}

// statusClass maps 404 to "4xx" and so on.
func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
