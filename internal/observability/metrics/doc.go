// Package metrics provides the Prometheus collectors for the news search path.
//
// It covers:
//   - Upstream provider calls (count by outcome, status codes, latency)
//   - Search results (ok, no results, rejected, error)
//   - Articles returned to callers
//
// HTTP server metrics live with the middleware in internal/handler/http.
// All collectors register with the default Prometheus registry and are
// exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "news-proxy/internal/observability/metrics"
//
//	start := time.Now()
//	resp, err := client.Do(req)
//	metrics.RecordUpstreamRequest("gnews", metrics.OutcomeSuccess, resp.StatusCode, time.Since(start))
package metrics
