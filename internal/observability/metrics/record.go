package metrics

import (
	"strconv"
	"time"
)

// RecordUpstreamRequest records one outbound provider call.
// statusCode is 0 when no response was received.
func RecordUpstreamRequest(provider, outcome string, statusCode int, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(provider, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
	if statusCode > 0 {
		UpstreamResponsesTotal.WithLabelValues(provider, strconv.Itoa(statusCode)).Inc()
	}
}

// RecordSearch records the result of a search and, on success, the number
// of articles returned.
func RecordSearch(provider, result string, articles int) {
	SearchesTotal.WithLabelValues(provider, result).Inc()
	if articles > 0 {
		ArticlesReturnedTotal.WithLabelValues(provider).Add(float64(articles))
	}
}
