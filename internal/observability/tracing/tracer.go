package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "news-proxy"

// GetTracer returns the application tracer from the global provider.
// It is looked up on every call so a provider installed later (tests,
// exporters wired in main) is always honoured.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// StartUpstreamSpan starts a client span for an outbound provider call.
// The URL must already have its credential masked.
func StartUpstreamSpan(ctx context.Context, provider, maskedURL string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "news.upstream "+provider,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("news.provider", provider),
			attribute.String("http.method", http.MethodGet),
			attribute.String("http.url", maskedURL),
		),
	)
}

// EndUpstreamSpan records the response status (0 when none was received)
// and marks the span as failed when err is non-nil.
func EndUpstreamSpan(span trace.Span, statusCode int, err error) {
	if statusCode > 0 {
		span.SetAttributes(attribute.Int("http.status_code", statusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
