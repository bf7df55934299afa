// Package tracing provides OpenTelemetry tracing integration.
//
// Spans are created through the global tracer provider. Without an exporter
// installed the global provider is a no-op, so the instrumentation costs
// nothing until a provider is registered with otel.SetTracerProvider.
//
// Two span kinds are produced:
//   - Server spans for every inbound request (Middleware)
//   - Client spans around the outbound provider call (StartUpstreamSpan)
//
// Example usage:
//
//	ctx, span := tracing.StartUpstreamSpan(ctx, "gnews", maskedURL)
//	resp, err := client.Do(req.WithContext(ctx))
//	tracing.EndUpstreamSpan(span, resp.StatusCode, err)
package tracing
