// Package observability groups the logging, metrics and tracing
// infrastructure of the news proxy.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus collectors for upstream calls and search results
//   - tracing: OpenTelemetry server and client spans
package observability
