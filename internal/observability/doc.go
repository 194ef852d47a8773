// Package observability groups the logging, metrics and tracing setup used by
// the blog API.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracer and HTTP middleware
//
// Example usage:
//
//	import (
//	    "blog-backend/internal/observability/logging"
//	    "blog-backend/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordEntityCreated(metrics.EntityAuthor)
//	}
package observability
