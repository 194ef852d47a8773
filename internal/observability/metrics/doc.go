// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size, in-flight)
//   - Business metrics (entities created, validation failures, name conflicts)
//   - Database query metrics
//
// All metrics are registered with the Prometheus default registry and
// exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "blog-backend/internal/observability/metrics"
//
//	func create(ctx context.Context) error {
//	    start := time.Now()
//	    defer func() { metrics.RecordOperationDuration("author_create", time.Since(start)) }()
//	    // ...
//	    metrics.RecordValidationFailure(metrics.EntityAuthor, "phone_number")
//	}
package metrics
