// Package tracing provides OpenTelemetry tracing integration.
//
// Use-case services open spans through GetTracer, and Middleware creates a
// server span per HTTP request with the W3C trace context propagated from the
// caller.
//
// Example usage:
//
//	import "blog-backend/internal/observability/tracing"
//
//	func createAuthor(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "author.Create")
//	    defer span.End()
//	    // ...
//	}
package tracing
