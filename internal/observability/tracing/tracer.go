package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies spans created by this service.
const instrumentationName = "blog-backend"

// GetTracer returns the tracer from the current global provider.
// It is resolved on every call so a provider installed after start-up
// (or swapped in tests) takes effect immediately.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(instrumentationName)
}
