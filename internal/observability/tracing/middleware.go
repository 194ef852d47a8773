package tracing

import (
	"net/http"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/responsewriter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Middleware creates OpenTelemetry tracing middleware for HTTP handlers.
//
// The middleware:
//   - Extracts trace context from incoming request headers (W3C Trace Context format)
//   - Creates a server span named after the normalized route (/authors/:id)
//   - Adds trace ID to response headers (X-Trace-Id)
//   - Records HTTP method, path, and status code as span attributes
//   - Marks the span as failed on 5xx responses
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(
			r.Context(),
			propagation.HeaderCarrier(r.Header),
		)

		route := pathutil.NormalizePath(r.URL.Path)
		ctx, span := GetTracer().Start(ctx, r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		w.Header().Set("X-Trace-Id", span.SpanContext().TraceID().String())

		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r.WithContext(ctx))

		status := rw.StatusCode()
		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.String("http.method", r.Method),
			attribute.String("http.path", r.URL.Path),
			attribute.String("http.route", route),
		)
		if status >= 500 {
			span.SetAttributes(attribute.Bool("error", true))
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	})
}
