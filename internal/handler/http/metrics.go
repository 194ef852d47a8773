package http

import (
	"net/http"
	"strconv"
	"time"

	"blog-backend/internal/handler/http/pathutil"
	"blog-backend/internal/handler/http/responsewriter"
	"blog-backend/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records HTTP request metrics including duration, size, and status codes.
// It uses path normalization to prevent label cardinality explosion from ID-containing paths.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		// Example: /posts/123 -> /posts/:id
		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(
			r.Method,
			normalizedPath,
			strconv.Itoa(rw.StatusCode()),
			time.Since(start),
			int(r.ContentLength),
			rw.BytesWritten(),
		)
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
