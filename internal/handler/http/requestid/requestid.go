// Package requestid tags each request with an ID that is echoed in the
// X-Request-ID response header and attached to log records.
package requestid

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

type contextKey struct{}

// Header is the HTTP header carrying the request ID.
const Header = "X-Request-ID"

// クライアント由来の ID はログに出るので形式を制限する
var validID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// FromContext returns the request ID stored in ctx, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Valid reports whether id is acceptable as a propagated request ID.
func Valid(id string) bool {
	return validID.MatchString(id)
}

// Middleware propagates a well-formed incoming X-Request-ID and generates a
// UUID v4 otherwise.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !Valid(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
