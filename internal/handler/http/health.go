// Package http holds the service-level HTTP surface: health probes,
// Prometheus metrics and the middleware shared by the author and post
// handlers.
package http

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"blog-backend/internal/handler/http/respond"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// schemaTables must exist for the API to serve requests.
var schemaTables = []string{"authors", "posts"}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the result of one health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports database connectivity, pool usage and whether the
// migrations have been applied.
type HealthHandler struct {
	DB      *sql.DB
	Version string
	Dialect string
}

// ServeHTTP answers 200 unless a check is unhealthy, then 503.
// A degraded pool is reported but still answers 200.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{}
	if h.DB == nil {
		checks["database"] = CheckStatus{Status: statusUnhealthy, Message: "not configured"}
	} else {
		checks["database"] = h.checkDatabase(ctx)
		if checks["database"].Status != statusUnhealthy {
			checks["schema"] = h.checkSchema(ctx)
		}
	}

	status, code := statusHealthy, http.StatusOK
	for _, c := range checks {
		if c.Status == statusUnhealthy {
			status, code = statusUnhealthy, http.StatusServiceUnavailable
			break
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: statusUnhealthy, Message: respond.SanitizeError(err)}
	}

	stats := h.DB.Stats()
	details := map[string]any{
		"dialect":          h.Dialect,
		"max_open":         stats.MaxOpenConnections,
		"open":             stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
		"wait_duration_ms": stats.WaitDuration.Milliseconds(),
	}

	// 0 は上限なし
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{Status: statusHealthy, Details: details}
	}
	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80 {
		return CheckStatus{Status: statusDegraded, Message: "connection pool utilization above 80%", Details: details}
	}
	return CheckStatus{Status: statusHealthy, Details: details}
}

func (h *HealthHandler) checkSchema(ctx context.Context) CheckStatus {
	for _, table := range schemaTables {
		var one int
		err := h.DB.QueryRowContext(ctx, "SELECT 1 FROM "+table+" LIMIT 1").Scan(&one)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			slog.Default().Warn("health: schema check failed",
				slog.String("table", table),
				slog.String("error", respond.SanitizeError(err)))
			return CheckStatus{Status: statusUnhealthy, Message: "table " + table + " unavailable"}
		}
	}
	return CheckStatus{Status: statusHealthy}
}

// ReadyHandler is the readiness probe: 200 once the database answers a ping.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.DB.PingContext(ctx); err != nil {
		http.Error(w, "database not ready: "+respond.SanitizeError(err), http.StatusServiceUnavailable)
		return
	}
	writeText(w, "ready")
}

// LiveHandler is the liveness probe and always answers 200.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "alive")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Error("probe: failed to write response", slog.Any("error", err))
	}
}
