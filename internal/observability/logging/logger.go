package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"blog-backend/internal/handler/http/requestid"
	"blog-backend/pkg/config"
)

// NewLogger creates a JSON logger on stdout.
// The log level is read from LOG_LEVEL (debug, info, warn, error); default is info.
func NewLogger() *slog.Logger {
	return New(os.Stdout, ParseLevel(config.GetEnvString("LOG_LEVEL", "info")))
}

// New creates a JSON logger writing to w at the given level.
// Source locations are attached when the level is warn or lower.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelWarn,
	})
	return slog.New(handler)
}

// ParseLevel converts a level name into a slog.Level.
// Unknown names fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a new logger that includes the request ID from the context.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}

// FromContext retrieves the logger from the context, or returns the default logger if not found.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const loggerContextKey contextKey = "logger"
