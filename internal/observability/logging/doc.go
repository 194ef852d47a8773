// Package logging builds the service's slog logger and carries a
// request-scoped logger through context.
//
// NewLogger reads LOG_LEVEL (debug, info, warn, error) and writes JSON to
// stdout. The HTTP logging middleware stores a logger tagged with the
// request ID via WithLogger; code below the handlers retrieves it with
// FromContext:
//
//	logging.FromContext(ctx).Warn("duplicate author name",
//	    slog.String("name", name))
package logging
