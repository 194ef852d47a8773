// Package respond writes JSON responses and keeps internal error detail
// (driver messages, DSNs) out of response bodies.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"blog-backend/internal/domain/entity"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// FieldError writes a 400 response naming the rejected field.
// message is the rule's user-facing text and is returned unchanged.
func FieldError(w http.ResponseWriter, field, message string) {
	JSON(w, http.StatusBadRequest, map[string]string{"error": message, "field": field})
}

// Validation writes err if it carries an *entity.ValidationError and reports
// whether it did. Duplicate author names map to 409, other rule failures to 400.
func Validation(w http.ResponseWriter, err error) bool {
	var ve *entity.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	if entity.IsDuplicateName(err) {
		JSON(w, http.StatusConflict, map[string]string{"error": ve.Message, "field": ve.Field})
		return true
	}
	FieldError(w, ve.Field, ve.Message)
	return true
}

// safePhrases mark messages written for clients: use-case sentinels and
// validation rule text.
var safePhrases = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"too long",
	"too short",
	"duplicate",
	"missing",
}

// SafeError returns err's message when it is meant for clients and the
// status is below 500. Anything else is logged with credentials masked and
// answered with "internal server error".
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	safe := code < 500 && slices.ContainsFunc(safePhrases, func(p string) bool {
		return strings.Contains(lower, p)
	})
	if safe {
		Error(w, code, err)
		return
	}

	// 詳細はログにのみ残す
	slog.Default().Error("internal server error",
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
