package pathutil

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidID is returned when a path ID is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses a positive int64 resource ID.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// PathID parses the {id} wildcard of a route registered as "/authors/{id}".
func PathID(r *http.Request) (int64, error) {
	return ParseID(r.PathValue("id"))
}
