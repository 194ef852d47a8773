// Package author provides use cases for managing blog authors.
// It validates writes against the configured author rules and enforces
// name uniqueness with a lookup ahead of the store's unique constraint.
package author

import "errors"

// Sentinel errors for author use case operations.
var (
	// ErrAuthorNotFound indicates that the requested author does not exist.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrInvalidAuthorID indicates a non-positive author ID.
	ErrInvalidAuthorID = errors.New("invalid author ID")
)
