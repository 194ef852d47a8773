// Package post provides use cases for managing blog posts.
package post

import "errors"

// Sentinel errors for post use case operations.
var (
	// ErrPostNotFound indicates that the requested post does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidPostID indicates a non-positive post ID.
	ErrInvalidPostID = errors.New("invalid post ID")
)
