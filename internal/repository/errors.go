package repository

import "errors"

var (
	// ErrConflict is returned when a write violates a uniqueness constraint.
	// The driver error is wrapped alongside it.
	ErrConflict = errors.New("unique constraint violation")

	// ErrNoRowsAffected is returned by Update and Delete when the target row does not exist.
	ErrNoRowsAffected = errors.New("no rows affected")
)
