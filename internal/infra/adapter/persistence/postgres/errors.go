package postgres

import (
	"errors"
	"fmt"

	"blog-backend/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// translateError marks unique violations with repository.ErrConflict and
// keeps the driver error in the chain.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %w", repository.ErrConflict, err)
	}
	return err
}
