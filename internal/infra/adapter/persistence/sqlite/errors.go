package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"blog-backend/internal/repository"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// translateError marks unique violations with repository.ErrConflict and
// keeps the driver error in the chain. Errors that did not come from the
// modernc driver directly are matched on SQLite's message text.
func translateError(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return fmt.Errorf("%w: %w", repository.ErrConflict, err)
		}
		return err
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %w", repository.ErrConflict, err)
	}
	return err
}
