// Package persistence selects the repository implementations for a database dialect.
package persistence

import (
	"database/sql"
	"fmt"

	"blog-backend/internal/infra/adapter/persistence/postgres"
	"blog-backend/internal/infra/adapter/persistence/sqlite"
	"blog-backend/internal/infra/db"
	"blog-backend/internal/repository"
)

// Repositories bundles the repositories backed by one database handle.
type Repositories struct {
	Authors repository.AuthorRepository
	Posts   repository.PostRepository
}

// NewRepositories returns the adapters matching dialect.
func NewRepositories(dialect db.Dialect, database *sql.DB) (Repositories, error) {
	switch dialect {
	case db.Postgres:
		return Repositories{
			Authors: postgres.NewAuthorRepo(database),
			Posts:   postgres.NewPostRepo(database),
		}, nil
	case db.SQLite:
		return Repositories{
			Authors: sqlite.NewAuthorRepo(database),
			Posts:   sqlite.NewPostRepo(database),
		}, nil
	default:
		return Repositories{}, fmt.Errorf("no repositories for dialect %q", dialect)
	}
}
