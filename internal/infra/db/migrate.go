package db

import (
	"context"
	"database/sql"
	"fmt"
)

// The unique constraint on authors.name is the authoritative guard against
// duplicate names; the use case pre-check only shortens the common path.
var schema = map[Dialect][]string{
	Postgres: {
		`
CREATE TABLE IF NOT EXISTS authors (
    id           BIGSERIAL PRIMARY KEY,
    name         TEXT NOT NULL,
    phone_number VARCHAR(32) NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT authors_name_key UNIQUE (name)
)`,
		`
CREATE TABLE IF NOT EXISTS posts (
    id         BIGSERIAL PRIMARY KEY,
    title      TEXT NOT NULL,
    content    TEXT NOT NULL,
    summary    TEXT NOT NULL DEFAULT '',
    category   VARCHAR(64) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_category ON posts(category)`,
	},
	SQLite: {
		`
CREATE TABLE IF NOT EXISTS authors (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    name         TEXT NOT NULL UNIQUE,
    phone_number TEXT NOT NULL,
    created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		`
CREATE TABLE IF NOT EXISTS posts (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL,
    content    TEXT NOT NULL,
    summary    TEXT NOT NULL DEFAULT '',
    category   TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_category ON posts(category)`,
	},
}

// MigrateUp creates the authors and posts tables if they do not exist.
func MigrateUp(ctx context.Context, db *sql.DB, dialect Dialect) error {
	stmts, ok := schema[dialect]
	if !ok {
		return fmt.Errorf("MigrateUp: unsupported dialect %q", dialect)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("MigrateUp: %w", err)
		}
	}
	return nil
}
