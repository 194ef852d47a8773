package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blog-backend/internal/domain/entity"
	infradb "blog-backend/internal/infra/db"
	"blog-backend/internal/repository"
)

type AuthorRepo struct{ db *sql.DB }

func NewAuthorRepo(db *sql.DB) repository.AuthorRepository {
	return &AuthorRepo{db: db}
}

func (repo *AuthorRepo) Get(ctx context.Context, id int64) (*entity.Author, error) {
	const query = `
SELECT id, name, phone_number, created_at, updated_at
FROM authors
WHERE id = $1
LIMIT 1`
	var a entity.Author
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.PhoneNumber, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &a, nil
}

func (repo *AuthorRepo) List(ctx context.Context) ([]*entity.Author, error) {
	const query = `
SELECT id, name, phone_number, created_at, updated_at
FROM authors
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	authors := make([]*entity.Author, 0, 50)
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.PhoneNumber, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		authors = append(authors, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return authors, nil
}

// Create inserts the author and fills in ID and the store-assigned timestamps.
// A duplicate name rolls the transaction back and returns repository.ErrConflict.
func (repo *AuthorRepo) Create(ctx context.Context, a *entity.Author) error {
	const query = `
INSERT INTO authors (name, phone_number)
VALUES ($1, $2)
RETURNING id, created_at, updated_at`
	err := infradb.WithTx(ctx, repo.db, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, a.Name, a.PhoneNumber).
			Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	})
	if err != nil {
		return fmt.Errorf("Create: %w", translateError(err))
	}
	return nil
}

// Update writes name and phone number and refreshes updated_at.
func (repo *AuthorRepo) Update(ctx context.Context, a *entity.Author) error {
	const query = `
UPDATE authors SET
       name         = $1,
       phone_number = $2,
       updated_at   = now()
WHERE id = $3
RETURNING created_at, updated_at`
	err := infradb.WithTx(ctx, repo.db, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, a.Name, a.PhoneNumber, a.ID).
			Scan(&a.CreatedAt, &a.UpdatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("Update: %w", repository.ErrNoRowsAffected)
	}
	if err != nil {
		return fmt.Errorf("Update: %w", translateError(err))
	}
	return nil
}

func (repo *AuthorRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM authors WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", repository.ErrNoRowsAffected)
	}
	return nil
}

func (repo *AuthorRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM authors WHERE name = $1 AND id <> $2)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByName: %w", err)
	}
	return exists, nil
}
