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

type PostRepo struct{ db *sql.DB }

func NewPostRepo(db *sql.DB) repository.PostRepository {
	return &PostRepo{db: db}
}

func (repo *PostRepo) Get(ctx context.Context, id int64) (*entity.Post, error) {
	const query = `
SELECT id, title, content, summary, category, created_at, updated_at
FROM posts
WHERE id = $1
LIMIT 1`
	var p entity.Post
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.Summary, &p.Category, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &p, nil
}

func (repo *PostRepo) List(ctx context.Context) ([]*entity.Post, error) {
	const query = `
SELECT id, title, content, summary, category, created_at, updated_at
FROM posts
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*entity.Post, 0, 50)
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Summary, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		posts = append(posts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return posts, nil
}

func (repo *PostRepo) Create(ctx context.Context, p *entity.Post) error {
	const query = `
INSERT INTO posts (title, content, summary, category)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`
	err := infradb.WithTx(ctx, repo.db, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, p.Title, p.Content, p.Summary, p.Category).
			Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *PostRepo) Update(ctx context.Context, p *entity.Post) error {
	const query = `
UPDATE posts SET
       title      = $1,
       content    = $2,
       summary    = $3,
       category   = $4,
       updated_at = now()
WHERE id = $5
RETURNING created_at, updated_at`
	err := infradb.WithTx(ctx, repo.db, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, p.Title, p.Content, p.Summary, p.Category, p.ID).
			Scan(&p.CreatedAt, &p.UpdatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("Update: %w", repository.ErrNoRowsAffected)
	}
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *PostRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM posts WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", repository.ErrNoRowsAffected)
	}
	return nil
}
