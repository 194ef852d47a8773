package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blog-backend/internal/domain/entity"
	infradb "blog-backend/internal/infra/db"
	"blog-backend/internal/repository"
)

type PostRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewPostRepo(db *sql.DB) repository.PostRepository {
	return &PostRepo{db: db, now: utcNow}
}

func (repo *PostRepo) Get(ctx context.Context, id int64) (*entity.Post, error) {
	const query = `
SELECT id, title, content, summary, category, created_at, updated_at
FROM posts
WHERE id = ?
LIMIT 1`
	var p entity.Post
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.Summary, &p.Category, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
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
		return nil, fmt.Errorf("List: QueryContext: %w", err)
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
INSERT INTO posts (title, content, summary, category, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`
	now := repo.now()
	var id int64
	err := infradb.WithTx(ctx, repo.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, p.Title, p.Content, p.Summary, p.Category, now, now)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	p.ID, p.CreatedAt, p.UpdatedAt = id, now, now
	return nil
}

func (repo *PostRepo) Update(ctx context.Context, p *entity.Post) error {
	const query = `
UPDATE posts SET
       title      = ?,
       content    = ?,
       summary    = ?,
       category   = ?,
       updated_at = ?
WHERE id = ?`
	now := repo.now()
	err := infradb.WithTx(ctx, repo.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, p.Title, p.Content, p.Summary, p.Category, now, p.ID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return repository.ErrNoRowsAffected
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	p.UpdatedAt = now
	return nil
}

func (repo *PostRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM posts WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", repository.ErrNoRowsAffected)
	}
	return nil
}
