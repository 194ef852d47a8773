package repository

import (
	"context"

	"blog-backend/internal/domain/entity"
)

type PostRepository interface {
	Get(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Create(ctx context.Context, post *entity.Post) error
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id int64) error
}
