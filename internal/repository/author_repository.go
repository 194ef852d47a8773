package repository

import (
	"context"

	"blog-backend/internal/domain/entity"
)

// AuthorRepository persists authors. Implementations must back name
// uniqueness with a store constraint and report violations as ErrConflict.
type AuthorRepository interface {
	Get(ctx context.Context, id int64) (*entity.Author, error)
	List(ctx context.Context) ([]*entity.Author, error)
	Create(ctx context.Context, author *entity.Author) error
	Update(ctx context.Context, author *entity.Author) error
	Delete(ctx context.Context, id int64) error
	// ExistsByName reports whether an author other than excludeID uses name.
	// Pass 0 as excludeID when creating.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
}
