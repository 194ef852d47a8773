package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/observability/metrics"
	"blog-backend/internal/observability/tracing"
	"blog-backend/internal/repository"
)

// CreateInput represents the input parameters for creating a new post.
type CreateInput struct {
	Title    string
	Content  string
	Summary  string
	Category string
}

// UpdateInput represents the input parameters for updating an existing post.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID       int64
	Title    *string
	Content  *string
	Summary  *string
	Category *string
}

// Service provides post management use cases.
// Rules with no categories fall back to entity.DefaultPostRules.
type Service struct {
	Repo  repository.PostRepository
	Rules entity.PostRules
}

func (s *Service) rules() entity.PostRules {
	if len(s.Rules.Categories) == 0 {
		return entity.DefaultPostRules()
	}
	return s.Rules
}

// List retrieves all posts, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.Post, error) {
	posts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Get retrieves a post by ID.
// Returns ErrPostNotFound if the post does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Post, error) {
	if id <= 0 {
		return nil, ErrInvalidPostID
	}
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// Create validates the input and persists a new post.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Post, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "post.Create")
	defer span.End()
	start := time.Now()
	defer func() { metrics.RecordOperationDuration("post_create", time.Since(start)) }()

	p, err := entity.NewPost(in.Title, in.Content, in.Summary, in.Category, s.rules())
	if err != nil {
		return nil, rejected(span, err)
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create post failed")
		return nil, fmt.Errorf("create post: %w", err)
	}

	span.SetAttributes(attribute.Int64("post.id", p.ID))
	metrics.RecordEntityCreated(metrics.EntityPost)
	return p, nil
}

// Update applies the non-nil fields of in and persists the post once the
// merged result passes validation.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Post, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "post.Update",
		trace.WithAttributes(attribute.Int64("post.id", in.ID)))
	defer span.End()
	start := time.Now()
	defer func() { metrics.RecordOperationDuration("post_update", time.Since(start)) }()

	if in.ID <= 0 {
		return nil, ErrInvalidPostID
	}

	current, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if current == nil {
		return nil, ErrPostNotFound
	}

	candidate := *current
	if in.Title != nil {
		candidate.Title = *in.Title
	}
	if in.Content != nil {
		candidate.Content = *in.Content
	}
	if in.Summary != nil {
		candidate.Summary = *in.Summary
	}
	if in.Category != nil {
		candidate.Category = *in.Category
	}

	if err := entity.ValidatePost(&candidate, s.rules()); err != nil {
		return nil, rejected(span, err)
	}

	if err := s.Repo.Update(ctx, &candidate); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return nil, ErrPostNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "update post failed")
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &candidate, nil
}

// Delete removes a post by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPostID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return ErrPostNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func rejected(span trace.Span, err error) error {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		metrics.RecordValidationFailure(metrics.EntityPost, ve.Field)
		span.SetAttributes(attribute.String("validation.field", ve.Field))
	}
	return err
}
