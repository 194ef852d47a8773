package author

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/observability/logging"
	"blog-backend/internal/observability/metrics"
	"blog-backend/internal/observability/tracing"
	"blog-backend/internal/repository"
)

// CreateInput represents the input parameters for creating a new author.
type CreateInput struct {
	Name        string
	PhoneNumber string
}

// UpdateInput represents the input parameters for updating an existing author.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID          int64
	Name        *string
	PhoneNumber *string
}

// Service provides author management use cases.
// A zero Rules value falls back to entity.DefaultAuthorRules.
type Service struct {
	Repo  repository.AuthorRepository
	Rules entity.AuthorRules
}

func (s *Service) rules() entity.AuthorRules {
	if s.Rules.PhoneDigits <= 0 {
		return entity.DefaultAuthorRules()
	}
	return s.Rules
}

// List retrieves all authors.
func (s *Service) List(ctx context.Context) ([]*entity.Author, error) {
	authors, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

// Get retrieves an author by ID.
// Returns ErrAuthorNotFound if the author does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Author, error) {
	if id <= 0 {
		return nil, ErrInvalidAuthorID
	}
	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if a == nil {
		return nil, ErrAuthorNotFound
	}
	return a, nil
}

// Create validates the input and persists a new author.
//
// Field rules run first, then the name lookup. A conflict reported by the
// store's unique constraint is returned as the same duplicate name
// ValidationError as a lookup hit; it is not retried.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Author, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "author.Create")
	defer span.End()
	start := time.Now()
	defer func() { metrics.RecordOperationDuration("author_create", time.Since(start)) }()

	a, err := entity.NewAuthor(in.Name, in.PhoneNumber, s.rules())
	if err != nil {
		return nil, s.rejected(span, err)
	}

	if err := s.ensureNameAvailable(ctx, span, a.Name, 0); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, s.storeFailed(ctx, span, "create author", err)
	}

	span.SetAttributes(attribute.Int64("author.id", a.ID))
	metrics.RecordEntityCreated(metrics.EntityAuthor)
	return a, nil
}

// Update applies the non-nil fields of in to the stored author and
// persists the result. The candidate is validated as a whole before
// anything is written, so a rejected update leaves the stored author as it was.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Author, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "author.Update",
		trace.WithAttributes(attribute.Int64("author.id", in.ID)))
	defer span.End()
	start := time.Now()
	defer func() { metrics.RecordOperationDuration("author_update", time.Since(start)) }()

	if in.ID <= 0 {
		return nil, ErrInvalidAuthorID
	}

	current, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if current == nil {
		return nil, ErrAuthorNotFound
	}

	candidate := *current
	if in.Name != nil {
		candidate.Name = strings.TrimSpace(*in.Name)
	}
	if in.PhoneNumber != nil {
		candidate.PhoneNumber = *in.PhoneNumber
	}

	if err := entity.ValidateAuthor(&candidate, s.rules()); err != nil {
		return nil, s.rejected(span, err)
	}

	// 名前が変わらない場合は重複チェック不要
	if candidate.Name != current.Name {
		if err := s.ensureNameAvailable(ctx, span, candidate.Name, candidate.ID); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.Update(ctx, &candidate); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return nil, ErrAuthorNotFound
		}
		return nil, s.storeFailed(ctx, span, "update author", err)
	}
	return &candidate, nil
}

// Delete removes an author by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAuthorID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return ErrAuthorNotFound
		}
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}

func (s *Service) ensureNameAvailable(ctx context.Context, span trace.Span, name string, excludeID int64) error {
	taken, err := s.Repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "name lookup failed")
		return fmt.Errorf("check author name: %w", err)
	}
	if taken {
		metrics.RecordDuplicateName(metrics.ConflictPrecheck)
		return s.rejected(span, entity.NewDuplicateNameError(nil))
	}
	return nil
}

// storeFailed maps a repository write error. ErrConflict means another
// writer took the name between the lookup and the write.
func (s *Service) storeFailed(ctx context.Context, span trace.Span, op string, err error) error {
	if errors.Is(err, repository.ErrConflict) {
		metrics.RecordDuplicateName(metrics.ConflictConstraint)
		logging.FromContext(ctx).Info("author name taken by concurrent write",
			"operation", op)
		return s.rejected(span, entity.NewDuplicateNameError(err))
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, op+" failed")
	return fmt.Errorf("%s: %w", op, err)
}

func (s *Service) rejected(span trace.Span, err error) error {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		metrics.RecordValidationFailure(metrics.EntityAuthor, ve.Field)
		span.SetAttributes(
			attribute.String("validation.field", ve.Field),
			attribute.String("validation.message", ve.Message),
		)
	}
	return err
}
