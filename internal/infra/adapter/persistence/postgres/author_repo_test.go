package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/infra/adapter/persistence/postgres"
	"blog-backend/internal/repository"
)

/* ──────────────────────────────── ヘルパ ──────────────────────────────── */

var authorColumns = []string{"id", "name", "phone_number", "created_at", "updated_at"}

func authorRow(a *entity.Author) *sqlmock.Rows {
	return sqlmock.NewRows(authorColumns).
		AddRow(a.ID, a.Name, a.PhoneNumber, a.CreatedAt, a.UpdatedAt)
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

/* ──────────────────────────────── 1. Get ──────────────────────────────── */

func TestAuthorRepo_Get(t *testing.T) {
	db, mock := newMock(t)

	now := time.Now()
	want := &entity.Author{ID: 1, Name: "Jane Doe", PhoneNumber: "1234567890", CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, phone_number`)).
		WithArgs(int64(1)).
		WillReturnRows(authorRow(want))

	got, err := postgres.NewAuthorRepo(db).Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	expectationsMet(t, mock)
}

func TestAuthorRepo_Get_NotFound(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, phone_number`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(authorColumns))

	got, err := postgres.NewAuthorRepo(db).Get(context.Background(), 99)
	if err != nil || got != nil {
		t.Fatalf("want nil,nil got %v,%v", got, err)
	}
	expectationsMet(t, mock)
}

/* ──────────────────────────────── 2. List ──────────────────────────────── */

func TestAuthorRepo_List(t *testing.T) {
	db, mock := newMock(t)

	now := time.Now()
	rows := sqlmock.NewRows(authorColumns).
		AddRow(int64(1), "Jane", "1234567890", now, now).
		AddRow(int64(2), "John", "0987654321", now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM authors`)).WillReturnRows(rows)

	got, err := postgres.NewAuthorRepo(db).List(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if got[1].Name != "John" {
		t.Fatalf("second author = %q", got[1].Name)
	}
	expectationsMet(t, mock)
}

/* ──────────────────────────────── 3. Create ──────────────────────────────── */

func TestAuthorRepo_Create(t *testing.T) {
	db, mock := newMock(t)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO authors (name, phone_number)`)).
		WithArgs("Jane", "1234567890").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), created, created))
	mock.ExpectCommit()

	a := &entity.Author{Name: "Jane", PhoneNumber: "1234567890"}
	if err := postgres.NewAuthorRepo(db).Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	want := &entity.Author{ID: 7, Name: "Jane", PhoneNumber: "1234567890", CreatedAt: created, UpdatedAt: created}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	expectationsMet(t, mock)
}

func TestAuthorRepo_Create_UniqueViolation(t *testing.T) {
	db, mock := newMock(t)

	pgErr := &pgconn.PgError{
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "authors_name_key"`,
		ConstraintName: "authors_name_key",
	}
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO authors`)).
		WithArgs("Jane", "1234567890").
		WillReturnError(pgErr)
	mock.ExpectRollback()

	err := postgres.NewAuthorRepo(db).Create(context.Background(), &entity.Author{Name: "Jane", PhoneNumber: "1234567890"})
	if !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
	var got *pgconn.PgError
	if !errors.As(err, &got) || got.ConstraintName != "authors_name_key" {
		t.Fatalf("driver error lost: %v", err)
	}
	expectationsMet(t, mock)
}

func TestAuthorRepo_Create_OtherError(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO authors`)).
		WillReturnError(&pgconn.PgError{Code: "23502", Message: "null value in column"})
	mock.ExpectRollback()

	err := postgres.NewAuthorRepo(db).Create(context.Background(), &entity.Author{Name: "Jane"})
	if err == nil || errors.Is(err, repository.ErrConflict) {
		t.Fatalf("want non-conflict error, got %v", err)
	}
	expectationsMet(t, mock)
}

/* ──────────────────────────────── 4. Update ──────────────────────────────── */

func TestAuthorRepo_Update(t *testing.T) {
	db, mock := newMock(t)

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE authors SET`)).
		WithArgs("Jane", "5555555555", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, updated))
	mock.ExpectCommit()

	a := &entity.Author{ID: 3, Name: "Jane", PhoneNumber: "5555555555"}
	if err := postgres.NewAuthorRepo(db).Update(context.Background(), a); err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if !a.UpdatedAt.Equal(updated) || !a.CreatedAt.Equal(created) {
		t.Fatalf("timestamps not refreshed: %+v", a)
	}
	expectationsMet(t, mock)
}

func TestAuthorRepo_Update_NotFound(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE authors SET`)).
		WithArgs("Jane", "5555555555", int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))
	mock.ExpectRollback()

	err := postgres.NewAuthorRepo(db).Update(context.Background(), &entity.Author{ID: 404, Name: "Jane", PhoneNumber: "5555555555"})
	if !errors.Is(err, repository.ErrNoRowsAffected) {
		t.Fatalf("want ErrNoRowsAffected, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestAuthorRepo_Update_UniqueViolation(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE authors SET`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := postgres.NewAuthorRepo(db).Update(context.Background(), &entity.Author{ID: 1, Name: "Taken", PhoneNumber: "1234567890"})
	if !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
	expectationsMet(t, mock)
}

/* ──────────────────────────────── 5. Delete ──────────────────────────────── */

func TestAuthorRepo_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: repository.ErrNoRowsAffected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM authors WHERE id = $1`)).
				WithArgs(int64(5)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := postgres.NewAuthorRepo(db).Delete(context.Background(), 5)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
			expectationsMet(t, mock)
		})
	}
}

/* ──────────────────────────────── 6. ExistsByName ──────────────────────────────── */

func TestAuthorRepo_ExistsByName(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM authors WHERE name = $1 AND id <> $2)`)).
		WithArgs("Jane", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := postgres.NewAuthorRepo(db).ExistsByName(context.Background(), "Jane", 3)
	if err != nil || !exists {
		t.Fatalf("ExistsByName = %v, %v", exists, err)
	}
	expectationsMet(t, mock)
}

func TestAuthorRepo_ExistsByName_Error(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WillReturnError(sql.ErrConnDone)

	_, err := postgres.NewAuthorRepo(db).ExistsByName(context.Background(), "Jane", 0)
	if !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("want ErrConnDone, got %v", err)
	}
	expectationsMet(t, mock)
}
