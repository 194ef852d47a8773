package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateUp_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS authors").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS posts").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_posts_category").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, MigrateUp(context.Background(), db, Postgres))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_AuthorsTableError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS authors").
		WillReturnError(sql.ErrConnDone)

	err = MigrateUp(context.Background(), db, Postgres)
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_PostsTableError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS authors").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS posts").
		WillReturnError(sql.ErrTxDone)

	err = MigrateUp(context.Background(), db, Postgres)
	assert.ErrorIs(t, err, sql.ErrTxDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_UnknownDialect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = MigrateUp(context.Background(), db, Dialect("mysql"))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_SQLite(t *testing.T) {
	db, err := sql.Open(string(SQLite), "file:"+filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	require.NoError(t, MigrateUp(ctx, db, SQLite))
	// idempotent
	require.NoError(t, MigrateUp(ctx, db, SQLite))

	_, err = db.Exec(`INSERT INTO authors (name, phone_number) VALUES ('Jane', '1234567890')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO authors (name, phone_number) VALUES ('Jane', '0987654321')`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}
