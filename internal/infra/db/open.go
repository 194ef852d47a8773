package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blog-backend/internal/resilience/retry"
	"blog-backend/pkg/config"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect names a supported database/sql driver.
type Dialect string

const (
	// Postgres uses github.com/jackc/pgx/v5/stdlib.
	Postgres Dialect = "pgx"
	// SQLite uses modernc.org/sqlite.
	SQLite Dialect = "sqlite"
)

// ParseDialect maps a DB_DRIVER value to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "pgx", "postgres", "postgresql":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", s)
	}
}

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// Config selects the driver, the DSN and pool limits.
type Config struct {
	Dialect     Dialect
	DSN         string
	Pool        ConnectionConfig
	PingTimeout time.Duration
	Retry       retry.Config
}

// ConfigFromEnv reads DB_DRIVER, DATABASE_URL and the DB_* pool variables.
// Non-positive pool values are ignored.
func ConfigFromEnv() (Config, error) {
	dialect, err := ParseDialect(config.GetEnvString("DB_DRIVER", string(Postgres)))
	if err != nil {
		return Config{}, err
	}

	dsn := config.GetEnvString("DATABASE_URL", "")
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL not set")
	}

	pool := DefaultConnectionConfig()
	if v := config.GetEnvInt("DB_MAX_OPEN_CONNS", 0); v > 0 {
		pool.MaxOpenConns = v
	}
	if v := config.GetEnvInt("DB_MAX_IDLE_CONNS", 0); v > 0 {
		pool.MaxIdleConns = v
	}
	if v := config.GetEnvDuration("DB_CONN_MAX_LIFETIME", 0); v > 0 {
		pool.ConnMaxLifetime = v
	}
	if v := config.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", 0); v > 0 {
		pool.ConnMaxIdleTime = v
	}

	return Config{
		Dialect:     dialect,
		DSN:         dsn,
		Pool:        pool,
		PingTimeout: config.GetEnvDuration("DB_PING_TIMEOUT", 5*time.Second),
		Retry:       retry.DBConnectConfig(),
	}, nil
}

// Open creates the connection pool and waits until the database answers a ping.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open(string(cfg.Dialect), cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Dialect, err)
	}

	db.SetMaxOpenConns(cfg.Pool.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Pool.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Pool.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.String("driver", string(cfg.Dialect)),
		slog.Int("max_open_conns", cfg.Pool.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.Pool.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.Pool.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.Pool.ConnMaxIdleTime))

	retryCfg := cfg.Retry
	if retryCfg.MaxAttempts == 0 {
		retryCfg = retry.DBConnectConfig()
	}
	if retryCfg.Retryable == nil {
		retryCfg.Retryable = isTransientConnectError
	}

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}

	err = retry.WithBackoff(ctx, retryCfg, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return db.PingContext(pingCtx)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connection established successfully")
	return db, nil
}

// isTransientConnectError extends retry.IsRetryable with Postgres start-up
// states: 57P03 cannot_connect_now and 53300 too_many_connections.
func isTransientConnectError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "57P03" || pgErr.Code == "53300"
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	return retry.IsRetryable(err)
}
