package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"blog-backend/internal/config"
	"blog-backend/internal/infra/adapter/persistence"
	"blog-backend/internal/infra/db"
	"blog-backend/internal/observability/logging"
	"blog-backend/internal/observability/tracing"
	envconfig "blog-backend/pkg/config"

	authorUC "blog-backend/internal/usecase/author"
	postUC "blog-backend/internal/usecase/post"

	hhttp "blog-backend/internal/handler/http"
	hauthor "blog-backend/internal/handler/http/author"
	hpost "blog-backend/internal/handler/http/post"
	"blog-backend/internal/handler/http/requestid"
)

func main() {
	// .env は任意（本番では環境変数を直接設定する）
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	shutdownTracing := initTracing()
	defer shutdownTracing()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbCfg, database := initDatabase(ctx, logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	rules, err := config.LoadRulesFromEnv()
	if err != nil {
		logger.Error("failed to load validation rules", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("validation rules loaded",
		slog.Int("phone_digits", rules.Author.PhoneDigits),
		slog.Int("min_content_length", rules.Post.MinContentLength),
		slog.Int("max_summary_length", rules.Post.MaxSummaryLength),
		slog.Any("categories", rules.Post.Categories),
		slog.Any("title_phrases", rules.Post.TitlePhrases))

	version := envconfig.GetEnvString("VERSION", "dev")
	handler := setupServer(logger, database, dbCfg.Dialect, rules, version)

	runServer(ctx, logger, handler, version)
}

// initTracing installs an SDK tracer provider so request spans carry real
// trace IDs for log correlation. Spans are not exported.
func initTracing() func() {
	serviceName := envconfig.GetEnvString("OTEL_SERVICE_NAME", "blog-backend")
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	)
	otel.SetTracerProvider(tp)
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			slog.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(ctx context.Context, logger *slog.Logger) (db.Config, *sql.DB) {
	cfg, err := db.ConfigFromEnv()
	if err != nil {
		logger.Error("invalid database configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database, err := db.Open(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.MigrateUp(ctx, database, cfg.Dialect); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		_ = database.Close()
		os.Exit(1)
	}
	return cfg, database
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, database *sql.DB, dialect db.Dialect, rules config.Rules, version string) http.Handler {
	repos, err := persistence.NewRepositories(dialect, database)
	if err != nil {
		logger.Error("failed to build repositories", slog.Any("error", err))
		os.Exit(1)
	}
	authorSvc := &authorUC.Service{Repo: repos.Authors, Rules: rules.Author}
	postSvc := &postUC.Service{Repo: repos.Posts, Rules: rules.Post}

	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version, Dialect: string(dialect)})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	hauthor.Register(mux, authorSvc)
	hpost.Register(mux, postSvc)

	// Order: Request ID → Recovery → Tracing → Logging → Body Limit → Metrics
	return hhttp.Chain(mux,
		requestid.Middleware,
		hhttp.Recover(logger),
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(1<<20), // 1MB limit
		hhttp.MetricsMiddleware,
	)
}

// runServer starts the HTTP server and shuts it down gracefully when ctx is cancelled.
func runServer(ctx context.Context, logger *slog.Logger, handler http.Handler, version string) {
	addr := ":" + envconfig.GetEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		ReadTimeout:       envconfig.GetEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      envconfig.GetEnvDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Error("server failed", slog.Any("error", err))
		return
	case <-ctx.Done():
	}
	logger.Info("shutting down server...")

	timeout := envconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
