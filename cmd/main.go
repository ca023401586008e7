package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/core/engine"
	"adpilot/internal/db"
	"adpilot/pkg/metrics"
)

// main is the entry point of the adpilot service. It loads configuration,
// optionally runs database migrations and the demo seed, initializes the
// database pool, the rule engine and the usecases, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	// The rule engine fails here only on a malformed registry, which is a
	// programming defect; refuse to start in that case.
	eng, err := engine.New()
	if err != nil {
		logger.Error("rule engine init error", slog.Any("error", err))
		os.Exit(1)
	}

	collector := metrics.NewCollector()
	repo := postgres.NewCampaignRepository(pool)
	campaigns := usecase.NewCampaignUseCase(repo)
	evaluations := usecase.NewEvaluationUseCase(repo, eng, collector)

	handler := httpadapter.NewHandler(campaigns, evaluations, logger, collector.Handler())
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
