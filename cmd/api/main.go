// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the campaignhub HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration (.env file, then the process environment).
//  3. Connect to PostgreSQL (pgxpool) and Redis.
//  4. Run database migrations.
//  5. Wire repositories, services and handlers.
//  6. Start HTTP server with graceful shutdown.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/campaignhub/internal/advertiser"
	"github.com/taibuivan/campaignhub/internal/api"
	"github.com/taibuivan/campaignhub/internal/application"
	"github.com/taibuivan/campaignhub/internal/campaign"
	"github.com/taibuivan/campaignhub/internal/influencer"
	"github.com/taibuivan/campaignhub/internal/platform/config"
	"github.com/taibuivan/campaignhub/internal/platform/constants"
	"github.com/taibuivan/campaignhub/internal/platform/metrics"
	"github.com/taibuivan/campaignhub/internal/platform/migration"
	pgstore "github.com/taibuivan/campaignhub/internal/platform/postgres"
	redisstore "github.com/taibuivan/campaignhub/internal/platform/redis"
	"github.com/taibuivan/campaignhub/internal/platform/sec"
	"github.com/taibuivan/campaignhub/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Lives until shutdown; the rate limiter's cleanup loop watches it.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Storage ────────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("postgres_pool_closing")
		pool.Close()
	}()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("redis_client_closing")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Wiring ─────────────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	appMetrics := metrics.NewMetrics(constants.AppName)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		Database: func(context context.Context) error { return pgstore.Ping(context, pool) },
		Cache:    func(context context.Context) error { return redisstore.Ping(context, rdb) },
	}, log)

	authService := auth.NewService(auth.NewAccountRepository(pool), auth.NewSessionRepository(rdb), tokenService, appMetrics)
	advertiserService := advertiser.NewService(advertiser.NewPostgresRepository(pool))
	influencerService := influencer.NewService(influencer.NewPostgresRepository(pool))

	campaignRepository := campaign.NewPostgresRepository(pool)
	campaignService := campaign.NewService(campaignRepository, appMetrics)
	applicationService := application.NewService(application.NewPostgresRepository(pool), campaignRepository, appMetrics)

	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Auth:        auth.NewHandler(authService, cfg.IsProduction()),
		Advertiser:  advertiser.NewHandler(advertiserService),
		Influencer:  influencer.NewHandler(influencerService),
		Campaign:    campaign.NewHandler(campaignService),
		Application: application.NewHandler(applicationService),
	}

	server := api.NewServer(rootCtx, cfg, log, tokenService, appMetrics, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger builds the JSON logger tagged with the app name and installs it as default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String(constants.FieldApp, constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs and exits on a startup error. Only used during wiring.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failed",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
