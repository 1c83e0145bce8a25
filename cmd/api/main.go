// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

// Command api runs the Kinoteka HTTP API server.
//
// Startup order matters: configuration, logging, stores, migrations, then
// traffic. The server refuses to start if Postgres is unreachable or the
// schema cannot be brought up to date.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kinoteka/kinoteka/internal/api"
	"github.com/kinoteka/kinoteka/internal/platform/config"
	"github.com/kinoteka/kinoteka/internal/platform/constants"
	"github.com/kinoteka/kinoteka/internal/platform/migration"
	"github.com/kinoteka/kinoteka/internal/platform/postgres"
	"github.com/kinoteka/kinoteka/internal/platform/redis"
)

func main() {
	// Root context is cancelled on SIGINT/SIGTERM and bounds every background
	// goroutine the application starts.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config_load_failed", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(logger)

	logger.Info("starting",
		slog.String("version", constants.AppVersion),
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	db, err := postgres.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("postgres_connect_failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
		logger.Error("migration_failed", slog.Any("error", err))
		os.Exit(1)
	}

	cache, err := redis.NewClient(ctx, cfg.RedisURL, logger)
	if err != nil {
		logger.Error("redis_connect_failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = cache.Close() }()

	limiter := redis.NewFixedWindowLimiter(cache, int64(constants.DefaultRateLimitRPS))

	server := api.NewServer(cfg, logger, db, cache, limiter)

	httpServer := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           server.Router(ctx),
		ReadTimeout:       constants.DefaultReadTimeout,
		ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		WriteTimeout:      constants.DefaultWriteTimeout,
		IdleTimeout:       constants.DefaultIdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http_server_listening", slog.String("addr", httpServer.Addr))
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_failed", slog.Any("error", err))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown_signal_received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful_shutdown_failed", slog.Any("error", err))
			_ = httpServer.Close()
		}
	}

	logger.Info("stopped")
}
