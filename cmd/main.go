package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "beatboost/internal/adapter/http"
	"beatboost/internal/adapter/memory"
	"beatboost/internal/adapter/payment"
	"beatboost/internal/adapter/postgres"
	"beatboost/internal/adapter/session"
	"beatboost/internal/adapter/sqlite"
	"beatboost/internal/adapter/store"
	"beatboost/internal/adapter/usecase"
	"beatboost/internal/config"
	"beatboost/internal/config/configs"
	"beatboost/internal/core/port"
	"beatboost/internal/db"
)

// main loads configuration, opens the configured key/value backend and
// serves the HTTP API until SIGINT or SIGTERM, then shuts the server down
// gracefully. The campaign store loads (or seeds) in the background; the
// API answers 503 until it is ready.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kv, closeKV, err := openKeyValue(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage error", slog.String("driver", cfg.Storage.Driver), slog.Any("error", err))
		return
	}
	defer closeKV()

	campaigns := store.New(kv, store.WithLogger(logger))

	sessions := session.NewProvider(kv, logger)
	svc := usecase.NewCampaignUseCase(campaigns, payment.NewSimulator(cfg.Payment.Delay, logger), logger)

	handler := httpadapter.NewHandler(svc, sessions, campaigns, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	loadFailed := make(chan struct{})
	go func() {
		if err := campaigns.Load(ctx); err != nil {
			logger.Error("load campaigns error", slog.Any("error", err))
			close(loadFailed)
			cancel()
			return
		}
		logger.Info("campaign store loaded")
	}()

	<-ctx.Done()
	select {
	case <-loadFailed:
	default:
		exitCode = 0
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openKeyValue opens the backend selected by cfg.Storage.Driver. The
// returned close function releases it.
func openKeyValue(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.KeyValue, func(), error) {
	switch cfg.Storage.Driver {
	case configs.StoragePostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewKVStore(pool), pool.Close, nil
	case configs.StorageMemory:
		logger.Warn("using in-memory storage; state is lost on exit")
		return memory.NewKVStore(), func() {}, nil
	default:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewKVStore(sqlDB), func() { _ = sqlDB.Close() }, nil
	}
}
