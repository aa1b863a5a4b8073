package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/imespro/reid-backend/internal/adapter/postgres"
	userrepo "github.com/imespro/reid-backend/internal/adapter/postgres/user"
	zonerepo "github.com/imespro/reid-backend/internal/adapter/postgres/zone"
	"github.com/imespro/reid-backend/internal/adapter/rediscache"
	"github.com/imespro/reid-backend/internal/config"
	"github.com/imespro/reid-backend/internal/relay"
	usersvc "github.com/imespro/reid-backend/internal/service/user"
	zonesvc "github.com/imespro/reid-backend/internal/service/zone"
	"github.com/imespro/reid-backend/internal/transport/middleware"
	"github.com/imespro/reid-backend/internal/transport/rest"
	"github.com/imespro/reid-backend/migrations"
)

// Run is the application entry point: load config, connect the store, start
// the relay, and serve HTTP until SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting reid backend",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cache := rediscache.New(cfg.Redis, logger)
	defer cache.Close() //nolint:errcheck

	users := userrepo.New(pool)
	zones := zonerepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	userService := usersvc.NewService(logger, users, cache, cfg.Cache.UsersDictTTL)
	zoneService := zonesvc.NewService(logger, zones, users, txManager)

	alertRelay := relay.New(cfg.Kafka, logger)
	relayErr := make(chan error, 1)
	go func() {
		relayErr <- alertRelay.Run(ctx)
	}()

	router := rest.NewRouter(rest.Handlers{
		Users:  rest.NewUserHandler(userService, cfg.API, logger),
		Zones:  rest.NewZoneHandler(zoneService, cfg.API, logger),
		Stats:  rest.NewStatsHandler(userService, zoneService, logger),
		Cache:  rest.NewCacheHandler(cache),
		Alerts: rest.NewAlertHandler(alertRelay.Buffer(), logger),
		Health: rest.NewHealthHandler(pool, cache, alertRelay, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		rateLimiter.Limit(cfg.Server.RatePerMinute),
	)(router)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("http server: %w", err)
	case err := <-relayErr:
		if err != nil {
			return fmt.Errorf("alert relay: %w", err)
		}
		// Disabled relay exits immediately; keep serving.
		select {
		case err := <-serverErr:
			return fmt.Errorf("http server: %w", err)
		case <-ctx.Done():
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	if err := alertRelay.Close(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("relay close failed", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
