package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"networth-tracker/internal/common/config"
	"networth-tracker/internal/common/logger"
	dashboardStore "networth-tracker/internal/features/dashboard/repository/store"
	dashboardService "networth-tracker/internal/features/dashboard/service"
	onboardingService "networth-tracker/internal/features/onboarding/service"
	sessionStore "networth-tracker/internal/features/session/repository/store"
	sessionService "networth-tracker/internal/features/session/service"
	httpserver "networth-tracker/internal/http"
	"networth-tracker/internal/platform/kv"
	"networth-tracker/internal/platform/redis"
	"networth-tracker/internal/workers"
)

// @title           Net Worth Tracker API
// @version         1.0
// @description     Session, onboarding and dashboard API of the single-user net worth tracker.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @tag.name session
// @tag.description Current user and logout

// @tag.name onboarding
// @tag.description Credential and profile steps

// @tag.name currencies
// @tag.description Supported display currencies

// @tag.name dashboard
// @tag.description Statistics, trend chart and assets/liabilities breakdown

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("networth-tracker", cfg.Debug)
	log := logger.L()

	log.Info().
		Bool("debug", cfg.Debug).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting Net Worth Tracker")

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer closeStore()

	session := sessionService.New(sessionStore.NewSessionRepository(store, cfg.Session.Key), log)
	session.Init(ctx)

	onboarding := onboardingService.NewOnboardingService(session, time.Now, log)
	dashboard := dashboardService.NewDashboardService(
		dashboardStore.NewDashboardRepository(store, cfg.Dashboard.ItemsKey, cfg.Dashboard.HistoryKey, nil),
		time.Now, log)

	log.Info().Msg("Services initialized")

	if interval := cfg.Dashboard.SnapshotInterval; interval > 0 {
		snapshots := workers.NewSnapshotWorker(dashboard, session, interval, log)
		snapshots.Start()
		defer snapshots.Stop()
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httpserver.NewRouter(httpserver.Deps{
		Config:     cfg,
		Log:        log,
		Store:      store,
		Session:    session,
		Onboarding: onboarding,
		Dashboard:  dashboard,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func openStore(ctx context.Context, cfg *config.Config) (kv.Store, func(), error) {
	if cfg.Storage.Driver == config.StorageMemory {
		logger.Warn().Msg("Using in-memory storage, data is lost on restart")
		return kv.NewMemoryStore(), func() {}, nil
	}

	client, err := redis.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Str("addr", cfg.RedisAddr()).Msg("Redis connection established")

	return kv.NewRedisStore(client), func() { _ = client.Close() }, nil
}
