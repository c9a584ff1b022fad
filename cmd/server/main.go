package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/niverapp/event-system/docs"
	"github.com/niverapp/event-system/internal/api"
	"github.com/niverapp/event-system/internal/core/service"
	"github.com/niverapp/event-system/internal/infrastructure/config"
	"github.com/niverapp/event-system/internal/infrastructure/db/postgres"
	"github.com/niverapp/event-system/internal/infrastructure/db/redis"
	"github.com/niverapp/event-system/internal/infrastructure/queue"
	"github.com/niverapp/event-system/pkg/logger"
)

// @title           Event System API
// @version         1.0
// @description     Shared expenses, RSVP invites, and login for a private event.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in    header
// @name  Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Stores ---
	pool, err := postgres.Connect(ctx, cfg.Postgres.URL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	expenseRepo := postgres.NewExpenseRepository(pool)
	inviteRepo := postgres.NewInviteRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	sessions := redis.NewSessionStore(rdb)

	// --- Activity pipeline ---
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(0, activityService, log)
	dispatcher.Start(ctx)

	// --- Services ---
	expenseService := service.NewExpenseService(expenseRepo, dispatcher, log)
	inviteService := service.NewInviteService(inviteRepo, dispatcher, log)
	authService := service.NewAuthService(userRepo, sessions, dispatcher, cfg.JWTSecret, cfg.SessionTTL, log)

	// Admin bootstrap runs to completion before the listener opens; no
	// request can observe a users table without the admin row.
	if err := authService.SeedAdmin(ctx, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	e := api.NewRouter(api.Deps{
		Expenses:  expenseService,
		Invites:   inviteService,
		Auth:      authService,
		Activity:  activityService,
		Sessions:  sessions,
		JWTSecret: cfg.JWTSecret,
		DB:        pool,
		Redis:     rdb,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}
