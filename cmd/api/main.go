package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fixpoint/repairdesk/internal/api"
	"github.com/fixpoint/repairdesk/internal/infrastructure/db/redis"
	"github.com/fixpoint/repairdesk/internal/infrastructure/db/sqlite"
	"github.com/fixpoint/repairdesk/internal/infrastructure/notify"
	"github.com/fixpoint/repairdesk/internal/pkg/config"
	"github.com/fixpoint/repairdesk/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env file is fine; real deployments set the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := sqlite.Seed(db, cfg.Auth.SeedAdminEmail, cfg.Auth.SeedAdminPassword, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	dispatcher := notify.NewDispatcher(0, notify.NewSMTPSender(cfg.SMTP), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
