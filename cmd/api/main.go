package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookstore/identity-service/internal/api"
	"github.com/bookstore/identity-service/internal/core/service"
	"github.com/bookstore/identity-service/internal/infrastructure/config"
	mongostore "github.com/bookstore/identity-service/internal/infrastructure/db/mongo"
	redisstore "github.com/bookstore/identity-service/internal/infrastructure/db/redis"
	"github.com/bookstore/identity-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/bookstore/identity-service/internal/infrastructure/queue"
	"github.com/bookstore/identity-service/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Credential store ---
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	if err := mongostore.SeedRoles(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("role bootstrap failed")
	}

	// --- Login limiter backend ---
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Event pipeline ---
	publisher, err := rabbitmq.NewPublisher(rabbitmq.Config{
		URL:      cfg.Rabbit.URL,
		Exchange: cfg.Rabbit.Exchange,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("rabbitmq connection failed")
	}
	defer publisher.Close()

	dispatcher := queue.NewDispatcher(cfg.Rabbit.Workers, publisher, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	e := api.NewRouter(db, rdb, tokens, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("identity service started")

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
