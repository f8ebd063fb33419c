package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/movian/movian-api/docs" // swagger docs

	"github.com/movian/movian-api/internal/api"
	mongodb "github.com/movian/movian-api/internal/infrastructure/db/mongo"
	redisdb "github.com/movian/movian-api/internal/infrastructure/db/redis"
	"github.com/movian/movian-api/internal/pkg/config"
	"github.com/movian/movian-api/pkg/logger"
)

// @title Movian API
// @version 1.0
// @description Movie discovery backend: sessions, watchlists, comments and catalogue proxying.
// @BasePath /api
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(indexCtx); err != nil {
		return err
	}
	if err := mongodb.NewPendingRepository(db).EnsureIndexes(indexCtx); err != nil {
		return err
	}
	if err := mongodb.NewWatchlistRepository(db).EnsureIndexes(indexCtx); err != nil {
		return err
	}
	return mongodb.NewCommentRepository(db).EnsureIndexes(indexCtx)
}
