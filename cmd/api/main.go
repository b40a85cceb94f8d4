package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/devportfolio/portfolio-api/internal/api"
	"github.com/devportfolio/portfolio-api/internal/core/ports"
	mongodb "github.com/devportfolio/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devportfolio/portfolio-api/internal/infrastructure/db/redis"
	"github.com/devportfolio/portfolio-api/internal/infrastructure/storage"
	"github.com/devportfolio/portfolio-api/internal/pkg/config"
	"github.com/devportfolio/portfolio-api/pkg/logger"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "portfolio-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	rdb, err := connectRedis(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	store, err := buildFileStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("file store setup failed")
	}

	e := api.NewRouter(cfg, db, rdb, store, log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("storage", store.Name()).
			Str("revocation", cfg.RevocationBackend).
			Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// connectRedis establishes the redis connection only when something needs it:
// the redis revocation backend. Returns nil otherwise.
func connectRedis(ctx context.Context, cfg *config.Config) (*goredis.Client, error) {
	if cfg.RevocationBackend != "redis" {
		return nil, nil
	}
	return redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
}

// buildFileStore selects the upload backend from configuration.
func buildFileStore(ctx context.Context, cfg *config.Config) (ports.FileStore, error) {
	if cfg.Storage.Backend == "minio" {
		return storage.NewMinio(ctx, storage.MinioConfig{
			Endpoint:  cfg.Storage.MinioEndpoint,
			AccessKey: cfg.Storage.MinioAccessKey,
			SecretKey: cfg.Storage.MinioSecretKey,
			Bucket:    cfg.Storage.MinioBucket,
			UseSSL:    cfg.Storage.MinioUseSSL,
		})
	}
	return storage.NewLocal(cfg.Storage.UploadDir)
}
