package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"files-manager/internal/auth"
	"files-manager/internal/config"
	"files-manager/internal/files"
	internalhttp "files-manager/internal/http"
	"files-manager/internal/queue"
	"files-manager/internal/repository/postgres"
	"files-manager/internal/storage"
	"files-manager/pkg/logger"
)

const serviceName = "files-manager"

func main() {
	log := logger.New(serviceName, os.Getenv("APP_ENV") == "dev")

	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Msg("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize content store")
	}

	userRepo := postgres.NewUserRepository(db)
	fileRepo := postgres.NewFileRepository(db)
	jobs := queue.New(rdb)

	fileService := files.NewService(fileRepo, store, jobs, log)
	tokens := auth.NewTokenService(rdb, cfg.Auth.TokenTTL)

	server := internalhttp.NewServer(&internalhttp.ServerDependencies{
		Config:         cfg,
		DB:             db,
		Queue:          jobs,
		UserRepo:       userRepo,
		FileRepo:       fileRepo,
		Files:          fileService,
		Tokens:         tokens,
		AuthMiddleware: auth.NewMiddleware(tokens),
		Log:            log,
	})

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := server.Start(":" + cfg.Server.Port); err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Storage.Backend == config.StorageBackendS3 {
		return storage.NewS3(&cfg.Storage)
	}
	return storage.NewLocal(cfg.Storage.FolderPath), nil
}
