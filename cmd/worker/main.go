package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"files-manager/internal/config"
	"files-manager/internal/queue"
	"files-manager/internal/repository/postgres"
	"files-manager/internal/storage"
	"files-manager/internal/worker"
	"files-manager/pkg/logger"
	"files-manager/pkg/mailer"
)

const serviceName = "files-manager-worker"

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

	var provider mailer.Provider = mailer.NewLogProvider(log)
	if cfg.Mail.ResendAPIKey != "" {
		provider = mailer.NewResendProvider(cfg.Mail.ResendAPIKey)
	}
	welcomeMailer := mailer.NewService(provider, cfg.Mail.From)

	thumbnails := worker.NewThumbnailProcessor(fileRepo, store, log)
	welcomes := worker.NewWelcomeProcessor(userRepo, welcomeMailer, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := worker.NewConsumer(jobs, cfg.Worker.QueuePollTimeout, cfg.Worker.JobTimeout, log)

	var wg sync.WaitGroup
	for name, p := range map[string]worker.Processor{
		queue.QueueThumbnails: thumbnails,
		queue.QueueWelcome:    welcomes,
	} {
		wg.Add(1)
		go func(name string, p worker.Processor) {
			defer wg.Done()
			if err := consumer.Run(ctx, name, p); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Str("queue", name).Msg("consumer exited")
			}
		}(name, p)
	}

	<-ctx.Done()
	log.Info().Msg("shutting down")
	wg.Wait()
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Storage.Backend == config.StorageBackendS3 {
		return storage.NewS3(&cfg.Storage)
	}
	return storage.NewLocal(cfg.Storage.FolderPath), nil
}
