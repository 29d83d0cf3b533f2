package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"portfolio/internal/cms"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/publisher"
	"portfolio/internal/repository"
	"portfolio/internal/service"
	"portfolio/internal/static"
	"portfolio/internal/storage"
)

// App holds the wired dependencies. Close releases the database and the
// broker connection.
type App struct {
	DB       *database.DB
	Repo     *repository.Repository
	Services *service.Service

	publisher *publisher.RabbitMQ
	logger    *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) *App {
	// connection DB
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	repo := repository.NewRepository(db.DB)

	// image uploads are optional
	var images storage.Storage
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if minioClient, err := storage.NewMinIOClient(ctx, cfg); err != nil {
		logger.Warn("minio unavailable, image uploads disabled", "error", err)
	} else {
		images = minioClient
	}

	posts, err := static.Load()
	if err != nil {
		logger.Error("failed to load static posts", "error", err)
		os.Exit(1)
	}
	logger.Info("static posts loaded", "count", posts.Len())

	source := cms.New(cfg.CMS)
	if !source.Configured() {
		logger.Warn("cms not configured, serving static content only")
	}

	a := &App{DB: db, Repo: repo, logger: logger}

	var events service.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(cfg.RabbitMQ, logger)
		if err != nil {
			logger.Warn("rabbitmq unavailable, events disabled", "error", err)
		} else {
			a.publisher = rabbitMQ
			events = rabbitMQ
		}
	}

	a.Services = service.NewService(repo, source, posts, images, events, cfg, logger)
	return a
}

func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close rabbitmq", "error", err)
		}
	}
	if err := a.DB.CloseDB(); err != nil {
		a.logger.Warn("failed to close database", "error", err)
	}
}
