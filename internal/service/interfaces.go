package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
//go:generate mockgen -destination=mocks/repository.go -package=mocks portfolio/internal/repository PostRepository,ProjectRepository,ContactRepository,TablesRepository
//go:generate mockgen -destination=mocks/storage.go -package=mocks portfolio/internal/storage Storage

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/publisher"
)

// ContentSource answers structured-content queries. *cms.Client implements it.
type ContentSource interface {
	Fetch(ctx context.Context, query string, params map[string]any, out any) error
}

// StaticPosts is the bundled fallback set. *static.Set implements it.
type StaticPosts interface {
	Posts() []models.Post
	BySlug(slug string) (models.Post, bool)
}

type EventPublisher interface {
	Publish(ctx context.Context, event publisher.Event) error
}
