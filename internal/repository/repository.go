package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"portfolio/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrSlugTaken = errors.New("slug already exists")
)

// Query is a filtered, ordered, limited select over one table. Filter keys
// and OrderBy must be whitelisted columns of that table.
type Query struct {
	Filter  map[string]any
	OrderBy string
	Desc    bool
	Limit   int
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	List(ctx context.Context, q Query) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	TogglePublished(ctx context.Context, postID string, now time.Time) (*models.Post, error)
	ToggleFeatured(ctx context.Context, postID string, now time.Time) (*models.Post, error)
}

type ProjectRepository interface {
	List(ctx context.Context, q Query) ([]models.Project, error)
}

type ContactRepository interface {
	Create(ctx context.Context, submission *models.ContactSubmission) error
}

type TablesRepository interface {
	Stats(ctx context.Context) (*models.StoreStats, error)
}

type Repository struct {
	Post    PostRepository
	Project ProjectRepository
	Contact ContactRepository
	Tables  TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:    NewPostRepository(db),
		Project: NewProjectRepository(db),
		Contact: NewContactRepository(db),
		Tables:  NewTablesRepository(db),
	}
}
