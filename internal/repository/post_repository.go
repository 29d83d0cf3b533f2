package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"portfolio/internal/models"
)

const postColumns = `id, title, slug, excerpt, content, category, tags, featured, published,
	author_name, read_time_minutes, featured_image_url, created_at, updated_at, published_at`

const slugConstraint = "posts_slug_key"

var postFilterColumns = map[string]bool{
	"id":           true,
	"slug":         true,
	"category":     true,
	"featured":     true,
	"published":    true,
	"created_at":   true,
	"updated_at":   true,
	"published_at": true,
	"title":        true,
}

// postRow carries the TEXT[] tags column, which models.Post keeps as a plain slice.
type postRow struct {
	models.Post
	Tags pq.StringArray `db:"tags"`
}

func newPostRow(post *models.Post) postRow {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	return postRow{Post: *post, Tags: pq.StringArray(tags)}
}

func (r postRow) toModel() models.Post {
	post := r.Post
	post.Tags = []string(r.Tags)
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return post
}

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts
		(id, title, slug, excerpt, content, category, tags, featured, published,
		 author_name, read_time_minutes, featured_image_url, created_at, updated_at, published_at)
		VALUES
		(:id, :title, :slug, :excerpt, :content, :category, :tags, :featured, :published,
		 :author_name, :read_time_minutes, :featured_image_url, :created_at, :updated_at, :published_at)
	`

	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = post.CreatedAt
	}

	_, err := r.DB.NamedExecContext(ctx, query, newPostRow(post))
	if err != nil {
		if isUniqueViolation(err, slugConstraint) {
			return fmt.Errorf("%w: %q: %v", ErrSlugTaken, post.Slug, err)
		}
		return fmt.Errorf("error creating post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	return r.getOne(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, postID)
}

func (r *PostRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return r.getOne(ctx, `SELECT `+postColumns+` FROM posts WHERE slug = $1`, slug)
}

func (r *PostRepositoryImpl) getOne(ctx context.Context, query string, arg any) (*models.Post, error) {
	var row postRow
	err := r.DB.GetContext(ctx, &row, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, fmt.Errorf("post %v: %w", arg, ErrNotFound)
		}
		return nil, fmt.Errorf("error getting post: %w", err)
	}

	post := row.toModel()
	return &post, nil
}

func (r *PostRepositoryImpl) List(ctx context.Context, q Query) ([]models.Post, error) {
	query, args, err := buildSelect("posts", postColumns, postFilterColumns, q)
	if err != nil {
		return nil, err
	}

	var rows []postRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	posts := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toModel())
	}

	return posts, nil
}

// Update writes every mutable column of post. Timestamps are taken as given.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			slug = :slug,
			excerpt = :excerpt,
			content = :content,
			category = :category,
			tags = :tags,
			featured = :featured,
			published = :published,
			author_name = :author_name,
			read_time_minutes = :read_time_minutes,
			featured_image_url = :featured_image_url,
			updated_at = :updated_at,
			published_at = :published_at
		WHERE id = :id
	`

	result, err := r.DB.NamedExecContext(ctx, query, newPostRow(post))
	if err != nil {
		if isUniqueViolation(err, slugConstraint) {
			return fmt.Errorf("%w: %q: %v", ErrSlugTaken, post.Slug, err)
		}
		if isInvalidID(err) {
			return fmt.Errorf("post %s: %w", post.ID, ErrNotFound)
		}
		return fmt.Errorf("error updating post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %s: %w", post.ID, ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		if isInvalidID(err) {
			return fmt.Errorf("post %s: %w", postID, ErrNotFound)
		}
		return fmt.Errorf("error deleting post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %s: %w", postID, ErrNotFound)
	}

	return nil
}

// TogglePublished flips published in one statement. published_at follows the
// new value: set to now when publishing, cleared when unpublishing.
func (r *PostRepositoryImpl) TogglePublished(ctx context.Context, postID string, now time.Time) (*models.Post, error) {
	query := `
		UPDATE posts SET
			published = NOT published,
			published_at = CASE WHEN published THEN NULL ELSE $2::timestamptz END,
			updated_at = $2
		WHERE id = $1
		RETURNING ` + postColumns

	return r.toggle(ctx, "publish", query, postID, now)
}

func (r *PostRepositoryImpl) ToggleFeatured(ctx context.Context, postID string, now time.Time) (*models.Post, error) {
	query := `
		UPDATE posts SET
			featured = NOT featured,
			updated_at = $2
		WHERE id = $1
		RETURNING ` + postColumns

	return r.toggle(ctx, "feature", query, postID, now)
}

func (r *PostRepositoryImpl) toggle(ctx context.Context, op, query, postID string, now time.Time) (*models.Post, error) {
	var row postRow
	err := r.DB.GetContext(ctx, &row, query, postID, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, fmt.Errorf("post %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("error toggling %s flag: %w", op, err)
	}

	post := row.toModel()
	return &post, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && (constraint == "" || pqErr.Constraint == constraint)
	}
	return strings.Contains(err.Error(), "duplicate key value") &&
		strings.Contains(err.Error(), constraint)
}

// isInvalidID reports a malformed uuid literal (invalid_text_representation).
// No row can have such an id.
func isInvalidID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22P02"
}
