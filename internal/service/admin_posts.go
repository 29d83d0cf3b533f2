package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/publisher"
	"portfolio/internal/repository"
)

type CreatePostRequest struct {
	Title            string `json:"title" validate:"required,notblank,max=200"`
	Slug             string `json:"slug" validate:"omitempty,max=200"`
	Excerpt          string `json:"excerpt" validate:"max=500"`
	Content          string `json:"content" validate:"required,notblank"`
	Category         string `json:"category" validate:"max=100"`
	Tags             string `json:"tags"`
	Featured         bool   `json:"featured"`
	Published        bool   `json:"published"`
	AuthorName       string `json:"authorName" validate:"max=100"`
	ReadTimeMinutes  int    `json:"readTimeMinutes" validate:"gte=0"`
	FeaturedImageURL string `json:"featuredImageUrl" validate:"omitempty,url"`
}

// UpdatePostRequest is a patch; nil fields are left untouched.
type UpdatePostRequest struct {
	Title            *string `json:"title" validate:"omitnil,notblank,max=200"`
	Slug             *string `json:"slug" validate:"omitempty,max=200"`
	Excerpt          *string `json:"excerpt" validate:"omitempty,max=500"`
	Content          *string `json:"content" validate:"omitnil,notblank"`
	Category         *string `json:"category" validate:"omitempty,max=100"`
	Tags             *string `json:"tags"`
	Featured         *bool   `json:"featured"`
	Published        *bool   `json:"published"`
	AuthorName       *string `json:"authorName" validate:"omitempty,max=100"`
	ReadTimeMinutes  *int    `json:"readTimeMinutes" validate:"omitempty,gte=0"`
	FeaturedImageURL *string `json:"featuredImageUrl" validate:"omitempty,url"`
}

type AdminPostFilter struct {
	Published *bool
	Featured  *bool
	Limit     int
}

// AdminPostService is the write path for admin-authored posts. It reads and
// writes the relational store only.
type AdminPostService interface {
	ListAdminPosts(ctx context.Context, filter AdminPostFilter) ([]models.Post, error)
	Create(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	Update(ctx context.Context, postID string, req UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, postID string) error
	TogglePublished(ctx context.Context, postID string) (*models.Post, error)
	ToggleFeatured(ctx context.Context, postID string) (*models.Post, error)
}

type adminPostService struct {
	postRepo      repository.PostRepository
	publisher     EventPublisher
	defaultAuthor string
	logger        *slog.Logger
	now           func() time.Time
}

func NewAdminPostService(postRepo repository.PostRepository, pub EventPublisher, defaultAuthor string, logger *slog.Logger) AdminPostService {
	return &adminPostService{
		postRepo:      postRepo,
		publisher:     pub,
		defaultAuthor: defaultAuthor,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *adminPostService) ListAdminPosts(ctx context.Context, filter AdminPostFilter) ([]models.Post, error) {
	q := repository.Query{
		Filter:  map[string]any{},
		OrderBy: "created_at",
		Desc:    true,
		Limit:   filter.Limit,
	}
	if filter.Published != nil {
		q.Filter["published"] = *filter.Published
	}
	if filter.Featured != nil {
		q.Filter["featured"] = *filter.Featured
	}

	posts, err := s.postRepo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list admin posts: %w", err)
	}
	return posts, nil
}

func (s *adminPostService) Create(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	now := s.now().UTC()

	post := &models.Post{
		Title:            strings.TrimSpace(req.Title),
		Slug:             strings.TrimSpace(req.Slug),
		Excerpt:          req.Excerpt,
		Content:          req.Content,
		Category:         req.Category,
		Tags:             NormalizeTags(req.Tags),
		Featured:         req.Featured,
		Published:        req.Published,
		AuthorName:       req.AuthorName,
		ReadTimeMinutes:  req.ReadTimeMinutes,
		FeaturedImageURL: req.FeaturedImageURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if post.Title == "" {
		return nil, &MutationError{Op: "create", Err: fmt.Errorf("%w: title is blank", ErrInvalidInput)}
	}
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.ReadTimeMinutes == 0 {
		post.ReadTimeMinutes = ReadTimeMinutes(post.Content)
	}
	if post.AuthorName == "" {
		post.AuthorName = s.defaultAuthor
	}
	if post.Published {
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, &MutationError{Op: "create", Err: err}
	}

	s.publish(ctx, publisher.EventPostCreated, post)
	return post, nil
}

func (s *adminPostService) Update(ctx context.Context, postID string, req UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, s.mutationError("update", postID, err)
	}

	now := s.now().UTC()
	if req.Title != nil {
		post.Title = strings.TrimSpace(*req.Title)
		if post.Title == "" {
			return nil, &MutationError{Op: "update", Err: fmt.Errorf("%w: title is blank", ErrInvalidInput)}
		}
	}
	if req.Slug != nil {
		post.Slug = strings.TrimSpace(*req.Slug)
		if post.Slug == "" {
			post.Slug = Slugify(post.Title)
		}
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
		if req.ReadTimeMinutes == nil {
			post.ReadTimeMinutes = ReadTimeMinutes(post.Content)
		}
	}
	if req.ReadTimeMinutes != nil {
		post.ReadTimeMinutes = *req.ReadTimeMinutes
		if post.ReadTimeMinutes == 0 {
			post.ReadTimeMinutes = ReadTimeMinutes(post.Content)
		}
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = NormalizeTags(*req.Tags)
	}
	if req.Featured != nil {
		post.Featured = *req.Featured
	}
	if req.AuthorName != nil {
		post.AuthorName = *req.AuthorName
		if post.AuthorName == "" {
			post.AuthorName = s.defaultAuthor
		}
	}
	if req.FeaturedImageURL != nil {
		post.FeaturedImageURL = *req.FeaturedImageURL
	}
	if req.Published != nil {
		post.Published = *req.Published
		post.PublishedAt = nil
		if post.Published {
			post.PublishedAt = &now
		}
	}
	post.UpdatedAt = now

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, s.mutationError("update", postID, err)
	}

	s.publish(ctx, publisher.EventPostUpdated, post)
	return post, nil
}

func (s *adminPostService) Delete(ctx context.Context, postID string) error {
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return s.mutationError("delete", postID, err)
	}

	s.publish(ctx, publisher.EventPostDeleted, map[string]string{"id": postID})
	return nil
}

func (s *adminPostService) TogglePublished(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.postRepo.TogglePublished(ctx, postID, s.now().UTC())
	if err != nil {
		return nil, s.mutationError("toggle published", postID, err)
	}

	s.publish(ctx, publisher.EventPostPublished, post)
	return post, nil
}

func (s *adminPostService) ToggleFeatured(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.postRepo.ToggleFeatured(ctx, postID, s.now().UTC())
	if err != nil {
		return nil, s.mutationError("toggle featured", postID, err)
	}

	s.publish(ctx, publisher.EventPostFeatured, post)
	return post, nil
}

func (s *adminPostService) mutationError(op, postID string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &MutationError{Op: op, Err: fmt.Errorf("%w: %s", ErrNotFound, postID)}
	}
	return &MutationError{Op: op, Err: err}
}

// publish is best effort: the write already happened.
func (s *adminPostService) publish(ctx context.Context, eventType string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, publisher.NewEvent(eventType, payload)); err != nil {
		s.logger.Warn("failed to publish event", "type", eventType, "error", err)
	}
}
