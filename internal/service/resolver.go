package service

import (
	"context"
	"log/slog"
	"strings"

	"portfolio/internal/cms"
	"portfolio/internal/models"
)

// PostQuery filters the public post list. Zero values disable a filter.
type PostQuery struct {
	Category     string
	Tag          string
	FeaturedOnly bool
	Limit        int
}

// ContentResolver picks the source of truth for every public read. Posts come
// from the CMS and fall back to the bundled set; everything else is CMS only.
// Admin-authored posts are never consulted here.
type ContentResolver interface {
	ResolvePublicPosts(ctx context.Context, q PostQuery) []models.Post
	ResolvePublicPost(ctx context.Context, slug string) (*models.Post, error)
	ResolveThoughts(ctx context.Context, limit int) []models.Thought
	ResolveProjects(ctx context.Context, featuredOnly bool) []models.Project
	ResolveSiteSettings(ctx context.Context) *models.SiteSettings
	ResolveCategories(ctx context.Context) []models.Category
}

type contentResolver struct {
	cms    ContentSource
	static StaticPosts
	logger *slog.Logger
}

func NewContentResolver(source ContentSource, static StaticPosts, logger *slog.Logger) ContentResolver {
	return &contentResolver{
		cms:    source,
		static: static,
		logger: logger,
	}
}

func (r *contentResolver) ResolvePublicPosts(ctx context.Context, q PostQuery) []models.Post {
	var docs []cms.PostDocument
	err := r.cms.Fetch(ctx, cms.PostsQuery, map[string]any{
		"category":     q.Category,
		"tag":          q.Tag,
		"featuredOnly": q.FeaturedOnly,
	}, &docs)

	switch {
	case err != nil:
		r.warn("cms posts unavailable, using static set", err)
	case len(docs) == 0:
		r.logger.Info("cms returned no posts, using static set")
	default:
		posts := make([]models.Post, 0, len(docs))
		for _, doc := range docs {
			posts = append(posts, doc.ToModel())
		}
		return limitPosts(posts, q.Limit)
	}

	return limitPosts(r.staticPosts(q), q.Limit)
}

// staticPosts returns published static posts matching q, newest first.
func (r *contentResolver) staticPosts(q PostQuery) []models.Post {
	posts := make([]models.Post, 0)
	for _, p := range r.static.Posts() {
		if !p.Published {
			continue
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if q.Tag != "" && !containsTag(p.Tags, q.Tag) {
			continue
		}
		if q.FeaturedOnly && !p.Featured {
			continue
		}
		posts = append(posts, p)
	}
	return posts
}

func (r *contentResolver) ResolvePublicPost(ctx context.Context, slug string) (*models.Post, error) {
	var doc *cms.PostDocument
	err := r.cms.Fetch(ctx, cms.PostBySlugQuery, map[string]any{"slug": slug}, &doc)
	switch {
	case err != nil:
		r.warn("cms post unavailable, using static set", err, "slug", slug)
	case doc != nil:
		post := doc.ToModel()
		if post.Published {
			return &post, nil
		}
		r.logger.Info("cms post is unpublished, using static set", "slug", slug)
	}

	post, ok := r.static.BySlug(slug)
	if !ok || !post.Published {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (r *contentResolver) ResolveThoughts(ctx context.Context, limit int) []models.Thought {
	var docs []cms.ThoughtDocument
	if err := r.cms.Fetch(ctx, cms.ThoughtsQuery, nil, &docs); err != nil {
		r.warn("cms thoughts unavailable", err)
		return []models.Thought{}
	}

	thoughts := make([]models.Thought, 0, len(docs))
	for _, doc := range docs {
		if limit > 0 && len(thoughts) == limit {
			break
		}
		thoughts = append(thoughts, doc.ToModel())
	}
	return thoughts
}

func (r *contentResolver) ResolveProjects(ctx context.Context, featuredOnly bool) []models.Project {
	var docs []cms.ProjectDocument
	if err := r.cms.Fetch(ctx, cms.ProjectsQuery, map[string]any{"featuredOnly": featuredOnly}, &docs); err != nil {
		r.warn("cms projects unavailable", err)
		return []models.Project{}
	}

	projects := make([]models.Project, 0, len(docs))
	for _, doc := range docs {
		projects = append(projects, doc.ToModel())
	}
	return projects
}

func (r *contentResolver) ResolveSiteSettings(ctx context.Context) *models.SiteSettings {
	var doc *cms.SiteSettingsDocument
	if err := r.cms.Fetch(ctx, cms.SiteSettingsQuery, nil, &doc); err != nil {
		r.warn("cms site settings unavailable", err)
		return nil
	}
	if doc == nil {
		return nil
	}
	settings := doc.ToModel()
	return &settings
}

func (r *contentResolver) ResolveCategories(ctx context.Context) []models.Category {
	var docs []cms.CategoryDocument
	if err := r.cms.Fetch(ctx, cms.CategoriesQuery, nil, &docs); err != nil {
		r.warn("cms categories unavailable", err)
		return []models.Category{}
	}

	categories := make([]models.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, doc.ToModel())
	}
	return categories
}

func (r *contentResolver) warn(msg string, err error, args ...any) {
	r.logger.Warn(msg, append(args, "error", err)...)
}

func limitPosts(posts []models.Post, limit int) []models.Post {
	if limit > 0 && len(posts) > limit {
		return posts[:limit]
	}
	return posts
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
