package static

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"portfolio/internal/markdown"
	"portfolio/internal/models"
)

//go:embed content/*.md content/index.yaml
var content embed.FS

const (
	contentDir    = "content"
	indexFileName = "index.yaml"
)

var ErrDuplicateSlug = errors.New("duplicate slug")

type manifest struct {
	Posts []string `yaml:"posts"`
}

type record struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title" validate:"required"`
	Slug            string   `yaml:"slug" validate:"required"`
	Excerpt         string   `yaml:"excerpt"`
	Category        string   `yaml:"category"`
	Tags            []string `yaml:"tags"`
	Featured        bool     `yaml:"featured"`
	Published       bool     `yaml:"published"`
	AuthorName      string   `yaml:"authorName"`
	ReadTimeMinutes int      `yaml:"readTimeMinutes" validate:"gte=0"`
	FeaturedImage   string   `yaml:"featuredImageUrl"`
	PublishedAt     string   `yaml:"publishedAt" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// Set is the bundled, read-only post collection.
type Set struct {
	posts  []models.Post
	bySlug map[string]int
}

var validate = validator.New()

// Load reads the embedded content directory.
func Load() (*Set, error) {
	return LoadFS(content, contentDir)
}

// LoadFS reads dir/index.yaml from fsys and every post it lists, in order.
func LoadFS(fsys fs.FS, dir string) (*Set, error) {
	raw, err := fs.ReadFile(fsys, path.Join(dir, indexFileName))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	set := &Set{
		posts:  make([]models.Post, 0, len(m.Posts)),
		bySlug: make(map[string]int, len(m.Posts)),
	}
	for _, name := range m.Posts {
		post, err := loadPost(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if _, ok := set.bySlug[post.Slug]; ok {
			return nil, fmt.Errorf("%s: %w: %q", name, ErrDuplicateSlug, post.Slug)
		}
		set.bySlug[post.Slug] = len(set.posts)
		set.posts = append(set.posts, post)
	}

	// newest first, manifest order on ties
	sort.SliceStable(set.posts, func(i, j int) bool {
		return set.posts[i].PublishedAt.After(*set.posts[j].PublishedAt)
	})
	for i, p := range set.posts {
		set.bySlug[p.Slug] = i
	}

	return set, nil
}

func loadPost(fsys fs.FS, name string) (models.Post, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return models.Post{}, fmt.Errorf("read post: %w", err)
	}

	var rec record
	body, err := frontmatter.MustParse(bytes.NewReader(raw), &rec)
	if err != nil {
		return models.Post{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	if err := validate.Struct(rec); err != nil {
		return models.Post{}, fmt.Errorf("invalid post: %w", err)
	}

	publishedAt, err := time.Parse(time.RFC3339, rec.PublishedAt)
	if err != nil {
		return models.Post{}, fmt.Errorf("parse publishedAt: %w", err)
	}

	html, err := markdown.ToHTML(body)
	if err != nil {
		return models.Post{}, err
	}

	id := rec.ID
	if id == "" {
		id = "static-" + rec.Slug
	}
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Post{
		ID:               id,
		Title:            rec.Title,
		Slug:             rec.Slug,
		Excerpt:          rec.Excerpt,
		Content:          html,
		Category:         rec.Category,
		Tags:             tags,
		Featured:         rec.Featured,
		Published:        rec.Published,
		AuthorName:       rec.AuthorName,
		ReadTimeMinutes:  rec.ReadTimeMinutes,
		FeaturedImageURL: rec.FeaturedImage,
		CreatedAt:        publishedAt,
		UpdatedAt:        publishedAt,
		PublishedAt:      &publishedAt,
	}, nil
}

// Posts returns every bundled post, newest first.
func (s *Set) Posts() []models.Post {
	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, clonePost(p))
	}
	return out
}

func (s *Set) BySlug(slug string) (models.Post, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return models.Post{}, false
	}
	return clonePost(s.posts[i]), true
}

func (s *Set) Len() int {
	return len(s.posts)
}

func clonePost(p models.Post) models.Post {
	p.Tags = append([]string{}, p.Tags...)
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		p.PublishedAt = &t
	}
	return p
}
