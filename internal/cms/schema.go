package cms

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"portfolio/internal/models"
)

// Document shapes as projected by the queries in this package. The validate
// tags mirror the store's entry-time schema rules; reads never check them.

type Slug struct {
	Current string `json:"current" validate:"required"`
}

type SpanDocument struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

type BlockDocument struct {
	Key      string         `json:"_key"`
	Type     string         `json:"_type" validate:"required"`
	Style    string         `json:"style"`
	ListItem string         `json:"listItem"`
	Children []SpanDocument `json:"children"`
}

type PostDocument struct {
	ID           string          `json:"_id" validate:"required"`
	CreatedAt    time.Time       `json:"_createdAt"`
	UpdatedAt    time.Time       `json:"_updatedAt"`
	Title        string          `json:"title" validate:"required"`
	Slug         Slug            `json:"slug"`
	Excerpt      string          `json:"excerpt"`
	Body         []BlockDocument `json:"body" validate:"required,min=1,dive"`
	Tags         []string        `json:"tags"`
	Featured     bool            `json:"featured"`
	ReadTime     int             `json:"readTime" validate:"gte=0"`
	PublishedAt  *time.Time      `json:"publishedAt" validate:"required"`
	Category     string          `json:"category"`
	AuthorName   string          `json:"authorName"`
	MainImageURL string          `json:"mainImageUrl"`
}

type ThoughtDocument struct {
	ID          string          `json:"_id" validate:"required"`
	Content     []BlockDocument `json:"content" validate:"required,min=1,dive"`
	Tags        []string        `json:"tags"`
	Mood        string          `json:"mood" validate:"required,oneof=reflective excited curious grateful focused playful contemplative"`
	PublishedAt time.Time       `json:"publishedAt" validate:"required"`
	Pinned      bool            `json:"pinned"`
}

type ProjectDocument struct {
	ID           string   `json:"_id" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	ImageURL     string   `json:"imageUrl"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"githubUrl" validate:"omitempty,url"`
	DemoURL      *string  `json:"demoUrl" validate:"omitempty,url"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}

type MetricDocument struct {
	Number  string `json:"number" validate:"required"`
	Label   string `json:"label" validate:"required"`
	Context string `json:"context"`
}

type SiteSettingsDocument struct {
	HeroTitle       string           `json:"heroTitle" validate:"required"`
	HeroTagline     string           `json:"heroTagline"`
	HeroDescription string           `json:"heroDescription"`
	HeroHighlight   string           `json:"heroHighlight"`
	Metrics         []MetricDocument `json:"metrics" validate:"dive"`
}

type AuthorDocument struct {
	ID       string `json:"_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Slug     Slug   `json:"slug"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl"`
}

type CategoryDocument struct {
	ID          string `json:"_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Slug        Slug   `json:"slug"`
	Description string `json:"description"`
}

// Schema describes one document type for the lint tooling.
type Schema struct {
	Name  string
	Query string
	New   func() any
}

var Schemas = []Schema{
	{Name: "siteSettings", Query: `*[_type == "siteSettings"] { heroTitle, heroTagline, heroDescription, heroHighlight, metrics[]{ number, label, context } }`, New: func() any { return &SiteSettingsDocument{} }},
	{Name: "post", Query: `*[_type == "post"] ` + postProjection, New: func() any { return &PostDocument{} }},
	{Name: "author", Query: AuthorsQuery, New: func() any { return &AuthorDocument{} }},
	{Name: "category", Query: CategoriesQuery, New: func() any { return &CategoryDocument{} }},
	{Name: "project", Query: `*[_type == "project"] { _id, title, description, technologies, githubUrl, demoUrl, featured, order, "imageUrl": image.asset->url }`, New: func() any { return &ProjectDocument{} }},
	{Name: "thought", Query: ThoughtsQuery, New: func() any { return &ThoughtDocument{} }},
}

var validate = validator.New()

// ValidateDocument decodes raw into the schema's document type and checks its
// required fields.
func ValidateDocument(schema Schema, raw json.RawMessage) error {
	doc := schema.New()
	if err := json.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("decode %s: %w", schema.Name, err)
	}
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("invalid %s: %w", schema.Name, err)
	}
	return nil
}

func (b BlockDocument) ToModel() models.Block {
	block := models.Block{Key: b.Key, Type: b.Type, Style: b.Style}
	for _, child := range b.Children {
		block.Children = append(block.Children, models.Span{Text: child.Text, Marks: child.Marks})
	}
	return block
}

// PlainText flattens blocks into paragraphs separated by blank lines.
func PlainText(blocks []BlockDocument) string {
	paragraphs := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if text := spanText(b.Children); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

func (d PostDocument) ToModel() models.Post {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Post{
		ID:               d.ID,
		Title:            d.Title,
		Slug:             d.Slug.Current,
		Excerpt:          d.Excerpt,
		Content:          bodyOrText(d.Body),
		Category:         d.Category,
		Tags:             tags,
		Featured:         d.Featured,
		Published:        d.PublishedAt != nil,
		AuthorName:       d.AuthorName,
		ReadTimeMinutes:  d.ReadTime,
		FeaturedImageURL: d.MainImageURL,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
		PublishedAt:      d.PublishedAt,
	}
}

func (d ThoughtDocument) ToModel() models.Thought {
	content := make([]models.Block, 0, len(d.Content))
	for _, b := range d.Content {
		content = append(content, b.ToModel())
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Thought{
		ID:          d.ID,
		Content:     content,
		Tags:        tags,
		Mood:        models.Mood(d.Mood),
		PublishedAt: d.PublishedAt,
		Pinned:      d.Pinned,
	}
}

func (d ProjectDocument) ToModel() models.Project {
	technologies := d.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return models.Project{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Image:        d.ImageURL,
		Technologies: technologies,
		GithubURL:    d.GithubURL,
		DemoURL:      d.DemoURL,
		Featured:     d.Featured,
		Order:        d.Order,
	}
}

func (d SiteSettingsDocument) ToModel() models.SiteSettings {
	metrics := make([]models.Metric, 0, len(d.Metrics))
	for _, m := range d.Metrics {
		metrics = append(metrics, models.Metric{Number: m.Number, Label: m.Label, Context: m.Context})
	}
	return models.SiteSettings{
		HeroTitle:       d.HeroTitle,
		HeroTagline:     d.HeroTagline,
		HeroDescription: d.HeroDescription,
		HeroHighlight:   d.HeroHighlight,
		Metrics:         metrics,
	}
}

func (d AuthorDocument) ToModel() models.Author {
	return models.Author{Name: d.Name, Slug: d.Slug.Current, Bio: d.Bio, Image: d.ImageURL}
}

func (d CategoryDocument) ToModel() models.Category {
	return models.Category{Title: d.Title, Slug: d.Slug.Current, Description: d.Description}
}
