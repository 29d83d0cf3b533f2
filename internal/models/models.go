package models

import (
	"time"
)

type Post struct {
	ID               string     `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Slug             string     `json:"slug" db:"slug"`
	Excerpt          string     `json:"excerpt" db:"excerpt"`
	Content          string     `json:"content" db:"content"`
	Category         string     `json:"category" db:"category"`
	Tags             []string   `json:"tags" db:"-"`
	Featured         bool       `json:"featured" db:"featured"`
	Published        bool       `json:"published" db:"published"`
	AuthorName       string     `json:"authorName" db:"author_name"`
	ReadTimeMinutes  int        `json:"readTimeMinutes" db:"read_time_minutes"`
	FeaturedImageURL string     `json:"featuredImageUrl" db:"featured_image_url"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
	PublishedAt      *time.Time `json:"publishedAt" db:"published_at"`
}

// Mood of a thought.
type Mood string

const (
	MoodReflective    Mood = "reflective"
	MoodExcited       Mood = "excited"
	MoodCurious       Mood = "curious"
	MoodGrateful      Mood = "grateful"
	MoodFocused       Mood = "focused"
	MoodPlayful       Mood = "playful"
	MoodContemplative Mood = "contemplative"
)

var Moods = []Mood{
	MoodReflective,
	MoodExcited,
	MoodCurious,
	MoodGrateful,
	MoodFocused,
	MoodPlayful,
	MoodContemplative,
}

func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

type Span struct {
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// Block is one entry of a rich text sequence.
type Block struct {
	Key      string `json:"key,omitempty"`
	Type     string `json:"type"`
	Style    string `json:"style,omitempty"`
	Children []Span `json:"children,omitempty"`
}

type Thought struct {
	ID          string    `json:"id"`
	Content     []Block   `json:"content"`
	Tags        []string  `json:"tags"`
	Mood        Mood      `json:"mood"`
	PublishedAt time.Time `json:"publishedAt"`
	Pinned      bool      `json:"pinned"`
}

type Project struct {
	ID           string   `json:"id" db:"id"`
	Title        string   `json:"title" db:"title"`
	Description  string   `json:"description" db:"description"`
	Image        string   `json:"image" db:"image"`
	Technologies []string `json:"technologies" db:"-"`
	GithubURL    *string  `json:"githubUrl,omitempty" db:"github_url"`
	DemoURL      *string  `json:"demoUrl,omitempty" db:"demo_url"`
	Featured     bool     `json:"featured" db:"featured"`
	Order        int      `json:"order" db:"sort_order"`
}

type Metric struct {
	Number  string `json:"number"`
	Label   string `json:"label"`
	Context string `json:"context"`
}

type SiteSettings struct {
	HeroTitle       string   `json:"heroTitle"`
	HeroTagline     string   `json:"heroTagline"`
	HeroDescription string   `json:"heroDescription"`
	HeroHighlight   string   `json:"heroHighlight"`
	Metrics         []Metric `json:"metrics"`
}

const ContactStatusNew = "new"

type ContactSubmission struct {
	ID          string     `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Email       string     `json:"email" db:"email"`
	Company     *string    `json:"company,omitempty" db:"company"`
	ProjectType *string    `json:"projectType,omitempty" db:"project_type"`
	Budget      *string    `json:"budget,omitempty" db:"budget"`
	Message     string     `json:"message" db:"message"`
	Status      string     `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	RespondedAt *time.Time `json:"respondedAt,omitempty" db:"responded_at"`
}

type Author struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Bio   string `json:"bio,omitempty"`
	Image string `json:"image,omitempty"`
}

// StoreStats summarises the relational store for operators.
type StoreStats struct {
	Tables             int `json:"tables" db:"tables"`
	Posts              int `json:"posts" db:"posts"`
	Drafts             int `json:"drafts" db:"drafts"`
	Projects           int `json:"projects" db:"projects"`
	ContactSubmissions int `json:"contactSubmissions" db:"contact_submissions"`
}

type Category struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}
