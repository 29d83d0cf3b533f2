package cms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/models"
)

func schemaByName(t *testing.T, name string) Schema {
	t.Helper()
	for _, s := range Schemas {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("schema %q not registered", name)
	return Schema{}
}

func TestSchemasRegistered(t *testing.T) {
	names := make([]string, 0, len(Schemas))
	for _, s := range Schemas {
		names = append(names, s.Name)
		assert.NotEmpty(t, s.Query, s.Name)
		assert.NotNil(t, s.New(), s.Name)
	}
	assert.ElementsMatch(t, []string{"siteSettings", "post", "author", "category", "project", "thought"}, names)
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		raw     string
		wantErr bool
	}{
		{
			name:   "valid post",
			schema: "post",
			raw:    `{"_id":"p1","title":"Hello","slug":{"current":"hello"},"body":[{"_type":"block","children":[{"text":"hi"}]}],"publishedAt":"2025-01-02T03:04:05Z"}`,
		},
		{
			name:    "post without body",
			schema:  "post",
			raw:     `{"_id":"p1","title":"Hello","slug":{"current":"hello"},"body":[],"publishedAt":"2025-01-02T03:04:05Z"}`,
			wantErr: true,
		},
		{
			name:    "post without slug",
			schema:  "post",
			raw:     `{"_id":"p1","title":"Hello","body":[{"_type":"block"}],"publishedAt":"2025-01-02T03:04:05Z"}`,
			wantErr: true,
		},
		{
			name:    "thought with unknown mood",
			schema:  "thought",
			raw:     `{"_id":"t1","content":[{"_type":"block"}],"mood":"angry","publishedAt":"2025-01-02T03:04:05Z"}`,
			wantErr: true,
		},
		{
			name:   "project with links",
			schema: "project",
			raw:    `{"_id":"pr","title":"Tool","description":"d","githubUrl":"https://github.com/x/y"}`,
		},
		{
			name:    "project with bad link",
			schema:  "project",
			raw:     `{"_id":"pr","title":"Tool","description":"d","demoUrl":"not a url"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			schema:  "author",
			raw:     `{`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(schemaByName(t, tt.schema), json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostDocumentToModel(t *testing.T) {
	var doc PostDocument
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id": "p1",
		"title": "Hello",
		"slug": {"current": "hello"},
		"body": [
			{"_type": "block", "children": [{"text": "Hello, "}, {"text": "world."}]},
			{"_type": "image"},
			{"_type": "block", "children": [{"text": "Second."}]}
		],
		"readTime": 4,
		"publishedAt": "2025-01-02T03:04:05Z",
		"category": "Engineering",
		"authorName": "Ada"
	}`), &doc))

	post := doc.ToModel()
	assert.Equal(t, "hello", post.Slug)
	assert.Equal(t, "<p>Hello, world.</p>\n<p>Second.</p>\n", post.Content)
	assert.True(t, post.Published)
	assert.Equal(t, 4, post.ReadTimeMinutes)
	assert.Equal(t, []string{}, post.Tags)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, 2025, post.PublishedAt.Year())
}

func TestThoughtDocumentToModel(t *testing.T) {
	doc := ThoughtDocument{
		ID:      "t1",
		Content: []BlockDocument{{Key: "k", Type: "block", Children: []SpanDocument{{Text: "idea", Marks: []string{"em"}}}}},
		Mood:    "curious",
		Pinned:  true,
	}
	thought := doc.ToModel()
	assert.Equal(t, models.MoodCurious, thought.Mood)
	require.Len(t, thought.Content, 1)
	assert.Equal(t, "idea", thought.Content[0].Children[0].Text)
	assert.Equal(t, []string{"em"}, thought.Content[0].Children[0].Marks)
	assert.True(t, thought.Pinned)
}

func TestSiteSettingsDocumentToModel(t *testing.T) {
	doc := SiteSettingsDocument{
		HeroTitle: "Hi",
		Metrics:   []MetricDocument{{Number: "10+", Label: "years"}},
	}
	settings := doc.ToModel()
	assert.Equal(t, "Hi", settings.HeroTitle)
	assert.Equal(t, []models.Metric{{Number: "10+", Label: "years"}}, settings.Metrics)
}
