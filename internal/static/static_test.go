package static

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5, set.Len())

	posts := set.Posts()
	slugs := make([]string, 0, len(posts))
	for _, p := range posts {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{
		"ideas-in-progress",
		"building-small-services-with-go",
		"notes-on-design-systems",
		"welcome",
		"shipping-small",
	}, slugs)

	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].PublishedAt.After(*posts[i-1].PublishedAt), "posts not sorted newest first")
	}
}

func TestLoadEmbeddedRendersMarkdown(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	post, ok := set.BySlug("building-small-services-with-go")
	require.True(t, ok)
	assert.Contains(t, post.Content, "<table>")
	assert.Contains(t, post.Content, `<h2 id="what-stays-simple">`)
	assert.Equal(t, []string{"go", "backend"}, post.Tags)
	assert.True(t, post.Published)
	assert.True(t, post.Featured)
	assert.Equal(t, "Engineering", post.Category)
}

func TestBySlugMissing(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	_, ok := set.BySlug("nope")
	assert.False(t, ok)
}

func TestPostsReturnsCopies(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	first := set.Posts()
	first[0].Title = "changed"
	first[0].Tags[0] = "changed"
	*first[0].PublishedAt = first[0].PublishedAt.AddDate(1, 0, 0)

	second := set.Posts()
	assert.NotEqual(t, "changed", second[0].Title)
	assert.NotEqual(t, "changed", second[0].Tags[0])
	assert.NotEqual(t, *first[0].PublishedAt, *second[0].PublishedAt)
}

func post(slug, publishedAt string) string {
	return strings.Join([]string{
		"---",
		"title: " + slug,
		"slug: " + slug,
		"published: true",
		"publishedAt: " + publishedAt,
		"---",
		"body of " + slug,
	}, "\n")
}

func TestLoadFSTiesKeepManifestOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"c/index.yaml": {Data: []byte("posts: [b.md, a.md, c.md]\n")},
		"c/a.md":       {Data: []byte(post("a", "2024-01-01T00:00:00Z"))},
		"c/b.md":       {Data: []byte(post("b", "2024-01-01T00:00:00Z"))},
		"c/c.md":       {Data: []byte(post("c", "2024-02-01T00:00:00Z"))},
	}

	set, err := LoadFS(fsys, "c")
	require.NoError(t, err)

	posts := set.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, "c", posts[0].Slug)
	assert.Equal(t, "b", posts[1].Slug)
	assert.Equal(t, "a", posts[2].Slug)
	assert.Equal(t, "static-a", posts[2].ID)
	assert.Equal(t, []string{}, posts[2].Tags)
}

func TestLoadFSErrors(t *testing.T) {
	tests := []struct {
		name  string
		fsys  fstest.MapFS
		check func(t *testing.T, err error)
	}{
		{
			name: "duplicate slug",
			fsys: fstest.MapFS{
				"c/index.yaml": {Data: []byte("posts: [a.md, b.md]\n")},
				"c/a.md":       {Data: []byte(post("same", "2024-01-01T00:00:00Z"))},
				"c/b.md":       {Data: []byte(post("same", "2024-01-02T00:00:00Z"))},
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrDuplicateSlug), err)
			},
		},
		{
			name: "missing manifest",
			fsys: fstest.MapFS{},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "read manifest")
			},
		},
		{
			name: "missing post file",
			fsys: fstest.MapFS{
				"c/index.yaml": {Data: []byte("posts: [gone.md]\n")},
			},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "gone.md")
			},
		},
		{
			name: "missing publishedAt",
			fsys: fstest.MapFS{
				"c/index.yaml": {Data: []byte("posts: [a.md]\n")},
				"c/a.md":       {Data: []byte("---\ntitle: A\nslug: a\n---\nbody")},
			},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "invalid post")
			},
		},
		{
			name: "no frontmatter",
			fsys: fstest.MapFS{
				"c/index.yaml": {Data: []byte("posts: [a.md]\n")},
				"c/a.md":       {Data: []byte("just markdown")},
			},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "parse frontmatter")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := LoadFS(tt.fsys, "c")
			require.Error(t, err)
			assert.Nil(t, set)
			tt.check(t, err)
		})
	}
}
