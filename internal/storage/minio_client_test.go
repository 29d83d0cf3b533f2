package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	now := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)

	name := ObjectName("Cover.PNG", now)
	assert.True(t, strings.HasPrefix(name, "posts/2025/03/"), name)
	assert.True(t, strings.HasSuffix(name, ".png"), name)

	assert.True(t, strings.HasSuffix(ObjectName("noext", now), ".jpg"))
}

func TestPublicURLRoundTrip(t *testing.T) {
	m := &MinIOClient{bucket: "images", publicURL: "http://cdn.local"}

	url := PublicURL("http://cdn.local/", "images", "posts/2025/03/a.png")
	assert.Equal(t, "http://cdn.local/images/posts/2025/03/a.png", url)

	name, ok := m.ObjectNameFromURL(url)
	assert.True(t, ok)
	assert.Equal(t, "posts/2025/03/a.png", name)

	_, ok = m.ObjectNameFromURL("https://elsewhere.example/a.png")
	assert.False(t, ok)
}
