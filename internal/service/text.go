package service

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const wordsPerMinute = 200

// NormalizeTags turns free-text "a, b ,, c" input into a tag list: trimmed,
// without empties or repeats, in first-seen order.
func NormalizeTags(input string) []string {
	tags := make([]string, 0)
	seen := make(map[string]struct{})
	for _, part := range strings.Split(input, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// Slugify lowercases title, strips accents and joins alphanumeric runs with
// dashes. A title with no usable characters gets a random slug.
func Slugify(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}

	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimSuffix(sb.String(), "-")
	if slug == "" {
		return "post-" + uuid.New().String()[:8]
	}
	return slug
}

// ReadTimeMinutes estimates reading time, never less than one minute.
func ReadTimeMinutes(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
