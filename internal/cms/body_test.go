package cms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/markdown"
)

func block(style string, spans ...SpanDocument) BlockDocument {
	return BlockDocument{Type: "block", Style: style, Children: spans}
}

func span(text string, marks ...string) SpanDocument {
	return SpanDocument{Type: "span", Text: text, Marks: marks}
}

func TestBodyHTML(t *testing.T) {
	tests := []struct {
		name   string
		blocks []BlockDocument
		want   string
	}{
		{
			name:   "paragraphs",
			blocks: []BlockDocument{block("normal", span("One")), block("", span("Two"))},
			want:   "<p>One</p>\n<p>Two</p>\n",
		},
		{
			name:   "headings get ids",
			blocks: []BlockDocument{block("h2", span("Why Go?")), block("h3", span("Why Go?"))},
			want:   "<h2 id=\"why-go\">Why Go?</h2>\n<h3 id=\"why-go-1\">Why Go?</h3>\n",
		},
		{
			name:   "marks",
			blocks: []BlockDocument{block("normal", span("a", "strong"), span(" b ", "em"), span("c", "strike-through"), span("d", "underline"))},
			want:   "<p><strong>a</strong><em> b </em><del>c</del>d</p>\n",
		},
		{
			name:   "nested marks and code",
			blocks: []BlockDocument{block("normal", span("x < y", "strong", "code"))},
			want:   "<p><strong><code>x &lt; y</code></strong></p>\n",
		},
		{
			name:   "markdown syntax stays literal",
			blocks: []BlockDocument{block("normal", span("# not a heading *or* [link](x) \\*"))},
			want:   "<p># not a heading *or* [link](x) \\*</p>\n",
		},
		{
			name:   "html is escaped",
			blocks: []BlockDocument{block("normal", span(`<script>alert("x")</script> & co`))},
			want:   "<p>&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt; &amp; co</p>\n",
		},
		{
			name:   "line breaks",
			blocks: []BlockDocument{block("normal", span("one\ntwo"))},
			want:   "<p>one<br>\ntwo</p>\n",
		},
		{
			name:   "blockquote",
			blocks: []BlockDocument{block("blockquote", span("quoted"))},
			want:   "<blockquote>\n<p>quoted</p>\n</blockquote>\n",
		},
		{
			name: "lists",
			blocks: []BlockDocument{
				{Type: "block", ListItem: "bullet", Children: []SpanDocument{span("a")}},
				{Type: "block", ListItem: "bullet", Children: []SpanDocument{span("b")}},
				{Type: "block", ListItem: "number", Children: []SpanDocument{span("first")}},
				block("normal", span("after")),
			},
			want: "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n<ol>\n<li>first</li>\n</ol>\n<p>after</p>\n",
		},
		{
			name:   "non text and empty blocks dropped",
			blocks: []BlockDocument{{Type: "image"}, block("normal"), block("normal", span("kept"))},
			want:   "<p>kept</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BodyHTML(tt.blocks)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBodyHTML_MatchesMarkdownRendering(t *testing.T) {
	fromBlocks, err := BodyHTML([]BlockDocument{
		block("h2", span("Setup")),
		block("normal", span("Run "), span("make", "code"), span(" then "), span("wait", "em"), span(".")),
	})
	require.NoError(t, err)

	fromMarkdown, err := markdown.ToHTML([]byte("## Setup\n\nRun `make` then *wait*.\n"))
	require.NoError(t, err)

	assert.Equal(t, fromMarkdown, fromBlocks)
}
