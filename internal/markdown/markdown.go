// Package markdown holds the one HTML renderer used for post bodies, whether
// they start as markdown text or as an already built document tree.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// ToHTML renders GitHub flavoured markdown. Headings get generated ids.
func ToHTML(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Render writes a tree whose text segments point into source.
func Render(source []byte, doc ast.Node) (string, error) {
	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, source, doc); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return buf.String(), nil
}

// HeadingIDs generates heading ids the same way ToHTML does, unique per
// returned set.
func HeadingIDs() parser.IDs {
	return parser.NewContext().IDs()
}
