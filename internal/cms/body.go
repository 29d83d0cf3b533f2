package cms

import (
	"html"
	"slices"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"portfolio/internal/markdown"
)

// BodyHTML renders rich text blocks through the markdown renderer, so CMS
// posts and bundled posts share one content format. Non-text blocks are
// dropped. Span text is never parsed as markdown.
func BodyHTML(blocks []BlockDocument) (string, error) {
	b := &bodyBuilder{ids: markdown.HeadingIDs()}
	doc := ast.NewDocument()

	var list *ast.List
	for _, block := range blocks {
		if block.Type != "block" || spanText(block.Children) == "" {
			list = nil
			continue
		}

		if block.ListItem == "" {
			list = nil
			doc.AppendChild(doc, b.block(block))
			continue
		}

		marker := byte('-')
		if block.ListItem == "number" {
			marker = '.'
		}
		if list == nil || list.Marker != marker {
			list = ast.NewList(marker)
			list.IsTight = true
			list.Start = 1
			doc.AppendChild(doc, list)
		}
		item := ast.NewListItem(2)
		line := ast.NewTextBlock()
		b.inline(line, block.Children)
		item.AppendChild(item, line)
		list.AppendChild(list, item)
	}

	return markdown.Render(b.source, doc)
}

type bodyBuilder struct {
	source []byte
	ids    parser.IDs
}

func (b *bodyBuilder) block(block BlockDocument) ast.Node {
	if level, ok := headingLevel(block.Style); ok {
		heading := ast.NewHeading(level)
		b.inline(heading, block.Children)
		heading.SetAttributeString("id", b.ids.Generate([]byte(spanText(block.Children)), ast.KindHeading))
		return heading
	}

	p := ast.NewParagraph()
	b.inline(p, block.Children)
	if block.Style != "blockquote" {
		return p
	}
	quote := ast.NewBlockquote()
	quote.AppendChild(quote, p)
	return quote
}

// inline appends each span wrapped in its marks, outermost first. Marks
// without an HTML form (underline, link annotations) are ignored.
func (b *bodyBuilder) inline(parent ast.Node, spans []SpanDocument) {
	for _, span := range spans {
		if span.Text == "" {
			continue
		}

		target := parent
		for _, mark := range span.Marks {
			var wrap ast.Node
			switch mark {
			case "strong":
				wrap = ast.NewEmphasis(2)
			case "em":
				wrap = ast.NewEmphasis(1)
			case "strike-through":
				wrap = extast.NewStrikethrough()
			default:
				continue
			}
			target.AppendChild(target, wrap)
			target = wrap
		}

		if slices.Contains(span.Marks, "code") {
			code := ast.NewCodeSpan()
			code.AppendChild(code, b.text(span.Text))
			target.AppendChild(target, code)
			continue
		}
		b.lines(target, span.Text)
	}
}

// lines turns embedded newlines into hard breaks.
func (b *bodyBuilder) lines(parent ast.Node, s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			br := ast.NewString([]byte("<br>\n"))
			br.SetCode(true)
			parent.AppendChild(parent, br)
		}
		if line != "" {
			parent.AppendChild(parent, b.text(line))
		}
	}
}

// text stores s in the source buffer and returns a raw segment over it; raw
// segments are HTML escaped but skip markdown unescaping.
func (b *bodyBuilder) text(s string) *ast.Text {
	start := len(b.source)
	b.source = append(b.source, s...)
	return ast.NewRawTextSegment(text.NewSegment(start, len(b.source)))
}

func headingLevel(style string) (int, bool) {
	if len(style) == 2 && style[0] == 'h' && style[1] >= '1' && style[1] <= '6' {
		return int(style[1] - '0'), true
	}
	return 0, false
}

func spanText(spans []SpanDocument) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// bodyOrText never fails: if rendering does, the plain text is escaped
// into a single paragraph.
func bodyOrText(blocks []BlockDocument) string {
	out, err := BodyHTML(blocks)
	if err != nil {
		return "<p>" + html.EscapeString(PlainText(blocks)) + "</p>\n"
	}
	return out
}
