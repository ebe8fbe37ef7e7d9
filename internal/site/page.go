package site

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// maxIndexContent bounds the full-text body stored per search entry.
const maxIndexContent = 2000

// TOCEntry is one heading in a page's table of contents.
type TOCEntry struct {
	ID    string
	Title string
	Level int
}

// page is a parsed markdown document.
type page struct {
	Title   string
	Excerpt string
	Content string
	TOC     []TOCEntry
	HTML    string
}

// parsePage parses src once and derives everything the site needs from the
// same AST: rendered HTML, title, excerpt, plain text and table of contents.
func parsePage(md goldmark.Markdown, src []byte) (*page, error) {
	doc := md.Parser().Parse(text.NewReader(src))

	p := &page{}
	var body strings.Builder
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			title := nodeText(node, src)
			if node.Level == 1 && p.Title == "" {
				p.Title = title
			}
			if node.Level == 2 || node.Level == 3 {
				if id, ok := node.AttributeString("id"); ok {
					if b, ok := id.([]byte); ok {
						p.TOC = append(p.TOC, TOCEntry{ID: string(b), Title: title, Level: node.Level})
					}
				}
			}
			appendText(&body, title)
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			t := nodeText(node, src)
			if p.Excerpt == "" && node.Parent() == doc {
				p.Excerpt = t
			}
			appendText(&body, t)
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			appendText(&body, linesText(node, src))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			appendText(&body, linesText(node, src))
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			appendText(&body, strings.TrimSpace(string(node.Segment.Value(src))))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	p.Content = truncateBytes(body.String(), maxIndexContent)

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, src, doc); err != nil {
		return nil, err
	}
	p.HTML = buf.String()
	return p, nil
}

// nodeText concatenates the inline text under n.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func linesText(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func appendText(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}

// truncateBytes cuts s to at most n bytes without splitting a rune.
func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
