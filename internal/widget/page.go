package widget

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Page is a Document backed by a fixed set of element ids.
type Page struct {
	URLPath string
	IDs     map[string]bool
}

// NewPage returns a Page at path containing the given element ids.
func NewPage(path string, ids ...string) *Page {
	p := &Page{URLPath: path, IDs: make(map[string]bool, len(ids))}
	for _, id := range ids {
		p.IDs[id] = true
	}
	return p
}

func (p *Page) Path() string { return p.URLPath }

func (p *Page) HasElement(id string) bool { return p.IDs[id] }

// ParsePage scans an HTML document for element ids.
func ParsePage(path string, r io.Reader) (*Page, error) {
	p := NewPage(path)
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
			return p, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			_, more := z.TagName()
			for more {
				var key, val []byte
				key, val, more = z.TagAttr()
				if string(key) == "id" && len(val) > 0 {
					p.IDs[string(val)] = true
				}
			}
		}
	}
}
