package site

import (
	"path"
	"strings"

	"github.com/ziadkadry99/docsearch/internal/searchindex"
)

// searchEntry builds the index entry for a rendered page. URLs are
// root-relative so the same index works at a domain root and under a
// subpath; the search box adds the prefix at query time.
func searchEntry(relPath string, p *page) searchindex.Entry {
	title := p.Title
	if title == "" {
		title = cleanDisplayName(path.Base(relPath))
	}
	return searchindex.Entry{
		Title:   title,
		URL:     "/" + strings.TrimPrefix(mdPathToHTML(relPath), "/"),
		Content: p.Content,
		Excerpt: p.Excerpt,
	}
}
