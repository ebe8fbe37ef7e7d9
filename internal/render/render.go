// Package render turns matched index entries into the search results
// surface shown under the search box.
package render

import (
	"bytes"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/ziadkadry99/docsearch/internal/searchindex"
)

// DefaultPreviewLength is the number of content runes used for a preview
// when an entry has no excerpt.
const DefaultPreviewLength = 150

const (
	noResultsTitle = "No results found"
	noResultsHint  = "Try different keywords"
	loadingHint    = "The search index is still loading"
)

// Visibility is the state of the results container.
type Visibility int

const (
	Hidden Visibility = iota
	Visible
)

func (v Visibility) String() string {
	if v == Visible {
		return "visible"
	}
	return "hidden"
}

// Item is one navigable result.
type Item struct {
	Title       string
	Preview     string
	Href        string
	TitleHTML   template.HTML
	PreviewHTML template.HTML
}

// Placeholder is the fixed informational entry shown when nothing matched.
type Placeholder struct {
	Title string
	Hint  string
}

// Surface is the rendered state of the results container.
type Surface struct {
	Visibility  Visibility
	Query       string
	Items       []Item
	Placeholder *Placeholder
}

// HiddenSurface is the surface for queries below the minimum length.
func HiddenSurface() Surface {
	return Surface{Visibility: Hidden}
}

// Options controls rendering.
type Options struct {
	PreviewLength int
	// Link maps an entry URL to the href used in the result list.
	Link func(url string) string
	// Loading selects the loading hint for the empty placeholder.
	Loading bool
}

// Preview returns the excerpt if present, otherwise the first n runes of the
// content followed by an ellipsis, otherwise "".
func Preview(e searchindex.Entry, n int) string {
	if e.Excerpt != "" {
		return e.Excerpt
	}
	if e.Content == "" {
		return ""
	}
	if n <= 0 {
		n = DefaultPreviewLength
	}
	return truncateRunes(strings.TrimSpace(e.Content), n) + "..."
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Render builds a visible surface for results. An empty result set yields
// the "no results" placeholder; the surface is visible either way.
func Render(results []searchindex.Entry, query string, opts Options) Surface {
	s := Surface{Visibility: Visible, Query: query}
	if len(results) == 0 {
		hint := noResultsHint
		if opts.Loading {
			hint = loadingHint
		}
		s.Placeholder = &Placeholder{Title: noResultsTitle, Hint: hint}
		return s
	}

	link := opts.Link
	if link == nil {
		link = func(url string) string {
			if url == "" {
				return "#"
			}
			return url
		}
	}

	s.Items = make([]Item, len(results))
	for i, e := range results {
		preview := Preview(e, opts.PreviewLength)
		s.Items[i] = Item{
			Title:       e.Title,
			Preview:     preview,
			Href:        link(e.URL),
			TitleHTML:   Highlight(e.Title, query),
			PreviewHTML: Highlight(preview, query),
		}
	}
	return s
}

// Count returns the number of navigable results.
func (s Surface) Count() int { return len(s.Items) }

var resultsTemplate = template.Must(template.New("results").Parse(
	`{{if .Placeholder}}<div class="search-item search-item-empty">` +
		`<div class="search-item-title">{{.Placeholder.Title}}</div>` +
		`<div class="search-item-preview">{{.Placeholder.Hint}}</div></div>` +
		`{{else}}{{range .Items}}<a href="{{.Href}}" class="search-item">` +
		`<div class="search-item-title">{{.TitleHTML}}</div>` +
		`<div class="search-item-preview">{{.PreviewHTML}}</div></a>` +
		`{{end}}{{end}}`))

// HTML renders the surface as the inner HTML of the results container.
// A hidden surface renders as the empty string.
func (s Surface) HTML() (string, error) {
	if s.Visibility == Hidden {
		return "", nil
	}
	var buf bytes.Buffer
	if err := resultsTemplate.Execute(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}
