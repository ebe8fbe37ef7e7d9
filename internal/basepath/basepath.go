// Package basepath resolves where a documentation site is mounted.
//
// The same site bundle is deployed both at a domain root and under a
// repository-name subpath (for example /Study-MAT). The mount point is found
// by looking for a known marker at the start of the current page path; the
// index fetch and every result link go through the same Resolver so they
// always agree on the prefix.
package basepath

import (
	"path"
	"strings"
)

// DefaultIndexFile is the well-known name of the search index document.
const DefaultIndexFile = "search.json"

// Resolver decides the base path for a page from a subpath marker.
type Resolver struct {
	marker string
}

// New returns a Resolver for the given subpath marker. An empty marker means
// the site is only ever served from the domain root.
func New(marker string) Resolver {
	return Resolver{marker: Clean(marker)}
}

// Clean normalizes a marker to "/name" form, or "" for root.
func Clean(marker string) string {
	marker = strings.TrimSpace(marker)
	if marker == "" || marker == "/" {
		return ""
	}
	marker = path.Clean("/" + strings.Trim(marker, "/"))
	if marker == "/" {
		return ""
	}
	return marker
}

// Marker returns the normalized subpath marker.
func (r Resolver) Marker() string { return r.marker }

// Base returns the base path for pagePath: the marker when the page lives
// under it, otherwise "".
func (r Resolver) Base(pagePath string) string {
	if r.marker == "" {
		return ""
	}
	if pagePath == r.marker || strings.HasPrefix(pagePath, r.marker+"/") {
		return r.marker
	}
	return ""
}

// IndexCandidates returns the ordered list of locations to try for the
// index: subpath-qualified first when the page is under the marker, then
// root-relative.
func (r Resolver) IndexCandidates(pagePath, indexFile string) []string {
	if indexFile == "" {
		indexFile = DefaultIndexFile
	}
	indexFile = strings.TrimLeft(indexFile, "/")

	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	if base := r.Base(pagePath); base != "" {
		add(base + "/" + indexFile)
	}
	add("/" + indexFile)
	return out
}

// Link returns the href for an index entry URL as seen from pagePath.
// Root-relative URLs are always prefixed with the base path when the page is
// served under the subpath, even if they already start with it; absolute and
// document-relative URLs pass through.
func (r Resolver) Link(pagePath, url string) string {
	if url == "" {
		return "#"
	}
	if !strings.HasPrefix(url, "/") || strings.HasPrefix(url, "//") {
		return url
	}
	base := r.Base(pagePath)
	if base == "" {
		return url
	}
	return base + url
}
