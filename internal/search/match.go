// Package search filters a search index by plain substring containment.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/ziadkadry99/docsearch/internal/searchindex"
)

const (
	// MinQueryLength is the shortest normalized query that produces results.
	MinQueryLength = 2
	// DefaultLimit is the number of results shown when no limit is given.
	DefaultLimit = 5
	// MaxLimit caps caller-supplied limits.
	MaxLimit = 20
)

// Normalize trims surrounding whitespace and case-folds the query.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Qualifies reports whether a normalized query is long enough to search.
func Qualifies(query string) bool {
	return utf8.RuneCountInString(query) >= MinQueryLength
}

// ClampLimit maps a caller-supplied limit into [1, MaxLimit], using
// DefaultLimit for non-positive values.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Matches reports whether entry contains the normalized query in its title
// or content.
func Matches(e searchindex.Entry, query string) bool {
	if strings.Contains(strings.ToLower(e.Title), query) {
		return true
	}
	return e.Content != "" && strings.Contains(strings.ToLower(e.Content), query)
}

// Match returns up to limit entries of idx that match query, in index order.
// The raw query is normalized first; a query shorter than MinQueryLength
// returns nil. Filtering happens before truncation.
func Match(idx *searchindex.Index, raw string, limit int) []searchindex.Entry {
	query := Normalize(raw)
	if !Qualifies(query) {
		return nil
	}
	limit = ClampLimit(limit)

	results := make([]searchindex.Entry, 0, limit)
	for i := 0; i < idx.Len() && len(results) < limit; i++ {
		e := idx.At(i)
		if Matches(e, query) {
			results = append(results, e)
		}
	}
	return results
}
