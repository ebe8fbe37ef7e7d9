package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docsearch/internal/searchindex"
)

func titles(entries []searchindex.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "linear", Normalize("  LINEAR \t"))
	assert.Equal(t, "", Normalize("   "))
}

func TestShortQueriesReturnNothing(t *testing.T) {
	idx := searchindex.New([]searchindex.Entry{{Title: "a"}, {Title: "ab"}})
	for _, q := range []string{"", " ", "a", " a ", "é"} {
		assert.Nil(t, Match(idx, q, 5), "query %q", q)
	}
	assert.Len(t, Match(idx, "ab", 5), 1)
}

func TestMatchTitleOrContent(t *testing.T) {
	idx := searchindex.New([]searchindex.Entry{
		{Title: "Vectors", Content: "linear algebra basics"},
		{Title: "Matrices", Content: "linear transforms"},
		{Title: "Linear maps"},
		{Title: "Groups", Content: "abstract algebra"},
	})

	got := Match(idx, "Linear", 5)
	assert.Equal(t, []string{"Vectors", "Matrices", "Linear maps"}, titles(got))

	got = Match(idx, "ALGEBRA", 5)
	assert.Equal(t, []string{"Vectors", "Groups"}, titles(got))

	assert.Empty(t, Match(idx, "topology", 5))
}

func TestPartialWordMatches(t *testing.T) {
	idx := searchindex.New([]searchindex.Entry{{Title: "Transformers"}})
	assert.Len(t, Match(idx, "form", 5), 1)
}

func TestTruncationAfterFiltering(t *testing.T) {
	var entries []searchindex.Entry
	for i := 0; i < 12; i++ {
		title := fmt.Sprintf("page %d", i)
		if i%2 == 0 {
			title += " match"
		}
		entries = append(entries, searchindex.Entry{Title: title})
	}
	idx := searchindex.New(entries)

	got := Match(idx, "match", 5)
	require.Len(t, got, 5)
	assert.Equal(t, []string{"page 0 match", "page 2 match", "page 4 match", "page 6 match", "page 8 match"}, titles(got))
}

func TestMatchIsSubsequenceOfIndex(t *testing.T) {
	entries := []searchindex.Entry{
		{Title: "Alpha", Content: "shared term"},
		{Title: "Beta"},
		{Title: "Gamma shared"},
		{Title: "Delta", Content: "SHARED"},
	}
	idx := searchindex.New(entries)

	var want []string
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), "shared") || strings.Contains(strings.ToLower(e.Content), "shared") {
			want = append(want, e.Title)
		}
	}
	assert.Equal(t, want, titles(Match(idx, "shared", 8)))
}

func TestEmptyIndex(t *testing.T) {
	got := Match(searchindex.Empty(), "anything", 5)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDeterministic(t *testing.T) {
	idx := searchindex.New([]searchindex.Entry{{Title: "one two"}, {Title: "two three"}})
	assert.Equal(t, Match(idx, "two", 5), Match(idx, "two", 5))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ClampLimit(0))
	assert.Equal(t, DefaultLimit, ClampLimit(-3))
	assert.Equal(t, 8, ClampLimit(8))
	assert.Equal(t, MaxLimit, ClampLimit(100))
}
