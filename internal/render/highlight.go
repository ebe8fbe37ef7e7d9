package render

import (
	"html/template"
	"strings"
	"unicode/utf8"
)

// Segment is a run of text that either matched the query or did not.
type Segment struct {
	Text  string
	Match bool
}

// Segments splits text around every occurrence of the query, compared the
// way the matcher compares: both sides lowercased with strings.ToLower. Match
// boundaries are mapped back to whole runes of the original text. An empty
// query yields the whole text as a single unmatched segment.
func Segments(text, query string) []Segment {
	if text == "" {
		return nil
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []Segment{{Text: text}}
	}

	lower, starts, ends := foldWithOffsets(text)
	var segs []Segment
	last := 0
	for from := 0; from < len(lower); {
		i := strings.Index(lower[from:], query)
		if i < 0 {
			break
		}
		a, b := from+i, from+i+len(query)
		from = b
		start, end := starts[a], ends[b-1]
		if start < last {
			start = last
		}
		if end <= start {
			continue
		}
		if start > last {
			segs = append(segs, Segment{Text: text[last:start]})
		}
		segs = append(segs, Segment{Text: text[start:end], Match: true})
		last = end
	}
	if last < len(text) {
		segs = append(segs, Segment{Text: text[last:]})
	}
	return segs
}

// foldWithOffsets lowercases text rune by rune. For every byte of the result
// it records the byte span of the original rune that produced it, since
// lowercasing can change a rune's encoded length.
func foldWithOffsets(text string) (string, []int, []int) {
	var b strings.Builder
	b.Grow(len(text))
	starts := make([]int, 0, len(text))
	ends := make([]int, 0, len(text))
	for i, r := range text {
		size := utf8.RuneLen(r)
		if r == utf8.RuneError {
			_, size = utf8.DecodeRuneInString(text[i:])
		}
		folded := strings.ToLower(text[i : i+size])
		b.WriteString(folded)
		for range len(folded) {
			starts = append(starts, i)
			ends = append(ends, i+size)
		}
	}
	return b.String(), starts, ends
}

// Highlight returns text as escaped HTML with every occurrence of query
// wrapped in a <mark> element.
func Highlight(text, query string) template.HTML {
	var b strings.Builder
	for _, s := range Segments(text, query) {
		if s.Match {
			b.WriteString(`<mark class="search-highlight">`)
			b.WriteString(template.HTMLEscapeString(s.Text))
			b.WriteString(`</mark>`)
			continue
		}
		b.WriteString(template.HTMLEscapeString(s.Text))
	}
	return template.HTML(b.String())
}
