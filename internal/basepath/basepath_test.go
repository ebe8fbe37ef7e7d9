package basepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/", ""},
		{"Study-MAT", "/Study-MAT"},
		{"/Study-MAT/", "/Study-MAT"},
		{"  /docs  ", "/docs"},
		{"/a/b/", "/a/b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clean(tt.in), "Clean(%q)", tt.in)
	}
}

func TestBase(t *testing.T) {
	r := New("/Study-MAT")
	tests := []struct {
		page string
		want string
	}{
		{"/Study-MAT/guide/intro.html", "/Study-MAT"},
		{"/Study-MAT", "/Study-MAT"},
		{"/Study-MAT/", "/Study-MAT"},
		{"/guide/intro.html", ""},
		{"/Study-MATH/x.html", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Base(tt.page), "Base(%q)", tt.page)
	}

	assert.Equal(t, "", New("").Base("/Study-MAT/x.html"))
}

func TestIndexCandidates(t *testing.T) {
	r := New("/Study-MAT")

	assert.Equal(t,
		[]string{"/Study-MAT/search.json", "/search.json"},
		r.IndexCandidates("/Study-MAT/index.html", ""))
	assert.Equal(t,
		[]string{"/search.json"},
		r.IndexCandidates("/index.html", "search.json"))
	assert.Equal(t,
		[]string{"/Study-MAT/idx/search.json", "/idx/search.json"},
		r.IndexCandidates("/Study-MAT/", "/idx/search.json"))
}

func TestLink(t *testing.T) {
	r := New("/Study-MAT")
	tests := []struct {
		name string
		page string
		url  string
		want string
	}{
		{"root relative under subpath", "/Study-MAT/a.html", "/guide/b.html", "/Study-MAT/guide/b.html"},
		{"url starting with base is still prefixed", "/Study-MAT/a.html", "/Study-MAT/guide/b.html", "/Study-MAT/Study-MAT/guide/b.html"},
		{"root layout", "/a.html", "/guide/b.html", "/guide/b.html"},
		{"absolute", "/Study-MAT/a.html", "https://example.com/x", "https://example.com/x"},
		{"protocol relative", "/Study-MAT/a.html", "//cdn.example.com/x", "//cdn.example.com/x"},
		{"document relative", "/Study-MAT/a.html", "guide/b.html", "guide/b.html"},
		{"empty", "/Study-MAT/a.html", "", "#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Link(tt.page, tt.url))
		})
	}
}

func TestLinkPrefixesEveryRootRelativeURL(t *testing.T) {
	r := New("/docs")
	assert.Equal(t, "/docs/docs/intro.html", r.Link("/docs/index.html", "/docs/intro.html"))
	assert.Equal(t, "/docs/docs", r.Link("/docs/index.html", "/docs"))
	assert.Equal(t, "/docs/intro.html", r.Link("/docs/index.html", "/intro.html"))
}

func TestLoaderAndLinksAgree(t *testing.T) {
	r := New("Study-MAT")
	page := "/Study-MAT/chapter/1.html"

	first := r.IndexCandidates(page, "")[0]
	link := r.Link(page, "/search.json")
	assert.Equal(t, first, link)
}
