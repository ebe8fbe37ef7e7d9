package widget

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docsearch/internal/basepath"
	"github.com/ziadkadry99/docsearch/internal/loader"
	"github.com/ziadkadry99/docsearch/internal/render"
)

const vectorsIndex = `[
	{"title":"Vectors","url":"/vectors.html","content":"linear algebra basics"},
	{"title":"Matrices","url":"/matrices.html","content":"linear transforms"}
]`

func testDeps(fsys fstest.MapFS) Deps {
	return Deps{
		Fetcher:  loader.FSFetcher{FS: fsys},
		Resolver: basepath.New("/Study-MAT"),
		Limit:    5,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func mountLoaded(t *testing.T, path string, fsys fstest.MapFS) *Widget {
	t.Helper()
	w, ok := Mount(context.Background(), NewPage(path, InputID, ResultsID), testDeps(fsys))
	require.True(t, ok)
	t.Cleanup(w.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Loader().Wait(ctx))
	return w
}

func TestMountRequiresElements(t *testing.T) {
	deps := testDeps(fstest.MapFS{})
	_, ok := Mount(context.Background(), NewPage("/", InputID), deps)
	assert.False(t, ok)
	_, ok = Mount(context.Background(), NewPage("/", ResultsID), deps)
	assert.False(t, ok)
	_, ok = Mount(context.Background(), nil, deps)
	assert.False(t, ok)
}

func TestShortQueryHides(t *testing.T) {
	w := mountLoaded(t, "/index.html", fstest.MapFS{"search.json": {Data: []byte(vectorsIndex)}})

	for _, q := range []string{"", "l", " l ", "  "} {
		s := w.Input(q)
		assert.Equal(t, render.Hidden, s.Visibility, "query %q", q)
	}
}

func TestInputShowsResultsInOrder(t *testing.T) {
	w := mountLoaded(t, "/index.html", fstest.MapFS{"search.json": {Data: []byte(vectorsIndex)}})

	s := w.Input("  Linear ")
	assert.Equal(t, render.Visible, s.Visibility)
	require.Len(t, s.Items, 2)
	assert.Equal(t, "Vectors", s.Items[0].Title)
	assert.Equal(t, "Matrices", s.Items[1].Title)
	assert.Equal(t, "/vectors.html", s.Items[0].Href)
}

func TestSubpathLinksMatchFetchPrefix(t *testing.T) {
	fsys := fstest.MapFS{"Study-MAT/search.json": {Data: []byte(vectorsIndex)}}
	w := mountLoaded(t, "/Study-MAT/chapter/1.html", fsys)

	assert.Equal(t, []string{"/Study-MAT/search.json", "/search.json"}, w.Loader().Candidates())
	s := w.Input("matrices")
	require.Len(t, s.Items, 1)
	assert.Equal(t, "/Study-MAT/matrices.html", s.Items[0].Href)
}

func TestEmptyIndexShowsPlaceholder(t *testing.T) {
	w := mountLoaded(t, "/index.html", fstest.MapFS{"search.json": {Data: []byte(`[]`)}})

	s := w.Input("anything")
	assert.Equal(t, render.Visible, s.Visibility)
	require.NotNil(t, s.Placeholder)
	assert.Empty(t, s.Items)
}

func TestFailedLoadDegradesAndRetriesOnce(t *testing.T) {
	w := mountLoaded(t, "/index.html", fstest.MapFS{})
	assert.Equal(t, loader.StatusFailed, w.Loader().Status())

	s := w.Input("vectors")
	assert.Equal(t, render.Visible, s.Visibility)
	assert.NotNil(t, s.Placeholder)

	for i := 0; i < 5; i++ {
		w.Input("vectors")
	}
	require.NoError(t, w.Loader().Wait(context.Background()))
	assert.True(t, w.Loader().Retried())
	assert.Equal(t, loader.StatusFailed, w.Loader().Status())
}

func TestClickOutsideAndFocus(t *testing.T) {
	w := mountLoaded(t, "/index.html", fstest.MapFS{"search.json": {Data: []byte(vectorsIndex)}})

	w.Input("vectors")
	assert.Equal(t, render.Visible, w.Click(TargetInput).Visibility)
	assert.Equal(t, render.Visible, w.Click(TargetResults).Visibility)
	assert.Equal(t, render.Hidden, w.Click(TargetOutside).Visibility)

	s := w.Focus()
	assert.Equal(t, render.Visible, s.Visibility)
	assert.Len(t, s.Items, 1)

	w.Input("v")
	w.Click(TargetOutside)
	assert.Equal(t, render.Hidden, w.Focus().Visibility)
}

func TestFocusWithNoResultsShowsPlaceholder(t *testing.T) {
	w := mountLoaded(t, "/index.html", fstest.MapFS{"search.json": {Data: []byte(vectorsIndex)}})
	w.Input("zzz")
	w.Click(TargetOutside)

	s := w.Focus()
	assert.Equal(t, render.Visible, s.Visibility)
	assert.NotNil(t, s.Placeholder)
}

func TestSameQueryIsIdempotent(t *testing.T) {
	w := mountLoaded(t, "/index.html", fstest.MapFS{"search.json": {Data: []byte(vectorsIndex)}})

	a, err := w.Input("linear").HTML()
	require.NoError(t, err)
	b, err := w.Input("linear").HTML()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMetacharacterQueryDoesNotFail(t *testing.T) {
	idx := `[{"title":"f(a(b)","url":"/f.html"}]`
	w := mountLoaded(t, "/index.html", fstest.MapFS{"search.json": {Data: []byte(idx)}})

	s := w.Input("a(b")
	require.Len(t, s.Items, 1)
	html, err := s.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, `f(<mark class="search-highlight">a(b</mark>)`)
}

func TestParsePage(t *testing.T) {
	doc := `<html><body><input type="text" id="search-input"/><div id="search-results"></div><p id=""></p></body></html>`
	p, err := ParsePage("/Study-MAT/index.html", strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, p.HasElement(InputID))
	assert.True(t, p.HasElement(ResultsID))
	assert.False(t, p.HasElement("sidebar"))
	assert.Equal(t, "/Study-MAT/index.html", p.Path())
}

// gatedFetcher holds every fetch until release is closed.
type gatedFetcher struct {
	release chan struct{}
	next    loader.Fetcher
}

func (f gatedFetcher) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	select {
	case <-f.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return f.next.Fetch(ctx, location)
}

func TestQueryDuringLoadShowsLoadingHint(t *testing.T) {
	release := make(chan struct{})
	deps := testDeps(fstest.MapFS{"search.json": {Data: []byte(vectorsIndex)}})
	deps.Fetcher = gatedFetcher{release: release, next: deps.Fetcher}

	w, ok := Mount(context.Background(), NewPage("/index.html", InputID, ResultsID), deps)
	require.True(t, ok)
	t.Cleanup(w.Close)

	s := w.Input("linear")
	assert.Equal(t, render.Visible, s.Visibility)
	assert.Equal(t, 0, s.Count())
	require.NotNil(t, s.Placeholder)
	assert.Equal(t, "The search index is still loading", s.Placeholder.Hint)
	html, err := s.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "still loading")

	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Loader().Wait(ctx))

	s = w.Input("linear")
	assert.Equal(t, 2, s.Count())
	assert.False(t, w.Loader().Retried())
}
