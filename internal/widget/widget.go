// Package widget is the search box component of a documentation page: it
// owns the loaded index for the page's lifetime and turns input, focus and
// click events into the current results surface.
package widget

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ziadkadry99/docsearch/internal/basepath"
	"github.com/ziadkadry99/docsearch/internal/loader"
	"github.com/ziadkadry99/docsearch/internal/render"
	"github.com/ziadkadry99/docsearch/internal/search"
	"github.com/ziadkadry99/docsearch/internal/searchindex"
)

// Element IDs the component binds to.
const (
	InputID   = "search-input"
	ResultsID = "search-results"
)

// Document is the part of the host page the component depends on.
type Document interface {
	// Path is the URL path of the current page.
	Path() string
	// HasElement reports whether an element with the given id exists.
	HasElement(id string) bool
}

// Target identifies where a click landed.
type Target int

const (
	TargetOutside Target = iota
	TargetInput
	TargetResults
)

// Deps wires a Widget to its collaborators.
type Deps struct {
	Fetcher       loader.Fetcher
	Resolver      basepath.Resolver
	IndexFile     string
	Limit         int
	PreviewLength int
	Timeout       time.Duration
	Logger        *slog.Logger
}

// Widget is the search component bound to one page view.
type Widget struct {
	doc      Document
	resolver basepath.Resolver
	store    *searchindex.Store
	loader   *loader.Loader
	limit    int
	preview  int
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	value   string
	surface render.Surface
}

// Mount creates the component for doc and starts loading the index in the
// background. It returns false, without error, when the page lacks the
// search input or results container.
func Mount(ctx context.Context, doc Document, deps Deps) (*Widget, bool) {
	if doc == nil || !doc.HasElement(InputID) || !doc.HasElement(ResultsID) {
		return nil, false
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := searchindex.NewStore()
	ld := loader.New(deps.Fetcher, store, loader.Options{
		Candidates: deps.Resolver.IndexCandidates(doc.Path(), deps.IndexFile),
		Timeout:    deps.Timeout,
		Logger:     logger,
	})

	ctx, cancel := context.WithCancel(ctx)
	w := &Widget{
		doc:      doc,
		resolver: deps.Resolver,
		store:    store,
		loader:   ld,
		limit:    search.ClampLimit(deps.Limit),
		preview:  deps.PreviewLength,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		surface:  render.HiddenSurface(),
	}
	ld.Start(ctx)
	return w, true
}

// Input handles a change of the search box value.
func (w *Widget) Input(value string) render.Surface {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.value = value
	w.surface = w.compute(value)
	return w.surface
}

// Focus handles the search box regaining focus. A qualifying query is
// recomputed against the current index and shown again.
func (w *Widget) Focus() render.Surface {
	w.mu.Lock()
	defer w.mu.Unlock()
	if search.Qualifies(search.Normalize(w.value)) {
		w.surface = w.compute(w.value)
	}
	return w.surface
}

// Click handles a pointer click anywhere on the page. Clicks outside both
// the input and the results hide the results.
func (w *Widget) Click(target Target) render.Surface {
	w.mu.Lock()
	defer w.mu.Unlock()
	if target == TargetOutside {
		w.surface.Visibility = render.Hidden
	}
	return w.surface
}

// Surface returns the current results surface.
func (w *Widget) Surface() render.Surface {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.surface
}

// Value returns the last input value seen.
func (w *Widget) Value() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Loader exposes the index loader, mainly for status reporting.
func (w *Widget) Loader() *loader.Loader { return w.loader }

// Index returns the index currently visible to queries.
func (w *Widget) Index() *searchindex.Index { return w.store.Get() }

// Close stops any in-flight index load.
func (w *Widget) Close() {
	w.cancel()
}

func (w *Widget) compute(value string) render.Surface {
	query := search.Normalize(value)
	if !search.Qualifies(query) {
		return render.HiddenSurface()
	}

	idx := w.store.Get()
	if idx.Len() == 0 && !w.store.Loaded() {
		if w.loader.EnsureLoaded(w.ctx) {
			w.logger.Debug("search index not ready, load requested", "query", query)
		}
	}

	results := search.Match(idx, query, w.limit)
	page := w.doc.Path()
	return render.Render(results, query, render.Options{
		PreviewLength: w.preview,
		Loading:       w.loader.Status() == loader.StatusLoading,
		Link: func(url string) string {
			return w.resolver.Link(page, url)
		},
	})
}
