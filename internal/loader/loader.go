// Package loader retrieves the search index from an ordered list of
// candidate locations and publishes it into a searchindex.Store.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ziadkadry99/docsearch/internal/searchindex"
)

// ErrIndexUnavailable is returned when no candidate produced a usable index.
var ErrIndexUnavailable = errors.New("search index unavailable")

// DefaultTimeout bounds a single candidate attempt.
const DefaultTimeout = 10 * time.Second

// Status is the lifecycle of index loading for one component.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Options configures a Loader.
type Options struct {
	Candidates []string
	Timeout    time.Duration
	Logger     *slog.Logger
}

// Loader fetches the index once, falling back across candidates, and allows
// at most one retry after a failed initial attempt.
type Loader struct {
	fetcher    Fetcher
	store      *searchindex.Store
	candidates []string
	timeout    time.Duration
	logger     *slog.Logger

	mu      sync.Mutex
	status  Status
	retried bool
	done    chan struct{}
}

// New creates a Loader publishing into store.
func New(fetcher Fetcher, store *searchindex.Store, opts Options) *Loader {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	cands := make([]string, len(opts.Candidates))
	copy(cands, opts.Candidates)
	return &Loader{
		fetcher:    fetcher,
		store:      store,
		candidates: cands,
		timeout:    opts.Timeout,
		logger:     opts.Logger,
	}
}

// Candidates returns the ordered candidate locations.
func (l *Loader) Candidates() []string {
	cp := make([]string, len(l.candidates))
	copy(cp, l.candidates)
	return cp
}

// Load tries each candidate in order and returns the first index that was
// fetched and decoded successfully. It does not touch the store.
func (l *Loader) Load(ctx context.Context) (*searchindex.Index, string, error) {
	var errs []error
	for _, loc := range l.candidates {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		idx, err := l.attempt(ctx, loc)
		if err != nil {
			l.logger.Debug("search index candidate failed", "location", loc, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", loc, err))
			continue
		}
		return idx, loc, nil
	}
	if len(errs) == 0 {
		return nil, "", fmt.Errorf("%w: no candidate locations", ErrIndexUnavailable)
	}
	return nil, "", fmt.Errorf("%w: %w", ErrIndexUnavailable, errors.Join(errs...))
}

func (l *Loader) attempt(ctx context.Context, location string) (*searchindex.Index, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	body, err := l.fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return searchindex.Decode(body)
}

// Start launches the initial load in the background. Calling Start more
// than once has no effect.
func (l *Loader) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.status != StatusIdle {
		return
	}
	l.launchLocked(ctx)
}

// EnsureLoaded is called by query handlers that found the store empty.
// It starts the initial load if none was attempted, or a single retry if the
// initial attempt failed. It reports whether a new attempt was launched.
func (l *Loader) EnsureLoaded(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch l.status {
	case StatusIdle:
		l.launchLocked(ctx)
		return true
	case StatusFailed:
		if l.retried {
			return false
		}
		l.retried = true
		l.logger.Info("retrying search index load")
		l.launchLocked(ctx)
		return true
	default:
		return false
	}
}

func (l *Loader) launchLocked(ctx context.Context) {
	l.status = StatusLoading
	done := make(chan struct{})
	l.done = done
	go func() {
		defer close(done)
		l.run(ctx)
	}()
}

func (l *Loader) run(ctx context.Context) {
	idx, loc, err := l.Load(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.status = StatusFailed
		l.logger.Warn("error fetching search index", "candidates", l.candidates, "error", err)
		return
	}
	l.store.Set(idx)
	l.status = StatusLoaded
	l.logger.Info("search index loaded", "location", loc, "items", idx.Len())
}

// Status returns the current loading status.
func (l *Loader) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Retried reports whether the single retry has been used.
func (l *Loader) Retried() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.retried
}

// Wait blocks until the in-flight attempt, if any, finishes or ctx is done.
func (l *Loader) Wait(ctx context.Context) error {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
