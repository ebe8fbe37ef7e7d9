package loader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
)

// Fetcher retrieves the raw index document at a site-relative location such
// as "/Study-MAT/search.json".
type Fetcher interface {
	Fetch(ctx context.Context, location string) (io.ReadCloser, error)
}

// HTTPFetcher fetches locations relative to a site origin over HTTP.
type HTTPFetcher struct {
	Client *http.Client
	Origin *url.URL
}

// NewHTTPFetcher parses origin (for example "https://user.github.io").
func NewHTTPFetcher(client *http.Client, origin string) (*HTTPFetcher, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parsing origin %q: %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("origin %q must be an http or https URL", origin)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{Client: client, Origin: u}, nil
}

// StatusError is returned for a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

func (f *HTTPFetcher) Fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	ref, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parsing location %q: %w", location, err)
	}
	target := f.Origin.ResolveReference(ref).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{URL: target, Code: resp.StatusCode}
	}
	return resp.Body, nil
}

// FSFetcher reads locations from a built site on disk. The location's
// leading slash is dropped, so "/Study-MAT/search.json" maps to
// "Study-MAT/search.json" inside FS.
type FSFetcher struct {
	FS fs.FS
}

func (f FSFetcher) Fetch(_ context.Context, location string) (io.ReadCloser, error) {
	name := strings.TrimPrefix(location, "/")
	if name == "" {
		return nil, fmt.Errorf("empty location")
	}
	return f.FS.Open(name)
}
