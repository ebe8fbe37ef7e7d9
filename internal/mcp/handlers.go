package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/docsearch/internal/loader"
	"github.com/ziadkadry99/docsearch/internal/render"
	"github.com/ziadkadry99/docsearch/internal/search"
	"github.com/ziadkadry99/docsearch/internal/searchindex"
)

// handleSearchDocs runs a substring search over the loaded index.
func (s *Server) handleSearchDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	query := search.Normalize(raw)
	if !search.Qualifies(query) {
		return mcp.NewToolResultError(fmt.Sprintf("query must be at least %d characters", search.MinQueryLength)), nil
	}

	limit := request.GetInt("limit", s.limit)
	page := request.GetString("page", "/")

	idx := s.index(ctx)
	sf := render.Render(search.Match(idx, query, limit), query, render.Options{
		PreviewLength: s.preview,
		Loading:       s.loading(),
		Link: func(url string) string {
			return s.resolver.Link(page, url)
		},
	})

	return mcp.NewToolResultText(formatSurface(sf)), nil
}

// handleGetPage returns the index entry for a page URL.
func (s *Server) handleGetPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: url"), nil
	}

	// Links may carry the base path; index URLs do not.
	want := url
	if base := s.resolver.Base(url); base != "" {
		want = strings.TrimPrefix(url, base)
	}

	idx := s.index(ctx)
	for i := 0; i < idx.Len(); i++ {
		e := idx.At(i)
		if e.URL == url || e.URL == want {
			return mcp.NewToolResultText(formatEntry(e)), nil
		}
	}
	return mcp.NewToolResultError(fmt.Sprintf("no indexed page with url %q", url)), nil
}

func (s *Server) handleIndexStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := "loaded"
	if s.loader != nil {
		status = s.loader.Status().String()
	}
	return mcp.NewToolResultText(fmt.Sprintf("Index: %s\nPages: %d\n", status, s.store.Get().Len())), nil
}

// index returns the current index, requesting a load when it is still empty.
func (s *Server) index(ctx context.Context) *searchindex.Index {
	idx := s.store.Get()
	if idx.Len() == 0 && !s.store.Loaded() && s.loader != nil {
		s.loader.EnsureLoaded(context.WithoutCancel(ctx))
	}
	return idx
}

func (s *Server) loading() bool {
	return s.loader != nil && s.loader.Status() == loader.StatusLoading
}

// formatSurface converts a results surface into plain text for AI agent
// consumption.
func formatSurface(sf render.Surface) string {
	if sf.Placeholder != nil {
		return fmt.Sprintf("%s. %s.", sf.Placeholder.Title, sf.Placeholder.Hint)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d result(s) for %q:\n", sf.Count(), sf.Query)
	for i, it := range sf.Items {
		fmt.Fprintf(&sb, "\n--- Result %d ---\n", i+1)
		fmt.Fprintf(&sb, "Title: %s\n", it.Title)
		fmt.Fprintf(&sb, "URL: %s\n", it.Href)
		if it.Preview != "" {
			sb.WriteString("\n")
			sb.WriteString(it.Preview)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func formatEntry(e searchindex.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\nURL: %s\n", e.Title, e.URL)
	if e.Excerpt != "" {
		fmt.Fprintf(&sb, "\n%s\n", e.Excerpt)
	}
	if e.Content != "" {
		fmt.Fprintf(&sb, "\n%s\n", e.Content)
	}
	return sb.String()
}
