package mcp

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/docsearch/internal/basepath"
	"github.com/ziadkadry99/docsearch/internal/loader"
	"github.com/ziadkadry99/docsearch/internal/searchindex"
)

func testStore() *searchindex.Store {
	store := searchindex.NewStore()
	store.Set(searchindex.New([]searchindex.Entry{
		{Title: "Linear Algebra", URL: "/guide/linear.html", Content: "Vectors, matrices and linear maps."},
		{Title: "Calculus", URL: "/guide/calculus.html", Content: "Limits and linear approximation.", Excerpt: "Derivatives and integrals."},
		{Title: "Probability", URL: "/guide/probability.html", Content: "Random variables."},
	}))
	return store
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty result content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return tc.Text
}

func callTool(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"search_docs", searchDocsTool, "search_docs"},
		{"get_page", getPageTool, "get_page"},
		{"index_status", indexStatusTool, "index_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	store := testStore()
	srv := NewServer(store, nil, Options{MaxResults: 50})

	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.store != store {
		t.Error("store not set correctly")
	}
	if srv.limit != 20 {
		t.Errorf("limit = %d, want clamped 20", srv.limit)
	}
}

func TestHandleSearchDocs(t *testing.T) {
	srv := NewServer(testStore(), nil, Options{Resolver: basepath.New("/Study-MAT"), MaxResults: 5})
	ctx := context.Background()

	t.Run("basic search", func(t *testing.T) {
		result, err := srv.handleSearchDocs(ctx, callTool(map[string]any{"query": "  LINEAR "}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Found 2 result(s)") {
			t.Errorf("expected 2 results, got %q", text)
		}
		if strings.Index(text, "Linear Algebra") > strings.Index(text, "Calculus") {
			t.Error("results should keep index order")
		}
		if !strings.Contains(text, "URL: /guide/linear.html") {
			t.Errorf("expected root link, got %q", text)
		}
		if !strings.Contains(text, "Derivatives and integrals.") {
			t.Errorf("expected excerpt preview, got %q", text)
		}
	})

	t.Run("limit", func(t *testing.T) {
		result, _ := srv.handleSearchDocs(ctx, callTool(map[string]any{"query": "linear", "limit": float64(1)}))
		if text := resultText(t, result); !strings.Contains(text, "Found 1 result(s)") {
			t.Errorf("expected 1 result, got %q", text)
		}
	})

	t.Run("page under base path", func(t *testing.T) {
		result, _ := srv.handleSearchDocs(ctx, callTool(map[string]any{"query": "random", "page": "/Study-MAT/index.html"}))
		if text := resultText(t, result); !strings.Contains(text, "URL: /Study-MAT/guide/probability.html") {
			t.Errorf("expected base-prefixed link, got %q", text)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		result, _ := srv.handleSearchDocs(ctx, callTool(map[string]any{"query": "topology"}))
		if result.IsError {
			t.Error("empty results should not be an error")
		}
		if text := resultText(t, result); text != "No results found. Try different keywords." {
			t.Errorf("unexpected placeholder %q", text)
		}
	})

	t.Run("short query", func(t *testing.T) {
		result, _ := srv.handleSearchDocs(ctx, callTool(map[string]any{"query": "a"}))
		if !result.IsError {
			t.Error("expected error for single-character query")
		}
	})

	t.Run("missing query", func(t *testing.T) {
		result, err := srv.handleSearchDocs(ctx, callTool(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing query")
		}
	})
}

func TestHandleGetPage(t *testing.T) {
	srv := NewServer(testStore(), nil, Options{Resolver: basepath.New("/Study-MAT")})
	ctx := context.Background()

	for _, url := range []string{"/guide/calculus.html", "/Study-MAT/guide/calculus.html"} {
		result, err := srv.handleGetPage(ctx, callTool(map[string]any{"url": url}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("%s: unexpected tool error: %v", url, result.Content)
		}
		text := resultText(t, result)
		if !strings.HasPrefix(text, "# Calculus") || !strings.Contains(text, "Limits and linear approximation.") {
			t.Errorf("%s: unexpected page text %q", url, text)
		}
	}

	result, _ := srv.handleGetPage(ctx, callTool(map[string]any{"url": "/nope.html"}))
	if !result.IsError {
		t.Error("expected error for unknown page")
	}
}

func TestHandleIndexStatus(t *testing.T) {
	site := fstest.MapFS{
		"search.json": {Data: []byte(`[{"title":"Home","url":"/index.html"}]`)},
	}
	store := searchindex.NewStore()
	ld := loader.New(loader.FSFetcher{FS: site}, store, loader.Options{
		Candidates: []string{"/search.json"},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	srv := NewServer(store, ld, Options{})
	ctx := context.Background()

	result, _ := srv.handleIndexStatus(ctx, callTool(nil))
	if text := resultText(t, result); !strings.Contains(text, "Index: idle") {
		t.Errorf("expected idle index, got %q", text)
	}

	// A search on the empty store kicks off the load.
	_, _ = srv.handleSearchDocs(ctx, callTool(map[string]any{"query": "home"}))
	if err := ld.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	result, _ = srv.handleIndexStatus(ctx, callTool(nil))
	text := resultText(t, result)
	if !strings.Contains(text, "Index: loaded") || !strings.Contains(text, "Pages: 1") {
		t.Errorf("expected loaded index, got %q", text)
	}
}
