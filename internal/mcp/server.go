package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/docsearch/internal/basepath"
	"github.com/ziadkadry99/docsearch/internal/loader"
	"github.com/ziadkadry99/docsearch/internal/search"
	"github.com/ziadkadry99/docsearch/internal/searchindex"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Options configures the documentation search tools.
type Options struct {
	Resolver      basepath.Resolver
	MaxResults    int
	PreviewLength int
}

// Server wraps an MCP server that exposes documentation search tools.
type Server struct {
	store    *searchindex.Store
	loader   *loader.Loader
	resolver basepath.Resolver
	limit    int
	preview  int
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server answering from the index in store.
// The loader, if set, is asked to (re)load when a query finds the store empty.
func NewServer(store *searchindex.Store, ld *loader.Loader, opts Options) *Server {
	s := &Server{
		store:    store,
		loader:   ld,
		resolver: opts.Resolver,
		limit:    search.ClampLimit(opts.MaxResults),
		preview:  opts.PreviewLength,
	}

	s.mcp = server.NewMCPServer(
		"docsearch",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchDocsTool, s.handleSearchDocs)
	s.mcp.AddTool(getPageTool, s.handleGetPage)
	s.mcp.AddTool(indexStatusTool, s.handleIndexStatus)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
