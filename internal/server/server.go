package server

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/docsearch/internal/basepath"
	"github.com/ziadkadry99/docsearch/internal/loader"
	"github.com/ziadkadry99/docsearch/internal/searchindex"
)

// Config holds server configuration.
type Config struct {
	Port          int
	SiteDir       string // directory containing the generated site
	BasePath      string // subpath the site is also served under, e.g. /Study-MAT
	IndexFile     string
	MaxResults    int
	PreviewLength int
	FetchTimeout  time.Duration
	AllowAll      bool // allow all CORS origins (dev mode)
}

// Server serves a generated documentation site together with search
// endpoints backed by the site's own index.
type Server struct {
	cfg        Config
	site       fs.FS
	resolver   basepath.Resolver
	store      *searchindex.Store
	loader     *loader.Loader
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for the site in cfg.SiteDir.
func New(cfg Config, logger *slog.Logger) *Server {
	return NewWithFS(cfg, os.DirFS(cfg.SiteDir), logger)
}

// NewWithFS creates a server over an arbitrary site filesystem.
func NewWithFS(cfg Config, site fs.FS, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.IndexFile == "" {
		cfg.IndexFile = basepath.DefaultIndexFile
	}
	cfg.BasePath = basepath.Clean(cfg.BasePath)

	store := searchindex.NewStore()
	s := &Server{
		cfg:      cfg,
		site:     site,
		resolver: basepath.New(cfg.BasePath),
		store:    store,
		logger:   logger,
	}
	// The site directory always holds the index at its root, whatever
	// subpath it is published under.
	s.loader = loader.New(loader.FSFetcher{FS: site}, store, loader.Options{
		Candidates: basepath.New("").IndexCandidates("/", cfg.IndexFile),
		Timeout:    cfg.FetchTimeout,
		Logger:     logger,
	})
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", s.handleHealth)

	r.Group(s.siteRoutes)
	if base := s.resolver.Marker(); base != "" {
		r.Route(base, func(sub chi.Router) {
			s.searchRoutes(sub)
			sub.Handle("/*", http.StripPrefix(base, http.FileServer(http.FS(s.site))))
		})
	}
	return r
}

func (s *Server) siteRoutes(r chi.Router) {
	s.searchRoutes(r)
	r.Handle("/*", http.FileServer(http.FS(s.site)))
}

func (s *Server) searchRoutes(r chi.Router) {
	r.Get("/api/search", s.handleSearchJSON)
	r.Get("/search", s.handleSearchHTML)
	r.Get("/ws/search", s.handleWebSocket)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","index":%q,"entries":%d}`, s.loader.Status(), s.store.Get().Len())
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// LoadIndex loads the site's search index and waits for the result.
func (s *Server) LoadIndex(ctx context.Context) error {
	s.loader.Start(ctx)
	if err := s.loader.Wait(ctx); err != nil {
		return err
	}
	if s.loader.Status() != loader.StatusLoaded {
		return loader.ErrIndexUnavailable
	}
	return nil
}

// Start begins listening on the configured port.
func (s *Server) Start(ctx context.Context) error {
	s.loader.Start(ctx)

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("docsearch server listening", "addr", addr, "base_path", s.cfg.BasePath)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
