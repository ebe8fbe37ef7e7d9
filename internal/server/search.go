package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ziadkadry99/docsearch/internal/loader"
	"github.com/ziadkadry99/docsearch/internal/render"
	"github.com/ziadkadry99/docsearch/internal/search"
)

// searchResponse is the JSON response for /api/search.
type searchResponse struct {
	Query   string               `json:"query"`
	Visible bool                 `json:"visible"`
	Loading bool                 `json:"loading,omitempty"`
	Results []searchResponseItem `json:"results"`
}

// searchResponseItem is one result in the /api/search response.
type searchResponseItem struct {
	Title     string `json:"title"`
	Href      string `json:"href"`
	Preview   string `json:"preview"`
	TitleHTML string `json:"title_html"`
}

// surface computes the results surface for a request. The page parameter
// is the path of the page the search box lives on and decides the link
// prefix; it defaults to the request path.
func (s *Server) surface(r *http.Request) render.Surface {
	q := r.URL.Query()
	query := search.Normalize(q.Get("q"))
	if !search.Qualifies(query) {
		return render.HiddenSurface()
	}

	limit := s.cfg.MaxResults
	if l, err := strconv.Atoi(q.Get("limit")); err == nil {
		limit = l
	}

	page := q.Get("page")
	if page == "" {
		page = r.URL.Path
	}

	idx := s.store.Get()
	if idx.Len() == 0 && !s.store.Loaded() {
		s.loader.EnsureLoaded(context.Background())
	}
	results := search.Match(idx, query, limit)
	return render.Render(results, query, render.Options{
		PreviewLength: s.cfg.PreviewLength,
		Loading:       s.loader.Status() == loader.StatusLoading,
		Link: func(url string) string {
			return s.resolver.Link(page, url)
		},
	})
}

func (s *Server) handleSearchJSON(w http.ResponseWriter, r *http.Request) {
	sf := s.surface(r)
	resp := searchResponse{
		Query:   sf.Query,
		Visible: sf.Visibility == render.Visible,
		Loading: s.loader.Status() == loader.StatusLoading,
		Results: make([]searchResponseItem, 0, len(sf.Items)),
	}
	for _, it := range sf.Items {
		resp.Results = append(resp.Results, searchResponseItem{
			Title:     it.Title,
			Href:      it.Href,
			Preview:   it.Preview,
			TitleHTML: string(it.TitleHTML),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encoding search response", "error", err)
	}
}

func (s *Server) handleSearchHTML(w http.ResponseWriter, r *http.Request) {
	sf := s.surface(r)
	out, err := sf.HTML()
	if err != nil {
		s.logger.Error("rendering search results", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Search-Visibility", sf.Visibility.String())
	_, _ = w.Write([]byte(out))
}
