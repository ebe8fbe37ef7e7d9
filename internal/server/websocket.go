package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/docsearch/internal/loader"
	"github.com/ziadkadry99/docsearch/internal/render"
	"github.com/ziadkadry99/docsearch/internal/widget"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// eventMessage is an incoming WebSocket event from the search box.
type eventMessage struct {
	Type   string `json:"type"`             // "input", "focus" or "click"
	Value  string `json:"value,omitempty"`  // input value
	Target string `json:"target,omitempty"` // click target: "input", "results" or "outside"
}

// surfaceMessage is the outgoing WebSocket message format.
type surfaceMessage struct {
	Type      string `json:"type"` // "surface" or "error"
	SessionID string `json:"session_id"`
	Visible   bool   `json:"visible"`
	Count     int    `json:"count"`
	HTML      string `json:"html,omitempty"`
	Message   string `json:"message,omitempty"`
}

// handleWebSocket runs one search widget per connection. The widget is
// mounted for the page named by the "page" query parameter and lives until
// the connection closes.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	pagePath := r.URL.Query().Get("page")
	if pagePath == "" {
		pagePath = "/"
	}
	doc, err := s.openPage(pagePath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	logger := s.logger.With("session_id", sessionID, "page", pagePath)

	wg, ok := widget.Mount(r.Context(), doc, widget.Deps{
		Fetcher:       loader.FSFetcher{FS: s.site},
		Resolver:      s.resolver,
		IndexFile:     s.cfg.IndexFile,
		Limit:         s.cfg.MaxResults,
		PreviewLength: s.cfg.PreviewLength,
		Logger:        logger,
	})
	if !ok {
		s.send(conn, surfaceMessage{Type: "error", SessionID: sessionID, Message: "page has no search box"})
		return
	}
	defer wg.Close()
	logger.Debug("search session opened")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read", "error", err)
			}
			return
		}

		var ev eventMessage
		if err := json.Unmarshal(msg, &ev); err != nil {
			s.send(conn, surfaceMessage{Type: "error", SessionID: sessionID, Message: "invalid message format"})
			continue
		}

		var sf render.Surface
		switch ev.Type {
		case "input":
			sf = wg.Input(ev.Value)
		case "focus":
			sf = wg.Focus()
		case "click":
			sf = wg.Click(parseTarget(ev.Target))
		default:
			s.send(conn, surfaceMessage{Type: "error", SessionID: sessionID, Message: "unknown message type: " + ev.Type})
			continue
		}

		out, err := sf.HTML()
		if err != nil {
			logger.Error("rendering search results", "error", err)
			s.send(conn, surfaceMessage{Type: "error", SessionID: sessionID, Message: "render failed"})
			continue
		}
		s.send(conn, surfaceMessage{
			Type:      "surface",
			SessionID: sessionID,
			Visible:   sf.Visibility == render.Visible,
			Count:     sf.Count(),
			HTML:      out,
		})
	}
}

func (s *Server) send(conn *websocket.Conn, msg surfaceMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		s.logger.Warn("websocket write", "error", err)
	}
}

func parseTarget(t string) widget.Target {
	switch t {
	case "input":
		return widget.TargetInput
	case "results":
		return widget.TargetResults
	default:
		return widget.TargetOutside
	}
}

// openPage loads the generated HTML page at pagePath so the widget can check
// it carries the search elements.
func (s *Server) openPage(pagePath string) (*widget.Page, error) {
	name := pagePath
	if base := s.resolver.Base(pagePath); base != "" {
		name = strings.TrimPrefix(name, base)
	}
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" || strings.HasSuffix(pagePath, "/") {
		name = path.Join(name, "index.html")
	}

	f, err := s.site.Open(name)
	if err != nil {
		return nil, fmt.Errorf("page %s not found", pagePath)
	}
	defer f.Close()
	return widget.ParsePage(pagePath, f)
}
