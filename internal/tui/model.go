// Package tui is an interactive terminal front end for the search widget.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziadkadry99/docsearch/internal/loader"
	"github.com/ziadkadry99/docsearch/internal/render"
	"github.com/ziadkadry99/docsearch/internal/widget"
)

const pollInterval = 200 * time.Millisecond

// pollMsg re-checks the index while it is loading.
type pollMsg struct{}

// Model is the bubbletea model for the search UI. Key presses in the input
// feed the widget; tab moves focus between the input and the page, which
// maps to the widget's focus and outside-click events.
type Model struct {
	widget *widget.Widget
	title  string
	input  textinput.Model
	styles *Styles

	surface  render.Surface
	selected int
	chosen   string
	width    int
}

// New creates a model over a mounted widget.
func New(w *widget.Widget, title string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search documentation..."
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.Focus()

	return &Model{
		widget:  w,
		title:   title,
		input:   ti,
		styles:  NewStyles(),
		surface: w.Surface(),
	}
}

// Chosen returns the href of the result picked with enter, if any.
func (m *Model) Chosen() string { return m.chosen }

// Init starts the cursor blink and index polling.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, poll())
}

func poll() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}

// Update handles key and poll messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case pollMsg:
		if m.widget.Loader().Status() != loader.StatusLoading {
			// Results computed while loading are stale once it finishes.
			if m.input.Focused() {
				m.setSurface(m.widget.Focus())
			}
			return m, nil
		}
		return m, poll()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if !m.input.Focused() {
				return m, tea.Quit
			}
			m.blur()
			return m, nil
		case tea.KeyTab, tea.KeyShiftTab:
			if m.input.Focused() {
				m.blur()
				return m, nil
			}
			m.setSurface(m.widget.Focus())
			return m, m.input.Focus()
		case tea.KeyUp:
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case tea.KeyDown:
			if m.selected < m.surface.Count()-1 {
				m.selected++
			}
			return m, nil
		case tea.KeyEnter:
			if m.surface.Visibility == render.Visible && m.selected < m.surface.Count() {
				m.chosen = m.surface.Items[m.selected].Href
				return m, tea.Quit
			}
			return m, nil
		}

		if !m.input.Focused() {
			if msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}

		var cmd tea.Cmd
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.setSurface(m.widget.Input(m.input.Value()))
			if m.widget.Loader().Status() == loader.StatusLoading {
				return m, tea.Batch(cmd, poll())
			}
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// blur moves focus away from the input, which hides the results like a
// click elsewhere on the page.
func (m *Model) blur() {
	m.input.Blur()
	m.setSurface(m.widget.Click(widget.TargetOutside))
}

func (m *Model) setSurface(s render.Surface) {
	m.surface = s
	if m.selected >= s.Count() {
		m.selected = 0
	}
}

// View renders the search box and, when visible, its results.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.input.View()))
	b.WriteString("\n")

	if m.surface.Visibility == render.Visible {
		b.WriteString(m.renderResults())
	}

	status := fmt.Sprintf("index %s, %d pages", m.widget.Loader().Status(), m.widget.Index().Len())
	b.WriteString(m.styles.Status.Render(status))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("type to search • ↑/↓ select • enter open • tab focus • esc back"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderResults() string {
	var b strings.Builder
	if p := m.surface.Placeholder; p != nil {
		b.WriteString(m.styles.Empty.Render(p.Title + " · " + p.Hint))
		b.WriteString("\n")
		return b.String()
	}

	for i, it := range m.surface.Items {
		var item strings.Builder
		item.WriteString(m.highlight(it.Title))
		item.WriteString("  ")
		item.WriteString(m.styles.Href.Render(it.Href))
		if it.Preview != "" {
			item.WriteString("\n")
			item.WriteString(m.styles.Preview.Render(m.highlight(it.Preview)))
		}

		style := m.styles.Item
		if i == m.selected {
			style = m.styles.Selected
		}
		if m.width > 0 {
			style = style.Width(m.width - 2)
		}
		b.WriteString(style.Render(item.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) highlight(text string) string {
	var b strings.Builder
	for _, seg := range render.Segments(text, m.surface.Query) {
		if seg.Match {
			b.WriteString(m.styles.Highlight.Render(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
