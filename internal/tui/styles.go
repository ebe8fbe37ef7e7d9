package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the search UI.
type Styles struct {
	Title     lipgloss.Style
	Input     lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Preview   lipgloss.Style
	Href      lipgloss.Style
	Highlight lipgloss.Style
	Empty     lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates a Styles instance with default values.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Item:      lipgloss.NewStyle().PaddingLeft(2),
		Selected:  lipgloss.NewStyle().PaddingLeft(1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("99")),
		Preview:   lipgloss.NewStyle().Faint(true),
		Href:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		Help:      lipgloss.NewStyle().Faint(true),
	}
}
