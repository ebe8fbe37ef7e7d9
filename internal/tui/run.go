package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ziadkadry99/docsearch/internal/widget"
)

// Run shows the search UI until the user quits and returns the href of the
// chosen result, or "" if none was chosen.
func Run(w *widget.Widget, title string) (string, error) {
	m := New(w, title)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", fmt.Errorf("running search UI: %w", err)
	}
	if fm, ok := final.(*Model); ok {
		return fm.Chosen(), nil
	}
	return "", nil
}
