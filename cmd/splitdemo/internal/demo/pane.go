package demo

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pane is the smallest possible tea.Model a Container child needs: it
// just remembers the size it was last given and paints its label
// centered in a box of that size, enough to see sash drags move real
// content around.
type pane struct {
	label         string
	width, height int
	style         lipgloss.Style
}

func newPane(label string, color string) pane {
	return pane{
		label: label,
		style: lipgloss.NewStyle().
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color(color)),
	}
}

func (p pane) Init() tea.Cmd { return nil }

func (p pane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if resize, ok := msg.(tea.WindowSizeMsg); ok {
		p.width, p.height = resize.Width, resize.Height
	}
	return p, nil
}

func (p pane) View() string {
	w, h := p.width, p.height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return p.style.Width(w).Height(h).Render(p.label)
}
