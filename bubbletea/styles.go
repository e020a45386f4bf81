package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/markup"
)

// Styles maps a Theme to lipgloss styles for TUI chrome.
type Styles struct {
	Prompt lipgloss.Style
	Label  lipgloss.Style
	Status lipgloss.Style
}

// NewStyles creates Styles from a Theme using lipgloss's default renderer.
func NewStyles(t markup.Theme) Styles {
	return NewStylesWith(lipgloss.DefaultRenderer(), t)
}

// NewStylesWith creates Styles bound to r.
func NewStylesWith(r *lipgloss.Renderer, t markup.Theme) Styles {
	return Styles{
		Prompt: r.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Label:  r.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Status: r.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
