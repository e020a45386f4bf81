// Package lipgloss previews decorations as ANSI-styled terminal output using
// lipgloss for styling. It walks the decoration tree directly, so the
// rendered markdown is never parsed.
package lipgloss

import (
	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/markup"
)

// Render returns v styled for the terminal. Decorations become text
// attributes; quotes and code blocks get a muted bar or gutter. Values that
// are not decorations render through fmt.
//
// Colours follow lipgloss's default renderer, which inspects stdout.
func Render(v any, theme markup.Theme) string {
	return RenderWith(lg.DefaultRenderer(), v, theme)
}

// RenderWith is Render with the colour profile taken from lr. Use it when
// the preview is drawn somewhere other than stdout.
func RenderWith(lr *lg.Renderer, v any, theme markup.Theme) string {
	return newRenderer(lr, theme).render(v)
}
