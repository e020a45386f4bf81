package lipgloss

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/markup"
)

type ansiRenderer struct {
	bold          lg.Style
	italic        lg.Style
	underline     lg.Style
	strikethrough lg.Style
	spoiler       lg.Style
	code          lg.Style
	accent        lg.Style
	muted         lg.Style
}

func newRenderer(lr *lg.Renderer, theme markup.Theme) *ansiRenderer {
	return &ansiRenderer{
		bold:          lr.NewStyle().Bold(true),
		italic:        lr.NewStyle().Italic(true),
		underline:     lr.NewStyle().Underline(true),
		strikethrough: lr.NewStyle().Strikethrough(true),
		spoiler:       lr.NewStyle().Foreground(ansiColor(theme.Spoiler)).Background(ansiColor(theme.Spoiler)),
		code:          lr.NewStyle().Foreground(ansiColor(theme.Code)),
		accent:        lr.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		muted:         lr.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
	}
}

func ansiColor(index int) lg.TerminalColor {
	if index < 0 {
		return lg.NoColor{}
	}
	return lg.Color(strconv.Itoa(index))
}

type languager interface {
	Language() any
}

func (r *ansiRenderer) render(v any) string {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Sprint(v)
	}
	switch n := v.(type) {
	case markup.Chain:
		return r.render(n.Value())
	case markup.Node:
		return r.renderNode(n)
	default:
		return fmt.Sprint(v)
	}
}

func (r *ansiRenderer) renderNode(n markup.Node) string {
	if n.Style() == markup.StyleCodeblock {
		var lang any
		if l, ok := n.(languager); ok {
			lang = l.Language()
		}
		return r.renderCodeblock(n.Inner(), lang)
	}

	inner := r.render(n.Inner())
	if inner == "" {
		return ""
	}

	switch n.Style() {
	case markup.StyleBold:
		return r.styleLines(r.bold, inner)
	case markup.StyleItalic:
		return r.styleLines(r.italic, inner)
	case markup.StyleUnderscore:
		return r.styleLines(r.underline, inner)
	case markup.StyleStrikethrough:
		return r.styleLines(r.strikethrough, inner)
	case markup.StyleSpoiler:
		return r.styleLines(r.spoiler, inner)
	case markup.StyleInlineCodeblock:
		return r.styleLines(r.code, inner)
	case markup.StyleQuote:
		// A single-line quote only marks its first line.
		first, rest, found := strings.Cut(inner, "\n")
		out := r.bar() + first
		if found {
			out += "\n" + rest
		}
		return out
	case markup.StyleBlockQuote:
		return r.prefixLines(r.bar(), inner)
	default:
		return inner
	}
}

// renderCodeblock writes an optional language label, then every body line
// behind a gutter. Code is not styled further.
func (r *ansiRenderer) renderCodeblock(body, lang any) string {
	var buf strings.Builder
	if lang != nil {
		if label := r.render(lang); label != "" {
			buf.WriteString(r.accent.Render(label))
			buf.WriteString("\n")
		}
	}
	content := strings.TrimRight(r.render(body), "\n")
	buf.WriteString(r.prefixLines(r.gutter(), content))
	return buf.String()
}

// styleLines styles each line separately so multi-line values do not carry
// padding from lipgloss block layout.
func (r *ansiRenderer) styleLines(style lg.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (r *ansiRenderer) prefixLines(prefix, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func (r *ansiRenderer) bar() string {
	return r.muted.Render("▌") + " "
}

func (r *ansiRenderer) gutter() string {
	return r.muted.Render("│") + " "
}
