package bubbletea

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/markup"
	preview "github.com/fwojciec/markup/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var _ tea.Model = Model{}

const rawLabel = "markup "

// Model is the Bubble Tea model for the decorator TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Help renders the key binding hints.
	Help help.Model

	keys     KeyMap
	theme    markup.Theme
	renderer *lipgloss.Renderer
	styles   Styles

	// decorations are applied innermost first.
	decorations []markup.Style

	width    int
	result   string
	accepted bool
}

// New creates a new TUI Model styled with theme.
func New(theme markup.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Type some text..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		Input:    ti,
		Help:     help.New(),
		keys:     DefaultKeyMap(),
		theme:    theme,
		renderer: lipgloss.DefaultRenderer(),
		styles:   NewStyles(theme),
	}
}

// WithRenderer returns m with its styles and preview bound to r. The
// program's output should be the writer r was created for.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.renderer = r
	m.styles = NewStylesWith(r, m.theme)
	return m
}

// Markup returns the current input with every decoration applied.
func (m Model) Markup() markup.Chain {
	c := markup.Text(m.Input.Value())
	for _, s := range m.decorations {
		c = c.Apply(s)
	}
	return c
}

// Decorations returns the applied decorations, innermost first.
func (m Model) Decorations() []markup.Style {
	return slices.Clone(m.decorations)
}

// Result returns the accepted markup. The boolean is false when the user
// quit without accepting.
func (m Model) Result() (string, bool) {
	return m.result, m.accepted
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.Input.Width = max(msg.Width-3, 1)
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Accept):
		m.result = m.Markup().String()
		m.accepted = true
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Undo):
		if len(m.decorations) > 0 {
			m.decorations = slices.Clip(m.decorations[:len(m.decorations)-1])
		}
		return m, nil, true
	}
	for _, d := range m.keys.decorations() {
		if key.Matches(msg, d.binding) {
			// Clip so models captured earlier keep their own stack.
			m.decorations = append(slices.Clip(m.decorations), d.style)
			return m, nil, true
		}
	}
	return m, nil, false
}

// View implements tea.Model.
func (m Model) View() string {
	current := m.Markup()
	raw := current.String()

	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render("› "))
	b.WriteString(m.Input.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render(rawLabel))
	b.WriteString(m.rawLine(raw))
	b.WriteString("\n\n")

	if rendered := preview.RenderWith(m.renderer, current, m.theme); rendered != "" {
		b.WriteString(rendered)
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Status.Render(m.status(raw)))
	b.WriteString("\n")
	b.WriteString(m.Help.View(m.keys))
	return b.String()
}

// rawLine shows newlines as ⏎ and truncates to the window width.
func (m Model) rawLine(raw string) string {
	line := strings.ReplaceAll(raw, "\n", "⏎")
	if m.width > 0 {
		line = runewidth.Truncate(line, max(m.width-runewidth.StringWidth(rawLabel), 1), "…")
	}
	return line
}

func (m Model) status(raw string) string {
	names := make([]string, len(m.decorations))
	for i, s := range m.decorations {
		names[i] = s.String()
	}
	stack := "plain"
	if len(names) > 0 {
		stack = strings.Join(names, " › ")
	}
	return fmt.Sprintf("%d chars · %s", uniseg.GraphemeClusterCount(raw), stack)
}
