package bubbletea

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/fwojciec/markup"
)

// KeyMap defines the TUI key bindings.
type KeyMap struct {
	Bold            key.Binding
	Italic          key.Binding
	Underscore      key.Binding
	Strikethrough   key.Binding
	Quote           key.Binding
	BlockQuote      key.Binding
	Spoiler         key.Binding
	InlineCodeblock key.Binding
	Codeblock       key.Binding
	Undo            key.Binding
	Accept          key.Binding
	Quit            key.Binding
}

// DefaultKeyMap returns the default bindings. Decorations use alt so plain
// typing always reaches the input.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Bold:            key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "bold")),
		Italic:          key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Underscore:      key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "underscore")),
		Strikethrough:   key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "strike")),
		Quote:           key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "quote")),
		BlockQuote:      key.NewBinding(key.WithKeys("alt+>"), key.WithHelp("alt+>", "block quote")),
		Spoiler:         key.NewBinding(key.WithKeys("alt+p"), key.WithHelp("alt+p", "spoiler")),
		InlineCodeblock: key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "code")),
		Codeblock:       key.NewBinding(key.WithKeys("alt+k"), key.WithHelp("alt+k", "code block")),
		Undo:            key.NewBinding(key.WithKeys("alt+z"), key.WithHelp("alt+z", "undo")),
		Accept:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Quit:            key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

type styleBinding struct {
	binding key.Binding
	style   markup.Style
}

func (k KeyMap) decorations() []styleBinding {
	return []styleBinding{
		{k.Bold, markup.StyleBold},
		{k.Italic, markup.StyleItalic},
		{k.Underscore, markup.StyleUnderscore},
		{k.Strikethrough, markup.StyleStrikethrough},
		{k.Quote, markup.StyleQuote},
		{k.BlockQuote, markup.StyleBlockQuote},
		{k.Spoiler, markup.StyleSpoiler},
		{k.InlineCodeblock, markup.StyleInlineCodeblock},
		{k.Codeblock, markup.StyleCodeblock},
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bold, k.Italic, k.Undo, k.Accept, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Bold, k.Italic, k.Underscore, k.Strikethrough},
		{k.Quote, k.BlockQuote, k.Spoiler},
		{k.InlineCodeblock, k.Codeblock},
		{k.Undo, k.Accept, k.Quit},
	}
}
