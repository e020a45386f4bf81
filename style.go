package markup

import (
	"fmt"
	"strings"
)

// Style identifies a decoration kind.
type Style int

// Decoration kinds.
const (
	StyleBold Style = iota + 1
	StyleItalic
	StyleUnderscore
	StyleStrikethrough
	StyleQuote
	StyleBlockQuote
	StyleSpoiler
	StyleInlineCodeblock
	StyleCodeblock
)

// Styles lists every decoration kind in declaration order.
var Styles = []Style{
	StyleBold,
	StyleItalic,
	StyleUnderscore,
	StyleStrikethrough,
	StyleQuote,
	StyleBlockQuote,
	StyleSpoiler,
	StyleInlineCodeblock,
	StyleCodeblock,
}

type delimiter struct {
	name   string
	prefix string
	suffix string
}

// The code block prefix is the fence plus the newline that follows an empty
// language tag. CodeblockWith writes its fence separately.
var delimiters = [...]delimiter{
	StyleBold:            {"bold", "**", "**"},
	StyleItalic:          {"italic", "_", "_"},
	StyleUnderscore:      {"underscore", "__", "__"},
	StyleStrikethrough:   {"strikethrough", "~~", "~~"},
	StyleQuote:           {"quote", "> ", ""},
	StyleBlockQuote:      {"block-quote", ">>> ", ""},
	StyleSpoiler:         {"spoiler", "||", "||"},
	StyleInlineCodeblock: {"inline-codeblock", "`", "`"},
	StyleCodeblock:       {"codeblock", fence + "\n", fence},
}

const fence = "```"

// Valid reports whether s is one of the declared styles.
func (s Style) Valid() bool {
	return s >= StyleBold && s <= StyleCodeblock
}

// String returns the canonical style name, e.g. "block-quote".
func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return delimiters[s].name
}

// Prefix returns the literal written before the decorated value.
func (s Style) Prefix() string {
	if !s.Valid() {
		return ""
	}
	return delimiters[s].prefix
}

// Suffix returns the literal written after the decorated value. Quotes have
// no suffix.
func (s Style) Suffix() string {
	if !s.Valid() {
		return ""
	}
	return delimiters[s].suffix
}

// ParseStyle returns the style with the given name. Matching ignores case
// and treats underscores as dashes, so "block_quote" and "Block-Quote" both
// name StyleBlockQuote.
func ParseStyle(name string) (Style, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, s := range Styles {
		if s.String() == normalized {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Apply wraps v in the decoration for s. An invalid style leaves v
// undecorated.
func Apply(s Style, v any) Markup {
	switch s {
	case StyleBold:
		return NewBold(v)
	case StyleItalic:
		return NewItalic(v)
	case StyleUnderscore:
		return NewUnderscore(v)
	case StyleStrikethrough:
		return NewStrikethrough(v)
	case StyleQuote:
		return NewQuote(v)
	case StyleBlockQuote:
		return NewBlockQuote(v)
	case StyleSpoiler:
		return NewSpoiler(v)
	case StyleInlineCodeblock:
		return NewInlineCodeblock(v)
	case StyleCodeblock:
		return NewCodeblock(v)
	default:
		return Text(v)
	}
}
