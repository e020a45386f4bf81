package markup

import (
	"fmt"
	"io"
)

// Chain exposes every decoration as a method so decorations read left to
// right: Text("hey").Bold().Italic() renders _**hey**_. Each method returns
// a new Chain; the receiver is left untouched.
//
// Chain layers are built over any, so use the New* constructors when the
// concrete wrapper type matters.
type Chain struct {
	value any
}

// Text starts a Chain over v.
func Text(v any) Chain {
	return Chain{value: v}
}

// Value returns the outermost value of the chain: the last decoration
// applied, or the original value when none has been.
func (c Chain) Value() any { return c.value }

// Bold wraps the chain in a Bold.
func (c Chain) Bold() Chain { return Chain{value: NewBold(c.value)} }

// Italic wraps the chain in an Italic.
func (c Chain) Italic() Chain { return Chain{value: NewItalic(c.value)} }

// Underscore wraps the chain in an Underscore.
func (c Chain) Underscore() Chain { return Chain{value: NewUnderscore(c.value)} }

// Strikethrough wraps the chain in a Strikethrough.
func (c Chain) Strikethrough() Chain { return Chain{value: NewStrikethrough(c.value)} }

// Quote wraps the chain in a Quote.
func (c Chain) Quote() Chain { return Chain{value: NewQuote(c.value)} }

// BlockQuote wraps the chain in a BlockQuote.
func (c Chain) BlockQuote() Chain { return Chain{value: NewBlockQuote(c.value)} }

// Spoiler wraps the chain in a Spoiler.
func (c Chain) Spoiler() Chain { return Chain{value: NewSpoiler(c.value)} }

// Codeblock wraps the chain in a Codeblock.
func (c Chain) Codeblock() Chain { return Chain{value: NewCodeblock(c.value)} }

// CodeblockWith wraps the chain in a code block tagged with lang.
func (c Chain) CodeblockWith(lang any) Chain {
	return Chain{value: NewCodeblockWith(c.value, lang)}
}

// InlineCodeblock wraps the chain in an InlineCodeblock.
func (c Chain) InlineCodeblock() Chain { return Chain{value: NewInlineCodeblock(c.value)} }

// Apply wraps the chain in the decoration for s. Invalid styles return c
// unchanged.
func (c Chain) Apply(s Style) Chain {
	if !s.Valid() {
		return c
	}
	return Chain{value: Apply(s, c.value)}
}

// Format implements fmt.Formatter.
func (c Chain) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), c.value)
}

// String implements fmt.Stringer.
func (c Chain) String() string { return fmt.Sprint(c.value) }

// WriteTo implements io.WriterTo.
func (c Chain) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	cw.value(c.value)
	return cw.n, cw.err
}
