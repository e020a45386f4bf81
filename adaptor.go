package markup

import (
	"fmt"
	"io"
)

// Bold is bold text: **value**.
type Bold[T any] struct {
	Value T
}

// NewBold wraps v. Nothing is rendered until the result is formatted.
func NewBold[T any](v T) Bold[T] {
	return Bold[T]{Value: v}
}

// Format implements fmt.Formatter.
func (b Bold[T]) Format(f fmt.State, verb rune) {
	formatWrapped(f, verb, StyleBold.Prefix(), b.Value, StyleBold.Suffix())
}

// String implements fmt.Stringer.
func (b Bold[T]) String() string { return fmt.Sprint(b) }

// WriteTo implements io.WriterTo.
func (b Bold[T]) WriteTo(w io.Writer) (int64, error) {
	return writeWrapped(w, StyleBold.Prefix(), b.Value, StyleBold.Suffix())
}

// Style returns StyleBold.
func (Bold[T]) Style() Style { return StyleBold }

// Inner returns the decorated value.
func (b Bold[T]) Inner() any { return b.Value }

// Italic is italic text: _value_.
type Italic[T any] struct {
	Value T
}

// NewItalic returns v wrapped in an Italic.
func NewItalic[T any](v T) Italic[T] {
	return Italic[T]{Value: v}
}

// Format implements fmt.Formatter.
func (i Italic[T]) Format(f fmt.State, verb rune) {
	formatWrapped(f, verb, StyleItalic.Prefix(), i.Value, StyleItalic.Suffix())
}

// String implements fmt.Stringer.
func (i Italic[T]) String() string { return fmt.Sprint(i) }

// WriteTo implements io.WriterTo.
func (i Italic[T]) WriteTo(w io.Writer) (int64, error) {
	return writeWrapped(w, StyleItalic.Prefix(), i.Value, StyleItalic.Suffix())
}

// Style returns StyleItalic.
func (Italic[T]) Style() Style { return StyleItalic }

// Inner returns the decorated value.
func (i Italic[T]) Inner() any { return i.Value }

// Underscore is underlined text: __value__.
type Underscore[T any] struct {
	Value T
}

// NewUnderscore returns v wrapped in an Underscore.
func NewUnderscore[T any](v T) Underscore[T] {
	return Underscore[T]{Value: v}
}

// Format implements fmt.Formatter.
func (u Underscore[T]) Format(f fmt.State, verb rune) {
	formatWrapped(f, verb, StyleUnderscore.Prefix(), u.Value, StyleUnderscore.Suffix())
}

// String implements fmt.Stringer.
func (u Underscore[T]) String() string { return fmt.Sprint(u) }

// WriteTo implements io.WriterTo.
func (u Underscore[T]) WriteTo(w io.Writer) (int64, error) {
	return writeWrapped(w, StyleUnderscore.Prefix(), u.Value, StyleUnderscore.Suffix())
}

// Style returns StyleUnderscore.
func (Underscore[T]) Style() Style { return StyleUnderscore }

// Inner returns the decorated value.
func (u Underscore[T]) Inner() any { return u.Value }

// Strikethrough is struck-out text: ~~value~~.
type Strikethrough[T any] struct {
	Value T
}

// NewStrikethrough returns v wrapped in a Strikethrough.
func NewStrikethrough[T any](v T) Strikethrough[T] {
	return Strikethrough[T]{Value: v}
}

// Format implements fmt.Formatter.
func (s Strikethrough[T]) Format(f fmt.State, verb rune) {
	formatWrapped(f, verb, StyleStrikethrough.Prefix(), s.Value, StyleStrikethrough.Suffix())
}

// String implements fmt.Stringer.
func (s Strikethrough[T]) String() string { return fmt.Sprint(s) }

// WriteTo implements io.WriterTo.
func (s Strikethrough[T]) WriteTo(w io.Writer) (int64, error) {
	return writeWrapped(w, StyleStrikethrough.Prefix(), s.Value, StyleStrikethrough.Suffix())
}

// Style returns StyleStrikethrough.
func (Strikethrough[T]) Style() Style { return StyleStrikethrough }

// Inner returns the decorated value.
func (s Strikethrough[T]) Inner() any { return s.Value }

// Quote is a single-line quote: > value.
type Quote[T any] struct {
	Value T
}

// NewQuote returns v wrapped in a Quote.
func NewQuote[T any](v T) Quote[T] {
	return Quote[T]{Value: v}
}

// Format implements fmt.Formatter.
func (q Quote[T]) Format(f fmt.State, verb rune) {
	formatWrapped(f, verb, StyleQuote.Prefix(), q.Value, StyleQuote.Suffix())
}

// String implements fmt.Stringer.
func (q Quote[T]) String() string { return fmt.Sprint(q) }

// WriteTo implements io.WriterTo.
func (q Quote[T]) WriteTo(w io.Writer) (int64, error) {
	return writeWrapped(w, StyleQuote.Prefix(), q.Value, StyleQuote.Suffix())
}

// Style returns StyleQuote.
func (Quote[T]) Style() Style { return StyleQuote }

// Inner returns the decorated value.
func (q Quote[T]) Inner() any { return q.Value }

// BlockQuote quotes the value and everything after it: >>> value.
type BlockQuote[T any] struct {
	Value T
}

// NewBlockQuote returns v wrapped in a BlockQuote.
func NewBlockQuote[T any](v T) BlockQuote[T] {
	return BlockQuote[T]{Value: v}
}

// Format implements fmt.Formatter.
func (b BlockQuote[T]) Format(f fmt.State, verb rune) {
	formatWrapped(f, verb, StyleBlockQuote.Prefix(), b.Value, StyleBlockQuote.Suffix())
}

// String implements fmt.Stringer.
func (b BlockQuote[T]) String() string { return fmt.Sprint(b) }

// WriteTo implements io.WriterTo.
func (b BlockQuote[T]) WriteTo(w io.Writer) (int64, error) {
	return writeWrapped(w, StyleBlockQuote.Prefix(), b.Value, StyleBlockQuote.Suffix())
}

// Style returns StyleBlockQuote.
func (BlockQuote[T]) Style() Style { return StyleBlockQuote }

// Inner returns the decorated value.
func (b BlockQuote[T]) Inner() any { return b.Value }

// Spoiler hides the value until revealed: ||value||.
type Spoiler[T any] struct {
	Value T
}

// NewSpoiler returns v wrapped in a Spoiler.
func NewSpoiler[T any](v T) Spoiler[T] {
	return Spoiler[T]{Value: v}
}

// Format implements fmt.Formatter.
func (s Spoiler[T]) Format(f fmt.State, verb rune) {
	formatWrapped(f, verb, StyleSpoiler.Prefix(), s.Value, StyleSpoiler.Suffix())
}

// String implements fmt.Stringer.
func (s Spoiler[T]) String() string { return fmt.Sprint(s) }

// WriteTo implements io.WriterTo.
func (s Spoiler[T]) WriteTo(w io.Writer) (int64, error) {
	return writeWrapped(w, StyleSpoiler.Prefix(), s.Value, StyleSpoiler.Suffix())
}

// Style returns StyleSpoiler.
func (Spoiler[T]) Style() Style { return StyleSpoiler }

// Inner returns the decorated value.
func (s Spoiler[T]) Inner() any { return s.Value }

// InlineCodeblock is inline code: `value`.
type InlineCodeblock[T any] struct {
	Value T
}

// NewInlineCodeblock returns v wrapped in an InlineCodeblock.
func NewInlineCodeblock[T any](v T) InlineCodeblock[T] {
	return InlineCodeblock[T]{Value: v}
}

// Format implements fmt.Formatter.
func (i InlineCodeblock[T]) Format(f fmt.State, verb rune) {
	formatWrapped(f, verb, StyleInlineCodeblock.Prefix(), i.Value, StyleInlineCodeblock.Suffix())
}

// String implements fmt.Stringer.
func (i InlineCodeblock[T]) String() string { return fmt.Sprint(i) }

// WriteTo implements io.WriterTo.
func (i InlineCodeblock[T]) WriteTo(w io.Writer) (int64, error) {
	return writeWrapped(w, StyleInlineCodeblock.Prefix(), i.Value, StyleInlineCodeblock.Suffix())
}

// Style returns StyleInlineCodeblock.
func (InlineCodeblock[T]) Style() Style { return StyleInlineCodeblock }

// Inner returns the decorated value.
func (i InlineCodeblock[T]) Inner() any { return i.Value }
