package markup

import (
	"fmt"
	"io"
)

// Codeblock is a fenced code block without a language tag:
//
//	```
//	value```
//
// The closing fence follows the value directly; no newline is inserted.
type Codeblock[T any] struct {
	Value T
}

// NewCodeblock returns v wrapped in a Codeblock.
func NewCodeblock[T any](v T) Codeblock[T] {
	return Codeblock[T]{Value: v}
}

// Format implements fmt.Formatter.
func (c Codeblock[T]) Format(f fmt.State, verb rune) {
	formatWrapped(f, verb, StyleCodeblock.Prefix(), c.Value, StyleCodeblock.Suffix())
}

// String implements fmt.Stringer.
func (c Codeblock[T]) String() string { return fmt.Sprint(c) }

// WriteTo implements io.WriterTo.
func (c Codeblock[T]) WriteTo(w io.Writer) (int64, error) {
	return writeWrapped(w, StyleCodeblock.Prefix(), c.Value, StyleCodeblock.Suffix())
}

// Style returns StyleCodeblock.
func (Codeblock[T]) Style() Style { return StyleCodeblock }

// Inner returns the code.
func (c Codeblock[T]) Inner() any { return c.Value }

// Language returns nil; a Codeblock has no tag.
func (Codeblock[T]) Language() any { return nil }

// CodeblockWith is a fenced code block tagged with a language. Both the
// code and the tag may be any value, including other decorations.
type CodeblockWith[T, L any] struct {
	Value T
	Lang  L
}

// NewCodeblockWith returns v wrapped in a code block tagged with lang.
func NewCodeblockWith[T, L any](v T, lang L) CodeblockWith[T, L] {
	return CodeblockWith[T, L]{Value: v, Lang: lang}
}

// Format implements fmt.Formatter. The verb and flags apply to the code;
// the tag is always formatted with %v.
func (c CodeblockWith[T, L]) Format(f fmt.State, verb rune) {
	_, _ = io.WriteString(f, fence)
	_, _ = fmt.Fprint(f, c.Lang)
	formatWrapped(f, verb, "\n", c.Value, fence)
}

// String implements fmt.Stringer.
func (c CodeblockWith[T, L]) String() string { return fmt.Sprint(c) }

// WriteTo implements io.WriterTo.
func (c CodeblockWith[T, L]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	cw.str(fence)
	cw.value(c.Lang)
	cw.str("\n")
	cw.value(c.Value)
	cw.str(fence)
	return cw.n, cw.err
}

// Style returns StyleCodeblock.
func (CodeblockWith[T, L]) Style() Style { return StyleCodeblock }

// Inner returns the code.
func (c CodeblockWith[T, L]) Inner() any { return c.Value }

// Language returns the tag.
func (c CodeblockWith[T, L]) Language() any { return c.Lang }
