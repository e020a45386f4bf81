// Package markup decorates arbitrary values with Discord-flavoured markdown
// without building any string until the result is rendered.
//
// Every decoration is a small immutable wrapper around the decorated value.
// Wrappers render through fmt (Format, String) or straight into an
// io.Writer (WriteTo), and a wrapper may hold another wrapper, so nested
// decorations stream their output in a single pass:
//
//	fmt.Println(markup.NewBold(markup.NewItalic("hey"))) // **_hey_**
//	fmt.Println(markup.Text("hey").Italic().Bold())       // **_hey_**
//
// Input is never escaped: delimiter characters inside the value are emitted
// verbatim.
package markup

import (
	"fmt"
	"io"
	"reflect"
)

// Markup is a lazily rendered decoration.
type Markup interface {
	fmt.Formatter
	fmt.Stringer
	io.WriterTo
}

// Node is a single decoration layer. Inner returns the decorated value,
// which may itself be a Node.
type Node interface {
	Markup
	Style() Style
	Inner() any
}

// Interface compliance checks.
var (
	_ Node   = Bold[string]{}
	_ Node   = Italic[string]{}
	_ Node   = Underscore[string]{}
	_ Node   = Strikethrough[string]{}
	_ Node   = Quote[string]{}
	_ Node   = BlockQuote[string]{}
	_ Node   = Spoiler[string]{}
	_ Node   = InlineCodeblock[string]{}
	_ Node   = Codeblock[string]{}
	_ Node   = CodeblockWith[string, string]{}
	_ Markup = Chain{}
)

// formatWrapped writes prefix, v formatted with the caller's verb and flags,
// then suffix.
func formatWrapped(f fmt.State, verb rune, prefix string, v any, suffix string) {
	_, _ = io.WriteString(f, prefix)
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), v)
	if suffix != "" {
		_, _ = io.WriteString(f, suffix)
	}
}

// countingWriter stops at the first write error and keeps it, so callers
// can issue a sequence of writes and check once.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) str(s string) {
	if c.err != nil || s == "" {
		return
	}
	n, err := io.WriteString(c.w, s)
	c.n += int64(n)
	c.err = err
}

// value writes v. Nested decorations recurse through WriteTo so that a
// failing writer surfaces the original error; anything else, including a
// nil pointer to a decoration, goes through fmt.Fprint.
func (c *countingWriter) value(v any) {
	if c.err != nil {
		return
	}
	if m, ok := v.(Markup); ok && !isNilPointer(m) {
		n, err := m.WriteTo(c.w)
		c.n += n
		c.err = err
		return
	}
	n, err := fmt.Fprint(c.w, v)
	c.n += int64(n)
	c.err = err
}

// isNilPointer reports whether v holds a nil pointer. fmt prints those as
// <nil> instead of calling their methods.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func writeWrapped(w io.Writer, prefix string, v any, suffix string) (int64, error) {
	cw := &countingWriter{w: w}
	cw.str(prefix)
	cw.value(v)
	cw.str(suffix)
	return cw.n, cw.err
}
