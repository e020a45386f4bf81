package mock

import (
	"fmt"
	"io"
)

// Markup is a test double for a decoration. Format and String render
// through StringFn; WriteTo delegates to WriteToFn.
type Markup struct {
	StringFn  func() string
	WriteToFn func(w io.Writer) (int64, error)
}

// Format writes the result of StringFn.
func (m *Markup) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, m.StringFn())
}

// String delegates to StringFn.
func (m *Markup) String() string {
	return m.StringFn()
}

// WriteTo delegates to WriteToFn.
func (m *Markup) WriteTo(w io.Writer) (int64, error) {
	return m.WriteToFn(w)
}
