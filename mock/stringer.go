package mock

import "fmt"

// Interface compliance check.
var _ fmt.Stringer = (*Stringer)(nil)

// Stringer is a test double for fmt.Stringer.
// Set StringFn before calling String.
type Stringer struct {
	StringFn func() string
}

// String delegates to StringFn.
func (s *Stringer) String() string {
	return s.StringFn()
}
