package mock

import "io"

// Interface compliance check.
var _ io.Writer = (*Writer)(nil)

// Writer is a test double for io.Writer.
// Set WriteFn before calling Write.
type Writer struct {
	WriteFn func(p []byte) (int, error)
}

// Write delegates to WriteFn.
func (w *Writer) Write(p []byte) (int, error) {
	return w.WriteFn(p)
}

// FailAfter returns a Writer that accepts limit bytes, appending them to
// written, and then fails with err. A write that crosses the limit is
// accepted partially.
func FailAfter(limit int, err error, written *[]byte) *Writer {
	remaining := limit
	return &Writer{
		WriteFn: func(p []byte) (int, error) {
			if len(p) <= remaining {
				remaining -= len(p)
				*written = append(*written, p...)
				return len(p), nil
			}
			n := remaining
			remaining = 0
			*written = append(*written, p[:n]...)
			return n, err
		},
	}
}
