package fs

import (
	"fmt"
	"io"
	iofs "io/fs"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/markup"
)

// Snippet is one file fenced as a code block under a bold path heading.
type Snippet struct {
	Path  string
	Block markup.CodeblockWith[string, string]
}

// NewSnippet fences content as the file at path. A trailing newline is
// ensured so the closing fence sits on its own line.
func NewSnippet(path, content string) Snippet {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return Snippet{
		Path:  path,
		Block: markup.NewCodeblockWith(content, Language(path)),
	}
}

// Heading returns the path as bold inline code.
func (s Snippet) Heading() markup.Bold[markup.InlineCodeblock[string]] {
	return markup.NewBold(markup.NewInlineCodeblock(s.Path))
}

// WriteTo writes the heading, a newline, the code block and a newline.
func (s Snippet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, part := range []io.WriterTo{s.Heading(), newline{}, s.Block, newline{}} {
		n, err := part.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String implements fmt.Stringer.
func (s Snippet) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

type newline struct{}

func (newline) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, "\n")
	return int64(n), err
}

// Glob reads every regular file in fsys matching pattern and returns it as
// a Snippet, in walk order. Patterns support ** for recursive matching.
func Glob(fsys iofs.FS, pattern string) ([]Snippet, error) {
	if pattern == "" || !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", markup.ErrInvalidPattern, pattern)
	}

	var snippets []Snippet
	err := doublestar.GlobWalk(fsys, pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		data, err := iofs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		snippets = append(snippets, NewSnippet(path, string(data)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	return snippets, nil
}
