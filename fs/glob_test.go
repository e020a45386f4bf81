package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/fwojciec/markup"
	"github.com/fwojciec/markup/fs"
	"github.com/fwojciec/markup/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlob(t *testing.T) {
	t.Parallel()

	t.Run("matches files with simple pattern", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"a.go":  {Data: []byte("package a\n")},
			"b.go":  {Data: []byte("package b\n")},
			"c.txt": {Data: []byte("notes\n")},
		}

		snippets, err := fs.Glob(fsys, "*.go")
		require.NoError(t, err)
		require.Len(t, snippets, 2)
		assert.Equal(t, "a.go", snippets[0].Path)
		assert.Equal(t, "b.go", snippets[1].Path)
		assert.Equal(t, "```go\npackage a\n```", snippets[0].Block.String())
	})

	t.Run("matches files recursively with doublestar", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		sub := filepath.Join(dir, "sub")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "root.rs"), []byte("fn main() {}\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(sub, "nested.rs"), []byte("mod x;\n"), 0o644))

		snippets, err := fs.Glob(os.DirFS(dir), "**/*.rs")
		require.NoError(t, err)

		var paths []string
		for _, s := range snippets {
			paths = append(paths, s.Path)
			assert.Equal(t, "rs", s.Block.Lang)
		}
		assert.ElementsMatch(t, []string{"root.rs", "sub/nested.rs"}, paths)
	})

	t.Run("skips directories", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"dir.go/inner.txt": {Data: []byte("x")},
			"file.go":          {Data: []byte("x")},
		}

		snippets, err := fs.Glob(fsys, "*.go")
		require.NoError(t, err)
		require.Len(t, snippets, 1)
		assert.Equal(t, "file.go", snippets[0].Path)
	})

	t.Run("returns empty result when nothing matches", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"notes.txt": {Data: []byte("x")}}

		snippets, err := fs.Glob(fsys, "**/*.go")
		require.NoError(t, err)
		assert.Empty(t, snippets)
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Glob(fstest.MapFS{}, "[invalid")
		assert.ErrorIs(t, err, markup.ErrInvalidPattern)
	})

	t.Run("rejects empty pattern", func(t *testing.T) {
		t.Parallel()
		_, err := fs.Glob(fstest.MapFS{}, "")
		assert.ErrorIs(t, err, markup.ErrInvalidPattern)
	})
}

func TestSnippet(t *testing.T) {
	t.Parallel()

	t.Run("ensures trailing newline before the fence", func(t *testing.T) {
		t.Parallel()
		s := fs.NewSnippet("main.py", "print('hi')")
		assert.Equal(t, "```py\nprint('hi')\n```", s.Block.String())
	})

	t.Run("renders heading and block", func(t *testing.T) {
		t.Parallel()
		s := fs.NewSnippet("cmd/main.go", "package main\n")
		assert.Equal(t, "**`cmd/main.go`**\n```go\npackage main\n```\n", s.String())
	})

	t.Run("unknown extension has empty tag", func(t *testing.T) {
		t.Parallel()
		s := fs.NewSnippet("LICENSE", "MIT\n")
		assert.Equal(t, "```\nMIT\n```", s.Block.String())
	})

	t.Run("propagates writer errors", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("broken pipe")
		var got []byte
		w := mock.FailAfter(4, wantErr, &got)

		n, err := fs.NewSnippet("a.go", "x\n").WriteTo(w)
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, int64(4), n)
		assert.Equal(t, "**`a", string(got))
	})
}

func TestLanguage(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"main.go":            "go",
		"lib.RS":             "rs",
		"dir/config.yml":     "yaml",
		`windows\script.ps1`: "",
		"Dockerfile":         "dockerfile",
		"build/Makefile":     "makefile",
		"README":             "",
	}
	for name, want := range tests {
		assert.Equal(t, want, fs.Language(name), name)
	}
}
