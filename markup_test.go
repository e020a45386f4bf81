package markup_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/markup"
	"github.com/fwojciec/markup/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorations(t *testing.T) {
	t.Parallel()

	const input = "hey there"

	tests := []struct {
		name string
		got  fmt.Stringer
		want string
	}{
		{"bold", markup.NewBold(input), "**hey there**"},
		{"italic", markup.NewItalic(input), "_hey there_"},
		{"underscore", markup.NewUnderscore(input), "__hey there__"},
		{"strikethrough", markup.NewStrikethrough(input), "~~hey there~~"},
		{"quote", markup.NewQuote(input), "> hey there"},
		{"block quote", markup.NewBlockQuote(input), ">>> hey there"},
		{"spoiler", markup.NewSpoiler(input), "||hey there||"},
		{"codeblock", markup.NewCodeblock(input), "```\nhey there```"},
		{"codeblock with language", markup.NewCodeblockWith(input, "rs"), "```rs\nhey there```"},
		{"inline codeblock", markup.NewInlineCodeblock(input), "`hey there`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got.String())
			assert.Equal(t, tt.want, fmt.Sprint(tt.got))
			assert.Equal(t, tt.want, fmt.Sprintf("%v", tt.got))
		})
	}
}

func TestDecorations_WrapRenderedValue(t *testing.T) {
	t.Parallel()

	inputs := []any{
		"hey there",
		"",
		42,
		3.5,
		true,
		"**already bold**",
		"line one\nline two",
		markup.NewItalic("nested"),
	}

	for _, x := range inputs {
		s := fmt.Sprint(x)
		t.Run(fmt.Sprintf("%T %q", x, s), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, "**"+s+"**", markup.NewBold(x).String())
			assert.Equal(t, "_"+s+"_", markup.NewItalic(x).String())
			assert.Equal(t, "__"+s+"__", markup.NewUnderscore(x).String())
			assert.Equal(t, "~~"+s+"~~", markup.NewStrikethrough(x).String())
			assert.Equal(t, "> "+s, markup.NewQuote(x).String())
			assert.Equal(t, ">>> "+s, markup.NewBlockQuote(x).String())
			assert.Equal(t, "||"+s+"||", markup.NewSpoiler(x).String())
			assert.Equal(t, "`"+s+"`", markup.NewInlineCodeblock(x).String())
			assert.Equal(t, "```\n"+s+"```", markup.NewCodeblock(x).String())
			assert.Equal(t, "```go\n"+s+"```", markup.NewCodeblockWith(x, "go").String())
		})
	}
}

func TestDecorations_Compose(t *testing.T) {
	t.Parallel()

	t.Run("bold of italic", func(t *testing.T) {
		t.Parallel()
		got := markup.NewBold(markup.NewItalic("x"))
		assert.Equal(t, "**_x_**", got.String())
	})

	t.Run("deep nesting", func(t *testing.T) {
		t.Parallel()
		got := markup.NewQuote(markup.NewSpoiler(markup.NewStrikethrough(markup.NewInlineCodeblock("x"))))
		assert.Equal(t, "> ||~~`x`~~||", got.String())
	})

	t.Run("language tag may itself be decorated", func(t *testing.T) {
		t.Parallel()
		got := markup.NewCodeblockWith(markup.NewBold("body"), markup.NewItalic("rs"))
		assert.Equal(t, "```_rs_\n**body**```", got.String())
	})

	t.Run("delimiters in input are not escaped", func(t *testing.T) {
		t.Parallel()
		got := markup.NewBold("a ** b")
		assert.Equal(t, "**a ** b**", got.String())
	})
}

func TestDecorations_Lazy(t *testing.T) {
	t.Parallel()

	calls := 0
	inner := &mock.Stringer{StringFn: func() string {
		calls++
		return "hey"
	}}

	b := markup.NewBold(markup.NewItalic(inner))
	assert.Equal(t, 0, calls, "construction must not render")

	assert.Equal(t, "**_hey_**", b.String())
	assert.Equal(t, 1, calls)
}

func TestDecorations_Idempotent(t *testing.T) {
	t.Parallel()

	b := markup.NewCodeblockWith(markup.NewBold("hey"), "md")

	first := b.String()
	second := b.String()
	assert.Equal(t, first, second)

	var buf1, buf2 bytes.Buffer
	_, err := b.WriteTo(&buf1)
	require.NoError(t, err)
	_, err = b.WriteTo(&buf2)
	require.NoError(t, err)
	assert.Equal(t, first, buf1.String())
	assert.Equal(t, first, buf2.String())
}

func TestDecorations_Comparable(t *testing.T) {
	t.Parallel()

	a := markup.NewBold(markup.NewItalic("x"))
	b := markup.NewBold(markup.NewItalic("x"))
	assert.True(t, a == b)
	assert.False(t, a == markup.NewBold(markup.NewItalic("y")))

	c := a
	assert.Equal(t, a, c)
	assert.Equal(t, markup.NewCodeblockWith("x", "rs"), markup.NewCodeblockWith("x", "rs"))
}

func TestDecorations_Format(t *testing.T) {
	t.Parallel()

	t.Run("verb applies to the decorated value", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, `**"hey"**`, fmt.Sprintf("%q", markup.NewBold("hey")))
		assert.Equal(t, "_2a_", fmt.Sprintf("%x", markup.NewItalic(42)))
	})

	t.Run("width pads the decorated value", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "**   ab**", fmt.Sprintf("%5v", markup.NewBold("ab")))
	})

	t.Run("language tag ignores the verb", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "```rs\n\"x\"```", fmt.Sprintf("%q", markup.NewCodeblockWith("x", "rs")))
	})
}

func TestDecorations_WriteTo(t *testing.T) {
	t.Parallel()

	t.Run("writes the rendering and counts bytes", func(t *testing.T) {
		t.Parallel()
		values := []markup.Markup{
			markup.NewBold("hey there"),
			markup.NewQuote("hey there"),
			markup.NewCodeblock("hey there"),
			markup.NewCodeblockWith("hey there", "rs"),
			markup.NewSpoiler(markup.NewUnderscore(7)),
			markup.Text("hey").Italic().BlockQuote(),
		}
		for _, v := range values {
			var buf bytes.Buffer
			n, err := v.WriteTo(&buf)
			require.NoError(t, err)
			assert.Equal(t, v.String(), buf.String())
			assert.Equal(t, int64(len(v.String())), n)
		}
	})

	t.Run("returns the writer error unchanged", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("disk full")
		var got []byte
		w := mock.FailAfter(3, wantErr, &got)

		n, err := markup.NewBold("hey").WriteTo(w)
		assert.Equal(t, wantErr, err)
		assert.Equal(t, int64(3), n)
		assert.Equal(t, "**h", string(got))
	})

	t.Run("stops at the first failing write in nested decorations", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("closed pipe")
		calls := 0
		w := &mock.Writer{WriteFn: func(p []byte) (int, error) {
			calls++
			return 0, wantErr
		}}

		n, err := markup.NewItalic(markup.NewBold("hey")).WriteTo(w)
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, int64(0), n)
		assert.Equal(t, 1, calls)
	})

	t.Run("quote issues no write for its empty suffix", func(t *testing.T) {
		t.Parallel()
		var writes []string
		w := &mock.Writer{WriteFn: func(p []byte) (int, error) {
			writes = append(writes, string(p))
			return len(p), nil
		}}

		_, err := markup.NewQuote("hey").WriteTo(w)
		require.NoError(t, err)
		assert.Equal(t, []string{"> ", "hey"}, writes)
	})

	t.Run("nil pointer to a decoration renders like fmt", func(t *testing.T) {
		t.Parallel()
		values := []markup.Markup{
			markup.NewItalic((*markup.Bold[string])(nil)),
			markup.NewCodeblockWith("x", (*markup.Spoiler[int])(nil)),
			markup.Text((*markup.Quote[string])(nil)).Bold(),
		}
		for _, v := range values {
			var buf bytes.Buffer
			var n int64
			var err error
			require.NotPanics(t, func() { n, err = v.WriteTo(&buf) })
			require.NoError(t, err)
			assert.Equal(t, v.String(), buf.String())
			assert.Equal(t, int64(len(v.String())), n)
			assert.Contains(t, buf.String(), "<nil>")
		}
	})

	t.Run("failure in language tag surfaces", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("broken")
		var got []byte
		w := mock.FailAfter(4, wantErr, &got)

		n, err := markup.NewCodeblockWith("body", markup.NewBold("rs")).WriteTo(w)
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, int64(4), n)
		assert.Equal(t, "```*", string(got))
	})
}

func TestNodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		node  markup.Node
		style markup.Style
	}{
		{markup.NewBold("x"), markup.StyleBold},
		{markup.NewItalic("x"), markup.StyleItalic},
		{markup.NewUnderscore("x"), markup.StyleUnderscore},
		{markup.NewStrikethrough("x"), markup.StyleStrikethrough},
		{markup.NewQuote("x"), markup.StyleQuote},
		{markup.NewBlockQuote("x"), markup.StyleBlockQuote},
		{markup.NewSpoiler("x"), markup.StyleSpoiler},
		{markup.NewInlineCodeblock("x"), markup.StyleInlineCodeblock},
		{markup.NewCodeblock("x"), markup.StyleCodeblock},
		{markup.NewCodeblockWith("x", "go"), markup.StyleCodeblock},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.style, tt.node.Style())
			assert.Equal(t, "x", tt.node.Inner())
		})
	}

	t.Run("code block languages", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, markup.NewCodeblock("x").Language())
		assert.Equal(t, "go", markup.NewCodeblockWith("x", "go").Language())
	})
}
