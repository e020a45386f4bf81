// Command markup decorates text with Discord-flavoured markdown.
//
// Usage:
//
//	markup [flags] [text...]
//	echo text | markup [flags]
//
// Flags:
//
//	-s, --style strings   Decorations applied in order (bold, italic, underscore,
//	                      strikethrough, quote, block-quote, spoiler,
//	                      inline-codeblock, codeblock)
//	-l, --lang string     Fence the text as a code block tagged with lang
//	-p, --preview         Print an ANSI preview instead of raw markup
//	    --html            Print HTML instead of raw markup
//	-g, --glob string     Fence every file matching the pattern
//	-C, --dir string      Base directory for --glob (default ".")
//	-i, --interactive     Start the interactive decorator
//
// With no text arguments and a terminal on stdin, the interactive decorator
// starts. NO_COLOR disables colors in previews.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/markup"
	bt "github.com/fwojciec/markup/bubbletea"
	"github.com/fwojciec/markup/fs"
	"github.com/fwojciec/markup/goldmark"
	preview "github.com/fwojciec/markup/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "markup: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseFlags(args, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	// Handle OS signals for graceful shutdown of the TUI.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if noColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	theme := markup.DefaultTheme()

	if cfg.glob != "" {
		snippets, err := fs.Glob(os.DirFS(cfg.dir), cfg.glob)
		if err != nil {
			return err
		}
		return emitSnippets(os.Stdout, snippets, cfg.mode, theme)
	}

	if cfg.interactive || (len(cfg.text) == 0 && term.IsTerminal(int(os.Stdin.Fd()))) {
		return interactive(ctx, os.Stdout, theme)
	}

	text, err := readText(cfg.text, os.Stdin)
	if err != nil {
		return err
	}
	return emit(os.Stdout, cfg.decorate(text), cfg.mode, theme)
}

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// colorRenderer returns a lipgloss renderer whose colour profile is detected
// from out. NO_COLOR forces plain text.
func colorRenderer(out io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	if noColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// interactive runs the TUI on stderr so only the accepted markup reaches
// stdout. Styles are bound to stderr, which stays a terminal when stdout is
// redirected.
func interactive(ctx context.Context, w io.Writer, theme markup.Theme) error {
	m := bt.New(theme).WithRenderer(colorRenderer(os.Stderr))
	final, err := bt.Run(ctx, m, tea.WithOutput(os.Stderr))
	if err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	result, ok := final.Result()
	if !ok {
		return nil
	}
	_, err = fmt.Fprintln(w, result)
	return err
}

// readText joins args with spaces, or reads stdin when there are none. One
// trailing newline from stdin is dropped.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// emit writes v in the requested output mode followed by a newline.
func emit(w io.Writer, v markup.Markup, mode outputMode, theme markup.Theme) error {
	switch mode {
	case modeHTML:
		html, err := goldmark.HTML(v)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	case modePreview:
		_, err := fmt.Fprintln(w, preview.Render(v, theme))
		return err
	default:
		if _, err := v.WriteTo(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
}

// emitSnippets writes each snippet in the requested mode, separated by a
// blank line.
func emitSnippets(w io.Writer, snippets []fs.Snippet, mode outputMode, theme markup.Theme) error {
	for i, s := range snippets {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		var err error
		switch mode {
		case modeHTML:
			var html string
			html, err = goldmark.HTML(s)
			if err == nil {
				_, err = io.WriteString(w, html)
			}
		case modePreview:
			_, err = fmt.Fprintf(w, "%s\n%s\n", preview.Render(s.Heading(), theme), preview.Render(s.Block, theme))
		default:
			_, err = s.WriteTo(w)
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", s.Path, err)
		}
	}
	return nil
}
