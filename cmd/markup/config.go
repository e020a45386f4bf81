package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/markup"
	"github.com/spf13/pflag"
)

type outputMode int

const (
	modeRaw outputMode = iota
	modePreview
	modeHTML
)

type config struct {
	styles      []markup.Style
	lang        string
	fenced      bool
	mode        outputMode
	glob        string
	dir         string
	interactive bool
	text        []string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg        config
		styleNames []string
		previewOut bool
		htmlOut    bool
	)

	flags := pflag.NewFlagSet("markup", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringSliceVarP(&styleNames, "style", "s", nil, "Decorations applied in order")
	flags.StringVarP(&cfg.lang, "lang", "l", "", "Fence the text as a code block tagged with lang")
	flags.BoolVarP(&previewOut, "preview", "p", false, "Print an ANSI preview instead of raw markup")
	flags.BoolVar(&htmlOut, "html", false, "Print HTML instead of raw markup")
	flags.StringVarP(&cfg.glob, "glob", "g", "", "Fence every file matching the pattern")
	flags.StringVarP(&cfg.dir, "dir", "C", ".", "Base directory for --glob")
	flags.BoolVarP(&cfg.interactive, "interactive", "i", false, "Start the interactive decorator")

	if err := flags.Parse(args); err != nil {
		return config{}, err
	}

	if previewOut && htmlOut {
		return config{}, errors.New("--preview and --html are mutually exclusive")
	}
	switch {
	case previewOut:
		cfg.mode = modePreview
	case htmlOut:
		cfg.mode = modeHTML
	}

	for _, name := range styleNames {
		s, err := markup.ParseStyle(name)
		if err != nil {
			return config{}, fmt.Errorf("--style: %w", err)
		}
		cfg.styles = append(cfg.styles, s)
	}

	cfg.fenced = flags.Changed("lang")
	cfg.text = flags.Args()

	if cfg.glob != "" && (len(cfg.styles) > 0 || cfg.fenced || cfg.interactive || len(cfg.text) > 0) {
		return config{}, errors.New("--glob cannot be combined with --style, --lang, --interactive or text arguments")
	}
	return cfg, nil
}

// decorate fences text when a language was given, then applies the styles
// in order.
func (c config) decorate(text string) markup.Chain {
	chain := markup.Text(text)
	if c.fenced {
		chain = chain.CodeblockWith(c.lang)
	}
	for _, s := range c.styles {
		chain = chain.Apply(s)
	}
	return chain
}
