// Package goldmark converts rendered decorations to HTML using goldmark.
//
// Output follows CommonMark with the GFM strikethrough extension, plus the
// Spoiler extension defined here for ||spoiler|| spans. Discord-only
// semantics are not reproduced: __x__ converts to <strong>, and ">>> "
// converts to three nested block quotes.
package goldmark

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/markup"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var converter = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough, Spoiler),
)

// HTML renders v and converts the resulting markdown to HTML. Decorations
// render through WriteTo, so a failing inner value surfaces as an error.
func HTML(v any) (string, error) {
	var src bytes.Buffer
	if _, err := markup.Text(v).WriteTo(&src); err != nil {
		return "", fmt.Errorf("render markup: %w", err)
	}
	var out bytes.Buffer
	if err := converter.Convert(src.Bytes(), &out); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return out.String(), nil
}
