package goldmark

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindSpoiler is the node kind of SpoilerNode.
var KindSpoiler = ast.NewNodeKind("Spoiler")

// SpoilerNode is an inline ||spoiler|| span.
type SpoilerNode struct {
	ast.BaseInline
}

// Dump implements ast.Node.
func (n *SpoilerNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// Kind implements ast.Node.
func (n *SpoilerNode) Kind() ast.NodeKind {
	return KindSpoiler
}

type spoilerDelimiterProcessor struct{}

func (p *spoilerDelimiterProcessor) IsDelimiter(b byte) bool {
	return b == '|'
}

func (p *spoilerDelimiterProcessor) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

func (p *spoilerDelimiterProcessor) OnMatch(consumes int) ast.Node {
	return &SpoilerNode{}
}

var defaultSpoilerDelimiterProcessor = &spoilerDelimiterProcessor{}

type spoilerParser struct{}

func (s *spoilerParser) Trigger() []byte {
	return []byte{'|'}
}

// Parse pushes a delimiter for runs of exactly two pipes. Pairing happens
// when goldmark processes delimiters at the end of the inline block.
func (s *spoilerParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	node := parser.ScanDelimiter(line, before, 2, defaultSpoilerDelimiterProcessor)
	if node == nil || node.OriginalLength != 2 || before == '|' {
		return nil
	}
	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

type spoilerHTMLRenderer struct{}

func (r *spoilerHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindSpoiler, r.renderSpoiler)
}

func (r *spoilerHTMLRenderer) renderSpoiler(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString(`<span class="spoiler">`)
	} else {
		_, _ = w.WriteString("</span>")
	}
	return ast.WalkContinue, nil
}

type spoiler struct{}

// Spoiler is a goldmark extension that parses ||text|| into a SpoilerNode
// and renders it as <span class="spoiler">.
var Spoiler goldmark.Extender = &spoiler{}

func (e *spoiler) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&spoilerParser{}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&spoilerHTMLRenderer{}, 500),
	))
}
