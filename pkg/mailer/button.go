package mailer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindButton is the AST kind of a call-to-action button.
var KindButton = ast.NewNodeKind("Button")

var buttonOpen = []byte("[!button|")

// Button is an inline call-to-action link, written in markdown as
// [!button|Label](url).
type Button struct {
	ast.BaseInline
	Label []byte
	URL   []byte
}

// Kind implements ast.Node.
func (b *Button) Kind() ast.NodeKind { return KindButton }

// Dump implements ast.Node.
func (b *Button) Dump(source []byte, level int) {
	ast.DumpHelper(b, source, level, map[string]string{
		"Label": string(b.Label),
		"URL":   string(b.URL),
	}, nil)
}

type buttonParser struct{}

func (buttonParser) Trigger() []byte { return []byte{'['} }

func (buttonParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	rest, ok := bytes.CutPrefix(line, buttonOpen)
	if !ok {
		return nil
	}

	label, rest, ok := bytes.Cut(rest, []byte("]("))
	if !ok || len(label) == 0 || bytes.ContainsAny(label, "[]") {
		return nil
	}
	url, _, ok := bytes.Cut(rest, []byte(")"))
	if !ok || len(url) == 0 {
		return nil
	}

	block.Advance(len(buttonOpen) + len(label) + 2 + len(url) + 1)
	return &Button{Label: label, URL: url}
}

type buttonRenderer struct{}

func (buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, renderButton)
}

func renderButton(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	b := node.(*Button)
	_, _ = w.WriteString(`<a class="btn" href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(b.URL, false)))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML(b.Label))
	_, _ = w.WriteString(`</a>`)
	return ast.WalkContinue, nil
}

type buttonExtension struct{}

func (buttonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(util.Prioritized(buttonParser{}, 50)))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(util.Prioritized(buttonRenderer{}, 50)))
}

// ButtonExtension enables [!button|Label](url) syntax in goldmark.
func ButtonExtension() goldmark.Extender { return buttonExtension{} }
