package mailer

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ButtonNode represents a button link in the AST.
type ButtonNode struct {
	ast.BaseInline
	URL   []byte
	Label []byte
}

func (n *ButtonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// KindButton is the node kind for ButtonNode.
var KindButton = ast.NewNodeKind("Button")

// buttonPrefix is the syntax prefix that triggers button parsing.
const buttonPrefix = "[!button|"

func (n *ButtonNode) Kind() ast.NodeKind {
	return KindButton
}

// buttonParser parses button syntax: [!button|Text](URL).
// Label and URL may contain backslash-escaped ']' and ')'.
type buttonParser struct{}

// NewButtonParser creates a new button inline parser.
func NewButtonParser() parser.InlineParser {
	return &buttonParser{}
}

func (s *buttonParser) Trigger() []byte {
	return []byte{'['}
}

func (s *buttonParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if line == nil {
		return nil
	}

	if len(line) < len(buttonPrefix) || string(line[:len(buttonPrefix)]) != buttonPrefix {
		return nil
	}

	label, textEnd := scanUntil(line, len(buttonPrefix), ']')
	if textEnd == -1 {
		return nil
	}

	if textEnd+1 >= len(line) || line[textEnd+1] != '(' {
		return nil
	}

	url, urlEnd := scanUntil(line, textEnd+2, ')')
	if urlEnd == -1 {
		return nil
	}

	block.Advance(urlEnd + 1)

	return &ButtonNode{
		URL:   url,
		Label: label,
	}
}

// scanUntil reads line from start up to the first unescaped closer and
// returns the unescaped content with the closer's index, or -1 if the line
// ends first. A backslash makes the next byte literal.
func scanUntil(line []byte, start int, closer byte) ([]byte, int) {
	out := make([]byte, 0, len(line)-start)
	for i := start; i < len(line); i++ {
		switch c := line[i]; {
		case c == '\n' || c == '\r':
			return nil, -1
		case c == '\\' && i+1 < len(line) && line[i+1] != '\n' && line[i+1] != '\r':
			i++
			out = append(out, line[i])
		case c == closer:
			return out, i
		default:
			out = append(out, c)
		}
	}
	return nil, -1
}

var buttonEscaper = strings.NewReplacer(`\`, `\\`, `]`, `\]`, `)`, `\)`, "\r", "%0D", "\n", "%0A")

// ButtonMarkdown formats a call-to-action in the [!button|Label](URL) syntax,
// escaping label and url so the rendered anchor carries them unchanged.
// Line breaks in url are percent-encoded.
func ButtonMarkdown(label, url string) string {
	return buttonPrefix + buttonEscaper.Replace(label) + "](" + buttonEscaper.Replace(url) + ")"
}

// buttonText is the plain-text rendering of a call-to-action.
func buttonText(label, url string) string {
	return label + ": " + url
}

// DefaultButtonStyle is the inline CSS applied to call-to-action links.
// Email clients strip <style> blocks, so the look has to live on the element.
const DefaultButtonStyle = "display:inline-block;padding:12px 24px;background-color:#2563eb;" +
	"color:#ffffff;text-decoration:none;border-radius:6px;font-weight:600;"

// buttonRenderer renders ButtonNode to HTML.
type buttonRenderer struct {
	html.Config
	style string
}

// NewButtonRenderer creates a new button node renderer using the given inline style.
func NewButtonRenderer(style string, opts ...html.Option) renderer.NodeRenderer {
	r := &buttonRenderer{
		Config: html.NewConfig(),
		style:  style,
	}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.renderButton)
}

func (r *buttonRenderer) renderButton(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ButtonNode)

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(n.URL))
	_, _ = w.WriteString(`" style="`)
	_, _ = w.Write(util.EscapeHTML([]byte(r.style)))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString(`</a>`)

	return ast.WalkContinue, nil
}

// ButtonExtension is a goldmark extension for button links.
type ButtonExtension struct {
	Style string
}

func (e *ButtonExtension) Extend(m goldmark.Markdown) {
	style := e.Style
	if style == "" {
		style = DefaultButtonStyle
	}
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(NewButtonParser(), 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewButtonRenderer(style), 50),
	))
}

// NewButtonExtension creates a button extension with DefaultButtonStyle.
func NewButtonExtension() goldmark.Extender {
	return &ButtonExtension{}
}
