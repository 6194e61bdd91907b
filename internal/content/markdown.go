package content

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// TruncateMarker separates a blog post summary from the rest of the post.
const TruncateMarker = "<!--truncate-->"

type Heading struct {
	Level int
	ID    string
	Text  string
}

type MarkdownOptions struct {
	Mermaid    bool
	CodeStyle  string
	GuessLangs bool
}

type Markdown struct {
	md goldmark.Markdown
}

// parsed holds a document between parsing and rendering, so links can be
// rewritten once every route is known.
type parsed struct {
	source []byte
	root   ast.Node
	meta   map[string]any
}

func NewMarkdown(opts MarkdownOptions) *Markdown {
	style := opts.CodeStyle
	if style == "" {
		style = "github"
	}

	highlighter := highlighting.NewHTMLRenderer(
		highlighting.WithStyle(style),
		highlighting.WithGuessLanguage(opts.GuessLangs),
		highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
	)

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, meta.Meta),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(newCodeBlockRenderer(highlighter, opts.Mermaid), 100),
			),
		),
	)

	return &Markdown{md: md}
}

func (m *Markdown) parse(source []byte) (*parsed, error) {
	pc := parser.NewContext()
	root := m.md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	fm, err := meta.TryGet(pc)
	if err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}
	if fm == nil {
		fm = map[string]any{}
	}

	return &parsed{source: source, root: root, meta: fm}, nil
}

func (m *Markdown) render(p *parsed) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Renderer().Render(&buf, p.source, p.root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Convert renders a standalone markdown snippet.
func (m *Markdown) Convert(source []byte) (string, error) {
	p, err := m.parse(source)
	if err != nil {
		return "", err
	}
	return m.render(p)
}

func headings(p *parsed) (title string, toc []Heading) {
	_ = ast.Walk(p.root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		label := plainText(h, p.source)
		switch {
		case h.Level == 1 && title == "":
			title = label
		case h.Level == 2 || h.Level == 3:
			var id string
			if v, ok := h.AttributeString("id"); ok {
				if b, ok := v.([]byte); ok {
					id = string(b)
				}
			}
			toc = append(toc, Heading{Level: h.Level, ID: id, Text: label})
		}
		return ast.WalkSkipChildren, nil
	})
	return title, toc
}

func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := c.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				b.Write(line.Value(source))
			}
			return ast.WalkSkipChildren, nil
		}
		if c.Type() == ast.TypeBlock && c != n {
			b.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
