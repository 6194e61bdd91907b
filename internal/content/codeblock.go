package content

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

const mermaidLanguage = "mermaid"

// codeBlockRenderer emits mermaid fences as <pre class="mermaid"> for the
// client-side mermaid script and hands every other fence to the highlighter.
type codeBlockRenderer struct {
	highlighter renderer.NodeRenderer
	fallback    renderer.NodeRendererFunc
	mermaid     bool
}

func newCodeBlockRenderer(highlighter renderer.NodeRenderer, mermaid bool) *codeBlockRenderer {
	r := &codeBlockRenderer{highlighter: highlighter, mermaid: mermaid}
	capture := funcCapture{}
	highlighter.RegisterFuncs(capture)
	r.fallback = capture[ast.KindFencedCodeBlock]
	return r
}

type funcCapture map[ast.NodeKind]renderer.NodeRendererFunc

func (c funcCapture) Register(kind ast.NodeKind, fn renderer.NodeRendererFunc) {
	c[kind] = fn
}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) SetOption(name renderer.OptionName, value any) {
	if setter, ok := r.highlighter.(renderer.SetOptioner); ok {
		setter.SetOption(name, value)
	}
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	block := node.(*ast.FencedCodeBlock)
	if !r.mermaid || string(block.Language(source)) != mermaidLanguage {
		if r.fallback == nil {
			return ast.WalkContinue, nil
		}
		return r.fallback(w, source, node, entering)
	}

	if !entering {
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<pre class="mermaid">`)
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(util.EscapeHTML(line.Value(source)))
	}
	_, _ = w.WriteString("</pre>\n")
	return ast.WalkSkipChildren, nil
}
