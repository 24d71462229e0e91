package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// chromaLexers maps CodeFile languages to chroma lexer names
var chromaLexers = map[string]string{
	"tsx":        "tsx",
	"typescript": "typescript",
	"javascript": "javascript",
	"css":        "css",
	"markdown":   "markdown",
	"json":       "json",
}

// highlight colors source for the terminal. Unknown languages and
// highlighter failures return the source unchanged.
func highlight(f models.CodeFile, style string) string {
	lexer, ok := chromaLexers[f.Language()]
	if !ok {
		return f.Content
	}

	var b strings.Builder
	if err := quick.Highlight(&b, f.Content, lexer, "terminal256", style); err != nil {
		return f.Content
	}
	return b.String()
}

// noMarginStyle removes glamour's document margins so the README lines up
// with the highlighted sources
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// markdownRenderer caches a glamour renderer for one wrap width
type markdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdownRenderer(style string) *markdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &markdownRenderer{style: style}
}

// Render renders markdown wrapped at width, rebuilding the renderer when
// the width changes
func (m *markdownRenderer) Render(markdown string, width int) (string, error) {
	if m.renderer == nil || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath(m.style),
			glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		m.renderer = r
		m.width = width
	}
	return m.renderer.Render(markdown)
}
