package ui

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/glamour"
)

const defaultChromaStyle = "nord"

// decorator turns raw preview text into terminal output. It only changes how
// the text is drawn; the session's preview stays untouched.
type decorator struct {
	highlight bool
	markdown  bool
	style     string
	cache     map[decorKey]string
}

type decorKey struct {
	index int
	width int
	sum   uint64
}

func newDecorator(highlight, markdown bool, style string) *decorator {
	if style == "" {
		style = defaultChromaStyle
	}
	return &decorator{
		highlight: highlight,
		markdown:  markdown,
		style:     style,
		cache:     make(map[decorKey]string),
	}
}

// decorate returns the decorated form of text for the entry at index.
// Results are cached per entry, width and content.
func (d *decorator) decorate(index int, name, text string, width int) string {
	if !d.highlight && !d.markdown {
		return text
	}
	k := decorKey{index: index, width: width, sum: xxhash.Sum64String(text)}
	if out, ok := d.cache[k]; ok {
		return out
	}

	out := text
	switch {
	case d.markdown && isMarkdown(name):
		out = renderMarkdown(text, width)
	case d.highlight:
		if h := highlight(name, text, d.style); h != "" {
			out = h
		}
	}
	d.cache[k] = out
	return out
}

func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".mdx":
		return true
	}
	return false
}

func highlight(name, text, style string) string {
	lexer := lexers.Match(name)
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		// Nothing to colour; leave plain text alone.
		return ""
	}

	s := chromastyles.Get(style)
	if s == nil {
		s = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, s, iterator); err != nil {
		return ""
	}
	return buf.String()
}

func renderMarkdown(text string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(24, width-3)),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
