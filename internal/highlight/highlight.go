// Package highlight renders source files to styled terminal lines using
// Chroma, for documents the markdown renderer does not handle.
package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollis/peel/internal/styles"
	"github.com/hollis/peel/internal/ui"
)

// TabWidth is the tab expansion applied to highlighted lines. Rendered
// rows must be tab-free so column slicing stays accurate.
const TabWidth = 4

// Highlighter tokenizes lines of one file type.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// New creates a highlighter for the given filename. Returns nil when no
// lexer matches the file type.
func New(filename string) *Highlighter {
	lexer := lexers.Match(filename)
	if lexer == nil {
		if ext := filepath.Ext(filename); ext != "" {
			lexer = lexers.Get(ext)
		}
	}
	if lexer == nil {
		return nil
	}

	style := chromastyles.Get(styles.GetSyntaxTheme())
	if style == nil {
		style = chromastyles.Fallback
	}

	return &Highlighter{
		lexer: chroma.Coalesce(lexer),
		style: style,
	}
}

// Segment is a run of text sharing one style.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

// Line tokenizes one line into styled segments. A nil highlighter
// passes the line through unstyled.
func (h *Highlighter) Line(line string) []Segment {
	if h == nil || h.lexer == nil {
		return []Segment{{Text: line, Style: lipgloss.NewStyle()}}
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return []Segment{{Text: line, Style: lipgloss.NewStyle()}}
	}

	var segments []Segment
	for _, token := range iterator.Tokens() {
		// Chroma appends newlines to some tokens; they break lipgloss
		// width math.
		text := strings.TrimSuffix(token.Value, "\n")
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:  text,
			Style: h.tokenStyle(token.Type),
		})
	}

	return segments
}

// Render highlights one line and joins the styled segments.
func (h *Highlighter) Render(line string) string {
	var sb strings.Builder
	for _, seg := range h.Line(line) {
		sb.WriteString(seg.Style.Render(seg.Text))
	}
	return sb.String()
}

// tokenStyle converts a Chroma token type to a lipgloss style.
func (h *Highlighter) tokenStyle(tokenType chroma.TokenType) lipgloss.Style {
	entry := h.style.Get(tokenType)
	style := lipgloss.NewStyle()

	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	// Italic is not applied: its ANSI sequences skew visual width in
	// some terminals, which misaligns sliced rows.
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	return style
}

// RenderSource highlights a whole file into display lines with tabs
// expanded. The second result is false when no lexer matches, in which
// case the caller should fall back to plain text.
func RenderSource(filename, content string) ([]string, bool) {
	h := New(filename)
	if h == nil {
		return nil, false
	}

	raw := strings.Split(strings.TrimRight(content, "\n"), "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = ui.ExpandTabs(h.Render(line), TabWidth)
	}
	return lines, true
}
