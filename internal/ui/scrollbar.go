package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollis/peel/internal/styles"
)

// ScrollbarParams configures a vertical scrollbar rendering.
type ScrollbarParams struct {
	Total   int // total logical rows
	Offset  int // index of the first visible row
	Visible int // rows that fit in the viewport
	Height  int // scrollbar track height in terminal rows
}

// ViewportScrollbar renders a scrollbar matching a viewport's scroll
// position.
func ViewportScrollbar(vp viewport.Model) string {
	return RenderScrollbar(ScrollbarParams{
		Total:   vp.TotalLineCount(),
		Offset:  vp.YOffset,
		Visible: vp.Height,
		Height:  vp.Height,
	})
}

// RenderScrollbar returns a single-column track with a proportional
// thumb, newline-separated, exactly Height lines. When everything fits it
// returns a column of spaces so the layout keeps its width.
func RenderScrollbar(p ScrollbarParams) string {
	if p.Height < 1 {
		return ""
	}

	if p.Total <= p.Visible {
		lines := make([]string, p.Height)
		for i := range lines {
			lines[i] = " "
		}
		return strings.Join(lines, "\n")
	}

	thumbSize := (p.Visible * p.Height) / p.Total
	if thumbSize < 1 {
		thumbSize = 1
	}
	if thumbSize > p.Height {
		thumbSize = p.Height
	}

	maxOffset := p.Total - p.Visible
	if maxOffset < 1 {
		maxOffset = 1
	}
	thumbPos := (p.Offset * (p.Height - thumbSize)) / maxOffset
	if thumbPos < 0 {
		thumbPos = 0
	}
	if thumbPos > p.Height-thumbSize {
		thumbPos = p.Height - thumbSize
	}

	trackChar := lipgloss.NewStyle().Foreground(styles.BorderNormal).Render("│")
	thumbChar := lipgloss.NewStyle().Foreground(styles.TextSecondary).Render("┃")

	lines := make([]string, p.Height)
	for i := range p.Height {
		if i >= thumbPos && i < thumbPos+thumbSize {
			lines[i] = thumbChar
		} else {
			lines[i] = trackChar
		}
	}

	return strings.Join(lines, "\n")
}
