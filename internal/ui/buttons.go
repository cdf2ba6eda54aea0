package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hollis/peel/internal/styles"
)

// ResolveButtonStyle returns the style for button btnIdx given which
// index is focused and which is hovered (-1 for neither). Focus wins
// over hover.
func ResolveButtonStyle(focusIdx, hoverIdx, btnIdx int) lipgloss.Style {
	if focusIdx == btnIdx {
		return styles.ButtonFocused
	}
	if hoverIdx == btnIdx {
		return styles.ButtonHover
	}
	return styles.ButtonNormal
}

// RenderButtonRow renders the labels as a horizontal button row with
// two-space gaps. focusIdx and hoverIdx are 0-based, -1 for none.
func RenderButtonRow(labels []string, focusIdx, hoverIdx int) string {
	var sb strings.Builder
	for i, label := range labels {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(ResolveButtonStyle(focusIdx, hoverIdx, i).Render(label))
	}
	return sb.String()
}

// ButtonRowWidths returns the rendered cell width of each button in a
// row, in order. Hit regions for buttons are laid out from these.
func ButtonRowWidths(labels []string) []int {
	widths := make([]int, len(labels))
	for i, label := range labels {
		widths[i] = lipgloss.Width(styles.ButtonNormal.Render(label))
	}
	return widths
}
