package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hollis/peel/internal/styles"
)

// VerticalSeam renders the one-column edge a panel shows against the
// sliding body. Height rows, one cell wide.
func VerticalSeam(height int) string {
	if height < 1 {
		return ""
	}
	seamStyle := lipgloss.NewStyle().Foreground(styles.BorderNormal)

	var sb strings.Builder
	for i := 0; i < height; i++ {
		sb.WriteString("│")
		if i < height-1 {
			sb.WriteString("\n")
		}
	}
	return seamStyle.Render(sb.String())
}
