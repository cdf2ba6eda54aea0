package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollis/peel/internal/styles"
)

// SkeletonTickMsg advances the shimmer animation frame.
type SkeletonTickMsg time.Time

// SkeletonTickInterval is the shimmer frame rate.
const SkeletonTickInterval = 80 * time.Millisecond

// Skeleton renders animated placeholder rows with a shimmer effect,
// shown while the document store performs its initial scan.
type Skeleton struct {
	Rows      int   // number of placeholder rows
	RowWidths []int // width percentages per row, cycled if fewer than Rows

	frame    int
	active   bool
	shimmerW int
}

// NewSkeleton creates a skeleton loader with the given row count.
// rowWidths are per-row percentages of the available width; nil uses a
// varied default pattern.
func NewSkeleton(rows int, rowWidths []int) Skeleton {
	if rowWidths == nil {
		rowWidths = []int{85, 60, 75, 55, 80, 65, 70, 50}
	}
	return Skeleton{
		Rows:      rows,
		RowWidths: rowWidths,
		active:    true,
		shimmerW:  6,
	}
}

// Start begins the shimmer animation.
func (s *Skeleton) Start() tea.Cmd {
	s.active = true
	return SkeletonTick()
}

// Stop halts the shimmer animation.
func (s *Skeleton) Stop() {
	s.active = false
}

// IsActive reports whether the animation is running.
func (s Skeleton) IsActive() bool {
	return s.active
}

// Update consumes tick messages and schedules the next frame while the
// animation is active.
func (s *Skeleton) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(SkeletonTickMsg); ok {
		if !s.active {
			return nil
		}
		s.frame++
		return SkeletonTick()
	}
	return nil
}

// SkeletonTick schedules the next shimmer frame.
func SkeletonTick() tea.Cmd {
	return tea.Tick(SkeletonTickInterval, func(t time.Time) tea.Msg {
		return SkeletonTickMsg(t)
	})
}

// View renders the skeleton rows. width is the available content width.
func (s Skeleton) View(width int) string {
	if width < 10 {
		width = 10
	}

	var sb strings.Builder

	// The shimmer band cycles left to right across the rows.
	cycleLen := width + s.shimmerW*2
	shimmerStart := s.frame % cycleLen

	dimStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	brightStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)

	for row := range s.Rows {
		widthPct := s.RowWidths[row%len(s.RowWidths)]
		rowWidth := min(max((width*widthPct)/100, 5), width)

		sb.WriteString(s.renderShimmerLine(rowWidth, shimmerStart+row*2, cycleLen, dimStyle, brightStyle))
		if row < s.Rows-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (s Skeleton) renderShimmerLine(width, shimmerPos, cycleLen int, dimStyle, brightStyle lipgloss.Style) string {
	const (
		charDim    = "░"
		charBright = "▒"
	)

	shimmerPos = shimmerPos % cycleLen

	var parts []string
	inShimmer := false
	segmentStart := 0

	for col := 0; col <= width; col++ {
		distFromShimmer := col - (shimmerPos - s.shimmerW)
		nowInShimmer := distFromShimmer >= 0 && distFromShimmer < s.shimmerW && col < width

		if col == width || nowInShimmer != inShimmer {
			segmentLen := col - segmentStart
			if segmentLen > 0 {
				if inShimmer {
					parts = append(parts, brightStyle.Render(strings.Repeat(charBright, segmentLen)))
				} else {
					parts = append(parts, dimStyle.Render(strings.Repeat(charDim, segmentLen)))
				}
			}
			segmentStart = col
			inShimmer = nowInShimmer
		}
	}

	return strings.Join(parts, "")
}
