package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hollis/peel/internal/styles"
)

// BrailleSpinner renders an animated braille dot pattern. It is passive:
// it does not generate its own ticks. Call Tick from an existing
// animation-frame handler to advance it.
type BrailleSpinner struct {
	frame  int
	active bool
}

// Rolling wave pattern over braille dot characters.
var brailleFrames = []string{
	"⠋ ⠙ ⠹ ⠸",
	"⠙ ⠹ ⠸ ⠼",
	"⠹ ⠸ ⠼ ⠴",
	"⠸ ⠼ ⠴ ⠦",
	"⠼ ⠴ ⠦ ⠧",
	"⠴ ⠦ ⠧ ⠇",
	"⠦ ⠧ ⠇ ⠏",
	"⠧ ⠇ ⠏ ⠋",
	"⠇ ⠏ ⠋ ⠙",
	"⠏ ⠋ ⠙ ⠹",
}

// NewBrailleSpinner creates an inactive spinner.
func NewBrailleSpinner() BrailleSpinner {
	return BrailleSpinner{}
}

// Start marks the spinner as active and rewinds it.
func (b *BrailleSpinner) Start() {
	b.active = true
	b.frame = 0
}

// Stop halts the animation.
func (b *BrailleSpinner) Stop() {
	b.active = false
}

// IsActive reports whether the spinner is running.
func (b BrailleSpinner) IsActive() bool {
	return b.active
}

// Tick advances the animation by one frame.
func (b *BrailleSpinner) Tick() {
	if b.active {
		b.frame++
	}
}

// View renders the current spinner frame.
func (b BrailleSpinner) View() string {
	if !b.active {
		return ""
	}
	frame := brailleFrames[b.frame%len(brailleFrames)]
	return lipgloss.NewStyle().Foreground(styles.TextMuted).Render(frame)
}

// ViewFill renders the spinner centered in the given width, with an
// optional label line above it.
func (b BrailleSpinner) ViewFill(width int, label string) string {
	if !b.active {
		return ""
	}
	frame := brailleFrames[b.frame%len(brailleFrames)]

	var sb strings.Builder
	if label != "" {
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.TextMuted).Render(label))
		sb.WriteString("\n")
	}
	line := lipgloss.NewStyle().Foreground(styles.Accent).Render(frame)
	pad := (width - runewidth.StringWidth(frame)) / 2
	if pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(line)
	return sb.String()
}
