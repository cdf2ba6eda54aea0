package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// RevealLayers holds the three rendered layers of a sliding frame. Panels
// may be empty when no template is installed; their widths are the
// measured widths the layout reserves for them.
type RevealLayers struct {
	Body       string
	Left       string
	Right      string
	LeftWidth  int
	RightWidth int
}

// ComposeReveal renders one frame of the sliding layout. The body is
// shifted horizontally by offset cells: positive offsets slide it right
// and uncover the left layer at the left screen edge, negative offsets
// slide it left and uncover the right layer at the right screen edge.
// Panels stay anchored to their screen edge; travel past a panel's width
// opens a blank gap between panel and body.
func ComposeReveal(layers RevealLayers, offset, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if offset > width {
		offset = width
	}
	if offset < -width {
		offset = -width
	}

	body := FrameLines(layers.Body, width, height)
	if offset == 0 {
		return strings.Join(body, "\n")
	}

	lines := make([]string, height)
	if offset > 0 {
		under := FrameLines(layers.Left, layers.LeftWidth, height)
		for i := range lines {
			lines[i] = composeLeftLine(body[i], under[i], offset, width, layers.LeftWidth)
		}
	} else {
		under := FrameLines(layers.Right, layers.RightWidth, height)
		for i := range lines {
			lines[i] = composeRightLine(body[i], under[i], -offset, width, layers.RightWidth)
		}
	}
	return strings.Join(lines, "\n")
}

// composeLeftLine lays the exposed columns of the left layer ahead of the
// body's surviving columns.
func composeLeftLine(bodyLine, underLine string, exposed, width, panelWidth int) string {
	var sb strings.Builder

	if exposed <= panelWidth {
		writeSegment(&sb, PadToWidth(ansi.Truncate(underLine, exposed, ""), exposed))
	} else {
		writeSegment(&sb, underLine)
		sb.WriteString(strings.Repeat(" ", exposed-panelWidth))
	}

	if rest := width - exposed; rest > 0 {
		writeSegment(&sb, PadToWidth(ansi.Truncate(bodyLine, rest, ""), rest))
	}
	return sb.String()
}

// composeRightLine lays the body's surviving columns ahead of the exposed
// columns of the right layer.
func composeRightLine(bodyLine, underLine string, exposed, width, panelWidth int) string {
	var sb strings.Builder

	if rest := width - exposed; rest > 0 {
		writeSegment(&sb, PadToWidth(ansi.TruncateLeft(bodyLine, exposed, ""), rest))
	}

	if exposed <= panelWidth {
		writeSegment(&sb, PadToWidth(ansi.TruncateLeft(underLine, panelWidth-exposed, ""), exposed))
	} else {
		sb.WriteString(strings.Repeat(" ", exposed-panelWidth))
		writeSegment(&sb, underLine)
	}
	return sb.String()
}

// writeSegment appends a sliced segment, closing any style the cut left
// open so it cannot bleed into the next segment.
func writeSegment(sb *strings.Builder, seg string) {
	sb.WriteString(seg)
	if strings.Contains(seg, "\x1b") {
		sb.WriteString(sgrReset)
	}
}

// FrameLines splits rendered content into exactly height lines, each
// padded to width cells. Extra lines are dropped, missing ones filled.
func FrameLines(content string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	var src []string
	if content != "" {
		src = strings.Split(content, "\n")
	}

	lines := make([]string, height)
	for i := range lines {
		if i < len(src) {
			lines[i] = PadToWidth(src[i], width)
		} else {
			lines[i] = PadToWidth("", width)
		}
	}
	return lines
}

// PadToWidth pads line with spaces to exactly width cells, truncating
// first if it is too wide. Width is measured ignoring ANSI sequences.
func PadToWidth(line string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(line)
	if w > width {
		line = ansi.Truncate(line, width, "")
		w = ansi.StringWidth(line)
	}
	if w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}
