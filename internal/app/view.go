package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/hollis/peel/internal/styles"
	"github.com/hollis/peel/internal/ui"
)

// View renders a full frame and rebuilds the mouse hit map to match it.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	m.gestures.HitMap.Clear()

	bodyH := m.bodyHeight()
	var content string
	if m.scanning {
		content = m.scanView(bodyH)
		m.gestures.HitMap.AddRect(regionBody, 0, 0, m.width, bodyH, nil)
	} else {
		content = m.paneView(bodyH)
	}

	sections := []string{content}
	if m.help.ShowAll {
		sections = append(sections, m.help.View(m.keys))
	}
	if m.cfg.UI.ShowStatusBar {
		sections = append(sections, m.statusView())
	}
	return strings.Join(sections, "\n")
}

// scanView shows shimmer placeholder rows during the initial scan.
func (m Model) scanView(height int) string {
	block := lipgloss.NewStyle().Padding(1, 2).Render(m.skeleton.View(min(max(m.width-4, 10), 60)))
	return strings.Join(ui.FrameLines(block, m.width, height), "\n")
}

// paneView composites the body and whatever panel the current offset
// exposes.
func (m Model) paneView(height int) string {
	width := m.width
	st := m.panels

	var layers ui.RevealLayers
	switch {
	case m.loading && !st.hasDoc:
		layers.Body = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			m.spinner.ViewFill(24, "Loading document"))
	case !st.hasDoc:
		layers.Body = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			styles.Muted.Render("No documents under "+st.root))
	default:
		layers.Body = m.pane.Content().View(width, height)
	}

	if surf := m.pane.Left().Surface(); surf != nil {
		layers.LeftWidth = m.pane.Left().Width()
		layers.Left = surf.View(layers.LeftWidth, height)
	}
	if surf := m.pane.Right().Surface(); surf != nil {
		layers.RightWidth = m.pane.Right().Width()
		layers.Right = surf.View(layers.RightWidth, height)
	}

	offset := int(math.Round(m.pane.RenderOffset(time.Now())))
	m.registerRegions(offset, height)
	return ui.ComposeReveal(layers, offset, width, height)
}

// registerRegions rebuilds the hit map for the frame being rendered. The
// body region doubles as the pan recognizer's target, so it covers
// exactly the part of the screen the body occupies.
func (m Model) registerRegions(offset, height int) {
	hm := m.gestures.HitMap

	switch {
	case offset > 0:
		// The left panel is pinned at the left screen edge.
		hm.AddRect(regionDocList, 0, 0, min(offset, m.pane.Left().Width()), height, nil)
		hm.AddRect(regionBody, offset, 0, max(m.width-offset, 0), height, nil)

	case offset < 0:
		exposed := -offset
		x := m.width - exposed
		hm.AddRect(regionBody, 0, 0, max(x, 0), height, nil)
		hm.AddRect(regionDetails, x, 0, exposed, height, nil)

		// Button rectangles line up with the panel only when it is
		// fully open and at rest.
		if exposed == m.pane.Right().Width() && m.panels.hasDoc {
			ids := []string{regionCopyPath, regionCopyText, regionReload}
			for i, r := range detailsButtonRects() {
				hm.AddRect(ids[i], x+r.X, r.Y, r.W, r.H, i)
			}
		}

	default:
		hm.AddRect(regionBody, 0, 0, m.width, height, nil)
	}
}

// statusView renders the one-line status bar: toast or document info on
// the left, key hints on the right.
func (m Model) statusView() string {
	st := m.panels

	var left string
	switch {
	case m.statusMsg != "" && m.statusIsError:
		left = styles.ToastError.Render(m.statusMsg)
	case m.statusMsg != "":
		left = styles.ToastSuccess.Render(m.statusMsg)
	case m.loading:
		left = m.spinner.View() + styles.StatusBar.Render(" loading")
	case st.hasDoc:
		left = styles.StatusBarKey.Render(st.doc.RelPath) +
			styles.StatusBar.Render(fmt.Sprintf(" · %s · %s · %d lines",
				humanize.Bytes(uint64(st.doc.Size)), st.mode, st.lines))
	default:
		left = styles.StatusBar.Render(st.root)
	}

	right := m.help.ShortHelpView(m.keys.ShortHelp())

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return ui.PadToWidth(left, m.width)
	}
	return left + styles.StatusBar.Render(strings.Repeat(" ", pad)) + right
}
