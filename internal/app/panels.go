package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/hollis/peel/internal/content"
	"github.com/hollis/peel/internal/gesture"
	"github.com/hollis/peel/internal/styles"
	"github.com/hollis/peel/internal/ui"
)

// Render modes for the document body.
const (
	modeMarkdown = "markdown"
	modeSource   = "source"
	modeText     = "text"
)

// panelState is the render state shared between the root model and the
// pane surfaces. Bubble Tea replaces the Model value on every Update,
// but the surfaces materialized by the pane factories live as long as
// the pane, so they read through this pointer instead of a stale copy.
type panelState struct {
	root string

	// Left panel
	docList list.Model

	// Body
	viewport viewport.Model
	body     string // raw document text, before rendering
	lines    int
	mode     string

	// Right panel
	doc        content.Document
	hasDoc     bool
	rightFocus int
	rightHover int // -1 when no button is hovered
}

func newPanelState(root string) *panelState {
	return &panelState{
		root:       root,
		docList:    newDocList(),
		viewport:   viewport.New(0, 0),
		rightHover: -1,
	}
}

// refreshStyles re-derives widget styles after a theme change. The list
// delegate snapshots style values at construction, so it has to be
// rebuilt.
func (st *panelState) refreshStyles() {
	st.docList.SetDelegate(newDocDelegate())
	st.docList.Styles.Title = styles.PanelHeader
}

// setDocs replaces the document list, keeping the selection on the same
// document when it survived the rescan.
func (st *panelState) setDocs(docs []content.Document) {
	keep := ""
	if it, ok := st.docList.SelectedItem().(docItem); ok {
		keep = it.doc.ID
	}

	items := make([]list.Item, len(docs))
	sel := 0
	for i, d := range docs {
		items[i] = docItem{doc: d}
		if d.ID == keep {
			sel = i
		}
	}
	st.docList.SetItems(items)
	st.docList.Select(sel)
	st.docList.Title = fmt.Sprintf("Documents (%d)", len(docs))
}

// selectedDoc returns the document under the list cursor.
func (st *panelState) selectedDoc() (content.Document, bool) {
	it, ok := st.docList.SelectedItem().(docItem)
	if !ok {
		return content.Document{}, false
	}
	return it.doc, true
}

// setDocument installs a freshly rendered document body.
func (st *panelState) setDocument(doc content.Document, raw string, lines []string, mode string) {
	st.doc = doc
	st.hasDoc = true
	st.body = raw
	st.lines = len(lines)
	st.mode = mode
	st.viewport.SetContent(strings.Join(lines, "\n"))
	st.viewport.GotoTop()
}

// docItem adapts a content.Document to the bubbles list.
type docItem struct {
	doc content.Document
}

func (d docItem) Title() string { return d.doc.RelPath }
func (d docItem) Description() string {
	return humanize.Bytes(uint64(d.doc.Size)) + " · " + humanize.Time(d.doc.ModTime)
}
func (d docItem) FilterValue() string { return d.doc.RelPath }

func newDocDelegate() list.DefaultDelegate {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.TextPrimary).
		BorderLeftForeground(styles.Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.TextSecondary).
		BorderLeftForeground(styles.Primary)
	return delegate
}

func newDocList() list.Model {
	l := list.New(nil, newDocDelegate(), 0, 0)
	l.Title = "Documents"
	l.Styles.Title = styles.PanelHeader
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

// Default list geometry: a two-row title bar, then three rows per item
// (two content rows plus spacing). Click-to-item mapping depends on it.
const (
	docListHeaderRows  = 2
	docListRowsPerItem = 3
)

// docIndexAt maps a row inside the left panel to a document index, or -1
// when the row does not land on an item.
func (st *panelState) docIndexAt(y int) int {
	row := y - docListHeaderRows
	if row < 0 {
		return -1
	}
	p := st.docList.Paginator
	slot := row / docListRowsPerItem
	if slot >= p.PerPage {
		return -1
	}
	idx := p.Page*p.PerPage + slot
	if idx >= len(st.docList.Items()) {
		return -1
	}
	return idx
}

// bodySurface renders the document viewport with its scrollbar. It is
// the pane's center content.
type bodySurface struct {
	state *panelState
}

func (s *bodySurface) View(width, height int) string {
	st := s.state
	if st.viewport.Width != width-1 || st.viewport.Height != height {
		st.viewport.Width = max(width-1, 0)
		st.viewport.Height = max(height, 0)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, st.viewport.View(), ui.ViewportScrollbar(st.viewport))
}

// leftSurface renders the document list with a seam along its right
// edge. Materialized on first reveal.
type leftSurface struct {
	state *panelState
}

func (s *leftSurface) View(width, height int) string {
	st := s.state
	inner := max(width-1, 0)
	if st.docList.Width() != inner || st.docList.Height() != height {
		st.docList.SetSize(inner, height)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, st.docList.View(), ui.VerticalSeam(height))
}

// Details panel row layout, counted from the panel's top edge. The
// button hit regions registered during View depend on these offsets.
const (
	detailsFirstButtonRow = 10
	detailsPadX           = 1
)

var detailButtons = []string{"Copy Path", "Copy Text", "Reload"}

// detailsButtonRects returns the hit rectangles of the stacked buttons,
// relative to the top-left corner of the details panel.
func detailsButtonRects() []gesture.Rect {
	widths := ui.ButtonRowWidths(detailButtons)
	rects := make([]gesture.Rect, len(detailButtons))
	for i, w := range widths {
		rects[i] = gesture.Rect{X: 1 + detailsPadX, Y: detailsFirstButtonRow + i, W: w, H: 1}
	}
	return rects
}

// rightSurface renders document details and actions with a seam along
// its left edge. Materialized on first reveal.
type rightSurface struct {
	state *panelState
}

func (s *rightSurface) View(width, height int) string {
	st := s.state
	inner := max(width-1, 0)
	pad := strings.Repeat(" ", detailsPadX)
	avail := max(inner-detailsPadX, 1)

	label := func(text string) string { return styles.Muted.Render(text) }

	lines := make([]string, 0, height)
	lines = append(lines, pad+styles.PanelHeader.Render("Details"))
	lines = append(lines, "")

	if !st.hasDoc {
		lines = append(lines, pad+styles.Muted.Render("No document selected"))
	} else {
		path := st.doc.Path
		if over := ansi.StringWidth(path) - avail; over > 0 {
			path = ansi.TruncateLeft(path, over+1, "…")
		}

		lines = append(lines,
			pad+styles.Title.Render(ansi.Truncate(st.doc.RelPath, avail, "…")),
			pad+styles.Subtitle.Render(path),
			"",
			pad+label("Size     ")+styles.Body.Render(humanize.Bytes(uint64(st.doc.Size))),
			pad+label("Modified ")+styles.Body.Render(humanize.Time(st.doc.ModTime)),
			pad+label("Lines    ")+styles.Body.Render(fmt.Sprintf("%d", st.lines)),
			pad+label("Format   ")+styles.Body.Render(st.mode),
			"",
		)
		for i, btn := range detailButtons {
			lines = append(lines, pad+ui.ResolveButtonStyle(st.rightFocus, st.rightHover, i).Render(btn))
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, ui.VerticalSeam(height), strings.Join(lines, "\n"))
}
