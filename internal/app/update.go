package app

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hollis/peel/internal/config"
	"github.com/hollis/peel/internal/content"
	"github.com/hollis/peel/internal/gesture"
	"github.com/hollis/peel/internal/highlight"
	"github.com/hollis/peel/internal/markdown"
	"github.com/hollis/peel/internal/styles"
	"github.com/hollis/peel/internal/swipe"
	"github.com/hollis/peel/internal/ui"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tickMsg:
		m.ClearToast()
		return m, tickCmd()

	case settleTickMsg:
		m.spinner.Tick()
		if m.animating() {
			return m, settleTick()
		}
		return m, nil

	case ui.SkeletonTickMsg:
		cmd := m.skeleton.Update(msg)
		return m, cmd

	case scanDoneMsg:
		return m.handleScanDone(msg)

	case docLoadedMsg:
		return m.handleDocLoaded(msg)

	case watchStartedMsg:
		m.watcher = msg.Watcher
		return m, listenWatchCmd(m.watcher)

	case watchEventMsg:
		return m, tea.Batch(scanCmd(m.store), listenWatchCmd(m.watcher))

	case ToastMsg:
		m.ShowToast(msg.Message, msg.Duration, msg.IsError)
		return m, nil
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.ready = true

	// Re-render the current document at the new wrap width. The markdown
	// cache is width-keyed, so an unchanged width is a cache hit.
	if m.panels.hasDoc {
		m.applyBody()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.OpenLeft):
		if m.pane.CanDragRight() {
			m.togglePanel(swipe.StateLeftVisible)
		}
		return m, m.settleCmd()

	case key.Matches(msg, m.keys.OpenRight):
		if m.pane.CanDragLeft() {
			m.togglePanel(swipe.StateRightVisible)
		}
		return m, m.settleCmd()

	case key.Matches(msg, m.keys.Hide):
		m.pane.SetState(swipe.StateHidden)
		return m, m.settleCmd()

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(scanCmd(m.store), toastCmd("Rescanning…", time.Second, false))

	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyText()

	case key.Matches(msg, m.keys.CopyPath):
		return m, m.copyPath()
	}

	// Remaining motion keys go to whichever side of the pane is out.
	switch m.pane.State() {
	case swipe.StateLeftVisible:
		return m.handleListKey(msg)
	case swipe.StateRightVisible:
		return m.handleDetailsKey(msg)
	default:
		return m.handleBodyKey(msg)
	}
}

// settleCmd arms the frame loop when a snap animation is in flight.
func (m Model) settleCmd() tea.Cmd {
	if m.pane.Settling() {
		return settleTick()
	}
	return nil
}

// togglePanel reveals the target side, or hides it when it is already
// out.
func (m *Model) togglePanel(target swipe.State) {
	if m.pane.State() == target {
		m.pane.SetState(swipe.StateHidden)
		return
	}
	m.pane.SetState(target)
	if target == swipe.StateRightVisible {
		m.panels.rightFocus = 0
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		return m.openSelected()
	}
	var cmd tea.Cmd
	m.panels.docList, cmd = m.panels.docList.Update(msg)
	return m, cmd
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.panels
	switch {
	case key.Matches(msg, m.keys.Up):
		if st.rightFocus > 0 {
			st.rightFocus--
		}
	case key.Matches(msg, m.keys.Down):
		if st.rightFocus < len(detailButtons)-1 {
			st.rightFocus++
		}
	case key.Matches(msg, m.keys.Select):
		return m, m.buttonAction(st.rightFocus)
	}
	return m, nil
}

func (m Model) handleBodyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.panels
	switch {
	case key.Matches(msg, m.keys.Top):
		st.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		st.viewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	st.viewport, cmd = st.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// The direction gate tracks the template mask frame by frame.
	cfg := m.gestures.Config()
	cfg.AllowLeft = m.pane.CanDragLeft()
	cfg.AllowRight = m.pane.CanDragRight()
	m.gestures.SetConfig(cfg)

	action := m.gestures.HandleMouse(msg)
	switch action.Type {
	case gesture.ActionPanStarted:
		m.pane.Pan(swipe.PanStarted, float64(action.CumulativeX))

	case gesture.ActionPanRunning:
		m.pane.Pan(swipe.PanRunning, float64(action.CumulativeX))

	case gesture.ActionPanCompleted:
		m.pane.Pan(swipe.PanCompleted, float64(action.CumulativeX))
		return m, m.settleCmd()

	case gesture.ActionScrollUp, gesture.ActionScrollDown:
		return m.handleScroll(action)

	case gesture.ActionClick:
		return m.handleClick(action)

	case gesture.ActionHover:
		m.handleHover(action)
	}
	return m, nil
}

func (m Model) handleScroll(action gesture.Action) (tea.Model, tea.Cmd) {
	if action.Region == nil {
		return m, nil
	}
	st := m.panels
	switch action.Region.ID {
	case regionDocList:
		if action.Type == gesture.ActionScrollUp {
			st.docList.CursorUp()
		} else {
			st.docList.CursorDown()
		}
	case regionBody:
		st.viewport.SetYOffset(st.viewport.YOffset + action.Delta)
	}
	return m, nil
}

func (m Model) handleClick(action gesture.Action) (tea.Model, tea.Cmd) {
	if action.Region == nil {
		return m, nil
	}
	switch action.Region.ID {
	case regionDocList:
		idx := m.panels.docIndexAt(action.Y - action.Region.Rect.Y)
		if idx >= 0 {
			m.panels.docList.Select(idx)
			return m.openSelected()
		}
	case regionCopyPath:
		return m, m.buttonAction(0)
	case regionCopyText:
		return m, m.buttonAction(1)
	case regionReload:
		return m, m.buttonAction(2)
	}
	return m, nil
}

func (m *Model) handleHover(action gesture.Action) {
	st := m.panels
	st.rightHover = -1
	if action.Region == nil {
		return
	}
	switch action.Region.ID {
	case regionCopyPath:
		st.rightHover = 0
	case regionCopyText:
		st.rightHover = 1
	case regionReload:
		st.rightHover = 2
	}
}

func (m Model) handleScanDone(msg scanDoneMsg) (tea.Model, tea.Cmd) {
	first := m.scanning
	m.scanning = false
	m.skeleton.Stop()

	if msg.Err != nil {
		return m, toastCmd("Scan failed: "+msg.Err.Error(), 4*time.Second, true)
	}

	m.panels.setDocs(msg.Docs)

	if m.panels.hasDoc {
		doc, ok := m.store.ByID(m.panels.doc.ID)
		if ok {
			// The file may have moved or changed since it was shown.
			changed := !doc.ModTime.Equal(m.panels.doc.ModTime) || doc.Size != m.panels.doc.Size
			m.panels.doc = doc
			if changed {
				m.loading = true
				m.spinner.Start()
				return m, tea.Batch(loadDocCmd(m.store, doc), settleTick())
			}
			return m, nil
		}
		m.panels.hasDoc = false
	}

	if first || len(msg.Docs) > 0 {
		if _, ok := m.panels.selectedDoc(); ok {
			return m.openSelected()
		}
	}
	if len(msg.Docs) == 0 {
		return m, toastCmd("No documents found", 3*time.Second, false)
	}
	return m, nil
}

func (m Model) handleDocLoaded(msg docLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.spinner.Stop()

	if msg.Err != nil {
		return m, toastCmd("Load failed: "+msg.Err.Error(), 4*time.Second, true)
	}
	doc, ok := m.store.ByID(msg.ID)
	if !ok {
		return m, nil
	}
	lines, mode := m.renderBody(doc, msg.Body)
	m.panels.setDocument(doc, msg.Body, lines, mode)
	return m, nil
}

// openSelected loads the document under the list cursor and brings the
// body back into view.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	doc, ok := m.panels.selectedDoc()
	if !ok {
		return m, nil
	}
	m.loading = true
	m.spinner.Start()
	m.pane.SetState(swipe.StateHidden)
	return m, tea.Batch(loadDocCmd(m.store, doc), settleTick())
}

// renderBody produces display lines for a document at the current text
// width.
func (m Model) renderBody(doc content.Document, raw string) ([]string, string) {
	width := m.textWidth()
	if isMarkdown(doc.RelPath) && width >= markdown.MinWidthForMarkdown {
		return m.renderer.RenderContent(raw, width), modeMarkdown
	}
	if lines, ok := highlight.RenderSource(doc.RelPath, raw); ok {
		return lines, modeSource
	}
	return markdown.WrapText(raw, width), modeText
}

// applyBody re-renders the current document, preserving scroll position.
func (m *Model) applyBody() {
	st := m.panels
	off := st.viewport.YOffset
	lines, mode := m.renderBody(st.doc, st.body)
	st.setDocument(st.doc, st.body, lines, mode)
	st.viewport.SetYOffset(off)
}

// textWidth is the wrap width for body rendering: the full screen less
// the scrollbar column.
func (m Model) textWidth() int {
	return max(m.width-1, 10)
}

func isMarkdown(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	names := styles.ListThemes()
	if len(names) == 0 {
		return m, nil
	}
	cur := styles.CurrentTheme().Name
	next := names[0]
	for i, n := range names {
		if n == cur {
			next = names[(i+1)%len(names)]
			break
		}
	}

	styles.ApplyTheme(next)
	m.cfg.UI.Theme = next
	m.panels.refreshStyles()
	// Rendered output embeds the old palette; start over.
	m.renderer = markdown.NewRenderer()
	if m.panels.hasDoc {
		m.applyBody()
	}

	if err := config.Save(m.cfg); err != nil {
		return m, toastCmd("Theme not saved: "+err.Error(), 3*time.Second, true)
	}
	return m, toastCmd("Theme: "+styles.GetTheme(next).DisplayName, 2*time.Second, false)
}

// buttonAction runs one of the details panel actions.
func (m *Model) buttonAction(idx int) tea.Cmd {
	switch idx {
	case 0:
		return m.copyPath()
	case 1:
		return m.copyText()
	case 2:
		st := m.panels
		if !st.hasDoc {
			return nil
		}
		doc, ok := m.store.ByID(st.doc.ID)
		if !ok {
			return toastCmd("Document is gone", 2*time.Second, true)
		}
		m.loading = true
		m.spinner.Start()
		return tea.Batch(loadDocCmd(m.store, doc), settleTick())
	}
	return nil
}

func (m Model) copyText() tea.Cmd {
	if !m.panels.hasDoc {
		return toastCmd("No document", 2*time.Second, true)
	}
	body := m.panels.body
	return func() tea.Msg {
		if err := clipboard.WriteAll(body); err != nil {
			return ToastMsg{Message: "Copy failed: " + err.Error(), Duration: 3 * time.Second, IsError: true}
		}
		return ToastMsg{Message: "Copied document text", Duration: 2 * time.Second}
	}
}

func (m Model) copyPath() tea.Cmd {
	if !m.panels.hasDoc {
		return toastCmd("No document", 2*time.Second, true)
	}
	path := m.panels.doc.Path
	return func() tea.Msg {
		if err := clipboard.WriteAll(path); err != nil {
			return ToastMsg{Message: "Copy failed: " + err.Error(), Duration: 3 * time.Second, IsError: true}
		}
		return ToastMsg{Message: "Copied path", Duration: 2 * time.Second}
	}
}
