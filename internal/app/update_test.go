package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hollis/peel/internal/config"
	"github.com/hollis/peel/internal/content"
	"github.com/hollis/peel/internal/styles"
	"github.com/hollis/peel/internal/swipe"
)

func newTestModel(t *testing.T, files map[string]string) Model {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	store, err := content.NewStore(dir, nil)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return New(config.Default(), store)
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

// resize sets the terminal size and renders once so the hit map matches
// the frame.
func resize(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	m, _ = apply(t, m, tea.WindowSizeMsg{Width: w, Height: h})
	m.View()
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// openPanel forces a panel state and waits out the snap animation so the
// next rendered frame, and the hit map built from it, are at rest.
func openPanel(m Model, s swipe.State) {
	m.pane.SetState(s)
	time.Sleep(swipe.SettleDuration + 20*time.Millisecond)
}

func pressAt(t *testing.T, m Model, x, y int) (Model, tea.Cmd) {
	t.Helper()
	return apply(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func dragTo(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	m, _ = apply(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	return m
}

func releaseAt(t *testing.T, m Model, x, y int) (Model, tea.Cmd) {
	t.Helper()
	return apply(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func TestPanelToggle_Keys(t *testing.T) {
	m := resize(t, newTestModel(t, nil), 80, 24)

	m, _ = apply(t, m, keyRunes("["))
	if got := m.pane.State(); got != swipe.StateLeftVisible {
		t.Fatalf("after [: state = %v, want %v", got, swipe.StateLeftVisible)
	}

	m, _ = apply(t, m, keyRunes("["))
	if got := m.pane.State(); got != swipe.StateHidden {
		t.Fatalf("after second [: state = %v, want %v", got, swipe.StateHidden)
	}

	m, _ = apply(t, m, keyRunes("]"))
	if got := m.pane.State(); got != swipe.StateRightVisible {
		t.Fatalf("after ]: state = %v, want %v", got, swipe.StateRightVisible)
	}
	if m.panels.rightFocus != 0 {
		t.Errorf("rightFocus = %d after opening details, want 0", m.panels.rightFocus)
	}

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.pane.State(); got != swipe.StateHidden {
		t.Errorf("after esc: state = %v, want %v", got, swipe.StateHidden)
	}
}

func TestPanelToggle_DisabledSideIgnored(t *testing.T) {
	cfg := config.Default()
	cfg.Panels.RightEnabled = false

	store, err := content.NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	m := resize(t, New(cfg, store), 80, 24)

	m, _ = apply(t, m, keyRunes("]"))
	if got := m.pane.State(); got != swipe.StateHidden {
		t.Errorf("] with right panel disabled: state = %v, want %v", got, swipe.StateHidden)
	}

	m, _ = apply(t, m, keyRunes("["))
	if got := m.pane.State(); got != swipe.StateLeftVisible {
		t.Errorf("[ should still work: state = %v, want %v", got, swipe.StateLeftVisible)
	}
}

func TestDrag_CommitsLeftPanel(t *testing.T) {
	m := resize(t, newTestModel(t, nil), 80, 24)

	m, _ = pressAt(t, m, 40, 10)
	m = dragTo(t, m, 44, 10) // crosses the threshold, travel re-bases here
	m = dragTo(t, m, 60, 10)
	m, _ = releaseAt(t, m, 76, 10) // +32 of travel, the full left panel width

	if got := m.pane.State(); got != swipe.StateLeftVisible {
		t.Fatalf("state = %v, want %v", got, swipe.StateLeftVisible)
	}
	if got := m.pane.Offset(); got != 32 {
		t.Errorf("Offset() = %v, want parked 32", got)
	}
	if !m.pane.Settling() {
		t.Error("Settling() = false right after commit, want true")
	}
	if got := m.pane.RenderOffset(time.Now().Add(swipe.SettleDuration)); got != 32 {
		t.Errorf("RenderOffset after settle = %v, want 32", got)
	}
}

func TestDrag_ShortReleaseSnapsBack(t *testing.T) {
	m := resize(t, newTestModel(t, nil), 80, 24)

	m, _ = pressAt(t, m, 40, 10)
	m = dragTo(t, m, 44, 10)
	m = dragTo(t, m, 52, 10)
	m, cmd := releaseAt(t, m, 52, 10) // +8, well short of the 32-cell width

	if got := m.pane.State(); got != swipe.StateHidden {
		t.Fatalf("state = %v, want %v", got, swipe.StateHidden)
	}
	if got := m.pane.Offset(); got != 0 {
		t.Errorf("Offset() = %v, want 0", got)
	}
	if cmd == nil {
		t.Error("release should schedule a settle tick, got nil cmd")
	}
	if got := m.pane.RenderOffset(time.Now().Add(swipe.SettleDuration)); got != 0 {
		t.Errorf("RenderOffset after settle = %v, want 0", got)
	}
}

func TestDrag_CommitsRightPanel(t *testing.T) {
	m := resize(t, newTestModel(t, nil), 80, 24)

	m, _ = pressAt(t, m, 70, 10)
	m = dragTo(t, m, 66, 10)
	m = dragTo(t, m, 40, 10)
	m, _ = releaseAt(t, m, 28, 10) // -38 of travel, past the right panel width

	if got := m.pane.State(); got != swipe.StateRightVisible {
		t.Fatalf("state = %v, want %v", got, swipe.StateRightVisible)
	}
	if got := m.pane.Offset(); got != -36 {
		t.Errorf("Offset() = %v, want parked -36 rather than the raw travel", got)
	}
}

func TestDrag_VerticalMovementIgnored(t *testing.T) {
	m := resize(t, newTestModel(t, nil), 80, 24)

	m, _ = pressAt(t, m, 40, 10)
	m = dragTo(t, m, 41, 14) // clearly vertical, kills the candidate
	m = dragTo(t, m, 60, 14)
	m, _ = releaseAt(t, m, 60, 14)

	if got := m.pane.State(); got != swipe.StateHidden {
		t.Errorf("state = %v, want %v", got, swipe.StateHidden)
	}
	if got := m.pane.Offset(); got != 0 {
		t.Errorf("Offset() = %v, want 0", got)
	}
	if m.pane.Settling() {
		t.Error("Settling() = true after a cancelled candidate, want false")
	}
}

func TestScanAndLoad_PopulatesBody(t *testing.T) {
	m := resize(t, newTestModel(t, map[string]string{
		"readme.md": "# Title\n\nBody text here.\n",
	}), 80, 24)

	sd, ok := scanCmd(m.store)().(scanDoneMsg)
	if !ok {
		t.Fatal("scanCmd did not produce a scanDoneMsg")
	}
	m, cmd := apply(t, m, sd)

	if m.scanning {
		t.Error("scanning = true after scan completed")
	}
	if got := len(m.panels.docList.Items()); got != 1 {
		t.Fatalf("doc list has %d items, want 1", got)
	}
	if !m.loading {
		t.Error("loading = false, want true while the first document loads")
	}
	if cmd == nil {
		t.Fatal("scan completion should schedule the first document load")
	}

	doc := m.store.Documents()[0]
	m, _ = apply(t, m, loadDocCmd(m.store, doc)())

	if m.loading {
		t.Error("loading = true after the document arrived")
	}
	if !m.panels.hasDoc {
		t.Fatal("hasDoc = false after load")
	}
	if m.panels.mode != modeMarkdown {
		t.Errorf("mode = %q, want %q", m.panels.mode, modeMarkdown)
	}
	if m.panels.lines == 0 {
		t.Error("rendered document has no lines")
	}
}

func TestLoadFailure_ShowsToast(t *testing.T) {
	m := resize(t, newTestModel(t, nil), 80, 24)
	m.loading = true

	m, cmd := apply(t, m, docLoadedMsg{ID: "gone", Err: os.ErrNotExist})
	if m.loading {
		t.Error("loading = true after a failed load")
	}
	if cmd == nil {
		t.Fatal("failed load should produce a toast command")
	}
	msg, ok := cmd().(ToastMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want ToastMsg", cmd())
	}
	if !msg.IsError {
		t.Error("toast for a failed load should be an error")
	}
}

func TestToast_ExpiresOnTick(t *testing.T) {
	m := resize(t, newTestModel(t, nil), 80, 24)

	m, _ = apply(t, m, ToastMsg{Message: "saved", Duration: time.Minute})
	if m.statusMsg != "saved" {
		t.Fatalf("statusMsg = %q, want %q", m.statusMsg, "saved")
	}

	m, _ = apply(t, m, tickMsg(time.Now()))
	if m.statusMsg != "saved" {
		t.Error("toast cleared before its duration elapsed")
	}

	m.statusExpiry = time.Now().Add(-time.Second)
	m, _ = apply(t, m, tickMsg(time.Now()))
	if m.statusMsg != "" {
		t.Errorf("statusMsg = %q after expiry, want empty", m.statusMsg)
	}
}

func TestThemeKey_CyclesAndPersists(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("PEEL_CONFIG", cfgPath)
	t.Cleanup(func() { styles.ApplyTheme("default") })

	m := resize(t, newTestModel(t, nil), 80, 24)

	m, cmd := apply(t, m, keyRunes("t"))
	if got := styles.CurrentTheme().Name; got != "light" {
		t.Errorf("current theme = %q, want %q", got, "light")
	}
	if m.cfg.UI.Theme != "light" {
		t.Errorf("cfg.UI.Theme = %q, want %q", m.cfg.UI.Theme, "light")
	}
	if cmd == nil {
		t.Fatal("theme cycle should produce a toast command")
	}

	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "light") {
		t.Errorf("saved config does not mention the new theme:\n%s", data)
	}
}

func TestClick_DocListOpensDocument(t *testing.T) {
	m := resize(t, newTestModel(t, map[string]string{
		"alpha.md": "# A\n",
		"beta.md":  "# B\n",
	}), 80, 24)

	sd := scanCmd(m.store)().(scanDoneMsg)
	m, _ = apply(t, m, sd)
	m.loading = false

	openPanel(m, swipe.StateLeftVisible)
	m.View()

	// Second list item: title bar, then three rows per entry.
	m, cmd := pressAt(t, m, 2, docListHeaderRows+docListRowsPerItem)
	if got := m.panels.docList.Index(); got != 1 {
		t.Errorf("selected index = %d, want 1", got)
	}
	if got := m.pane.State(); got != swipe.StateHidden {
		t.Errorf("state = %v after opening a document, want %v", got, swipe.StateHidden)
	}
	if !m.loading {
		t.Error("loading = false after clicking a document")
	}
	if cmd == nil {
		t.Error("clicking a document should schedule its load")
	}
}

func TestDetailsKeys_MoveFocusAndActivate(t *testing.T) {
	m := resize(t, newTestModel(t, nil), 80, 24)
	m.scanning = false
	m.panels.hasDoc = true
	m.panels.doc = content.Document{ID: "d1", RelPath: "x.md", Path: "/tmp/x.md"}
	m.pane.SetState(swipe.StateRightVisible)

	m, _ = apply(t, m, keyRunes("j"))
	m, _ = apply(t, m, keyRunes("j"))
	if m.panels.rightFocus != 2 {
		t.Fatalf("rightFocus = %d after j j, want 2", m.panels.rightFocus)
	}
	m, _ = apply(t, m, keyRunes("j"))
	if m.panels.rightFocus != 2 {
		t.Errorf("rightFocus = %d, focus should stop at the last button", m.panels.rightFocus)
	}
	m, _ = apply(t, m, keyRunes("k"))
	if m.panels.rightFocus != 1 {
		t.Errorf("rightFocus = %d after k, want 1", m.panels.rightFocus)
	}

	// Activating Copy Text produces a clipboard command.
	m.panels.rightFocus = 1
	m.panels.body = "hello"
	_, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("enter on a focused button should produce a command")
	}
}

func TestScroll_WheelTargetsRegionUnderCursor(t *testing.T) {
	m := resize(t, newTestModel(t, nil), 80, 24)
	m.scanning = false
	m.panels.hasDoc = true
	m.panels.viewport.SetContent(strings.Repeat("line\n", 100))
	m.View()

	m, _ = apply(t, m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.panels.viewport.YOffset; got != 3 {
		t.Errorf("YOffset = %d after wheel down over body, want 3", got)
	}
	m, _ = apply(t, m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := m.panels.viewport.YOffset; got != 0 {
		t.Errorf("YOffset = %d after wheel up, want 0", got)
	}
}
