package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollis/peel/internal/config"
	"github.com/hollis/peel/internal/content"
	"github.com/hollis/peel/internal/gesture"
	"github.com/hollis/peel/internal/markdown"
	"github.com/hollis/peel/internal/swipe"
	"github.com/hollis/peel/internal/ui"
)

// Mouse hit regions registered during View and dispatched in Update.
const (
	regionBody     = "body"
	regionDocList  = "doc-list"
	regionDetails  = "panel-details"
	regionCopyPath = "btn-copy-path"
	regionCopyText = "btn-copy-text"
	regionReload   = "btn-reload"
)

// Model is the root Bubble Tea model for the peel application.
type Model struct {
	// Configuration
	cfg *config.Config

	// Content pipeline
	store    *content.Store
	watcher  *content.Watcher
	renderer *markdown.Renderer

	// Pane core: the offset/state controller and the pan recognizer
	// that feeds it
	pane     *swipe.Controller
	gestures *gesture.Handler

	// Shared render state. Held by pointer so the materialized panel
	// surfaces observe updates even though Model is copied by value.
	panels *panelState

	// Key bindings and help
	keys keyMap
	help help.Model

	// Scan and load state
	scanning bool
	loading  bool
	skeleton ui.Skeleton
	spinner  ui.BrailleSpinner

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// UI state
	width, height int
	ready         bool
}

// New creates the application model. Panel templates are registered up
// front; the surfaces themselves are not materialized until a gesture or
// key first reveals them.
func New(cfg *config.Config, store *content.Store) Model {
	shared := newPanelState(store.Root())

	pane := swipe.New()
	pane.SetContent(&bodySurface{state: shared})
	pane.Left().SetWidth(cfg.Panels.LeftWidth)
	pane.Right().SetWidth(cfg.Panels.RightWidth)
	if cfg.Panels.LeftEnabled {
		pane.SetLeftTemplate(swipe.NewFactory(func() swipe.Surface {
			return &leftSurface{state: shared}
		}))
	}
	if cfg.Panels.RightEnabled {
		pane.SetRightTemplate(swipe.NewFactory(func() swipe.Surface {
			return &rightSurface{state: shared}
		}))
	}

	return Model{
		cfg:      cfg,
		store:    store,
		renderer: markdown.NewRenderer(),
		pane:     pane,
		gestures: gesture.NewHandler(gesture.Config{
			Threshold: cfg.Gesture.Threshold,
			PanRegion: regionBody,
		}),
		panels:   shared,
		keys:     keys,
		help:     help.New(),
		scanning: true,
		skeleton: ui.NewSkeleton(12, nil),
		spinner:  ui.NewBrailleSpinner(),
	}
}

// Init kicks off the initial scan, the file watcher, and the periodic
// housekeeping tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		ui.SkeletonTick(),
		scanCmd(m.store),
		startWatcherCmd(m.store.Root()),
	)
}

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration, isError bool) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(duration)
	m.statusIsError = isError
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// bodyHeight returns the rows available to the pane above the help block
// and status bar.
func (m Model) bodyHeight() int {
	h := m.height
	if m.cfg.UI.ShowStatusBar {
		h--
	}
	if m.help.ShowAll {
		h -= lipgloss.Height(m.help.View(m.keys))
	}
	return max(h, 0)
}

// animating reports whether the frame loop should stay armed.
func (m Model) animating() bool {
	return m.pane.Settling() || m.loading
}
