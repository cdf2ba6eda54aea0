// Package gesture turns raw Bubble Tea mouse events into the actions the
// pane understands: clicks, scrolls, hovers, and three-phase horizontal
// pans (started, running, completed) with cumulative travel.
package gesture

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a rectangular screen region.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit region with optional payload.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap tracks the clickable regions of the current frame. Views rebuild
// it on every render; later additions win hit tests.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{regions: make([]Region, 0, 32)}
}

// Clear removes all regions.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Add registers a region.
func (h *HitMap) Add(id string, rect Rect, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: rect, Data: data})
}

// AddRect registers a region from raw coordinates.
func (h *HitMap) AddRect(id string, x, y, w, height int, data any) {
	h.Add(id, Rect{X: x, Y: y, W: w, H: height}, data)
}

// Test returns the topmost region containing the point, or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// ActionType classifies a processed mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionScrollUp
	ActionScrollDown
	ActionHover
	ActionPanStarted
	ActionPanRunning
	ActionPanCompleted
)

// Action is a processed mouse event. Pan actions carry the cumulative
// horizontal travel since recognition started.
type Action struct {
	Type        ActionType
	Region      *Region
	X, Y        int
	Delta       int // scroll rows
	CumulativeX int // pan travel in cells
}

// Config controls pan recognition. The direction booleans mirror panel
// template presence: a direction without a panel never arms.
type Config struct {
	// AllowLeft permits leftward pans (negative travel).
	AllowLeft bool
	// AllowRight permits rightward pans (positive travel).
	AllowRight bool
	// Threshold is the horizontal travel, in cells, a press must cover
	// before a pan is recognized.
	Threshold int
	// PanRegion is the hit-region ID where presses arm a pan candidate.
	PanRegion string
}

// DefaultThreshold is the arming distance used when Config.Threshold is
// left zero.
const DefaultThreshold = 3

// Handler owns the frame's hit map and a small recognizer state machine.
// A press inside the pan region becomes a candidate; once its horizontal
// travel passes the threshold in a permitted direction (and dominates any
// vertical travel) the candidate is promoted to a recognized pan, which
// then reports cumulative travel until release.
type Handler struct {
	HitMap *HitMap

	cfg Config

	pressed     bool
	pressX      int
	pressY      int
	pressRegion string

	// consumed marks a press swallowed by a rejected pan candidate;
	// everything up to the release stays silent.
	consumed bool

	recognized bool
	baseX      int
}

// NewHandler returns a handler with an empty hit map.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		HitMap: NewHitMap(),
		cfg:    cfg,
	}
}

// SetConfig replaces the recognizer configuration. Direction permissions
// change whenever a panel template is set or cleared, so this is called
// per update, not just at construction.
func (h *Handler) SetConfig(cfg Config) {
	h.cfg = cfg
}

// Config returns the active configuration.
func (h *Handler) Config() Config {
	return h.cfg
}

// Recognizing reports whether a pan is currently recognized.
func (h *Handler) Recognizing() bool {
	return h.recognized
}

// Clear resets the hit map. Recognizer state survives: regions are
// rebuilt every frame, mid-pan.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// threshold returns the configured arming distance, defaulted.
func (h *Handler) threshold() int {
	if h.cfg.Threshold > 0 {
		return h.cfg.Threshold
	}
	return DefaultThreshold
}

// HandleMouse processes one mouse event and returns the resulting action.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return h.handlePress(msg.X, msg.Y)
		case tea.MouseButtonWheelUp:
			return Action{
				Type:   ActionScrollUp,
				Region: h.HitMap.Test(msg.X, msg.Y),
				X:      msg.X,
				Y:      msg.Y,
				Delta:  -3,
			}
		case tea.MouseButtonWheelDown:
			return Action{
				Type:   ActionScrollDown,
				Region: h.HitMap.Test(msg.X, msg.Y),
				X:      msg.X,
				Y:      msg.Y,
				Delta:  3,
			}
		}

	case tea.MouseActionMotion:
		return h.handleMotion(msg.X, msg.Y)

	case tea.MouseActionRelease:
		return h.handleRelease(msg.X, msg.Y)
	}

	return Action{Type: ActionNone}
}

func (h *Handler) handlePress(x, y int) Action {
	region := h.HitMap.Test(x, y)

	h.pressed = true
	h.pressX = x
	h.pressY = y
	h.recognized = false
	h.consumed = false
	h.pressRegion = ""
	if region != nil {
		h.pressRegion = region.ID
	}

	// Presses in the pan region stay silent: they are pan candidates
	// first and resolve to nothing if no drag follows.
	if region != nil && region.ID == h.cfg.PanRegion {
		return Action{Type: ActionNone}
	}
	if region == nil {
		return Action{Type: ActionNone}
	}
	return Action{Type: ActionClick, Region: region, X: x, Y: y}
}

func (h *Handler) handleMotion(x, y int) Action {
	if !h.pressed {
		return Action{
			Type:   ActionHover,
			Region: h.HitMap.Test(x, y),
			X:      x,
			Y:      y,
		}
	}

	if h.recognized {
		return Action{
			Type:        ActionPanRunning,
			X:           x,
			Y:           y,
			CumulativeX: x - h.baseX,
		}
	}

	if h.consumed || h.pressRegion != h.cfg.PanRegion {
		return Action{Type: ActionNone}
	}

	dx := x - h.pressX
	dy := y - h.pressY

	// A clearly vertical drag kills the candidate so later horizontal
	// wobble cannot arm it.
	if abs(dy) >= h.threshold() && abs(dy) > abs(dx) {
		h.consumed = true
		return Action{Type: ActionNone}
	}

	if abs(dx) < h.threshold() || abs(dx) <= abs(dy) {
		return Action{Type: ActionNone}
	}

	// Direction gate: the dominant direction must have a panel behind
	// it. Disallowed directions consume the press entirely.
	if dx < 0 && !h.cfg.AllowLeft {
		h.consumed = true
		return Action{Type: ActionNone}
	}
	if dx > 0 && !h.cfg.AllowRight {
		h.consumed = true
		return Action{Type: ActionNone}
	}

	// Recognized: travel re-bases here so the pan starts at zero.
	h.recognized = true
	h.baseX = x
	return Action{Type: ActionPanStarted, X: x, Y: y, CumulativeX: 0}
}

func (h *Handler) handleRelease(x, y int) Action {
	if h.recognized {
		h.recognized = false
		h.pressed = false
		return Action{
			Type:        ActionPanCompleted,
			X:           x,
			Y:           y,
			CumulativeX: x - h.baseX,
		}
	}
	h.pressed = false
	h.consumed = false
	return Action{Type: ActionNone}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
