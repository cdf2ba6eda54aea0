// Package swipe implements a draggable reveal pane: a body surface that
// pans horizontally to expose a left or right panel behind it, settling
// into one of three discrete states once the drag ends.
package swipe

import (
	"math"
	"time"
)

// State is the settled position of the pane. It is distinct from the live
// offset: during a drag the offset roams freely while State keeps the last
// settled value.
type State int

const (
	// StateHidden shows only the body.
	StateHidden State = iota
	// StateLeftVisible parks the body to the right of the left panel.
	StateLeftVisible
	// StateRightVisible parks the body to the left of the right panel.
	StateRightVisible
)

func (s State) String() string {
	switch s {
	case StateLeftVisible:
		return "left"
	case StateRightVisible:
		return "right"
	default:
		return "hidden"
	}
}

// PanPhase is one step of a drag gesture as reported by the gesture
// recognizer.
type PanPhase int

const (
	// PanStarted opens a gesture session.
	PanStarted PanPhase = iota
	// PanRunning carries the cumulative horizontal delta since the start.
	PanRunning
	// PanCompleted closes the session and commits a settled state.
	PanCompleted
)

// Controller owns the pane's offset, its settled state, and the decision
// logic mapping one to the other. All methods must be called from a
// single goroutine (the Tea update loop).
type Controller struct {
	state  State
	offset float64

	left  Panel
	right Panel

	content Surface

	dragging    bool
	dragInitial float64

	attached   bool
	transition *Transition

	now func() time.Time
}

// New returns a hidden controller with the settle transition attached.
func New() *Controller {
	return &Controller{
		attached:   true,
		transition: NewTransition(),
		now:        time.Now,
	}
}

// State returns the settled state.
func (c *Controller) State() State {
	return c.state
}

// Offset returns the body's current horizontal translation in cells.
// Negative exposes the right panel, positive the left, zero neither.
func (c *Controller) Offset() float64 {
	return c.offset
}

// SetContent replaces the body surface. Offset and state are untouched.
func (c *Controller) SetContent(s Surface) {
	c.content = s
}

// Content returns the body surface.
func (c *Controller) Content() Surface {
	return c.content
}

// SetLeftTemplate installs (or clears, with nil) the left panel template.
// Presence of this template is what permits rightward drags.
func (c *Controller) SetLeftTemplate(tpl Factory) {
	c.left.SetTemplate(tpl)
}

// SetRightTemplate installs (or clears, with nil) the right panel
// template. Presence of this template is what permits leftward drags.
func (c *Controller) SetRightTemplate(tpl Factory) {
	c.right.SetTemplate(tpl)
}

// Left returns the left panel slot. Layout code sets its width here.
func (c *Controller) Left() *Panel {
	return &c.left
}

// Right returns the right panel slot.
func (c *Controller) Right() *Panel {
	return &c.right
}

// CanDragLeft reports whether leftward drags are permitted: true exactly
// when a right template is present. Gesture recognizers consult this
// before arming; the controller itself never rejects a direction.
func (c *Controller) CanDragLeft() bool {
	return c.right.template != nil
}

// CanDragRight reports whether rightward drags are permitted: true
// exactly when a left template is present.
func (c *Controller) CanDragRight() bool {
	return c.left.template != nil
}

// SetState forces a settled state. It runs the same reconciliation as a
// completed gesture deciding that state: materialize the relevant panel
// and snap the offset to its measured width.
func (c *Controller) SetState(s State) {
	c.state = s
	c.applyState(s)
}

// Pan feeds one gesture phase into the controller. cumulativeX is the
// total horizontal delta since the gesture started.
func (c *Controller) Pan(phase PanPhase, cumulativeX float64) {
	switch phase {
	case PanStarted:
		c.dragging = true
		c.dragInitial = c.offset
		// Live dragging must track the pointer exactly, so the settle
		// transition comes off for the duration of the gesture.
		c.attached = false
		c.transition.Stop()
		// Materialize both sides up front: building a panel mid-drag
		// would stall the first frame it becomes visible.
		c.left.Materialize()
		c.right.Materialize()

	case PanRunning:
		c.setOffset(c.initialOffset() + cumulativeX)

	case PanCompleted:
		c.attached = true
		final := c.initialOffset() + cumulativeX
		decided := decide(final, float64(c.left.width), float64(c.right.width))
		c.dragging = false
		// One transition function for both the changed and unchanged
		// case: an overdragged body has to snap back to the panel edge
		// even when the settled state keeps its old value.
		c.state = decided
		c.applyState(decided)
	}
}

// initialOffset is the offset captured at gesture start. A Completed or
// Running event with no open session falls back to the last known offset.
func (c *Controller) initialOffset() float64 {
	if c.dragging {
		return c.dragInitial
	}
	return c.offset
}

// decide maps a final gesture offset to a settled state. It is a pure
// function of the offset and the two panel widths: a side commits only
// once the drag has travelled that side's full width.
func decide(offset, leftWidth, rightWidth float64) State {
	step := leftWidth
	if offset < 0 {
		step = rightWidth
	}
	if step > math.Abs(offset) {
		return StateHidden
	}
	switch {
	case offset < 0:
		return StateRightVisible
	case offset > 0:
		return StateLeftVisible
	default:
		return StateHidden
	}
}

// applyState is the single state-transition path: the public setter and
// gesture completion both land here, whether or not the state value
// actually changed.
func (c *Controller) applyState(s State) {
	switch s {
	case StateRightVisible:
		c.right.visible = true
		c.right.Materialize()
		c.setOffset(-float64(c.right.width))
	case StateLeftVisible:
		c.left.visible = true
		c.left.Materialize()
		c.setOffset(float64(c.left.width))
	default:
		c.setOffset(0)
	}
}

// setOffset is the only write path for the offset. Panel visibility is
// recomputed from the sign, and the body transform is routed through the
// settle transition when one is attached, or applied cold mid-drag.
func (c *Controller) setOffset(v float64) {
	now := c.now()
	from := c.RenderOffset(now)
	c.offset = v
	c.left.visible = v > 0
	c.right.visible = v < 0
	if c.attached {
		c.transition.Start(from, v, now)
	} else {
		c.transition.Stop()
	}
}

// RenderOffset is the offset the view should draw at now: the eased
// in-between value while a settle is in flight, the authoritative offset
// otherwise.
func (c *Controller) RenderOffset(now time.Time) float64 {
	if c.attached && c.transition.Active(now) {
		return c.transition.Value(now)
	}
	return c.offset
}

// Settling reports whether a settle animation is still in flight; hosts
// keep scheduling redraw ticks while it is.
func (c *Controller) Settling() bool {
	return c.attached && c.transition.Active(c.now())
}

// Dragging reports whether a gesture session is open.
func (c *Controller) Dragging() bool {
	return c.dragging
}
