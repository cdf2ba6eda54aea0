package swipe

import (
	"time"
)

const (
	// SettleDuration is how long the body takes to glide to its snap
	// target after a gesture ends.
	SettleDuration = 200 * time.Millisecond

	// TickInterval is the frame interval hosts should use to redraw
	// while a settle is in flight (~60fps).
	TickInterval = 16 * time.Millisecond
)

// Transition interpolates the body offset toward a target with a fixed
// duration and a decelerating curve. It is passive: callers sample
// Value(now) each frame, there is no internal timer.
type Transition struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	running  bool
}

// NewTransition returns a transition with the standard settle duration.
func NewTransition() *Transition {
	return &Transition{duration: SettleDuration}
}

// Start begins interpolating from one offset to another. A zero-length
// hop completes immediately.
func (t *Transition) Start(from, to float64, now time.Time) {
	t.from = from
	t.to = to
	t.start = now
	t.running = from != to
}

// Stop cancels any in-flight interpolation.
func (t *Transition) Stop() {
	t.running = false
}

// Active reports whether the interpolation is still running at now.
func (t *Transition) Active(now time.Time) bool {
	return t.running && now.Sub(t.start) < t.duration
}

// Target returns the offset the transition is heading for.
func (t *Transition) Target() float64 {
	return t.to
}

// Value returns the eased offset at now. After the duration elapses it
// always returns the target.
func (t *Transition) Value(now time.Time) float64 {
	if !t.Active(now) {
		return t.to
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	return t.from + (t.to-t.from)*easeOutCubic(p)
}

// easeOutCubic decelerates: fast start, gentle arrival.
func easeOutCubic(p float64) float64 {
	u := 1 - p
	return 1 - u*u*u
}
