package swipe

// Surface is a materialized view: anything that can render itself into a
// block of terminal cells. The pane core treats surfaces as opaque.
type Surface interface {
	View(width, height int) string
}

// Factory builds a Surface on demand. Implementations must be comparable
// (pointer receivers are the norm): the panel slot re-materializes only
// when the factory identity changes.
type Factory interface {
	Materialize() Surface
}

type funcFactory struct {
	fn func() Surface
}

// NewFactory wraps a plain function as a Factory. The returned value is a
// pointer so two wrappers of the same function are still distinct
// identities.
func NewFactory(fn func() Surface) Factory {
	return &funcFactory{fn: fn}
}

func (f *funcFactory) Materialize() Surface {
	return f.fn()
}

// Panel is one side slot of the pane: an optional template, the surface
// built from it, a measured width, and a visibility flag that tracks the
// sign of the body offset.
type Panel struct {
	template Factory
	built    Factory
	surface  Surface
	width    int
	visible  bool
}

// SetTemplate replaces the panel's template. The existing surface is kept
// until the next materialization notices the identity change; a currently
// shown panel is never hidden retroactively.
func (p *Panel) SetTemplate(tpl Factory) {
	p.template = tpl
}

// Template returns the current template, or nil.
func (p *Panel) Template() Factory {
	return p.template
}

// Materialize returns the panel's surface, building it at most once per
// template identity. With no template this is a no-op: the previously
// built surface (or nothing) keeps showing.
func (p *Panel) Materialize() Surface {
	if p.template == nil {
		return p.surface
	}
	if p.surface == nil || p.built != p.template {
		p.surface = p.template.Materialize()
		p.built = p.template
	}
	return p.surface
}

// Surface returns the materialized surface without triggering a build.
func (p *Panel) Surface() Surface {
	return p.surface
}

// SetWidth records the panel's laid-out width in cells. The pane core
// reads this for thresholds and snap targets but never computes it.
func (p *Panel) SetWidth(w int) {
	if w < 0 {
		w = 0
	}
	p.width = w
}

// Width returns the measured width in cells.
func (p *Panel) Width() int {
	return p.width
}

// Visible reports whether the panel is exposed by the settled offset.
func (p *Panel) Visible() bool {
	return p.visible
}
