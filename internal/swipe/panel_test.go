package swipe

import "testing"

func TestPanel_MaterializeOnce(t *testing.T) {
	builds := 0
	var p Panel
	p.SetTemplate(NewFactory(func() Surface {
		builds++
		return &stubSurface{name: "panel"}
	}))

	first := p.Materialize()
	second := p.Materialize()

	if builds != 1 {
		t.Errorf("builds = %d, want 1", builds)
	}
	if first == nil || first != second {
		t.Errorf("materialize returned different surfaces across calls")
	}
}

func TestPanel_RematerializeOnTemplateChange(t *testing.T) {
	var p Panel
	p.SetTemplate(NewFactory(func() Surface { return &stubSurface{name: "a"} }))
	a := p.Materialize()

	p.SetTemplate(NewFactory(func() Surface { return &stubSurface{name: "b"} }))
	// The old surface survives until materialization actually runs.
	if p.Surface() != a {
		t.Errorf("surface replaced before materialization")
	}

	b := p.Materialize()
	if b == a {
		t.Errorf("template changed but materialize returned the old surface")
	}
	if got := b.View(0, 0); got != "b" {
		t.Errorf("surface view = %q, want %q", got, "b")
	}
}

func TestPanel_NilTemplateIsNoop(t *testing.T) {
	var p Panel
	if got := p.Materialize(); got != nil {
		t.Errorf("materialize with no template = %v, want nil", got)
	}

	// Clearing the template keeps the built surface in place.
	p.SetTemplate(NewFactory(func() Surface { return &stubSurface{name: "x"} }))
	built := p.Materialize()
	p.SetTemplate(nil)
	if got := p.Materialize(); got != built {
		t.Errorf("materialize after clearing template = %v, want the built surface", got)
	}
}

func TestPanel_SetWidthClampsNegative(t *testing.T) {
	var p Panel
	p.SetWidth(-4)
	if p.Width() != 0 {
		t.Errorf("width = %d, want 0", p.Width())
	}
	p.SetWidth(34)
	if p.Width() != 34 {
		t.Errorf("width = %d, want 34", p.Width())
	}
}

func TestNewFactory_DistinctIdentities(t *testing.T) {
	fn := func() Surface { return &stubSurface{name: "same fn"} }
	a := NewFactory(fn)
	b := NewFactory(fn)
	if a == b {
		t.Errorf("two wrappers of the same function compare equal; identities must be distinct")
	}
}
