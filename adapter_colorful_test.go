package sway

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestColorfulMotionRGB(t *testing.T) {
	c := colorful.Color{R: 1, G: 0, B: 0}
	target := colorful.Color{R: 0, G: 0, B: 1}

	m := Animate(BindValue("tint", &c), target, 1.0, nil)
	m.Start()

	m.Advance(0.5)
	if math.Abs(c.R-0.5) > 1e-9 || math.Abs(c.B-0.5) > 1e-9 {
		t.Errorf("halfway color = %+v", c)
	}

	m.Advance(0.5)
	if c != target {
		t.Errorf("final color = %+v, want exactly %+v", c, target)
	}
}

func TestHCLAdapterTakesOverDispatch(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterFirst(HCLAdapter{})

	if _, ok := reg.AdapterFor(colorful.Color{}).(HCLAdapter); !ok {
		t.Fatalf("expected HCLAdapter, got %T", reg.AdapterFor(colorful.Color{}))
	}
}

func TestHCLMotionHoldsLightness(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterFirst(HCLAdapter{})

	// Two hues at the same chroma and lightness: an HCL fade only moves
	// the hue, so lightness stays put at every step.
	start := colorful.Hcl(40, 0.5, 0.6)
	end := colorful.Hcl(140, 0.5, 0.6)
	c := start

	m := NewMotion(BindValue("tint", &c), MotionConfig{
		To:       end,
		Duration: 1.0,
		Registry: reg,
	})
	m.Start()

	for i := 0; i < 9; i++ {
		m.Advance(0.1)
		_, _, l := c.Hcl()
		if math.Abs(l-0.6) > 1e-6 {
			t.Fatalf("lightness drifted to %f at step %d", l, i)
		}
	}

	m.Advance(0.1)
	h, ch, l := c.Hcl()
	if math.Abs(h-140) > 1e-6 || math.Abs(ch-0.5) > 1e-6 || math.Abs(l-0.6) > 1e-6 {
		t.Errorf("final HCL = (%f, %f, %f), want (140, 0.5, 0.6)", h, ch, l)
	}
}

func TestHCLWriteDoesNotClamp(t *testing.T) {
	// An out-of-gamut intermediate must round-trip, not collapse: clamping
	// one component's write would corrupt the next component written in
	// the same tick.
	c := colorful.Hcl(200, 0.9, 0.5)
	nv, err := HCLAdapter{}.Write(c, "c", 1.4)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	_, ch, _ := nv.(colorful.Color).Hcl()
	if math.Abs(ch-1.4) > 1e-6 {
		t.Errorf("chroma = %f, want 1.4 preserved", ch)
	}
}
