package sway

import (
	"image/color"
	"math"
	"testing"
)

func TestColorMotionFades(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	m := Animate(BindValue("tint", &c), target, 1.0, nil)
	m.Start()

	m.Advance(0.5)
	if math.Abs(c.R-0.5) > 1e-9 || math.Abs(c.G-0.5) > 1e-9 {
		t.Errorf("halfway color = %+v", c)
	}
	if math.Abs(c.B-0.25) > 1e-9 || math.Abs(c.A-0.75) > 1e-9 {
		t.Errorf("halfway color = %+v", c)
	}

	m.Advance(0.5)
	if c != target {
		t.Errorf("final color = %+v, want exactly %+v", c, target)
	}
}

func TestRGBAInterpolatesInByteSpace(t *testing.T) {
	props, err := RGBAAdapter{}.Generate(PropertyRequest{
		Live:      color.RGBA{R: 0, G: 255, B: 100, A: 255},
		End:       color.RGBA{R: 255, G: 255, B: 200, A: 255},
		Weighting: 1,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(props) != 2 {
		t.Fatalf("expected 2 properties, got %d: %+v", len(props), props)
	}
	if props[0].Path != "r" || props[0].End != 255 {
		t.Errorf("property 0 = %+v, want r -> 255", props[0])
	}
	if props[1].Path != "b" || props[1].End != 200 {
		t.Errorf("property 1 = %+v, want b -> 200", props[1])
	}
}

func TestRGBAWriteClampsAndRounds(t *testing.T) {
	nv, err := RGBAAdapter{}.Write(color.RGBA{}, "r", 300)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := nv.(color.RGBA).R; got != 255 {
		t.Errorf("overshoot R = %d, want 255", got)
	}

	nv, err = RGBAAdapter{}.Write(color.RGBA{}, "g", 99.7)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := nv.(color.RGBA).G; got != 100 {
		t.Errorf("G = %d, want 100", got)
	}

	nv, err = RGBAAdapter{}.Write(color.RGBA{A: 10}, "a", -40)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := nv.(color.RGBA).A; got != 0 {
		t.Errorf("undershoot A = %d, want 0", got)
	}
}

func TestRGBAMotion(t *testing.T) {
	c := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	m := Animate(BindValue("tint", &c), color.RGBA{R: 200, G: 100, B: 0, A: 255}, 1.0, nil)
	m.Start()

	m.Advance(0.5)
	if c.R != 100 || c.G != 50 {
		t.Errorf("halfway color = %+v, want R 100, G 50", c)
	}

	m.Advance(0.5)
	if c != (color.RGBA{R: 200, G: 100, B: 0, A: 255}) {
		t.Errorf("final color = %+v", c)
	}
}
