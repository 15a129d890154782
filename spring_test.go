package sway

import (
	"math"
	"testing"
)

func TestSpringMotionConvergesAndSnaps(t *testing.T) {
	x := 0.0
	m := NewSpringMotion(BindValue("x", &x), SpringConfig{To: 100.0})
	m.Start()

	frames := 0
	for m.State() == StateMoving && frames < 1200 {
		m.Advance(1.0 / 60)
		frames++
		// Critical damping from rest never overshoots.
		if x > 100+1e-9 {
			t.Fatalf("x = %f overshot at frame %d with critical damping", x, frames)
		}
	}

	if m.State() != StateCompleted {
		t.Fatalf("state = %v after %d frames, want completed", m.State(), frames)
	}
	if x != 100 {
		t.Errorf("x = %f, want snapped exactly to 100", x)
	}
}

func TestSpringMotionUnderdampedOvershoots(t *testing.T) {
	x := 0.0
	m := NewSpringMotion(BindValue("x", &x), SpringConfig{To: 100.0, Damping: 0.3})
	m.Start()

	peak := 0.0
	frames := 0
	for m.State() == StateMoving && frames < 2400 {
		m.Advance(1.0 / 60)
		frames++
		if x > peak {
			peak = x
		}
	}

	if peak <= 100 {
		t.Errorf("peak = %f; light damping should overshoot the target", peak)
	}
	if m.State() != StateCompleted || x != 100 {
		t.Errorf("state = %v, x = %f; want completed, exactly 100", m.State(), x)
	}
}

func TestSpringMotionInitialVelocityFlings(t *testing.T) {
	x := 0.0
	m := NewSpringMotion(BindValue("x", &x), SpringConfig{To: 100.0, Velocity: -600})
	m.Start()

	low := 0.0
	frames := 0
	for m.State() == StateMoving && frames < 2400 {
		m.Advance(1.0 / 60)
		frames++
		if x < low {
			low = x
		}
	}

	if low >= 0 {
		t.Errorf("low = %f; the fling should carry the value away from the target first", low)
	}
	if x != 100 {
		t.Errorf("x = %f, want settled exactly at 100", x)
	}
}

func TestSpringMotionRetargetMidFlight(t *testing.T) {
	x := 0.0
	m := NewSpringMotion(BindValue("x", &x), SpringConfig{To: 100.0})
	m.Start()

	for i := 0; i < 20; i++ {
		m.Advance(1.0 / 60)
	}
	if x <= 0 || x >= 100 {
		t.Fatalf("x = %f, want mid-flight", x)
	}

	if err := m.Retarget(40.0); err != nil {
		t.Fatalf("Retarget: %v", err)
	}

	frames := 0
	for m.State() == StateMoving && frames < 2400 {
		m.Advance(1.0 / 60)
		frames++
	}
	if x != 40 {
		t.Errorf("x = %f, want settled exactly at new target 40", x)
	}
}

func TestSpringMotionRetargetShapeMismatch(t *testing.T) {
	x := 0.0
	m := NewSpringMotion(BindValue("x", &x), SpringConfig{To: 100.0})
	m.Start()

	if err := m.Retarget(Vec2{X: 1, Y: 2}); err == nil {
		t.Error("expected error retargeting a scalar with a vector")
	}
}

func TestSpringMotionFixedSubstepGranularity(t *testing.T) {
	x := 0.0
	m := NewSpringMotion(BindValue("x", &x), SpringConfig{To: 100.0})
	m.Start()

	// Four 4ms ticks accumulate 16ms, still short of one 60Hz substep,
	// so nothing is written yet.
	for i := 0; i < 4; i++ {
		m.Advance(0.004)
	}
	if x != 0 {
		t.Fatalf("x = %f, want 0 before the first full substep", x)
	}

	m.Advance(0.004)
	if x == 0 {
		t.Error("x did not move once a full substep accumulated")
	}
}

func TestSpringMotionCompositeSettles(t *testing.T) {
	pos := Vec2{}
	m := NewSpringMotion(BindValue("pos", &pos), SpringConfig{To: Vec2{X: 100, Y: 50}})
	m.Start()

	frames := 0
	for m.State() == StateMoving && frames < 1200 {
		m.Advance(1.0 / 60)
		frames++
	}

	if pos.X != 100 || pos.Y != 50 {
		t.Errorf("pos = %+v, want exactly {100 50}", pos)
	}
}

func TestNewSpringMotionRequiresTo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for config without To")
		}
	}()
	x := 0.0
	NewSpringMotion(BindValue("x", &x), SpringConfig{})
}
