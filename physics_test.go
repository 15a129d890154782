package sway

import (
	"math"
	"testing"
)

func TestPhysicsSolverIntegratesWithoutFriction(t *testing.T) {
	s := NewPhysicsSolver(PhysicsConfig{Velocity: 10})
	for i := 0; i < 10; i++ {
		s.Step(0.1)
	}
	if math.Abs(s.Position()-10) > 1e-9 {
		t.Errorf("position = %f, want 10", s.Position())
	}
	if s.Velocity() != 10 {
		t.Errorf("velocity = %f, want unchanged 10", s.Velocity())
	}
}

func TestPhysicsSolverFrictionIsFrameRateIndependent(t *testing.T) {
	coarse := NewPhysicsSolver(PhysicsConfig{Velocity: 100, Friction: 0.05})
	fine := NewPhysicsSolver(PhysicsConfig{Velocity: 100, Friction: 0.05})

	for i := 0; i < 60; i++ {
		coarse.Step(1.0 / 60)
	}
	for i := 0; i < 240; i++ {
		fine.Step(1.0 / 240)
	}

	// Velocity decay is (1-friction)^(dt*60), so after one simulated
	// second both end at 100*(0.95)^60 no matter how the second was
	// sliced.
	want := 100 * math.Pow(0.95, 60)
	if math.Abs(coarse.Velocity()-want) > 1e-9 {
		t.Errorf("coarse velocity = %f, want %f", coarse.Velocity(), want)
	}
	if math.Abs(fine.Velocity()-want) > 1e-9 {
		t.Errorf("fine velocity = %f, want %f", fine.Velocity(), want)
	}

	// Positions are numerical integrals and may differ slightly between
	// step sizes, but not by much.
	if math.Abs(coarse.Position()-fine.Position()) > coarse.Position()*0.02 {
		t.Errorf("positions diverged: %f vs %f", coarse.Position(), fine.Position())
	}
}

func TestPhysicsSolverReflectsAtBoundary(t *testing.T) {
	s := NewPhysicsSolver(PhysicsConfig{
		Velocity:              60,
		Restitution:           0.5,
		UseCollisionDetection: true,
		Minimum:               0,
		Maximum:               100,
	})
	s.Reset(90)

	// One step overshoots by 20; half the overshoot and half the speed
	// survive the bounce.
	s.Step(0.5)
	if math.Abs(s.Position()-90) > 1e-9 {
		t.Errorf("position = %f, want 90", s.Position())
	}
	if math.Abs(s.Velocity()-(-30)) > 1e-9 {
		t.Errorf("velocity = %f, want -30", s.Velocity())
	}
}

func TestPhysicsSolverDeadStopAtBoundary(t *testing.T) {
	s := NewPhysicsSolver(PhysicsConfig{
		Velocity:              60,
		Restitution:           0,
		UseCollisionDetection: true,
		Minimum:               0,
		Maximum:               100,
	})
	s.Reset(90)

	s.Step(0.5)
	if s.Position() != 100 {
		t.Errorf("position = %f, want parked exactly at 100", s.Position())
	}
	if s.Velocity() != 0 || !s.Resting() {
		t.Errorf("velocity = %f, resting = %v; want dead stop", s.Velocity(), s.Resting())
	}
}

func TestPhysicsSolverSwappedBoundsNormalized(t *testing.T) {
	s := NewPhysicsSolver(PhysicsConfig{
		Velocity:              -60,
		Restitution:           0,
		UseCollisionDetection: true,
		Minimum:               100,
		Maximum:               0,
	})
	s.Reset(10)

	s.Step(0.5)
	if s.Position() != 0 {
		t.Errorf("position = %f, want clamped at 0 despite swapped bounds", s.Position())
	}
}

func TestPhysicsSolverDegenerateRangeSettles(t *testing.T) {
	s := NewPhysicsSolver(PhysicsConfig{
		Velocity:              1000,
		Restitution:           1,
		UseCollisionDetection: true,
		Minimum:               50,
		Maximum:               50,
	})
	s.Reset(50)

	// A zero-width range with a lossless bounce would ping-pong forever;
	// the solver gives up and parks at the edge.
	s.Step(0.1)
	if s.Position() != 50 || s.Velocity() != 0 {
		t.Errorf("position = %f, velocity = %f; want 50, 0", s.Position(), s.Velocity())
	}
}

func TestPhysicsSolverRestThreshold(t *testing.T) {
	s := NewPhysicsSolver(PhysicsConfig{Velocity: 6, RestVelocity: 5})
	if s.Resting() {
		t.Error("resting at velocity 6 with threshold 5")
	}
	s.SetVelocity(-4)
	if !s.Resting() {
		t.Error("not resting at velocity -4 with threshold 5")
	}

	// Zero threshold falls back to the default.
	d := NewPhysicsSolver(PhysicsConfig{Velocity: 0.5})
	if !d.Resting() {
		t.Error("not resting at velocity 0.5 with default threshold 1")
	}
}

func TestPhysicsSolverResetRestoresInitialVelocity(t *testing.T) {
	s := NewPhysicsSolver(PhysicsConfig{Velocity: 50, Friction: 0.1})
	s.Step(0.5)
	s.SetVelocity(7)

	s.Reset(3)
	if s.Position() != 3 || s.Velocity() != 50 {
		t.Errorf("position = %f, velocity = %f; want 3, 50", s.Position(), s.Velocity())
	}
}

func TestPhysicsMotionDeceleratesToRest(t *testing.T) {
	x := 0.0
	m := NewPhysicsMotion(BindValue("x", &x), PhysicsMotionConfig{
		Paths:   []string{""},
		Physics: PhysicsConfig{Velocity: 120, Friction: 0.05},
	})
	m.Start()

	frames := 0
	for m.State() == StateMoving && frames < 10000 {
		m.Advance(1.0 / 60)
		frames++
	}

	if m.State() != StateCompleted {
		t.Fatalf("state = %v after %d frames, want completed", m.State(), frames)
	}
	// Friction 0.05 halves the speed roughly every 13 frames; the total
	// travel for 120 u/s works out near 38 units.
	if x < 30 || x > 45 {
		t.Errorf("x = %f, want in (30, 45)", x)
	}
	if frames > 180 {
		t.Errorf("took %d frames to rest, want under 3 simulated seconds", frames)
	}
}

func TestPhysicsMotionStaysWithinBounds(t *testing.T) {
	x := 50.0
	m := NewPhysicsMotion(BindValue("x", &x), PhysicsMotionConfig{
		Paths: []string{""},
		Physics: PhysicsConfig{
			Velocity:              300,
			Friction:              0.01,
			Restitution:           0.8,
			UseCollisionDetection: true,
			Minimum:               0,
			Maximum:               100,
		},
	})
	m.Start()

	for i := 0; i < 3000 && m.State() == StateMoving; i++ {
		m.Advance(1.0 / 60)
		if x < -1e-9 || x > 100+1e-9 {
			t.Fatalf("x = %f escaped [0, 100] at frame %d", x, i)
		}
	}
	if m.State() != StateCompleted {
		t.Errorf("state = %v, want completed", m.State())
	}
}

func TestPhysicsMotionToFormParksAtTarget(t *testing.T) {
	x := 0.0
	m := NewPhysicsMotion(BindValue("x", &x), PhysicsMotionConfig{
		To:      100.0,
		Physics: PhysicsConfig{Velocity: 200},
	})
	m.Start()

	for i := 0; i < 120 && m.State() == StateMoving; i++ {
		m.Advance(1.0 / 60)
	}

	// The destination doubles as a collision boundary; with zero
	// restitution the value parks exactly there.
	if x != 100 {
		t.Errorf("x = %f, want parked exactly at 100", x)
	}
	if m.State() != StateCompleted {
		t.Errorf("state = %v, want completed", m.State())
	}
}

func TestPhysicsMotionToFormBelowStart(t *testing.T) {
	x := 100.0
	m := NewPhysicsMotion(BindValue("x", &x), PhysicsMotionConfig{
		To:      20.0,
		Physics: PhysicsConfig{Velocity: -200},
	})
	m.Start()

	for i := 0; i < 120 && m.State() == StateMoving; i++ {
		m.Advance(1.0 / 60)
	}
	if x != 20 {
		t.Errorf("x = %f, want parked exactly at 20", x)
	}
}

func TestPhysicsMotionSolverAccessor(t *testing.T) {
	x := 0.0
	m := NewPhysicsMotion(BindValue("x", &x), PhysicsMotionConfig{
		Paths:   []string{""},
		Physics: PhysicsConfig{Velocity: 42},
	})

	if m.Solver("") != nil {
		t.Error("solver exists before Start")
	}
	m.Start()
	s := m.Solver("")
	if s == nil {
		t.Fatal("no solver after Start")
	}
	if s.Velocity() != 42 {
		t.Errorf("solver velocity = %f, want 42", s.Velocity())
	}
	if m.Solver("nope") != nil {
		t.Error("unknown path returned a solver")
	}
}

func TestPhysicsMotionPauseFreezes(t *testing.T) {
	x := 0.0
	m := NewPhysicsMotion(BindValue("x", &x), PhysicsMotionConfig{
		Paths:   []string{""},
		Physics: PhysicsConfig{Velocity: 100, Friction: 0.02},
	})
	m.Start()
	m.Advance(0.1)

	was := x
	m.Pause()
	m.Advance(0.5)
	if x != was {
		t.Errorf("x = %f, want frozen at %f", x, was)
	}

	m.Resume()
	m.Advance(0.1)
	if x == was {
		t.Error("x did not move after resume")
	}
}
