package sway

import "math"

// DefaultRestVelocity is the speed, in units per second, below which a
// physics solver considers its value settled.
const DefaultRestVelocity = 1.0

// PhysicsConfig parameterizes a [PhysicsSolver]. Friction and restitution
// outside [0, 1] are clamped, not rejected.
type PhysicsConfig struct {
	// Velocity is the initial speed in units per second; its sign is the
	// direction of travel.
	Velocity float64
	// Friction is the per-frame decay factor in [0, 1]. 0 never slows
	// down, 1 freezes the value immediately.
	Friction float64
	// Restitution scales velocity retained after a boundary collision,
	// in [0, 1]. 0 is a dead stop at the boundary, 1 a lossless bounce.
	Restitution float64
	// UseCollisionDetection turns on boundary collision handling.
	UseCollisionDetection bool
	// Minimum and Maximum bound the value when collision detection is
	// on. A solver never leaves [Minimum, Maximum] once inside it.
	Minimum, Maximum float64
	// RestVelocity is the settling threshold; zero or less means
	// [DefaultRestVelocity].
	RestVelocity float64
}

// PhysicsSolver integrates one scalar under velocity and friction, with
// optional boundary collisions. Physics-driven movers keep one solver per
// property descriptor; the solver has no notion of duration, velocity and
// friction determine total travel.
//
// Friction decays velocity as (1-friction)^(dt*60), so a given friction
// value produces the same perceived deceleration regardless of tick rate.
type PhysicsSolver struct {
	position float64
	velocity float64

	initialVelocity float64
	friction        float64
	restitution     float64
	collides        bool
	minimum         float64
	maximum         float64
	restVelocity    float64
}

// NewPhysicsSolver creates a solver with the given parameters. Position
// starts at zero; movers call Reset to seed it from the live property.
func NewPhysicsSolver(cfg PhysicsConfig) *PhysicsSolver {
	s := &PhysicsSolver{
		velocity:        cfg.Velocity,
		initialVelocity: cfg.Velocity,
		friction:        clampUnit("friction", cfg.Friction),
		restitution:     clampUnit("restitution", cfg.Restitution),
		collides:        cfg.UseCollisionDetection,
		minimum:         math.Inf(-1),
		maximum:         math.Inf(1),
		restVelocity:    cfg.RestVelocity,
	}
	if cfg.UseCollisionDetection {
		s.minimum = math.Min(cfg.Minimum, cfg.Maximum)
		s.maximum = math.Max(cfg.Minimum, cfg.Maximum)
	}
	if s.restVelocity <= 0 {
		s.restVelocity = DefaultRestVelocity
	}
	return s
}

// Reset seeds the position and restores the initial velocity.
func (s *PhysicsSolver) Reset(position float64) {
	s.position = position
	s.velocity = s.initialVelocity
}

// Step advances the solver by dt seconds and returns the new position.
func (s *PhysicsSolver) Step(dt float64) float64 {
	if dt <= 0 {
		return s.position
	}
	s.velocity *= math.Pow(1-s.friction, dt*60)
	s.position += s.velocity * dt
	if s.collides {
		s.reflect()
	}
	return s.position
}

// reflect folds the position back inside the boundaries, scaling the
// overshoot and the velocity by restitution. Repeats in case a lively
// bounce crosses the opposite boundary within the same step.
func (s *PhysicsSolver) reflect() {
	for i := 0; i < 4; i++ {
		if s.position < s.minimum {
			s.position = s.minimum + (s.minimum-s.position)*s.restitution
			s.velocity = -s.velocity * s.restitution
			continue
		}
		if s.position > s.maximum {
			s.position = s.maximum - (s.position-s.maximum)*s.restitution
			s.velocity = -s.velocity * s.restitution
			continue
		}
		return
	}
	// A degenerate range can ping-pong indefinitely; settle at the edge.
	if s.position < s.minimum {
		s.position = s.minimum
	} else if s.position > s.maximum {
		s.position = s.maximum
	}
	s.velocity = 0
}

// Resting reports whether the speed has dropped below the rest threshold.
func (s *PhysicsSolver) Resting() bool {
	return math.Abs(s.velocity) < s.restVelocity
}

// Position returns the current value.
func (s *PhysicsSolver) Position() float64 { return s.position }

// Velocity returns the current speed and direction in units per second.
func (s *PhysicsSolver) Velocity() float64 { return s.velocity }

// SetVelocity overrides the current velocity, a hard redirect mid-flight.
// The initial velocity used by Reset is unchanged.
func (s *PhysicsSolver) SetVelocity(v float64) { s.velocity = v }
