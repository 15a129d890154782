package sway

import "math"

// PhysicsMotionConfig controls a [PhysicsMotion]. Either Paths or To must
// name what to drive.
type PhysicsMotionConfig struct {
	// Paths lists component paths to drive ("x", "origin.y", "" for a
	// bare scalar). Each listed component gets its own solver seeded
	// from the config.
	Paths []string
	// To optionally supplies an end state instead of Paths. Decomposed
	// end values do not act as timed targets (physics has no duration)
	// but as collision boundaries in the direction of travel, honoring
	// the configured restitution (0 parks the value exactly at the end).
	// The caller picks a velocity sign that heads toward the end.
	To any
	// Physics parameterizes every solver.
	Physics PhysicsConfig
	// Delay postpones movement for this many seconds after Start.
	Delay float64
	// Additive blends each tick's delta on top of the live value.
	Additive bool
	// Weighting scales additive contributions, clamped to [0, 1]. Zero
	// or unset means full weight.
	Weighting float64
	// Registry resolves adapters; nil means [DefaultRegistry].
	Registry *Registry
}

// PhysicsMotion drives one binding's scalar components with velocity and
// friction instead of a duration and easing curve. It completes when every
// component's speed decays below the rest threshold. Physics motions do
// not reverse or repeat; restart one, or wrap it in a [Sequence], to play
// it again.
type PhysicsMotion struct {
	OnStarted   func(*PhysicsMotion)
	OnStopped   func(*PhysicsMotion)
	OnUpdated   func(*PhysicsMotion)
	OnPaused    func(*PhysicsMotion)
	OnResumed   func(*PhysicsMotion)
	OnCompleted func(*PhysicsMotion)

	// Notifier, when set, receives every status event after the matching
	// callback has run.
	Notifier Notifier

	binding  Binding
	registry *Registry
	props    []Property
	solvers  []*PhysicsSolver
	physics  PhysicsConfig

	delay     float64
	additive  bool
	weighting float64

	// boundAtEnds records that descriptor end values double as collision
	// boundaries (the To form of the config).
	boundAtEnds bool

	state        MotionState
	delayElapsed float64

	deadWarned     bool
	startsResolved bool
}

// NewPhysicsMotion creates a physics-driven motion over the given binding.
// Like [NewMotion], configuration mistakes panic immediately.
func NewPhysicsMotion(b Binding, cfg PhysicsMotionConfig) *PhysicsMotion {
	reg := cfg.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	m := &PhysicsMotion{
		binding:   b,
		registry:  reg,
		physics:   cfg.Physics,
		delay:     cfg.Delay,
		additive:  cfg.Additive,
		weighting: 1,
	}
	if m.delay < 0 {
		m.delay = 0
	}
	if cfg.Additive && cfg.Weighting > 0 {
		m.weighting = clampUnit("weighting", cfg.Weighting)
	}

	switch {
	case cfg.To != nil:
		props, err := reg.Generate(b, []TargetState{{End: cfg.To}}, m.additive, m.weighting)
		if err != nil {
			panic(err.Error())
		}
		m.props = props
		m.boundAtEnds = true
	case len(cfg.Paths) > 0:
		for _, path := range cfg.Paths {
			p := NewProperty(path, 0)
			p.Weighting = m.weighting
			m.props = append(m.props, p)
		}
	default:
		panic("sway: NewPhysicsMotion requires Paths or To")
	}
	return m
}

// Start transitions from idle or completed into movement, seeding each
// component's solver from the live value. A no-op in any other state.
func (m *PhysicsMotion) Start() {
	if m.state != StateIdle && m.state != StateCompleted {
		return
	}
	m.delayElapsed = 0
	m.deadWarned = false
	if m.delay > 0 {
		m.state = StateDelayed
		return
	}
	m.beginMovement()
}

func (m *PhysicsMotion) beginMovement() {
	if !m.startsResolved {
		for i := range m.props {
			p := &m.props[i]
			if p.hasExplicitStart {
				continue
			}
			if cur, err := m.registry.ReadProperty(m.binding, p.Path); err == nil {
				p.Start = cur
			} else {
				Logger().Warn("sway: start value unresolved, keeping provisional",
					"binding", m.binding.Name(), "path", p.Path, "err", err)
			}
		}
		m.startsResolved = true
		m.solvers = make([]*PhysicsSolver, len(m.props))
		for i := range m.props {
			m.solvers[i] = NewPhysicsSolver(m.solverConfig(&m.props[i]))
		}
	}
	for i := range m.props {
		p := &m.props[i]
		p.Current = p.Start
		p.Velocity = m.physics.Velocity
		p.delta = 0
		m.solvers[i].Reset(p.Start)
	}
	m.state = StateMoving
	m.emit(EventStarted, m.OnStarted)
}

// solverConfig derives one component's solver parameters, folding the
// descriptor's end value in as a collision boundary when the motion was
// built from an end state.
func (m *PhysicsMotion) solverConfig(p *Property) PhysicsConfig {
	cfg := m.physics
	if !m.boundAtEnds {
		return cfg
	}
	if !cfg.UseCollisionDetection {
		cfg.UseCollisionDetection = true
		cfg.Minimum = math.Inf(-1)
		cfg.Maximum = math.Inf(1)
	}
	if p.End >= p.Start {
		cfg.Maximum = p.End
	} else {
		cfg.Minimum = p.End
	}
	return cfg
}

// Stop forces completion from any non-terminal state. Emits "stopped";
// calling Stop again is a no-op.
func (m *PhysicsMotion) Stop() {
	if m.state == StateCompleted {
		return
	}
	m.state = StateCompleted
	m.emit(EventStopped, m.OnStopped)
}

// Pause freezes the simulation; velocities are retained.
func (m *PhysicsMotion) Pause() {
	if m.state != StateMoving {
		return
	}
	m.state = StatePaused
	m.emit(EventPaused, m.OnPaused)
}

// Resume unfreezes a paused motion.
func (m *PhysicsMotion) Resume() {
	if m.state != StatePaused {
		return
	}
	m.state = StateMoving
	m.emit(EventResumed, m.OnResumed)
}

// Reset returns the motion to idle. Solvers are re-seeded on the next
// Start.
func (m *PhysicsMotion) Reset() {
	m.state = StateIdle
	m.delayElapsed = 0
	m.deadWarned = false
}

// Advance steps the simulation by dt seconds. Negative dt is ignored.
func (m *PhysicsMotion) Advance(dt float64) {
	if dt < 0 {
		return
	}
	switch m.state {
	case StateDelayed:
		m.delayElapsed += dt
		if m.delayElapsed < m.delay {
			return
		}
		excess := m.delayElapsed - m.delay
		m.beginMovement()
		if excess > 0 && m.state == StateMoving {
			m.tick(excess)
		}
	case StateMoving:
		m.tick(dt)
	}
}

func (m *PhysicsMotion) tick(dt float64) {
	if !m.binding.Alive() {
		if !m.deadWarned {
			m.deadWarned = true
			Logger().Warn("sway: target gone, motion idling", "binding", m.binding.Name())
		}
		return
	}

	resting := true
	for i := range m.props {
		p := &m.props[i]
		s := m.solvers[i]
		pos := s.Step(dt)
		p.delta = (pos - p.Current) * p.Weighting
		p.Current = pos
		p.Velocity = s.Velocity()
		if !s.Resting() {
			resting = false
		}
	}
	if err := m.registry.Apply(m.binding, m.props, m.additive); err != nil {
		if !m.deadWarned {
			m.deadWarned = true
			Logger().Warn("sway: write-back failed", "binding", m.binding.Name(), "err", err)
		}
	}

	if resting {
		m.state = StateCompleted
		m.emit(EventCompleted, m.OnCompleted)
		return
	}
	m.emit(EventUpdated, m.OnUpdated)
}

func (m *PhysicsMotion) emit(kind EventKind, cb func(*PhysicsMotion)) {
	if cb != nil {
		cb(m)
	}
	if m.Notifier != nil {
		m.Notifier.Notify(StatusEvent{Kind: kind, Source: m})
	}
}

// State reports the current lifecycle state.
func (m *PhysicsMotion) State() MotionState { return m.state }

// Direction reports forward always; physics motions do not reverse.
func (m *PhysicsMotion) Direction() MotionDirection { return DirectionForward }

// Binding returns the binding the motion writes through.
func (m *PhysicsMotion) Binding() Binding { return m.binding }

// Properties exposes the motion's live descriptors.
func (m *PhysicsMotion) Properties() []Property { return m.props }

// Solver returns the solver for the component at path, or nil before the
// first Start or for an unknown path. Useful for mid-flight velocity
// changes:
//
//	pm.Solver("x").SetVelocity(-200)
func (m *PhysicsMotion) Solver(path string) *PhysicsSolver {
	for i := range m.props {
		if m.props[i].Path == path {
			if i < len(m.solvers) {
				return m.solvers[i]
			}
			return nil
		}
	}
	return nil
}
