package sway

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring defaults. An angular frequency of 6 with critical damping settles
// in roughly a second without overshoot; lower the damping for bounce.
const (
	DefaultAngularFrequency = 6.0
	DefaultDamping          = 1.0
	DefaultSpringFPS        = 60
	defaultRestDelta        = 0.001
)

// SpringConfig controls a [SpringMotion].
type SpringConfig struct {
	// To names the end state the spring settles toward. Required.
	To any
	// AngularFrequency sets how stiff the spring is, in oscillations per
	// second. Zero or unset means [DefaultAngularFrequency].
	AngularFrequency float64
	// Damping sets how quickly oscillation dies out. 1 is critical (no
	// overshoot), below 1 bounces, above 1 crawls. Zero or unset means
	// [DefaultDamping].
	Damping float64
	// FPS is the fixed simulation rate. The spring integrates in steps
	// of 1/FPS regardless of the tick rate feeding Advance, so behavior
	// does not drift with the frame rate. Zero or unset means
	// [DefaultSpringFPS].
	FPS int
	// Velocity is the initial velocity given to every component, in
	// units per second. Useful for flinging a value that then settles.
	Velocity float64
	// Delay postpones movement for this many seconds after Start.
	Delay float64
	// Additive blends each tick's delta on top of the live value.
	Additive bool
	// Weighting scales additive contributions, clamped to [0, 1]. Zero
	// or unset means full weight.
	Weighting float64
	// RestDelta is the position and velocity threshold below which the
	// spring counts as settled. Zero or unset means 0.001.
	RestDelta float64
	// Registry resolves adapters; nil means [DefaultRegistry].
	Registry *Registry
}

// SpringMotion drives a binding toward an end state with damped harmonic
// motion instead of a fixed duration. It completes when every component
// has settled within RestDelta of its end, snapping to the exact end
// values on the final write. Springs do not reverse or repeat.
type SpringMotion struct {
	OnStarted   func(*SpringMotion)
	OnStopped   func(*SpringMotion)
	OnUpdated   func(*SpringMotion)
	OnPaused    func(*SpringMotion)
	OnResumed   func(*SpringMotion)
	OnCompleted func(*SpringMotion)

	// Notifier, when set, receives every status event after the matching
	// callback has run.
	Notifier Notifier

	binding  Binding
	registry *Registry
	props    []Property
	spring   harmonica.Spring

	initialVelocity float64
	restDelta       float64
	step            float64
	accumulated     float64

	delay     float64
	additive  bool
	weighting float64

	state        MotionState
	delayElapsed float64

	deadWarned     bool
	startsResolved bool
}

// NewSpringMotion creates a spring-driven motion over the given binding.
// Like [NewMotion], configuration mistakes panic immediately.
func NewSpringMotion(b Binding, cfg SpringConfig) *SpringMotion {
	if cfg.To == nil {
		panic("sway: NewSpringMotion requires To")
	}
	reg := cfg.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	freq := cfg.AngularFrequency
	if freq <= 0 {
		freq = DefaultAngularFrequency
	}
	damping := cfg.Damping
	if damping <= 0 {
		damping = DefaultDamping
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = DefaultSpringFPS
	}
	m := &SpringMotion{
		binding:         b,
		registry:        reg,
		spring:          harmonica.NewSpring(harmonica.FPS(fps), freq, damping),
		initialVelocity: cfg.Velocity,
		restDelta:       cfg.RestDelta,
		step:            1.0 / float64(fps),
		delay:           cfg.Delay,
		additive:        cfg.Additive,
		weighting:       1,
	}
	if m.restDelta <= 0 {
		m.restDelta = defaultRestDelta
	}
	if m.delay < 0 {
		m.delay = 0
	}
	if cfg.Additive && cfg.Weighting > 0 {
		m.weighting = clampUnit("weighting", cfg.Weighting)
	}
	props, err := reg.Generate(b, []TargetState{{End: cfg.To}}, m.additive, m.weighting)
	if err != nil {
		panic(err.Error())
	}
	m.props = props
	return m
}

// Start transitions from idle or completed into movement, seeding each
// component from the live value. A no-op in any other state.
func (m *SpringMotion) Start() {
	if m.state != StateIdle && m.state != StateCompleted {
		return
	}
	m.delayElapsed = 0
	m.accumulated = 0
	m.deadWarned = false
	if m.delay > 0 {
		m.state = StateDelayed
		return
	}
	m.beginMovement()
}

func (m *SpringMotion) beginMovement() {
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
	}
	for i := range m.props {
		p := &m.props[i]
		p.Current = p.Start
		p.Velocity = m.initialVelocity
		p.delta = 0
	}
	m.state = StateMoving
	m.emit(EventStarted, m.OnStarted)
}

// Stop forces completion from any non-terminal state. Emits "stopped";
// calling Stop again is a no-op.
func (m *SpringMotion) Stop() {
	if m.state == StateCompleted {
		return
	}
	m.state = StateCompleted
	m.emit(EventStopped, m.OnStopped)
}

// Pause freezes the simulation; velocities are retained.
func (m *SpringMotion) Pause() {
	if m.state != StateMoving {
		return
	}
	m.state = StatePaused
	m.emit(EventPaused, m.OnPaused)
}

// Resume unfreezes a paused motion.
func (m *SpringMotion) Resume() {
	if m.state != StatePaused {
		return
	}
	m.state = StateMoving
	m.emit(EventResumed, m.OnResumed)
}

// Reset returns the motion to idle.
func (m *SpringMotion) Reset() {
	m.state = StateIdle
	m.delayElapsed = 0
	m.accumulated = 0
	m.deadWarned = false
}

// Advance steps the simulation by dt seconds. Negative dt is ignored.
func (m *SpringMotion) Advance(dt float64) {
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

// tick accumulates dt and drains it in fixed substeps so the spring's
// closed-form update sees the rate it was built for.
func (m *SpringMotion) tick(dt float64) {
	if !m.binding.Alive() {
		if !m.deadWarned {
			m.deadWarned = true
			Logger().Warn("sway: target gone, motion idling", "binding", m.binding.Name())
		}
		return
	}

	m.accumulated += dt
	stepped := false
	for m.accumulated >= m.step {
		m.accumulated -= m.step
		stepped = true
		for i := range m.props {
			p := &m.props[i]
			pos, vel := m.spring.Update(p.Current, p.Velocity, p.End)
			p.delta = (pos - p.Current) * p.Weighting
			p.Current = pos
			p.Velocity = vel
		}
	}
	if !stepped {
		return
	}

	if m.settled() {
		for i := range m.props {
			p := &m.props[i]
			p.delta = (p.End - p.Current) * p.Weighting
			p.Current = p.End
			p.Velocity = 0
		}
		m.apply()
		m.state = StateCompleted
		m.emit(EventCompleted, m.OnCompleted)
		return
	}
	m.apply()
	m.emit(EventUpdated, m.OnUpdated)
}

func (m *SpringMotion) settled() bool {
	for i := range m.props {
		p := &m.props[i]
		if math.Abs(p.Current-p.End) >= m.restDelta || math.Abs(p.Velocity) >= m.restDelta {
			return false
		}
	}
	return true
}

func (m *SpringMotion) apply() {
	if err := m.registry.Apply(m.binding, m.props, m.additive); err != nil {
		if !m.deadWarned {
			m.deadWarned = true
			Logger().Warn("sway: write-back failed", "binding", m.binding.Name(), "err", err)
		}
	}
}

func (m *SpringMotion) emit(kind EventKind, cb func(*SpringMotion)) {
	if cb != nil {
		cb(m)
	}
	if m.Notifier != nil {
		m.Notifier.Notify(StatusEvent{Kind: kind, Source: m})
	}
}

// State reports the current lifecycle state.
func (m *SpringMotion) State() MotionState { return m.state }

// Direction reports forward always; springs do not reverse.
func (m *SpringMotion) Direction() MotionDirection { return DirectionForward }

// Binding returns the binding the motion writes through.
func (m *SpringMotion) Binding() Binding { return m.binding }

// Properties exposes the motion's live descriptors.
func (m *SpringMotion) Properties() []Property { return m.props }

// Retarget changes the end state mid-flight. The spring seeks the new
// ends from its current position and velocity, which is what makes
// springs feel right under rapid target changes. The new state must
// decompose to the same component paths.
func (m *SpringMotion) Retarget(to any) error {
	// Generate in additive mode so no component is pruned; mid-flight the
	// live value matches nothing in particular.
	props, err := m.registry.Generate(m.binding, []TargetState{{End: to}}, true, m.weighting)
	if err != nil {
		return err
	}
	byPath := make(map[string]float64, len(props))
	for _, p := range props {
		byPath[p.Path] = p.End
	}
	for i := range m.props {
		p := &m.props[i]
		if end, ok := byPath[p.Path]; ok {
			p.End = end
		}
	}
	return nil
}
