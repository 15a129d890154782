package sway

import "github.com/tanema/gween/ease"

// PathMotionConfig controls a [PathMotion].
type PathMotionConfig struct {
	// Duration is the length of one traversal in seconds.
	Duration float64
	// Delay postpones movement for this many seconds after Start.
	Delay float64
	// Easing shapes forward travel; nil is linear.
	Easing ease.TweenFunc
	// ReverseEasing shapes reverse travel; nil reuses Easing.
	ReverseEasing ease.TweenFunc
	// Reverses plays the traversal back to the start position after
	// reaching the end position.
	Reverses bool
	// Repeats is how many additional traversals run after the first;
	// [RepeatForever] repeats without limit.
	Repeats int
	// StartPosition and EndPosition bound the traversal on the path.
	// Both zero means the whole path, 0 to 1. With [EdgeWrap] the range
	// may cross the path edge: 0.8 to 1.3 travels through the join and
	// on to 0.3.
	StartPosition, EndPosition float64
	// Edge decides how positions outside [0, 1] resolve.
	Edge EdgeBehavior
	// Additive blends each tick's point delta on top of the live value.
	Additive bool
	// Weighting scales additive contributions, clamped to [0, 1]. Zero
	// or unset means full weight.
	Weighting float64
	// Registry resolves the adapter for the bound value; nil means
	// [DefaultRegistry].
	Registry *Registry
}

// PathMotion moves a two-component value along a path over a fixed
// duration. The bound value must decompose to "x" and "y" components
// ([Vec2] and [image.Point] both do). Events carry the point written
// that tick.
type PathMotion struct {
	OnStarted   func(*PathMotion)
	OnStopped   func(*PathMotion)
	OnUpdated   func(*PathMotion)
	OnReversed  func(*PathMotion)
	OnRepeated  func(*PathMotion)
	OnPaused    func(*PathMotion)
	OnResumed   func(*PathMotion)
	OnCompleted func(*PathMotion)

	// Notifier, when set, receives every status event after the matching
	// callback has run.
	Notifier Notifier

	binding  Binding
	registry *Registry
	path     *PathState
	edge     EdgeBehavior

	// u is the raw position on the path, driven by the inner motion and
	// folded through the edge behavior before lookup.
	u         float64
	inner     *Motion
	props     [2]Property
	lastPoint Vec2

	additive   bool
	deadWarned bool
}

// NewPathMotion creates a motion that travels the given path state,
// writing points through the binding. Like [NewMotion], configuration
// mistakes panic immediately.
func NewPathMotion(b Binding, ps *PathState, cfg PathMotionConfig) *PathMotion {
	if ps == nil {
		panic("sway: NewPathMotion requires a path state")
	}
	reg := cfg.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	start, end := cfg.StartPosition, cfg.EndPosition
	if start == 0 && end == 0 {
		end = 1
	}
	if cfg.Edge == EdgeStop {
		start = clampUnit("startPosition", start)
		end = clampUnit("endPosition", end)
	}

	m := &PathMotion{
		binding:  b,
		registry: reg,
		path:     ps,
		edge:     cfg.Edge,
		u:        start,
		additive: cfg.Additive,
	}
	weighting := 1.0
	if cfg.Additive && cfg.Weighting > 0 {
		weighting = clampUnit("weighting", cfg.Weighting)
	}
	m.props[0] = Property{Path: "x", Weighting: weighting}
	m.props[1] = Property{Path: "y", Weighting: weighting}
	m.lastPoint = ps.PointAt(resolveEdge(start, cfg.Edge))
	m.props[0].Current = m.lastPoint.X
	m.props[1].Current = m.lastPoint.Y

	// The inner motion animates the raw position; this type maps it to a
	// point and forwards lifecycle events with itself as the source.
	m.inner = NewMotion(BindValue("position", &m.u), MotionConfig{
		States:        []TargetState{{Start: start, End: end}},
		Duration:      cfg.Duration,
		Delay:         cfg.Delay,
		Easing:        cfg.Easing,
		ReverseEasing: cfg.ReverseEasing,
		Reverses:      cfg.Reverses,
		Repeats:       cfg.Repeats,
	})
	m.inner.OnStarted = func(*Motion) { m.writePoint(); m.emit(EventStarted, m.OnStarted) }
	m.inner.OnUpdated = func(*Motion) { m.writePoint(); m.emit(EventUpdated, m.OnUpdated) }
	m.inner.OnReversed = func(*Motion) { m.writePoint(); m.emit(EventReversed, m.OnReversed) }
	m.inner.OnRepeated = func(*Motion) { m.writePoint(); m.emit(EventRepeated, m.OnRepeated) }
	m.inner.OnPaused = func(*Motion) { m.emit(EventPaused, m.OnPaused) }
	m.inner.OnResumed = func(*Motion) { m.emit(EventResumed, m.OnResumed) }
	m.inner.OnCompleted = func(*Motion) { m.writePoint(); m.emit(EventCompleted, m.OnCompleted) }
	m.inner.OnStopped = func(*Motion) { m.emit(EventStopped, m.OnStopped) }
	return m
}

// writePoint folds the raw position through the edge behavior, looks up
// the point, and applies it through the registry.
func (m *PathMotion) writePoint() {
	pt := m.path.PointAt(resolveEdge(m.u, m.edge))
	px, py := &m.props[0], &m.props[1]
	px.delta = (pt.X - px.Current) * px.Weighting
	px.Current = pt.X
	py.delta = (pt.Y - py.Current) * py.Weighting
	py.Current = pt.Y
	m.lastPoint = pt
	if err := m.registry.Apply(m.binding, m.props[:], m.additive); err != nil {
		if !m.deadWarned {
			m.deadWarned = true
			Logger().Warn("sway: write-back failed", "binding", m.binding.Name(), "err", err)
		}
	}
}

func (m *PathMotion) emit(kind EventKind, cb func(*PathMotion)) {
	if cb != nil {
		cb(m)
	}
	if m.Notifier != nil {
		m.Notifier.Notify(StatusEvent{Kind: kind, Source: m, Point: m.lastPoint, HasPoint: true})
	}
}

// Start begins the traversal. Semantics match [Motion.Start].
func (m *PathMotion) Start() { m.inner.Start() }

// Stop forces completion from any non-terminal state.
func (m *PathMotion) Stop() { m.inner.Stop() }

// Pause freezes the traversal.
func (m *PathMotion) Pause() { m.inner.Pause() }

// Resume unfreezes a paused traversal.
func (m *PathMotion) Resume() { m.inner.Resume() }

// Reset returns the traversal to idle.
func (m *PathMotion) Reset() { m.inner.Reset() }

// Advance moves the traversal forward by dt seconds.
func (m *PathMotion) Advance(dt float64) { m.inner.Advance(dt) }

// State reports the current lifecycle state.
func (m *PathMotion) State() MotionState { return m.inner.State() }

// Direction reports which way the traversal is currently heading.
func (m *PathMotion) Direction() MotionDirection { return m.inner.Direction() }

// Progress reports how far through the current leg the traversal is.
func (m *PathMotion) Progress() float64 { return m.inner.Progress() }

// Duration reports the configured length of one traversal in seconds.
func (m *PathMotion) Duration() float64 { return m.inner.Duration() }

// Position reports the current position on the path after edge
// resolution, in [0, 1].
func (m *PathMotion) Position() float64 { return resolveEdge(m.u, m.edge) }

// Point reports the point written on the most recent tick.
func (m *PathMotion) Point() Vec2 { return m.lastPoint }

// Path returns the path state being traveled.
func (m *PathMotion) Path() *PathState { return m.path }

// Binding returns the binding the motion writes through.
func (m *PathMotion) Binding() Binding { return m.binding }

// SetDuration changes the traversal duration.
func (m *PathMotion) SetDuration(seconds float64) { m.inner.SetDuration(seconds) }

// SetEasing replaces the forward easing curve; nil means linear.
func (m *PathMotion) SetEasing(fn ease.TweenFunc) { m.inner.SetEasing(fn) }

// SetReverses toggles the reverse leg; syncing parents call this.
func (m *PathMotion) SetReverses(reverses bool) { m.inner.SetReverses(reverses) }

// Reverses reports whether the traversal plays a reverse leg.
func (m *PathMotion) Reverses() bool { return m.inner.Reverses() }

// SetRepeats sets how many additional traversals run after the first.
func (m *PathMotion) SetRepeats(cycles int) { m.inner.SetRepeats(cycles) }

func (m *PathMotion) setHoldReverse(hold bool) { m.inner.setHoldReverse(hold) }
func (m *PathMotion) heldForReverse() bool     { return m.inner.heldForReverse() }
func (m *PathMotion) releaseReverse()          { m.inner.releaseReverse() }
func (m *PathMotion) beginReverseLeg()         { m.inner.beginReverseLeg() }

// DefaultPathRestVelocity is the rest threshold used by
// [PathPhysicsMotion] when the config leaves it unset. Path positions are
// normalized, so the pixel-scale [DefaultRestVelocity] would rest almost
// immediately.
const DefaultPathRestVelocity = 0.01

// PathPhysicsMotionConfig controls a [PathPhysicsMotion].
type PathPhysicsMotionConfig struct {
	// Physics parameterizes the solver driving the path position.
	// Velocity is in normalized path positions per second: 1.0 crosses
	// the whole path in one second. Scale by [SegmentPath.Length] for a
	// speed in path units. RestVelocity unset means
	// [DefaultPathRestVelocity].
	Physics PhysicsConfig
	// StartPosition is where on the path the motion begins, in [0, 1].
	StartPosition float64
	// Edge decides how positions outside [0, 1] resolve. [EdgeStop]
	// turns the path ends into collision boundaries honoring
	// Restitution, so the default restitution of zero parks the motion
	// at the edge until it rests.
	Edge EdgeBehavior
	// Delay postpones movement for this many seconds after Start.
	Delay float64
	// Additive blends each tick's point delta on top of the live value.
	Additive bool
	// Weighting scales additive contributions, clamped to [0, 1]. Zero
	// or unset means full weight.
	Weighting float64
	// Registry resolves the adapter for the bound value; nil means
	// [DefaultRegistry].
	Registry *Registry
}

// PathPhysicsMotion slides a two-component value along a path with
// velocity and friction instead of a duration. It completes when the
// position's speed decays below the rest threshold.
type PathPhysicsMotion struct {
	OnStarted   func(*PathPhysicsMotion)
	OnStopped   func(*PathPhysicsMotion)
	OnUpdated   func(*PathPhysicsMotion)
	OnPaused    func(*PathPhysicsMotion)
	OnResumed   func(*PathPhysicsMotion)
	OnCompleted func(*PathPhysicsMotion)

	// Notifier, when set, receives every status event after the matching
	// callback has run.
	Notifier Notifier

	binding  Binding
	registry *Registry
	path     *PathState
	edge     EdgeBehavior

	u         float64
	inner     *PhysicsMotion
	props     [2]Property
	lastPoint Vec2

	additive   bool
	deadWarned bool
}

// NewPathPhysicsMotion creates a physics-driven motion along the given
// path state. Like [NewMotion], configuration mistakes panic immediately.
func NewPathPhysicsMotion(b Binding, ps *PathState, cfg PathPhysicsMotionConfig) *PathPhysicsMotion {
	if ps == nil {
		panic("sway: NewPathPhysicsMotion requires a path state")
	}
	reg := cfg.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	phys := cfg.Physics
	if phys.RestVelocity <= 0 {
		phys.RestVelocity = DefaultPathRestVelocity
	}
	if cfg.Edge == EdgeStop {
		phys.UseCollisionDetection = true
		phys.Minimum = 0
		phys.Maximum = 1
	}
	start := cfg.StartPosition
	if cfg.Edge == EdgeStop {
		start = clampUnit("startPosition", start)
	}

	m := &PathPhysicsMotion{
		binding:  b,
		registry: reg,
		path:     ps,
		edge:     cfg.Edge,
		u:        start,
		additive: cfg.Additive,
	}
	weighting := 1.0
	if cfg.Additive && cfg.Weighting > 0 {
		weighting = clampUnit("weighting", cfg.Weighting)
	}
	m.props[0] = Property{Path: "x", Weighting: weighting}
	m.props[1] = Property{Path: "y", Weighting: weighting}
	m.lastPoint = ps.PointAt(resolveEdge(start, cfg.Edge))
	m.props[0].Current = m.lastPoint.X
	m.props[1].Current = m.lastPoint.Y

	m.inner = NewPhysicsMotion(BindValue("position", &m.u), PhysicsMotionConfig{
		Paths:   []string{""},
		Physics: phys,
		Delay:   cfg.Delay,
	})
	m.inner.OnStarted = func(*PhysicsMotion) { m.writePoint(); m.emit(EventStarted, m.OnStarted) }
	m.inner.OnUpdated = func(*PhysicsMotion) { m.writePoint(); m.emit(EventUpdated, m.OnUpdated) }
	m.inner.OnPaused = func(*PhysicsMotion) { m.emit(EventPaused, m.OnPaused) }
	m.inner.OnResumed = func(*PhysicsMotion) { m.emit(EventResumed, m.OnResumed) }
	m.inner.OnCompleted = func(*PhysicsMotion) { m.writePoint(); m.emit(EventCompleted, m.OnCompleted) }
	m.inner.OnStopped = func(*PhysicsMotion) { m.emit(EventStopped, m.OnStopped) }
	return m
}

func (m *PathPhysicsMotion) writePoint() {
	pt := m.path.PointAt(resolveEdge(m.u, m.edge))
	px, py := &m.props[0], &m.props[1]
	px.delta = (pt.X - px.Current) * px.Weighting
	px.Current = pt.X
	py.delta = (pt.Y - py.Current) * py.Weighting
	py.Current = pt.Y
	m.lastPoint = pt
	if err := m.registry.Apply(m.binding, m.props[:], m.additive); err != nil {
		if !m.deadWarned {
			m.deadWarned = true
			Logger().Warn("sway: write-back failed", "binding", m.binding.Name(), "err", err)
		}
	}
}

func (m *PathPhysicsMotion) emit(kind EventKind, cb func(*PathPhysicsMotion)) {
	if cb != nil {
		cb(m)
	}
	if m.Notifier != nil {
		m.Notifier.Notify(StatusEvent{Kind: kind, Source: m, Point: m.lastPoint, HasPoint: true})
	}
}

// Start begins the slide. Semantics match [PhysicsMotion.Start].
func (m *PathPhysicsMotion) Start() { m.inner.Start() }

// Stop forces completion from any non-terminal state.
func (m *PathPhysicsMotion) Stop() { m.inner.Stop() }

// Pause freezes the simulation; velocity is retained.
func (m *PathPhysicsMotion) Pause() { m.inner.Pause() }

// Resume unfreezes a paused motion.
func (m *PathPhysicsMotion) Resume() { m.inner.Resume() }

// Reset returns the motion to idle.
func (m *PathPhysicsMotion) Reset() { m.inner.Reset() }

// Advance steps the simulation by dt seconds.
func (m *PathPhysicsMotion) Advance(dt float64) { m.inner.Advance(dt) }

// State reports the current lifecycle state.
func (m *PathPhysicsMotion) State() MotionState { return m.inner.State() }

// Direction reports forward always; physics motions do not reverse.
func (m *PathPhysicsMotion) Direction() MotionDirection { return DirectionForward }

// Position reports the current position on the path after edge
// resolution, in [0, 1].
func (m *PathPhysicsMotion) Position() float64 { return resolveEdge(m.u, m.edge) }

// Point reports the point written on the most recent tick.
func (m *PathPhysicsMotion) Point() Vec2 { return m.lastPoint }

// Path returns the path state being traveled.
func (m *PathPhysicsMotion) Path() *PathState { return m.path }

// Binding returns the binding the motion writes through.
func (m *PathPhysicsMotion) Binding() Binding { return m.binding }

// Solver returns the position solver, or nil before the first Start.
// Useful for flinging the motion again mid-flight:
//
//	ppm.Solver().SetVelocity(0.5)
func (m *PathPhysicsMotion) Solver() *PhysicsSolver { return m.inner.Solver("") }
