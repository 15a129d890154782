package sway

import (
	"github.com/tanema/gween/ease"
)

// MotionConfig controls how a [Motion] interpolates its binding. Exactly one
// of Properties, States, or To must describe the destination.
type MotionConfig struct {
	// To is the end state for the whole bound value. Its type selects the
	// adapter that decomposes it.
	To any
	// From optionally pins the start state for the whole bound value.
	// When nil the live value at start time is used.
	From any
	// States lists per-path component states, for motions that move only
	// part of a composite ("m02" of a matrix, "origin" of a rectangle).
	// Ignored when To is set.
	States []TargetState
	// Properties supplies scalar descriptors directly, bypassing
	// decomposition. Ignored when To or States is set.
	Properties []Property

	// Duration is the length of one forward cycle in seconds. Negative
	// values are clamped to zero, which completes on the first tick.
	Duration float64
	// Delay postpones movement for this many seconds after Start. The
	// "started" notification fires when movement actually begins.
	Delay float64
	// Easing curves the forward leg; nil means linear.
	Easing ease.TweenFunc
	// ReverseEasing curves the reverse leg; nil reuses Easing.
	ReverseEasing ease.TweenFunc

	// Reverses plays the cycle back to the start after reaching the end.
	Reverses bool
	// Repeats is the number of additional cycles after the first.
	// [RepeatForever] repeats without a budget.
	Repeats int

	// Additive blends each tick's delta on top of the live value instead
	// of overwriting it, so several additive motions on one component sum.
	Additive bool
	// Weighting scales additive contributions, clamped to [0, 1]. Zero or
	// unset means full weight.
	Weighting float64

	// Registry resolves adapters; nil means [DefaultRegistry].
	Registry *Registry
}

// Motion interpolates one binding's scalar components from their start
// values to their end values over a fixed duration, through an easing
// curve. It is the leaf unit of animatable work; compose motions with
// [Group] and [Sequence].
//
// The callback fields fire synchronously during the method that causes
// them; leave them nil when unused.
type Motion struct {
	OnStarted   func(*Motion)
	OnStopped   func(*Motion)
	OnUpdated   func(*Motion)
	OnReversed  func(*Motion)
	OnRepeated  func(*Motion)
	OnPaused    func(*Motion)
	OnResumed   func(*Motion)
	OnCompleted func(*Motion)

	// Notifier, when set, receives every status event after the matching
	// callback has run.
	Notifier Notifier

	binding  Binding
	registry *Registry
	props    []Property

	duration      float64
	delay         float64
	easing        ease.TweenFunc
	reverseEasing ease.TweenFunc
	reverses      bool
	repeats       int
	additive      bool
	weighting     float64

	state        MotionState
	direction    MotionDirection
	elapsed      float64
	delayElapsed float64
	cyclesDone   int

	holdReverse    bool
	held           bool
	deadWarned     bool
	startsResolved bool
}

// NewMotion creates a motion over the given binding. Decomposition runs
// here, against the binding's current value; start values stay provisional
// until [Motion.Start]. Configuration mistakes that would make the motion a
// silent no-op (no destination, no adapter for the end value's type, type
// mismatches) panic immediately and are not recoverable at runtime.
func NewMotion(b Binding, cfg MotionConfig) *Motion {
	reg := cfg.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	m := &Motion{
		binding:       b,
		registry:      reg,
		duration:      cfg.Duration,
		delay:         cfg.Delay,
		easing:        cfg.Easing,
		reverseEasing: cfg.ReverseEasing,
		reverses:      cfg.Reverses,
		repeats:       cfg.Repeats,
		additive:      cfg.Additive,
		weighting:     1,
	}
	if m.duration < 0 {
		Logger().Debug("sway: negative duration clamped to 0", "binding", b.Name())
		m.duration = 0
	}
	if m.delay < 0 {
		m.delay = 0
	}
	if cfg.Additive && cfg.Weighting > 0 {
		m.weighting = clampUnit("weighting", cfg.Weighting)
	}

	switch {
	case cfg.To != nil:
		props, err := reg.Generate(b, []TargetState{{Start: cfg.From, End: cfg.To}}, m.additive, m.weighting)
		if err != nil {
			panic(err.Error())
		}
		m.props = props
	case len(cfg.States) > 0:
		props, err := reg.Generate(b, cfg.States, m.additive, m.weighting)
		if err != nil {
			panic(err.Error())
		}
		m.props = props
	case len(cfg.Properties) > 0:
		m.props = append([]Property(nil), cfg.Properties...)
	default:
		panic("sway: NewMotion requires To, States, or Properties")
	}
	return m
}

// Animate is shorthand for the common whole-value case:
//
//	sway.Animate(sway.BindValue("pos", &pos), sway.Vec2{X: 90}, 1.5, ease.OutCubic)
func Animate(b Binding, to any, duration float64, fn ease.TweenFunc) *Motion {
	return NewMotion(b, MotionConfig{To: to, Duration: duration, Easing: fn})
}

// Start transitions from idle or completed into movement, resolving any
// start values that were not pinned explicitly from the live target now, so
// target mutations between construction and start are respected. A no-op in
// any other state.
func (m *Motion) Start() {
	if m.state != StateIdle && m.state != StateCompleted {
		return
	}
	m.elapsed = 0
	m.delayElapsed = 0
	m.cyclesDone = 0
	m.direction = DirectionForward
	m.held = false
	m.deadWarned = false
	if m.delay > 0 {
		m.state = StateDelayed
		return
	}
	m.beginMovement()
}

// beginMovement resolves start values and enters the moving state. Starts
// resolve exactly once, on the first movement after construction; restarts
// (including a sequence replaying a step) reuse them, otherwise a replay
// would read its own end values as the new starts.
func (m *Motion) beginMovement() {
	for i := range m.props {
		p := &m.props[i]
		if !m.startsResolved && !p.hasExplicitStart {
			if cur, err := m.registry.ReadProperty(m.binding, p.Path); err == nil {
				p.Start = cur
			} else {
				Logger().Warn("sway: start value unresolved, keeping provisional",
					"binding", m.binding.Name(), "path", p.Path, "err", err)
			}
		}
		p.Current = p.Start
		p.delta = 0
	}
	m.startsResolved = true
	m.state = StateMoving
	m.emit(EventStarted, m.OnStarted)
}

// Stop forces completion from any non-terminal state without reaching full
// progress. Values keep whatever the last tick wrote. Emits "stopped";
// calling Stop again is a no-op, so exactly one notification results.
func (m *Motion) Stop() {
	if m.state == StateCompleted {
		return
	}
	m.state = StateCompleted
	m.held = false
	m.emit(EventStopped, m.OnStopped)
}

// Pause freezes the time cursor. Only a moving motion can pause.
func (m *Motion) Pause() {
	if m.state != StateMoving {
		return
	}
	m.state = StatePaused
	m.emit(EventPaused, m.OnPaused)
}

// Resume unfreezes a paused motion.
func (m *Motion) Resume() {
	if m.state != StatePaused {
		return
	}
	m.state = StateMoving
	m.emit(EventResumed, m.OnResumed)
}

// Reset returns the motion to idle with its cursor cleared. The target
// keeps whatever values the last tick wrote; no notification is emitted.
func (m *Motion) Reset() {
	m.state = StateIdle
	m.direction = DirectionForward
	m.elapsed = 0
	m.delayElapsed = 0
	m.cyclesDone = 0
	m.held = false
	m.deadWarned = false
}

// Advance moves the motion forward by dt seconds. Negative dt is ignored.
// While delayed, dt burns down the delay; time left over after the delay
// expires flows into the first movement tick.
func (m *Motion) Advance(dt float64) {
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

func (m *Motion) tick(dt float64) {
	if m.held {
		return
	}
	if !m.binding.Alive() {
		// The tick becomes a no-op rather than failing the tree; the
		// motion cannot complete on its own and must be stopped
		// externally (or the target revived) to make progress.
		if !m.deadWarned {
			m.deadWarned = true
			Logger().Warn("sway: target gone, motion idling", "binding", m.binding.Name())
		}
		return
	}

	m.elapsed += dt
	progress := 1.0
	if m.duration > 0 {
		progress = clamp01(m.elapsed / m.duration)
	}
	boundary := progress >= 1

	m.writeValues(progress, boundary)

	if !boundary {
		m.emit(EventUpdated, m.OnUpdated)
		return
	}

	if m.reverses && m.direction == DirectionForward {
		if m.holdReverse {
			// A syncing parent owns the reverse decision; park at the
			// forward end until it releases us.
			m.held = true
			return
		}
		m.flipToReverse()
		return
	}
	if m.repeats != 0 && (m.repeats < 0 || m.cyclesDone < m.repeats) {
		m.cyclesDone++
		m.elapsed = 0
		m.direction = DirectionForward
		m.emit(EventRepeated, m.OnRepeated)
		return
	}
	m.state = StateCompleted
	m.emit(EventCompleted, m.OnCompleted)
}

// writeValues computes each descriptor's value at the given leg progress
// and applies the batch through the registry. Boundary ticks snap to the
// exact leg endpoint rather than trusting the easing function to land
// there.
func (m *Motion) writeValues(progress float64, boundary bool) {
	var eased float64
	if !boundary {
		if m.direction == DirectionReverse && m.reverseEasing != nil {
			eased = easeAt(m.reverseEasing, progress)
		} else {
			eased = easeAt(m.easing, progress)
		}
	}
	for i := range m.props {
		p := &m.props[i]
		var v float64
		switch {
		case boundary && m.direction == DirectionForward:
			v = p.End
		case boundary:
			v = p.Start
		case m.direction == DirectionForward:
			v = lerp(p.Start, p.End, eased)
		default:
			v = lerp(p.End, p.Start, eased)
		}
		p.delta = (v - p.Current) * p.Weighting
		p.Current = v
	}
	if err := m.registry.Apply(m.binding, m.props, m.additive); err != nil {
		if !m.deadWarned {
			m.deadWarned = true
			Logger().Warn("sway: write-back failed", "binding", m.binding.Name(), "err", err)
		}
	}
}

func (m *Motion) flipToReverse() {
	m.direction = DirectionReverse
	m.elapsed = 0
	m.emit(EventReversed, m.OnReversed)
}

func (m *Motion) emit(kind EventKind, cb func(*Motion)) {
	if cb != nil {
		cb(m)
	}
	if m.Notifier != nil {
		m.Notifier.Notify(StatusEvent{Kind: kind, Source: m})
	}
}

// State reports the current lifecycle state.
func (m *Motion) State() MotionState { return m.state }

// Direction reports which way the motion is currently traveling.
func (m *Motion) Direction() MotionDirection { return m.direction }

// Progress reports how far through the current leg the motion is, in
// [0, 1], before easing.
func (m *Motion) Progress() float64 {
	if m.duration <= 0 {
		if m.state == StateCompleted || m.elapsed > 0 {
			return 1
		}
		return 0
	}
	return clamp01(m.elapsed / m.duration)
}

// Elapsed reports seconds accumulated in the current leg.
func (m *Motion) Elapsed() float64 { return m.elapsed }

// Duration reports the configured length of one leg in seconds.
func (m *Motion) Duration() float64 { return m.duration }

// Binding returns the binding the motion writes through.
func (m *Motion) Binding() Binding { return m.binding }

// Properties exposes the motion's live descriptors. Mutating them while
// the motion is moving is not supported.
func (m *Motion) Properties() []Property { return m.props }

// SetDuration changes the leg duration, clamping negatives to zero. Takes
// effect immediately; progress is always elapsed over duration.
func (m *Motion) SetDuration(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	m.duration = seconds
}

// SetDelay changes the pre-movement delay for subsequent starts.
func (m *Motion) SetDelay(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	m.delay = seconds
}

// SetEasing replaces the forward easing curve; nil means linear.
func (m *Motion) SetEasing(fn ease.TweenFunc) { m.easing = fn }

// SetReverseEasing replaces the reverse-leg easing curve; nil reuses the
// forward curve.
func (m *Motion) SetReverseEasing(fn ease.TweenFunc) { m.reverseEasing = fn }

// SetReverses toggles playing the cycle back to the start after the end.
// Syncing parents call this on children, so a motion does not need to know
// it is nested.
func (m *Motion) SetReverses(reverses bool) { m.reverses = reverses }

// Reverses reports whether the motion plays a reverse leg.
func (m *Motion) Reverses() bool { return m.reverses }

// SetRepeats sets how many additional cycles run after the first;
// [RepeatForever] removes the budget.
func (m *Motion) SetRepeats(cycles int) { m.repeats = cycles }

// setHoldReverse is called by a syncing parent that wants to own the
// reverse decision for this child.
func (m *Motion) setHoldReverse(hold bool) { m.holdReverse = hold }

// heldForReverse reports whether the motion is parked at its forward end
// waiting for its parent's reverse release.
func (m *Motion) heldForReverse() bool { return m.held }

// releaseReverse flips a held motion into its reverse leg.
func (m *Motion) releaseReverse() {
	if !m.held {
		return
	}
	m.held = false
	m.flipToReverse()
}

// beginReverseLeg rewinds the motion onto its reverse leg from wherever it
// is, used by contiguous sequences to play a completed step backward as if
// the whole sequence were one continuous motion.
func (m *Motion) beginReverseLeg() {
	m.state = StateMoving
	m.held = false
	m.flipToReverse()
}

// easeAt evaluates a gween easing function at normalized progress. A nil
// function is linear.
func easeAt(fn ease.TweenFunc, progress float64) float64 {
	if fn == nil {
		return progress
	}
	return float64(fn(float32(progress), 0, 1, 1))
}
