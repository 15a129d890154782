package sway

// Vec2 is a 2D vector used for positions, offsets, and path points
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// MotionState identifies where a Mover is in its lifecycle.
type MotionState uint8

const (
	StateIdle      MotionState = iota // constructed or reset, not yet started
	StateDelayed                      // started, waiting out a pre-movement delay
	StateMoving                       // actively interpolating
	StatePaused                       // time cursor frozen; values retained
	StateCompleted                    // finished (naturally or via Stop)
)

// String returns the state name for logging and test output.
func (s MotionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDelayed:
		return "delayed"
	case StateMoving:
		return "moving"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// MotionDirection identifies which way a Mover is traveling through its cycle.
type MotionDirection uint8

const (
	DirectionForward MotionDirection = iota // start values toward end values
	DirectionReverse                        // end values back toward start values
)

// String returns the direction name for logging and test output.
func (d MotionDirection) String() string {
	if d == DirectionReverse {
		return "reverse"
	}
	return "forward"
}

// EventKind identifies a kind of status event emitted by a Mover.
type EventKind uint8

const (
	EventStarted   EventKind = iota // movement began (after any delay elapses)
	EventStopped                    // Stop() forced completion early
	EventUpdated                    // values were written this tick
	EventReversed                   // direction flipped mid-cycle
	EventRepeated                   // a new repeat cycle began
	EventPaused                     // time cursor frozen
	EventResumed                    // time cursor unfrozen
	EventCompleted                  // cycle budget exhausted; terminal
)

// String returns the event name for logging and test output.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventStopped:
		return "stopped"
	case EventUpdated:
		return "updated"
	case EventReversed:
		return "reversed"
	case EventRepeated:
		return "repeated"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// StatusEvent carries one lifecycle notification from a Mover. Path-based
// movers additionally fill Point with the newly computed path point.
type StatusEvent struct {
	Kind     EventKind
	Source   Mover
	Point    Vec2
	HasPoint bool
}

// Notifier receives every StatusEvent a Mover emits, in emission order.
// Use it to bridge events into another system (see the ecs subpackage);
// for ordinary callers the per-event callback fields on each Mover are
// more convenient.
type Notifier interface {
	Notify(StatusEvent)
}

// Mover is the uniform contract satisfied by Motion, PhysicsMotion,
// SpringMotion, PathMotion, Group, and Sequence. Composites hold children
// through this interface, which is what allows groups of sequences of
// groups to arbitrary depth.
//
// All methods must be called from a single goroutine, the one that drives
// Advance. See the package documentation's concurrency notes.
type Mover interface {
	// Advance moves the receiver forward by dt seconds. Negative dt is
	// ignored. A no-op unless the receiver is moving or delayed.
	Advance(dt float64)
	// Start transitions from idle or completed into movement. A no-op in
	// any other state.
	Start()
	// Stop forces completion from a delayed, moving, or paused state
	// without necessarily reaching full progress, emitting "stopped"
	// rather than "completed". A no-op otherwise, so calling it twice
	// produces exactly one notification.
	Stop()
	// Pause freezes the time cursor. Values written so far are retained.
	Pause()
	// Resume unfreezes a paused receiver.
	Resume()
	// Reset returns the receiver to idle with its time cursor cleared.
	// Target values are left wherever the last tick put them.
	Reset()
	// State reports the current lifecycle state.
	State() MotionState
	// Direction reports which way the receiver is currently traveling.
	Direction() MotionDirection
}

// RepeatForever makes SetRepeats repeat without a cycle budget.
const RepeatForever = -1

// valueEpsilon is the tolerance used when comparing scalar components, both
// for generation-time pruning and for test assertions on written values.
const valueEpsilon = 1e-9

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 clamps v to the closed interval [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampUnit clamps a configuration value to [0, 1], logging at debug level
// when it had to. Used for friction, restitution, and additive weighting.
func clampUnit(name string, v float64) float64 {
	c := clamp01(v)
	if c != v {
		Logger().Debug("sway: config value clamped", "name", name, "value", v, "clamped", c)
	}
	return c
}

// approxEqual reports whether a and b differ by no more than valueEpsilon.
func approxEqual(a, b float64) bool {
	d := a - b
	return d >= -valueEpsilon && d <= valueEpsilon
}
