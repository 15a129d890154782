package sway

import "fmt"

// Property describes one scalar component of an animated value: which
// component (by path), where it starts, where it ends, and where it is now.
// Movers interpolate Current between Start and End and hand the result to a
// [Registry] to write back into the bound value.
//
// Properties are normally generated for you by a registry when a mover
// starts, but they can also be built by hand and passed through
// [MotionConfig].Properties for exact control.
type Property struct {
	// Path names the component inside the bound value, in the syntax the
	// owning adapter defines: "" for a bare float64, "x"/"y" for vectors,
	// "r"/"g"/"b"/"a" for colors, "m02" for matrix cells, "min.x" for
	// rectangle corners, "3" for slice elements.
	Path string

	// Start is the component value at the beginning of the forward cycle.
	// Resolved from the live target when the mover starts, unless the
	// property was built with an explicit start.
	Start float64

	// End is the component value at the end of the forward cycle.
	End float64

	// Current is the most recently computed value. Movers update it every
	// tick; registries write it (or its additive delta) to the target.
	Current float64

	// Velocity is the live component velocity in units per second. Only
	// physics-driven movers maintain it.
	Velocity float64

	// Weighting scales this property's contribution when the owning mover
	// blends additively, in [0, 1]. Ignored for overwrite-mode movers.
	Weighting float64

	// delta is the weighted change in Current since the previous tick,
	// maintained by movers for additive application.
	delta float64

	hasExplicitStart bool
}

// NewProperty creates a descriptor for the component at path moving to end.
// The start value is resolved from the live target when the mover starts.
func NewProperty(path string, end float64) Property {
	return Property{Path: path, End: end, Weighting: 1}
}

// NewPropertyFrom creates a descriptor with an explicit start value. The
// component jumps to start when the mover begins, regardless of the live
// value at that moment.
func NewPropertyFrom(path string, start, end float64) Property {
	return Property{
		Path:             path,
		Start:            start,
		Current:          start,
		End:              end,
		Weighting:        1,
		hasExplicitStart: true,
	}
}

// String formats the descriptor for logs and test failures.
func (p Property) String() string {
	return fmt.Sprintf("%s: %v -> %v (now %v)", p.Path, p.Start, p.End, p.Current)
}

// TargetState pins the start and end of one component subtree by path, for
// movers built from states rather than whole-value targets. Start and End
// hold either a leaf float64 or a sub-value the adapter understands (a
// [Vec2] for a rectangle's "min", for example).
type TargetState struct {
	// Path selects the component subtree; "" addresses the whole value.
	Path string
	// Start optionally pins the starting state. When nil, the live value
	// at mover start is used.
	Start any
	// End is the desired final state.
	End any
}

// typeName formats a value's dynamic type for log output.
func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}
