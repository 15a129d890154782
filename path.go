package sway

import (
	"math"

	"honnef.co/go/curve"
)

// arclenAccuracy is the error bound handed to segment arc length
// computations. Path coordinates are pixel-sized, so this is far below
// anything visible.
const arclenAccuracy = 1e-4

// DefaultLookupSamples is the lookup table size used when a caller asks
// for one without choosing a resolution.
const DefaultLookupSamples = 256

// Segment is one piece of a path. [curve.Line], [curve.QuadBez] and
// [curve.CubicBez] all satisfy it directly.
type Segment interface {
	Eval(t float64) curve.Point
	Arclen(accuracy float64) float64
}

// PathCurve maps a normalized position in [0, 1] to a point. Positions
// outside the range clamp.
type PathCurve interface {
	PointAt(u float64) Vec2
}

// EdgeBehavior decides what happens when a motion's position leaves the
// [0, 1] range of its path.
type EdgeBehavior uint8

const (
	// EdgeStop clamps the position to the nearest edge.
	EdgeStop EdgeBehavior = iota
	// EdgeWrap treats the path as a loop: positions wrap around to the
	// opposite edge. Integral positions at or past the end resolve to
	// the end point so a plain forward run still lands exactly on it.
	EdgeWrap
)

// String implements [fmt.Stringer].
func (e EdgeBehavior) String() string {
	switch e {
	case EdgeStop:
		return "stop"
	case EdgeWrap:
		return "wrap"
	}
	return "unknown"
}

// resolveEdge folds an out-of-range position back into [0, 1] according
// to the edge behavior.
func resolveEdge(u float64, edge EdgeBehavior) float64 {
	if edge == EdgeWrap {
		wrapped := math.Mod(u, 1)
		if wrapped < 0 {
			wrapped++
		}
		if wrapped == 0 && u >= 1 {
			return 1
		}
		return wrapped
	}
	return clamp01(u)
}

// SegmentPath chains curve segments into one path. Positions distribute
// across segments in proportion to their arc lengths, so a position
// increment covers roughly the same distance whichever segment it lands
// in. Within a segment the curve's own parameterization applies; build a
// lookup table through [PathState] when exact constant speed matters.
type SegmentPath struct {
	segments []Segment
	lengths  []float64
	total    float64
}

// NewSegmentPath builds a path from the given segments, which are assumed
// to connect end to end. Panics if no segments are given.
func NewSegmentPath(segments ...Segment) *SegmentPath {
	if len(segments) == 0 {
		panic("sway: NewSegmentPath requires at least one segment")
	}
	p := &SegmentPath{
		segments: segments,
		lengths:  make([]float64, len(segments)),
	}
	for i, seg := range segments {
		p.lengths[i] = seg.Arclen(arclenAccuracy)
		p.total += p.lengths[i]
	}
	return p
}

// Polyline builds a path of straight lines through the given points.
// Panics with fewer than two points.
func Polyline(points ...Vec2) *SegmentPath {
	if len(points) < 2 {
		panic("sway: Polyline requires at least two points")
	}
	segments := make([]Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		segments = append(segments, curve.Line{
			P0: curve.Point{X: points[i-1].X, Y: points[i-1].Y},
			P1: curve.Point{X: points[i].X, Y: points[i].Y},
		})
	}
	return NewSegmentPath(segments...)
}

// Length returns the path's total arc length.
func (p *SegmentPath) Length() float64 { return p.total }

// PointAt implements [PathCurve].
func (p *SegmentPath) PointAt(u float64) Vec2 {
	u = clamp01(u)
	if p.total == 0 {
		pt := p.segments[0].Eval(0)
		return Vec2{X: pt.X, Y: pt.Y}
	}
	target := u * p.total
	for i, seg := range p.segments {
		length := p.lengths[i]
		if target > length && i < len(p.segments)-1 {
			target -= length
			continue
		}
		t := 1.0
		if length > 0 {
			t = clamp01(target / length)
		}
		pt := seg.Eval(t)
		return Vec2{X: pt.X, Y: pt.Y}
	}
	pt := p.segments[len(p.segments)-1].Eval(1)
	return Vec2{X: pt.X, Y: pt.Y}
}

// PathState pairs a curve with an optional lookup table of points spaced
// evenly by arc length. With a table in place, PointAt becomes a cheap
// interpolated lookup with true constant-speed traversal; without one it
// falls through to the curve.
//
// Tables can be built synchronously or in the background:
//
//	ps := sway.NewPathState(path)
//	ps.BeginBuildingLookupTable(512) // during loading
//	...
//	ps.AwaitLookupTable()            // before starting motions
//
// PathState is not safe for concurrent mutation; build the table before
// sharing it between motions.
type PathState struct {
	curve   PathCurve
	table   []Vec2
	pending chan []Vec2
}

// NewPathState wraps a curve. Panics on nil.
func NewPathState(c PathCurve) *PathState {
	if c == nil {
		panic("sway: NewPathState requires a curve")
	}
	return &PathState{curve: c}
}

// Curve returns the wrapped curve.
func (s *PathState) Curve() PathCurve { return s.curve }

// BuildLookupTable samples the curve into a table of the given size,
// spaced evenly by arc length. Sizes below two fall back to
// [DefaultLookupSamples]. Blocks until the table is ready.
func (s *PathState) BuildLookupTable(samples int) {
	s.table = buildLookupTable(s.curve, samples)
	s.pending = nil
}

// BeginBuildingLookupTable starts building the table on a background
// goroutine. A no-op if a build is already pending. Call
// [PathState.AwaitLookupTable] to adopt the result; until then PointAt
// keeps using whatever the state had before.
func (s *PathState) BeginBuildingLookupTable(samples int) {
	if s.pending != nil {
		return
	}
	ch := make(chan []Vec2, 1)
	s.pending = ch
	c := s.curve
	go func() {
		ch <- buildLookupTable(c, samples)
	}()
}

// AwaitLookupTable blocks until a pending background build finishes and
// adopts its table. A no-op when no build is pending.
func (s *PathState) AwaitLookupTable() {
	if s.pending == nil {
		return
	}
	s.table = <-s.pending
	s.pending = nil
}

// HasLookupTable reports whether a table has been adopted.
func (s *PathState) HasLookupTable() bool { return len(s.table) > 0 }

// PointAt implements [PathCurve], preferring the lookup table.
func (s *PathState) PointAt(u float64) Vec2 {
	u = clamp01(u)
	if len(s.table) >= 2 {
		f := u * float64(len(s.table)-1)
		i := int(f)
		if i >= len(s.table)-1 {
			return s.table[len(s.table)-1]
		}
		frac := f - float64(i)
		a, b := s.table[i], s.table[i+1]
		return Vec2{X: lerp(a.X, b.X, frac), Y: lerp(a.Y, b.Y, frac)}
	}
	return s.curve.PointAt(u)
}

// buildLookupTable densely samples the curve, measures cumulative chord
// lengths, then resamples at even arc length intervals.
func buildLookupTable(c PathCurve, samples int) []Vec2 {
	if samples < 2 {
		samples = DefaultLookupSamples
	}
	dense := samples * 4
	if dense < 256 {
		dense = 256
	}

	pts := make([]Vec2, dense+1)
	cum := make([]float64, dense+1)
	pts[0] = c.PointAt(0)
	for i := 1; i <= dense; i++ {
		pts[i] = c.PointAt(float64(i) / float64(dense))
		dx := pts[i].X - pts[i-1].X
		dy := pts[i].Y - pts[i-1].Y
		cum[i] = cum[i-1] + math.Hypot(dx, dy)
	}
	total := cum[dense]

	table := make([]Vec2, samples)
	if total == 0 {
		for i := range table {
			table[i] = pts[0]
		}
		return table
	}
	j := 1
	for i := range table {
		target := total * float64(i) / float64(samples-1)
		for j < dense && cum[j] < target {
			j++
		}
		span := cum[j] - cum[j-1]
		frac := 0.0
		if span > 0 {
			frac = (target - cum[j-1]) / span
		}
		a, b := pts[j-1], pts[j]
		table[i] = Vec2{X: lerp(a.X, b.X, frac), Y: lerp(a.Y, b.Y, frac)}
	}
	return table
}
