package sway

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by registries and adapters. Wrapped errors carry
// the binding name and component path; test with [errors.Is].
var (
	// ErrNoAdapter means no registered adapter supports a value's type.
	ErrNoAdapter = errors.New("no adapter for value type")
	// ErrTypeMismatch means an adapter was handed a value of the wrong
	// type, such as a start state whose type differs from the end state.
	ErrTypeMismatch = errors.New("value type mismatch")
	// ErrUnknownPath means a component path does not exist in the value.
	ErrUnknownPath = errors.New("unknown component path")
	// ErrDeadTarget means a binding reported its target gone.
	ErrDeadTarget = errors.New("binding target is gone")
)

// PropertyRequest asks an adapter to decompose one desired end state into
// scalar property descriptors. The registry resolves sub-paths before
// dispatch, so Live, Start, and End always describe the same value shape.
type PropertyRequest struct {
	// Live is the current value read from the binding (or the sub-value at
	// the requested path). Used to prune components that would not change
	// and to fill start values for components without an explicit start.
	Live any

	// Start optionally pins the starting state. Nil means start from Live.
	// When non-nil its type must match End's.
	Start any

	// End is the desired end state.
	End any

	// Additive disables pruning: additive motions contribute deltas, so
	// even a component whose end equals its current value participates.
	Additive bool

	// Weighting is copied to each generated descriptor.
	Weighting float64
}

// ValueAdapter decomposes values of some type into scalar components and
// recomposes them after interpolation. Implementations are stateless;
// the registry holds them in dispatch order.
//
// Read returns the sub-value at path: a composite for interior paths (a
// rectangle's "min"), a float64 for leaf paths, the whole value for "".
// Write sets the leaf at path in a copy of v and returns the copy; values
// are never mutated in place, because most animatable types (matrices,
// colors) are value types whose enclosing struct must be replaced wholesale.
type ValueAdapter interface {
	// Supports reports whether the adapter handles values of v's type.
	Supports(v any) bool
	// AcceptsPath reports whether components of v can be addressed by
	// path. Leaf adapters return false.
	AcceptsPath(v any) bool
	// Generate decomposes a request into property descriptors, pruning
	// components that would not change (see PropertyRequest.Additive).
	Generate(req PropertyRequest) ([]Property, error)
	// Read returns the sub-value at path inside v.
	Read(v any, path string) (any, error)
	// Write sets the leaf at path in a copy of v and returns the copy.
	Write(v any, path string, value float64) (any, error)
}

// Registry dispatches values to adapters and performs the per-tick
// write-back of interpolated properties.
//
// Dispatch is asymmetric on purpose. Generation picks the first adapter in
// registration order that supports the requested end value, because at setup
// time the end state's type is what describes the caller's intent. Per-tick
// application picks the adapter by the live value's type, because by then
// the target must be re-read and rewritten as whatever it actually is.
//
// Register adapters during setup, from the goroutine that drives movers;
// Registry is not synchronized.
type Registry struct {
	adapters []ValueAdapter
}

// NewRegistry creates a registry with the built-in adapters registered, in
// dispatch order:
//
//	GeoMAdapter           ebiten.GeoM
//	ColorScaleAdapter     ebiten.ColorScale
//	AffineAdapter         Affine
//	RectangleAdapter      Rect
//	ImageRectangleAdapter image.Rectangle
//	PointAdapter          Vec2
//	ImagePointAdapter     image.Point
//	ColorAdapter          Color
//	RGBAAdapter           color.RGBA
//	ColorfulAdapter       colorful.Color
//	SliceAdapter          []float64
//	NumericAdapter        float64, float32, int variants
//
// [HCLAdapter] also handles colorful.Color but is not registered by
// default; add it with RegisterFirst to interpolate in HCL space.
func NewRegistry() *Registry {
	return &Registry{adapters: []ValueAdapter{
		GeoMAdapter{},
		ColorScaleAdapter{},
		AffineAdapter{},
		RectangleAdapter{},
		ImageRectangleAdapter{},
		PointAdapter{},
		ImagePointAdapter{},
		ColorAdapter{},
		RGBAAdapter{},
		ColorfulAdapter{},
		SliceAdapter{},
		NumericAdapter{},
	}}
}

// NewEmptyRegistry creates a registry with no adapters registered, for
// callers that want full control over dispatch order.
func NewEmptyRegistry() *Registry {
	return &Registry{}
}

// defaultRegistry serves movers constructed without an explicit registry.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used by movers whose config does not
// name one. Registering project-specific adapters here makes them available
// everywhere.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register appends an adapter at the end of the dispatch order, after the
// built-ins.
func (r *Registry) Register(a ValueAdapter) {
	if a == nil {
		panic("sway: cannot register nil adapter")
	}
	r.adapters = append(r.adapters, a)
}

// RegisterFirst inserts an adapter ahead of all registered adapters, letting
// it take over types a built-in would otherwise claim.
func (r *Registry) RegisterFirst(a ValueAdapter) {
	if a == nil {
		panic("sway: cannot register nil adapter")
	}
	r.adapters = append([]ValueAdapter{a}, r.adapters...)
}

// AdapterFor returns the first registered adapter that supports v, or nil.
func (r *Registry) AdapterFor(v any) ValueAdapter {
	for _, a := range r.adapters {
		if a.Supports(v) {
			return a
		}
	}
	return nil
}

// Generate builds property descriptors for the given target states against
// the binding's current value. Start values for descriptors without an
// explicit start stay unresolved here; movers resolve them when they start,
// so target mutations between construction and start are respected.
func (r *Registry) Generate(b Binding, states []TargetState, additive bool, weighting float64) ([]Property, error) {
	live := b.Get()
	if live == nil {
		return nil, fmt.Errorf("sway: binding %q: %w", b.Name(), ErrDeadTarget)
	}
	var props []Property
	for _, st := range states {
		ps, err := r.generateState(live, st, additive, weighting)
		if err != nil {
			return nil, fmt.Errorf("sway: binding %q: %w", b.Name(), err)
		}
		props = append(props, ps...)
	}
	Logger().Debug("sway: generated properties",
		"binding", b.Name(), "states", len(states), "properties", len(props))
	return props, nil
}

func (r *Registry) generateState(live any, st TargetState, additive bool, weighting float64) ([]Property, error) {
	if st.End == nil {
		return nil, fmt.Errorf("state %q has no end value", st.Path)
	}

	// Interior paths are resolved against the live value first, so the
	// end-type adapter below sees matching shapes.
	liveSub := live
	if st.Path != "" {
		la := r.AdapterFor(live)
		if la == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoAdapter, typeName(live))
		}
		sub, err := la.Read(live, st.Path)
		if err != nil {
			return nil, err
		}
		liveSub = sub
	}

	// Generation dispatches on the end value's type.
	ea := r.AdapterFor(st.End)
	if ea == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoAdapter, typeName(st.End))
	}
	props, err := ea.Generate(PropertyRequest{
		Live:      liveSub,
		Start:     st.Start,
		End:       st.End,
		Additive:  additive,
		Weighting: weighting,
	})
	if err != nil {
		return nil, err
	}
	if st.Path != "" {
		for i := range props {
			props[i].Path = joinPath(st.Path, props[i].Path)
		}
	}
	return props, nil
}

// Apply writes the descriptors' current values through the binding. The
// live value is re-read and re-dispatched by its own type on every call, the
// single composite is rewritten leaf by leaf, and one Set delivers it.
//
// In additive mode each descriptor contributes its delta since the previous
// tick on top of whatever is live, rather than overwriting; concurrent
// additive motions on the same component therefore sum. In overwrite mode
// the last Apply in a tick wins.
func (r *Registry) Apply(b Binding, props []Property, additive bool) error {
	if len(props) == 0 {
		return nil
	}
	if !b.Alive() {
		return fmt.Errorf("sway: binding %q: %w", b.Name(), ErrDeadTarget)
	}
	v := b.Get()
	ad := r.AdapterFor(v)
	if ad == nil {
		return fmt.Errorf("sway: binding %q: %w: %s", b.Name(), ErrNoAdapter, typeName(v))
	}
	for i := range props {
		p := &props[i]
		final := p.Current
		if additive {
			cur, err := ad.Read(v, p.Path)
			if err != nil {
				return fmt.Errorf("sway: binding %q: %w", b.Name(), err)
			}
			leaf, ok := cur.(float64)
			if !ok {
				return fmt.Errorf("sway: binding %q: path %q: %w: %s is not a scalar",
					b.Name(), p.Path, ErrTypeMismatch, typeName(cur))
			}
			final = leaf + p.delta
		}
		nv, err := ad.Write(v, p.Path, final)
		if err != nil {
			return fmt.Errorf("sway: binding %q: %w", b.Name(), err)
		}
		v = nv
	}
	b.Set(v)
	return nil
}

// ReadProperty returns the live scalar at the descriptor's path, dispatching
// by the binding value's type. Movers use it to resolve start values.
func (r *Registry) ReadProperty(b Binding, path string) (float64, error) {
	v := b.Get()
	if v == nil {
		return 0, fmt.Errorf("sway: binding %q: %w", b.Name(), ErrDeadTarget)
	}
	ad := r.AdapterFor(v)
	if ad == nil {
		return 0, fmt.Errorf("sway: binding %q: %w: %s", b.Name(), ErrNoAdapter, typeName(v))
	}
	sub, err := ad.Read(v, path)
	if err != nil {
		return 0, fmt.Errorf("sway: binding %q: %w", b.Name(), err)
	}
	leaf, ok := toScalar(sub)
	if !ok {
		return 0, fmt.Errorf("sway: binding %q: path %q: %w: %s is not a scalar",
			b.Name(), path, ErrTypeMismatch, typeName(sub))
	}
	return leaf, nil
}

// joinPath joins a parent path and a component path with a dot, treating
// empty segments as absent.
func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}

// splitPath splits off the first path segment: "min.x" -> ("min", "x").
func splitPath(path string) (head, rest string) {
	if i := strings.IndexByte(path, '.'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}

// toScalar converts the numeric types adapters traffic in to float64.
func toScalar(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint8:
		return float64(n), true
	}
	return 0, false
}

// shouldEmit is the pruning rule shared by every adapter, evaluated per
// component: emit when the motion is additive (deltas always participate),
// when the end differs from the base value (explicit start if supplied,
// live value otherwise), or when an explicit start itself differs from the
// live value, so a re-basing request with a no-op end still animates.
func shouldEmit(live, end, start float64, hasStart, additive bool) bool {
	if additive {
		return true
	}
	base := live
	if hasStart {
		base = start
	}
	if !approxEqual(end, base) {
		return true
	}
	return hasStart && !approxEqual(start, live)
}

// emitComponent appends a descriptor for one scalar component when the
// pruning rule calls for it. Start and Current are provisionally filled
// from the live value; movers re-resolve non-explicit starts when they
// actually start.
func emitComponent(props []Property, req PropertyRequest, path string, live, end, start float64, hasStart bool) []Property {
	if !shouldEmit(live, end, start, hasStart, req.Additive) {
		return props
	}
	p := Property{Path: path, End: end, Weighting: req.Weighting}
	if hasStart {
		p.Start = start
		p.Current = start
		p.hasExplicitStart = true
	} else {
		p.Start = live
		p.Current = live
	}
	return append(props, p)
}

// clampByte converts an interpolated scalar to a color byte.
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
