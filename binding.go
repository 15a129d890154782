package sway

// Disposer is implemented by animation targets that can be torn down while a
// mover still references them (scene nodes, pooled entities). [BindValue]
// wires the binding's liveness check to IsDisposed automatically when the
// target implements it.
type Disposer interface {
	IsDisposed() bool
}

// Binding connects a mover to one animated value through a get/set accessor
// pair. The bound value may be a plain float64, a struct like [Vec2] or
// [Color], or an [ebiten.GeoM]: anything a registered [ValueAdapter] knows
// how to decompose.
//
// Movers read the live value through Get when they start (to resolve omitted
// start values) and write the recomposed value through Set every tick. The
// optional liveness check lets a binding report that its target has been
// torn down; movers skip writes to dead bindings and stop themselves.
type Binding struct {
	name  string
	get   func() any
	set   func(any)
	alive func() bool
}

// Bind creates a binding from an explicit accessor pair. The name is used in
// property paths, log output, and errors; it does not need to be unique.
//
// Bind panics if get or set is nil.
func Bind(name string, get func() any, set func(any)) Binding {
	if get == nil || set == nil {
		panic("sway: Bind requires non-nil get and set accessors")
	}
	return Binding{name: name, get: get, set: set}
}

// BindValue creates a binding that reads and writes through a pointer. This
// is the common case: the animated value lives in a struct you own and the
// mover rewrites it in place.
//
// If *T implements [Disposer], the binding's liveness check is wired to it.
//
// BindValue panics if target is nil.
func BindValue[T any](name string, target *T) Binding {
	if target == nil {
		panic("sway: BindValue requires a non-nil target")
	}
	b := Binding{
		name: name,
		get:  func() any { return *target },
		set: func(v any) {
			if tv, ok := v.(T); ok {
				*target = tv
			} else {
				Logger().Warn("sway: binding write dropped, type mismatch",
					"binding", name, "got", typeName(v))
			}
		},
	}
	if d, ok := any(target).(Disposer); ok {
		b.alive = func() bool { return !d.IsDisposed() }
	}
	return b
}

// WithLiveness returns a copy of the binding whose Alive method delegates to
// the given check. Use it when the target's lifetime is tracked outside the
// value itself:
//
//	b := sway.BindValue("pos", &e.Pos).WithLiveness(e.Valid)
func (b Binding) WithLiveness(alive func() bool) Binding {
	b.alive = alive
	return b
}

// Name reports the name given at construction.
func (b Binding) Name() string { return b.name }

// Get reads the live value. Returns nil for the zero Binding.
func (b Binding) Get() any {
	if b.get == nil {
		return nil
	}
	return b.get()
}

// Set writes a recomposed value back to the target. A no-op for the zero
// Binding or when the target is no longer alive.
func (b Binding) Set(v any) {
	if b.set == nil || !b.Alive() {
		return
	}
	b.set(v)
}

// Alive reports whether the bound target still exists. Bindings without a
// liveness check are always alive.
func (b Binding) Alive() bool {
	if b.alive == nil {
		return b.get != nil
	}
	return b.alive()
}
