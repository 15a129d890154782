package sway

import "fmt"

// PointAdapter handles [Vec2] with component paths "x" and "y".
type PointAdapter struct{}

// Supports reports whether v is a Vec2.
func (PointAdapter) Supports(v any) bool {
	_, ok := v.(Vec2)
	return ok
}

// AcceptsPath reports whether v is a Vec2.
func (PointAdapter) AcceptsPath(v any) bool {
	_, ok := v.(Vec2)
	return ok
}

// Generate emits descriptors for the x and y components that change.
func (PointAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.(Vec2)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a Vec2", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.(Vec2)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not a Vec2", ErrTypeMismatch, typeName(req.Live))
	}
	var start Vec2
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.(Vec2)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not a Vec2", ErrTypeMismatch, typeName(req.Start))
		}
		start, hasStart = s, true
	}
	props := emitComponent(nil, req, "x", live.X, end.X, start.X, hasStart)
	props = emitComponent(props, req, "y", live.Y, end.Y, start.Y, hasStart)
	return props, nil
}

// Read returns the whole vector for "" and the named component otherwise.
func (PointAdapter) Read(v any, path string) (any, error) {
	p, ok := v.(Vec2)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a Vec2", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "":
		return p, nil
	case "x":
		return p.X, nil
	case "y":
		return p.Y, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
}

// Write sets one component in a copy of the vector.
func (PointAdapter) Write(v any, path string, value float64) (any, error) {
	p, ok := v.(Vec2)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a Vec2", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "x":
		p.X = value
	case "y":
		p.Y = value
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return p, nil
}
