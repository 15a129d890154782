package sway

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// geomPaths maps component paths to (row, column) in the 2x3 matrix.
var geomPaths = map[string][2]int{
	"m00": {0, 0}, "m01": {0, 1}, "m02": {0, 2},
	"m10": {1, 0}, "m11": {1, 1}, "m12": {1, 2},
}

// geomPathOrder is the generation order for descriptors: row-major, with
// the translation cells last in each row.
var geomPathOrder = [6]string{"m00", "m01", "m02", "m10", "m11", "m12"}

// GeoMAdapter handles [ebiten.GeoM] with component paths "m00" through
// "m12" naming (row, column) cells; "m02" and "m12" are the x and y
// translation. Cells interpolate independently, so tweening between two
// rotations blends the matrices, not the angles.
type GeoMAdapter struct{}

// Supports reports whether v is an ebiten.GeoM.
func (GeoMAdapter) Supports(v any) bool {
	_, ok := v.(ebiten.GeoM)
	return ok
}

// AcceptsPath reports whether v is an ebiten.GeoM.
func (GeoMAdapter) AcceptsPath(v any) bool {
	_, ok := v.(ebiten.GeoM)
	return ok
}

// Generate emits descriptors for the matrix cells that change.
func (GeoMAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.(ebiten.GeoM)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an ebiten.GeoM", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.(ebiten.GeoM)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not an ebiten.GeoM", ErrTypeMismatch, typeName(req.Live))
	}
	var start ebiten.GeoM
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.(ebiten.GeoM)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not an ebiten.GeoM", ErrTypeMismatch, typeName(req.Start))
		}
		start, hasStart = s, true
	}
	var props []Property
	for _, path := range geomPathOrder {
		rc := geomPaths[path]
		props = emitComponent(props, req, path,
			live.Element(rc[0], rc[1]), end.Element(rc[0], rc[1]), start.Element(rc[0], rc[1]), hasStart)
	}
	return props, nil
}

// Read returns the whole matrix for "" and the named cell otherwise.
func (GeoMAdapter) Read(v any, path string) (any, error) {
	g, ok := v.(ebiten.GeoM)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an ebiten.GeoM", ErrTypeMismatch, typeName(v))
	}
	if path == "" {
		return g, nil
	}
	rc, ok := geomPaths[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return g.Element(rc[0], rc[1]), nil
}

// Write sets one cell in a copy of the matrix.
func (GeoMAdapter) Write(v any, path string, value float64) (any, error) {
	g, ok := v.(ebiten.GeoM)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an ebiten.GeoM", ErrTypeMismatch, typeName(v))
	}
	rc, ok := geomPaths[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	g.SetElement(rc[0], rc[1], value)
	return g, nil
}

// ColorScaleAdapter handles [ebiten.ColorScale] with component paths "r",
// "g", "b", "a". ColorScale stores premultiplied factors; the adapter
// interpolates them directly, which matches how Ebitengine composes them.
type ColorScaleAdapter struct{}

// Supports reports whether v is an ebiten.ColorScale.
func (ColorScaleAdapter) Supports(v any) bool {
	_, ok := v.(ebiten.ColorScale)
	return ok
}

// AcceptsPath reports whether v is an ebiten.ColorScale.
func (ColorScaleAdapter) AcceptsPath(v any) bool {
	_, ok := v.(ebiten.ColorScale)
	return ok
}

// Generate emits descriptors for the factors that change.
func (ColorScaleAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.(ebiten.ColorScale)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an ebiten.ColorScale", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.(ebiten.ColorScale)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not an ebiten.ColorScale", ErrTypeMismatch, typeName(req.Live))
	}
	var start ebiten.ColorScale
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.(ebiten.ColorScale)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not an ebiten.ColorScale", ErrTypeMismatch, typeName(req.Start))
		}
		start, hasStart = s, true
	}
	props := emitComponent(nil, req, "r", float64(live.R()), float64(end.R()), float64(start.R()), hasStart)
	props = emitComponent(props, req, "g", float64(live.G()), float64(end.G()), float64(start.G()), hasStart)
	props = emitComponent(props, req, "b", float64(live.B()), float64(end.B()), float64(start.B()), hasStart)
	props = emitComponent(props, req, "a", float64(live.A()), float64(end.A()), float64(start.A()), hasStart)
	return props, nil
}

// Read returns the whole scale for "" and the named factor otherwise.
func (ColorScaleAdapter) Read(v any, path string) (any, error) {
	c, ok := v.(ebiten.ColorScale)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an ebiten.ColorScale", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "":
		return c, nil
	case "r":
		return float64(c.R()), nil
	case "g":
		return float64(c.G()), nil
	case "b":
		return float64(c.B()), nil
	case "a":
		return float64(c.A()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
}

// Write sets one factor in a copy of the scale.
func (ColorScaleAdapter) Write(v any, path string, value float64) (any, error) {
	c, ok := v.(ebiten.ColorScale)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an ebiten.ColorScale", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "r":
		c.SetR(float32(value))
	case "g":
		c.SetG(float32(value))
	case "b":
		c.SetB(float32(value))
	case "a":
		c.SetA(float32(value))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return c, nil
}
