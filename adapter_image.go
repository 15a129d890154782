package sway

import (
	"fmt"
	"image"
	"math"
)

// ImagePointAdapter handles [image.Point] with component paths "x" and "y".
// Interpolated values are rounded to nearest on write-back.
type ImagePointAdapter struct{}

// Supports reports whether v is an image.Point.
func (ImagePointAdapter) Supports(v any) bool {
	_, ok := v.(image.Point)
	return ok
}

// AcceptsPath reports whether v is an image.Point.
func (ImagePointAdapter) AcceptsPath(v any) bool {
	_, ok := v.(image.Point)
	return ok
}

// Generate emits descriptors for the x and y components that change.
func (ImagePointAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.(image.Point)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an image.Point", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.(image.Point)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not an image.Point", ErrTypeMismatch, typeName(req.Live))
	}
	var start image.Point
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.(image.Point)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not an image.Point", ErrTypeMismatch, typeName(req.Start))
		}
		start, hasStart = s, true
	}
	props := emitComponent(nil, req, "x", float64(live.X), float64(end.X), float64(start.X), hasStart)
	props = emitComponent(props, req, "y", float64(live.Y), float64(end.Y), float64(start.Y), hasStart)
	return props, nil
}

// Read returns the whole point for "" and the named component otherwise.
func (ImagePointAdapter) Read(v any, path string) (any, error) {
	p, ok := v.(image.Point)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an image.Point", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "":
		return p, nil
	case "x":
		return float64(p.X), nil
	case "y":
		return float64(p.Y), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
}

// Write sets one component, rounded to nearest, in a copy of the point.
func (ImagePointAdapter) Write(v any, path string, value float64) (any, error) {
	p, ok := v.(image.Point)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an image.Point", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "x":
		p.X = int(math.Round(value))
	case "y":
		p.Y = int(math.Round(value))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return p, nil
}

// ImageRectangleAdapter handles [image.Rectangle], decomposed as its two
// corner points: interior paths "min" and "max", leaf paths "min.x",
// "min.y", "max.x", "max.y".
type ImageRectangleAdapter struct{}

// Supports reports whether v is an image.Rectangle.
func (ImageRectangleAdapter) Supports(v any) bool {
	_, ok := v.(image.Rectangle)
	return ok
}

// AcceptsPath reports whether v is an image.Rectangle.
func (ImageRectangleAdapter) AcceptsPath(v any) bool {
	_, ok := v.(image.Rectangle)
	return ok
}

// Generate delegates each corner to the image.Point logic and rewrites the
// resulting descriptor paths to be relative to the rectangle.
func (ImageRectangleAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.(image.Rectangle)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an image.Rectangle", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.(image.Rectangle)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not an image.Rectangle", ErrTypeMismatch, typeName(req.Live))
	}
	var start image.Rectangle
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.(image.Rectangle)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not an image.Rectangle", ErrTypeMismatch, typeName(req.Start))
		}
		start, hasStart = s, true
	}

	var props []Property
	delegate := func(path string, liveSub, endSub, startSub image.Point) error {
		sub := PropertyRequest{
			Live:      liveSub,
			End:       endSub,
			Additive:  req.Additive,
			Weighting: req.Weighting,
		}
		if hasStart {
			sub.Start = startSub
		}
		ps, err := ImagePointAdapter{}.Generate(sub)
		if err != nil {
			return err
		}
		for i := range ps {
			ps[i].Path = joinPath(path, ps[i].Path)
		}
		props = append(props, ps...)
		return nil
	}
	if err := delegate("min", live.Min, end.Min, start.Min); err != nil {
		return nil, err
	}
	if err := delegate("max", live.Max, end.Max, start.Max); err != nil {
		return nil, err
	}
	return props, nil
}

// Read resolves interior paths to points and leaf paths to scalars.
func (ImageRectangleAdapter) Read(v any, path string) (any, error) {
	r, ok := v.(image.Rectangle)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an image.Rectangle", ErrTypeMismatch, typeName(v))
	}
	if path == "" {
		return r, nil
	}
	head, rest := splitPath(path)
	switch head {
	case "min":
		return ImagePointAdapter{}.Read(r.Min, rest)
	case "max":
		return ImagePointAdapter{}.Read(r.Max, rest)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
}

// Write sets one leaf, rounded to nearest, in a copy of the rectangle.
func (ImageRectangleAdapter) Write(v any, path string, value float64) (any, error) {
	r, ok := v.(image.Rectangle)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an image.Rectangle", ErrTypeMismatch, typeName(v))
	}
	head, rest := splitPath(path)
	var corner *image.Point
	switch head {
	case "min":
		corner = &r.Min
	case "max":
		corner = &r.Max
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	nv, err := ImagePointAdapter{}.Write(*corner, rest, value)
	if err != nil {
		return nil, err
	}
	*corner = nv.(image.Point)
	return r, nil
}
