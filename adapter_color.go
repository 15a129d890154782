package sway

import (
	"fmt"
	"image/color"
)

// ColorAdapter handles [Color] with component paths "r", "g", "b", "a".
// Components are interpolated as-is; out-of-range results are written back
// unclamped so additive blends can overshoot and settle.
type ColorAdapter struct{}

// Supports reports whether v is a Color.
func (ColorAdapter) Supports(v any) bool {
	_, ok := v.(Color)
	return ok
}

// AcceptsPath reports whether v is a Color.
func (ColorAdapter) AcceptsPath(v any) bool {
	_, ok := v.(Color)
	return ok
}

// Generate emits descriptors for the channels that change.
func (ColorAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.(Color)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a Color", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.(Color)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not a Color", ErrTypeMismatch, typeName(req.Live))
	}
	var start Color
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.(Color)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not a Color", ErrTypeMismatch, typeName(req.Start))
		}
		start, hasStart = s, true
	}
	props := emitComponent(nil, req, "r", live.R, end.R, start.R, hasStart)
	props = emitComponent(props, req, "g", live.G, end.G, start.G, hasStart)
	props = emitComponent(props, req, "b", live.B, end.B, start.B, hasStart)
	props = emitComponent(props, req, "a", live.A, end.A, start.A, hasStart)
	return props, nil
}

// Read returns the whole color for "" and the named channel otherwise.
func (ColorAdapter) Read(v any, path string) (any, error) {
	c, ok := v.(Color)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a Color", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "":
		return c, nil
	case "r":
		return c.R, nil
	case "g":
		return c.G, nil
	case "b":
		return c.B, nil
	case "a":
		return c.A, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
}

// Write sets one channel in a copy of the color.
func (ColorAdapter) Write(v any, path string, value float64) (any, error) {
	c, ok := v.(Color)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a Color", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "r":
		c.R = value
	case "g":
		c.G = value
	case "b":
		c.B = value
	case "a":
		c.A = value
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return c, nil
}

// RGBAAdapter handles [color.RGBA] with component paths "r", "g", "b", "a".
// Channels interpolate in byte space (0..255) and are clamped and rounded
// on write-back.
type RGBAAdapter struct{}

// Supports reports whether v is a color.RGBA.
func (RGBAAdapter) Supports(v any) bool {
	_, ok := v.(color.RGBA)
	return ok
}

// AcceptsPath reports whether v is a color.RGBA.
func (RGBAAdapter) AcceptsPath(v any) bool {
	_, ok := v.(color.RGBA)
	return ok
}

// Generate emits descriptors for the channels that change.
func (RGBAAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.(color.RGBA)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a color.RGBA", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.(color.RGBA)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not a color.RGBA", ErrTypeMismatch, typeName(req.Live))
	}
	var start color.RGBA
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.(color.RGBA)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not a color.RGBA", ErrTypeMismatch, typeName(req.Start))
		}
		start, hasStart = s, true
	}
	props := emitComponent(nil, req, "r", float64(live.R), float64(end.R), float64(start.R), hasStart)
	props = emitComponent(props, req, "g", float64(live.G), float64(end.G), float64(start.G), hasStart)
	props = emitComponent(props, req, "b", float64(live.B), float64(end.B), float64(start.B), hasStart)
	props = emitComponent(props, req, "a", float64(live.A), float64(end.A), float64(start.A), hasStart)
	return props, nil
}

// Read returns the whole color for "" and the named channel otherwise.
func (RGBAAdapter) Read(v any, path string) (any, error) {
	c, ok := v.(color.RGBA)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a color.RGBA", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "":
		return c, nil
	case "r":
		return float64(c.R), nil
	case "g":
		return float64(c.G), nil
	case "b":
		return float64(c.B), nil
	case "a":
		return float64(c.A), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
}

// Write sets one channel, clamped to 0..255, in a copy of the color.
func (RGBAAdapter) Write(v any, path string, value float64) (any, error) {
	c, ok := v.(color.RGBA)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a color.RGBA", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "r":
		c.R = clampByte(value)
	case "g":
		c.G = clampByte(value)
	case "b":
		c.B = clampByte(value)
	case "a":
		c.A = clampByte(value)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return c, nil
}
