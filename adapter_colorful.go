package sway

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorfulAdapter handles [colorful.Color] with component paths "r", "g",
// "b", interpolating in RGB space. For perceptually uniform fades register
// [HCLAdapter] ahead of it instead.
type ColorfulAdapter struct{}

// Supports reports whether v is a colorful.Color.
func (ColorfulAdapter) Supports(v any) bool {
	_, ok := v.(colorful.Color)
	return ok
}

// AcceptsPath reports whether v is a colorful.Color.
func (ColorfulAdapter) AcceptsPath(v any) bool {
	_, ok := v.(colorful.Color)
	return ok
}

// Generate emits descriptors for the channels that change.
func (ColorfulAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.(colorful.Color)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a colorful.Color", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.(colorful.Color)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not a colorful.Color", ErrTypeMismatch, typeName(req.Live))
	}
	var start colorful.Color
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.(colorful.Color)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not a colorful.Color", ErrTypeMismatch, typeName(req.Start))
		}
		start, hasStart = s, true
	}
	props := emitComponent(nil, req, "r", live.R, end.R, start.R, hasStart)
	props = emitComponent(props, req, "g", live.G, end.G, start.G, hasStart)
	props = emitComponent(props, req, "b", live.B, end.B, start.B, hasStart)
	return props, nil
}

// Read returns the whole color for "" and the named channel otherwise.
func (ColorfulAdapter) Read(v any, path string) (any, error) {
	c, ok := v.(colorful.Color)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a colorful.Color", ErrTypeMismatch, typeName(v))
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
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
}

// Write sets one channel in a copy of the color.
func (ColorfulAdapter) Write(v any, path string, value float64) (any, error) {
	c, ok := v.(colorful.Color)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a colorful.Color", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "r":
		c.R = value
	case "g":
		c.G = value
	case "b":
		c.B = value
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return c, nil
}

// HCLAdapter handles [colorful.Color] in HCL space, with component paths
// "h", "c", "l". Interpolating hue and chroma instead of raw RGB gives
// fades that keep perceived lightness steady. Hue is interpolated
// numerically, not around the shorter arc; pick start and end hues
// accordingly.
//
// Not registered by default; it claims the same type as [ColorfulAdapter],
// so add it with [Registry.RegisterFirst]:
//
//	reg.RegisterFirst(sway.HCLAdapter{})
type HCLAdapter struct{}

// Supports reports whether v is a colorful.Color.
func (HCLAdapter) Supports(v any) bool {
	_, ok := v.(colorful.Color)
	return ok
}

// AcceptsPath reports whether v is a colorful.Color.
func (HCLAdapter) AcceptsPath(v any) bool {
	_, ok := v.(colorful.Color)
	return ok
}

// Generate converts live, start, and end to HCL and emits descriptors for
// the components that change.
func (HCLAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.(colorful.Color)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a colorful.Color", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.(colorful.Color)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not a colorful.Color", ErrTypeMismatch, typeName(req.Live))
	}
	eh, ec, el := end.Hcl()
	lh, lc, ll := live.Hcl()
	var sh, sc, sl float64
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.(colorful.Color)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not a colorful.Color", ErrTypeMismatch, typeName(req.Start))
		}
		sh, sc, sl = s.Hcl()
		hasStart = true
	}
	props := emitComponent(nil, req, "h", lh, eh, sh, hasStart)
	props = emitComponent(props, req, "c", lc, ec, sc, hasStart)
	props = emitComponent(props, req, "l", ll, el, sl, hasStart)
	return props, nil
}

// Read returns the whole color for "" and the named HCL component
// otherwise.
func (HCLAdapter) Read(v any, path string) (any, error) {
	c, ok := v.(colorful.Color)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a colorful.Color", ErrTypeMismatch, typeName(v))
	}
	if path == "" {
		return c, nil
	}
	h, ch, l := c.Hcl()
	switch path {
	case "h":
		return h, nil
	case "c":
		return ch, nil
	case "l":
		return l, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
}

// Write sets one HCL component and converts back to RGB. The result is not
// clamped into gamut, because clamping would corrupt the other components
// when several are rewritten in one tick; call [colorful.Color.Clamped]
// when rendering.
func (HCLAdapter) Write(v any, path string, value float64) (any, error) {
	c, ok := v.(colorful.Color)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a colorful.Color", ErrTypeMismatch, typeName(v))
	}
	h, ch, l := c.Hcl()
	switch path {
	case "h":
		h = value
	case "c":
		ch = value
	case "l":
		l = value
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return colorful.Hcl(h, ch, l), nil
}
