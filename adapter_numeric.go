package sway

import (
	"fmt"
	"math"
)

// NumericAdapter handles bare numeric leaves: float64, float32, int, int64,
// int32, and uint8. It is the catch-all registered last in the default
// dispatch order. Writes preserve the live value's type; integer targets
// receive the interpolated value rounded to nearest.
type NumericAdapter struct{}

// Supports reports whether v is one of the handled numeric types.
func (NumericAdapter) Supports(v any) bool {
	_, ok := toScalar(v)
	return ok
}

// AcceptsPath returns false: numbers have no components.
func (NumericAdapter) AcceptsPath(any) bool { return false }

// Generate emits at most one descriptor with an empty path.
func (NumericAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := toScalar(req.End)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not numeric", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := toScalar(req.Live)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not numeric", ErrTypeMismatch, typeName(req.Live))
	}
	var start float64
	hasStart := false
	if req.Start != nil {
		s, ok := toScalar(req.Start)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not numeric", ErrTypeMismatch, typeName(req.Start))
		}
		start, hasStart = s, true
	}
	return emitComponent(nil, req, "", live, end, start, hasStart), nil
}

// Read returns the value itself as a float64; no paths exist.
func (NumericAdapter) Read(v any, path string) (any, error) {
	if path != "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	f, ok := toScalar(v)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not numeric", ErrTypeMismatch, typeName(v))
	}
	return f, nil
}

// Write returns value converted back to v's type.
func (NumericAdapter) Write(v any, path string, value float64) (any, error) {
	if path != "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	switch v.(type) {
	case float64:
		return value, nil
	case float32:
		return float32(value), nil
	case int:
		return int(math.Round(value)), nil
	case int64:
		return int64(math.Round(value)), nil
	case int32:
		return int32(math.Round(value)), nil
	case uint8:
		return clampByte(value), nil
	}
	return nil, fmt.Errorf("%w: %s is not numeric", ErrTypeMismatch, typeName(v))
}
