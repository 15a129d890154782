package sway

import (
	"fmt"
	"strconv"
)

// SliceAdapter handles []float64 with element indices as component paths:
// "0", "1", and so on. Start, end, and live slices must have the same
// length; elements past the end value's length are left untouched.
//
// Unlike the other built-ins, slices are reference types. Write still
// returns a fresh slice rather than mutating in place, so a binding's Set
// sees a complete replacement and captured snapshots stay stable.
type SliceAdapter struct{}

// Supports reports whether v is a []float64.
func (SliceAdapter) Supports(v any) bool {
	_, ok := v.([]float64)
	return ok
}

// AcceptsPath reports whether v is a []float64.
func (SliceAdapter) AcceptsPath(v any) bool {
	_, ok := v.([]float64)
	return ok
}

// Generate emits descriptors for the elements that change.
func (SliceAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.([]float64)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a []float64", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.([]float64)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not a []float64", ErrTypeMismatch, typeName(req.Live))
	}
	if len(live) != len(end) {
		return nil, fmt.Errorf("%w: end has %d elements, live has %d", ErrTypeMismatch, len(end), len(live))
	}
	var start []float64
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.([]float64)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not a []float64", ErrTypeMismatch, typeName(req.Start))
		}
		if len(s) != len(end) {
			return nil, fmt.Errorf("%w: start has %d elements, end has %d", ErrTypeMismatch, len(s), len(end))
		}
		start, hasStart = s, true
	}
	var props []Property
	for i := range end {
		var s float64
		if hasStart {
			s = start[i]
		}
		props = emitComponent(props, req, strconv.Itoa(i), live[i], end[i], s, hasStart)
	}
	return props, nil
}

// Read returns the whole slice for "" and the indexed element otherwise.
func (SliceAdapter) Read(v any, path string) (any, error) {
	s, ok := v.([]float64)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a []float64", ErrTypeMismatch, typeName(v))
	}
	if path == "" {
		return s, nil
	}
	i, err := strconv.Atoi(path)
	if err != nil || i < 0 || i >= len(s) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return s[i], nil
}

// Write sets one element in a copy of the slice.
func (SliceAdapter) Write(v any, path string, value float64) (any, error) {
	s, ok := v.([]float64)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a []float64", ErrTypeMismatch, typeName(v))
	}
	i, err := strconv.Atoi(path)
	if err != nil || i < 0 || i >= len(s) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	out := make([]float64, len(s))
	copy(out, s)
	out[i] = value
	return out, nil
}
