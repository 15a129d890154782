package sway

import "fmt"

// RectangleAdapter handles [Rect], decomposed as two nested vectors: the
// interior path "origin" addresses (X, Y) and "size" addresses (Width,
// Height), giving leaf paths "origin.x", "origin.y", "size.x", "size.y".
type RectangleAdapter struct{}

// Supports reports whether v is a Rect.
func (RectangleAdapter) Supports(v any) bool {
	_, ok := v.(Rect)
	return ok
}

// AcceptsPath reports whether v is a Rect.
func (RectangleAdapter) AcceptsPath(v any) bool {
	_, ok := v.(Rect)
	return ok
}

// Generate builds synthetic vector requests for the origin and size
// sub-paths, delegates to the point logic, and rewrites the resulting
// descriptor paths to be relative to the rectangle.
func (RectangleAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.(Rect)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a Rect", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.(Rect)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not a Rect", ErrTypeMismatch, typeName(req.Live))
	}
	var start Rect
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.(Rect)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not a Rect", ErrTypeMismatch, typeName(req.Start))
		}
		start, hasStart = s, true
	}

	var props []Property
	delegate := func(path string, liveSub, endSub, startSub Vec2) error {
		sub := PropertyRequest{
			Live:      liveSub,
			End:       endSub,
			Additive:  req.Additive,
			Weighting: req.Weighting,
		}
		if hasStart {
			sub.Start = startSub
		}
		ps, err := PointAdapter{}.Generate(sub)
		if err != nil {
			return err
		}
		for i := range ps {
			ps[i].Path = joinPath(path, ps[i].Path)
		}
		props = append(props, ps...)
		return nil
	}
	if err := delegate("origin",
		Vec2{live.X, live.Y}, Vec2{end.X, end.Y}, Vec2{start.X, start.Y}); err != nil {
		return nil, err
	}
	if err := delegate("size",
		Vec2{live.Width, live.Height}, Vec2{end.Width, end.Height}, Vec2{start.Width, start.Height}); err != nil {
		return nil, err
	}
	return props, nil
}

// Read resolves interior paths to vectors and leaf paths to scalars.
func (RectangleAdapter) Read(v any, path string) (any, error) {
	r, ok := v.(Rect)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a Rect", ErrTypeMismatch, typeName(v))
	}
	if path == "" {
		return r, nil
	}
	head, rest := splitPath(path)
	var sub Vec2
	switch head {
	case "origin":
		sub = Vec2{r.X, r.Y}
	case "size":
		sub = Vec2{r.Width, r.Height}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return PointAdapter{}.Read(sub, rest)
}

// Write sets one leaf in a copy of the rectangle.
func (RectangleAdapter) Write(v any, path string, value float64) (any, error) {
	r, ok := v.(Rect)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a Rect", ErrTypeMismatch, typeName(v))
	}
	switch path {
	case "origin.x":
		r.X = value
	case "origin.y":
		r.Y = value
	case "size.x":
		r.Width = value
	case "size.y":
		r.Height = value
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return r, nil
}
