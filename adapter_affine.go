package sway

import "fmt"

// Affine is a 2D affine matrix in column-major [a, b, c, d, tx, ty] layout:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// It is the dependency-free counterpart to [ebiten.GeoM] for callers that
// animate transforms outside a rendering context.
type Affine [6]float64

// AffineIdentity is the identity transform.
var AffineIdentity = Affine{1, 0, 0, 1, 0, 0}

// Mul returns the product m * n, applying n first.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Invert returns the inverse transform, or the identity if m is singular.
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return AffineIdentity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// affinePaths maps component paths to indices in the matrix layout.
var affinePaths = map[string]int{
	"a": 0, "b": 1, "c": 2, "d": 3, "tx": 4, "ty": 5,
}

// affinePathOrder is the generation order for descriptors.
var affinePathOrder = [6]string{"a", "b", "c", "d", "tx", "ty"}

// AffineAdapter handles [Affine] with component paths "a", "b", "c", "d",
// "tx", "ty". Animating all six cells between two transforms interpolates
// them cell-wise, which is the standard behavior for affine tweens; callers
// wanting rotation-aware blending should animate an angle and rebuild the
// matrix per tick instead.
type AffineAdapter struct{}

// Supports reports whether v is an Affine.
func (AffineAdapter) Supports(v any) bool {
	_, ok := v.(Affine)
	return ok
}

// AcceptsPath reports whether v is an Affine.
func (AffineAdapter) AcceptsPath(v any) bool {
	_, ok := v.(Affine)
	return ok
}

// Generate emits descriptors for the matrix cells that change.
func (AffineAdapter) Generate(req PropertyRequest) ([]Property, error) {
	end, ok := req.End.(Affine)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an Affine", ErrTypeMismatch, typeName(req.End))
	}
	live, ok := req.Live.(Affine)
	if !ok {
		return nil, fmt.Errorf("%w: live value %s is not an Affine", ErrTypeMismatch, typeName(req.Live))
	}
	var start Affine
	hasStart := false
	if req.Start != nil {
		s, ok := req.Start.(Affine)
		if !ok {
			return nil, fmt.Errorf("%w: start value %s is not an Affine", ErrTypeMismatch, typeName(req.Start))
		}
		start, hasStart = s, true
	}
	var props []Property
	for _, path := range affinePathOrder {
		i := affinePaths[path]
		props = emitComponent(props, req, path, live[i], end[i], start[i], hasStart)
	}
	return props, nil
}

// Read returns the whole matrix for "" and the named cell otherwise.
func (AffineAdapter) Read(v any, path string) (any, error) {
	m, ok := v.(Affine)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an Affine", ErrTypeMismatch, typeName(v))
	}
	if path == "" {
		return m, nil
	}
	i, ok := affinePaths[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return m[i], nil
}

// Write sets one cell in a copy of the matrix.
func (AffineAdapter) Write(v any, path string, value float64) (any, error) {
	m, ok := v.(Affine)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an Affine", ErrTypeMismatch, typeName(v))
	}
	i, ok := affinePaths[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	m[i] = value
	return m, nil
}
