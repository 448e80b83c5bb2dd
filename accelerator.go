package zenith

import "errors"

// ErrFallbackToSoftware indicates a VectorBackend cannot handle this shape.
// The renderer transparently draws it with the software rasterizer instead.
var ErrFallbackToSoftware = errors.New("zenith: falling back to software rendering")

// VectorBackend is an optional Backend capability: native (hardware) shape
// drawing, used when the renderer runs in Hardware mode.
//
// Any method may return ErrFallbackToSoftware for input it does not
// support. A Backend without this capability makes Hardware mode log a
// warning once and draw everything in software.
type VectorBackend interface {
	Backend

	// StrokePolyline draws the segments through points, closing the loop
	// back to points[0] when closed is set.
	StrokePolyline(points []Point, closed bool, c Color) error

	// FillConvex fills the convex polygon through points.
	FillConvex(points []Point, c Color) error

	// StrokeEllipse draws the outline of e. Circles arrive with equal radii.
	StrokeEllipse(e Ellipse, c Color) error

	// FillEllipse fills e.
	FillEllipse(e Ellipse, c Color) error
}

// asVector returns b as a VectorBackend when it has that capability.
func asVector(b Backend) (VectorBackend, bool) {
	v, ok := b.(VectorBackend)
	return v, ok
}

// isFallback reports whether err asks for the software path.
func isFallback(err error) bool {
	return errors.Is(err, ErrFallbackToSoftware)
}
