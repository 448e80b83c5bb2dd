package zenith

import (
	"errors"
	"fmt"
)

// Polygon validation errors. Every specific reason wraps ErrInvalidPolygon.
var (
	// ErrInvalidPolygon is returned for polygons the renderer refuses to draw.
	ErrInvalidPolygon = errors.New("zenith: invalid polygon")

	// ErrTooFewVertices is returned for polygons with fewer than 3 distinct edges.
	ErrTooFewVertices = fmt.Errorf("%w: fewer than 3 vertices", ErrInvalidPolygon)

	// ErrSelfIntersecting is returned when two edges cross or touch anywhere
	// other than at a shared endpoint.
	ErrSelfIntersecting = fmt.Errorf("%w: edges intersect", ErrInvalidPolygon)

	// ErrNotChained is returned when a segment does not start where the
	// previous one ended.
	ErrNotChained = fmt.Errorf("%w: segments are not chained", ErrInvalidPolygon)

	// ErrNotClosed is returned when the last segment does not end where the
	// first one starts.
	ErrNotClosed = fmt.Errorf("%w: segments are not closed", ErrInvalidPolygon)
)

// ValidatePoints checks that points describe a simple polygon.
// The polygon is implicitly closed from the last point back to the first.
// The check compares every pair of edges, O(n²).
func ValidatePoints(points []Point) error {
	if len(points) < 3 {
		return ErrTooFewVertices
	}
	return validateEdges(pointsToEdges(points))
}

// ValidateLines checks that lines form a closed chain describing a simple
// polygon: lines[i].To == lines[i+1].From and the last line ends at the
// first line's start.
func ValidateLines(lines []Line) error {
	if len(lines) < 3 {
		return ErrTooFewVertices
	}
	for i := 0; i < len(lines)-1; i++ {
		if lines[i].To != lines[i+1].From {
			return fmt.Errorf("%w: segment %d ends at %v, segment %d starts at %v",
				ErrNotChained, i, lines[i].To, i+1, lines[i+1].From)
		}
	}
	if last := lines[len(lines)-1]; last.To != lines[0].From {
		return fmt.Errorf("%w: last segment ends at %v, first starts at %v",
			ErrNotClosed, last.To, lines[0].From)
	}
	return validateEdges(lines)
}

// PointsFormValidPolygon reports whether ValidatePoints accepts points.
func PointsFormValidPolygon(points []Point) bool {
	return ValidatePoints(points) == nil
}

// LinesFormValidPolygon reports whether ValidateLines accepts lines.
func LinesFormValidPolygon(lines []Line) bool {
	return ValidateLines(lines) == nil
}

// validateEdges runs the pairwise intersection test on a closed edge loop.
// Adjacent edges may only meet at their shared vertex; all other pairs must
// be disjoint.
func validateEdges(edges []Line) error {
	n := len(edges)
	for i := 0; i < n; i++ {
		if edges[i].From == edges[i].To {
			return fmt.Errorf("%w: edge %d has zero length", ErrTooFewVertices, i)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := edges[i], edges[j]
			switch {
			case j == i+1:
				// b starts where a ends.
				if foldsBack(a, b) {
					return fmt.Errorf("%w: edges %d and %d overlap", ErrSelfIntersecting, i, j)
				}
			case i == 0 && j == n-1:
				// a starts where b ends.
				if foldsBack(b, a) {
					return fmt.Errorf("%w: edges %d and %d overlap", ErrSelfIntersecting, j, i)
				}
			default:
				if a.Intersects(b) {
					return fmt.Errorf("%w: edges %d and %d", ErrSelfIntersecting, i, j)
				}
			}
		}
	}
	return nil
}

// foldsBack reports whether b, which starts at a.To, runs back along a.
func foldsBack(a, b Line) bool {
	back := a.From.Sub(a.To)
	fwd := b.To.Sub(b.From)
	return back.Cross(fwd) == 0 && back.Dot(fwd) > 0
}
