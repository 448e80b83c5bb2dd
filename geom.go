package zenith

import "math"

// Line is a segment between two points.
type Line struct {
	From, To Point
}

// Ln is a convenience function to create a Line.
func Ln(x0, y0, x1, y1 float64) Line {
	return Line{From: Pt(x0, y0), To: Pt(x1, y1)}
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.From.Distance(l.To)
}

// Midpoint returns the point halfway between From and To.
func (l Line) Midpoint() Point {
	return l.From.Lerp(l.To, 0.5)
}

// Reversed returns the segment with its endpoints swapped.
func (l Line) Reversed() Line {
	return Line{From: l.To, To: l.From}
}

// Intersects reports whether two closed segments share at least one point.
// Touching at an endpoint and collinear overlap both count.
func (l Line) Intersects(m Line) bool {
	o1 := orientation(l.From, l.To, m.From)
	o2 := orientation(l.From, l.To, m.To)
	o3 := orientation(m.From, m.To, l.From)
	o4 := orientation(m.From, m.To, l.To)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear cases.
	switch {
	case o1 == 0 && onSegment(l.From, l.To, m.From):
		return true
	case o2 == 0 && onSegment(l.From, l.To, m.To):
		return true
	case o3 == 0 && onSegment(m.From, m.To, l.From):
		return true
	case o4 == 0 && onSegment(m.From, m.To, l.To):
		return true
	}
	return false
}

// orientation returns the sign of the turn a → b → c:
// 1 for counter-clockwise in a Y-up frame, -1 for clockwise, 0 for collinear.
func orientation(a, b, c Point) int {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether p, known to be collinear with a and b, lies
// within the bounding box of segment ab.
func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Position Point
	Size     Vec2
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{Position: Pt(x, y), Size: Pt(w, h)}
}

// Corners returns the four corners in a fixed winding order:
// top-left, top-right, bottom-right, bottom-left.
func (r Rect) Corners() [4]Point {
	p, s := r.Position, r.Size
	return [4]Point{
		p,
		{X: p.X + s.X, Y: p.Y},
		{X: p.X + s.X, Y: p.Y + s.Y},
		{X: p.X, Y: p.Y + s.Y},
	}
}

// Center returns the midpoint of the diagonal.
func (r Rect) Center() Point {
	return r.Position.Add(r.Position.Add(r.Size)).Div(2)
}

// Min returns the corner with the smallest coordinates, accounting for
// negative sizes.
func (r Rect) Min() Point {
	return Point{
		X: math.Min(r.Position.X, r.Position.X+r.Size.X),
		Y: math.Min(r.Position.Y, r.Position.Y+r.Size.Y),
	}
}

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Point {
	return Point{
		X: math.Max(r.Position.X, r.Position.X+r.Size.X),
		Y: math.Max(r.Position.Y, r.Position.Y+r.Size.Y),
	}
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Size.X == 0 || r.Size.Y == 0
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Point) bool {
	lo, hi := r.Min(), r.Max()
	return lo.X <= p.X && p.X <= hi.X && lo.Y <= p.Y && p.Y <= hi.Y
}

// Intersects reports whether two rectangles overlap or touch.
func (r Rect) Intersects(s Rect) bool {
	a0, a1 := r.Min(), r.Max()
	b0, b1 := s.Min(), s.Max()
	return a0.X <= b1.X && b0.X <= a1.X && a0.Y <= b1.Y && b0.Y <= a1.Y
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	a0, a1 := r.Min(), r.Max()
	b0, b1 := s.Min(), s.Max()
	lo := Point{X: math.Min(a0.X, b0.X), Y: math.Min(a0.Y, b0.Y)}
	hi := Point{X: math.Max(a1.X, b1.X), Y: math.Max(a1.Y, b1.Y)}
	return Rect{Position: lo, Size: hi.Sub(lo)}
}

// Circle is given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies inside the circle or on its border.
func (c Circle) Contains(p Point) bool {
	d := p.Sub(c.Center)
	return d.Dot(d) <= c.Radius*c.Radius
}

// Intersects reports whether two circles overlap or touch.
func (c Circle) Intersects(o Circle) bool {
	return c.Center.Distance(o.Center) <= c.Radius+o.Radius
}

// IntersectsRect reports whether the circle overlaps the rectangle.
func (c Circle) IntersectsRect(r Rect) bool {
	lo, hi := r.Min(), r.Max()
	nearest := Point{
		X: math.Max(lo.X, math.Min(c.Center.X, hi.X)),
		Y: math.Max(lo.Y, math.Min(c.Center.Y, hi.Y)),
	}
	return c.Contains(nearest)
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center           Point
	RadiusX, RadiusY float64
}

// Contains reports whether p lies inside the ellipse or on its border.
func (e Ellipse) Contains(p Point) bool {
	if e.RadiusX <= 0 || e.RadiusY <= 0 {
		return false
	}
	dx := (p.X - e.Center.X) / e.RadiusX
	dy := (p.Y - e.Center.Y) / e.RadiusY
	return dx*dx+dy*dy <= 1
}

// Triangle is given by its three vertices.
type Triangle struct {
	A, B, C Point
}

// Vertices returns the vertices in declaration order.
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Edges returns the three edges A→B, B→C, C→A.
func (t Triangle) Edges() [3]Line {
	return [3]Line{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// Contains reports whether p lies inside the triangle or on its border,
// for either winding.
func (t Triangle) Contains(p Point) bool {
	d1 := orientation(t.A, t.B, p)
	d2 := orientation(t.B, t.C, p)
	d3 := orientation(t.C, t.A, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Intersects reports whether two triangles overlap or touch.
func (t Triangle) Intersects(o Triangle) bool {
	for _, e := range t.Edges() {
		for _, f := range o.Edges() {
			if e.Intersects(f) {
				return true
			}
		}
	}
	return t.Contains(o.A) || o.Contains(t.A)
}

// Polygon is an implicitly closed sequence of vertices.
type Polygon struct {
	Points []Point
}

// Edges returns the polygon edges including the closing edge.
func (p Polygon) Edges() []Line {
	return pointsToEdges(p.Points)
}

// pointsToEdges connects consecutive points and closes the loop.
func pointsToEdges(points []Point) []Line {
	n := len(points)
	if n < 2 {
		return nil
	}
	edges := make([]Line, n)
	for i := range points {
		edges[i] = Line{From: points[i], To: points[(i+1)%n]}
	}
	return edges
}
