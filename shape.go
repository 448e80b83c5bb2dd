package zenith

import (
	"fmt"
	"math"
)

// Shape is one of Circle, Ellipse, Rect, Triangle or Polygon.
//
// The set is closed: the transform functions and Draw/Fill switch over
// these five types and nothing else.
type Shape interface {
	isShape()
}

func (Circle) isShape()   {}
func (Ellipse) isShape()  {}
func (Rect) isShape()     {}
func (Triangle) isShape() {}
func (Polygon) isShape()  {}

// Translate returns s moved by d.
func Translate(s Shape, d Vec2) Shape {
	switch s := s.(type) {
	case Circle:
		s.Center = s.Center.Add(d)
		return s
	case Ellipse:
		s.Center = s.Center.Add(d)
		return s
	case Rect:
		s.Position = s.Position.Add(d)
		return s
	case Triangle:
		return Triangle{A: s.A.Add(d), B: s.B.Add(d), C: s.C.Add(d)}
	case Polygon:
		return Polygon{Points: mapPoints(s.Points, func(p Point) Point { return p.Add(d) })}
	}
	panic(fmt.Sprintf("zenith: unknown shape %T", s))
}

// Rotate returns s rotated by angle radians around origin.
//
// Circles keep their type. A Rect becomes a Polygon of its rotated
// corners. An Ellipse rotated by a multiple of π/2 stays an Ellipse (with
// swapped radii for odd multiples); any other angle turns it into a
// sampled Polygon.
func Rotate(s Shape, angle float64, origin Point) Shape {
	rot := func(p Point) Point { return p.RotateAround(angle, origin) }
	switch s := s.(type) {
	case Circle:
		s.Center = rot(s.Center)
		return s
	case Ellipse:
		quarter := angle / (math.Pi / 2)
		if k := math.Round(quarter); math.Abs(quarter-k) < 1e-9 {
			s.Center = rot(s.Center)
			if int64(k)%2 != 0 {
				s.RadiusX, s.RadiusY = s.RadiusY, s.RadiusX
			}
			return s
		}
		return Polygon{Points: mapPoints(sampleEllipse(s), rot)}
	case Rect:
		corners := s.Corners()
		return Polygon{Points: mapPoints(corners[:], rot)}
	case Triangle:
		return Triangle{A: rot(s.A), B: rot(s.B), C: rot(s.C)}
	case Polygon:
		return Polygon{Points: mapPoints(s.Points, rot)}
	}
	panic(fmt.Sprintf("zenith: unknown shape %T", s))
}

// Scale returns s scaled by factor around origin.
//
// A Circle scaled unevenly becomes an Ellipse. Radii and rect sizes use the
// absolute factor, so mirrored shapes stay well formed.
func Scale(s Shape, factor Vec2, origin Point) Shape {
	sc := func(p Point) Point { return p.ScaleAround(factor, origin) }
	fx, fy := math.Abs(factor.X), math.Abs(factor.Y)
	switch s := s.(type) {
	case Circle:
		if fx == fy {
			return Circle{Center: sc(s.Center), Radius: s.Radius * fx}
		}
		return Ellipse{Center: sc(s.Center), RadiusX: s.Radius * fx, RadiusY: s.Radius * fy}
	case Ellipse:
		return Ellipse{Center: sc(s.Center), RadiusX: s.RadiusX * fx, RadiusY: s.RadiusY * fy}
	case Rect:
		a, b := sc(s.Min()), sc(s.Max())
		lo := Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
		hi := Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
		return Rect{Position: lo, Size: hi.Sub(lo)}
	case Triangle:
		return Triangle{A: sc(s.A), B: sc(s.B), C: sc(s.C)}
	case Polygon:
		return Polygon{Points: mapPoints(s.Points, sc)}
	}
	panic(fmt.Sprintf("zenith: unknown shape %T", s))
}

// Bounds returns the axis-aligned bounding box of s. An empty polygon has
// empty bounds at the origin.
func Bounds(s Shape) Rect {
	switch s := s.(type) {
	case Circle:
		return R(s.Center.X-s.Radius, s.Center.Y-s.Radius, 2*s.Radius, 2*s.Radius)
	case Ellipse:
		return R(s.Center.X-s.RadiusX, s.Center.Y-s.RadiusY, 2*s.RadiusX, 2*s.RadiusY)
	case Rect:
		lo, hi := s.Min(), s.Max()
		return Rect{Position: lo, Size: hi.Sub(lo)}
	case Triangle:
		vs := s.Vertices()
		return boundsOf(vs[:])
	case Polygon:
		return boundsOf(s.Points)
	}
	panic(fmt.Sprintf("zenith: unknown shape %T", s))
}

// Draw draws the outline of s.
func Draw(r *Renderer, s Shape, c Color) error {
	switch s := s.(type) {
	case Circle:
		return r.DrawCircle(s, c)
	case Ellipse:
		return r.DrawEllipse(s, c)
	case Rect:
		return r.DrawRect(s, c)
	case Triangle:
		return r.DrawTriangle(s, c)
	case Polygon:
		return r.DrawPolygon(s.Points, c)
	}
	return fmt.Errorf("zenith: unknown shape %T", s)
}

// Fill draws s filled.
func Fill(r *Renderer, s Shape, c Color) error {
	switch s := s.(type) {
	case Circle:
		return r.FillCircle(s, c)
	case Ellipse:
		return r.FillEllipse(s, c)
	case Rect:
		return r.FillRect(s, c)
	case Triangle:
		return r.FillTriangle(s, c)
	case Polygon:
		return r.FillPolygon(s.Points, c)
	}
	return fmt.Errorf("zenith: unknown shape %T", s)
}

func mapPoints(points []Point, fn func(Point) Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = fn(p)
	}
	return out
}

func boundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = Point{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y)}
		hi = Point{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y)}
	}
	return Rect{Position: lo, Size: hi.Sub(lo)}
}

// sampleEllipse approximates e by a polygon with one vertex every few
// pixels of arc, between 16 and 256 vertices.
func sampleEllipse(e Ellipse) []Point {
	n := int(math.Ceil(math.Pi * math.Max(e.RadiusX, e.RadiusY) / 2))
	n = min(max(n, 16), 256)
	points := make([]Point, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{
			X: e.Center.X + e.RadiusX*math.Cos(a),
			Y: e.Center.Y + e.RadiusY*math.Sin(a),
		}
	}
	return points
}
