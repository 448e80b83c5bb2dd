package raster

import (
	"math"
	"sort"
	"testing"
)

type pixel struct{ x, y int }

// pixelSet records plotted pixels. A positive w/h makes it Bounded and
// drops writes outside the extent, like a real pixel buffer.
type pixelSet struct {
	w, h   int
	pixels map[pixel]RGBA
	writes int
	calls  int // including writes dropped by the extent
}

func newPixelSet() *pixelSet {
	return &pixelSet{pixels: make(map[pixel]RGBA)}
}

func newBoundedSet(w, h int) *boundedSet {
	return &boundedSet{pixelSet: pixelSet{w: w, h: h, pixels: make(map[pixel]RGBA)}}
}

func (s *pixelSet) SetPixel(x, y int, c RGBA) {
	s.calls++
	if s.w > 0 && (x < 0 || x >= s.w || y < 0 || y >= s.h) {
		return
	}
	s.writes++
	s.pixels[pixel{x, y}] = c
}

func (s *pixelSet) sorted() []pixel {
	out := make([]pixel, 0, len(s.pixels))
	for p := range s.pixels {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].y != out[j].y {
			return out[i].y < out[j].y
		}
		return out[i].x < out[j].x
	})
	return out
}

type boundedSet struct {
	pixelSet
}

func (s *boundedSet) Size() (int, int) { return s.w, s.h }

var red = RGBA{R: 255, A: 255}

func sameSet(a, b *pixelSet) bool {
	if len(a.pixels) != len(b.pixels) {
		return false
	}
	for p := range a.pixels {
		if _, ok := b.pixels[p]; !ok {
			return false
		}
	}
	return true
}

// leaks floods 4-connected from seed through pixels not in outline and
// reports whether the flood escapes the box [lo, hi].
func leaks(outline *pixelSet, seed pixel, lo, hi pixel) bool {
	if _, ok := outline.pixels[seed]; ok {
		return false
	}
	seen := map[pixel]bool{seed: true}
	stack := []pixel{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.x <= lo.x || p.y <= lo.y || p.x >= hi.x || p.y >= hi.y {
			return true
		}
		for _, n := range []pixel{{p.x + 1, p.y}, {p.x - 1, p.y}, {p.x, p.y + 1}, {p.x, p.y - 1}} {
			if seen[n] {
				continue
			}
			if _, wall := outline.pixels[n]; wall {
				continue
			}
			seen[n] = true
			stack = append(stack, n)
		}
	}
	return false
}

func TestLineSymmetry(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point
	}{
		{"shallow positive", Point{1, 2}, Point{17, 9}},
		{"shallow negative", Point{1, 9}, Point{17, 2}},
		{"steep positive", Point{2, 1}, Point{9, 17}},
		{"steep negative", Point{9, 1}, Point{2, 17}},
		{"slope exactly 1", Point{0, 0}, Point{12, 12}},
		{"slope exactly -1", Point{0, 12}, Point{12, 0}},
		{"near vertical", Point{5, 0}, Point{5.01, 30}},
		{"near horizontal", Point{0, 5}, Point{30, 5.01}},
		{"vertical", Point{4, 3}, Point{4, 20}},
		{"horizontal", Point{3, 4}, Point{20, 4}},
		{"fractional endpoints", Point{0.3, 0.7}, Point{13.6, 5.2}},
		{"negative coordinates", Point{-7.5, -3}, Point{4, 8.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab, ba := newPixelSet(), newPixelSet()
			Line(ab, tt.from, tt.to, red)
			Line(ba, tt.to, tt.from, red)
			if !sameSet(ab, ba) {
				t.Errorf("Line(A,B) = %v\nLine(B,A) = %v", ab.sorted(), ba.sorted())
			}
		})
	}
}

func TestLineEndpointsPlotted(t *testing.T) {
	segments := [][2]Point{
		{{0, 0}, {10, 3}},
		{{0.5, 0.5}, {3.9, 12.2}},
		{{10, 10}, {0, 0}},
		{{2, 9}, {2, 1}},
	}
	for _, seg := range segments {
		s := newPixelSet()
		Line(s, seg[0], seg[1], red)
		for _, p := range seg {
			px := pixel{int(math.Floor(p.X)), int(math.Floor(p.Y))}
			if _, ok := s.pixels[px]; !ok {
				t.Errorf("Line(%v, %v): endpoint pixel %v not plotted", seg[0], seg[1], px)
			}
		}
	}
}

func TestLinePixelCount(t *testing.T) {
	tests := []struct {
		from, to Point
		want     int
	}{
		{Point{0, 0}, Point{10, 0}, 11},
		{Point{0, 0}, Point{0, 10}, 11},
		{Point{0, 0}, Point{10, 10}, 11},
		{Point{0, 0}, Point{10, 4}, 11},
		{Point{0, 0}, Point{4, 10}, 11},
		{Point{3, 3}, Point{3, 3}, 1},
	}
	for _, tt := range tests {
		s := newPixelSet()
		Line(s, tt.from, tt.to, red)
		if len(s.pixels) != tt.want {
			t.Errorf("Line(%v, %v) plotted %d pixels, want %d", tt.from, tt.to, len(s.pixels), tt.want)
		}
	}
}

func TestLineDominantAxisSteps(t *testing.T) {
	// Shallow line: exactly one pixel per column.
	s := newPixelSet()
	Line(s, Point{0, 0}, Point{20, 7}, red)
	cols := map[int]int{}
	for p := range s.pixels {
		cols[p.x]++
	}
	for x := 0; x <= 20; x++ {
		if cols[x] != 1 {
			t.Errorf("column %d has %d pixels, want 1", x, cols[x])
		}
	}

	// Steep line: exactly one pixel per row.
	s = newPixelSet()
	Line(s, Point{0, 0}, Point{7, 20}, red)
	rows := map[int]int{}
	for p := range s.pixels {
		rows[p.y]++
	}
	for y := 0; y <= 20; y++ {
		if rows[y] != 1 {
			t.Errorf("row %d has %d pixels, want 1", y, rows[y])
		}
	}
}

func TestLineDegenerate(t *testing.T) {
	s := newPixelSet()
	Line(s, Point{4.7, 2.2}, Point{4.7, 2.2}, red)
	got := s.sorted()
	if len(got) != 1 || got[0] != (pixel{4, 2}) {
		t.Errorf("zero-length line plotted %v, want [{4 2}]", got)
	}
}

func TestLineNonFinite(t *testing.T) {
	s := newPixelSet()
	Line(s, Point{0, 0}, Point{math.NaN(), 5}, red)
	Line(s, Point{math.Inf(1), 0}, Point{3, 5}, red)
	if s.writes != 0 {
		t.Errorf("non-finite line wrote %d pixels, want 0", s.writes)
	}
}

func TestLineClippedToBounds(t *testing.T) {
	s := newBoundedSet(64, 48)
	Line(s, Point{-1e9, 10}, Point{1e9, 10}, red)
	if len(s.pixels) != 64 {
		t.Errorf("clipped horizontal line plotted %d pixels, want 64", len(s.pixels))
	}

	s = newBoundedSet(64, 48)
	Line(s, Point{20, -1e12}, Point{20, 1e12}, red)
	if len(s.pixels) != 48 {
		t.Errorf("clipped vertical line plotted %d pixels, want 48", len(s.pixels))
	}
}

func TestLineStrip(t *testing.T) {
	s := newPixelSet()
	LineStrip(s, []Point{{0, 0}, {5, 0}, {5, 5}}, red)
	want := 11 // 6 + 6 - shared corner
	if len(s.pixels) != want {
		t.Errorf("LineStrip plotted %d pixels, want %d", len(s.pixels), want)
	}
	if _, ok := s.pixels[pixel{0, 5}]; ok {
		t.Error("LineStrip must not close the strip")
	}

	single := newPixelSet()
	LineStrip(single, []Point{{3, 3}}, red)
	if len(single.pixels) != 1 {
		t.Errorf("single-point strip plotted %d pixels, want 1", len(single.pixels))
	}

	empty := newPixelSet()
	LineStrip(empty, nil, red)
	if empty.writes != 0 {
		t.Errorf("empty strip wrote %d pixels, want 0", empty.writes)
	}
}

func TestClosedLines(t *testing.T) {
	s := newPixelSet()
	ClosedLines(s, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, red)
	if len(s.pixels) != 40 {
		t.Errorf("closed square plotted %d pixels, want 40", len(s.pixels))
	}
	for y := 0; y <= 10; y++ {
		if _, ok := s.pixels[pixel{0, y}]; !ok {
			t.Errorf("closing edge missing pixel (0, %d)", y)
		}
	}
}

func TestRectOutlineClosed(t *testing.T) {
	s := newPixelSet()
	Rect(s, [4]Point{{2.5, 3.5}, {30.25, 3.5}, {30.25, 17.75}, {2.5, 17.75}}, red)
	if leaks(s, pixel{15, 10}, pixel{-5, -5}, pixel{40, 30}) {
		t.Error("fill escaped the rectangle outline")
	}
}

func TestPolygonOutlineClosed(t *testing.T) {
	points := []Point{{10.2, 2.7}, {38.9, 14.1}, {30.4, 39.6}, {4.3, 29.8}}
	s := newPixelSet()
	ClosedLines(s, points, red)
	if leaks(s, pixel{20, 20}, pixel{-5, -5}, pixel{50, 50}) {
		t.Error("fill escaped the quadrilateral outline")
	}
}
