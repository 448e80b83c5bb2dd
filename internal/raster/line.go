package raster

import "math"

// Line plots the segment from → to with a DDA stepper.
//
// When |slope| > 1 the loop runs over whole-pixel steps in y and advances x
// by 1/slope per step; otherwise it runs over x and advances y by slope.
// The loop always starts at the endpoint with the smaller dominant
// coordinate, so Line(a, b) and Line(b, a) emit the same pixels. The far
// endpoint is always plotted, which keeps consecutive segments of a strip
// connected when vertices sit between pixel centers.
//
// A zero-length segment plots the single pixel at from.
func Line(t Target, from, to Point, c RGBA) {
	if !finite(from, to) {
		return
	}

	dx := to.X - from.X
	dy := to.Y - from.Y

	switch {
	case dx == 0 && dy == 0:
		plot(t, from.X, from.Y, c)
		return
	case dx == 0:
		// Vertical: the slope is undefined, step y with constant x.
		lo, hi := orderBy(from, to, true)
		walk(lo.Y, hi.Y, extent(t, true), func(i float64) {
			plot(t, lo.X, lo.Y+i, c)
		})
		plot(t, hi.X, hi.Y, c)
		return
	}

	// dx != 0 here; a horizontal segment simply has slope 0.
	slope := dy / dx
	if math.Abs(slope) > 1 {
		lo, hi := orderBy(from, to, true)
		inv := 1 / slope
		walk(lo.Y, hi.Y, extent(t, true), func(i float64) {
			plot(t, lo.X+i*inv, lo.Y+i, c)
		})
		plot(t, hi.X, hi.Y, c)
		return
	}

	lo, hi := orderBy(from, to, false)
	walk(lo.X, hi.X, extent(t, false), func(i float64) {
		plot(t, lo.X+i, lo.Y+i*slope, c)
	})
	plot(t, hi.X, hi.Y, c)
}

// LineStrip plots a line between each adjacent pair of points, in order,
// without closing the strip.
func LineStrip(t Target, points []Point, c RGBA) {
	if len(points) == 1 {
		plot(t, points[0].X, points[0].Y, c)
		return
	}
	for i := 1; i < len(points); i++ {
		Line(t, points[i-1], points[i], c)
	}
}

// ClosedLines plots a strip plus the closing segment from the last point
// back to the first.
func ClosedLines(t Target, points []Point, c RGBA) {
	LineStrip(t, points, c)
	if len(points) > 2 {
		Line(t, points[len(points)-1], points[0], c)
	}
}

// Rect plots the closed outline through four corners.
func Rect(t Target, corners [4]Point, c RGBA) {
	ClosedLines(t, corners[:], c)
}

// orderBy returns a and b sorted by y (vertical) or by x.
func orderBy(a, b Point, vertical bool) (lo, hi Point) {
	if vertical {
		if b.Y < a.Y {
			return b, a
		}
		return a, b
	}
	if b.X < a.X {
		return b, a
	}
	return a, b
}

// walk calls step for every whole-pixel offset i >= 0 with lo+i < hi; the
// caller plots hi itself so the endpoint is exact. When size is
// non-negative, offsets whose pixel floor(lo+i) lies outside [0, size) are
// skipped without being visited.
func walk(lo, hi float64, size int, step func(i float64)) {
	n := math.Ceil(hi-lo) - 1
	first := 0.0
	if size >= 0 {
		first = math.Max(0, math.Ceil(-lo))
		n = math.Min(n, math.Ceil(float64(size)-lo)-1)
	}
	for i := first; i <= n; i++ {
		if lo+i >= hi {
			break
		}
		step(i)
	}
}

// Points plots every point as a single pixel.
func Points(t Target, points []Point, c RGBA) {
	for _, p := range points {
		if finite(p) {
			plot(t, p.X, p.Y, c)
		}
	}
}
