// Package raster plots aliased lines and conics one pixel at a time.
//
// Plotting never blends: every emitted pixel carries exactly the requested
// color, so the output is usable as a sentinel border for the fill
// algorithms in internal/fill. Coordinates are quantized with floor, so the
// pixel (x, y) covers [x, x+1) × [y, y+1).
package raster

import "math"

// Point is a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A uint8
}

// Target receives plotted pixels. The same plotting code drives both a
// vertex accumulator and a pixel buffer.
type Target interface {
	SetPixel(x, y int, c RGBA)
}

// Bounded is implemented by targets with a finite pixel extent. Plotters
// skip the parts of a primitive that fall outside [0, w) × [0, h), which
// keeps huge coordinates from turning into huge loops.
type Bounded interface {
	Size() (width, height int)
}

// plot quantizes p to the pixel grid and forwards it to t.
func plot(t Target, x, y float64, c RGBA) {
	t.SetPixel(int(math.Floor(x)), int(math.Floor(y)), c)
}

// finite reports whether every coordinate is neither NaN nor infinite.
func finite(points ...Point) bool {
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// extent returns the size of t along one axis, or -1 when t is unbounded.
func extent(t Target, vertical bool) int {
	b, ok := t.(Bounded)
	if !ok {
		return -1
	}
	w, h := b.Size()
	if vertical {
		return h
	}
	return w
}
