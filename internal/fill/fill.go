// Package fill implements seed fills over an RGBA pixel grid.
//
// Both algorithms flood 4-connected from a seed using an explicit stack and
// compare colors by exact channel match. The outline they stop at must be a
// closed curve in one pure color: a single missing pixel lets the fill
// escape, and nothing here tries to detect that.
//
// Only pixels strictly inside the buffer are ever visited: row 0, column 0,
// the last row and the last column are never written. A seed on that outer
// ring fills nothing.
package fill

import "github.com/kosmit147/zenith2d/internal/raster"

// RGBA is the pixel color type shared with the plotters.
type RGBA = raster.RGBA

// Buffer is the pixel grid a fill reads and writes.
type Buffer interface {
	Size() (width, height int)
	Pixel(x, y int) RGBA
	SetPixel(x, y int, c RGBA)
}

// Algorithm selects the continuation rule of a fill.
type Algorithm int

const (
	// Boundary continues through every pixel that is not the border color.
	Boundary Algorithm = iota

	// Flood continues only through pixels of the background color.
	Flood
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Boundary:
		return "Boundary"
	case Flood:
		return "Flood"
	default:
		return "Unknown"
	}
}

type pixel struct{ x, y int }

// Filler runs fills and keeps its stack between calls so repeated fills of
// similar size do not reallocate. A Filler is not safe for concurrent use.
type Filler struct {
	stack []pixel
}

// Boundary fills from (x, y) until pixels of the border color, and returns
// the number of pixels written. Pixels that already hold the fill color are
// skipped, so a second identical call writes nothing.
func (f *Filler) Boundary(b Buffer, x, y int, border, fill RGBA) int {
	return f.run(b, x, y, func(c RGBA) bool {
		return c != fill && c != border
	}, fill)
}

// Flood fills from (x, y) through pixels that exactly match background, and
// returns the number of pixels written. When fill equals background nothing
// is written.
func (f *Filler) Flood(b Buffer, x, y int, fill, background RGBA) int {
	if fill == background {
		return 0
	}
	return f.run(b, x, y, func(c RGBA) bool {
		return c == background
	}, fill)
}

func (f *Filler) run(b Buffer, x, y int, open func(RGBA) bool, fill RGBA) int {
	w, h := b.Size()
	inside := func(x, y int) bool {
		return x > 0 && x < w-1 && y > 0 && y < h-1
	}
	if !inside(x, y) {
		return 0
	}

	written := 0
	stack := append(f.stack[:0], pixel{x, y})
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A pixel can be pushed by several neighbors before it is filled.
		if !open(b.Pixel(p.x, p.y)) {
			continue
		}
		b.SetPixel(p.x, p.y, fill)
		written++

		for _, n := range [4]pixel{{p.x + 1, p.y}, {p.x - 1, p.y}, {p.x, p.y + 1}, {p.x, p.y - 1}} {
			if inside(n.x, n.y) && open(b.Pixel(n.x, n.y)) {
				stack = append(stack, n)
			}
		}
	}
	f.stack = stack
	return written
}

// BoundaryFill is Filler.Boundary with a throwaway stack.
func BoundaryFill(b Buffer, x, y int, border, fill RGBA) int {
	var f Filler
	return f.Boundary(b, x, y, border, fill)
}

// FloodFill is Filler.Flood with a throwaway stack.
func FloodFill(b Buffer, x, y int, fill, background RGBA) int {
	var f Filler
	return f.Flood(b, x, y, fill, background)
}
