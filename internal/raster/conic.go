package raster

import (
	"math"
	"sort"
)

// maxSamples bounds the per-octant sample count. Radii large enough to
// exceed it cannot be stepped at one-pixel spacing in float64 anyway, and
// plot nothing.
const maxSamples = 1 << 40

// Circle plots a circle outline by sampling one octant and mirroring it
// eight ways: (cx±x, cy±y) and (cx±y, cy±x).
//
// The angle advances by 1/radius, which keeps neighboring samples about one
// pixel apart; the step is clamped to 1 radian for radii below 1. The
// sample count is computed up front as ⌈(π/4)/step⌉ rather than by
// comparing an accumulated float angle against π/4, and the final sample
// is pinned to exactly π/4 so the octants meet.
//
// On a Bounded target only the samples with at least one mirror inside the
// target are visited, so the work follows the visible arc length rather
// than the radius.
//
// A radius that is not positive (or NaN) plots nothing.
func Circle(t Target, center Point, radius float64, c RGBA) {
	if !(radius > 0) || math.IsInf(radius, 0) || !finite(center) {
		return
	}

	const octant = math.Pi / 4
	step := math.Min(1/radius, 1)
	if octant/step > maxSamples {
		return
	}
	n := int(math.Ceil(octant / step))

	sample := func(i int) (x, y float64) {
		angle := math.Min(float64(i)*step, octant)
		return radius * math.Cos(angle), radius * math.Sin(angle)
	}
	mirrors := []mirror{
		{1, 1, false}, {-1, 1, false}, {1, -1, false}, {-1, -1, false},
		{1, 1, true}, {-1, 1, true}, {1, -1, true}, {-1, -1, true},
	}

	for _, r := range visibleRanges(t, center, n, sample, mirrors) {
		for i := r.lo; i <= r.hi; i++ {
			x, y := sample(i)
			plot(t, center.X+x, center.Y+y, c)
			plot(t, center.X-x, center.Y+y, c)
			plot(t, center.X+x, center.Y-y, c)
			plot(t, center.X-x, center.Y-y, c)
			plot(t, center.X+y, center.Y+x, c)
			plot(t, center.X-y, center.Y+x, c)
			plot(t, center.X+y, center.Y-x, c)
			plot(t, center.X-y, center.Y-x, c)
		}
	}
}

// Ellipse plots an axis-aligned ellipse outline by sampling one quadrant
// and mirroring it four ways: (cx±x, cy±y) with x = rx·cos(θ), y = ry·sin(θ).
//
// The angle advances by 1/max(rx, ry), clamped to 1 radian. Sampling covers
// [0, π/2) plus a closing sample at exactly π/2 so the quadrants meet on
// the vertical axis. Bounded targets are culled as in Circle.
//
// Either radius being non-positive (or NaN) plots nothing.
func Ellipse(t Target, center Point, rx, ry float64, c RGBA) {
	if !(rx > 0) || !(ry > 0) || math.IsInf(rx, 0) || math.IsInf(ry, 0) || !finite(center) {
		return
	}

	const quadrant = math.Pi / 2
	step := math.Min(1/math.Max(rx, ry), 1)
	if quadrant/step > maxSamples {
		return
	}
	n := int(math.Ceil(quadrant / step))

	sample := func(i int) (x, y float64) {
		angle := math.Min(float64(i)*step, quadrant)
		return rx * math.Cos(angle), ry * math.Sin(angle)
	}
	mirrors := []mirror{{1, 1, false}, {-1, 1, false}, {1, -1, false}, {-1, -1, false}}

	for _, r := range visibleRanges(t, center, n, sample, mirrors) {
		for i := r.lo; i <= r.hi; i++ {
			x, y := sample(i)
			plot(t, center.X+x, center.Y+y, c)
			plot(t, center.X-x, center.Y+y, c)
			plot(t, center.X+x, center.Y-y, c)
			plot(t, center.X-x, center.Y-y, c)
		}
	}
}

// mirror maps a sample (x, y) to (cx + sx·x, cy + sy·y), with x and y
// exchanged first when swap is set.
type mirror struct {
	sx, sy float64
	swap   bool
}

// indexRange is an inclusive range of sample indices.
type indexRange struct {
	lo, hi int
}

// visibleRanges returns the sorted, disjoint index ranges in [0, n] whose
// samples land inside t under at least one mirror. Unbounded targets get
// the full range.
//
// Both sample coordinates must be monotonic in the index, which holds for
// a quadrant of cos/sin.
func visibleRanges(t Target, center Point, n int, sample func(int) (float64, float64), mirrors []mirror) []indexRange {
	b, ok := t.(Bounded)
	if !ok {
		return []indexRange{{0, n}}
	}
	w, h := b.Size()

	var ranges []indexRange
	for _, m := range mirrors {
		coord := func(i int, vertical bool) float64 {
			x, y := sample(i)
			if m.swap {
				x, y = y, x
			}
			if vertical {
				return center.Y + m.sy*y
			}
			return center.X + m.sx*x
		}
		xlo, xhi, ok := span(n, w, func(i int) float64 { return coord(i, false) })
		if !ok {
			continue
		}
		ylo, yhi, ok := span(n, h, func(i int) float64 { return coord(i, true) })
		if !ok {
			continue
		}
		if lo, hi := max(xlo, ylo), min(xhi, yhi); lo <= hi {
			ranges = append(ranges, indexRange{lo, hi})
		}
	}
	return merge(ranges)
}

// span returns the indices i in [0, n] for which floor(v(i)) lies in
// [0, size). v must be monotonic; the result is then a single range.
func span(n, size int, v func(int) float64) (lo, hi int, ok bool) {
	if size <= 0 {
		return 0, 0, false
	}
	limit := float64(size)
	if v(n) >= v(0) {
		lo = sort.Search(n+1, func(i int) bool { return v(i) >= 0 })
		hi = sort.Search(n+1, func(i int) bool { return v(i) >= limit }) - 1
	} else {
		lo = sort.Search(n+1, func(i int) bool { return v(i) < limit })
		hi = sort.Search(n+1, func(i int) bool { return v(i) < 0 }) - 1
	}
	return lo, hi, lo <= hi
}

// merge sorts ranges and joins the ones that overlap or touch.
func merge(ranges []indexRange) []indexRange {
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].lo < ranges[j].lo })
	out := ranges[:0]
	for _, r := range ranges {
		if k := len(out) - 1; k >= 0 && r.lo <= out[k].hi+1 {
			out[k].hi = max(out[k].hi, r.hi)
			continue
		}
		out = append(out, r)
	}
	return out
}
