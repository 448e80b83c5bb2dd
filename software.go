package zenith

import (
	"fmt"
	"math"

	"github.com/kosmit147/zenith2d/internal/fill"
	"github.com/kosmit147/zenith2d/internal/raster"
)

// pixmapAdapter adapts Pixmap to the raster.Target and fill.Buffer
// interfaces, so outlines and fills share one pixel grid.
type pixmapAdapter struct {
	pixmap *Pixmap
}

func (p pixmapAdapter) Size() (int, int) {
	return p.pixmap.Size()
}

func (p pixmapAdapter) SetPixel(x, y int, c raster.RGBA) {
	p.pixmap.SetPixel(x, y, Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (p pixmapAdapter) Pixel(x, y int) raster.RGBA {
	c := p.pixmap.Pixel(x, y)
	return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// vertexAccumulator collects plotted pixels as a Points batch. Pixels
// outside the target are dropped, and being Bounded keeps the plotters
// from walking them at all.
type vertexAccumulator struct {
	width, height int
	vertices      []Vertex
}

func (a *vertexAccumulator) reset(width, height int) {
	a.width, a.height = width, height
	a.vertices = a.vertices[:0]
}

func (a *vertexAccumulator) Size() (int, int) {
	return a.width, a.height
}

func (a *vertexAccumulator) SetPixel(x, y int, c raster.RGBA) {
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return
	}
	a.vertices = append(a.vertices, Vertex{
		X:     float32(x),
		Y:     float32(y),
		Color: Color{R: c.R, G: c.G, B: c.B, A: c.A},
	})
}

// outlineFunc plots a shape outline onto a raster target.
type outlineFunc func(t raster.Target, c raster.RGBA)

// strokeSoftware plots an outline into the vertex accumulator and submits
// it as one Points batch.
func (r *Renderer) strokeSoftware(outline outlineFunc, c Color) error {
	w, h := r.backend.Size()
	r.acc.reset(w, h)
	outline(&r.acc, toRaster(c))
	if len(r.acc.vertices) == 0 {
		return nil
	}
	return r.backend.SubmitBatch(Points, r.acc.vertices)
}

// fillSoftware draws the outline onto the cleared scratch pixmap, fills it
// from seed and uploads the result. When the upload fails the call is
// abandoned and ErrUpload is returned.
func (r *Renderer) fillSoftware(outline outlineFunc, seed Point, c Color) error {
	pm := r.prepareScratch()
	target := pixmapAdapter{pixmap: pm}
	rc := toRaster(c)
	outline(target, rc)

	sx, sy := seedPixel(seed)
	var n int
	switch r.fillAlgo.internal() {
	case fill.Flood:
		n = r.filler.Flood(target, sx, sy, rc, raster.RGBA{})
	default:
		n = r.filler.Boundary(target, sx, sy, rc, rc)
	}
	r.logger.Debug("zenith: shape filled",
		"algorithm", r.fillAlgo.String(),
		"seed_x", sx, "seed_y", sy,
		"pixels", n)

	if err := r.backend.BlitPixmap(pm, 0, 0); err != nil {
		r.logger.Warn("zenith: filled shape dropped", "error", err)
		return fmt.Errorf("%w: %w", ErrUpload, err)
	}
	return nil
}

// prepareScratch returns the scratch pixmap sized to the backend and
// cleared to transparent.
func (r *Renderer) prepareScratch() *Pixmap {
	w, h := r.backend.Size()
	if r.scratch == nil {
		r.scratch = NewPixmap(w, h)
		r.logger.Debug("zenith: scratch pixmap created", "width", w, "height", h)
		return r.scratch
	}
	if r.scratch.Resize(w, h) {
		r.logger.Debug("zenith: scratch pixmap resized", "width", w, "height", h)
		return r.scratch
	}
	r.scratch.ClearParallel(Transparent, r.pool)
	return r.scratch
}

// seedPixel quantizes a seed point the same way the plotters do.
func seedPixel(p Point) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

func toRaster(c Color) raster.RGBA {
	return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func rasterPoint(p Point) raster.Point {
	return raster.Point{X: p.X, Y: p.Y}
}

func rasterPoints(points []Point) []raster.Point {
	out := make([]raster.Point, len(points))
	for i, p := range points {
		out[i] = rasterPoint(p)
	}
	return out
}

func rasterCorners(r Rect) [4]raster.Point {
	c := r.Corners()
	return [4]raster.Point{rasterPoint(c[0]), rasterPoint(c[1]), rasterPoint(c[2]), rasterPoint(c[3])}
}
