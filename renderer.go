package zenith

import (
	"log/slog"

	"github.com/kosmit147/zenith2d/internal/fill"
	"github.com/kosmit147/zenith2d/internal/parallel"
	"github.com/kosmit147/zenith2d/internal/raster"
)

// Renderer draws aliased primitives onto a Backend.
//
// In Software mode outlines are plotted pixel by pixel and submitted as
// point batches, and filled shapes are rasterized on a scratch Pixmap the
// size of the backend, seed-filled and uploaded as a texture. In Hardware
// mode shapes go to the backend's native vector drawing.
//
// Every draw call completes before it returns. A Renderer is not safe for
// concurrent use: the scratch pixmap and vertex buffer are reused across
// calls.
type Renderer struct {
	backend   Backend
	algorithm RenderingAlgorithm
	fillAlgo  FillAlgorithm
	logger    *slog.Logger

	pool    *parallel.WorkerPool
	scratch *Pixmap
	filler  fill.Filler
	acc     vertexAccumulator

	warnedNoVector bool
}

// NewRenderer creates a renderer drawing onto backend.
//
// Example:
//
//	surf := surface.NewImageSurface(800, 600)
//	r := zenith.NewRenderer(surf, zenith.WithFillAlgorithm(zenith.FloodFill))
//	defer r.Close()
//	_ = r.FillCircle(zenith.Circle{Center: zenith.Pt(400, 300), Radius: 50}, zenith.Red)
func NewRenderer(backend Backend, opts ...RendererOption) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{
		backend:   backend,
		algorithm: o.algorithm,
		fillAlgo:  o.fill,
		logger:    orNop(o.logger),
	}
	if o.workers > 1 {
		r.pool = parallel.NewWorkerPool(o.workers)
	}
	r.logger.Info("zenith: renderer created",
		"algorithm", r.algorithm.String(),
		"fill", r.fillAlgo.String(),
		"clear_workers", o.workers)
	return r
}

// Close releases the clear worker pool. It is safe to call more than once,
// and the renderer keeps working afterwards with single-threaded clears.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// Backend returns the current render target.
func (r *Renderer) Backend() Backend {
	return r.backend
}

// SetBackend switches the render target, typically once per frame when the
// window hands out a new screen. The scratch pixmap follows the new size on
// the next filled draw.
func (r *Renderer) SetBackend(b Backend) {
	if b != r.backend {
		r.warnedNoVector = false
	}
	r.backend = b
}

// RenderingAlgorithm returns the current rendering algorithm.
func (r *Renderer) RenderingAlgorithm() RenderingAlgorithm {
	return r.algorithm
}

// SetRenderingAlgorithm switches between native and software drawing.
func (r *Renderer) SetRenderingAlgorithm(a RenderingAlgorithm) {
	if a != r.algorithm {
		r.logger.Debug("zenith: rendering algorithm changed", "from", r.algorithm.String(), "to", a.String())
	}
	r.algorithm = a
}

// FillAlgorithm returns the current fill algorithm.
func (r *Renderer) FillAlgorithm() FillAlgorithm {
	return r.fillAlgo
}

// SetFillAlgorithm selects the seed fill used by software filled shapes.
func (r *Renderer) SetFillAlgorithm(a FillAlgorithm) {
	if a != r.fillAlgo {
		r.logger.Debug("zenith: fill algorithm changed", "from", r.fillAlgo.String(), "to", a.String())
	}
	r.fillAlgo = a
}

// vector returns the native drawing capability when Hardware mode is
// active and the backend provides it.
func (r *Renderer) vector() VectorBackend {
	if r.algorithm != Hardware {
		return nil
	}
	v, ok := asVector(r.backend)
	if !ok {
		if !r.warnedNoVector {
			r.logger.Warn("zenith: backend has no native shape drawing, using software rasterizer")
			r.warnedNoVector = true
		}
		return nil
	}
	return v
}

// stroke draws an outline natively when possible, in software otherwise.
func (r *Renderer) stroke(native func(VectorBackend) error, outline outlineFunc, c Color) error {
	if v := r.vector(); v != nil {
		if err := native(v); !isFallback(err) {
			return err
		}
	}
	return r.strokeSoftware(outline, c)
}

// fillShape fills a shape natively when possible, in software otherwise.
func (r *Renderer) fillShape(native func(VectorBackend) error, outline outlineFunc, seed Point, c Color) error {
	if v := r.vector(); v != nil {
		if err := native(v); !isFallback(err) {
			return err
		}
	}
	return r.fillSoftware(outline, seed, c)
}

// rejectPolygon logs and returns a validation error.
func (r *Renderer) rejectPolygon(op string, err error) error {
	r.logger.Warn("zenith: polygon dropped", "op", op, "error", err)
	return err
}

// DrawPoint draws a single pixel at p.
func (r *Renderer) DrawPoint(p Point, c Color) error {
	return r.DrawPoints([]Point{p}, c)
}

// DrawPoints draws one pixel per point in a single batch. Points are
// submitted as a batch in both modes.
func (r *Renderer) DrawPoints(points []Point, c Color) error {
	if len(points) == 0 {
		return nil
	}
	return r.strokeSoftware(func(t raster.Target, rc raster.RGBA) {
		raster.Points(t, rasterPoints(points), rc)
	}, c)
}

// DrawLine draws the segment l. A zero-length segment draws one pixel.
func (r *Renderer) DrawLine(l Line, c Color) error {
	return r.stroke(func(v VectorBackend) error {
		return v.StrokePolyline([]Point{l.From, l.To}, false, c)
	}, func(t raster.Target, rc raster.RGBA) {
		raster.Line(t, rasterPoint(l.From), rasterPoint(l.To), rc)
	}, c)
}

// DrawLines draws independent segments.
func (r *Renderer) DrawLines(lines []Line, c Color) error {
	if len(lines) == 0 {
		return nil
	}
	return r.stroke(func(v VectorBackend) error {
		for _, l := range lines {
			if err := v.StrokePolyline([]Point{l.From, l.To}, false, c); err != nil {
				return err
			}
		}
		return nil
	}, func(t raster.Target, rc raster.RGBA) {
		for _, l := range lines {
			raster.Line(t, rasterPoint(l.From), rasterPoint(l.To), rc)
		}
	}, c)
}

// DrawLineStrip draws segments between consecutive points without closing
// the strip.
func (r *Renderer) DrawLineStrip(points []Point, c Color) error {
	if len(points) == 0 {
		return nil
	}
	return r.stroke(func(v VectorBackend) error {
		return v.StrokePolyline(points, false, c)
	}, func(t raster.Target, rc raster.RGBA) {
		raster.LineStrip(t, rasterPoints(points), rc)
	}, c)
}

// DrawClosedLines draws a strip plus the closing segment back to points[0].
// No validation is performed; see DrawPolygon for the checked variant.
func (r *Renderer) DrawClosedLines(points []Point, c Color) error {
	if len(points) == 0 {
		return nil
	}
	return r.stroke(func(v VectorBackend) error {
		return v.StrokePolyline(points, len(points) > 2, c)
	}, func(t raster.Target, rc raster.RGBA) {
		raster.ClosedLines(t, rasterPoints(points), rc)
	}, c)
}

// DrawRect draws the outline through the four corners of rect.
func (r *Renderer) DrawRect(rect Rect, c Color) error {
	return r.stroke(func(v VectorBackend) error {
		corners := rect.Corners()
		return v.StrokePolyline(corners[:], true, c)
	}, func(t raster.Target, rc raster.RGBA) {
		raster.Rect(t, rasterCorners(rect), rc)
	}, c)
}

// FillRect fills rect. The software seed is the midpoint of the diagonal.
func (r *Renderer) FillRect(rect Rect, c Color) error {
	return r.fillShape(func(v VectorBackend) error {
		corners := rect.Corners()
		return v.FillConvex(corners[:], c)
	}, func(t raster.Target, rc raster.RGBA) {
		raster.Rect(t, rasterCorners(rect), rc)
	}, rect.Center(), c)
}

// DrawCircle draws the outline of circle. A radius that is not positive
// draws nothing.
func (r *Renderer) DrawCircle(circle Circle, c Color) error {
	if !(circle.Radius > 0) {
		return nil
	}
	return r.stroke(func(v VectorBackend) error {
		return v.StrokeEllipse(Ellipse{Center: circle.Center, RadiusX: circle.Radius, RadiusY: circle.Radius}, c)
	}, func(t raster.Target, rc raster.RGBA) {
		raster.Circle(t, rasterPoint(circle.Center), circle.Radius, rc)
	}, c)
}

// FillCircle fills circle, seeding the software fill at its center.
func (r *Renderer) FillCircle(circle Circle, c Color) error {
	if !(circle.Radius > 0) {
		return nil
	}
	return r.fillShape(func(v VectorBackend) error {
		return v.FillEllipse(Ellipse{Center: circle.Center, RadiusX: circle.Radius, RadiusY: circle.Radius}, c)
	}, func(t raster.Target, rc raster.RGBA) {
		raster.Circle(t, rasterPoint(circle.Center), circle.Radius, rc)
	}, circle.Center, c)
}

// DrawEllipse draws the outline of e. Either radius not being positive
// draws nothing.
func (r *Renderer) DrawEllipse(e Ellipse, c Color) error {
	if !(e.RadiusX > 0) || !(e.RadiusY > 0) {
		return nil
	}
	return r.stroke(func(v VectorBackend) error {
		return v.StrokeEllipse(e, c)
	}, func(t raster.Target, rc raster.RGBA) {
		raster.Ellipse(t, rasterPoint(e.Center), e.RadiusX, e.RadiusY, rc)
	}, c)
}

// FillEllipse fills e, seeding the software fill at its center.
func (r *Renderer) FillEllipse(e Ellipse, c Color) error {
	if !(e.RadiusX > 0) || !(e.RadiusY > 0) {
		return nil
	}
	return r.fillShape(func(v VectorBackend) error {
		return v.FillEllipse(e, c)
	}, func(t raster.Target, rc raster.RGBA) {
		raster.Ellipse(t, rasterPoint(e.Center), e.RadiusX, e.RadiusY, rc)
	}, e.Center, c)
}

// DrawTriangle draws the outline of tri.
func (r *Renderer) DrawTriangle(tri Triangle, c Color) error {
	vs := tri.Vertices()
	return r.DrawClosedLines(vs[:], c)
}

// FillTriangle fills tri, seeding the software fill at its centroid.
func (r *Renderer) FillTriangle(tri Triangle, c Color) error {
	vs := tri.Vertices()
	return r.fillShape(func(v VectorBackend) error {
		return v.FillConvex(vs[:], c)
	}, func(t raster.Target, rc raster.RGBA) {
		raster.ClosedLines(t, rasterPoints(vs[:]), rc)
	}, Centroid(vs[:]), c)
}

// DrawPolygon draws the outline of the implicitly closed polygon through
// points.
//
// Fewer than 2 points draw nothing and return nil. Otherwise the polygon
// must be simple: when ValidatePoints rejects it nothing is drawn and the
// error, which wraps ErrInvalidPolygon, is returned.
func (r *Renderer) DrawPolygon(points []Point, c Color) error {
	if len(points) < 2 {
		return nil
	}
	if err := ValidatePoints(points); err != nil {
		return r.rejectPolygon("DrawPolygon", err)
	}
	return r.DrawClosedLines(points, c)
}

// FillPolygon fills the polygon through points. Validation follows
// DrawPolygon.
//
// The software seed is the vertex mean, which lies inside every convex
// polygon but can fall outside a concave one; the fill then covers the
// wrong region. Non-convex polygons are not supported.
func (r *Renderer) FillPolygon(points []Point, c Color) error {
	if len(points) < 2 {
		return nil
	}
	if err := ValidatePoints(points); err != nil {
		return r.rejectPolygon("FillPolygon", err)
	}
	return r.fillPolygon(points, c)
}

func (r *Renderer) fillPolygon(points []Point, c Color) error {
	return r.fillShape(func(v VectorBackend) error {
		return v.FillConvex(points, c)
	}, func(t raster.Target, rc raster.RGBA) {
		raster.ClosedLines(t, rasterPoints(points), rc)
	}, Centroid(points), c)
}

// DrawPolygonLines draws a polygon given as chained segments.
//
// An empty list draws nothing and returns nil. The segments must pass
// ValidateLines; otherwise nothing is drawn and the error is returned.
func (r *Renderer) DrawPolygonLines(lines []Line, c Color) error {
	if len(lines) == 0 {
		return nil
	}
	if err := ValidateLines(lines); err != nil {
		return r.rejectPolygon("DrawPolygonLines", err)
	}
	return r.DrawClosedLines(linesToPoints(lines), c)
}

// FillPolygonLines fills a polygon given as chained segments. Validation
// follows DrawPolygonLines and seeding follows FillPolygon.
func (r *Renderer) FillPolygonLines(lines []Line, c Color) error {
	if len(lines) == 0 {
		return nil
	}
	if err := ValidateLines(lines); err != nil {
		return r.rejectPolygon("FillPolygonLines", err)
	}
	return r.fillPolygon(linesToPoints(lines), c)
}

// linesToPoints returns the start of every segment.
func linesToPoints(lines []Line) []Point {
	points := make([]Point, len(lines))
	for i, l := range lines {
		points[i] = l.From
	}
	return points
}
