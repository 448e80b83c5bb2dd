// Copyright 2026 The Zenith2D Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/kosmit147/zenith2d"
	"github.com/kosmit147/zenith2d/internal/raster"
)

// ErrSurfaceClosed is returned by drawing calls on a closed surface.
var ErrSurfaceClosed = errors.New("surface: surface is closed")

// ErrUnevenBatch is returned when a Lines or Triangles batch does not hold
// a whole number of primitives.
var ErrUnevenBatch = errors.New("surface: vertex count does not match primitive")

// ImageSurface is a CPU render target backed by an *image.RGBA.
//
// Point and line batches are written without blending so the pixels keep
// the exact vertex color. Triangles, native shapes and uploaded pixmaps are
// composited Over the existing content.
//
// An ImageSurface is not safe for concurrent use.
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// rast is reused by every native shape and triangle batch.
	rast *vector.Rasterizer

	closed bool
}

// NewImageSurface creates a transparent surface with the given dimensions.
// Dimensions below 1 are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	width, height = max(width, 1), max(height, 1)
	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		rast:   vector.NewRasterizer(width, height),
	}
}

// NewImageSurfaceFromImage creates a surface that renders directly into
// img. The image bounds must start at the origin.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	b := img.Bounds()
	return &ImageSurface{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
		rast:   vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Size implements zenith.Backend.
func (s *ImageSurface) Size() (width, height int) {
	return s.width, s.height
}

// Clear fills the entire surface with c, replacing what was there.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// SubmitBatch implements zenith.Backend.
func (s *ImageSurface) SubmitBatch(p zenith.Primitive, vertices []zenith.Vertex) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	switch p {
	case zenith.Points:
		for _, v := range vertices {
			s.setPixel(int(math.Floor(float64(v.X))), int(math.Floor(float64(v.Y))), v.Color)
		}
	case zenith.Lines:
		if len(vertices)%2 != 0 {
			return fmt.Errorf("%w: %d vertices for %v", ErrUnevenBatch, len(vertices), p)
		}
		t := pixelTarget{s}
		for i := 0; i < len(vertices); i += 2 {
			a, b := vertices[i], vertices[i+1]
			raster.Line(t,
				raster.Point{X: float64(a.X), Y: float64(a.Y)},
				raster.Point{X: float64(b.X), Y: float64(b.Y)},
				raster.RGBA{R: a.Color.R, G: a.Color.G, B: a.Color.B, A: a.Color.A})
		}
	case zenith.Triangles:
		if len(vertices)%3 != 0 {
			return fmt.Errorf("%w: %d vertices for %v", ErrUnevenBatch, len(vertices), p)
		}
		for i := 0; i < len(vertices); i += 3 {
			tri := vertices[i : i+3]
			s.rast.Reset(s.width, s.height)
			s.rast.MoveTo(tri[0].X, tri[0].Y)
			s.rast.LineTo(tri[1].X, tri[1].Y)
			s.rast.LineTo(tri[2].X, tri[2].Y)
			s.rast.ClosePath()
			s.rast.Draw(s.img, s.img.Bounds(), image.NewUniform(tri[0].Color.NRGBA()), image.Point{})
		}
	default:
		return fmt.Errorf("surface: unsupported primitive %v", p)
	}
	return nil
}

// BlitPixmap implements zenith.Backend. The pixmap is composited Over the
// surface with its top-left corner at (x, y).
func (s *ImageSurface) BlitPixmap(pm *zenith.Pixmap, x, y int) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if pm == nil {
		return errors.New("surface: nil pixmap")
	}
	dst := pm.Bounds().Add(image.Pt(x, y))
	draw.Draw(s.img, dst, pm, image.Point{}, draw.Over)
	return nil
}

// StrokePolyline implements zenith.VectorBackend. Each segment is drawn as
// a one pixel wide quad, so the result is anti-aliased.
func (s *ImageSurface) StrokePolyline(points []zenith.Point, closed bool, c zenith.Color) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	n := len(points)
	if n < 2 {
		return zenith.ErrFallbackToSoftware
	}
	segs := n - 1
	if closed {
		segs = n
	}
	s.rast.Reset(s.width, s.height)
	for i := range segs {
		s.appendSegment(points[i], points[(i+1)%n])
	}
	s.fill(c)
	return nil
}

// FillConvex implements zenith.VectorBackend.
func (s *ImageSurface) FillConvex(points []zenith.Point, c zenith.Color) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if len(points) < 3 {
		return zenith.ErrFallbackToSoftware
	}
	s.rast.Reset(s.width, s.height)
	s.appendLoop(points, false)
	s.fill(c)
	return nil
}

// StrokeEllipse implements zenith.VectorBackend. The outline is the ring
// between the ellipse grown and shrunk by half a pixel.
func (s *ImageSurface) StrokeEllipse(e zenith.Ellipse, c zenith.Color) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if e.RadiusX <= 0.5 || e.RadiusY <= 0.5 {
		return zenith.ErrFallbackToSoftware
	}
	outer := e
	outer.RadiusX += 0.5
	outer.RadiusY += 0.5
	inner := e
	inner.RadiusX -= 0.5
	inner.RadiusY -= 0.5

	// Opposite windings cancel inside the ring.
	s.rast.Reset(s.width, s.height)
	s.appendLoop(ellipsePoints(outer), false)
	s.appendLoop(ellipsePoints(inner), true)
	s.fill(c)
	return nil
}

// FillEllipse implements zenith.VectorBackend.
func (s *ImageSurface) FillEllipse(e zenith.Ellipse, c zenith.Color) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	s.rast.Reset(s.width, s.height)
	s.appendLoop(ellipsePoints(e), false)
	s.fill(c)
	return nil
}

// Pixel returns the color at (x, y) as a zenith.Color. Out-of-bounds reads
// return Transparent.
func (s *ImageSurface) Pixel(x, y int) zenith.Color {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return zenith.Transparent
	}
	return zenith.FromColor(s.img.RGBAAt(x, y))
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Scaled returns a copy of the surface resampled to width × height with
// Catmull-Rom filtering.
func (s *ImageSurface) Scaled(width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	draw.CatmullRom.Scale(out, out.Bounds(), s.img, s.img.Bounds(), draw.Src, nil)
	return out
}

// SavePNG writes the surface to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Image returns the underlying image. Drawing through the surface keeps
// modifying it.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Close marks the surface closed. Further drawing returns ErrSurfaceClosed.
// Close is idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

// setPixel writes c at (x, y) without blending. Out-of-bounds writes are
// dropped.
func (s *ImageSurface) setPixel(x, y int, c zenith.Color) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.img.Set(x, y, c.NRGBA())
}

// appendSegment adds a quad covering the one pixel wide segment a → b.
func (s *ImageSurface) appendSegment(a, b zenith.Point) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		s.appendLoop([]zenith.Point{
			a.Add(zenith.Pt(-0.5, -0.5)), a.Add(zenith.Pt(0.5, -0.5)),
			a.Add(zenith.Pt(0.5, 0.5)), a.Add(zenith.Pt(-0.5, 0.5)),
		}, false)
		return
	}
	n := zenith.Pt(-d.Y, d.X).Mul(0.5 / l)
	s.appendLoop([]zenith.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, false)
}

// appendLoop adds a closed contour, in reverse order when reversed is set.
func (s *ImageSurface) appendLoop(points []zenith.Point, reversed bool) {
	n := len(points)
	at := func(i int) zenith.Point {
		if reversed {
			return points[n-1-i]
		}
		return points[i]
	}
	p := at(0)
	s.rast.MoveTo(float32(p.X), float32(p.Y))
	for i := 1; i < n; i++ {
		p = at(i)
		s.rast.LineTo(float32(p.X), float32(p.Y))
	}
	s.rast.ClosePath()
}

// fill composites the accumulated contours in color c.
func (s *ImageSurface) fill(c zenith.Color) {
	s.rast.DrawOp = draw.Over
	s.rast.Draw(s.img, s.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

// ellipsePoints samples e with roughly one vertex per two pixels of arc.
func ellipsePoints(e zenith.Ellipse) []zenith.Point {
	n := int(math.Ceil(math.Pi * math.Max(e.RadiusX, e.RadiusY)))
	n = min(max(n, 12), 720)
	points := make([]zenith.Point, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(n)
		points[i] = zenith.Pt(e.Center.X+e.RadiusX*math.Cos(a), e.Center.Y+e.RadiusY*math.Sin(a))
	}
	return points
}

// pixelTarget lets the raster plotters write straight into the surface.
type pixelTarget struct {
	s *ImageSurface
}

func (t pixelTarget) Size() (int, int) {
	return t.s.width, t.s.height
}

func (t pixelTarget) SetPixel(x, y int, c raster.RGBA) {
	t.s.setPixel(x, y, zenith.Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

var (
	_ zenith.Backend       = (*ImageSurface)(nil)
	_ zenith.VectorBackend = (*ImageSurface)(nil)
)
