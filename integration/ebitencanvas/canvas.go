// Copyright 2026 The Zenith2D Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/kosmit147/zenith2d"
	"github.com/kosmit147/zenith2d/internal/raster"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ebitencanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ebitencanvas: invalid dimensions")

	// ErrNoTarget is returned when drawing before SetTarget.
	ErrNoTarget = errors.New("ebitencanvas: no target image")
)

// maxQuads keeps the indices of one DrawTriangles call within uint16.
const maxQuads = (1 << 16) / 4

// Canvas is a zenith.Backend and zenith.VectorBackend drawing onto an
// *ebiten.Image.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	target *ebiten.Image
	width  int
	height int

	texture  *ebiten.Image // Lazy-created upload texture for pixmaps
	texW     int
	texH     int
	staging  []byte // Premultiplied copy of the last uploaded pixmap
	vertices []ebiten.Vertex
	indices  []uint16

	linePoints []zenith.Vertex // Pixels of the current line batch

	closed bool
}

// New creates a Canvas that reports width × height until a target is set.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{width: width, height: height}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int) *Canvas {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// SetTarget points the canvas at img, typically the screen passed to
// Game.Draw. The canvas size follows the image bounds.
func (c *Canvas) SetTarget(img *ebiten.Image) {
	c.target = img
	if img != nil {
		b := img.Bounds()
		c.width, c.height = b.Dx(), b.Dy()
	}
}

// Target returns the current target image.
func (c *Canvas) Target() *ebiten.Image {
	return c.target
}

// Size implements zenith.Backend.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Clear fills the target with col.
func (c *Canvas) Clear(col color.Color) {
	if c.closed || c.target == nil {
		return
	}
	c.target.Fill(col)
}

// ready reports why the canvas cannot draw, if it cannot.
func (c *Canvas) ready() error {
	if c.closed {
		return ErrCanvasClosed
	}
	if c.target == nil {
		return ErrNoTarget
	}
	return nil
}

// SubmitBatch implements zenith.Backend.
func (c *Canvas) SubmitBatch(p zenith.Primitive, vertices []zenith.Vertex) error {
	if err := c.ready(); err != nil {
		return err
	}
	switch p {
	case zenith.Points:
		for start := 0; start < len(vertices); start += maxQuads {
			c.drawPoints(vertices[start:min(start+maxQuads, len(vertices))])
		}
	case zenith.Lines:
		if len(vertices)%2 != 0 {
			return fmt.Errorf("ebitencanvas: %d vertices for %v", len(vertices), p)
		}
		points := c.linePixels(vertices)
		for start := 0; start < len(points); start += maxQuads {
			c.drawPoints(points[start:min(start+maxQuads, len(points))])
		}
	case zenith.Triangles:
		if len(vertices)%3 != 0 {
			return fmt.Errorf("ebitencanvas: %d vertices for %v", len(vertices), p)
		}
		c.vertices, c.indices = c.vertices[:0], c.indices[:0]
		for i := 0; i < len(vertices); i += 3 {
			if len(c.vertices)+3 > (1<<16)-1 {
				c.flushTriangles(ebiten.FillRuleFillAll)
			}
			for _, v := range vertices[i : i+3] {
				c.indices = append(c.indices, uint16(len(c.vertices))) //nolint:gosec // flushed before overflow
				c.vertices = append(c.vertices, vertex(v.X, v.Y, v.Color))
			}
		}
		c.flushTriangles(ebiten.FillRuleFillAll)
	default:
		return fmt.Errorf("ebitencanvas: unsupported primitive %v", p)
	}
	return nil
}

// linePixels steps every segment of a Lines batch on the CPU, so the
// canvas emits the same aliased pixels as the other backends, and returns
// them as a point batch. Each segment takes the color of its first vertex.
func (c *Canvas) linePixels(vertices []zenith.Vertex) []zenith.Vertex {
	c.linePoints = c.linePoints[:0]
	t := &pointTarget{canvas: c}
	for i := 0; i+1 < len(vertices); i += 2 {
		a, b := vertices[i], vertices[i+1]
		col := a.Color
		raster.Line(t, rasterPoint(a), rasterPoint(b), raster.RGBA{R: col.R, G: col.G, B: col.B, A: col.A})
	}
	return c.linePoints
}

// pointTarget collects plotted line pixels, clipped to the canvas.
type pointTarget struct {
	canvas *Canvas
}

func (t *pointTarget) Size() (int, int) {
	return t.canvas.Size()
}

func (t *pointTarget) SetPixel(x, y int, col raster.RGBA) {
	w, h := t.canvas.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	t.canvas.linePoints = append(t.canvas.linePoints, zenith.Vertex{
		X:     float32(x),
		Y:     float32(y),
		Color: zenith.Color{R: col.R, G: col.G, B: col.B, A: col.A},
	})
}

func rasterPoint(v zenith.Vertex) raster.Point {
	return raster.Point{X: float64(v.X), Y: float64(v.Y)}
}

// drawPoints draws every vertex as a one-pixel quad in a single call.
func (c *Canvas) drawPoints(points []zenith.Vertex) {
	c.vertices, c.indices = c.vertices[:0], c.indices[:0]
	for i, v := range points {
		base := uint16(i * 4) //nolint:gosec // len(points) <= maxQuads
		c.vertices = append(c.vertices,
			vertex(v.X, v.Y, v.Color),
			vertex(v.X+1, v.Y, v.Color),
			vertex(v.X, v.Y+1, v.Color),
			vertex(v.X+1, v.Y+1, v.Color),
		)
		c.indices = append(c.indices, base, base+1, base+2, base+1, base+3, base+2)
	}
	c.flushTriangles(ebiten.FillRuleFillAll)
}

// flushTriangles draws the accumulated vertices and resets the buffers.
func (c *Canvas) flushTriangles(rule ebiten.FillRule) {
	if len(c.indices) == 0 {
		return
	}
	c.target.DrawTriangles(c.vertices, c.indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		FillRule:       rule,
	})
	c.vertices, c.indices = c.vertices[:0], c.indices[:0]
}

// BlitPixmap implements zenith.Backend. The pixmap is uploaded to a
// texture that is created on first use and recreated when the pixmap size
// changes.
func (c *Canvas) BlitPixmap(pm *zenith.Pixmap, x, y int) error {
	if err := c.ready(); err != nil {
		return err
	}
	if pm == nil {
		return errors.New("ebitencanvas: nil pixmap")
	}
	w, h := pm.Size()
	if w == 0 || h == 0 {
		return nil
	}
	if c.texture == nil || c.texW != w || c.texH != h {
		if c.texture != nil {
			c.texture.Deallocate()
		}
		c.texture = ebiten.NewImage(w, h)
		c.texW, c.texH = w, h
	}
	if cap(c.staging) < len(pm.Data()) {
		c.staging = make([]byte, len(pm.Data()))
	}
	c.staging = c.staging[:len(pm.Data())]
	premultiply(c.staging, pm.Data())
	c.texture.WritePixels(c.staging)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	c.target.DrawImage(c.texture, op)
	return nil
}

// StrokePolyline implements zenith.VectorBackend.
func (c *Canvas) StrokePolyline(points []zenith.Point, closed bool, col zenith.Color) error {
	if err := c.ready(); err != nil {
		return err
	}
	if len(points) < 2 {
		return zenith.ErrFallbackToSoftware
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	if closed {
		path.Close()
	}
	c.strokePath(&path, col)
	return nil
}

// FillConvex implements zenith.VectorBackend.
func (c *Canvas) FillConvex(points []zenith.Point, col zenith.Color) error {
	if err := c.ready(); err != nil {
		return err
	}
	if len(points) < 3 {
		return zenith.ErrFallbackToSoftware
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	c.fillPath(&path, col)
	return nil
}

// StrokeEllipse implements zenith.VectorBackend. Circles use
// vector.StrokeCircle directly.
func (c *Canvas) StrokeEllipse(e zenith.Ellipse, col zenith.Color) error {
	if err := c.ready(); err != nil {
		return err
	}
	if e.RadiusX == e.RadiusY {
		vector.StrokeCircle(c.target, float32(e.Center.X), float32(e.Center.Y), float32(e.RadiusX), 1, col.NRGBA(), false)
		return nil
	}
	c.strokePath(ellipsePath(e), col)
	return nil
}

// FillEllipse implements zenith.VectorBackend. Circles use
// vector.DrawFilledCircle directly.
func (c *Canvas) FillEllipse(e zenith.Ellipse, col zenith.Color) error {
	if err := c.ready(); err != nil {
		return err
	}
	if e.RadiusX == e.RadiusY {
		vector.DrawFilledCircle(c.target, float32(e.Center.X), float32(e.Center.Y), float32(e.RadiusX), col.NRGBA(), false)
		return nil
	}
	c.fillPath(ellipsePath(e), col)
	return nil
}

func (c *Canvas) strokePath(path *vector.Path, col zenith.Color) {
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width:    1,
		LineJoin: vector.LineJoinMiter,
	})
	c.paint(col)
	c.flushTriangles(ebiten.FillRuleFillAll)
}

func (c *Canvas) fillPath(path *vector.Path, col zenith.Color) {
	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.paint(col)
	c.flushTriangles(ebiten.FillRuleNonZero)
}

// paint sets the color and white source texel of every pending vertex.
func (c *Canvas) paint(col zenith.Color) {
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = channels(col)
	}
}

// Close releases the upload texture. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.texture != nil {
		c.texture.Deallocate()
		c.texture = nil
	}
	c.target = nil
	return nil
}

// ellipsePath approximates e with float32 samples about two pixels apart.
func ellipsePath(e zenith.Ellipse) *vector.Path {
	cx, cy := float32(e.Center.X), float32(e.Center.Y)
	rx, ry := float32(e.RadiusX), float32(e.RadiusY)
	n := int(math32.Ceil(math32.Pi * math32.Max(rx, ry)))
	n = min(max(n, 12), 720)

	var path vector.Path
	for i := range n {
		a := 2 * math32.Pi * float32(i) / float32(n)
		x, y := cx+rx*math32.Cos(a), cy+ry*math32.Sin(a)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return &path
}

// premultiply converts non-premultiplied RGBA in src to the premultiplied
// layout WritePixels expects. dst and src must have the same length.
func premultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		a := uint32(src[i+3])
		switch a {
		case 0xff:
			copy(dst[i:i+4], src[i:i+4])
		case 0:
			dst[i], dst[i+1], dst[i+2], dst[i+3] = 0, 0, 0, 0
		default:
			dst[i+0] = uint8((uint32(src[i+0])*a + 127) / 255) //nolint:gosec // at most 255
			dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255) //nolint:gosec // at most 255
			dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255) //nolint:gosec // at most 255
			dst[i+3] = uint8(a)
		}
	}
}

// channels returns the color as straight-alpha floats in [0, 1].
func channels(c zenith.Color) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}

// vertex builds a solid-color vertex sampling the white texel.
func vertex(x, y float32, c zenith.Color) ebiten.Vertex {
	r, g, b, a := channels(c)
	return ebiten.Vertex{
		DstX: x, DstY: y,
		SrcX: 1, SrcY: 1,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	}
}

var whiteImage *ebiten.Image

// whiteSubImage returns the inner texel of a 3×3 white image, created on
// first use, so sampling never bleeds in transparent neighbors.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

var (
	_ zenith.Backend       = (*Canvas)(nil)
	_ zenith.VectorBackend = (*Canvas)(nil)
)
