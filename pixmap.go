package zenith

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/kosmit147/zenith2d/internal/parallel"
)

// Pixmap is a rectangular buffer of non-premultiplied RGBA pixels,
// 4 bytes per pixel, row-major, with no padding between rows.
//
// A Pixmap is not safe for concurrent use.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
// All pixels start out transparent. Negative dimensions are treated as 0.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Size returns width and height as a convenience.
func (p *Pixmap) Size() (width, height int) {
	return p.width, p.height
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * 4
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// InBounds reports whether (x, y) addresses a pixel of the pixmap.
func (p *Pixmap) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if !p.InBounds(x, y) {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// Pixel returns the color of a single pixel.
// Out-of-bounds coordinates read as Transparent.
func (p *Pixmap) Pixel(x, y int) Color {
	if !p.InBounds(x, y) {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	clearRows(p.data, p.Stride(), c)
}

// ClearParallel fills the pixmap with a color, splitting the rows into
// bands executed on pool. The result is identical to Clear. A nil or closed
// pool falls back to Clear.
func (p *Pixmap) ClearParallel(c Color, pool *parallel.WorkerPool) {
	if pool == nil || !pool.IsRunning() || p.height < 2 {
		p.Clear(c)
		return
	}
	stride := p.Stride()
	bands := parallel.Bands(p.height, pool.Workers())
	work := make([]func(), len(bands))
	for i, b := range bands {
		rows := p.data[b.Start*stride : b.End*stride]
		work[i] = func() {
			clearRows(rows, stride, c)
		}
	}
	pool.ExecuteAll(work)
}

// clearRows fills the first row byte by byte and copies it to the rest.
func clearRows(data []uint8, stride int, c Color) {
	if len(data) == 0 || stride == 0 {
		return
	}
	first := data[:stride]
	for i := 0; i < stride; i += 4 {
		first[i+0] = c.R
		first[i+1] = c.G
		first[i+2] = c.B
		first[i+3] = c.A
	}
	for off := stride; off < len(data); off += stride {
		copy(data[off:off+stride], first)
	}
}

// Resize changes the pixmap dimensions and clears it to transparent.
// The backing array is reused when it is large enough; it never shrinks.
// It reports whether the dimensions changed.
func (p *Pixmap) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if width == p.width && height == p.height {
		return false
	}
	n := width * height * 4
	if cap(p.data) >= n {
		p.data = p.data[:n]
	} else {
		p.data = make([]uint8, n)
	}
	p.width = width
	p.height = height
	p.Clear(Transparent)
	return true
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory with p.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pm.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.Pixel(x, y).NRGBA()
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// CountColor returns how many pixels have exactly color c.
func (p *Pixmap) CountColor(c Color) int {
	n := 0
	for i := 0; i < len(p.data); i += 4 {
		if p.data[i] == c.R && p.data[i+1] == c.G && p.data[i+2] == c.B && p.data[i+3] == c.A {
			n++
		}
	}
	return n
}
