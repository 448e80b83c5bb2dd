package zenith

import "errors"

// ErrUpload is returned when a filled shape could not be handed to the
// backend as a texture. The draw call is abandoned; the renderer stays usable.
var ErrUpload = errors.New("zenith: texture upload failed")

// Primitive is the topology of a vertex batch.
type Primitive int

const (
	// Points draws every vertex as a single pixel.
	Points Primitive = iota

	// Lines draws each consecutive pair of vertices as a segment.
	Lines

	// Triangles draws each consecutive triple of vertices as a solid triangle.
	Triangles
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case Triangles:
		return "Triangles"
	default:
		return "Unknown"
	}
}

// Vertex is a colored position in render-target pixels.
type Vertex struct {
	X, Y  float32
	Color Color
}

// Backend is the render target the Renderer draws onto.
//
// A Backend can rasterize vertex batches itself and composite a CPU-side
// Pixmap at a pixel offset. Both calls are synchronous from the renderer's
// point of view; a backend may batch internally as long as the draw order
// is preserved.
type Backend interface {
	// Size returns the render target dimensions in pixels.
	Size() (width, height int)

	// SubmitBatch draws vertices with the given topology.
	SubmitBatch(p Primitive, vertices []Vertex) error

	// BlitPixmap uploads pm as a texture and draws it with its top-left
	// corner at (x, y), compositing Over what is already there. An error
	// means nothing was drawn.
	BlitPixmap(pm *Pixmap, x, y int) error
}
