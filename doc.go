// Package zenith provides aliased 2D primitive drawing for small games.
//
// # Overview
//
// zenith draws points, lines, rectangles, circles, ellipses, triangles and
// simple polygons onto a Backend: a window, an offscreen image, or any
// render target that can rasterize vertex batches and composite a CPU-side
// Pixmap.
//
// # Quick Start
//
//	import (
//		"github.com/kosmit147/zenith2d"
//		"github.com/kosmit147/zenith2d/surface"
//	)
//
//	surf := surface.NewImageSurface(512, 512)
//	r := zenith.NewRenderer(surf)
//	defer r.Close()
//
//	_ = r.DrawLine(zenith.Ln(10, 10, 500, 300), zenith.White)
//	_ = r.FillCircle(zenith.Circle{Center: zenith.Pt(256, 256), Radius: 100}, zenith.Red)
//	_ = surf.SavePNG("output.png")
//
// # Rendering Algorithms
//
// Software mode (the default) plots outlines with a DDA line stepper and
// sampled conics. Filled shapes are drawn onto a scratch Pixmap, filled
// from a seed point with either BoundaryFill or FloodFill, and uploaded as
// a texture. Hardware mode hands shapes to the backend's native drawing
// when it implements VectorBackend.
//
// Fills compare colors exactly and flood 4-connected, so every fill needs
// a closed outline of one pure color. Seeds are the rectangle center, the
// circle or ellipse center, or the vertex mean for triangles and polygons.
// The vertex mean can lie outside a concave polygon, which then fills the
// wrong region; concave filling is not supported.
//
// # Errors
//
// Self-intersecting, unchained or unclosed polygons are rejected with an
// error wrapping ErrInvalidPolygon and nothing is drawn. Empty input and
// shapes with non-positive radii draw nothing and return nil. A failed
// texture upload returns an error wrapping ErrUpload.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) covers [x, x+1) × [y, y+1)
package zenith

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
