package zenith

import (
	"fmt"
	"strings"

	"github.com/kosmit147/zenith2d/internal/fill"
)

// RenderingAlgorithm selects how the Renderer turns shapes into pixels.
//
// The mode is per-Renderer, not global, and can be switched between frames.
type RenderingAlgorithm int

const (
	// Software plots outlines with the DDA and conic rasterizers, submits
	// them as point batches, and fills shapes on a scratch Pixmap that is
	// uploaded as a texture (default).
	Software RenderingAlgorithm = iota

	// Hardware hands shapes to the backend's native vector drawing. It
	// requires a VectorBackend and falls back to Software without one.
	Hardware
)

// String returns the rendering algorithm name.
func (a RenderingAlgorithm) String() string {
	switch a {
	case Software:
		return "Software"
	case Hardware:
		return "Hardware"
	default:
		return "Unknown"
	}
}

// ParseRenderingAlgorithm parses a rendering algorithm name, ignoring case.
func ParseRenderingAlgorithm(s string) (RenderingAlgorithm, error) {
	switch strings.ToLower(s) {
	case "software", "custom":
		return Software, nil
	case "hardware", "vector":
		return Hardware, nil
	}
	return 0, fmt.Errorf("zenith: unknown rendering algorithm %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a RenderingAlgorithm) MarshalText() ([]byte, error) {
	if a != Software && a != Hardware {
		return nil, fmt.Errorf("zenith: invalid rendering algorithm %d", int(a))
	}
	return []byte(strings.ToLower(a.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *RenderingAlgorithm) UnmarshalText(text []byte) error {
	v, err := ParseRenderingAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// FillAlgorithm selects the seed fill used for filled shapes in Software
// mode.
type FillAlgorithm int

const (
	// BoundaryFill floods from the seed until it reaches the shape color
	// (default).
	BoundaryFill FillAlgorithm = iota

	// FloodFill floods from the seed through transparent pixels only.
	FloodFill
)

// String returns the fill algorithm name.
func (a FillAlgorithm) String() string {
	switch a {
	case BoundaryFill:
		return "BoundaryFill"
	case FloodFill:
		return "FloodFill"
	default:
		return "Unknown"
	}
}

// ParseFillAlgorithm parses a fill algorithm name, ignoring case and
// separators ("boundary-fill", "boundary_fill", "boundary").
func ParseFillAlgorithm(s string) (FillAlgorithm, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	switch norm {
	case "boundaryfill", "boundary":
		return BoundaryFill, nil
	case "floodfill", "flood":
		return FloodFill, nil
	}
	return 0, fmt.Errorf("zenith: unknown fill algorithm %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a FillAlgorithm) MarshalText() ([]byte, error) {
	switch a {
	case BoundaryFill:
		return []byte("boundary"), nil
	case FloodFill:
		return []byte("flood"), nil
	}
	return nil, fmt.Errorf("zenith: invalid fill algorithm %d", int(a))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *FillAlgorithm) UnmarshalText(text []byte) error {
	v, err := ParseFillAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a FillAlgorithm) internal() fill.Algorithm {
	if a == FloodFill {
		return fill.Flood
	}
	return fill.Boundary
}
