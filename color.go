package zenith

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by ParseColor for strings that are neither a
// hex triplet nor an SVG color name.
var ErrUnknownColor = errors.New("zenith: unknown color")

// Color is a non-premultiplied 8-bit RGBA color.
//
// Fill algorithms compare colors with ==, so a channel that differs by one
// is a different color. Outlines that are meant to stop a fill must be drawn
// in the exact border color with no blending.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA returns the color as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String returns the color as "#RRGGBBAA".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA8 creates a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to a non-premultiplied Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	c, ok := parseHexColor(hex)
	if !ok {
		return Black
	}
	return c
}

// Named returns the SVG 1.1 color with the given name, e.g. "cornflowerblue".
// The lookup is case-insensitive. The second result reports whether the
// name is known.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

// ParseColor accepts either a '#'-prefixed hex color or an SVG color name.
// "transparent" is accepted as fully transparent black.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return Transparent, nil
	}
	if strings.HasPrefix(s, "#") {
		if c, ok := parseHexColor(s); ok {
			return c, nil
		}
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	if c, ok := Named(s); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func parseHexColor(hex string) (Color, bool) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		return Color{}, false
	}
	if !ok {
		return Color{}, false
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, true //nolint:gosec // each value is at most 255
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = RGBA8(0, 0, 0, 0)
)
