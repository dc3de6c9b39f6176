// Package contrast implements WCAG contrast math, palette-based text color
// selection, and coarse background color sampling.
//
// The selection rules follow WCAG 2.x: a text color is preferred when it
// reaches the AA threshold (4.5:1) against the sampled background, accepted
// at the AA-large threshold (3:1), and otherwise the best available color is
// used together with a backing treatment (stroke or shadow) to recover
// legibility.
package contrast

import (
	"fmt"
	"strings"
)

// Color is an opaque sRGB color.
type Color struct {
	R, G, B uint8
}

// Common colors used across palettes and tests.
var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}

	// DefaultGray is the fallback background estimate used when sampling
	// is impossible.
	DefaultGray = Color{128, 128, 128}
)

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses "#RGB" or "#RRGGBB" (the leading "#" is optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("contrast: invalid hex color %q", s)
		}
		return Color{R: r * 17, G: g * 17, B: b * 17}, nil
	case 6:
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "%2x%2x%2x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("contrast: invalid hex color %q", s)
		}
		return Color{R: r, G: g, B: b}, nil
	default:
		return Color{}, fmt.Errorf("contrast: invalid hex color length %q", s)
	}
}

// MustHex parses a hex color and panics on failure. For package-level
// palette constants only.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
