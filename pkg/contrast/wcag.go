package contrast

import "math"

// WCAG contrast ratio thresholds.
const (
	RatioAA      = 4.5 // normal text
	RatioAALarge = 3.0 // large text
)

// RelativeLuminance returns the WCAG relative luminance of a color in [0, 1].
// Each sRGB channel is gamma-linearized and the channels are combined with
// the standard perceptual weights.
func RelativeLuminance(c Color) float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize undoes sRGB gamma for one channel value in [0, 1].
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio returns the WCAG contrast ratio between two colors. The result is
// symmetric and falls in [1, 21]: 1 for identical colors, 21 for black
// against white.
func Ratio(a, b Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// IsLight reports whether a color reads as light, by luminance threshold.
// Light backgrounds pair with dark stroke outlines, dark backgrounds with
// drop shadows.
func IsLight(c Color) bool {
	return RelativeLuminance(c) > 0.5
}
