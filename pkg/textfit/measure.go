package textfit

import (
	"strings"
	"unicode"

	"github.com/matzehuels/framefit/pkg/geometry"
)

// MeasureWidth estimates the pixel width of a single line of text.
// Each character is classified as space, wide, narrow, uppercase, lowercase,
// or digit and multiplied by the matching family ratio; anything else uses
// the family's average ratio. Weights of 700 and up widen the result by 5%.
func MeasureWidth(text string, fontSize float64, family string, weight int) float64 {
	m := FontMetrics(family)

	var width float64
	for _, r := range text {
		width += charWidth(r, m) * fontSize
	}
	if weight >= 700 {
		width *= boldWidthFactor
	}
	return width
}

// charWidth returns the width ratio for a single character. Classification
// order matters: the wide and narrow sets take precedence over the
// upper/lower/digit classes.
func charWidth(r rune, m Metrics) float64 {
	switch {
	case r == ' ':
		return m.Space
	case strings.ContainsRune(wideChars, r):
		return m.AvgCharWidth * wideCharFactor
	case strings.ContainsRune(narrowChars, r):
		return m.AvgCharWidth * narrowCharFactor
	case unicode.IsUpper(r):
		return m.Capital
	case unicode.IsLower(r):
		return m.Lower
	case unicode.IsDigit(r):
		return m.Number
	default:
		return m.AvgCharWidth
	}
}

// LineHeight returns the distance between successive baselines for a font
// size and line-height multiplier.
func LineHeight(fontSize float64, family string, lineHeightMultiplier float64) float64 {
	return fontSize * FontMetrics(family).Height * lineHeightMultiplier
}

// MeasureHeight returns the height of a single line box.
func MeasureHeight(fontSize float64, family string) float64 {
	return fontSize * FontMetrics(family).Height
}

// Ascent returns the distance from baseline to the top of the line box.
func Ascent(fontSize float64, family string) float64 {
	return fontSize * FontMetrics(family).Ascent
}

// Descent returns the distance from baseline to the bottom of the line box.
func Descent(fontSize float64, family string) float64 {
	return fontSize * FontMetrics(family).Descent
}

// MeasureBlock estimates the bounding size of a multi-line block: the widest
// line by the stacked line heights. The block height counts n-1 full line
// advances plus the font size of the last line, so single-line blocks are
// exactly one font size tall.
func MeasureBlock(lines []string, fontSize float64, family string, weight int, lineHeightMultiplier float64) geometry.Size {
	if len(lines) == 0 {
		return geometry.Size{}
	}

	var maxWidth float64
	for _, line := range lines {
		if w := MeasureWidth(line, fontSize, family, weight); w > maxWidth {
			maxWidth = w
		}
	}

	lineHeight := LineHeight(fontSize, family, lineHeightMultiplier)
	height := float64(len(lines)-1)*lineHeight + fontSize

	return geometry.Size{Width: maxWidth, Height: height}
}
