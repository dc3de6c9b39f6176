package textfit

import (
	"fmt"
	"math"

	"github.com/matzehuels/framefit/pkg/geometry"
)

// Defaults for FitOptions fields left at their zero value.
const (
	DefaultMinFontSize          = 24.0
	DefaultMaxFontSize          = 120.0
	DefaultMaxLines             = 2
	DefaultLineHeightMultiplier = 1.1

	// fontSizeStep is the search decrement. Coarse on purpose: a 4px
	// difference is invisible at thumbnail preview sizes and keeps the
	// search to a handful of measurements.
	fontSizeStep = 4.0
)

// Warning strings attached to a FitResult that could not satisfy the box.
const (
	WarnMinSizeOverflow = "text at minimum size may overflow"
	WarnWidthExceeded   = "width exceeds available width"
	WarnHeightExceeded  = "height exceeds available height"
)

// FitOptions bounds the auto-fit search.
type FitOptions struct {
	MaxWidth  float64 // available box width in pixels
	MaxHeight float64 // available box height in pixels

	MinFontSize float64 // smallest acceptable size (default 24)
	MaxFontSize float64 // largest acceptable size (default 120)

	FontFamily string // CSS-style family, primary name is looked up
	FontWeight int    // numeric weight, >=700 counts as bold

	LineHeightMultiplier float64 // baseline spacing multiplier (default 1.1)
	MaxLines             int     // wrap budget (default 2)

	StrokeWidth  float64 // outline stroke; shrinks the effective box by 2x
	ShadowOffset float64 // drop shadow offset; shrinks the effective box by its magnitude
}

// withDefaults returns the options with zero-valued fields filled in.
func (o FitOptions) withDefaults() FitOptions {
	if o.MinFontSize == 0 {
		o.MinFontSize = DefaultMinFontSize
	}
	if o.MaxFontSize == 0 {
		o.MaxFontSize = DefaultMaxFontSize
	}
	if o.MaxLines == 0 {
		o.MaxLines = DefaultMaxLines
	}
	if o.LineHeightMultiplier == 0 {
		o.LineHeightMultiplier = DefaultLineHeightMultiplier
	}
	return o
}

// validate rejects programmer-error inputs. Layout shortfalls are never
// errors; those surface as warnings on the result.
func (o FitOptions) validate() error {
	if o.MaxWidth <= 0 || o.MaxHeight <= 0 {
		return fmt.Errorf("textfit: non-positive fit box %gx%g", o.MaxWidth, o.MaxHeight)
	}
	if o.MinFontSize <= 0 {
		return fmt.Errorf("textfit: non-positive min font size %g", o.MinFontSize)
	}
	if o.MinFontSize > o.MaxFontSize {
		return fmt.Errorf("textfit: min font size %g exceeds max %g", o.MinFontSize, o.MaxFontSize)
	}
	if o.MaxLines < 1 {
		return fmt.Errorf("textfit: max lines %d below 1", o.MaxLines)
	}
	return nil
}

// FitResult is the outcome of an auto-fit search. Fits is false when even the
// minimum font size could not satisfy the box; the block is still returned so
// callers can decide whether to accept the overflow.
type FitResult struct {
	FontSize float64
	Lines    []string
	Size     geometry.Size
	Fits     bool
	Warnings []string
}

// AutoFit finds the largest font size in [MinFontSize, MaxFontSize] whose
// wrapped text block fits the box, searching downward in fixed 4px steps.
// The effective box is the requested box minus stroke and shadow allowances.
//
// The returned font size is always within the configured bounds. When no
// size fits, the minimum-size block is returned with Fits=false and
// warnings describing which dimension overflows. An error is returned only
// for malformed options, never for text that is hard to fit.
func AutoFit(text string, opts FitOptions) (FitResult, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return FitResult{}, err
	}

	effWidth := opts.MaxWidth - 2*opts.StrokeWidth - math.Abs(opts.ShadowOffset)
	effHeight := opts.MaxHeight - 2*opts.StrokeWidth - math.Abs(opts.ShadowOffset)

	metrics := FontMetrics(opts.FontFamily)

	for size := opts.MaxFontSize; size >= opts.MinFontSize; size -= fontSizeStep {
		lines, block := wrapAndMeasure(text, size, effWidth, metrics, opts)
		if block.Width <= effWidth && block.Height <= effHeight {
			return FitResult{FontSize: size, Lines: lines, Size: block, Fits: true}, nil
		}
	}

	// Nothing fit: fall back to the minimum size and report the shortfall.
	lines, block := wrapAndMeasure(text, opts.MinFontSize, effWidth, metrics, opts)
	warnings := []string{WarnMinSizeOverflow}
	if block.Width > effWidth {
		warnings = append(warnings, WarnWidthExceeded)
	}
	if block.Height > effHeight {
		warnings = append(warnings, WarnHeightExceeded)
	}
	return FitResult{
		FontSize: opts.MinFontSize,
		Lines:    lines,
		Size:     block,
		Warnings: warnings,
	}, nil
}

// wrapAndMeasure wraps text for a candidate size and measures the block.
func wrapAndMeasure(text string, size, effWidth float64, m Metrics, opts FitOptions) ([]string, geometry.Size) {
	maxChars := int(effWidth / (size * m.AvgCharWidth))
	if maxChars < 1 {
		maxChars = 1
	}
	lines := SmartWordWrap(text, maxChars, opts.MaxLines)
	block := MeasureBlock(lines, size, opts.FontFamily, opts.FontWeight, opts.LineHeightMultiplier)
	return lines, block
}
