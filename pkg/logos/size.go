package logos

import (
	"github.com/matzehuels/framefit/pkg/canvas"
	"github.com/matzehuels/framefit/pkg/geometry"
)

// SizeOptions bounds logo sizing. Zero-valued fields take the defaults.
type SizeOptions struct {
	AspectRatio float64 // width / height of the source art (default 1)
	MinHeight   float64 // smallest rendered height in pixels (default 60)
	MaxHeight   float64 // largest rendered height in pixels (default 200)
}

// Sizing defaults and caps.
const (
	DefaultMinHeight = 60.0
	DefaultMaxHeight = 200.0

	// Width caps as fractions of the canvas width. A lone logo may be a
	// prominent brand mark; several logos must share the frame.
	maxWidthFracSingle   = 0.40
	maxWidthFracMultiple = 0.25
)

// Base target heights at the 1920x1080 reference, bucketed by logo count.
// Grouped slots (clusters, stacks) run smaller because their logos gang up.
var (
	baseHeights        = map[int]float64{1: 140, 2: 120, 3: 100}
	baseHeightsGrouped = map[int]float64{1: 120, 2: 100, 3: 85}
)

func (o SizeOptions) withDefaults() SizeOptions {
	if o.AspectRatio <= 0 {
		o.AspectRatio = 1
	}
	if o.MinHeight <= 0 {
		o.MinHeight = DefaultMinHeight
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = DefaultMaxHeight
	}
	return o
}

// Size computes the rendered width and height for logos in a slot.
//
// The base height is bucketed by count (1, 2, or 3-and-up) and by whether
// the slot groups logos, scaled by the canvas scale factor, and clamped to
// [MinHeight, MaxHeight]. Width follows from the aspect ratio, capped at 40%
// of the canvas width for a single logo and 25% for several.
//
// The clamp resolution is a fixed two-pass sequence: cap the width, recompute
// the height from it, re-raise that height to the minimum if it fell under,
// and if it was re-raised recompute the width once more under the cap. The
// order is load-bearing for extreme aspect ratios and must not be reordered;
// reproducibility beats elegance here.
func Size(count int, c canvas.Canvas, slot Slot, opts SizeOptions) geometry.Size {
	opts = opts.withDefaults()

	bucket := count
	if bucket < 1 {
		bucket = 1
	}
	if bucket > 3 {
		bucket = 3
	}
	table := baseHeights
	if slot.grouped() {
		table = baseHeightsGrouped
	}

	height := table[bucket] * c.Scale()
	height = clampF(height, opts.MinHeight, opts.MaxHeight)
	width := height * opts.AspectRatio

	maxWidth := maxWidthFracSingle * c.Width
	if count > 1 {
		maxWidth = maxWidthFracMultiple * c.Width
	}

	if width > maxWidth {
		width = maxWidth
		height = width / opts.AspectRatio
		if height < opts.MinHeight {
			height = opts.MinHeight
			width = height * opts.AspectRatio
			if width > maxWidth {
				width = maxWidth
			}
		}
	}

	return geometry.Size{Width: width, Height: height}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
