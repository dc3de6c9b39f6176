package contrast

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/matzehuels/framefit/pkg/geometry"
)

// Sample is a background color estimate. Defaulted distinguishes a real
// measurement from a fallback, so callers can tell "the background is gray"
// from "we could not sample and assumed gray".
type Sample struct {
	Color     Color
	Defaulted bool
	Cause     string // why the sample was defaulted; empty when measured
}

// Sampled wraps a measured color.
func Sampled(c Color) Sample {
	return Sample{Color: c}
}

// DefaultedTo wraps a fallback color with the reason sampling failed.
func DefaultedTo(c Color, cause string) Sample {
	return Sample{Color: c, Defaulted: true, Cause: cause}
}

// DefaultGridSize is the sampling grid used by SampleRegion callers that
// have no reason to pick another granularity.
const DefaultGridSize = 3

// SampleRegion estimates the dominant color of a region by averaging a
// grid x grid set of sub-region extracts. This is deliberately coarse: the
// engine needs "roughly how bright is the area behind this text", not a
// histogram.
//
// A nil image or a region that misses the image entirely yields a gray
// sample tagged with the cause. A non-positive grid is a programmer error.
func SampleRegion(img image.Image, region geometry.Rect, grid int) (Sample, error) {
	if grid <= 0 {
		return Sample{}, fmt.Errorf("contrast: non-positive sampling grid %d", grid)
	}
	if img == nil {
		return DefaultedTo(DefaultGray, "no background image"), nil
	}
	if region.Empty() {
		return DefaultedTo(DefaultGray, "empty sample region"), nil
	}

	cellW := region.Width / float64(grid)
	cellH := region.Height / float64(grid)

	var rSum, gSum, bSum float64
	cells := 0
	for row := 0; row < grid; row++ {
		for col := 0; col < grid; col++ {
			cell := geometry.Rect{
				X:      region.X + float64(col)*cellW,
				Y:      region.Y + float64(row)*cellH,
				Width:  cellW,
				Height: cellH,
			}
			c, ok := averageCell(img, cell)
			if !ok {
				continue
			}
			rSum += float64(c.R)
			gSum += float64(c.G)
			bSum += float64(c.B)
			cells++
		}
	}
	if cells == 0 {
		return DefaultedTo(DefaultGray, "sample region outside image"), nil
	}

	n := float64(cells)
	return Sampled(Color{
		R: uint8(rSum/n + 0.5),
		G: uint8(gSum/n + 0.5),
		B: uint8(bSum/n + 0.5),
	}), nil
}

// averageCell approximates the average color of one grid cell by scaling it
// down to a single pixel. Returns false when the cell does not intersect the
// image.
func averageCell(img image.Image, cell geometry.Rect) (Color, bool) {
	sr := image.Rect(int(cell.X), int(cell.Y), int(cell.Right()+0.5), int(cell.Bottom()+0.5))
	sr = sr.Intersect(img.Bounds())
	if sr.Empty() {
		return Color{}, false
	}

	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, sr, xdraw.Src, nil)
	px := dst.RGBAAt(0, 0)
	return Color{R: px.R, G: px.G, B: px.B}, true
}
