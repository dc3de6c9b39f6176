// Package canvas defines the thumbnail canvas and its reference sizes.
//
// All static zone and margin tables in the engine are authored against the
// 1920x1080 reference canvas and rescaled linearly to the actual canvas, so a
// 1280x720 request sees the same proportional layout as a 1080p one.
package canvas

import "github.com/matzehuels/framefit/pkg/geometry"

// Reference canvas sizes. Zone tables are keyed to RefWidth x RefHeight.
const (
	RefWidth  = 1920.0
	RefHeight = 1080.0

	// SDWidth and SDHeight are the common lower-resolution canvas.
	SDWidth  = 1280.0
	SDHeight = 720.0
)

// Canvas is the drawing surface for a single thumbnail. The aspect ratio is
// fixed by the caller (conventionally 16:9); the engine never changes it.
type Canvas struct {
	Width  float64
	Height float64
}

// Default returns the 1920x1080 reference canvas.
func Default() Canvas {
	return Canvas{Width: RefWidth, Height: RefHeight}
}

// Bounds returns the full canvas rectangle.
func (c Canvas) Bounds() geometry.Rect {
	return geometry.Rect{Width: c.Width, Height: c.Height}
}

// ScaleX returns the horizontal scale factor from the reference canvas.
func (c Canvas) ScaleX() float64 { return c.Width / RefWidth }

// ScaleY returns the vertical scale factor from the reference canvas.
func (c Canvas) ScaleY() float64 { return c.Height / RefHeight }

// Scale returns the uniform scale factor from the reference canvas, the
// smaller of the horizontal and vertical factors. Element sizing uses this so
// content never grows past either dimension.
func (c Canvas) Scale() float64 {
	sx, sy := c.ScaleX(), c.ScaleY()
	if sx < sy {
		return sx
	}
	return sy
}

// Center returns the canvas center point.
func (c Canvas) Center() geometry.Point {
	return geometry.Point{X: c.Width / 2, Y: c.Height / 2}
}

// ThirdsX returns the two rule-of-thirds vertical lines.
func (c Canvas) ThirdsX() [2]float64 {
	return [2]float64{c.Width / 3, 2 * c.Width / 3}
}

// Valid reports whether the canvas has positive dimensions.
func (c Canvas) Valid() bool {
	return c.Width > 0 && c.Height > 0
}
