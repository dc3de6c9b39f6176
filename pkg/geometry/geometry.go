// Package geometry provides the rectangle and anchor primitives used by the
// layout engine.
//
// All coordinates are in canvas pixels with the origin at the top-left corner,
// x increasing rightward and y increasing downward. Rectangles are axis-aligned
// and stored as top-left corner plus size.
//
// Anchors describe how a single position coordinate maps to a bounding box:
// a "start"-anchored element extends rightward from its x, a "middle"-anchored
// element is centered on it, and an "end"-anchored element extends leftward.
package geometry

// Anchor is the horizontal alignment reference used to resolve an element's
// bounding box from a single position coordinate.
type Anchor string

// Recognized anchors.
const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in canvas pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle: top-left corner plus size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Scale returns the rectangle with all coordinates and dimensions multiplied
// by sx horizontally and sy vertically. Used to map reference-canvas zones
// onto an actual canvas.
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{
		X:      r.X * sx,
		Y:      r.Y * sy,
		Width:  r.Width * sx,
		Height: r.Height * sy,
	}
}

// Inset returns the rectangle shrunk by dx on the left and right edges and
// dy on the top and bottom edges. Negative values grow the rectangle.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  r.Width - 2*dx,
		Height: r.Height - 2*dy,
	}
}

// ContainsPoint reports whether p lies inside the rectangle (edges inclusive).
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// ContainsRect reports whether other lies entirely inside the rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Overlaps reports whether a and b intersect when each is grown by padding
// on every side. The test is symmetric: Overlaps(a, b, p) == Overlaps(b, a, p).
// Zero padding is an exact AABB intersection test; touching edges do not count
// as an overlap.
func Overlaps(a, b Rect, padding float64) bool {
	return a.X-padding < b.Right() &&
		a.Right()+padding > b.X &&
		a.Y-padding < b.Bottom() &&
		a.Bottom()+padding > b.Y
}

// ResolveBounds maps an anchored position to an absolute bounding box.
// The y coordinate is always the top edge; the anchor only affects how x is
// interpreted: start keeps x as the left edge, middle centers the box on x,
// and end treats x as the right edge. Unknown anchors fall back to start.
func ResolveBounds(pos Point, anchor Anchor, size Size) Rect {
	left := pos.X
	switch anchor {
	case AnchorMiddle:
		left = pos.X - size.Width/2
	case AnchorEnd:
		left = pos.X - size.Width
	}
	return Rect{X: left, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// Clamp returns the rectangle translated the minimum distance needed to lie
// inside bounds. If the rectangle is larger than bounds on an axis, it is
// pinned to the near edge of that axis.
func Clamp(r, bounds Rect) Rect {
	if r.X < bounds.X {
		r.X = bounds.X
	} else if r.Right() > bounds.Right() {
		r.X = bounds.Right() - r.Width
	}
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	} else if r.Bottom() > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.Height
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	return r
}
