package logos

import (
	"github.com/matzehuels/framefit/pkg/canvas"
	"github.com/matzehuels/framefit/pkg/geometry"
)

// Logo is an input logo: a name and the aspect ratio of its source art.
type Logo struct {
	Name        string
	AspectRatio float64
}

// Placed is a logo with its computed bounds. X and Y are the absolute
// top-left corner; Anchor records the slot's alignment for renderers that
// emit anchored coordinates.
type Placed struct {
	Name      string
	Bounds    geometry.Rect
	Anchor    geometry.Anchor
	SlotKey   string
	SlotIndex int
}

// AlignOptions controls grid alignment.
type AlignOptions struct {
	Spacing float64 // gap between logos at the 1920x1080 reference (default 16)
	SizeOptions
}

// DefaultSpacing is the reference-canvas gap between grouped logos.
const DefaultSpacing = 16.0

// AlignToGrid arranges logos in a slot by accumulating offsets outward from
// the anchor: end-anchored runs grow leftward, start-anchored runs grow
// rightward, stacks grow downward. A middle-anchored slot distributes the
// run symmetrically around the anchor. Each logo's offset is the sum of the
// preceding sizes plus spacing, so the output is overlap-free whenever
// spacing is non-negative.
func AlignToGrid(items []Logo, slot Slot, c canvas.Canvas, opts AlignOptions) []Placed {
	if len(items) == 0 {
		return nil
	}
	if opts.Spacing <= 0 {
		opts.Spacing = DefaultSpacing
	}
	spacing := opts.Spacing * c.Scale()

	// Per-logo sizes: shared bounds, individual aspect ratios.
	sizes := make([]geometry.Size, len(items))
	for i, item := range items {
		o := opts.SizeOptions
		if item.AspectRatio > 0 {
			o.AspectRatio = item.AspectRatio
		}
		sizes[i] = Size(len(items), c, slot, o)
	}

	anchor := geometry.Point{X: slot.FracX * c.Width, Y: slot.FracY * c.Height}

	placed := make([]Placed, len(items))
	if slot.Kind == KindStack {
		y := anchor.Y
		for i, item := range items {
			bounds := geometry.ResolveBounds(geometry.Point{X: anchor.X, Y: y}, slot.Anchor, sizes[i])
			placed[i] = Placed{Name: item.Name, Bounds: bounds, Anchor: slot.Anchor, SlotKey: slot.Key, SlotIndex: i}
			y += sizes[i].Height + spacing
		}
		return placed
	}

	switch slot.Anchor {
	case geometry.AnchorEnd:
		// Right edge pinned at the anchor, run grows leftward.
		right := anchor.X
		for i, item := range items {
			left := right - sizes[i].Width
			placed[i] = Placed{
				Name:      item.Name,
				Bounds:    geometry.Rect{X: left, Y: anchor.Y, Width: sizes[i].Width, Height: sizes[i].Height},
				Anchor:    slot.Anchor,
				SlotKey:   slot.Key,
				SlotIndex: i,
			}
			right = left - spacing
		}
	case geometry.AnchorMiddle:
		// Symmetric distribution: total run centered on the anchor.
		var total float64
		for _, s := range sizes {
			total += s.Width
		}
		total += spacing * float64(len(items)-1)
		x := anchor.X - total/2
		for i, item := range items {
			placed[i] = Placed{
				Name:      item.Name,
				Bounds:    geometry.Rect{X: x, Y: anchor.Y, Width: sizes[i].Width, Height: sizes[i].Height},
				Anchor:    slot.Anchor,
				SlotKey:   slot.Key,
				SlotIndex: i,
			}
			x += sizes[i].Width + spacing
		}
	default:
		// Start anchor: left edge pinned, run grows rightward.
		x := anchor.X
		for i, item := range items {
			placed[i] = Placed{
				Name:      item.Name,
				Bounds:    geometry.Rect{X: x, Y: anchor.Y, Width: sizes[i].Width, Height: sizes[i].Height},
				Anchor:    slot.Anchor,
				SlotKey:   slot.Key,
				SlotIndex: i,
			}
			x += sizes[i].Width + spacing
		}
	}
	return placed
}

// EqualSpacing redistributes already-placed logos so the gaps filling a
// bounding box are exactly equal: gap = (box - sum of sizes) / (n - 1).
// A single logo is centered in the box. Vertical runs pass vertical=true.
// The returned slice is a copy; the input is not modified.
func EqualSpacing(items []Placed, box geometry.Rect, vertical bool) []Placed {
	out := make([]Placed, len(items))
	copy(out, items)
	if len(out) == 0 {
		return out
	}

	var total float64
	for _, p := range out {
		if vertical {
			total += p.Bounds.Height
		} else {
			total += p.Bounds.Width
		}
	}

	if len(out) == 1 {
		if vertical {
			out[0].Bounds.Y = box.Y + (box.Height-total)/2
		} else {
			out[0].Bounds.X = box.X + (box.Width-total)/2
		}
		return out
	}

	if vertical {
		gap := (box.Height - total) / float64(len(out)-1)
		y := box.Y
		for i := range out {
			out[i].Bounds.Y = y
			y += out[i].Bounds.Height + gap
		}
	} else {
		gap := (box.Width - total) / float64(len(out)-1)
		x := box.X
		for i := range out {
			out[i].Bounds.X = x
			x += out[i].Bounds.Width + gap
		}
	}
	return out
}
