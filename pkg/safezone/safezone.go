// Package safezone tracks the canvas regions that platform UI chrome can
// occlude.
//
// Two kinds of zones are tracked:
//
//   - Safe-zone margins: a per-device-class margin pair that content should
//     stay inside. Mobile margins are wider than desktop because the player
//     controls cover more of the frame on small screens.
//   - Danger zones: fixed rectangles reserved by player UI (the duration
//     badge, the channel watermark), which content must avoid entirely.
//
// All tables are authored against the 1920x1080 reference canvas and rescaled
// linearly to the actual canvas. The default registry is immutable static
// configuration; a custom registry can be built from configuration overrides
// at startup and is never mutated afterwards.
package safezone

import (
	"github.com/matzehuels/framefit/pkg/canvas"
	"github.com/matzehuels/framefit/pkg/geometry"
)

// DeviceClass selects the margin table.
type DeviceClass string

// Recognized device classes.
const (
	Desktop DeviceClass = "desktop"
	Mobile  DeviceClass = "mobile"
)

// Margins is a safe-zone margin pair in reference-canvas pixels.
type Margins struct {
	X float64
	Y float64
}

// DangerZone is a platform UI rectangle that content must avoid, in
// reference-canvas coordinates.
type DangerZone struct {
	Label string
	Rect  geometry.Rect
}

// Well-known danger zone labels.
const (
	LabelDurationBadge    = "duration badge"
	LabelChannelWatermark = "channel watermark"
	LabelProgressBar      = "progress bar"
)

// defaultMargins is the built-in margin table at the 1920x1080 reference.
var defaultMargins = map[DeviceClass]Margins{
	Desktop: {X: 64, Y: 48},
	Mobile:  {X: 96, Y: 72},
}

// defaultDangerZones is the built-in danger rectangle set at the 1920x1080
// reference. The duration badge dominates the bottom-right corner; the
// channel watermark sits just above it; the progress bar hugs the bottom edge
// on hover.
var defaultDangerZones = []DangerZone{
	{Label: LabelDurationBadge, Rect: geometry.Rect{X: 1750, Y: 1000, Width: 170, Height: 80}},
	{Label: LabelChannelWatermark, Rect: geometry.Rect{X: 1756, Y: 900, Width: 164, Height: 92}},
	{Label: LabelProgressBar, Rect: geometry.Rect{X: 0, Y: 1064, Width: 1920, Height: 16}},
}

// Registry holds the margin and danger-zone tables. The zero value is not
// usable; construct with Defaults or New.
type Registry struct {
	margins map[DeviceClass]Margins
	zones   []DangerZone
}

// Defaults returns a registry with the built-in tables.
func Defaults() *Registry {
	return New(defaultMargins, defaultDangerZones)
}

// DefaultDangerZones returns a copy of the built-in danger rectangle set at
// the reference canvas, for callers composing their own registry.
func DefaultDangerZones() []DangerZone {
	z := make([]DangerZone, len(defaultDangerZones))
	copy(z, defaultDangerZones)
	return z
}

// New builds a registry from explicit tables, copying both so later mutation
// of the arguments cannot affect the registry. Margins missing a device class
// fall back to the built-in table for that class.
func New(margins map[DeviceClass]Margins, zones []DangerZone) *Registry {
	m := make(map[DeviceClass]Margins, len(defaultMargins))
	for class, def := range defaultMargins {
		if v, ok := margins[class]; ok {
			m[class] = v
		} else {
			m[class] = def
		}
	}
	z := make([]DangerZone, len(zones))
	copy(z, zones)
	return &Registry{margins: m, zones: z}
}

// MarginsFor returns the margins for a device class scaled to the given
// canvas. Unknown classes fall back to desktop.
func (r *Registry) MarginsFor(class DeviceClass, c canvas.Canvas) Margins {
	m, ok := r.margins[class]
	if !ok {
		m = r.margins[Desktop]
	}
	return Margins{X: m.X * c.ScaleX(), Y: m.Y * c.ScaleY()}
}

// SafeArea returns the canvas rectangle inset by the margins for a device
// class, scaled to the given canvas.
func (r *Registry) SafeArea(class DeviceClass, c canvas.Canvas) geometry.Rect {
	m := r.MarginsFor(class, c)
	return c.Bounds().Inset(m.X, m.Y)
}

// DangerZones returns the danger rectangles scaled to the given canvas.
func (r *Registry) DangerZones(c canvas.Canvas) []DangerZone {
	out := make([]DangerZone, len(r.zones))
	sx, sy := c.ScaleX(), c.ScaleY()
	for i, z := range r.zones {
		out[i] = DangerZone{Label: z.Label, Rect: z.Rect.Scale(sx, sy)}
	}
	return out
}

// DurationBadge returns the duration badge zone scaled to the given canvas
// and true, or a zero zone and false if the registry has no such zone.
func (r *Registry) DurationBadge(c canvas.Canvas) (DangerZone, bool) {
	for _, z := range r.zones {
		if z.Label == LabelDurationBadge {
			return DangerZone{Label: z.Label, Rect: z.Rect.Scale(c.ScaleX(), c.ScaleY())}, true
		}
	}
	return DangerZone{}, false
}

// Intersecting returns the danger zones (scaled to the canvas) that the given
// rectangle overlaps, with an optional padding buffer.
func (r *Registry) Intersecting(rect geometry.Rect, c canvas.Canvas, padding float64) []DangerZone {
	var hits []DangerZone
	for _, z := range r.DangerZones(c) {
		if geometry.Overlaps(rect, z.Rect, padding) {
			hits = append(hits, z)
		}
	}
	return hits
}
