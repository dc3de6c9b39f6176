package placement

import (
	"fmt"

	"github.com/matzehuels/framefit/pkg/canvas"
	"github.com/matzehuels/framefit/pkg/geometry"
	"github.com/matzehuels/framefit/pkg/safezone"
)

// badgeClearance is the gap left above the duration badge after an upward
// shift, in canvas pixels at the reference size.
const badgeClearance = 12.0

// AdjustForMargins performs a single corrective shift per edge to push a
// text block back inside the safe-zone margins, then one more upward shift
// if the block's resolved box still enters the duration badge zone.
//
// This is one-shot by design: if the block cannot fit the safe area (too
// wide, too tall), the returned position is still out of bounds and the
// shortfall is reported through the warnings — the block is never squeezed
// or force-fit.
func AdjustForMargins(size geometry.Size, anchor geometry.Anchor, pos geometry.Point,
	c canvas.Canvas, zones *safezone.Registry, class safezone.DeviceClass) (geometry.Point, []string) {

	if zones == nil {
		zones = safezone.Defaults()
	}
	safe := zones.SafeArea(class, c)

	bounds := geometry.ResolveBounds(pos, anchor, size)
	var warnings []string

	// One shift per edge, left-right then top-bottom.
	if bounds.X < safe.X {
		pos.X += safe.X - bounds.X
	} else if bounds.Right() > safe.Right() {
		pos.X -= bounds.Right() - safe.Right()
	}
	if bounds.Y < safe.Y {
		pos.Y += safe.Y - bounds.Y
	} else if bounds.Bottom() > safe.Bottom() {
		pos.Y -= bounds.Bottom() - safe.Bottom()
	}

	bounds = geometry.ResolveBounds(pos, anchor, size)
	if bounds.X < safe.X || bounds.Right() > safe.Right() {
		warnings = append(warnings, fmt.Sprintf(
			"text block width %.0f exceeds safe area width %.0f", size.Width, safe.Width))
	}
	if bounds.Y < safe.Y || bounds.Bottom() > safe.Bottom() {
		warnings = append(warnings, fmt.Sprintf(
			"text block height %.0f exceeds safe area height %.0f", size.Height, safe.Height))
	}

	// The duration badge gets its own check: the bottom-right corner is the
	// most common collision for bottom-row text.
	if badge, ok := zones.DurationBadge(c); ok {
		if geometry.Overlaps(bounds, badge.Rect, 0) {
			shift := bounds.Bottom() - badge.Rect.Y + badgeClearance*c.ScaleY()
			pos.Y -= shift
			bounds = geometry.ResolveBounds(pos, anchor, size)
			if bounds.Y < safe.Y {
				warnings = append(warnings, "text block cannot clear the duration badge within the safe area")
			}
		}
	}

	return pos, warnings
}
