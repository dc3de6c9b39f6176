// Package render draws layout plans as SVG debug overlays.
//
// The overlay is a diagnostic view, not a production thumbnail: it shows
// the canvas frame, the safe area for the selected device class, the
// platform danger zones, the subject box, and the computed text and logo
// boxes, so a layout can be inspected without compositing the real image.
//
// # Usage
//
//	svg, err := render.OverlaySVG(opts, result)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("layout.svg", svg, 0o644)
//
// Options toggle individual layers:
//
//   - [WithGrid] adds rule-of-thirds guides
//   - [WithLegend] appends a panel listing warnings and validation errors
//   - [WithBackground] embeds an image reference behind the overlay
//   - [WithoutZones] hides the safe-area and danger-zone layers
package render
