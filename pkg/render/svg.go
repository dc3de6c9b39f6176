package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/framefit/pkg/geometry"
	"github.com/matzehuels/framefit/pkg/pipeline"
	"github.com/matzehuels/framefit/pkg/safezone"
)

const overlayCSS = `
    .frame { fill: #1a1a1a; stroke: #555; stroke-width: 2; }
    .safe { fill: none; stroke: #2ecc71; stroke-width: 2; stroke-dasharray: 8 6; }
    .danger { fill: rgba(231, 76, 60, 0.25); stroke: #e74c3c; stroke-width: 1.5; }
    .danger-label { fill: #e74c3c; font-family: monospace; font-size: 13px; }
    .subject { fill: none; stroke: #3498db; stroke-width: 2; }
    .textbox { fill: rgba(255, 255, 255, 0.08); stroke: #f1c40f; stroke-width: 1.5; stroke-dasharray: 4 3; }
    .headline { font-family: sans-serif; font-weight: bold; }
    .logo { fill: rgba(230, 126, 34, 0.25); stroke: #e67e22; stroke-width: 1.5; }
    .logo-label { fill: #e67e22; font-family: monospace; font-size: 12px; }
    .grid { stroke: rgba(255, 255, 255, 0.2); stroke-width: 1; }
    .legend-bg { fill: #111; stroke: #555; }
    .legend { fill: #ccc; font-family: monospace; font-size: 13px; }
    .legend-error { fill: #e74c3c; font-family: monospace; font-size: 13px; }
    .legend-warn { fill: #f1c40f; font-family: monospace; font-size: 13px; }`

const (
	legendLineHeight = 20.0
	legendPadding    = 12.0
)

type Option func(*renderer)

type renderer struct {
	showZones  bool
	showGrid   bool
	showLegend bool
	background string
}

// WithGrid adds rule-of-thirds guide lines to the overlay.
func WithGrid() Option { return func(r *renderer) { r.showGrid = true } }

// WithLegend appends a panel below the canvas listing validation errors,
// warnings, and suggestions.
func WithLegend() Option { return func(r *renderer) { r.showLegend = true } }

// WithoutZones hides the safe-area and danger-zone layers.
func WithoutZones() Option { return func(r *renderer) { r.showZones = false } }

// WithBackground embeds an image reference (a URL or relative path) behind
// the overlay instead of the plain dark frame.
func WithBackground(href string) Option { return func(r *renderer) { r.background = href } }

// OverlaySVG renders a layout plan as a standalone SVG document. Options must
// already be validated; the result is drawn exactly as computed, including
// boxes that failed validation, so problems stay visible.
func OverlaySVG(opts *pipeline.Options, result *pipeline.Result, ropts ...Option) ([]byte, error) {
	if opts == nil || result == nil {
		return nil, fmt.Errorf("render: options and result are required")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	r := renderer{showZones: true}
	for _, opt := range ropts {
		opt(&r)
	}

	c := opts.Canvas()
	zones := opts.Zones
	if zones == nil {
		zones = safezone.Defaults()
	}

	totalHeight := c.Height
	var legendLines []legendLine
	if r.showLegend {
		legendLines = buildLegend(result)
		if len(legendLines) > 0 {
			totalHeight += legendPadding*2 + float64(len(legendLines))*legendLineHeight
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.Width, totalHeight, c.Width, totalHeight)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", overlayCSS)

	renderFrame(&buf, &r, c.Width, c.Height)
	if r.showGrid {
		renderGrid(&buf, c.Width, c.Height)
	}
	if r.showZones {
		renderZones(&buf, zones, opts)
	}
	if opts.Subject != nil {
		renderRect(&buf, opts.Subject.Rect(), "subject")
	}
	renderText(&buf, result.Text)
	for _, lp := range result.Logos {
		renderLogo(&buf, lp)
	}
	if len(legendLines) > 0 {
		renderLegend(&buf, c.Width, c.Height, legendLines)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderFrame(buf *bytes.Buffer, r *renderer, w, h float64) {
	fmt.Fprintf(buf, `  <rect class="frame" x="0" y="0" width="%.1f" height="%.1f"/>`+"\n", w, h)
	if r.background != "" {
		fmt.Fprintf(buf, `  <image href="%s" x="0" y="0" width="%.1f" height="%.1f" preserveAspectRatio="xMidYMid slice"/>`+"\n",
			escapeXML(r.background), w, h)
	}
}

func renderGrid(buf *bytes.Buffer, w, h float64) {
	for _, x := range [2]float64{w / 3, 2 * w / 3} {
		fmt.Fprintf(buf, `  <line class="grid" x1="%.1f" y1="0" x2="%.1f" y2="%.1f"/>`+"\n", x, x, h)
	}
	for _, y := range [2]float64{h / 3, 2 * h / 3} {
		fmt.Fprintf(buf, `  <line class="grid" x1="0" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", y, w, y)
	}
}

func renderZones(buf *bytes.Buffer, zones *safezone.Registry, opts *pipeline.Options) {
	c := opts.Canvas()
	safe := zones.SafeArea(opts.DeviceClass(), c)
	renderRect(buf, safe, "safe")

	for _, z := range zones.DangerZones(c) {
		renderRect(buf, z.Rect, "danger")
		fmt.Fprintf(buf, `  <text class="danger-label" x="%.1f" y="%.1f">%s</text>`+"\n",
			z.Rect.X+4, z.Rect.Y-4, escapeXML(z.Label))
	}
}

func renderText(buf *bytes.Buffer, t pipeline.TextPlan) {
	bounds := geometry.ResolveBounds(
		geometry.Point{X: t.X, Y: t.Y},
		geometry.Anchor(t.Anchor),
		geometry.Size{Width: t.Width, Height: t.Height},
	)
	renderRect(buf, bounds, "textbox")

	lineHeight := t.Height
	if n := len(t.Lines); n > 0 {
		lineHeight = t.Height / float64(n)
	}
	for i, line := range t.Lines {
		// Baseline sits near the bottom of each line slot.
		y := bounds.Y + float64(i)*lineHeight + lineHeight*0.8
		fmt.Fprintf(buf, `  <text class="headline" x="%.1f" y="%.1f" font-size="%.1f" fill="%s" text-anchor="middle">%s</text>`+"\n",
			bounds.CenterX(), y, t.FontSize, escapeXML(t.Color), escapeXML(line))
	}
}

func renderLogo(buf *bytes.Buffer, lp pipeline.LogoPlan) {
	b := lp.Bounds()
	renderRect(buf, b, "logo")
	fmt.Fprintf(buf, `  <text class="logo-label" x="%.1f" y="%.1f">%s</text>`+"\n",
		b.X+4, b.Y+14, escapeXML(lp.Name))
}

func renderRect(buf *bytes.Buffer, r geometry.Rect, class string) {
	fmt.Fprintf(buf, `  <rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		class, r.X, r.Y, r.Width, r.Height)
}

type legendLine struct {
	class string
	text  string
}

func buildLegend(result *pipeline.Result) []legendLine {
	var lines []legendLine
	for _, e := range result.Validation.Errors {
		lines = append(lines, legendLine{"legend-error", "error: " + e})
	}
	for _, w := range result.Validation.Warnings {
		lines = append(lines, legendLine{"legend-warn", "warning: " + w})
	}
	for _, w := range result.Text.Warnings {
		lines = append(lines, legendLine{"legend-warn", "warning: " + w})
	}
	for _, s := range result.Validation.Suggestions {
		lines = append(lines, legendLine{"legend", "hint: " + s})
	}
	return lines
}

func renderLegend(buf *bytes.Buffer, w, h float64, lines []legendLine) {
	panelHeight := legendPadding*2 + float64(len(lines))*legendLineHeight
	fmt.Fprintf(buf, `  <rect class="legend-bg" x="0" y="%.1f" width="%.1f" height="%.1f"/>`+"\n", h, w, panelHeight)
	for i, l := range lines {
		y := h + legendPadding + float64(i+1)*legendLineHeight - 6
		fmt.Fprintf(buf, `  <text class="%s" x="%.1f" y="%.1f">%s</text>`+"\n",
			l.class, legendPadding, y, escapeXML(l.text))
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
