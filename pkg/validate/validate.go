// Package validate is the acceptance gate for a computed layout: every
// element is checked against the canvas, the safe-zone margins, the danger
// zones, the subject region, and every other element.
//
// A failed validation is a normal outcome, not an error: callers get a
// Result with IsValid=false and human-readable diagnostics, and decide
// whether to re-place, re-prompt, or ship with a caveat. The function
// signatures here never return a Go error for layout problems.
package validate

import (
	"fmt"

	"github.com/matzehuels/framefit/pkg/canvas"
	"github.com/matzehuels/framefit/pkg/geometry"
	"github.com/matzehuels/framefit/pkg/safezone"
)

// ElementType tags a validated element; same-type elements are additionally
// checked pairwise against each other.
type ElementType string

// Recognized element types.
const (
	TypeText ElementType = "text"
	TypeLogo ElementType = "logo"
)

// Element is one validated layout element.
type Element struct {
	Name   string
	Type   ElementType
	Bounds geometry.Rect
}

// Options tunes validation. Zero values take the defaults.
type Options struct {
	Zones          *safezone.Registry
	Class          safezone.DeviceClass
	SubjectPadding float64 // extra buffer around the subject region (default 16)
}

// DefaultSubjectPadding is the buffer enforced around the subject region.
const DefaultSubjectPadding = 16.0

// Result is a validation outcome. Produced fresh per call, never reused.
type Result struct {
	IsValid     bool     `json:"is_valid"`
	Errors      []string `json:"errors,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.IsValid = false
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) suggestf(format string, args ...any) {
	r.Suggestions = append(r.Suggestions, fmt.Sprintf(format, args...))
}

// Placement validates every element against the canvas bounds, margins,
// subject region, text block, danger zones, and its same-type peers.
// Canvas containment, subject overlap, danger-zone overlap, and same-type
// collisions are errors; margin proximity and text overlap are warnings.
//
// The pairwise pass is O(n²) over the element count, which is fine: real
// layouts carry fewer than ten elements.
func Placement(elements []Element, subject, text *geometry.Rect, c canvas.Canvas, opts Options) Result {
	if opts.Zones == nil {
		opts.Zones = safezone.Defaults()
	}
	if opts.Class == "" {
		opts.Class = safezone.Desktop
	}
	if opts.SubjectPadding <= 0 {
		opts.SubjectPadding = DefaultSubjectPadding
	}

	res := Result{IsValid: true}
	bounds := c.Bounds()
	safe := opts.Zones.SafeArea(opts.Class, c)

	for _, el := range elements {
		checkContainment(&res, el, bounds)
		checkMarginProximity(&res, el, safe)

		if subject != nil && geometry.Overlaps(el.Bounds, *subject, opts.SubjectPadding) {
			res.errorf("%s %q overlaps the subject region", el.Type, el.Name)
			res.suggestf("move %q away from the subject or shrink it", el.Name)
		}
		if text != nil && el.Type != TypeText && geometry.Overlaps(el.Bounds, *text, 0) {
			res.warnf("%s %q overlaps the text block", el.Type, el.Name)
		}
		for _, zone := range opts.Zones.Intersecting(el.Bounds, c, 0) {
			res.errorf("%s %q overlaps the %s zone", el.Type, el.Name, zone.Label)
			res.suggestf("move %q clear of the %s", el.Name, zone.Label)
		}
	}

	// Pairwise same-type collisions.
	for i := range elements {
		for j := i + 1; j < len(elements); j++ {
			if elements[i].Type != elements[j].Type {
				continue
			}
			if geometry.Overlaps(elements[i].Bounds, elements[j].Bounds, 0) {
				res.errorf("%s %q overlaps %s %q",
					elements[i].Type, elements[i].Name, elements[j].Type, elements[j].Name)
			}
		}
	}

	return res
}

// checkContainment errors when an element extends past the canvas, with the
// exact overflow amount and a suggested shift.
func checkContainment(res *Result, el Element, bounds geometry.Rect) {
	if over := bounds.X - el.Bounds.X; over > 0 {
		res.errorf("%s %q extends %.0fpx past the left edge", el.Type, el.Name, over)
		res.suggestf("shift %q right by %.0fpx", el.Name, over)
	}
	if over := el.Bounds.Right() - bounds.Right(); over > 0 {
		res.errorf("%s %q extends %.0fpx past the right edge", el.Type, el.Name, over)
		res.suggestf("shift %q left by %.0fpx", el.Name, over)
	}
	if over := bounds.Y - el.Bounds.Y; over > 0 {
		res.errorf("%s %q extends %.0fpx past the top edge", el.Type, el.Name, over)
		res.suggestf("shift %q down by %.0fpx", el.Name, over)
	}
	if over := el.Bounds.Bottom() - bounds.Bottom(); over > 0 {
		res.errorf("%s %q extends %.0fpx past the bottom edge", el.Type, el.Name, over)
		res.suggestf("shift %q up by %.0fpx", el.Name, over)
	}
}

// checkMarginProximity warns when an element inside the canvas crowds the
// safe-zone margins.
func checkMarginProximity(res *Result, el Element, safe geometry.Rect) {
	if safe.ContainsRect(el.Bounds) {
		return
	}
	res.warnf("%s %q crowds the safe-zone margin", el.Type, el.Name)
}
