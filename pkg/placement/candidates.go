// Package placement chooses where a fitted text block lands on the canvas.
//
// Automatic placement scores a small fixed candidate set against the safe
// zones, the subject region, known logo boxes, and the local background
// contrast. This is deliberately not a constraint solver: the candidate set
// approximates rule-of-thirds placements, the scoring is additive, and the
// search is a single pass over at most a dozen positions. When every
// candidate is rejected the text falls back to dead center rather than
// failing.
//
// Manual placements go through AdjustForMargins, a one-shot corrective shift
// back inside the safe area. If the block is simply too large for the safe
// area the shift leaves it out of bounds and says so in the warnings; it
// never force-fits.
package placement

import "github.com/matzehuels/framefit/pkg/geometry"

// Candidate is a preset text position: fractional canvas coordinates, an
// anchor, and a priority rank (lower is better).
type Candidate struct {
	FracX    float64
	FracY    float64
	Anchor   geometry.Anchor
	Priority int
}

// defaultCandidates approximate rule-of-thirds-adjacent placements. Upper
// positions rank first: thumbnails usually keep the lower third for the
// subject. Loaded once, never mutated.
var defaultCandidates = []Candidate{
	{FracX: 1.0 / 3.0, FracY: 0.18, Anchor: geometry.AnchorMiddle, Priority: 0},
	{FracX: 2.0 / 3.0, FracY: 0.18, Anchor: geometry.AnchorMiddle, Priority: 0},
	{FracX: 0.50, FracY: 0.12, Anchor: geometry.AnchorMiddle, Priority: 1},
	{FracX: 1.0 / 3.0, FracY: 0.62, Anchor: geometry.AnchorMiddle, Priority: 2},
	{FracX: 2.0 / 3.0, FracY: 0.62, Anchor: geometry.AnchorMiddle, Priority: 2},
	{FracX: 0.08, FracY: 0.20, Anchor: geometry.AnchorStart, Priority: 3},
	{FracX: 0.92, FracY: 0.20, Anchor: geometry.AnchorEnd, Priority: 3},
	{FracX: 0.50, FracY: 0.74, Anchor: geometry.AnchorMiddle, Priority: 4},
}

// candidateTable is the live candidate set consulted by scoring. It starts
// as the defaults and may be replaced once at startup via SetCandidates.
var candidateTable = defaultCandidates

// Candidates returns a copy of the active candidate list.
func Candidates() []Candidate {
	out := make([]Candidate, len(candidateTable))
	copy(out, candidateTable)
	return out
}

// SetCandidates replaces the active candidate set. It exists for
// configuration overrides and must be called during startup, before any
// scoring; it is not safe to call concurrently with Place. An empty slice
// restores the defaults.
func SetCandidates(cands []Candidate) {
	if len(cands) == 0 {
		candidateTable = defaultCandidates
		return
	}
	copied := make([]Candidate, len(cands))
	copy(copied, cands)
	candidateTable = copied
}
