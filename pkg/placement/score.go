package placement

import (
	"image"

	"github.com/matzehuels/framefit/pkg/canvas"
	"github.com/matzehuels/framefit/pkg/contrast"
	"github.com/matzehuels/framefit/pkg/geometry"
	"github.com/matzehuels/framefit/pkg/safezone"
)

// Scoring weights and tolerances.
const (
	baseScore        = 100.0
	priorityPenalty  = 10.0
	thirdsBonus      = 15.0
	thirdsTolerance  = 0.05 // fraction of canvas width
	logoPenalty      = 20.0
	contrastBonusAA  = 20.0
	contrastBonusAAL = 10.0

	// faceFraction is the share of the subject bounding box, from its top,
	// treated as the face region that text must never cover.
	faceFraction = 0.4
)

// Scorer scores candidate text positions. The zero value is not usable;
// construct with NewScorer.
type Scorer struct {
	zones *safezone.Registry
	grid  int
}

// NewScorer builds a scorer over a safe-zone registry. A nil registry uses
// the defaults.
func NewScorer(zones *safezone.Registry) *Scorer {
	if zones == nil {
		zones = safezone.Defaults()
	}
	return &Scorer{zones: zones, grid: contrast.DefaultGridSize}
}

// Request carries everything automatic placement considers. Background and
// Subject are optional; LogoBoxes may be empty.
type Request struct {
	Canvas     canvas.Canvas
	TextSize   geometry.Size
	Background image.Image
	Subject    *geometry.Rect
	LogoBoxes  []geometry.Rect
}

// Placement is a chosen text position. Sample is the background estimate at
// the chosen box (defaulted gray when no background was supplied).
type Placement struct {
	Position geometry.Point
	Anchor   geometry.Anchor
	Bounds   geometry.Rect
	Score    float64
	Sample   contrast.Sample
}

// Place evaluates the candidate set and returns the best-scoring position.
//
// Candidates on the subject's side of the frame are filtered out first (the
// full set is restored if that empties the list). Each survivor is clamped
// into the mobile safe area and rejected outright if it touches a danger
// zone or the subject's face region. If every candidate is rejected, the
// result is dead center with score 0 — degraded, never an error.
func (s *Scorer) Place(req Request) Placement {
	cands := s.filterBySubject(req)

	best := Placement{Score: -1}
	for _, cand := range cands {
		p, ok := s.evaluate(cand, req)
		if ok && p.Score > best.Score {
			best = p
		}
	}
	if best.Score >= 0 {
		return best
	}
	return s.deadCenter(req)
}

// filterBySubject keeps candidates on the side opposite the subject center.
func (s *Scorer) filterBySubject(req Request) []Candidate {
	if req.Subject == nil {
		return candidateTable
	}
	subjectLeft := req.Subject.CenterX() < req.Canvas.Width/2

	var kept []Candidate
	for _, c := range candidateTable {
		candLeft := c.FracX < 0.5
		if candLeft != subjectLeft || c.FracX == 0.5 {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return candidateTable
	}
	return kept
}

// evaluate resolves, clamps, vets, and scores one candidate. ok is false
// when the candidate is rejected.
func (s *Scorer) evaluate(cand Candidate, req Request) (Placement, bool) {
	pos := geometry.Point{X: cand.FracX * req.Canvas.Width, Y: cand.FracY * req.Canvas.Height}
	bounds := geometry.ResolveBounds(pos, cand.Anchor, req.TextSize)
	bounds = geometry.Clamp(bounds, s.zones.SafeArea(safezone.Mobile, req.Canvas))

	// Hard rejections: platform UI and the subject's face.
	if len(s.zones.Intersecting(bounds, req.Canvas, 0)) > 0 {
		return Placement{}, false
	}
	if req.Subject != nil {
		face := geometry.Rect{
			X:      req.Subject.X,
			Y:      req.Subject.Y,
			Width:  req.Subject.Width,
			Height: req.Subject.Height * faceFraction,
		}
		if geometry.Overlaps(bounds, face, 0) {
			return Placement{}, false
		}
	}

	score := baseScore - priorityPenalty*float64(cand.Priority)

	if s.alignsWithThirds(anchorX(bounds, cand.Anchor), req.Canvas) {
		score += thirdsBonus
	}
	for _, logo := range req.LogoBoxes {
		if geometry.Overlaps(bounds, logo, 0) {
			score -= logoPenalty
			break
		}
	}

	sample, err := contrast.SampleRegion(req.Background, bounds, s.grid)
	if err != nil {
		sample = contrast.DefaultedTo(contrast.DefaultGray, err.Error())
	}
	switch achievable := contrast.BestAchievable(sample.Color); {
	case achievable >= contrast.RatioAA:
		score += contrastBonusAA
	case achievable >= contrast.RatioAALarge:
		score += contrastBonusAAL
	}

	return Placement{
		Position: geometry.Point{X: anchorX(bounds, cand.Anchor), Y: bounds.Y},
		Anchor:   cand.Anchor,
		Bounds:   bounds,
		Score:    score,
		Sample:   sample,
	}, true
}

// anchorX recovers the anchored x coordinate from a resolved box.
func anchorX(bounds geometry.Rect, anchor geometry.Anchor) float64 {
	switch anchor {
	case geometry.AnchorMiddle:
		return bounds.CenterX()
	case geometry.AnchorEnd:
		return bounds.Right()
	default:
		return bounds.X
	}
}

// alignsWithThirds reports whether x sits within tolerance of a
// rule-of-thirds vertical.
func (s *Scorer) alignsWithThirds(x float64, c canvas.Canvas) bool {
	tol := thirdsTolerance * c.Width
	for _, third := range c.ThirdsX() {
		d := x - third
		if d < 0 {
			d = -d
		}
		if d <= tol {
			return true
		}
	}
	return false
}

// deadCenter is the graceful-degradation placement.
func (s *Scorer) deadCenter(req Request) Placement {
	center := req.Canvas.Center()
	pos := geometry.Point{X: center.X, Y: center.Y - req.TextSize.Height/2}
	bounds := geometry.ResolveBounds(pos, geometry.AnchorMiddle, req.TextSize)

	sample, err := contrast.SampleRegion(req.Background, bounds, s.grid)
	if err != nil {
		sample = contrast.DefaultedTo(contrast.DefaultGray, err.Error())
	}
	return Placement{
		Position: pos,
		Anchor:   geometry.AnchorMiddle,
		Bounds:   bounds,
		Score:    0,
		Sample:   sample,
	}
}
