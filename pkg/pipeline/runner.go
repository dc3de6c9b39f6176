package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framefit/pkg/cache"
	"github.com/matzehuels/framefit/pkg/contrast"
	"github.com/matzehuels/framefit/pkg/geometry"
	"github.com/matzehuels/framefit/pkg/logos"
	"github.com/matzehuels/framefit/pkg/observability"
	"github.com/matzehuels/framefit/pkg/placement"
	"github.com/matzehuels/framefit/pkg/safezone"
	"github.com/matzehuels/framefit/pkg/textfit"
	"github.com/matzehuels/framefit/pkg/validate"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, zones, and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Zones  *safezone.Registry
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Zones:  safezone.Defaults(),
	}
}

// Execute runs the complete fit → place → color → validate pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	bg, bgHash, err := loadBackground(&opts)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	// Try the plan cache first (unless refresh requested).
	planKey := r.Keyer.PlanKey(cache.PlanKeyOpts{
		OptionsHash:    opts.OptionsHash(),
		BackgroundHash: bgHash,
	})
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, planKey); err == nil && hit {
			var cached Result
			if json.Unmarshal(data, &cached) == nil {
				observability.Cache().OnCacheHit(ctx, "plan")
				cached.CacheInfo.PlanHit = true
				return &cached, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "plan")
	}

	result := &Result{}
	zones := r.zones(&opts)

	// Stage 1: Logos. These run first so placement can avoid their boxes.
	alignStart := time.Now()
	result.Logos = r.planLogos(opts)
	result.Stats.AlignTime = time.Since(alignStart)

	if len(result.Logos) > 0 {
		r.Logger.Info("aligned logos",
			"count", len(result.Logos),
			"slot", opts.Slot,
			"duration", result.Stats.AlignTime)
	}

	// Stage 2: Fit
	fitStart := time.Now()
	fit, err := r.Fit(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	result.Stats.FitTime = time.Since(fitStart)

	r.Logger.Info("fitted text",
		"font_size", fit.FontSize,
		"lines", len(fit.Lines),
		"fits", fit.Fits,
		"duration", result.Stats.FitTime)

	// Stage 3: Place
	placeStart := time.Now()
	pos, anchor, bounds, score, warnings := r.place(ctx, opts, fit, result.Logos, bg, zones)
	result.Stats.PlaceTime = time.Since(placeStart)

	r.Logger.Info("placed text",
		"x", pos.X,
		"y", pos.Y,
		"anchor", anchor,
		"score", score,
		"duration", result.Stats.PlaceTime)

	// Stage 4: Color
	colorStart := time.Now()
	sample, sampleHit := r.sampleWithCache(ctx, bg, bgHash, bounds)
	selection := contrast.SelectTextColor(sample.Color, opts.PaletteColors())
	result.Stats.ColorTime = time.Since(colorStart)
	result.CacheInfo.SampleHit = sampleHit
	if sample.Defaulted {
		warnings = append(warnings, fmt.Sprintf("background sample defaulted: %s", sample.Cause))
	}

	r.Logger.Info("selected color",
		"color", selection.Name,
		"contrast", fmt.Sprintf("%.2f", selection.Contrast),
		"backing", selection.Backing,
		"duration", result.Stats.ColorTime)

	result.Text = TextPlan{
		FontSize:  fit.FontSize,
		Lines:     fit.Lines,
		X:         pos.X,
		Y:         pos.Y,
		Anchor:    string(anchor),
		Width:     fit.Size.Width,
		Height:    fit.Size.Height,
		Color:     selection.Color.Hex(),
		ColorName: selection.Name,
		Contrast:  selection.Contrast,
		Backing:   string(selection.Backing),
		Score:     score,
		Warnings:  append(fit.Warnings, warnings...),
	}

	// Stage 5: Validate
	validateStart := time.Now()
	result.Validation = r.validatePlan(ctx, opts, result, bounds, zones)
	result.Stats.ValidateTime = time.Since(validateStart)

	r.Logger.Info("validated layout",
		"valid", result.Validation.IsValid,
		"errors", len(result.Validation.Errors),
		"warnings", len(result.Validation.Warnings),
		"duration", result.Stats.ValidateTime)

	// Cache the plan.
	if data, err := json.Marshal(result); err == nil {
		_ = r.Cache.Set(ctx, planKey, data, cache.TTLPlan)
		observability.Cache().OnCacheSet(ctx, "plan", len(data))
	}

	return result, nil
}

// Fit runs the auto-fit stage on its own. Used by Execute and by callers
// that only need a fitted block.
func (r *Runner) Fit(ctx context.Context, opts Options) (textfit.FitResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return textfit.FitResult{}, err
	}

	observability.Layout().OnFitStart(ctx, opts.Font, len(opts.Text))
	start := time.Now()
	fit, err := textfit.AutoFit(opts.Text, opts.FitOptions())
	observability.Layout().OnFitComplete(ctx, opts.Font, fit.FontSize, len(fit.Lines), time.Since(start), fit.Fits)
	return fit, err
}

// planLogos sizes and aligns the requested logos. An empty request yields nil.
func (r *Runner) planLogos(opts Options) []LogoPlan {
	if len(opts.Logos) == 0 {
		return nil
	}

	slot, _ := logos.SlotByKey(opts.Slot)
	if slot.Discouraged {
		r.Logger.Warn("discouraged logo slot", "slot", opts.Slot, "reason", slot.Reason)
	}

	placed := logos.AlignToGrid(opts.LogoItems(), slot, opts.Canvas(), logos.AlignOptions{})
	plans := make([]LogoPlan, len(placed))
	for i, p := range placed {
		plans[i] = LogoPlan{
			Name:   p.Name,
			X:      p.Bounds.X,
			Y:      p.Bounds.Y,
			Width:  p.Bounds.Width,
			Height: p.Bounds.Height,
			Anchor: string(p.Anchor),
			Slot:   p.SlotKey,
		}
	}
	return plans
}

// place resolves the text position for the requested mode and returns the
// anchored position, the anchor, the resolved bounds, the placement score
// (auto mode only), and any placement warnings.
func (r *Runner) place(ctx context.Context, opts Options, fit textfit.FitResult,
	logoPlans []LogoPlan, bg image.Image, zones *safezone.Registry) (geometry.Point, geometry.Anchor, geometry.Rect, float64, []string) {

	switch opts.Mode {
	case ModeManual:
		pos := geometry.Point{X: opts.Position.X, Y: opts.Position.Y}
		anchor := parseAnchor(opts.Position.Anchor)
		adjusted, warnings := placement.AdjustForMargins(fit.Size, anchor, pos,
			opts.Canvas(), zones, opts.DeviceClass())
		return adjusted, anchor, geometry.ResolveBounds(adjusted, anchor, fit.Size), 0, warnings

	case ModeFree:
		pos := geometry.Point{X: opts.Position.X, Y: opts.Position.Y}
		anchor := parseAnchor(opts.Position.Anchor)
		return pos, anchor, geometry.ResolveBounds(pos, anchor, fit.Size), 0, nil
	}

	// Auto mode: scored candidate search.
	boxes := make([]geometry.Rect, len(logoPlans))
	for i, lp := range logoPlans {
		boxes[i] = lp.Bounds()
	}
	var subject *geometry.Rect
	if opts.Subject != nil {
		rect := opts.Subject.Rect()
		subject = &rect
	}

	observability.Layout().OnPlaceStart(ctx, len(placement.Candidates()))
	start := time.Now()
	scorer := placement.NewScorer(zones)
	pl := scorer.Place(placement.Request{
		Canvas:     opts.Canvas(),
		TextSize:   fit.Size,
		Background: bg,
		Subject:    subject,
		LogoBoxes:  boxes,
	})
	observability.Layout().OnPlaceComplete(ctx,
		fmt.Sprintf("%.0f,%.0f", pl.Position.X, pl.Position.Y), pl.Score, time.Since(start))

	var warnings []string
	if pl.Score == 0 {
		warnings = append(warnings, "no placement candidate survived; text placed dead center")
	}
	return pl.Position, pl.Anchor, pl.Bounds, pl.Score, warnings
}

// validatePlan runs the acceptance gate over the computed layout.
func (r *Runner) validatePlan(ctx context.Context, opts Options, result *Result,
	textBounds geometry.Rect, zones *safezone.Registry) validate.Result {

	elements := []validate.Element{
		{Name: "headline", Type: validate.TypeText, Bounds: textBounds},
	}
	for _, lp := range result.Logos {
		elements = append(elements, validate.Element{
			Name:   lp.Name,
			Type:   validate.TypeLogo,
			Bounds: lp.Bounds(),
		})
	}

	var subject *geometry.Rect
	if opts.Subject != nil {
		rect := opts.Subject.Rect()
		subject = &rect
	}

	observability.Layout().OnValidateStart(ctx, len(elements))
	start := time.Now()
	res := validate.Placement(elements, subject, &textBounds, opts.Canvas(), validate.Options{
		Zones: zones,
		Class: opts.DeviceClass(),
	})
	observability.Layout().OnValidateComplete(ctx, len(elements),
		len(res.Errors), len(res.Warnings), time.Since(start))
	return res
}

// sampleWithCache estimates the background color behind a region, consulting
// the cache when the background has a content hash. The second return value
// reports a cache hit.
func (r *Runner) sampleWithCache(ctx context.Context, bg image.Image, bgHash string,
	region geometry.Rect) (contrast.Sample, bool) {

	if bg == nil || bgHash == "" {
		s, _ := contrast.SampleRegion(bg, region, contrast.DefaultGridSize)
		return s, false
	}

	key := r.Keyer.SampleKey(bgHash, cache.SampleKeyOpts{
		X: region.X, Y: region.Y, W: region.Width, H: region.Height,
		Grid: contrast.DefaultGridSize,
	})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var s contrast.Sample
		if json.Unmarshal(data, &s) == nil {
			observability.Cache().OnCacheHit(ctx, "sample")
			return s, true
		}
	}
	observability.Cache().OnCacheMiss(ctx, "sample")

	s, _ := contrast.SampleRegion(bg, region, contrast.DefaultGridSize)
	if data, err := json.Marshal(s); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLSample)
		observability.Cache().OnCacheSet(ctx, "sample", len(data))
	}
	return s, false
}

// zones returns the safe-zone registry for a run: per-request override,
// runner default, or the built-in defaults.
func (r *Runner) zones(opts *Options) *safezone.Registry {
	if opts.Zones != nil {
		return opts.Zones
	}
	if r.Zones != nil {
		return r.Zones
	}
	return safezone.Defaults()
}

// parseAnchor maps a wire anchor string to the engine anchor.
func parseAnchor(s string) geometry.Anchor {
	switch s {
	case string(geometry.AnchorStart):
		return geometry.AnchorStart
	case string(geometry.AnchorEnd):
		return geometry.AnchorEnd
	default:
		return geometry.AnchorMiddle
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
