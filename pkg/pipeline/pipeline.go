// Package pipeline provides the core layout pipeline for Framefit.
//
// This package implements the complete fit → place → color → validate
// pipeline that can be used by CLI and API components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Fit: find the largest font size whose wrapped text fits the box
//  2. Place: choose a position (scored candidates, or a caller position)
//  3. Color: sample the background behind the text and pick a text color
//  4. Validate: check every element against zones, subject, and each other
//
// Logo sizing and grid alignment run before placement so the scorer can
// penalize candidates that overlap logo boxes.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Text: "INSANE RESULTS",
//	    Logos: []pipeline.LogoSpec{{Name: "brand", AspectRatio: 2.5}},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Text.FontSize, result.Validation.IsValid)
package pipeline

import (
	"encoding/json"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framefit/pkg/cache"
	"github.com/matzehuels/framefit/pkg/canvas"
	"github.com/matzehuels/framefit/pkg/contrast"
	"github.com/matzehuels/framefit/pkg/errors"
	"github.com/matzehuels/framefit/pkg/geometry"
	"github.com/matzehuels/framefit/pkg/logos"
	"github.com/matzehuels/framefit/pkg/safezone"
	"github.com/matzehuels/framefit/pkg/textfit"
	"github.com/matzehuels/framefit/pkg/validate"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = canvas.SDWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = canvas.SDHeight

	// DefaultFont is the default font family.
	DefaultFont = "Impact"

	// DefaultFontWeight is the default numeric font weight.
	DefaultFontWeight = 700

	// DefaultSlot is the logo slot used when logos are given without one.
	DefaultSlot = "top-right"

	// Default text box size as fractions of the canvas. Roughly half the
	// frame wide and a third tall, leaving room for subject and logos.
	defaultBoxWidthFrac  = 0.55
	defaultBoxHeightFrac = 0.38
)

// DefaultDevice is the default device class for margin selection.
const DefaultDevice = string(safezone.Desktop)

// Position modes.
const (
	ModeAuto   = "auto"   // scored candidate search
	ModeManual = "manual" // caller position, corrected back into the safe area
	ModeFree   = "free"   // caller position used verbatim
)

// ValidModes is the set of supported position modes.
var ValidModes = map[string]bool{
	ModeAuto:   true,
	ModeManual: true,
	ModeFree:   true,
}

// ValidDevices is the set of supported device classes.
var ValidDevices = map[string]bool{
	string(safezone.Desktop): true,
	string(safezone.Mobile):  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// RectSpec is a rectangle in canvas pixels, as supplied by callers.
type RectSpec struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect converts the spec to an engine rectangle.
func (r RectSpec) Rect() geometry.Rect {
	return geometry.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// LogoSpec is one input logo.
type LogoSpec struct {
	Name        string  `json:"name"`
	AspectRatio float64 `json:"aspect_ratio,omitempty"` // width/height of the source art
}

// Position is a caller-chosen text position for manual and free modes.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Anchor string  `json:"anchor,omitempty"` // start|middle|end (default middle)
}

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Canvas options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Device string  `json:"device,omitempty"` // desktop|mobile

	// Text options
	Text         string  `json:"text"`
	Font         string  `json:"font,omitempty"`
	FontWeight   int     `json:"font_weight,omitempty"`
	MinFontSize  float64 `json:"min_font_size,omitempty"`
	MaxFontSize  float64 `json:"max_font_size,omitempty"`
	MaxLines     int     `json:"max_lines,omitempty"`
	LineHeight   float64 `json:"line_height,omitempty"` // multiplier, default 1.1
	StrokeWidth  float64 `json:"stroke_width,omitempty"`
	ShadowOffset float64 `json:"shadow_offset,omitempty"`
	BoxWidth     float64 `json:"box_width,omitempty"`  // text box width (default 0.55 x canvas)
	BoxHeight    float64 `json:"box_height,omitempty"` // text box height (default 0.38 x canvas)

	// Placement options
	Mode     string    `json:"mode,omitempty"` // auto|manual|free
	Position *Position `json:"position,omitempty"`

	// Scene options
	Background string    `json:"background,omitempty"` // background image path
	Subject    *RectSpec `json:"subject,omitempty"`

	// Logo options
	Logos []LogoSpec `json:"logos,omitempty"`
	Slot  string     `json:"slot,omitempty"`

	// Color options
	Palette []string `json:"palette,omitempty"` // hex overrides for the text palette

	Refresh bool `json:"refresh,omitempty"` // bypass the plan cache

	// Runtime options (not serialized)
	Logger          *log.Logger        `json:"-"`
	BackgroundImage image.Image        `json:"-"` // pre-decoded background, bypasses Background
	BackgroundData  []byte             `json:"-"` // raw background bytes, decoded and hashed
	Zones           *safezone.Registry `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Text is the fitted, placed, and colored text block.
	Text TextPlan `json:"text"`

	// Logos are the sized and aligned logo boxes.
	Logos []LogoPlan `json:"logos,omitempty"`

	// Validation is the acceptance check over the complete layout.
	Validation validate.Result `json:"validation"`

	// Stats contains timing information.
	Stats Stats `json:"-"`

	// CacheInfo tracks which lookups hit the cache.
	CacheInfo CacheInfo `json:"-"`
}

// TextPlan is the computed text block: everything a renderer needs to draw
// the headline.
type TextPlan struct {
	FontSize float64  `json:"font_size"`
	Lines    []string `json:"lines"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Anchor   string   `json:"anchor"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`

	Color     string  `json:"color"` // hex
	ColorName string  `json:"color_name"`
	Contrast  float64 `json:"contrast"`
	Backing   string  `json:"backing"` // none|stroke|shadow

	Score    float64  `json:"score,omitempty"` // auto mode only
	Warnings []string `json:"warnings,omitempty"`
}

// LogoPlan is one computed logo box.
type LogoPlan struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Anchor string  `json:"anchor"`
	Slot   string  `json:"slot"`
}

// Bounds returns the logo box as an engine rectangle.
func (p LogoPlan) Bounds() geometry.Rect {
	return geometry.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FitTime      time.Duration
	PlaceTime    time.Duration
	ColorTime    time.Duration
	AlignTime    time.Duration
	ValidateTime time.Duration
}

// CacheInfo tracks cache hits during a pipeline run.
type CacheInfo struct {
	PlanHit   bool // Whether the complete plan came from cache
	SampleHit bool // Whether the text-region color sample came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if err := errors.ValidateText(o.Text); err != nil {
		return err
	}

	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidCanvas, "canvas %gx%g has negative dimensions", o.Width, o.Height)
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}

	if o.Device == "" {
		o.Device = DefaultDevice
	}
	if !ValidDevices[o.Device] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid device class: %q (must be one of: desktop, mobile)", o.Device)
	}

	if o.Font == "" {
		o.Font = DefaultFont
	}
	if o.FontWeight == 0 {
		o.FontWeight = DefaultFontWeight
	}
	if o.MinFontSize != 0 && o.MaxFontSize != 0 {
		if err := errors.ValidateFontRange(o.MinFontSize, o.MaxFontSize); err != nil {
			return err
		}
	}

	if o.BoxWidth == 0 {
		o.BoxWidth = defaultBoxWidthFrac * o.Width
	}
	if o.BoxHeight == 0 {
		o.BoxHeight = defaultBoxHeightFrac * o.Height
	}

	if o.Mode == "" {
		o.Mode = ModeAuto
	}
	if !ValidModes[o.Mode] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid mode: %q (must be one of: auto, manual, free)", o.Mode)
	}
	if o.Mode != ModeAuto && o.Position == nil {
		return errors.New(errors.ErrCodeInvalidInput, "%s mode requires a position", o.Mode)
	}

	if o.Subject != nil && (o.Subject.Width <= 0 || o.Subject.Height <= 0) {
		return errors.New(errors.ErrCodeInvalidGeometry, "subject box %gx%g has non-positive dimensions",
			o.Subject.Width, o.Subject.Height)
	}

	if len(o.Logos) > 0 {
		if o.Slot == "" {
			o.Slot = DefaultSlot
		}
		if err := errors.ValidateSlotKey(o.Slot); err != nil {
			return err
		}
		if _, ok := logos.SlotByKey(o.Slot); !ok {
			return errors.New(errors.ErrCodeInvalidSlot, "unknown slot: %q", o.Slot)
		}
	}

	for _, hex := range o.Palette {
		if err := errors.ValidateHexColor(hex); err != nil {
			return err
		}
	}

	if o.Background != "" {
		if err := errors.ValidatePath(o.Background); err != nil {
			return err
		}
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Canvas returns the canvas described by the options.
func (o *Options) Canvas() canvas.Canvas {
	return canvas.Canvas{Width: o.Width, Height: o.Height}
}

// DeviceClass returns the safe-zone device class.
func (o *Options) DeviceClass() safezone.DeviceClass {
	return safezone.DeviceClass(o.Device)
}

// FitOptions returns the auto-fit configuration for the text box.
func (o *Options) FitOptions() textfit.FitOptions {
	return textfit.FitOptions{
		MaxWidth:             o.BoxWidth,
		MaxHeight:            o.BoxHeight,
		MinFontSize:          o.MinFontSize,
		MaxFontSize:          o.MaxFontSize,
		FontFamily:           o.Font,
		FontWeight:           o.FontWeight,
		LineHeightMultiplier: o.LineHeight,
		MaxLines:             o.MaxLines,
		StrokeWidth:          o.StrokeWidth,
		ShadowOffset:         o.ShadowOffset,
	}
}

// PaletteColors returns the text color palette: the caller's hex overrides
// when given, the default palette otherwise. Hex strings were validated in
// ValidateAndSetDefaults.
func (o *Options) PaletteColors() []contrast.PaletteColor {
	if len(o.Palette) == 0 {
		return contrast.DefaultPalette
	}
	out := make([]contrast.PaletteColor, 0, len(o.Palette))
	for _, hex := range o.Palette {
		c, err := contrast.ParseHex(hex)
		if err != nil {
			continue
		}
		out = append(out, contrast.PaletteColor{Name: hex, Color: c})
	}
	if len(out) == 0 {
		return contrast.DefaultPalette
	}
	return out
}

// LogoItems converts the logo specs to engine inputs.
func (o *Options) LogoItems() []logos.Logo {
	items := make([]logos.Logo, len(o.Logos))
	for i, spec := range o.Logos {
		items[i] = logos.Logo{Name: spec.Name, AspectRatio: spec.AspectRatio}
	}
	return items
}

// OptionsHash returns a content hash of the serialized options, used as the
// plan cache key component. Runtime-only fields are excluded by the JSON
// tags, so two requests with the same wire form hash identically.
func (o *Options) OptionsHash() string {
	data, _ := json.Marshal(o)
	return cache.Hash(data)
}
