// Package config loads optional user overrides for the built-in layout
// tables: text palette, safe-zone margins, danger zones, font metrics, and
// automatic-placement candidate presets.
//
// The config file lives at ~/.config/framefit/framefit.toml (respecting the
// platform config dir) and is merged over the built-in defaults: anything
// the file does not mention keeps its default. A missing file is not an
// error.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/framefit/pkg/contrast"
	"github.com/matzehuels/framefit/pkg/errors"
	"github.com/matzehuels/framefit/pkg/geometry"
	"github.com/matzehuels/framefit/pkg/placement"
	"github.com/matzehuels/framefit/pkg/safezone"
	"github.com/matzehuels/framefit/pkg/textfit"
)

// Config is the decoded override file. Zero-valued sections keep the
// built-in defaults.
type Config struct {
	Palette     []PaletteEntry       `toml:"palette"`
	Margins     map[string]MarginSet `toml:"margins"`
	DangerZones []ZoneEntry          `toml:"danger_zones"`
	Fonts       map[string]FontEntry `toml:"fonts"`
	Candidates  []CandidateEntry     `toml:"candidates"`
}

// PaletteEntry is one candidate text color.
type PaletteEntry struct {
	Name string `toml:"name"`
	Hex  string `toml:"hex"`
}

// MarginSet is a per-device-class margin override, in pixels at the
// 1920x1080 reference canvas.
type MarginSet struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// ZoneEntry is one danger zone at the 1920x1080 reference canvas.
type ZoneEntry struct {
	Name   string  `toml:"name"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// FontEntry is a font metrics override. All ratios are relative to the font
// size, matching textfit.Metrics.
type FontEntry struct {
	AvgCharWidth float64 `toml:"avg_char_width"`
	Capital      float64 `toml:"capital"`
	Lower        float64 `toml:"lower"`
	Number       float64 `toml:"number"`
	Space        float64 `toml:"space"`
	Height       float64 `toml:"height"`
	Ascent       float64 `toml:"ascent"`
	Descent      float64 `toml:"descent"`
}

// CandidateEntry is one automatic-placement preset position, in fractional
// canvas coordinates. A non-empty candidates list replaces the built-in set
// entirely rather than merging with it.
type CandidateEntry struct {
	XFrac    float64 `toml:"x_frac"`
	YFrac    float64 `toml:"y_frac"`
	Anchor   string  `toml:"anchor"`
	Priority int     `toml:"priority"`
}

// DefaultPath returns the standard config file location, or empty when the
// platform config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "framefit", "framefit.toml")
}

// Load reads and validates a config file. A missing or empty path yields an
// empty config (all defaults) without error; a malformed or invalid file is
// an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects entries that could not be applied.
func (c *Config) Validate() error {
	for _, p := range c.Palette {
		if p.Name == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "palette entry without a name")
		}
		if err := errors.ValidateHexColor(p.Hex); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette entry %q", p.Name)
		}
	}

	for class, m := range c.Margins {
		if class != string(safezone.Desktop) && class != string(safezone.Mobile) {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown margin class %q", class)
		}
		if m.X < 0 || m.Y < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "negative margins for class %q", class)
		}
	}

	for _, z := range c.DangerZones {
		if z.Name == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "danger zone without a name")
		}
		if z.Width <= 0 || z.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "danger zone %q has non-positive size", z.Name)
		}
	}

	for i, cand := range c.Candidates {
		if cand.XFrac < 0 || cand.XFrac > 1 || cand.YFrac < 0 || cand.YFrac > 1 {
			return errors.New(errors.ErrCodeInvalidConfig, "candidate %d has fractions outside [0,1]", i)
		}
		switch geometry.Anchor(cand.Anchor) {
		case "", geometry.AnchorStart, geometry.AnchorMiddle, geometry.AnchorEnd:
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "candidate %d has unknown anchor %q", i, cand.Anchor)
		}
		if cand.Priority < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "candidate %d has negative priority", i)
		}
	}

	for family, f := range c.Fonts {
		if family == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "font entry without a family name")
		}
		if f.AvgCharWidth <= 0 || f.Capital <= 0 || f.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "font %q has non-positive core ratios", family)
		}
	}

	return nil
}

// Registry builds the safe-zone registry: configured margins and zones where
// given, built-in defaults otherwise.
func (c *Config) Registry() *safezone.Registry {
	if len(c.Margins) == 0 && len(c.DangerZones) == 0 {
		return safezone.Defaults()
	}

	margins := make(map[safezone.DeviceClass]safezone.Margins, len(c.Margins))
	for class, m := range c.Margins {
		margins[safezone.DeviceClass(class)] = safezone.Margins{X: m.X, Y: m.Y}
	}

	zones := safezone.DefaultDangerZones()
	if len(c.DangerZones) > 0 {
		zones = make([]safezone.DangerZone, 0, len(c.DangerZones))
		for _, z := range c.DangerZones {
			zones = append(zones, safezone.DangerZone{
				Label: z.Name,
				Rect:  geometry.Rect{X: z.X, Y: z.Y, Width: z.Width, Height: z.Height},
			})
		}
	}

	return safezone.New(margins, zones)
}

// PaletteColors returns the configured text palette, or nil when the file
// did not override it. Hex strings were validated in Validate.
func (c *Config) PaletteColors() []contrast.PaletteColor {
	if len(c.Palette) == 0 {
		return nil
	}
	out := make([]contrast.PaletteColor, 0, len(c.Palette))
	for _, p := range c.Palette {
		col, err := contrast.ParseHex(p.Hex)
		if err != nil {
			continue
		}
		out = append(out, contrast.PaletteColor{Name: p.Name, Color: col})
	}
	return out
}

// PaletteHex returns the configured palette as hex strings, or nil when the
// file did not override it.
func (c *Config) PaletteHex() []string {
	if len(c.Palette) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.Palette))
	for _, p := range c.Palette {
		out = append(out, p.Hex)
	}
	return out
}

// ApplyCandidates installs configured placement presets. Must run during
// startup, before any placement. A config without a candidates section keeps
// the built-in set.
func (c *Config) ApplyCandidates() {
	if len(c.Candidates) == 0 {
		return
	}
	cands := make([]placement.Candidate, 0, len(c.Candidates))
	for _, e := range c.Candidates {
		anchor := geometry.Anchor(e.Anchor)
		if anchor == "" {
			anchor = geometry.AnchorMiddle
		}
		cands = append(cands, placement.Candidate{
			FracX:    e.XFrac,
			FracY:    e.YFrac,
			Anchor:   anchor,
			Priority: e.Priority,
		})
	}
	placement.SetCandidates(cands)
}

// ApplyFonts registers configured font metrics. Must run during startup,
// before any measurement.
func (c *Config) ApplyFonts() {
	for family, f := range c.Fonts {
		textfit.Register(family, textfit.Metrics{
			AvgCharWidth: f.AvgCharWidth,
			Capital:      f.Capital,
			Lower:        f.Lower,
			Number:       f.Number,
			Space:        f.Space,
			Height:       f.Height,
			Ascent:       f.Ascent,
			Descent:      f.Descent,
		})
	}
}
