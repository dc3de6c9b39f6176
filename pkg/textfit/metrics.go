package textfit

import "strings"

// Metrics holds per-family character ratios. Every ratio is relative to the
// font size: a capital letter in a 100px font is Capital*100 pixels wide.
type Metrics struct {
	AvgCharWidth float64 // fallback width for unclassified characters
	Capital      float64 // uppercase letters
	Lower        float64 // lowercase letters
	Number       float64 // digits
	Space        float64 // word spaces
	Height       float64 // line box height
	Ascent       float64 // baseline to top
	Descent      float64 // baseline to bottom
}

// Width multipliers for the designated wide and narrow character sets,
// applied on top of AvgCharWidth.
const (
	wideCharFactor   = 1.45
	narrowCharFactor = 0.50
)

// Character sets that deviate enough from their class average to get their
// own bucket.
const (
	wideChars   = "MWmw@"
	narrowChars = "iIljt1!.,;:'|"
)

// boldWidthFactor widens every character by 5% at weights of 700 and up.
const boldWidthFactor = 1.05

// fontTable is the static per-family metrics table, keyed by lowercase
// primary font name. Loaded once, never mutated.
var fontTable = map[string]Metrics{
	"impact":      {AvgCharWidth: 0.46, Capital: 0.52, Lower: 0.43, Number: 0.48, Space: 0.22, Height: 1.08, Ascent: 0.86, Descent: 0.22},
	"anton":       {AvgCharWidth: 0.50, Capital: 0.58, Lower: 0.46, Number: 0.52, Space: 0.24, Height: 1.10, Ascent: 0.87, Descent: 0.23},
	"bebas neue":  {AvgCharWidth: 0.42, Capital: 0.46, Lower: 0.40, Number: 0.44, Space: 0.22, Height: 1.06, Ascent: 0.85, Descent: 0.21},
	"oswald":      {AvgCharWidth: 0.50, Capital: 0.60, Lower: 0.46, Number: 0.52, Space: 0.25, Height: 1.14, Ascent: 0.88, Descent: 0.26},
	"montserrat":  {AvgCharWidth: 0.58, Capital: 0.70, Lower: 0.53, Number: 0.60, Space: 0.28, Height: 1.18, Ascent: 0.90, Descent: 0.28},
	"roboto":      {AvgCharWidth: 0.55, Capital: 0.66, Lower: 0.50, Number: 0.56, Space: 0.26, Height: 1.17, Ascent: 0.89, Descent: 0.28},
	"arial":       {AvgCharWidth: 0.55, Capital: 0.67, Lower: 0.50, Number: 0.56, Space: 0.28, Height: 1.15, Ascent: 0.90, Descent: 0.25},
	"arial black": {AvgCharWidth: 0.62, Capital: 0.76, Lower: 0.58, Number: 0.64, Space: 0.33, Height: 1.17, Ascent: 0.91, Descent: 0.26},
}

// defaultMetrics is used for any family not in the table.
var defaultMetrics = Metrics{
	AvgCharWidth: 0.55,
	Capital:      0.70,
	Lower:        0.50,
	Number:       0.55,
	Space:        0.28,
	Height:       1.16,
	Ascent:       0.90,
	Descent:      0.26,
}

// FontMetrics returns the metrics for a font family, falling back to the
// default record for unknown families. It never fails.
//
// The family string may be a CSS-style stack ("Anton, Impact, sans-serif");
// only the primary name is looked up. Matching is case-insensitive and
// ignores surrounding quotes.
func FontMetrics(family string) Metrics {
	primary := family
	if i := strings.IndexByte(primary, ','); i >= 0 {
		primary = primary[:i]
	}
	primary = strings.Trim(strings.TrimSpace(primary), `"'`)
	if m, ok := fontTable[strings.ToLower(primary)]; ok {
		return m
	}
	return defaultMetrics
}

// Register adds or replaces the metrics record for a font family. It exists
// for configuration overrides and must be called during startup, before any
// measurement; it is not safe to call concurrently with measurement.
func Register(family string, m Metrics) {
	fontTable[strings.ToLower(strings.TrimSpace(family))] = m
}

// KnownFamilies returns the primary names in the static table, for
// introspection commands. The order is unspecified.
func KnownFamilies() []string {
	names := make([]string, 0, len(fontTable))
	for name := range fontTable {
		names = append(names, name)
	}
	return names
}
