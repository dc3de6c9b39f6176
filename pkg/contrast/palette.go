package contrast

import "sort"

// Backing is the treatment applied behind or around text when its color
// alone cannot reach AA contrast.
type Backing string

// Recognized backing treatments.
const (
	BackingNone   Backing = "none"
	BackingStroke Backing = "stroke" // dark outline, for light backgrounds
	BackingShadow Backing = "shadow" // drop shadow, for dark backgrounds
)

// PaletteColor is a named candidate text color.
type PaletteColor struct {
	Name  string
	Color Color
}

// DefaultPalette is the built-in candidate set: neutrals first, then the
// brand-adjacent accents. Order only matters for tie-breaking; selection is
// by contrast.
var DefaultPalette = []PaletteColor{
	{Name: "white", Color: White},
	{Name: "black", Color: Black},
	{Name: "off-white", Color: MustHex("#F5F5F5")},
	{Name: "near-black", Color: MustHex("#111111")},
	{Name: "yellow", Color: MustHex("#FFD600")},
	{Name: "red", Color: MustHex("#FF3D00")},
	{Name: "cyan", Color: MustHex("#00E5FF")},
	{Name: "lime", Color: MustHex("#AEEA00")},
}

// Selection is the outcome of text color selection against a background.
type Selection struct {
	Name         string
	Color        Color
	Contrast     float64
	NeedsBacking bool
	Backing      Backing
}

// SelectTextColor ranks the palette by contrast against the background,
// descending, and picks the first color meeting AA, else the first meeting
// AA-large, else the best available. When the chosen contrast is below AA, a
// backing treatment is selected by the background's luminance: light
// backgrounds get a dark stroke, dark backgrounds get a drop shadow.
//
// A nil or empty palette uses DefaultPalette.
func SelectTextColor(background Color, palette []PaletteColor) Selection {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	ranked := make([]Selection, len(palette))
	for i, p := range palette {
		ranked[i] = Selection{
			Name:     p.Name,
			Color:    p.Color,
			Contrast: Ratio(p.Color, background),
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Contrast > ranked[j].Contrast
	})

	best := ranked[0]
	for _, s := range ranked {
		if s.Contrast >= RatioAA {
			best = s
			break
		}
	}
	if best.Contrast < RatioAA {
		for _, s := range ranked {
			if s.Contrast >= RatioAALarge {
				best = s
				break
			}
		}
	}

	best.Backing = BackingNone
	if best.Contrast < RatioAA {
		best.NeedsBacking = true
		if IsLight(background) {
			best.Backing = BackingStroke
		} else {
			best.Backing = BackingShadow
		}
	}
	return best
}

// BestAchievable returns the higher of the white-on-background and
// black-on-background contrast ratios. The placement scorer uses this as a
// cheap upper bound on how readable any text could be at a location.
func BestAchievable(background Color) float64 {
	w := Ratio(White, background)
	b := Ratio(Black, background)
	if w > b {
		return w
	}
	return b
}
