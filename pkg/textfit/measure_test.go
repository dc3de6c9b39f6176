package textfit

import (
	"math"
	"testing"
)

func TestFontMetricsLookup(t *testing.T) {
	tests := []struct {
		name   string
		family string
		want   float64 // expected Capital ratio
	}{
		{name: "known family", family: "Montserrat", want: 0.70},
		{name: "case insensitive", family: "IMPACT", want: 0.52},
		{name: "css stack uses primary", family: "Anton, Impact, sans-serif", want: 0.58},
		{name: "quoted primary", family: `"Bebas Neue", sans-serif`, want: 0.46},
		{name: "unknown falls back to default", family: "Comic Papyrus", want: defaultMetrics.Capital},
		{name: "empty falls back to default", family: "", want: defaultMetrics.Capital},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FontMetrics(tt.family).Capital; got != tt.want {
				t.Errorf("FontMetrics(%q).Capital = %v, want %v", tt.family, got, tt.want)
			}
		})
	}
}

func TestMeasureWidthBoldCapitals(t *testing.T) {
	// Five capitals at the default capital ratio with the bold multiplier:
	// 5 * 100 * 0.70 * 1.05 = 367.5.
	got := MeasureWidth("HELLO", 100, "unknown-family", 900)
	if math.Abs(got-367.5) > 0.01 {
		t.Errorf("MeasureWidth(HELLO, 100, bold) = %v, want 367.5", got)
	}

	// Regular weight drops the multiplier.
	got = MeasureWidth("HELLO", 100, "unknown-family", 400)
	if math.Abs(got-350) > 0.01 {
		t.Errorf("MeasureWidth(HELLO, 100, regular) = %v, want 350", got)
	}
}

func TestMeasureWidthCharacterClasses(t *testing.T) {
	m := defaultMetrics
	size := 100.0

	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "space", text: " ", want: m.Space * size},
		{name: "wide set beats uppercase", text: "M", want: m.AvgCharWidth * wideCharFactor * size},
		{name: "narrow set beats lowercase", text: "i", want: m.AvgCharWidth * narrowCharFactor * size},
		{name: "narrow set beats digit", text: "1", want: m.AvgCharWidth * narrowCharFactor * size},
		{name: "digit", text: "7", want: m.Number * size},
		{name: "lowercase", text: "a", want: m.Lower * size},
		{name: "fallback average", text: "&", want: m.AvgCharWidth * size},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeasureWidth(tt.text, size, "", 400)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MeasureWidth(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMeasureBlock(t *testing.T) {
	size := 60.0
	mult := 1.2
	lines := []string{"WIDE HEADLINE", "SHORT"}

	block := MeasureBlock(lines, size, "", 400, mult)

	wantWidth := MeasureWidth("WIDE HEADLINE", size, "", 400)
	if math.Abs(block.Width-wantWidth) > 1e-9 {
		t.Errorf("block.Width = %v, want widest line %v", block.Width, wantWidth)
	}

	// Height is one line advance plus the font size of the last line.
	wantHeight := LineHeight(size, "", mult) + size
	if math.Abs(block.Height-wantHeight) > 1e-9 {
		t.Errorf("block.Height = %v, want %v", block.Height, wantHeight)
	}
}

func TestMeasureBlockSingleLine(t *testing.T) {
	block := MeasureBlock([]string{"ONE"}, 80, "", 400, 1.1)
	if block.Height != 80 {
		t.Errorf("single-line block height = %v, want the font size 80", block.Height)
	}
}

func TestMeasureBlockEmpty(t *testing.T) {
	block := MeasureBlock(nil, 80, "", 400, 1.1)
	if block.Width != 0 || block.Height != 0 {
		t.Errorf("empty block = %+v, want zero size", block)
	}
}

func TestAscentDescent(t *testing.T) {
	m := FontMetrics("Roboto")
	if got := Ascent(100, "Roboto"); math.Abs(got-m.Ascent*100) > 1e-9 {
		t.Errorf("Ascent = %v, want %v", got, m.Ascent*100)
	}
	if got := Descent(100, "Roboto"); math.Abs(got-m.Descent*100) > 1e-9 {
		t.Errorf("Descent = %v, want %v", got, m.Descent*100)
	}
}
