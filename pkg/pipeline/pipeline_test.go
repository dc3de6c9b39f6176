package pipeline

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framefit/pkg/cache"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := Options{Text: "INSANE RESULTS"}
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
			t.Errorf("canvas = %gx%g, want %gx%g", opts.Width, opts.Height, DefaultWidth, DefaultHeight)
		}
		if opts.Device != DefaultDevice {
			t.Errorf("Device = %q, want %q", opts.Device, DefaultDevice)
		}
		if opts.Font != DefaultFont || opts.FontWeight != DefaultFontWeight {
			t.Errorf("font = %q/%d, want %q/%d", opts.Font, opts.FontWeight, DefaultFont, DefaultFontWeight)
		}
		if opts.Mode != ModeAuto {
			t.Errorf("Mode = %q, want %q", opts.Mode, ModeAuto)
		}
		if opts.BoxWidth != defaultBoxWidthFrac*opts.Width {
			t.Errorf("BoxWidth = %g", opts.BoxWidth)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		opts := Options{Text: "HELLO", MaxLines: 3}
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatalf("first call: %v", err)
		}
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatalf("second call: %v", err)
		}
		if opts.MaxLines != 3 {
			t.Errorf("MaxLines = %d, want 3", opts.MaxLines)
		}
	})

	tests := []struct {
		name string
		opts Options
	}{
		{"empty text", Options{}},
		{"negative canvas", Options{Text: "HI", Width: -1}},
		{"bad device", Options{Text: "HI", Device: "tablet"}},
		{"bad mode", Options{Text: "HI", Mode: "magnetic"}},
		{"manual without position", Options{Text: "HI", Mode: ModeManual}},
		{"free without position", Options{Text: "HI", Mode: ModeFree}},
		{"inverted font range", Options{Text: "HI", MinFontSize: 90, MaxFontSize: 30}},
		{"unknown slot", Options{Text: "HI", Logos: []LogoSpec{{Name: "a"}}, Slot: "under-the-player"}},
		{"bad palette entry", Options{Text: "HI", Palette: []string{"#GGGGGG"}}},
		{"zero-size subject", Options{Text: "HI", Subject: &RectSpec{X: 10, Y: 10}}},
		{"traversal background path", Options{Text: "HI", Background: "../../etc/passwd"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestOptionsHash(t *testing.T) {
	a := Options{Text: "INSANE RESULTS"}
	b := Options{Text: "INSANE RESULTS"}
	if a.OptionsHash() != b.OptionsHash() {
		t.Error("identical options should hash identically")
	}

	c := Options{Text: "OTHER TEXT"}
	if a.OptionsHash() == c.OptionsHash() {
		t.Error("different options should hash differently")
	}

	// Runtime-only fields must not affect the hash.
	d := Options{Text: "INSANE RESULTS", Logger: testLogger()}
	if a.OptionsHash() != d.OptionsHash() {
		t.Error("runtime fields should not affect the hash")
	}
}

func TestExecuteAuto(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())
	defer r.Close()

	res, err := r.Execute(context.Background(), Options{Text: "INSANE RESULTS"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if res.Text.FontSize < 24 || res.Text.FontSize > 120 {
		t.Errorf("FontSize = %g, want within [24, 120]", res.Text.FontSize)
	}
	if len(res.Text.Lines) == 0 {
		t.Fatal("no lines produced")
	}
	if res.Text.Anchor == "" {
		t.Error("anchor not set")
	}
	if res.Text.Score <= 0 {
		t.Errorf("Score = %g, want > 0 for an uncontested canvas", res.Text.Score)
	}

	// No background: the sample defaults to gray, against which black is the
	// only palette color reaching AA.
	if res.Text.ColorName != "black" {
		t.Errorf("ColorName = %q, want black against the gray default", res.Text.ColorName)
	}
	if res.Text.Contrast < 4.5 {
		t.Errorf("Contrast = %g, want >= 4.5", res.Text.Contrast)
	}

	foundDefaulted := false
	for _, w := range res.Text.Warnings {
		if strings.HasPrefix(w, "background sample defaulted") {
			foundDefaulted = true
		}
	}
	if !foundDefaulted {
		t.Error("expected a defaulted-sample warning without a background")
	}
}

func TestExecuteManualAdjustsIntoSafeArea(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())
	defer r.Close()

	res, err := r.Execute(context.Background(), Options{
		Text:     "BREAKING",
		Mode:     ModeManual,
		Position: &Position{X: 10, Y: 10, Anchor: "start"},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	// Desktop margins at 1280x720: 64*(1280/1920) horizontally, 48*(720/1080)
	// vertically.
	wantX, wantY := 64.0*1280/1920, 48.0*720/1080
	if math.Abs(res.Text.X-wantX) > 0.01 {
		t.Errorf("X = %g, want %g", res.Text.X, wantX)
	}
	if math.Abs(res.Text.Y-wantY) > 0.01 {
		t.Errorf("Y = %g, want %g", res.Text.Y, wantY)
	}
}

func TestExecuteFreeUsesPositionVerbatim(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())
	defer r.Close()

	res, err := r.Execute(context.Background(), Options{
		Text:     "BREAKING",
		Mode:     ModeFree,
		Position: &Position{X: 10, Y: 10, Anchor: "start"},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if res.Text.X != 10 || res.Text.Y != 10 {
		t.Errorf("position = (%g, %g), want (10, 10) untouched", res.Text.X, res.Text.Y)
	}
}

func TestExecuteWithLogosAndSubject(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())
	defer r.Close()

	res, err := r.Execute(context.Background(), Options{
		Text:    "NEW SEASON",
		Subject: &RectSpec{X: 100, Y: 200, Width: 400, Height: 400},
		Logos:   []LogoSpec{{Name: "brand", AspectRatio: 2}},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(res.Logos) != 1 {
		t.Fatalf("got %d logos, want 1", len(res.Logos))
	}
	logo := res.Logos[0]
	if logo.Slot != DefaultSlot {
		t.Errorf("Slot = %q, want %q", logo.Slot, DefaultSlot)
	}
	if logo.X < 640 {
		t.Errorf("logo.X = %g, expected the right half of the canvas", logo.X)
	}
	if logo.Width <= 0 || logo.Height <= 0 {
		t.Errorf("logo size = %gx%g", logo.Width, logo.Height)
	}

	// Subject sits on the left; the middle-anchored text lands opposite.
	if res.Text.X < 640 {
		t.Errorf("text anchor x = %g, expected the side opposite the subject", res.Text.X)
	}
}

func TestExecutePlanCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(fc, nil, testLogger())
	defer r.Close()

	ctx := context.Background()

	first, err := r.Execute(ctx, Options{Text: "CACHED HEADLINE"})
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.PlanHit {
		t.Error("first run should not hit the plan cache")
	}

	second, err := r.Execute(ctx, Options{Text: "CACHED HEADLINE"})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.PlanHit {
		t.Error("second run should hit the plan cache")
	}
	if second.Text.FontSize != first.Text.FontSize || second.Text.X != first.Text.X {
		t.Error("cached plan should match the computed plan")
	}
}

func TestExecuteSampleCache(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1280, 720))
	for y := 0; y < 720; y++ {
		for x := 0; x < 1280; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(fc, nil, testLogger())
	defer r.Close()

	ctx := context.Background()
	run := func() *Result {
		res, err := r.Execute(ctx, Options{
			Text:           "DARK BACKGROUND",
			Refresh:        true, // bypass the plan cache, exercise the sample cache
			BackgroundData: buf.Bytes(),
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		return res
	}

	first := run()
	if first.CacheInfo.SampleHit {
		t.Error("first run should not hit the sample cache")
	}
	// Against a uniform dark background the sample is measured, not
	// defaulted, and white wins comfortably.
	if first.Text.ColorName != "white" {
		t.Errorf("ColorName = %q, want white on a dark background", first.Text.ColorName)
	}
	for _, w := range first.Text.Warnings {
		if strings.HasPrefix(w, "background sample defaulted") {
			t.Errorf("unexpected defaulted-sample warning: %q", w)
		}
	}

	second := run()
	if !second.CacheInfo.SampleHit {
		t.Error("second run should hit the sample cache")
	}
}

func TestRunnerFit(t *testing.T) {
	r := NewRunner(nil, nil, testLogger())
	defer r.Close()

	fit, err := r.Fit(context.Background(), Options{Text: "HI"})
	if err != nil {
		t.Fatalf("Fit error: %v", err)
	}
	if fit.FontSize != 120 {
		t.Errorf("FontSize = %g, want 120 for short text in the default box", fit.FontSize)
	}
	if !fit.Fits {
		t.Error("short text should fit")
	}
}
