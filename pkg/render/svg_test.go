package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/framefit/pkg/pipeline"
)

func testPlan(t *testing.T) (*pipeline.Options, *pipeline.Result) {
	t.Helper()
	opts := &pipeline.Options{
		Text:    "BIG <NEWS>",
		Subject: &pipeline.RectSpec{X: 100, Y: 100, Width: 300, Height: 400},
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	result := &pipeline.Result{
		Text: pipeline.TextPlan{
			FontSize: 96,
			Lines:    []string{"BIG <NEWS>"},
			X:        640, Y: 300,
			Anchor: "middle",
			Width:  500, Height: 110,
			Color: "#FFFFFF",
		},
		Logos: []pipeline.LogoPlan{
			{Name: "channel", X: 1100, Y: 40, Width: 120, Height: 120, Slot: "top-right"},
		},
	}
	result.Validation.IsValid = true
	return opts, result
}

func TestOverlaySVG(t *testing.T) {
	opts, result := testPlan(t)
	svg, err := OverlaySVG(opts, result)
	if err != nil {
		t.Fatalf("OverlaySVG: %v", err)
	}
	out := string(svg)

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`class="frame"`,
		`class="safe"`,
		`duration badge`,
		`channel watermark`,
		`progress bar`,
		`class="subject"`,
		`class="textbox"`,
		`BIG &lt;NEWS&gt;`,
		`class="logo"`,
		`>channel</text>`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "<NEWS>") {
		t.Error("text not escaped")
	}
	if strings.Contains(out, `class="grid"`) {
		t.Error("grid rendered without WithGrid")
	}
}

func TestOverlaySVGOptions(t *testing.T) {
	opts, result := testPlan(t)
	result.Validation.IsValid = false
	result.Validation.Errors = []string{"headline overlaps duration badge"}
	result.Text.Warnings = []string{"font size below preferred minimum"}

	svg, err := OverlaySVG(opts, result, WithGrid(), WithLegend(), WithoutZones(), WithBackground("bg.png"))
	if err != nil {
		t.Fatalf("OverlaySVG: %v", err)
	}
	out := string(svg)

	if !strings.Contains(out, `class="grid"`) {
		t.Error("grid missing with WithGrid")
	}
	if strings.Contains(out, `class="safe"`) || strings.Contains(out, `class="danger"`) {
		t.Error("zones rendered despite WithoutZones")
	}
	if !strings.Contains(out, `href="bg.png"`) {
		t.Error("background image missing")
	}
	if !strings.Contains(out, "error: headline overlaps duration badge") {
		t.Error("legend missing validation error")
	}
	if !strings.Contains(out, "warning: font size below preferred minimum") {
		t.Error("legend missing text warning")
	}
}

func TestOverlaySVGRequiresInputs(t *testing.T) {
	if _, err := OverlaySVG(nil, nil); err == nil {
		t.Fatal("expected error for nil inputs")
	}
	if _, err := OverlaySVG(&pipeline.Options{}, &pipeline.Result{}); err == nil {
		t.Fatal("expected validation error for empty options")
	}
}
