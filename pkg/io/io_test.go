package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/framefit/pkg/pipeline"
)

func testOptions(t *testing.T) *pipeline.Options {
	t.Helper()
	opts := &pipeline.Options{Text: "ROUND TRIP"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	return opts
}

func TestWriteReadRoundTrip(t *testing.T) {
	opts := testOptions(t)
	result := &pipeline.Result{
		Text: pipeline.TextPlan{FontSize: 96, Lines: []string{"ROUND TRIP"}, X: 640, Y: 360},
	}

	var buf bytes.Buffer
	if err := WritePlan(opts, result, &buf); err != nil {
		t.Fatalf("WritePlan: %v", err)
	}

	doc, err := ReadPlan(&buf)
	if err != nil {
		t.Fatalf("ReadPlan: %v", err)
	}
	if doc.Version != FormatVersion {
		t.Errorf("Version = %d, want %d", doc.Version, FormatVersion)
	}
	if doc.Options.Text != "ROUND TRIP" {
		t.Errorf("Options.Text = %q", doc.Options.Text)
	}
	if doc.Result == nil || doc.Result.Text.FontSize != 96 {
		t.Errorf("Result not preserved: %+v", doc.Result)
	}
	if doc.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestExportImportFile(t *testing.T) {
	opts := testOptions(t)
	path := filepath.Join(t.TempDir(), "plan.json")

	if err := ExportPlan(opts, nil, path); err != nil {
		t.Fatalf("ExportPlan: %v", err)
	}
	doc, err := ImportPlan(path)
	if err != nil {
		t.Fatalf("ImportPlan: %v", err)
	}
	if doc.Options.Text != "ROUND TRIP" {
		t.Errorf("Options.Text = %q", doc.Options.Text)
	}
	if doc.Result != nil {
		t.Errorf("Result = %+v, want nil", doc.Result)
	}
}

func TestImportMissingFile(t *testing.T) {
	if _, err := ImportPlan(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadPlanRejects(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"malformed", `{`, "decode"},
		{"wrong version", `{"version": 2, "options": {"text": "HI"}}`, "unsupported plan version"},
		{"missing options", `{"version": 1}`, "no options"},
		{"invalid options", `{"version": 1, "options": {"text": ""}}`, "options"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPlan(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestReadPlanAppliesDefaults(t *testing.T) {
	doc, err := ReadPlan(strings.NewReader(`{"version": 1, "options": {"text": "HI"}}`))
	if err != nil {
		t.Fatalf("ReadPlan: %v", err)
	}
	if doc.Options.Width != pipeline.DefaultWidth {
		t.Errorf("Width = %v, want %v", doc.Options.Width, pipeline.DefaultWidth)
	}
	if doc.Options.Font != pipeline.DefaultFont {
		t.Errorf("Font = %q, want %q", doc.Options.Font, pipeline.DefaultFont)
	}
}
