package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	frameio "github.com/matzehuels/framefit/pkg/io"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := testCLI().RootCommand()

	want := []string{"fit", "logos", "validate", "render", "preview", "zones", "slots", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("dir = %q", dir)
	}
}

func TestParseRectArg(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "10,20,300,400", false},
		{"spaces", " 10, 20, 300, 400 ", false},
		{"too few", "10,20,300", true},
		{"not numbers", "a,b,c,d", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect, err := parseRectArg(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRectArg: %v", err)
			}
			if rect.X != 10 || rect.Y != 20 || rect.Width != 300 || rect.Height != 400 {
				t.Errorf("rect = %+v", rect)
			}
		})
	}
}

func TestParseLogoArgs(t *testing.T) {
	specs, err := parseLogoArgs([]string{"brand", "wide:2.5"})
	if err != nil {
		t.Fatalf("parseLogoArgs: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("len = %d, want 2", len(specs))
	}
	if specs[0].Name != "brand" || specs[0].AspectRatio != 0 {
		t.Errorf("specs[0] = %+v", specs[0])
	}
	if specs[1].Name != "wide" || specs[1].AspectRatio != 2.5 {
		t.Errorf("specs[1] = %+v", specs[1])
	}

	for _, bad := range []string{":1.5", "name:abc", "name:-2"} {
		if _, err := parseLogoArgs([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestFitCommandWritesPlan(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	planPath := filepath.Join(t.TempDir(), "plan.json")
	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"fit", "SEASON FINALE", "--no-cache", "-o", planPath})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("fit: %v", err)
	}

	doc, err := frameio.ImportPlan(planPath)
	if err != nil {
		t.Fatalf("ImportPlan: %v", err)
	}
	if doc.Options.Text != "SEASON FINALE" {
		t.Errorf("Text = %q", doc.Options.Text)
	}
	if doc.Result == nil || doc.Result.Text.FontSize <= 0 {
		t.Errorf("result not written: %+v", doc.Result)
	}
}

func TestValidateCommandOnStoredPlan(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	planPath := filepath.Join(t.TempDir(), "plan.json")
	c := testCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"fit", "GRAND OPENING", "--no-cache", "-o", planPath})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("fit: %v", err)
	}

	root = c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"validate", planPath})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestRenderCommandWritesSVG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.json")
	svgPath := filepath.Join(dir, "out.svg")

	c := testCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"fit", "LAUNCH DAY", "--no-cache", "-o", planPath})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("fit: %v", err)
	}

	root = c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", planPath, "-o", svgPath, "--grid"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.Contains(string(data), "<svg") || !strings.Contains(string(data), `class="grid"`) {
		t.Errorf("unexpected svg output")
	}
}
