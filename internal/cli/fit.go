package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framefit/pkg/io"
	"github.com/matzehuels/framefit/pkg/pipeline"
)

// fitCommand creates the fit command for computing a full layout.
func (c *CLI) fitCommand() *cobra.Command {
	var (
		output   string
		noCache  bool
		refresh  bool
		mode     string
		posX     float64
		posY     float64
		anchor   string
		subject  string
		logoArgs []string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "fit TEXT",
		Short: "Compute a thumbnail layout for a headline",
		Long: `Compute a thumbnail layout for a headline.

The fit command sizes the text to its box, places it clear of the safe
margins, danger zones, and the subject region, picks the highest-contrast
palette color against the background, and arranges any logos into their
slot. The resulting plan can be written to a JSON file for 'validate',
'render', or 'preview'.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Text = args[0]
			opts.Mode = mode
			opts.Refresh = refresh
			if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
				opts.Position = &pipeline.Position{X: posX, Y: posY, Anchor: anchor}
			}
			if subject != "" {
				rect, err := parseRectArg(subject)
				if err != nil {
					return fmt.Errorf("parse subject: %w", err)
				}
				opts.Subject = rect
			}
			logos, err := parseLogoArgs(logoArgs)
			if err != nil {
				return fmt.Errorf("parse logos: %w", err)
			}
			opts.Logos = logos
			return c.runFit(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the plan to a JSON file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even on a plan cache hit")

	// Canvas flags
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width in pixels (default 1280)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "canvas height in pixels (default 720)")
	cmd.Flags().StringVar(&opts.Device, "device", "", "device class: desktop (default), mobile")

	// Text flags
	cmd.Flags().StringVar(&opts.Font, "font", "", "font family (default Impact)")
	cmd.Flags().IntVar(&opts.FontWeight, "weight", 0, "font weight (default 700)")
	cmd.Flags().Float64Var(&opts.MinFontSize, "min-size", 0, "smallest acceptable font size")
	cmd.Flags().Float64Var(&opts.MaxFontSize, "max-size", 0, "largest font size to try")
	cmd.Flags().IntVar(&opts.MaxLines, "max-lines", 0, "maximum line count")
	cmd.Flags().Float64Var(&opts.BoxWidth, "box-width", 0, "text box width in pixels")
	cmd.Flags().Float64Var(&opts.BoxHeight, "box-height", 0, "text box height in pixels")

	// Placement flags
	cmd.Flags().StringVar(&mode, "mode", "", "placement mode: auto (default), manual, free")
	cmd.Flags().Float64Var(&posX, "x", 0, "text x position (manual and free modes)")
	cmd.Flags().Float64Var(&posY, "y", 0, "text y position (manual and free modes)")
	cmd.Flags().StringVar(&anchor, "anchor", "", "text anchor: start, middle (default), end")
	cmd.Flags().StringVar(&subject, "subject", "", "subject region to avoid as x,y,w,h")

	// Background and color flags
	cmd.Flags().StringVar(&opts.Background, "background", "", "background image for color sampling")
	cmd.Flags().StringSliceVar(&opts.Palette, "palette", nil, "hex color palette overrides")

	// Logo flags
	cmd.Flags().StringArrayVar(&logoArgs, "logo", nil, "logo as name or name:aspect (repeatable)")
	cmd.Flags().StringVar(&opts.Slot, "slot", "", "logo slot preset (default top-right)")

	return cmd
}

// runFit executes the pipeline and reports the plan.
func (c *CLI) runFit(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	c.applyCLIOptions(&opts)

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	printSuccess("Layout complete")
	printKeyValue("font size", fmt.Sprintf("%.1f px", result.Text.FontSize))
	printKeyValue("lines", strings.Join(result.Text.Lines, " / "))
	printKeyValue("position", fmt.Sprintf("(%.0f, %.0f) %s", result.Text.X, result.Text.Y, result.Text.Anchor))
	printKeyValue("color", fmt.Sprintf("%s (%s, contrast %.2f)", result.Text.Color, result.Text.ColorName, result.Text.Contrast))
	for _, lp := range result.Logos {
		printKeyValue("logo "+lp.Name, fmt.Sprintf("%.0fx%.0f at (%.0f, %.0f) in %s", lp.Width, lp.Height, lp.X, lp.Y, lp.Slot))
	}
	printStats(len(result.Logos), result.Validation, result.CacheInfo.PlanHit)

	for _, w := range result.Text.Warnings {
		printWarning("%s", w)
	}
	for _, e := range result.Validation.Errors {
		printError("%s", e)
	}

	if output != "" {
		if err := io.ExportPlan(&opts, result, output); err != nil {
			return fmt.Errorf("write plan: %w", err)
		}
		printFile(output)
		printNewline()
		printNextStep("Render", appName+" render "+output)
	}

	return nil
}

// parseRectArg parses "x,y,w,h" into a rect spec.
func parseRectArg(s string) (*pipeline.RectSpec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("want x,y,w,h, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", p)
		}
		vals[i] = v
	}
	return &pipeline.RectSpec{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// parseLogoArgs parses repeated name or name:aspect logo flags.
func parseLogoArgs(args []string) ([]pipeline.LogoSpec, error) {
	if len(args) == 0 {
		return nil, nil
	}
	specs := make([]pipeline.LogoSpec, 0, len(args))
	for _, a := range args {
		name, aspectStr, found := strings.Cut(a, ":")
		spec := pipeline.LogoSpec{Name: strings.TrimSpace(name)}
		if spec.Name == "" {
			return nil, fmt.Errorf("empty logo name in %q", a)
		}
		if found {
			aspect, err := strconv.ParseFloat(strings.TrimSpace(aspectStr), 64)
			if err != nil || aspect <= 0 {
				return nil, fmt.Errorf("bad aspect ratio in %q", a)
			}
			spec.AspectRatio = aspect
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
