package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framefit/pkg/io"
	"github.com/matzehuels/framefit/pkg/render"
)

// renderCommand creates the render command for drawing debug overlays.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		grid       bool
		legend     bool
		noZones    bool
		background string
	)

	cmd := &cobra.Command{
		Use:   "render plan.json",
		Short: "Draw a stored plan as an SVG debug overlay",
		Long: `Draw a stored plan as an SVG debug overlay.

The overlay shows the canvas frame, the safe area, the danger zones, the
subject box, and the computed text and logo boxes. It is a diagnostic
view for checking a layout without compositing the real thumbnail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], output, grid, legend, noZones, background)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg)")
	cmd.Flags().BoolVar(&grid, "grid", false, "draw rule-of-thirds guides")
	cmd.Flags().BoolVar(&legend, "legend", false, "append a warnings and errors panel")
	cmd.Flags().BoolVar(&noZones, "no-zones", false, "hide the safe-area and danger-zone layers")
	cmd.Flags().StringVar(&background, "background", "", "embed an image reference behind the overlay")

	return cmd
}

func (c *CLI) runRender(input, output string, grid, legend, noZones bool, background string) error {
	doc, err := io.ImportPlan(input)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", input, err)
	}
	if doc.Result == nil {
		return fmt.Errorf("plan %s has no result to render", input)
	}

	var ropts []render.Option
	if grid {
		ropts = append(ropts, render.WithGrid())
	}
	if legend {
		ropts = append(ropts, render.WithLegend())
	}
	if noZones {
		ropts = append(ropts, render.WithoutZones())
	}
	if background != "" {
		ropts = append(ropts, render.WithBackground(background))
	}
	doc.Options.Zones = c.zones

	svg, err := render.OverlaySVG(doc.Options, doc.Result, ropts...)
	if err != nil {
		return fmt.Errorf("render overlay: %w", err)
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".svg"
	}
	if err := os.WriteFile(outputPath, svg, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Overlay rendered")
	printFile(outputPath)
	return nil
}
