package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framefit/pkg/errors"
	"github.com/matzehuels/framefit/pkg/logos"
	"github.com/matzehuels/framefit/pkg/pipeline"
)

// logosCommand creates the logos command for standalone logo arrangement.
func (c *CLI) logosCommand() *cobra.Command {
	var (
		logoArgs []string
		slotKey  string
		width    float64
		height   float64
	)

	cmd := &cobra.Command{
		Use:   "logos --logo NAME[:ASPECT] ...",
		Short: "Size and arrange logos without fitting text",
		Long: `Size and arrange logos without fitting text.

Each logo is sized by the count bucket and the slot kind, clamped to the
height and width caps, then snapped into the slot's grid. The computed
boxes are printed in canvas coordinates.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := parseLogoArgs(logoArgs)
			if err != nil {
				return fmt.Errorf("parse logos: %w", err)
			}
			if len(specs) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "at least one --logo is required")
			}
			return c.runLogos(specs, slotKey, width, height)
		},
	}

	cmd.Flags().StringArrayVar(&logoArgs, "logo", nil, "logo as name or name:aspect (repeatable)")
	cmd.Flags().StringVar(&slotKey, "slot", pipeline.DefaultSlot, "logo slot preset")
	cmd.Flags().Float64Var(&width, "width", pipeline.DefaultWidth, "canvas width in pixels")
	cmd.Flags().Float64Var(&height, "height", pipeline.DefaultHeight, "canvas height in pixels")

	return cmd
}

func (c *CLI) runLogos(specs []pipeline.LogoSpec, slotKey string, width, height float64) error {
	opts := pipeline.Options{
		Text:   "x", // unused; options require a headline
		Width:  width,
		Height: height,
		Logos:  specs,
		Slot:   slotKey,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	slot, _ := logos.SlotByKey(opts.Slot)
	if slot.Discouraged {
		printWarning("slot %s is discouraged: %s", slot.Key, slot.Reason)
	}

	placed := logos.AlignToGrid(opts.LogoItems(), slot, opts.Canvas(), logos.AlignOptions{})
	printSuccess("Arranged %d logos in %s", len(placed), slot.Key)
	for _, p := range placed {
		printKeyValue(p.Name, fmt.Sprintf("%.0fx%.0f at (%.0f, %.0f)",
			p.Bounds.Width, p.Bounds.Height, p.Bounds.X, p.Bounds.Y))
	}
	return nil
}
