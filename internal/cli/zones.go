package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framefit/pkg/canvas"
	"github.com/matzehuels/framefit/pkg/errors"
	"github.com/matzehuels/framefit/pkg/logos"
	"github.com/matzehuels/framefit/pkg/safezone"
)

// zonesCommand creates the zones command for inspecting the zone tables.
func (c *CLI) zonesCommand() *cobra.Command {
	var (
		width  float64
		height float64
	)

	cmd := &cobra.Command{
		Use:   "zones [desktop|mobile]",
		Short: "Show safe margins and danger zones for a device class",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class := safezone.Desktop
			if len(args) == 1 {
				class = safezone.DeviceClass(args[0])
				if class != safezone.Desktop && class != safezone.Mobile {
					return errors.New(errors.ErrCodeInvalidInput, "unknown device class: %q", args[0])
				}
			}
			return c.runZones(class, canvas.Canvas{Width: width, Height: height})
		},
	}

	cmd.Flags().Float64Var(&width, "width", canvas.RefWidth, "canvas width in pixels")
	cmd.Flags().Float64Var(&height, "height", canvas.RefHeight, "canvas height in pixels")

	return cmd
}

func (c *CLI) runZones(class safezone.DeviceClass, cv canvas.Canvas) error {
	if !cv.Valid() {
		return errors.New(errors.ErrCodeInvalidCanvas, "canvas %.0fx%.0f is not usable", cv.Width, cv.Height)
	}

	zones := c.zones
	if zones == nil {
		zones = safezone.Defaults()
	}

	m := zones.MarginsFor(class, cv)
	safe := zones.SafeArea(class, cv)

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s on %.0fx%.0f", class, cv.Width, cv.Height)))
	printKeyValue("margins", fmt.Sprintf("%.1f horizontal, %.1f vertical", m.X, m.Y))
	printKeyValue("safe area", fmt.Sprintf("(%.0f, %.0f) to (%.0f, %.0f)", safe.X, safe.Y, safe.Right(), safe.Bottom()))

	printNewline()
	printInfo("Danger zones")
	for _, z := range zones.DangerZones(cv) {
		printKeyValue(z.Label, fmt.Sprintf("%.0fx%.0f at (%.0f, %.0f)",
			z.Rect.Width, z.Rect.Height, z.Rect.X, z.Rect.Y))
	}
	return nil
}

// slotsCommand creates the slots command for listing logo slot presets.
func (c *CLI) slotsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List the logo slot presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := logos.SlotKeys()
			sort.Strings(keys)
			for _, k := range keys {
				slot, _ := logos.SlotByKey(k)
				desc := fmt.Sprintf("%s, %s anchored", slot.Kind, slot.Anchor)
				if slot.Discouraged {
					desc += " " + StyleWarning.Render("(discouraged: "+slot.Reason+")")
				}
				printKeyValue(slot.Key, desc)
			}
			return nil
		},
	}
}
