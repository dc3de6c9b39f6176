package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framefit/pkg/geometry"
	"github.com/matzehuels/framefit/pkg/io"
	"github.com/matzehuels/framefit/pkg/validate"
)

// validateCommand creates the validate command for re-checking stored plans.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate plan.json",
		Short: "Re-check a stored plan against the zone rules",
		Long: `Re-check a stored plan against the zone rules.

The validate command loads a plan (produced by 'fit -o') and re-runs the
placement checks: canvas containment, safe margins, subject overlap,
danger zones, and element collisions. Useful after hand-editing a plan
or after changing the zone configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
	return cmd
}

func (c *CLI) runValidate(path string) error {
	doc, err := io.ImportPlan(path)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", path, err)
	}
	if doc.Result == nil {
		return fmt.Errorf("plan %s has no result to validate", path)
	}

	p := newProgress(c.Logger)

	t := doc.Result.Text
	textBounds := geometry.ResolveBounds(
		geometry.Point{X: t.X, Y: t.Y},
		geometry.Anchor(t.Anchor),
		geometry.Size{Width: t.Width, Height: t.Height},
	)
	elements := []validate.Element{
		{Name: "headline", Type: validate.TypeText, Bounds: textBounds},
	}
	for _, lp := range doc.Result.Logos {
		elements = append(elements, validate.Element{
			Name:   lp.Name,
			Type:   validate.TypeLogo,
			Bounds: lp.Bounds(),
		})
	}

	var subject *geometry.Rect
	if doc.Options.Subject != nil {
		rect := doc.Options.Subject.Rect()
		subject = &rect
	}

	res := validate.Placement(elements, subject, &textBounds, doc.Options.Canvas(), validate.Options{
		Zones: c.zones,
		Class: doc.Options.DeviceClass(),
	})
	p.done(fmt.Sprintf("Validated %d elements", len(elements)))

	if res.IsValid {
		printSuccess("Plan is valid")
	} else {
		printError("Plan failed validation")
	}
	for _, e := range res.Errors {
		printError("%s", e)
	}
	for _, w := range res.Warnings {
		printWarning("%s", w)
	}
	for _, s := range res.Suggestions {
		printDetail("hint: %s", s)
	}

	if !res.IsValid {
		return fmt.Errorf("%d validation errors", len(res.Errors))
	}
	return nil
}
