package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framefit/pkg/geometry"
	"github.com/matzehuels/framefit/pkg/io"
	"github.com/matzehuels/framefit/pkg/pipeline"
	"github.com/matzehuels/framefit/pkg/safezone"
	"github.com/matzehuels/framefit/pkg/validate"
)

// previewCommand creates the preview command: an interactive position editor.
func (c *CLI) previewCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "preview plan.json",
		Short: "Interactively nudge a text position and watch validation",
		Long: `Interactively nudge a text position and watch validation.

The preview command loads a plan and opens a terminal view of the canvas:
the safe area, danger zones, subject, text block, and logos. Arrow keys
move the text; validation re-runs on every move. Saving writes the plan
back with the adjusted position in free mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite the input)")

	return cmd
}

func (c *CLI) runPreview(input, output string) error {
	doc, err := io.ImportPlan(input)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", input, err)
	}
	if doc.Result == nil {
		return fmt.Errorf("plan %s has no result to preview", input)
	}

	zones := c.zones
	if zones == nil {
		zones = safezone.Defaults()
	}

	m := newPreviewModel(doc, zones)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run preview: %w", err)
	}

	final := finalModel.(previewModel)
	if !final.saved {
		printInfo("Preview closed without saving")
		return nil
	}

	outputPath := output
	if outputPath == "" {
		outputPath = input
	}
	doc.Result.Text.X = final.pos.X
	doc.Result.Text.Y = final.pos.Y
	doc.Options.Mode = pipeline.ModeFree
	doc.Options.Position = &pipeline.Position{
		X: final.pos.X, Y: final.pos.Y, Anchor: doc.Result.Text.Anchor,
	}
	if err := io.ExportPlan(doc.Options, doc.Result, outputPath); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}

	printSuccess("Position saved")
	printKeyValue("position", fmt.Sprintf("(%.0f, %.0f)", final.pos.X, final.pos.Y))
	printFile(outputPath)
	return nil
}

// Preview canvas cell grid. Chosen so a 16:9 canvas maps to roughly square
// terminal cells (characters are about twice as tall as wide).
const (
	previewCols = 72
	previewRows = 20
)

// previewModel is the bubbletea model for the position editor.
type previewModel struct {
	doc   *io.Document
	zones *safezone.Registry

	pos   geometry.Point
	step  float64
	res   validate.Result
	saved bool
}

func newPreviewModel(doc *io.Document, zones *safezone.Registry) previewModel {
	m := previewModel{
		doc:   doc,
		zones: zones,
		pos:   geometry.Point{X: doc.Result.Text.X, Y: doc.Result.Text.Y},
		step:  8,
	}
	m.res = m.revalidate()
	return m
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter", "s":
		m.saved = true
		return m, tea.Quit
	case "up", "k":
		m.pos.Y -= m.step
	case "down", "j":
		m.pos.Y += m.step
	case "left", "h":
		m.pos.X -= m.step
	case "right", "l":
		m.pos.X += m.step
	case "+", "=":
		if m.step < 64 {
			m.step *= 2
		}
	case "-", "_":
		if m.step > 1 {
			m.step /= 2
		}
	default:
		return m, nil
	}

	m.res = m.revalidate()
	return m, nil
}

// textBounds resolves the text box at the current position.
func (m previewModel) textBounds() geometry.Rect {
	t := m.doc.Result.Text
	return geometry.ResolveBounds(
		m.pos,
		geometry.Anchor(t.Anchor),
		geometry.Size{Width: t.Width, Height: t.Height},
	)
}

func (m previewModel) revalidate() validate.Result {
	bounds := m.textBounds()
	elements := []validate.Element{
		{Name: "headline", Type: validate.TypeText, Bounds: bounds},
	}
	for _, lp := range m.doc.Result.Logos {
		elements = append(elements, validate.Element{
			Name: lp.Name, Type: validate.TypeLogo, Bounds: lp.Bounds(),
		})
	}

	var subject *geometry.Rect
	if m.doc.Options.Subject != nil {
		rect := m.doc.Options.Subject.Rect()
		subject = &rect
	}

	return validate.Placement(elements, subject, &bounds, m.doc.Options.Canvas(), validate.Options{
		Zones: m.zones,
		Class: m.doc.Options.DeviceClass(),
	})
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Position Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↑↓→ move  +/- step  ⏎ save  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderCanvas())
	b.WriteString("\n")

	status := fmt.Sprintf("position (%.0f, %.0f) · step %.0f px", m.pos.X, m.pos.Y, m.step)
	if m.res.IsValid {
		b.WriteString(StyleSuccess.Render("valid") + StyleDim.Render(" · "+status))
	} else {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("%d errors", len(m.res.Errors))) + StyleDim.Render(" · "+status))
	}
	b.WriteString("\n")

	for _, e := range m.res.Errors {
		b.WriteString("  " + styleIconError.Render(iconError) + " " + e + "\n")
	}
	for _, w := range m.res.Warnings {
		b.WriteString("  " + styleIconWarning.Render(iconWarning) + " " + StyleDim.Render(w) + "\n")
	}

	return b.String()
}

// renderCanvas draws the layout as a character grid. Later layers overwrite
// earlier ones, so the text block always stays visible.
func (m previewModel) renderCanvas() string {
	c := m.doc.Options.Canvas()
	grid := make([][]rune, previewRows)
	for y := range grid {
		grid[y] = make([]rune, previewCols)
		for x := range grid[y] {
			grid[y][x] = '·'
		}
	}

	fill := func(r geometry.Rect, ch rune) {
		x0 := int(r.X / c.Width * previewCols)
		y0 := int(r.Y / c.Height * previewRows)
		x1 := int(r.Right() / c.Width * previewCols)
		y1 := int(r.Bottom() / c.Height * previewRows)
		for y := max(y0, 0); y <= min(y1, previewRows-1); y++ {
			for x := max(x0, 0); x <= min(x1, previewCols-1); x++ {
				grid[y][x] = ch
			}
		}
	}

	for _, z := range m.zones.DangerZones(c) {
		fill(z.Rect, 'x')
	}
	if m.doc.Options.Subject != nil {
		fill(m.doc.Options.Subject.Rect(), '#')
	}
	for _, lp := range m.doc.Result.Logos {
		fill(lp.Bounds(), 'L')
	}
	fill(m.textBounds(), 'T')

	border := StyleDim.Render("+" + strings.Repeat("-", previewCols) + "+")
	var b strings.Builder
	b.WriteString(border)
	b.WriteString("\n")
	for _, row := range grid {
		b.WriteString(StyleDim.Render("|"))
		b.WriteString(string(row))
		b.WriteString(StyleDim.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(border)
	b.WriteString("\n")
	return b.String()
}
