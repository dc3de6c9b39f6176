package safezone_test

import (
	"fmt"

	"github.com/matzehuels/framefit/pkg/canvas"
	"github.com/matzehuels/framefit/pkg/safezone"
)

func ExampleRegistry_MarginsFor() {
	zones := safezone.Defaults()
	c := canvas.Default()

	m := zones.MarginsFor(safezone.Desktop, c)
	fmt.Println(m.X, m.Y)
	// Mobile margins are wider to survive small players
	m = zones.MarginsFor(safezone.Mobile, c)
	fmt.Println(m.X, m.Y)
	// Output:
	// 64 48
	// 96 72
}

func ExampleRegistry_SafeArea() {
	// The safe area is the canvas inset by the class margins
	area := safezone.Defaults().SafeArea(safezone.Desktop, canvas.Default())
	fmt.Println(area.X, area.Y, area.Width, area.Height)
	// Output:
	// 64 48 1792 984
}

func ExampleRegistry_DurationBadge() {
	badge, ok := safezone.Defaults().DurationBadge(canvas.Default())
	fmt.Println(ok)
	fmt.Println(badge.Label)
	fmt.Println(badge.Rect.X, badge.Rect.Y, badge.Rect.Width, badge.Rect.Height)
	// Output:
	// true
	// duration badge
	// 1750 1000 170 80
}
