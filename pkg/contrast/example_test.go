package contrast_test

import (
	"fmt"

	"github.com/matzehuels/framefit/pkg/contrast"
)

func ExampleRatio() {
	// White on black is the maximum WCAG contrast ratio
	fmt.Printf("%.1f\n", contrast.Ratio(contrast.White, contrast.Black))
	// Output:
	// 21.0
}

func ExampleParseHex() {
	c, err := contrast.ParseHex("#FFCC00")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.Hex())

	_, err = contrast.ParseHex("not a color")
	fmt.Println(err != nil)
	// Output:
	// #FFCC00
	// true
}

func ExampleIsLight() {
	fmt.Println(contrast.IsLight(contrast.White))
	fmt.Println(contrast.IsLight(contrast.Black))
	// Output:
	// true
	// false
}

func ExampleSelectTextColor() {
	// On a black background the highest-contrast palette entry wins and no
	// backing treatment is needed.
	sel := contrast.SelectTextColor(contrast.Black, nil)
	fmt.Println(sel.Name)
	fmt.Println(sel.NeedsBacking, sel.Backing)
	// Output:
	// white
	// false none
}

func ExampleSelectTextColor_lowContrast() {
	// A palette that cannot reach AA gets a backing treatment chosen by the
	// background's luminance: light backgrounds take a stroke.
	palette := []contrast.PaletteColor{{Name: "white", Color: contrast.White}}
	sel := contrast.SelectTextColor(contrast.MustHex("#EEEEEE"), palette)
	fmt.Println(sel.NeedsBacking, sel.Backing)
	// Output:
	// true stroke
}
