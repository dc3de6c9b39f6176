package logos_test

import (
	"fmt"
	"sort"

	"github.com/matzehuels/framefit/pkg/canvas"
	"github.com/matzehuels/framefit/pkg/logos"
)

func ExampleSlotByKey() {
	slot, ok := logos.SlotByKey("top-right")
	fmt.Println(ok, slot.Anchor, slot.Kind)

	_, ok = logos.SlotByKey("nowhere")
	fmt.Println(ok)
	// Output:
	// true end single
	// false
}

func ExampleSlotByKey_discouraged() {
	// Discouraged slots still work, but carry a reason the caller can warn
	// about.
	slot, _ := logos.SlotByKey("bottom-right")
	fmt.Println(slot.Discouraged)
	fmt.Println(slot.Reason)
	// Output:
	// true
	// overlaps the duration badge on most players
}

func ExampleSlotKeys() {
	keys := logos.SlotKeys()
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(k)
	}
	// Output:
	// bottom-left
	// bottom-right
	// cluster-bottom-left
	// cluster-top-right
	// stack-left
	// stack-right
	// top-center
	// top-left
	// top-right
}

func ExampleAlignToGrid() {
	// Two logos in a cluster run outward from the slot anchor without
	// overlapping.
	slot, _ := logos.SlotByKey("cluster-top-right")
	placed := logos.AlignToGrid([]logos.Logo{
		{Name: "brand", AspectRatio: 1},
		{Name: "partner", AspectRatio: 1},
	}, slot, canvas.Default(), logos.AlignOptions{})

	fmt.Println(len(placed))
	fmt.Println(placed[0].Name, placed[1].Name)
	fmt.Println(placed[0].Bounds.X > placed[1].Bounds.Right())
	// Output:
	// 2
	// brand partner
	// true
}
