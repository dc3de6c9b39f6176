// Package logos sizes brand logos and arranges them into clusters and
// stacks on the thumbnail canvas.
//
// A slot is a named preset position (top-right corner, left stack, ...)
// carrying its anchor and layout kind. Slots that collide with platform UI
// in practice are marked discouraged with a reason; callers must opt in to
// them explicitly.
package logos

import "github.com/matzehuels/framefit/pkg/geometry"

// SlotKind describes how multiple logos in a slot are arranged.
type SlotKind string

// Slot kinds.
const (
	KindSingle  SlotKind = "single"  // one position, extra logos distributed around it
	KindCluster SlotKind = "cluster" // horizontal run outward from the anchor
	KindStack   SlotKind = "stack"   // vertical run downward from the anchor
)

// Slot is a preset logo position. FracX and FracY are fractions of the
// canvas width and height locating the anchor point.
type Slot struct {
	Key          string
	Anchor       geometry.Anchor
	FracX, FracY float64
	Kind         SlotKind
	Discouraged  bool
	Reason       string // why the slot is discouraged; empty otherwise
}

// slotTable is the static slot preset table. Loaded once, never mutated.
var slotTable = map[string]Slot{
	"top-left":   {Key: "top-left", Anchor: geometry.AnchorStart, FracX: 0.04, FracY: 0.06, Kind: KindSingle},
	"top-center": {Key: "top-center", Anchor: geometry.AnchorMiddle, FracX: 0.50, FracY: 0.06, Kind: KindSingle},
	"top-right":  {Key: "top-right", Anchor: geometry.AnchorEnd, FracX: 0.96, FracY: 0.06, Kind: KindSingle},
	"bottom-left": {
		Key: "bottom-left", Anchor: geometry.AnchorStart, FracX: 0.04, FracY: 0.82, Kind: KindSingle,
	},
	"bottom-right": {
		Key: "bottom-right", Anchor: geometry.AnchorEnd, FracX: 0.96, FracY: 0.82, Kind: KindSingle,
		Discouraged: true, Reason: "overlaps the duration badge on most players",
	},
	"cluster-top-right":   {Key: "cluster-top-right", Anchor: geometry.AnchorEnd, FracX: 0.96, FracY: 0.06, Kind: KindCluster},
	"cluster-bottom-left": {Key: "cluster-bottom-left", Anchor: geometry.AnchorStart, FracX: 0.04, FracY: 0.82, Kind: KindCluster},
	"stack-left":         {Key: "stack-left", Anchor: geometry.AnchorStart, FracX: 0.04, FracY: 0.30, Kind: KindStack},
	"stack-right":        {Key: "stack-right", Anchor: geometry.AnchorEnd, FracX: 0.96, FracY: 0.30, Kind: KindStack},
}

// SlotByKey looks up a preset slot. The second return is false for unknown
// keys.
func SlotByKey(key string) (Slot, bool) {
	s, ok := slotTable[key]
	return s, ok
}

// SlotKeys returns all preset slot keys. The order is unspecified.
func SlotKeys() []string {
	keys := make([]string, 0, len(slotTable))
	for k := range slotTable {
		keys = append(keys, k)
	}
	return keys
}

// grouped reports whether the slot lays logos out as a cluster or stack.
func (s Slot) grouped() bool {
	return s.Kind == KindCluster || s.Kind == KindStack
}
