package icon

import (
	"fmt"

	"github.com/getseabird/callerinfo/internal/compose"
)

const DefaultSize = 16

// SlotName is the themed icon name of the indicator for a zero-based SIM
// slot.
func SlotName(slotID int) string {
	return fmt.Sprintf("sim-%d-symbolic", slotID+1)
}

var DefaultSlotIcons = []string{SlotName(0), SlotName(1)}

// SlotResolver maps SIM slots to indicator glyphs. Disabled resolvers, used
// on single SIM devices, never return a glyph.
type SlotResolver struct {
	Enabled bool
	Icons   []string
	Size    int
}

func (r SlotResolver) Glyph(slotID int) (compose.Glyph, bool) {
	if !r.Enabled || slotID < 0 || slotID >= len(r.Icons) || r.Icons[slotID] == "" {
		return compose.Glyph{}, false
	}
	size := r.Size
	if size <= 0 {
		size = DefaultSize
	}
	return compose.Glyph{Icon: r.Icons[slotID], Width: size, Height: size}, true
}
