package compose

import "image/color"

// Style holds the colors a rebuild reads. It is replaced as a whole, never
// mutated in place.
type Style struct {
	Highlight       color.NRGBA
	Normal          color.NRGBA
	BadgeColor      color.NRGBA
	BadgeBackground color.NRGBA
}

var DefaultStyle = Style{
	Highlight:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Normal:          color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff},
	BadgeColor:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	BadgeBackground: color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
}

// Glyph is a resolved SIM slot indicator.
type Glyph struct {
	Icon   string
	Width  int
	Height int
}

func (g Glyph) IsZero() bool {
	return g == Glyph{}
}

// GlyphResolver decides which glyph, if any, represents a SIM slot.
type GlyphResolver interface {
	Glyph(slotID int) (Glyph, bool)
}

// Sink displays composed labels.
type Sink interface {
	Present(label Label)
	Clear()
}

type discard struct{}

func (discard) Present(Label) {}
func (discard) Clear() {}
