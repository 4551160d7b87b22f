package metrics

type Dimen string

const (
	FirstLineSize        Dimen = "text_size_big"
	SecondLineSize       Dimen = "text_size_secondary"
	BadgeTextSize        Dimen = "extra_icon_text_size"
	BadgePaddingH        Dimen = "extra_icon_padding_horizontal"
	BadgePaddingV        Dimen = "extra_icon_padding_vertical"
	BadgeRadius          Dimen = "extra_icon_bg_rect_radius"
	BadgeMarginTop       Dimen = "extra_icon_margin_top"
	DecorationMarginLeft Dimen = "extra_icon_margin_left"
	SlotMarginTop        Dimen = "sim_icon_margin_top"
)

var DefaultDimens = Dimens{
	FirstLineSize:        24,
	SecondLineSize:       14,
	BadgeTextSize:        10,
	BadgePaddingH:        4,
	BadgePaddingV:        1,
	BadgeRadius:          3,
	BadgeMarginTop:       0,
	DecorationMarginLeft: 6,
	SlotMarginTop:        2,
}

// Dimens maps dimension tokens to pixels. Tokens missing from the map
// resolve through DefaultDimens.
type Dimens map[Dimen]int

func (d Dimens) Dimension(token Dimen) int {
	if v, ok := d[token]; ok {
		return v
	}
	return DefaultDimens[token]
}

// Merge returns a copy of d with the entries of o applied on top.
func (d Dimens) Merge(o Dimens) Dimens {
	ret := make(Dimens, len(d)+len(o))
	for k, v := range d {
		ret[k] = v
	}
	for k, v := range o {
		ret[k] = v
	}
	return ret
}

// Known reports whether token is one of the dimensions this package defines.
func Known(token Dimen) bool {
	_, ok := DefaultDimens[token]
	return ok
}
