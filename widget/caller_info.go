package widget

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/callerinfo/internal/compose"
	"github.com/getseabird/callerinfo/internal/markup"
	"github.com/getseabird/callerinfo/internal/style"
	"github.com/google/uuid"
)

// CallerInfoView shows composed caller labels: the first line text with its
// badge and slot glyph, and the second line below.
type CallerInfoView struct {
	*gtk.Box
	markup markup.Renderer

	text   *gtk.Label
	badge  *gtk.Label
	slot   *gtk.Image
	second *gtk.Label

	// badge colors and padding are per view
	class string
	css   *style.Dynamic
}

func NewCallerInfoView(renderer markup.Renderer) *CallerInfoView {
	v := CallerInfoView{
		Box:    gtk.NewBox(gtk.OrientationVertical, 0),
		markup: renderer,
		text:   gtk.NewLabel(""),
		badge:  gtk.NewLabel(""),
		slot:   gtk.NewImage(),
		second: gtk.NewLabel(""),
		class:  "badge-" + uuid.NewString(),
		css:    style.NewDynamic(),
	}
	v.AddCSSClass("caller-info")
	v.SetHAlign(gtk.AlignStart)

	first := gtk.NewBox(gtk.OrientationHorizontal, 0)
	first.AddCSSClass("first-line")
	v.Append(first)

	v.text.SetXAlign(0)
	v.text.SetSingleLineMode(true)
	first.Append(v.text)

	v.badge.AddCSSClass("badge")
	v.badge.AddCSSClass(v.class)
	v.badge.SetVAlign(gtk.AlignStart)
	first.Append(v.badge)

	v.slot.AddCSSClass("slot")
	v.slot.SetVAlign(gtk.AlignStart)
	first.Append(v.slot)

	v.second.SetXAlign(0)
	v.second.SetSingleLineMode(true)
	v.Append(v.second)

	v.Clear()
	return &v
}

func (v *CallerInfoView) Present(label compose.Label) {
	var line int
	v.badge.SetVisible(false)
	v.slot.SetVisible(false)
	v.second.SetVisible(false)

	for _, run := range label.Runs {
		switch run.Kind {
		case compose.RunNewline:
			line++
		case compose.RunText:
			if line == 0 {
				v.text.SetMarkup(v.markup.Span(run))
			} else {
				v.second.SetMarkup(v.markup.Span(run))
				v.second.SetVisible(true)
			}
		case compose.RunBadge:
			v.badge.SetText(run.Text)
			v.css.Set(v.markup.BadgeCSS(v.class, run))
			v.badge.SetVisible(true)
		case compose.RunGlyph:
			g := run.Attrs.Glyph
			v.slot.SetFromIconName(g.Icon)
			v.slot.SetPixelSize(g.Width)
			v.slot.SetMarginStart(run.Attrs.MarginLeft)
			v.slot.SetMarginTop(run.Attrs.MarginTop)
			v.slot.SetVisible(true)
		}
	}
	v.SetVisible(true)
}

func (v *CallerInfoView) Clear() {
	v.text.SetText("")
	v.second.SetText("")
	v.badge.SetVisible(false)
	v.slot.SetVisible(false)
	v.SetVisible(false)
}

// SetStartPadding sets the space before the text, which the composer
// subtracts from the content width.
func (v *CallerInfoView) SetStartPadding(padding int) {
	v.SetMarginStart(padding)
}

// Destroy releases the view's stylesheet.
func (v *CallerInfoView) Destroy() {
	v.css.Close()
}
