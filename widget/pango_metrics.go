package widget

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"
	"github.com/getseabird/callerinfo/internal/metrics"
	"k8s.io/utils/lru"
)

type measureKey struct {
	text     string
	size     int
	typeface metrics.Typeface
}

// PangoMetrics measures text with the fonts and font map of a widget, so
// widths match what the widget draws.
type PangoMetrics struct {
	metrics.Dimens
	widget *gtk.Widget
	family string
	cache  *lru.Cache
}

func NewPangoMetrics(widget gtk.Widgetter, family string, dimens metrics.Dimens) *PangoMetrics {
	if dimens == nil {
		dimens = metrics.Dimens{}
	}
	return &PangoMetrics{
		Dimens: dimens,
		widget: gtk.BaseWidget(widget),
		family: family,
		cache:  lru.New(1024),
	}
}

func (m *PangoMetrics) Measure(text string, size int, typeface metrics.Typeface) int {
	if text == "" || size <= 0 {
		return 0
	}
	key := measureKey{text, size, typeface}
	if width, ok := m.cache.Get(key); ok {
		return width.(int)
	}

	desc := pango.NewFontDescription()
	if m.family != "" {
		desc.SetFamily(m.family)
	}
	desc.SetWeight(pango.Weight(typeface.Weight()))
	desc.SetAbsoluteSize(float64(size * pango.SCALE))

	layout := m.widget.CreatePangoLayout(text)
	layout.SetFontDescription(desc)
	width, _ := layout.PixelSize()

	m.cache.Add(key, width)
	return width
}
