package style

import (
	"embed"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

//go:embed *.css
var fs embed.FS

func Load() {
	provider := gtk.NewCSSProvider()
	style, _ := fs.ReadFile("style.css")
	provider.LoadFromData(string(style))
	gtk.StyleContextAddProviderForDisplay(gdk.DisplayGetDefault(), provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}

// Dynamic is a stylesheet whose content is replaced at runtime, e.g. per
// badge color change. It takes precedence over the base stylesheet.
type Dynamic struct {
	provider *gtk.CSSProvider
	css      string
}

func NewDynamic() *Dynamic {
	provider := gtk.NewCSSProvider()
	gtk.StyleContextAddProviderForDisplay(gdk.DisplayGetDefault(), provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION+1)
	return &Dynamic{provider: provider}
}

func (d *Dynamic) Set(css string) {
	if css == d.css {
		return
	}
	d.css = css
	d.provider.LoadFromData(css)
}

func (d *Dynamic) Close() {
	gtk.StyleContextRemoveProviderForDisplay(gdk.DisplayGetDefault(), d.provider)
}
