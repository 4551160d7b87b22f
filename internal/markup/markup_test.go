package markup

import (
	"image/color"
	"testing"

	"github.com/getseabird/callerinfo/internal/compose"
	"github.com/getseabird/callerinfo/internal/metrics"
	"github.com/stretchr/testify/assert"
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func TestFontDesc(t *testing.T) {
	assert.Equal(t, "24px", Renderer{}.FontDesc(24, metrics.Default))
	assert.Equal(t, "Cantarell Medium 24px", Renderer{Family: "Cantarell"}.FontDesc(24, metrics.Medium))
}

func TestSpan(t *testing.T) {
	r := Renderer{Family: "Sans"}
	run := compose.Run{
		Kind:  compose.RunText,
		Text:  "Tom & <Jerry>",
		Attrs: compose.Attrs{Size: 24, Typeface: metrics.Medium, Color: white},
	}
	assert.Equal(t, `<span font_desc="Sans Medium 24px" foreground="#ffffff">Tom &amp; &lt;Jerry&gt;</span>`, r.Span(run))

	run.Attrs.Color = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0x80}
	run.Attrs.Typeface = metrics.Default
	run.Text = "x"
	assert.Equal(t, `<span font_desc="Sans 24px" foreground="#999999" fgalpha="50%">x</span>`, r.Span(run))

	run.Attrs.Color = color.NRGBA{}
	assert.Equal(t, `<span font_desc="Sans 24px" foreground="#000000" fgalpha="1%">x</span>`, r.Span(run))

	assert.Equal(t, "\n", r.Span(compose.Run{Kind: compose.RunNewline, Text: "\n"}))
	assert.Empty(t, r.Span(compose.Run{Kind: compose.RunGlyph}))
	assert.Empty(t, r.Span(compose.Run{Kind: compose.RunText}))
}

func TestMarkup(t *testing.T) {
	label := compose.Label{Runs: []compose.Run{
		{Kind: compose.RunText, Text: "Alice", Attrs: compose.Attrs{Size: 24, Color: white}},
		{Kind: compose.RunGlyph, Attrs: compose.Attrs{Glyph: compose.Glyph{Icon: "sim-1-symbolic"}}},
		{Kind: compose.RunNewline, Text: "\n"},
		{Kind: compose.RunText, Text: "10086", Attrs: compose.Attrs{Size: 14, Color: white}},
	}}
	assert.Equal(t,
		`<span font_desc="24px" foreground="#ffffff">Alice</span>`+"\n"+`<span font_desc="14px" foreground="#ffffff">10086</span>`,
		Renderer{}.Markup(label))
}

func TestBadgeCSS(t *testing.T) {
	run := compose.Run{
		Kind: compose.RunBadge,
		Text: "Web",
		Attrs: compose.Attrs{
			Size:       10,
			Color:      white,
			Background: color.NRGBA{G: 0xff, A: 0xff},
			PaddingH:   4,
			PaddingV:   1,
			Radius:     3,
			MarginLeft: 6,
		},
	}
	want := `.badge-1 {
	background-color: #00ff00;
	color: #ffffff;
	border-radius: 3px;
	padding: 1px 4px;
	margin-left: 6px;
	margin-top: 0px;
	font-size: 10px;
}
`
	assert.Equal(t, want, Renderer{}.BadgeCSS("badge-1", run))
}

func TestCSSColor(t *testing.T) {
	assert.Equal(t, "#00ff00", CSSColor(color.NRGBA{G: 0xff, A: 0xff}))
	assert.Equal(t, "rgba(255, 0, 0, 0.00)", CSSColor(color.NRGBA{R: 0xff}))
	assert.Equal(t, "#ff0000", Hex(color.NRGBA{R: 0xff}))
}
