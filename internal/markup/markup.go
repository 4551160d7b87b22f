// Package markup translates composed runs into Pango markup and CSS.
package markup

import (
	"fmt"
	"html"
	"image/color"
	"strings"

	"github.com/getseabird/callerinfo/internal/compose"
	"github.com/getseabird/callerinfo/internal/metrics"
	"github.com/lucasb-eyer/go-colorful"
)

type Renderer struct {
	// Family is the font family; empty uses the theme font.
	Family string
}

// FontDesc returns a Pango font description string with an absolute pixel
// size.
func (r Renderer) FontDesc(size int, typeface metrics.Typeface) string {
	var parts []string
	if r.Family != "" {
		parts = append(parts, r.Family)
	}
	if typeface == metrics.Medium {
		parts = append(parts, "Medium")
	}
	parts = append(parts, fmt.Sprintf("%dpx", size))
	return strings.Join(parts, " ")
}

// Span renders a text or badge run as a single span. Glyph runs have no
// markup and newlines are passed through.
func (r Renderer) Span(run compose.Run) string {
	switch run.Kind {
	case compose.RunNewline:
		return "\n"
	case compose.RunGlyph:
		return ""
	}
	if run.Text == "" {
		return ""
	}
	attrs := []string{
		fmt.Sprintf(`font_desc="%s"`, html.EscapeString(r.FontDesc(run.Attrs.Size, run.Attrs.Typeface))),
		fmt.Sprintf(`foreground="%s"`, Hex(run.Attrs.Color)),
	}
	if a := run.Attrs.Color.A; a != 0xff {
		// Pango rejects 0%
		attrs = append(attrs, fmt.Sprintf(`fgalpha="%d%%"`, max(1, int(a)*100/0xff)))
	}
	return fmt.Sprintf("<span %s>%s</span>", strings.Join(attrs, " "), html.EscapeString(run.Text))
}

// Markup renders every run of a label in order.
func (r Renderer) Markup(label compose.Label) string {
	var sb strings.Builder
	for _, run := range label.Runs {
		sb.WriteString(r.Span(run))
	}
	return sb.String()
}

// BadgeCSS returns a rule drawing a badge run as a rounded box on the
// widget carrying class.
func (r Renderer) BadgeCSS(class string, run compose.Run) string {
	a := run.Attrs
	var sb strings.Builder
	fmt.Fprintf(&sb, ".%s {\n", class)
	fmt.Fprintf(&sb, "\tbackground-color: %s;\n", CSSColor(a.Background))
	fmt.Fprintf(&sb, "\tcolor: %s;\n", CSSColor(a.Color))
	fmt.Fprintf(&sb, "\tborder-radius: %dpx;\n", a.Radius)
	fmt.Fprintf(&sb, "\tpadding: %dpx %dpx;\n", a.PaddingV, a.PaddingH)
	fmt.Fprintf(&sb, "\tmargin-left: %dpx;\n", a.MarginLeft)
	fmt.Fprintf(&sb, "\tmargin-top: %dpx;\n", a.MarginTop)
	fmt.Fprintf(&sb, "\tfont-size: %dpx;\n", a.Size)
	if r.Family != "" {
		fmt.Fprintf(&sb, "\tfont-family: %q;\n", r.Family)
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Hex formats c as #rrggbb, ignoring alpha.
func Hex(c color.NRGBA) string {
	c.A = 0xff
	col, _ := colorful.MakeColor(c)
	return col.Hex()
}

func CSSColor(c color.NRGBA) string {
	if c.A == 0xff {
		return Hex(c)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, float64(c.A)/0xff)
}
