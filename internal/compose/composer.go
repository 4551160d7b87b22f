// Package compose builds the two line caller label and rebuilds it only when
// something it shows has changed.
package compose

import (
	"image/color"

	"github.com/getseabird/callerinfo/internal/fit"
	"github.com/getseabird/callerinfo/internal/metrics"
	"github.com/go-logr/logr"
	"k8s.io/klog/v2"
)

type Config struct {
	Metrics metrics.Provider
	Sink    Sink
	Glyphs  GlyphResolver
	Badges  BadgeResolver
	// Style defaults to DefaultStyle.
	Style Style
	// Log defaults to the klog logger.
	Log logr.Logger
}

// Composer owns the caller info of one label. It is not safe for
// concurrent use; call it from the thread that owns the sink.
type Composer struct {
	metrics metrics.Provider
	sink    Sink
	glyphs  GlyphResolver
	badges  BadgeResolver
	fit     *fit.Engine
	log     logr.Logger

	info            Info
	style           Style
	badgeText       string
	glyph           Glyph
	highlight       bool
	firstLineSize   int
	secondLineSize  int
	maxContentWidth int
	startPadding    int

	label    Label
	shown    bool
	rebuilds int
}

func New(cfg Config) *Composer {
	log := cfg.Log
	if log.GetSink() == nil {
		log = klog.Background()
	}
	log = log.WithName("compose")

	c := &Composer{
		metrics:   cfg.Metrics,
		sink:      cfg.Sink,
		glyphs:    cfg.Glyphs,
		badges:    cfg.Badges,
		log:       log,
		info:      Info{SlotID: NoSlot},
		style:     cfg.Style,
		highlight: true,
	}
	if c.sink == nil {
		c.sink = discard{}
	}
	if c.metrics == nil {
		c.metrics = unmeasured{}
	}
	if c.style == (Style{}) {
		c.style = DefaultStyle
	}
	c.fit = fit.New(c.metrics, log.WithName("fit"))
	c.firstLineSize, c.secondLineSize = c.defaultTextSizes()
	return c
}

func (c *Composer) Info() Info { return c.info }
func (c *Composer) Style() Style { return c.style }
func (c *Composer) Label() Label { return c.label }
func (c *Composer) BadgeText() string { return c.badgeText }
func (c *Composer) Glyph() Glyph { return c.glyph }
func (c *Composer) Highlighted() bool { return c.highlight }
func (c *Composer) MaxContentWidth() int { return c.maxContentWidth }
func (c *Composer) FirstLineSize() int { return c.firstLineSize }
func (c *Composer) SecondLineSize() int { return c.secondLineSize }

// Rebuilds returns how many times the label has been recomposed.
func (c *Composer) Rebuilds() int { return c.rebuilds }

func (c *Composer) SetName(name string) { set(c, &c.info.Name, name, "name") }
func (c *Composer) SetNumber(number string) { set(c, &c.info.Number, number, "number") }
func (c *Composer) SetLabel(label string) { set(c, &c.info.Label, label, "label") }
func (c *Composer) SetLocation(location string) { set(c, &c.info.Location, location, "location") }
func (c *Composer) SetStatus(status string) { set(c, &c.info.Status, status, "status") }
func (c *Composer) SetBadgeText(text string) { set(c, &c.badgeText, text, "badge") }
func (c *Composer) SetHighlight(highlight bool) { set(c, &c.highlight, highlight, "highlight") }

func (c *Composer) SetFirstLineSize(size int) { set(c, &c.firstLineSize, size, "firstLineSize") }
func (c *Composer) SetSecondLineSize(size int) { set(c, &c.secondLineSize, size, "secondLineSize") }

// SetMaxContentWidth sets the width both lines must fit in. Until it is
// positive nothing is truncated.
func (c *Composer) SetMaxContentWidth(width int) {
	set(c, &c.maxContentWidth, width, "maxContentWidth")
}

func (c *Composer) SetStartPadding(padding int) {
	set(c, &c.startPadding, padding, "startPadding")
}

func (c *Composer) SetStyle(style Style) { set(c, &c.style, style, "style") }

func (c *Composer) SetBadgeColor(col color.NRGBA) {
	style := c.style
	style.BadgeColor = col
	c.SetStyle(style)
}

func (c *Composer) SetBadgeBackground(col color.NRGBA) {
	style := c.style
	style.BadgeBackground = col
	c.SetStyle(style)
}

// SetCallKind shows the badge for kind, or no badge if the resolver has
// none.
func (c *Composer) SetCallKind(kind CallKind) {
	c.SetBadgeText(c.resolveBadge(kind))
}

// SetCallKindDeferred stores the badge for kind without rebuilding. Use it
// right before SetInfo.
func (c *Composer) SetCallKindDeferred(kind CallKind) {
	c.badgeText = c.resolveBadge(kind)
}

// SetSlot shows the glyph of the SIM slot. Nothing is resolved when the
// slot id is unchanged.
func (c *Composer) SetSlot(slotID int) {
	if slotID == c.info.SlotID {
		return
	}
	if c.updateGlyph(slotID) {
		c.rebuild()
	}
}

// SetInfo replaces all caller fields and rebuilds at most once.
func (c *Composer) SetInfo(info Info) {
	if c.updateInfo(info) {
		c.rebuild()
	}
}

// SetInfoKind is SetInfo plus the badge of kind, still with at most one
// rebuild.
func (c *Composer) SetInfoKind(info Info, kind CallKind) {
	changed := c.updateInfo(info)
	if badge := c.resolveBadge(kind); badge != c.badgeText {
		c.badgeText = badge
		changed = true
	}
	if changed {
		c.rebuild()
	}
}

func (c *Composer) updateInfo(info Info) bool {
	var changed bool
	for _, f := range []struct {
		field *string
		value string
	}{
		{&c.info.Name, info.Name},
		{&c.info.Number, info.Number},
		{&c.info.Label, info.Label},
		{&c.info.Location, info.Location},
		{&c.info.Status, info.Status},
	} {
		if *f.field != f.value {
			*f.field = f.value
			changed = true
		}
	}
	if info.SlotID != c.info.SlotID && c.updateGlyph(info.SlotID) {
		changed = true
	}
	if changed {
		c.log.V(2).Info("updated", "info", c.info)
	}
	return changed
}

// ResetTextSizes restores the line sizes configured in the metrics
// provider.
func (c *Composer) ResetTextSizes() {
	first, second := c.defaultTextSizes()
	if first == c.firstLineSize && second == c.secondLineSize {
		return
	}
	c.firstLineSize, c.secondLineSize = first, second
	c.rebuild()
}

// HideText clears the sink but keeps every field, so the next change shows
// the label again.
func (c *Composer) HideText() {
	if c.shown {
		c.sink.Clear()
		c.shown = false
	}
}

// Release forgets the caller and clears the sink without rebuilding.
func (c *Composer) Release() {
	c.sink.Clear()
	c.shown = false
	c.info = Info{SlotID: NoSlot}
	c.badgeText = ""
	c.glyph = Glyph{}
	c.label = Label{}
}

func set[T comparable](c *Composer, field *T, value T, name string) {
	if *field == value {
		return
	}
	*field = value
	c.log.V(2).Info("updated", "field", name, "value", value)
	c.rebuild()
}

func (c *Composer) defaultTextSizes() (int, int) {
	return c.metrics.Dimension(metrics.FirstLineSize), c.metrics.Dimension(metrics.SecondLineSize)
}

func (c *Composer) resolveBadge(kind CallKind) string {
	if c.badges == nil {
		return ""
	}
	text, ok := c.badges.BadgeText(kind)
	if !ok {
		return ""
	}
	return text
}

// updateGlyph stores the slot id and reports whether the resolved glyph
// differs from the current one.
func (c *Composer) updateGlyph(slotID int) bool {
	c.info.SlotID = slotID
	var glyph Glyph
	if c.glyphs != nil {
		if g, ok := c.glyphs.Glyph(slotID); ok {
			glyph = g
		}
	}
	if glyph == c.glyph {
		return false
	}
	c.glyph = glyph
	return true
}

func (c *Composer) rebuild() {
	c.rebuilds++

	first := c.info.FirstLine()
	if first == "" {
		c.label = Label{}
		if c.shown {
			c.sink.Clear()
			c.shown = false
		}
		return
	}
	second := c.info.SecondLine()
	available := c.maxContentWidth - c.startPadding

	badge := c.badgeAttrs()
	glyph := c.glyphAttrs()

	firstColor := c.style.Normal
	if c.highlight {
		firstColor = c.style.Highlight
	}
	runs := []Run{{
		Kind: RunText,
		Text: c.fit.Fit(first, c.firstLineSize, metrics.Medium, badge.Width+glyph.Width, available),
		Attrs: Attrs{
			Size:     c.firstLineSize,
			Typeface: metrics.Medium,
			Color:    firstColor,
		},
	}}
	if c.badgeText != "" {
		runs = append(runs, Run{Kind: RunBadge, Text: c.badgeText, Attrs: badge})
	}
	if !c.glyph.IsZero() {
		runs = append(runs, Run{Kind: RunGlyph, Attrs: glyph})
	}
	if second != "" {
		runs = append(runs,
			Run{Kind: RunNewline, Text: "\n"},
			Run{
				Kind: RunText,
				Text: c.fit.Fit(second, c.secondLineSize, metrics.Default, 0, available),
				Attrs: Attrs{
					Size:     c.secondLineSize,
					Typeface: metrics.Default,
					Color:    c.style.Normal,
				},
			})
	}

	c.label = Label{Runs: runs}
	c.log.V(3).Info("rebuilt", "first", c.label.Line1(), "second", c.label.Line2(), "reserved", badge.Width+glyph.Width, "available", available)
	c.sink.Present(c.label)
	c.shown = true
}

// badgeAttrs is left margin + horizontal padding + text width + padding.
func (c *Composer) badgeAttrs() Attrs {
	if c.badgeText == "" {
		return Attrs{}
	}
	size := c.dimension(metrics.BadgeTextSize)
	padding := c.dimension(metrics.BadgePaddingH)
	margin := c.dimension(metrics.DecorationMarginLeft)
	return Attrs{
		Size:       size,
		Typeface:   metrics.Default,
		Color:      c.style.BadgeColor,
		Background: c.style.BadgeBackground,
		PaddingH:   padding,
		PaddingV:   c.dimension(metrics.BadgePaddingV),
		Radius:     c.dimension(metrics.BadgeRadius),
		MarginLeft: margin,
		MarginTop:  c.dimension(metrics.BadgeMarginTop),
		Width:      margin + c.metrics.Measure(c.badgeText, size, metrics.Default) + 2*padding,
	}
}

func (c *Composer) glyphAttrs() Attrs {
	if c.glyph.IsZero() {
		return Attrs{}
	}
	margin := c.dimension(metrics.DecorationMarginLeft)
	return Attrs{
		MarginLeft: margin,
		MarginTop:  c.dimension(metrics.SlotMarginTop),
		Width:      c.glyph.Width + margin,
		Glyph:      c.glyph,
	}
}

func (c *Composer) dimension(token metrics.Dimen) int {
	return c.metrics.Dimension(token)
}

// unmeasured resolves dimensions but treats all text as zero width.
type unmeasured struct {
	metrics.Dimens
}

func (unmeasured) Measure(string, int, metrics.Typeface) int { return 0 }
