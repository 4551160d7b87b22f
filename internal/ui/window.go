package ui

import (
	"context"
	"errors"
	"time"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/callerinfo/internal/behavior"
	"github.com/getseabird/callerinfo/internal/compose"
	"github.com/getseabird/callerinfo/internal/feed"
	"github.com/getseabird/callerinfo/internal/markup"
	"github.com/getseabird/callerinfo/internal/prefs"
	"github.com/getseabird/callerinfo/internal/pubsub"
	"github.com/getseabird/callerinfo/widget"
	"github.com/zmwangx/debounce"
	"k8s.io/klog/v2"
)

// demo caller used when the form is empty
var alice = compose.Info{Name: "Alice Liddell", Number: "+86 10086", Location: "Beijing", SlotID: 0}

type CallerWindow struct {
	*adw.ApplicationWindow
	ctx      context.Context
	behavior *behavior.Behavior
	composer *compose.Composer
	view     *widget.CallerInfoView
	calls    pubsub.Topic[feed.Event]
	hangup   context.CancelFunc
	kind     compose.CallKind

	name     *adw.EntryRow
	number   *adw.EntryRow
	label    *adw.EntryRow
	location *adw.EntryRow
	status   *adw.EntryRow
	slot     *adw.ComboRow
}

func NewCallerWindow(ctx context.Context, app *gtk.Application, b *behavior.Behavior) *CallerWindow {
	ctx, cancel := context.WithCancel(ctx)
	p := b.Preferences.Value()

	w := CallerWindow{
		ApplicationWindow: adw.NewApplicationWindow(app),
		ctx:               ctx,
		behavior:          b,
		calls:             pubsub.NewTopic[feed.Event](idle),
	}
	w.SetTitle(ApplicationName)
	w.SetDefaultSize(480, 760)

	w.view = widget.NewCallerInfoView(markup.Renderer{Family: p.Family})
	w.composer = compose.New(compose.Config{
		Metrics: widget.NewPangoMetrics(w.view, p.Family, p.Dimens()),
		Sink:    w.view,
		Glyphs:  p.SlotResolver(),
		Badges:  p.Badges,
		Style:   p.Style(),
	})
	w.composer.SetMaxContentWidth(p.MaxContentWidth)
	b.Bind(ctx, w.composer, idle, w.view)

	w.calls.Sub(ctx, func(ev feed.Event) {
		feed.Apply(w.composer, ev)
		w.syncForm(ev)
	})

	content := gtk.NewBox(gtk.OrientationVertical, 0)
	header := adw.NewHeaderBar()
	call := gtk.NewButtonFromIconName("call-start-symbolic")
	call.SetTooltipText("Simulate call")
	call.ConnectClicked(w.simulateCall)
	header.PackStart(call)
	hide := gtk.NewButtonFromIconName("view-conceal-symbolic")
	hide.SetTooltipText("Hide text")
	hide.ConnectClicked(w.composer.HideText)
	header.PackEnd(hide)
	content.Append(header)

	preview := gtk.NewBox(gtk.OrientationVertical, 0)
	preview.AddCSSClass("card")
	preview.SetMarginTop(12)
	preview.SetMarginBottom(12)
	preview.SetMarginStart(12)
	preview.SetMarginEnd(12)
	preview.SetSizeRequest(-1, 80)
	preview.Append(w.view)
	content.Append(preview)

	page := adw.NewPreferencesPage()
	page.AddCSSClass("caller-controls")
	page.SetVExpand(true)
	page.Add(w.createCallerGroup())
	page.Add(w.createLayoutGroup(p))
	page.Add(w.createAppearanceGroup(p))
	content.Append(page)

	w.SetContent(content)

	w.ConnectCloseRequest(func() bool {
		cancel()
		w.composer.Release()
		w.view.Destroy()
		return false
	})

	return &w
}

func (w *CallerWindow) createCallerGroup() *adw.PreferencesGroup {
	group := adw.NewPreferencesGroup()
	group.SetTitle("Caller")

	entry := func(title string, set func(string)) *adw.EntryRow {
		row := adw.NewEntryRow()
		row.SetTitle(title)
		row.ConnectChanged(func() {
			set(row.Text())
		})
		group.Add(row)
		return row
	}
	w.name = entry("Name", w.composer.SetName)
	w.number = entry("Number", w.composer.SetNumber)
	w.label = entry("Label", w.composer.SetLabel)
	w.location = entry("Location", w.composer.SetLocation)
	w.status = entry("Status", w.composer.SetStatus)

	w.slot = adw.NewComboRow()
	w.slot.SetTitle("SIM slot")
	w.slot.SetModel(gtk.NewStringList([]string{"None", "SIM 1", "SIM 2"}))
	w.slot.Connect("notify::selected-item", func() {
		w.composer.SetSlot(int(w.slot.Selected()) - 1)
	})
	group.Add(w.slot)

	kind := adw.NewComboRow()
	kind.SetTitle("Call kind")
	kind.SetModel(gtk.NewStringList([]string{"Regular", "Callback", "Web call"}))
	kind.Connect("notify::selected-item", func() {
		w.kind = compose.CallKind(kind.Selected())
		w.composer.SetCallKind(w.kind)
	})
	group.Add(kind)

	highlight := adw.NewSwitchRow()
	highlight.SetTitle("Highlight")
	highlight.SetActive(w.composer.Highlighted())
	highlight.Connect("notify::active", func() {
		w.composer.SetHighlight(highlight.Active())
	})
	group.Add(highlight)

	return group
}

func (w *CallerWindow) createLayoutGroup(p prefs.Preferences) *adw.PreferencesGroup {
	group := adw.NewPreferencesGroup()
	group.SetTitle("Layout")

	scale := func(title string, lower, upper float64, value int) *gtk.Scale {
		row := adw.NewActionRow()
		row.SetTitle(title)
		s := gtk.NewScaleWithRange(gtk.OrientationHorizontal, lower, upper, 1)
		s.SetHExpand(true)
		s.SetDrawValue(true)
		s.SetDigits(0)
		s.SetValue(float64(value))
		row.AddSuffix(s)
		group.Add(row)
		return s
	}

	width := scale("Max content width", 0, 600, w.composer.MaxContentWidth())
	setWidth, _ := debounce.Debounce(func() {
		idle(func() {
			w.composer.SetMaxContentWidth(int(width.Value()))
		})
	}, 50*time.Millisecond, debounce.WithMaxWait(250*time.Millisecond))
	width.ConnectValueChanged(func() { setWidth() })

	padding := scale("Start padding", 0, 96, p.StartPadding)
	setPadding, _ := debounce.Debounce(func() {
		idle(func() {
			w.updatePreferences(func(p *prefs.Preferences) {
				p.StartPadding = int(padding.Value())
			})
		})
	}, 100*time.Millisecond, debounce.WithMaxWait(time.Second))
	padding.ConnectValueChanged(func() { setPadding() })

	first := scale("First line size", 8, 48, w.composer.FirstLineSize())
	first.ConnectValueChanged(func() {
		w.composer.SetFirstLineSize(int(first.Value()))
	})
	second := scale("Second line size", 8, 48, w.composer.SecondLineSize())
	second.ConnectValueChanged(func() {
		w.composer.SetSecondLineSize(int(second.Value()))
	})

	reset := adw.NewActionRow()
	reset.SetTitle("Text sizes")
	button := gtk.NewButtonWithLabel("Reset")
	button.SetVAlign(gtk.AlignCenter)
	button.ConnectClicked(func() {
		w.composer.ResetTextSizes()
		first.SetValue(float64(w.composer.FirstLineSize()))
		second.SetValue(float64(w.composer.SecondLineSize()))
	})
	reset.AddSuffix(button)
	group.Add(reset)

	return group
}

func (w *CallerWindow) createAppearanceGroup(p prefs.Preferences) *adw.PreferencesGroup {
	group := adw.NewPreferencesGroup()
	group.SetTitle("Appearance")

	colorScheme := adw.NewComboRow()
	colorScheme.SetTitle("Color Scheme")
	colorScheme.SetModel(gtk.NewStringList([]string{"Default", "Light", "Dark"}))
	switch p.ColorScheme {
	case prefs.ColorSchemeLight:
		colorScheme.SetSelected(1)
	case prefs.ColorSchemeDark:
		colorScheme.SetSelected(2)
	}
	colorScheme.Connect("notify::selected-item", func() {
		scheme := []int{prefs.ColorSchemeDefault, prefs.ColorSchemeLight, prefs.ColorSchemeDark}[colorScheme.Selected()]
		w.updatePreferences(func(p *prefs.Preferences) {
			p.ColorScheme = scheme
		})
	})
	group.Add(colorScheme)

	for _, c := range []struct {
		title string
		field func(*prefs.Preferences) *string
	}{
		{"Highlight color", func(p *prefs.Preferences) *string { return &p.Colors.Highlight }},
		{"Normal color", func(p *prefs.Preferences) *string { return &p.Colors.Normal }},
		{"Badge color", func(p *prefs.Preferences) *string { return &p.Colors.BadgeColor }},
		{"Badge background", func(p *prefs.Preferences) *string { return &p.Colors.BadgeBackground }},
	} {
		row := adw.NewEntryRow()
		row.SetTitle(c.title)
		row.SetText(*c.field(&p))
		row.SetShowApplyButton(true)
		row.ConnectApply(func() {
			w.updatePreferences(func(p *prefs.Preferences) {
				*c.field(p) = row.Text()
			})
			row.SetText(*c.field(ptr(w.behavior.Preferences.Value())))
		})
		group.Add(row)
	}

	return group
}

func (w *CallerWindow) updatePreferences(f func(*prefs.Preferences)) {
	if err := w.behavior.UpdatePreferences(f); err != nil {
		widget.ShowErrorDialog(&w.ApplicationWindow.ApplicationWindow.Window, "Invalid preferences", err)
	}
}

func (w *CallerWindow) simulateCall() {
	if w.hangup != nil {
		w.hangup()
	}
	ctx, cancel := context.WithCancel(w.ctx)
	w.hangup = cancel

	info := w.composer.Info()
	if info.FirstLine() == "" {
		info = alice
	}
	steps := feed.Script(info, w.kind, time.Second)

	go func() {
		if err := feed.Dial(ctx, w.calls, steps); err != nil && !errors.Is(err, context.Canceled) {
			klog.Errorf("call simulation failed: %v", err)
		}
	}()
}

// syncForm shows an event's values in the form. The composer already holds
// them, so the change handlers are no-ops.
func (w *CallerWindow) syncForm(ev feed.Event) {
	w.name.SetText(ev.Info.Name)
	w.number.SetText(ev.Info.Number)
	w.label.SetText(ev.Info.Label)
	w.location.SetText(ev.Info.Location)
	w.status.SetText(ev.Info.Status)
	w.slot.SetSelected(uint(ev.Info.SlotID + 1))
}

func ptr[T any](v T) *T {
	return &v
}
