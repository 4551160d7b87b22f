package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/getseabird/callerinfo/internal/compose"
	"github.com/getseabird/callerinfo/internal/icon"
	"github.com/getseabird/callerinfo/internal/markup"
	"github.com/getseabird/callerinfo/internal/metrics"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v2"
)

// DefaultStartPadding is the space the caller view leaves before the text.
const DefaultStartPadding = 12

const (
	ColorSchemeDefault = 0
	ColorSchemeLight   = 1
	ColorSchemeDark    = 4
)

// Colors holds the label colors as #rrggbb strings.
type Colors struct {
	Highlight       string `json:"highlight" yaml:"highlight"`
	Normal          string `json:"normal" yaml:"normal"`
	BadgeColor      string `json:"badgeColor" yaml:"badgeColor"`
	BadgeBackground string `json:"badgeBackground" yaml:"badgeBackground"`
}

type Preferences struct {
	ColorScheme int    `json:"colorScheme" yaml:"colorScheme"`
	Colors      Colors `json:"colors" yaml:"colors"`
	// Dimensions override metrics dimension tokens, in pixels.
	Dimensions map[string]int `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	// SlotIndicator enables the SIM slot glyph. Turn it off on single SIM
	// devices.
	SlotIndicator   bool               `json:"slotIndicator" yaml:"slotIndicator"`
	SlotIcons       []string           `json:"slotIcons" yaml:"slotIcons"`
	SlotIconSize    int                `json:"slotIconSize" yaml:"slotIconSize"`
	Badges          compose.BadgeTexts `json:"badges" yaml:"badges"`
	StartPadding    int                `json:"startPadding" yaml:"startPadding"`
	MaxContentWidth int                `json:"maxContentWidth" yaml:"maxContentWidth"`
	Family          string             `json:"family,omitempty" yaml:"family,omitempty"`

	// file is where the preferences were read from or last written to.
	file string
}

func Dir() (string, error) {
	cd, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return path.Join(cd, "callerinfo"), nil
}

func Default() Preferences {
	p := Preferences{SlotIndicator: true, StartPadding: DefaultStartPadding}
	p.Defaults()
	return p
}

// Load reads prefs.yaml or prefs.json from the user config directory. A
// missing file yields the defaults.
func Load() (*Preferences, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"prefs.yaml", "prefs.yml", "prefs.json"} {
		file := path.Join(dir, name)
		if _, err := os.Stat(file); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
			continue
		}
		return LoadFile(file)
	}
	prefs := Default()
	return &prefs, nil
}

// LoadFile decodes a preferences file, as YAML when the extension says so
// and as JSON otherwise. Fields the file leaves out keep their defaults.
func LoadFile(file string) (*Preferences, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	prefs := Default()
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &prefs)
	default:
		err = json.Unmarshal(data, &prefs)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", file, err)
	}
	prefs.Defaults()
	prefs.file = file
	return &prefs, nil
}

// Defaults fills zero values.
func (p *Preferences) Defaults() {
	def := []struct {
		field *string
		value color.NRGBA
	}{
		{&p.Colors.Highlight, compose.DefaultStyle.Highlight},
		{&p.Colors.Normal, compose.DefaultStyle.Normal},
		{&p.Colors.BadgeColor, compose.DefaultStyle.BadgeColor},
		{&p.Colors.BadgeBackground, compose.DefaultStyle.BadgeBackground},
	}
	for _, d := range def {
		if *d.field == "" {
			*d.field = markup.Hex(d.value)
		}
	}
	if len(p.SlotIcons) == 0 {
		p.SlotIcons = slices.Clone(icon.DefaultSlotIcons)
	}
	if p.SlotIconSize == 0 {
		p.SlotIconSize = icon.DefaultSize
	}
	if p.Badges.Callback == "" {
		p.Badges.Callback = "Callback"
	}
	if p.Badges.WebCall == "" {
		p.Badges.WebCall = "Web"
	}
}

// Validate resets every invalid value to its default and reports all of
// them at once.
func (p *Preferences) Validate() error {
	var errs []error

	switch p.ColorScheme {
	case ColorSchemeDefault, ColorSchemeLight, ColorSchemeDark:
	default:
		errs = append(errs, fmt.Errorf("unknown color scheme %d", p.ColorScheme))
		p.ColorScheme = ColorSchemeDefault
	}

	for _, c := range []struct {
		name  string
		field *string
	}{
		{"highlight", &p.Colors.Highlight},
		{"normal", &p.Colors.Normal},
		{"badgeColor", &p.Colors.BadgeColor},
		{"badgeBackground", &p.Colors.BadgeBackground},
	} {
		if _, err := colorful.Hex(*c.field); err != nil {
			errs = append(errs, fmt.Errorf("color %s: %w", c.name, err))
			*c.field = ""
		}
	}

	keys := maps.Keys(p.Dimensions)
	slices.Sort(keys)
	for _, token := range keys {
		value := p.Dimensions[token]
		switch {
		case !metrics.Known(metrics.Dimen(token)):
			errs = append(errs, fmt.Errorf("unknown dimension %q", token))
			delete(p.Dimensions, token)
		case value < 0:
			errs = append(errs, fmt.Errorf("dimension %s must not be negative: %d", token, value))
			delete(p.Dimensions, token)
		case value == 0 && sized(metrics.Dimen(token)):
			errs = append(errs, fmt.Errorf("dimension %s must be positive", token))
			delete(p.Dimensions, token)
		}
	}

	if p.SlotIconSize < 0 {
		errs = append(errs, fmt.Errorf("slot icon size must not be negative: %d", p.SlotIconSize))
		p.SlotIconSize = 0
	}
	if p.StartPadding < 0 {
		errs = append(errs, fmt.Errorf("start padding must not be negative: %d", p.StartPadding))
		p.StartPadding = 0
	}

	p.Defaults()
	return errors.Join(errs...)
}

func sized(token metrics.Dimen) bool {
	switch token {
	case metrics.FirstLineSize, metrics.SecondLineSize, metrics.BadgeTextSize:
		return true
	}
	return false
}

// Style parses the configured colors. Unparseable colors fall back to the
// default style.
func (p *Preferences) Style() compose.Style {
	return compose.Style{
		Highlight:       parse(p.Colors.Highlight, compose.DefaultStyle.Highlight),
		Normal:          parse(p.Colors.Normal, compose.DefaultStyle.Normal),
		BadgeColor:      parse(p.Colors.BadgeColor, compose.DefaultStyle.BadgeColor),
		BadgeBackground: parse(p.Colors.BadgeBackground, compose.DefaultStyle.BadgeBackground),
	}
}

func parse(hex string, fallback color.NRGBA) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Dimens returns the configured dimensions merged over the defaults.
// Unknown tokens are dropped.
func (p *Preferences) Dimens() metrics.Dimens {
	configured := metrics.Dimens{}
	for token, value := range p.Dimensions {
		if metrics.Known(metrics.Dimen(token)) {
			configured[metrics.Dimen(token)] = value
		}
	}
	return metrics.DefaultDimens.Merge(configured)
}

func (p *Preferences) SlotResolver() icon.SlotResolver {
	return icon.SlotResolver{
		Enabled: p.SlotIndicator,
		Icons:   slices.Clone(p.SlotIcons),
		Size:    p.SlotIconSize,
	}
}

// Save writes back to the file the preferences were loaded from, or to
// prefs.json in the user config directory.
func (p *Preferences) Save() error {
	if p.file != "" {
		return p.SaveFile(p.file)
	}
	dir, err := Dir()
	if err != nil {
		return err
	}
	return p.SaveFile(path.Join(dir, "prefs.json"))
}

func (p *Preferences) SaveFile(file string) error {
	var (
		data []byte
		err  error
	)
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(p)
	default:
		data, err = json.MarshalIndent(p, "", "  ")
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(path.Dir(file), os.ModePerm); err != nil {
		return err
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return err
	}
	p.file = file
	return nil
}
