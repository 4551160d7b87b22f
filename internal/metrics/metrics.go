// Package metrics measures text in pixels and resolves dimension tokens.
package metrics

type Typeface int

const (
	Default Typeface = iota
	Medium
)

func (t Typeface) String() string {
	switch t {
	case Medium:
		return "Medium"
	default:
		return "Regular"
	}
}

// Weight returns the CSS/Pango numeric weight of the typeface.
func (t Typeface) Weight() int {
	if t == Medium {
		return 500
	}
	return 400
}

type Measurer interface {
	// Measure returns the advance width of text in pixels.
	Measure(text string, size int, typeface Typeface) int
}

type Provider interface {
	Measurer
	Dimension(token Dimen) int
}
