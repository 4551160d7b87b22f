package compose

import (
	"image/color"
	"strings"

	"github.com/getseabird/callerinfo/internal/metrics"
)

type RunKind int

const (
	RunText RunKind = iota
	RunBadge
	RunGlyph
	RunNewline
)

// Attrs is the complete style of one run.
type Attrs struct {
	Size       int
	Typeface   metrics.Typeface
	Color      color.NRGBA
	Background color.NRGBA
	PaddingH   int
	PaddingV   int
	Radius     int
	MarginLeft int
	MarginTop  int
	// Width is the horizontal space a decoration takes, margins included.
	Width int
	Glyph Glyph
}

type Run struct {
	Kind  RunKind
	Text  string
	Attrs Attrs
}

// Label is a composed caller label: the first line text run, an optional
// badge run, an optional glyph run and, when there is a second line, a
// newline run followed by the second line text run.
type Label struct {
	Runs []Run
}

func (l Label) Empty() bool {
	return len(l.Runs) == 0
}

func (l Label) Line1() string {
	for _, run := range l.Runs {
		switch run.Kind {
		case RunText:
			return run.Text
		case RunNewline:
			return ""
		}
	}
	return ""
}

func (l Label) Line2() string {
	var second bool
	for _, run := range l.Runs {
		switch {
		case run.Kind == RunNewline:
			second = true
		case second && run.Kind == RunText:
			return run.Text
		}
	}
	return ""
}

func (l Label) Badge() (Run, bool) {
	return l.find(RunBadge)
}

func (l Label) Glyph() (Run, bool) {
	return l.find(RunGlyph)
}

func (l Label) find(kind RunKind) (Run, bool) {
	for _, run := range l.Runs {
		if run.Kind == kind {
			return run, true
		}
	}
	return Run{}, false
}

// String renders the label as plain text, with the badge in brackets and
// the glyph as its icon name in angle brackets.
func (l Label) String() string {
	var sb strings.Builder
	for _, run := range l.Runs {
		switch run.Kind {
		case RunText, RunNewline:
			sb.WriteString(run.Text)
		case RunBadge:
			sb.WriteString(" [" + run.Text + "]")
		case RunGlyph:
			sb.WriteString(" <" + run.Attrs.Glyph.Icon + ">")
		}
	}
	return sb.String()
}
