package compose

import "fmt"

// NoSlot is the slot id of a call without SIM slot information.
const NoSlot = -1

// Separator sits between the number and its label or location on the
// second line.
const Separator = "  "

// Info is what is known about the other party of a call. Empty strings are
// absent values.
type Info struct {
	Name     string
	Number   string
	Label    string
	Location string
	// Status replaces the whole second line when set, e.g. the dialing
	// state of a video call.
	Status string
	SlotID int
}

// FirstLine returns the name, or the number when there is no name.
func (i Info) FirstLine() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Number
}

// SecondLine returns the status override, or the number followed by the
// label (preferred) or location. The number is left out when it is
// already on the first line.
func (i Info) SecondLine() string {
	if i.Status != "" {
		return i.Status
	}
	detail := i.Label
	if detail == "" {
		detail = i.Location
	}
	if i.Name == "" || i.Number == "" {
		return detail
	}
	if detail == "" {
		return i.Number
	}
	return i.Number + Separator + detail
}

type CallKind int

const (
	Regular CallKind = iota
	Callback
	WebCall
)

func (k CallKind) String() string {
	switch k {
	case Callback:
		return "callback"
	case WebCall:
		return "web"
	default:
		return "regular"
	}
}

func ParseCallKind(s string) (CallKind, error) {
	switch s {
	case "", "regular":
		return Regular, nil
	case "callback":
		return Callback, nil
	case "web", "webcall":
		return WebCall, nil
	}
	return Regular, fmt.Errorf("unknown call kind %q", s)
}

// BadgeResolver maps a call kind to the text of the first line badge.
type BadgeResolver interface {
	BadgeText(kind CallKind) (string, bool)
}

type BadgeTexts struct {
	Callback string `json:"callback" yaml:"callback"`
	WebCall  string `json:"webCall" yaml:"webCall"`
}

func (b BadgeTexts) BadgeText(kind CallKind) (string, bool) {
	var text string
	switch kind {
	case Callback:
		text = b.Callback
	case WebCall:
		text = b.WebCall
	}
	return text, text != ""
}
