// Package fit shortens a line of text until it fits a pixel budget.
package fit

import (
	"strings"
	"unicode"

	"github.com/getseabird/callerinfo/internal/metrics"
	"github.com/go-logr/logr"
	"github.com/rivo/uniseg"
)

const (
	Ellipsis = "..."
	// Floor is the character count at which shrinking stops, even when
	// the remainder still overflows.
	Floor = 2
)

type Engine struct {
	Measurer metrics.Measurer
	Log      logr.Logger
}

func New(m metrics.Measurer, log logr.Logger) *Engine {
	return &Engine{Measurer: m, Log: log}
}

// Text is Fit without diagnostics.
func Text(m metrics.Measurer, text string, size int, typeface metrics.Typeface, reserved, available int) string {
	return (&Engine{Measurer: m, Log: logr.Discard()}).Fit(text, size, typeface, reserved, available)
}

// Fit returns text, or a tail-truncated copy of it suffixed with Ellipsis,
// such that its width plus reserved is below available. A non-positive
// available means the bound is not known yet and text is returned as is.
func (e *Engine) Fit(text string, size int, typeface metrics.Typeface, reserved, available int) string {
	if available <= 0 || text == "" {
		return text
	}

	ret := text
	width := e.Measurer.Measure(ret, size, typeface)
	for !fits(width, reserved, available) {
		if uniseg.GraphemeClusterCount(ret) <= Floor {
			e.Log.V(4).Info("shrink floor reached", "text", ret, "width", width, "reserved", reserved, "available", available)
			break
		}
		ret = strings.TrimRightFunc(dropLast(ret), unicode.IsSpace)
		candidate := ret + Ellipsis
		prev := width
		width = e.Measurer.Measure(candidate, size, typeface)
		if fits(width, reserved, available) {
			e.Log.V(4).Info("fitted", "text", candidate, "width", width, "total", width+reserved)
			return candidate
		}
		e.Log.V(4).Info("overflow", "text", ret, "width", prev, "next", width, "reserved", reserved, "available", available)
	}
	return ret
}

func fits(width, reserved, available int) bool {
	return width+reserved < available
}

// dropLast removes the last user-perceived character of s.
func dropLast(s string) string {
	var last int
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = len(s) - len(rest) - len(cluster)
	}
	return s[:last]
}
