package ui

import "github.com/diamondburned/gotk4/pkg/glib/v2"

// idle runs fn on the GTK main loop.
func idle(fn func()) {
	glib.IdleAdd(fn)
}
