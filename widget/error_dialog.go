package widget

import (
	"strings"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// ShowErrorDialog lists joined errors one per line.
func ShowErrorDialog(parent *gtk.Window, title string, err error) *adw.MessageDialog {
	body := err.Error()
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, err := range joined.Unwrap() {
			lines = append(lines, err.Error())
		}
		body = strings.Join(lines, "\n")
	}
	dialog := adw.NewMessageDialog(parent, title, body)
	dialog.AddResponse("ok", "Ok")
	dialog.Show()
	return dialog
}
