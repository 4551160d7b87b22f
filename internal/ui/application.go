package ui

import (
	"context"
	"os"
	"runtime"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/callerinfo/internal/behavior"
	"github.com/getseabird/callerinfo/internal/prefs"
	"github.com/getseabird/callerinfo/internal/style"
)

const ApplicationName = "Caller Info"

type Application struct {
	*adw.Application
	version string
}

func NewApplication(version string) (*Application, error) {
	gtk.Init()

	switch runtime.GOOS {
	case "windows":
		os.Setenv("GTK_CSD", "0")
	case "darwin":
		gtk.SettingsGetDefault().SetObjectProperty("gtk-decoration-layout", "close,minimize,maximize")
	}

	ctx := context.Background()

	b, err := behavior.NewBehavior()
	if err != nil {
		return nil, err
	}

	adw.StyleManagerGetDefault().SetColorScheme(adw.ColorScheme(b.Preferences.Value().ColorScheme))
	b.OnChange(ctx, idle, func(p prefs.Preferences) {
		adw.StyleManagerGetDefault().SetColorScheme(adw.ColorScheme(p.ColorScheme))
	})

	style.Load()

	a := Application{
		Application: adw.NewApplication("dev.skynomads.CallerInfo", gio.ApplicationFlagsNone),
		version:     version,
	}

	a.ConnectActivate(func() {
		NewCallerWindow(ctx, &a.Application.Application, b).Present()
	})

	return &a, nil
}

// Run blocks until the application quits. args excludes flags main has
// already parsed.
func (a *Application) Run(args []string) {
	if code := a.Application.Run(append([]string{os.Args[0]}, args...)); code > 0 {
		os.Exit(code)
	}
}
