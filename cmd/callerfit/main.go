// Command callerfit composes a caller label without a display and prints
// it, measuring text with the Go fonts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/getseabird/callerinfo/internal/compose"
	"github.com/getseabird/callerinfo/internal/markup"
	"github.com/getseabird/callerinfo/internal/metrics"
	"github.com/getseabird/callerinfo/internal/prefs"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		klog.Error(err)
		klog.Flush()
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var info compose.Info
	fs := flag.NewFlagSet("callerfit", flag.ContinueOnError)
	fs.StringVar(&info.Name, "name", "", "contact name")
	fs.StringVar(&info.Number, "number", "", "phone number")
	fs.StringVar(&info.Label, "label", "", "number label, e.g. Mobile")
	fs.StringVar(&info.Location, "location", "", "geographic location of the number")
	fs.StringVar(&info.Status, "status", "", "status replacing the second line")
	fs.IntVar(&info.SlotID, "slot", compose.NoSlot, "SIM slot, -1 for none")
	kind := fs.String("kind", "regular", "call kind: regular, callback or web")
	width := fs.Int("width", 0, "max content width in pixels, 0 disables truncation")
	padding := fs.Int("padding", -1, "start padding in pixels, -1 uses the preferences")
	highlight := fs.Bool("highlight", true, "draw the first line in the highlight color")
	file := fs.String("prefs", "", "preferences file, defaults to the user config directory")
	pango := fs.Bool("markup", false, "print Pango markup instead of plain text")
	klog.InitFlags(fs)
	fs.SetOutput(out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	callKind, err := compose.ParseCallKind(*kind)
	if err != nil {
		return err
	}

	p, err := loadPreferences(*file)
	if err != nil {
		return err
	}

	face, err := metrics.NewFace(p.Dimens())
	if err != nil {
		return err
	}
	defer face.Close()

	c := compose.New(compose.Config{
		Metrics: face,
		Glyphs:  p.SlotResolver(),
		Badges:  p.Badges,
		Style:   p.Style(),
	})
	c.SetHighlight(*highlight)
	c.SetMaxContentWidth(*width)
	if *padding >= 0 {
		c.SetStartPadding(*padding)
	} else {
		c.SetStartPadding(p.StartPadding)
	}
	c.SetCallKindDeferred(callKind)
	c.SetInfo(info)

	label := c.Label()
	if label.Empty() {
		return fmt.Errorf("nothing to show: name and number are empty")
	}
	if *pango {
		_, err = fmt.Fprintln(out, markup.Renderer{Family: p.Family}.Markup(label))
	} else {
		_, err = fmt.Fprintln(out, label.String())
	}
	return err
}

func loadPreferences(file string) (*prefs.Preferences, error) {
	var (
		p   *prefs.Preferences
		err error
	)
	if file != "" {
		p, err = prefs.LoadFile(file)
	} else {
		p, err = prefs.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		klog.Warningf("invalid preferences: %v", err)
	}
	return p, nil
}
