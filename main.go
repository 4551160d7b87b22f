package main

import (
	"flag"

	"github.com/getseabird/callerinfo/internal/ui"
	"k8s.io/klog/v2"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(1).Infof("callerinfo %s (%s, %s)", version, commit, date)

	app, err := ui.NewApplication(version)
	if err != nil {
		klog.Fatal(err)
	}
	app.Run(flag.Args())
}
