package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/getseabird/callerinfo/internal/icon"
)

// Writes symbolic SIM slot icons into a hicolor theme directory so the
// themed names used by the slot resolver resolve, e.g.
// go run ./internal/icon/cmd -dir ~/.local/share/icons/hicolor

const svg = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16">
	<path fill="#2e3436" d="M4 1h6l3 3v10a1 1 0 0 1-1 1H4a1 1 0 0 1-1-1V2a1 1 0 0 1 1-1zm0 1v12h8V4.4L9.6 2z"/>
	<text x="8" y="12" font-family="sans-serif" font-size="7" font-weight="bold" text-anchor="middle" fill="#2e3436">%d</text>
</svg>
`

func main() {
	dir := flag.String("dir", "hicolor", "icon theme directory")
	slots := flag.Int("slots", len(icon.DefaultSlotIcons), "number of SIM slots")
	flag.Parse()

	target := path.Join(*dir, "scalable", "status")
	if err := os.MkdirAll(target, os.ModePerm); err != nil {
		log.Fatal(err)
	}

	for slot := 0; slot < *slots; slot++ {
		name := path.Join(target, icon.SlotName(slot)+".svg")
		if err := os.WriteFile(name, []byte(fmt.Sprintf(svg, slot+1)), 0o644); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", name)
	}
}
