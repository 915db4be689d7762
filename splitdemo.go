// Demo program for the split panel widget. Each file given on the command
// line becomes a pane.
package main

import (
	"flag"
	"log"

	"github.com/gochoam/phosphor-splitpanel/demo"
)

func main() {
	log.SetFlags(log.Llongfile)

	vertical := flag.Bool("vertical", false, "arrange panes in a column")
	spacing := flag.Int("spacing", 0, "handle thickness in pixels (0 uses the default)")
	fontSize := flag.Float64("fontsize", 0, "font size in points (0 uses the default)")
	flag.Parse()

	opt := &demo.Options{
		Vertical: *vertical,
		Spacing:  *spacing,
		FontSize: *fontSize,
		Files:    flag.Args(),
	}
	_, err := demo.NewDemo(opt)
	if err != nil {
		log.Fatal(err)
	}
}
