// Command lambdaviz-gui opens a Gio window replaying a recorded
// program against a map, grounded on the mapfhetvis GUI entry point in
// the example pack.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/paiv/icfpc2012/internal/cliutil"
	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/vis"
)

func main() {
	mapPath := flag.String("map", "", "path to a map+program file (default: read from stdin)")
	flag.Parse()

	var input []byte
	var err error
	if *mapPath != "" {
		input, err = os.ReadFile(*mapPath)
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "lambdaviz-gui: reading input:", err)
		os.Exit(1)
	}

	text := string(input)
	m, initial := core.ReadMap(text)
	prog := core.ReadProgram(cliutil.ProgramText(text, m))

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("lambdalift visualizer"),
			app.Size(unit.Dp(1000), unit.Dp(800)),
		)

		application := vis.NewApp(m, initial, prog)
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

