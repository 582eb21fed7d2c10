// Command lambdaviz replays a recorded program against a map, printing
// the board after every move with a configurable delay, grounded on
// viz() in the original viz.cpp.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/paiv/icfpc2012/internal/cliutil"
	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/planner"
)

func main() {
	delayMs := flag.Int("delay", 300, "milliseconds to wait between frames")
	flag.Parse()

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lambdaviz: reading input:", err)
		os.Exit(1)
	}

	text := string(input)
	m, initial := core.ReadMap(text)
	prog := core.ReadProgram(cliutil.ProgramText(text, m))

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	delay := time.Duration(*delayMs) * time.Millisecond
	cur := planner.Initial(m, initial)
	printFrame(w, m, cur.Sim)
	w.Flush()
	time.Sleep(delay)

	for _, mv := range prog {
		if cur.Sim.IsEnded {
			break
		}
		cur = planner.Advance(m, cur, mv)
		printFrame(w, m, cur.Sim)
		w.Flush()
		time.Sleep(delay)
	}

	fmt.Fprintln(w, prog.String())
	fmt.Fprintln(w, cur.Sim.Score)
}

func printFrame(w io.Writer, m *core.MapInfo, s core.SimState) {
	fmt.Fprint(w, core.RenderBoard(m, s.Board))
	fmt.Fprintln(w)
}

