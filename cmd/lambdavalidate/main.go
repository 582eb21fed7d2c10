// Command lambdavalidate replays a recorded program against a map and
// prints the resulting score, board, and program, grounded on
// validate() in the original validator.cpp.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/paiv/icfpc2012/internal/cliutil"
	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/sim"
)

func main() {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lambdavalidate: reading input:", err)
		os.Exit(1)
	}

	text := string(input)
	m, initial := core.ReadMap(text)
	prog := core.ReadProgram(cliutil.ProgramText(text, m))

	final := sim.Run(m, initial, prog)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	fmt.Fprintln(w, final.Score)
	fmt.Fprint(w, core.RenderBoard(m, final.Board))
	fmt.Fprintln(w, prog.String())
}

