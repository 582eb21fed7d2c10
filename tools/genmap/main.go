// Command genmap emits random ASCII lambda-lift maps for benchmarking
// and regression testing, grounded on the instance generator's
// flag-driven, seeded-random shape (formerly tools/gen_instances,
// adapted here from MAPF JSON instances to ICFP-format ASCII mines).
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

type mapParams struct {
	Width, Height int
	EarthDensity  float64
	RockDensity   float64
	LambdaCount   int
	Seed          int64
}

func main() {
	width := flag.Int("width", 20, "map width")
	height := flag.Int("height", 15, "map height")
	count := flag.Int("count", 1, "number of maps to generate")
	lambdas := flag.Int("lambdas", 5, "lambdas per map")
	earth := flag.Float64("earth", 0.55, "fraction of open cells filled with earth")
	rock := flag.Float64("rock", 0.1, "fraction of open cells filled with rock")
	seed := flag.Int64("seed", 1, "base random seed")
	outDir := flag.String("out", "", "directory to write maps into (default: stdout)")
	flag.Parse()

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, "genmap:", err)
			os.Exit(1)
		}
	}

	for i := 0; i < *count; i++ {
		p := mapParams{
			Width:        *width,
			Height:       *height,
			EarthDensity: *earth,
			RockDensity:  *rock,
			LambdaCount:  *lambdas,
			Seed:         *seed + int64(i),
		}
		board := generate(p)

		if *outDir == "" {
			fmt.Print(board)
			fmt.Println()
			continue
		}
		name := filepath.Join(*outDir, fmt.Sprintf("map-%03d.txt", i))
		if err := os.WriteFile(name, []byte(board), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "genmap:", err)
			os.Exit(1)
		}
	}
}

// generate builds a mine: a wall border, a randomly scattered mix of
// earth/rock/empty interior, the robot on a random open (empty or
// earth) interior cell, LambdaCount lambdas on other random open cells,
// and the lift on a random open cell other than the robot's.
// Connectivity between robot, lambdas and lift is not checked, and
// rocks are placed without regard to what lies beneath them.
func generate(p mapParams) string {
	rng := rand.New(rand.NewSource(p.Seed))
	w, h := p.Width, p.Height
	board := make([][]byte, h)
	for y := range board {
		board[y] = make([]byte, w)
		for x := range board[y] {
			board[y][x] = ' '
		}
	}

	for x := 0; x < w; x++ {
		board[0][x] = '#'
		board[h-1][x] = '#'
	}
	for y := 0; y < h; y++ {
		board[y][0] = '#'
		board[y][w-1] = '#'
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			r := rng.Float64()
			switch {
			case r < p.RockDensity:
				board[y][x] = '*'
			case r < p.RockDensity+p.EarthDensity:
				board[y][x] = '.'
			}
		}
	}

	open := func() (int, int) {
		for {
			x := 1 + rng.Intn(w-2)
			y := 1 + rng.Intn(h-2)
			if board[y][x] == ' ' || board[y][x] == '.' {
				return x, y
			}
		}
	}

	rx, ry := open()
	board[ry][rx] = 'R'

	for placed := 0; placed < p.LambdaCount; {
		x, y := open()
		if x == rx && y == ry {
			continue
		}
		board[y][x] = '\\'
		placed++
	}

	lx, ly := open()
	for lx == rx && ly == ry {
		lx, ly = open()
	}
	board[ly][lx] = 'L'

	out := make([]byte, 0, (w+1)*h)
	for y := 0; y < h; y++ {
		out = append(out, board[y]...)
		out = append(out, '\n')
	}
	return string(out)
}
