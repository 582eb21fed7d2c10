// Command bench runs a compiled lambdalift binary against every map in
// a directory and writes a CSV of scores and timings, grounded on the
// git-hash-stamped CSV/summary-table shape of the former
// tools/run_benchmarks instance runner (adapted here from per-solver
// MAPF stubs to repeated invocations of a single planner binary across
// maps and strategies).
package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/sim"
)

type result struct {
	Map       string
	Strategy  string
	Score     int
	Duration  time.Duration
	CommitSHA string
	GoVersion string
	GOOS      string
	GOARCH    string
}

func main() {
	binPath := flag.String("bin", "./lambdalift", "path to the lambdalift binary")
	mapDir := flag.String("maps", "", "directory of ASCII maps to run")
	strategies := flag.String("strategies", "bfs,uct,goaldive,goaluct", "comma-separated strategy list")
	timeout := flag.Duration("timeout", 10*time.Second, "per-run PAIV_TIMEOUT override")
	outCSV := flag.String("out", "bench.csv", "path to write the CSV summary")
	flag.Parse()

	if *mapDir == "" {
		fmt.Fprintln(os.Stderr, "bench: -maps is required")
		os.Exit(1)
	}

	entries, err := os.ReadDir(*mapDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bench:", err)
		os.Exit(1)
	}

	commit := commitSHA()
	var results []result
	var runErrs *multierror.Error

	for _, strategy := range strings.Split(*strategies, ",") {
		strategy = strings.TrimSpace(strategy)
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			mapPath := filepath.Join(*mapDir, e.Name())
			r, err := runOnce(*binPath, mapPath, strategy, *timeout)
			if err != nil {
				runErrs = multierror.Append(runErrs, fmt.Errorf("%s/%s: %w", strategy, e.Name(), err))
				continue
			}
			r.CommitSHA = commit
			r.GoVersion = runtime.Version()
			r.GOOS = runtime.GOOS
			r.GOARCH = runtime.GOARCH
			results = append(results, r)
		}
	}

	if err := writeCSV(*outCSV, results); err != nil {
		fmt.Fprintln(os.Stderr, "bench:", err)
		os.Exit(1)
	}

	printSummary(results)

	if runErrs.ErrorOrNil() != nil {
		fmt.Fprintln(os.Stderr, "bench: some runs failed:")
		fmt.Fprintln(os.Stderr, runErrs)
		os.Exit(1)
	}
}

func runOnce(binPath, mapPath, strategy string, timeout time.Duration) (result, error) {
	mapBytes, err := os.ReadFile(mapPath)
	if err != nil {
		return result{}, err
	}

	cmd := exec.Command(binPath, "--strategy", strategy)
	cmd.Env = append(os.Environ(), fmt.Sprintf("PAIV_TIMEOUT=%d", int(timeout.Seconds())))
	cmd.Stdin = bytes.NewReader(mapBytes)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)
	if runErr != nil {
		return result{}, runErr
	}

	m, initial := core.ReadMap(string(mapBytes))
	prog := core.ReadProgram(firstLine(stdout.String()))
	final := replayForScore(m, initial, prog)

	return result{
		Map:      filepath.Base(mapPath),
		Strategy: strategy,
		Score:    final,
		Duration: elapsed,
	}, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func replayForScore(m *core.MapInfo, initial core.SimState, prog core.Program) int {
	return sim.Run(m, initial, prog).Score
}

func writeCSV(path string, results []result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(bufio.NewWriter(f))
	defer w.Flush()

	_ = w.Write([]string{"map", "strategy", "score", "duration_ms", "commit", "go_version", "goos", "goarch"})
	for _, r := range results {
		_ = w.Write([]string{
			r.Map,
			r.Strategy,
			strconv.Itoa(r.Score),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
			r.CommitSHA,
			r.GoVersion,
			r.GOOS,
			r.GOARCH,
		})
	}
	return w.Error()
}

func printSummary(results []result) {
	totals := map[string]int{}
	counts := map[string]int{}
	for _, r := range results {
		totals[r.Strategy] += r.Score
		counts[r.Strategy]++
	}

	strategies := make([]string, 0, len(totals))
	for s := range totals {
		strategies = append(strategies, s)
	}
	sort.Strings(strategies)

	fmt.Println("strategy\truns\tavg score")
	for _, s := range strategies {
		avg := 0.0
		if counts[s] > 0 {
			avg = float64(totals[s]) / float64(counts[s])
		}
		fmt.Printf("%s\t%d\t%.1f\n", s, counts[s], avg)
	}
}

func commitSHA() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
