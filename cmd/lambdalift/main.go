// Command lambdalift reads a mine map on stdin and writes a move
// program to stdout, grounded on the outer main() in the original
// lifter.cpp: a PAIV_TIMEOUT-bounded, SIGINT-cancellable search that
// always prints whatever program it has found so far before exiting.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/paiv/icfpc2012/internal/config"
	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/monitor"
	"github.com/paiv/icfpc2012/internal/planner"
)

func main() {
	configPath := flag.String("config", "", "path to a planner YAML config (default: bfs strategy, builtin tuning)")
	strategyFlag := flag.String("strategy", "", "override the configured strategy (bfs, uct, goaldive, goaluct)")
	monitorAddr := flag.String("monitor", "", "if set, serve a live progress dashboard at this address (e.g. :8089)")
	flag.Parse()

	strategy, cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lambdalift: config:", err)
		os.Exit(1)
	}
	if *strategyFlag != "" {
		strategy = planner.Strategy(*strategyFlag)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lambdalift: reading map:", err)
		os.Exit(1)
	}

	m, initial := core.ReadMap(string(input))
	init := planner.Initial(m, initial)

	var cancelled int32
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		atomic.StoreInt32(&cancelled, 1)
	}()
	cancel := func() bool { return atomic.LoadInt32(&cancelled) != 0 }

	var mon *monitor.Server
	var progress planner.ProgressFunc
	lastNodes := 0
	if *monitorAddr != "" {
		mon = monitor.NewServer(*monitorAddr)
		ctx, stop := context.WithCancel(context.Background())
		defer stop()
		go func() {
			if err := mon.Serve(ctx); err != nil {
				fmt.Fprintln(os.Stderr, "lambdalift: monitor:", err)
			}
		}()
		progress = func(best planner.State, nodesExplored int) {
			lastNodes = nodesExplored
			mon.Publish(m, best.Sim, nodesExplored)
		}
	}

	plannerCfg := cfg.ToPlannerConfig(strategy)
	plannerCfg.Progress = progress

	best, err := planner.Run(m, init, plannerCfg, config.Budget(), cancel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lambdalift:", err)
		os.Exit(1)
	}

	// The returned program may still be mid-run (budget expired before the
	// robot reached the lift or aborted on its own). Per spec.md §4.7, the
	// outer entry point force-ends it with an explicit abort so the
	// program handed to the validator always reaches a terminal state.
	if !best.Sim.IsEnded {
		best = planner.Advance(m, best, core.Abort)
	}

	if mon != nil {
		mon.Publish(m, best.Sim, lastNodes)
	}

	fmt.Println(best.Prog.String())
}

func loadConfig(path string) (planner.Strategy, config.PlannerConfig, error) {
	if path == "" {
		return planner.StrategyBFS, config.Default(), nil
	}
	return config.FromYaml(path)
}
