package planner

import (
	"fmt"
	"time"

	"github.com/paiv/icfpc2012/internal/core"
)

// Strategy selects which outer search driver Run dispatches to.
type Strategy string

const (
	StrategyBFS      Strategy = "bfs"
	StrategyUCT      Strategy = "uct"
	StrategyGoalDive Strategy = "goaldive"
	StrategyGoalUCT  Strategy = "goaluct"
)

// Config bundles every knob the outer drivers need. Zero values are not
// useful defaults for PoolCap/MemoCap (a zero-cap pool never expands);
// Retries<=0 is treated as 1 by Retry. Callers should populate Config
// from internal/config rather than constructing it bare.
type Config struct {
	Strategy  Strategy
	PoolCap   int
	MemoCap   int
	Retries   int
	Heuristic Heuristic

	// Progress, if set, is called periodically by whichever driver Run
	// dispatches to with the best state found so far and a
	// strategy-specific count of nodes/plans explored. cmd/lambdalift
	// wires this to monitor.Server.Publish to drive its live dashboard.
	Progress ProgressFunc
}

// ProgressFunc receives periodic snapshots of a driver's in-flight
// search. A nil ProgressFunc is always safe to pass through
// notifyProgress.
type ProgressFunc func(best State, nodesExplored int)

// progressStride gates how often a driver's tight inner loop invokes
// ProgressFunc. A dashboard publish copies the whole board, so calling
// it on every iteration of a fast UCT loop would dominate the search
// itself; every progressStride iterations is frequent enough for
// monitor.Server's own publish-interval throttle to pick up.
const progressStride = 64

// notifyProgress calls progress every progressStride iterations, or
// always when force is true (used for a driver's final flush before it
// returns). progress may be nil.
func notifyProgress(progress ProgressFunc, iter, nodesExplored int, best State, force bool) {
	if progress == nil {
		return
	}
	if !force && iter%progressStride != 0 {
		return
	}
	progress(best, nodesExplored)
}

// Run dispatches to the configured strategy, wraps it in Retry, and
// returns the best State found within budget. cancel is polled
// cooperatively by every driver so an external signal (e.g. SIGINT in
// cmd/lambdalift) can stop the search before budget elapses.
func Run(m *core.MapInfo, initial State, cfg Config, budget time.Duration, cancel func() bool) (State, error) {
	var driver Driver

	switch cfg.Strategy {
	case StrategyBFS:
		driver = func(b time.Duration, c func() bool) State { return BFSGoalPlan(m, initial, b, c, cfg.Progress) }
	case StrategyUCT:
		driver = func(b time.Duration, c func() bool) State {
			return UCTMovePrefix(m, initial, b, cfg.PoolCap, cfg.MemoCap, cfg.Heuristic, c, cfg.Progress)
		}
	case StrategyGoalDive:
		driver = func(b time.Duration, c func() bool) State { return RandomDive(m, initial, b, c, cfg.Progress) }
	case StrategyGoalUCT:
		driver = func(b time.Duration, c func() bool) State {
			return GoalUCT(m, initial, b, cfg.PoolCap, cfg.Heuristic, c, cfg.Progress)
		}
	default:
		return initial, fmt.Errorf("planner: unknown strategy %q", cfg.Strategy)
	}

	return Retry(cfg.Retries, budget, cancel, driver), nil
}
