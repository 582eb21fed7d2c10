package planner

import (
	"time"

	"github.com/paiv/icfpc2012/internal/core"
)

// BFSGoalPlan runs the BFS-over-goal-plans driver (spec.md §4.7(a)),
// grounded on player_bfs in the original solver_pl.cpp: a queue of
// SearchNodes deduplicated by board hash, expanding each via
// PlanChildren with an expansion budget of remaining/(lambdas_total³+2).
// PlanChildren divides that budget again by (goals+2), so each goal's
// A* run gets remaining/(lambdas_total³+2)/(goals+2), not the whole
// expansion budget. Returns the best-scoring node seen,
// short-circuiting as soon as a win is dequeued.
func BFSGoalPlan(m *core.MapInfo, initial State, budget time.Duration, cancel func() bool, progress ProgressFunc) State {
	deadline := time.Now().Add(budget)

	fringe := []State{initial}
	visited := make(map[uint64]bool)
	best := initial

	denom := m.LambdasTotal*m.LambdasTotal*m.LambdasTotal + 2

	iter := 0
	for len(fringe) > 0 {
		if time.Now().After(deadline) || cancel() {
			break
		}

		current := fringe[0]
		fringe = fringe[1:]

		if visited[current.Sim.BoardHash] {
			continue
		}
		visited[current.Sim.BoardHash] = true

		if current.Sim.Score > best.Sim.Score {
			best = current
		}
		iter++
		notifyProgress(progress, iter, len(visited), best, false)
		if current.IsWin {
			break
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		childBudget := remaining / time.Duration(denom)

		for _, child := range PlanChildren(m, current, childBudget) {
			fringe = append(fringe, child)
		}
	}

	notifyProgress(progress, iter, len(visited), best, true)
	return best
}
