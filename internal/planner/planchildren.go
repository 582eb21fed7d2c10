package planner

import (
	"time"

	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/goals"
)

// PlanChildren expands initial into one child State per proposed goal
// tile (spec.md §4.7(a), grounded on plan_children): waiting in place
// for the "wait here" goal, or an A* path otherwise. Each goal gets an
// equal share of budget. Goals whose path (or wait) didn't actually
// reach the target tile are dropped.
func PlanChildren(m *core.MapInfo, initial State, budget time.Duration) []State {
	goalSet, _ := goals.Propose(m, initial.Sim)
	if len(goalSet) == 0 {
		return nil
	}

	perGoal := budget / time.Duration(len(goalSet)+2)

	res := make([]State, 0, len(goalSet))
	for goal := range goalSet {
		var next State
		if goal == initial.Sim.RobotPos {
			next = Advance(m, initial, core.Wait)
		} else {
			next = FindPath(m, initial, goal, perGoal)
		}

		if next.Sim.RobotPos == goal {
			res = append(res, next)
		}
	}
	return res
}
