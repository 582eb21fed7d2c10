// Package planner implements the outer search driver (spec.md §4.7):
// the BFS-over-goal-plans, UCT-over-move-prefixes and goal-planner
// UCT/randomized-dive strategies that turn the goal proposer and the
// A* pathfinder into a finished program. All three strategies share
// the same SearchNode-shaped state; the two UCT drivers draw on the
// bounded node pool, and UCT over move prefixes also on the bounded
// memo (spec.md §5). BFS and the randomized dive use neither.
package planner

import (
	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/sim"
)

// State is the planner's SearchNode (spec.md §3): a simulated world, the
// program that reached it, and whether that program is already a win.
type State struct {
	Sim    core.SimState
	Prog   core.Program
	IsWin  bool
}

// Advance steps sim forward by one action and appends it to the program.
func Advance(m *core.MapInfo, cur State, mv core.Action) State {
	next := sim.Step(m, cur.Sim, mv)
	prog := make(core.Program, len(cur.Prog)+1)
	copy(prog, cur.Prog)
	prog[len(cur.Prog)] = mv

	return State{
		Sim:   next,
		Prog:  prog,
		IsWin: next.IsEnded && next.RobotPos == m.LiftPos,
	}
}

// Initial builds the root search state for a freshly read map.
func Initial(m *core.MapInfo, s core.SimState) State {
	return State{
		Sim:   s,
		Prog:  core.Program{},
		IsWin: s.RobotPos == m.LiftPos,
	}
}
