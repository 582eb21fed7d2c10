package planner

import (
	"fmt"
	"time"

	"github.com/paiv/icfpc2012/internal/core"
	astar "github.com/paiv/icfpc2012/internal/search"
	"github.com/paiv/icfpc2012/internal/sim"
)

// goalKeyPrefix starts the location key of a stub node representing a
// proposed target tile. Real program-prefix keys are built from the Action
// alphabet (printable ASCII), so prefixing with NUL keeps stub keys
// from ever colliding with one, matching the original's separate
// stub_node path.
const goalKeyPrefix = "\x00goal:"

// pathGraph is the A* graph collaborator whose locations are program
// prefixes and whose nodes are entire simulated worlds — "the node
// store maps prefix → SearchNode" per spec.md §4.5. Grounded on
// path_search_graph in the original solver.
type pathGraph struct {
	m       *core.MapInfo
	tree    map[string]State
	visited map[uint64]bool
}

func newPathGraph(m *core.MapInfo, root State) *pathGraph {
	g := &pathGraph{
		m:       m,
		tree:    map[string]State{string(root.Prog): root},
		visited: make(map[uint64]bool),
	}
	return g
}

// stubGoal registers a synthetic node whose RobotPos is the target tile
// and returns its location key.
func (g *pathGraph) stubGoal(at core.Position) string {
	key := fmt.Sprintf("%s%d,%d", goalKeyPrefix, at.X, at.Y)
	g.tree[key] = State{Sim: core.SimState{RobotPos: at}}
	return key
}

func (g *pathGraph) CheckGoal(at, goal string) bool {
	fromState, ok1 := g.tree[at]
	goalState, ok2 := g.tree[goal]
	return ok1 && ok2 && fromState.Sim.RobotPos == goalState.Sim.RobotPos
}

func (g *pathGraph) Children(from string) []string {
	parent, ok := g.tree[from]
	if !ok {
		return nil
	}
	g.visited[parent.Sim.BoardHash] = true

	var res []string
	for _, mv := range sim.LegalMoves(g.m, parent.Sim, len(parent.Prog), nil) {
		child := Advance(g.m, parent, mv)
		if g.visited[child.Sim.BoardHash] {
			continue
		}
		key := string(child.Prog)
		g.tree[key] = child
		res = append(res, key)
	}
	return res
}

// Distance is always 1: every edge here is exactly one simulated move,
// since Children only ever extends a prefix by a single action.
func (g *pathGraph) Distance(from, to string) int { return 1 }

func (g *pathGraph) PathEstimate(from, goal string) int {
	fromState, ok1 := g.tree[from]
	goalState, ok2 := g.tree[goal]
	if !ok1 || !ok2 {
		return 1 << 30
	}
	return core.ManhattanDistance(fromState.Sim.RobotPos, goalState.Sim.RobotPos)
}

// FindPath runs a time-bounded A* from initial to a target tile over
// the simulated world graph (spec.md §4.5's "graph used by path-
// finding is the simulated world graph"). It returns the State reached
// at the goal tile, or a state with RobotPos{-1,-1} if no path was
// found within budget — matching the original's "invalid" sentinel.
func FindPath(m *core.MapInfo, initial State, goal core.Position, budget time.Duration) State {
	g := newPathGraph(m, initial)
	goalKey := g.stubGoal(goal)

	path := astar.Search[string](g, string(initial.Prog), goalKey, budget)
	if len(path) == 0 {
		return State{Sim: core.SimState{RobotPos: core.Position{X: -1, Y: -1}}}
	}
	return g.tree[path[len(path)-1]]
}
