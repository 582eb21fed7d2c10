package planner

import (
	"math"
	"math/rand"
	"time"

	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/sim"

	"gonum.org/v1/gonum/stat"
)

// Heuristic selects which child-scoring formula UCT uses to pick
// between explored children. Variance pulls in gonum.org/v1/gonum/stat
// over each node's recent-reward window (spec.md §3's "reward-squared
// for variance-based heuristics" field), per SPEC_FULL.md §6.3; it is
// the historical #else branch of the original select_heuristic and is
// never the default.
type Heuristic int

const (
	HeuristicDefault Heuristic = iota
	HeuristicVariance
)

const ucbExploreWeight = 0.5
const ucbVarianceFloor = 10000.0

func selectHeuristic(n, parent *Node, h Heuristic) float64 {
	if h == HeuristicVariance && len(n.RecentReward) > 1 {
		mean, variance := stat.MeanVariance(n.RecentReward, nil)
		_ = mean
		return n.AccScore/float64(n.Visits)/10000.0 +
			ucbExploreWeight*math.Sqrt(math.Log(float64(parent.Visits))/float64(n.Visits)) +
			math.Sqrt((variance+ucbVarianceFloor)/float64(n.Visits))
	}
	return n.AccScore/float64(n.Visits)/10000.0 +
		math.Sqrt(2*math.Log(float64(parent.Visits))/float64(n.Visits))
}

// mcDiveMovePrefix plays random legal moves from state until the game
// ends, avoiding immediate revisits of boards already seen this dive
// (grounded on mc_dive in solver_mc.cpp).
func mcDiveMovePrefix(m *core.MapInfo, state State, cancel func() bool) State {
	visited := map[uint64]bool{state.Sim.BoardHash: true}

	for !state.Sim.IsEnded && !cancel() {
		exclude := make(map[core.Action]bool)
		legal := sim.LegalMoves(m, state.Sim, len(state.Prog), exclude)
		if len(legal) == 0 {
			break
		}
		next := Advance(m, state, legal[rand.Intn(len(legal))])

		for !next.Sim.IsEnded && visited[next.Sim.BoardHash] && !cancel() {
			exclude[next.Prog[len(next.Prog)-1]] = true
			legal = sim.LegalMoves(m, state.Sim, len(state.Prog), exclude)
			if len(legal) == 0 {
				break
			}
			next = Advance(m, state, legal[rand.Intn(len(legal))])
		}

		state = next
		visited[state.Sim.BoardHash] = true
	}

	return state
}

// UCTMovePrefix runs the UCT-over-move-prefixes driver (spec.md
// §4.7(b)): classic select/expand/simulate/backpropagate MCTS where
// every tree node is a single action and a memo caches the simulated
// state reached by replaying a node's full move prefix. Grounded on
// player in solver_mc.cpp.
func UCTMovePrefix(m *core.MapInfo, initial State, budget time.Duration, poolCap, memoCap int, h Heuristic, cancel func() bool, progress ProgressFunc) State {
	deadline := time.Now().Add(budget)

	pool := NewPool(poolCap, initial.Sim.BoardHash)
	memo := NewMemo(memoCap)
	memo.Add(string(initial.Prog), initial)

	visited := map[uint64]int{initial.Sim.BoardHash: pool.Root()}

	best := initial

	iter := 0
	for !cancel() && time.Now().Before(deadline) {
		iter++
		notifyProgress(progress, iter, pool.Len(), best, false)
		selected := pool.Root()
		path := append(core.Program{}, initial.Prog...)

		if pool.Get(selected).Explored {
			break
		}

		// select
		for pool.Get(selected).Visits != 0 {
			n := pool.Get(selected)

			var unvisited []int
			for _, c := range n.Children {
				if pool.Get(c).Visits == 0 {
					unvisited = append(unvisited, c)
				}
			}
			if len(unvisited) > 0 {
				selected = unvisited[rand.Intn(len(unvisited))]
				path = append(path, pool.Get(selected).Move)
				continue
			}

			bestChild := -1
			bestScore := math.Inf(-1)
			for _, c := range n.Children {
				cn := pool.Get(c)
				if cn.Explored {
					continue
				}
				score := selectHeuristic(cn, n, h)
				if score > bestScore {
					bestScore = score
					bestChild = c
				}
			}
			if bestChild < 0 {
				n.Explored = true
				break
			}
			selected = bestChild
			path = append(path, pool.Get(selected).Move)
		}

		var score float64
		selNode := pool.Get(selected)

		if selNode.Explored {
			score = selNode.AccScore / float64(selNode.Visits)
		} else {
			state, ok := memo.Find(string(path))
			if !ok {
				state = replayNoAbort(m, initial.Sim, path)
				memo.Add(string(path), state)
			}

			moves := sim.LegalMoves(m, state.Sim, len(state.Prog), nil)
			selNode.Explored = len(moves) == 0

			for _, mv := range moves {
				child := Advance(m, state, mv)
				childDepth := selNode.Depth + 1

				if existing, ok := visited[child.Sim.BoardHash]; ok && pool.Get(existing).Depth <= childDepth {
					continue
				}

				memo.Add(string(child.Prog), child)

				if idx, ok := pool.Add(selected, child.Sim.BoardHash, mv, childDepth); ok {
					visited[child.Sim.BoardHash] = idx
				}
			}

			deep := mcDiveMovePrefix(m, state, cancel)
			score = float64(deep.Sim.Score)

			if deep.Sim.Score > best.Sim.Score {
				best = deep
			}
		}

		pool.Backpropagate(selected, score)
	}

	notifyProgress(progress, iter, pool.Len(), best, true)
	return best
}

// replayNoAbort replays path from scratch without the implicit forced
// abort Run appends, matching runsim(..., no_abort) in the original:
// the expand phase needs the in-flight state, not a finished game.
func replayNoAbort(m *core.MapInfo, initial core.SimState, path core.Program) State {
	s := initial
	maxTurns := m.Width * m.Height
	turns := 0
	for _, mv := range path {
		if s.IsEnded || turns >= maxTurns {
			break
		}
		s = sim.Step(m, s, mv)
		turns++
	}
	return State{Sim: s, Prog: path, IsWin: s.IsEnded && s.RobotPos == m.LiftPos}
}
