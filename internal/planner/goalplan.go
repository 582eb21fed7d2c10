package planner

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/goals"
)

const randomDiveShortlist = 10

// shortlistGoals ranks proposed goal tiles by Manhattan distance from
// from and keeps the closest randomDiveShortlist, grounded on
// player_rand's goal-shortlist construction in solver_pl.cpp. Lambda
// and lift tiles are listed twice, biasing the random pick toward them
// without excluding everything else.
func shortlistGoals(m *core.MapInfo, s core.SimState, from core.Position) []core.Position {
	goalSet, _ := goals.Propose(m, s)

	type ranked struct {
		pos  core.Position
		dist int
	}
	var all []ranked
	for p := range goalSet {
		all = append(all, ranked{pos: p, dist: core.ManhattanDistance(from, p)})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].dist < all[j].dist })

	if len(all) > randomDiveShortlist {
		all = all[:randomDiveShortlist]
	}

	var picks []core.Position
	for _, r := range all {
		picks = append(picks, r.pos)
		if s.At(m.Width, r.pos) == core.Lambda || s.At(m.Width, r.pos) == core.OpenLift {
			picks = append(picks, r.pos)
		}
	}
	return picks
}

// RandomDive runs the goal-based randomized-dive driver (spec.md
// §4.7(c)), grounded on player_rand in solver_pl.cpp: repeatedly pick a
// random goal from a distance-shortlist and path to it, retrying with
// that goal excluded on failure, until budget runs out or no proposed
// goal remains reachable.
func RandomDive(m *core.MapInfo, initial State, budget time.Duration, cancel func() bool, progress ProgressFunc) State {
	deadline := time.Now().Add(budget)
	current := initial
	best := initial
	steps := 0

	for !current.IsWin && !cancel() {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}

		picks := shortlistGoals(m, current.Sim, current.Sim.RobotPos)
		if len(picks) == 0 {
			break
		}

		distinct := make(map[core.Position]bool, len(picks))
		for _, p := range picks {
			distinct[p] = true
		}
		excluded := make(map[core.Position]bool)
		advanced := false

		for len(excluded) < len(distinct) && !cancel() {
			remaining = time.Until(deadline)
			if remaining <= 0 {
				break
			}

			goal := picks[rand.Intn(len(picks))]
			if excluded[goal] {
				continue
			}

			var next State
			if goal == current.Sim.RobotPos {
				next = Advance(m, current, core.Wait)
			} else {
				next = FindPath(m, current, goal, remaining/4)
			}

			if next.Sim.RobotPos != goal {
				excluded[goal] = true
				continue
			}

			current = next
			if current.Sim.Score > best.Sim.Score {
				best = current
			}
			advanced = true
			break
		}

		if !advanced {
			break
		}
		steps++
		notifyProgress(progress, steps, steps, best, false)
	}

	notifyProgress(progress, steps, steps, best, true)
	return best
}

// GoalUCT runs UCT over goal-plans instead of single moves (spec.md
// §4.7(c)'s UCT variant), grounded on player_mc in solver_pl.cpp: the
// same select/expand/simulate/backpropagate shape as UCTMovePrefix, but
// each tree node is a completed goal-plan step produced by PlanChildren
// and the rollout from an expanded leaf is a RandomDive rather than a
// single-action mc_dive.
func GoalUCT(m *core.MapInfo, initial State, budget time.Duration, poolCap int, h Heuristic, cancel func() bool, progress ProgressFunc) State {
	deadline := time.Now().Add(budget)

	pool := NewPool(poolCap, initial.Sim.BoardHash)
	leaves := map[int]State{pool.Root(): initial}

	best := initial

	iter := 0
	for !cancel() && time.Now().Before(deadline) {
		iter++
		notifyProgress(progress, iter, pool.Len(), best, false)
		selected := pool.Root()

		if pool.Get(selected).Explored {
			break
		}

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
				continue
			}

			bestChild := -1
			bestScore := math.Inf(-1)
			for _, c := range n.Children {
				cn := pool.Get(c)
				if cn.Explored {
					continue
				}
				if score := selectHeuristic(cn, n, h); score > bestScore {
					bestScore = score
					bestChild = c
				}
			}
			if bestChild < 0 {
				n.Explored = true
				break
			}
			selected = bestChild
		}

		var score float64
		selNode := pool.Get(selected)

		if selNode.Explored {
			score = selNode.AccScore / float64(selNode.Visits)
		} else {
			state := leaves[selected]

			remaining := time.Until(deadline)
			if remaining <= 0 {
				break
			}

			children := PlanChildren(m, state, remaining/8)
			selNode.Explored = len(children) == 0

			for _, child := range children {
				if idx, ok := pool.Add(selected, child.Sim.BoardHash, core.Wait, selNode.Depth+1); ok {
					leaves[idx] = child
				}
			}

			dive := RandomDive(m, state, remaining/8, cancel, nil)
			score = float64(dive.Sim.Score)
			if dive.Sim.Score > best.Sim.Score {
				best = dive
			}
		}

		pool.Backpropagate(selected, score)
	}

	notifyProgress(progress, iter, pool.Len(), best, true)
	return best
}
