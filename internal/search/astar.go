// Package astar implements a generic, time-bounded A* search over any
// collaborator satisfying the Graph interface — the same four-method
// contract the original engine's templated astar::search<Graph> used,
// translated to Go generics instead of C++ templates.
package astar

import (
	"container/heap"
	"time"
)

// Graph is the search's only dependency on the problem domain. L is the
// location type used as both a graph vertex and a search-tree key, so
// it must be comparable.
type Graph[L comparable] interface {
	// CheckGoal reports whether at has reached goal.
	CheckGoal(at, goal L) bool
	// Children returns the locations reachable from at in one step.
	Children(at L) []L
	// Distance is the step cost between adjacent locations from and to.
	Distance(from, to L) int
	// PathEstimate is the admissible heuristic from a location to goal.
	PathEstimate(from, goal L) int
}

type fringeEntry[L comparable] struct {
	location L
	cost     int
	index    int
}

type fringeHeap[L comparable] []*fringeEntry[L]

func (h fringeHeap[L]) Len() int            { return len(h) }
func (h fringeHeap[L]) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h fringeHeap[L]) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *fringeHeap[L]) Push(x any) {
	e := x.(*fringeEntry[L])
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *fringeHeap[L]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// Search runs a time-bounded A* from `from` to `goal` over g and
// returns the path found, or nil if the fringe emptied or the deadline
// passed before CheckGoal fired. A* proper has no notion of "no path
// within budget" versus "no path exists" — both return nil, matching
// the original's behavior of treating a timeout as failure.
func Search[L comparable](g Graph[L], from, goal L, budget time.Duration) []L {
	deadline := time.Now().Add(budget)

	distance := map[L]int{from: 0}
	parent := map[L]L{}

	fringe := &fringeHeap[L]{}
	heap.Init(fringe)
	heap.Push(fringe, &fringeEntry[L]{location: from, cost: 0})

	for fringe.Len() > 0 {
		if time.Now().After(deadline) {
			break
		}

		current := heap.Pop(fringe).(*fringeEntry[L])

		if g.CheckGoal(current.location, goal) {
			return rebuildPath(current.location, parent, from)
		}

		for _, child := range g.Children(current.location) {
			dist := distance[current.location] + g.Distance(current.location, child)

			if prev, ok := distance[child]; !ok || prev > dist {
				parent[child] = current.location
				distance[child] = dist

				cost := dist + g.PathEstimate(child, goal)
				heap.Push(fringe, &fringeEntry[L]{location: child, cost: cost})
			}
		}
	}

	return nil
}

func rebuildPath[L comparable](goal L, parent map[L]L, root L) []L {
	var path []L
	loc := goal
	for {
		path = append([]L{loc}, path...)
		prev, ok := parent[loc]
		if !ok {
			break
		}
		loc = prev
	}
	return path
}
