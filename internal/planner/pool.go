package planner

import "github.com/paiv/icfpc2012/internal/core"

// noParent marks the root node, which has no parent index.
const noParent = -1

// Node is one vertex of the UCT search tree (spec.md §3 "UCT node").
// Parent and child references are slice indices into Pool.nodes rather
// than pointers, per spec.md §9's design note: a growing slice backing
// store would invalidate raw pointers on reallocation, so every
// reference here is an int index that stays valid for the pool's
// lifetime.
type Node struct {
	BoardHash    uint64
	Move         core.Action
	Depth        int
	Visits       int
	AccScore     float64
	AccScoreSq   float64
	RecentReward []float64 // ring buffer backing the variance-aware heuristic
	Parent       int
	Children     []int
	Explored     bool
}

// Pool is the bounded, growing arena backing a UCT search tree. Once
// Cap nodes have been allocated, Add reports failure and the driver
// stops expanding — search continues over the existing tree, per
// spec.md §3's "no further expansion occurs" contract.
type Pool struct {
	nodes []Node
	cap   int
}

// NewPool allocates a pool capped at maxNodes and seeds it with a root
// node for boardHash.
func NewPool(maxNodes int, boardHash uint64) *Pool {
	p := &Pool{nodes: make([]Node, 0, maxNodes), cap: maxNodes}
	p.nodes = append(p.nodes, Node{BoardHash: boardHash, Move: core.Abort, Parent: noParent})
	return p
}

// Root returns the index of the pool's root node (always 0).
func (p *Pool) Root() int { return 0 }

// Get returns a pointer to the node at idx. NewPool pre-reserves
// capacity up to cap, so Add never reallocates the backing array and
// pointers returned here stay valid for the pool's lifetime.
func (p *Pool) Get(idx int) *Node { return &p.nodes[idx] }

// Len reports how many nodes have been allocated so far.
func (p *Pool) Len() int { return len(p.nodes) }

// Full reports whether the pool has reached its configured cap.
func (p *Pool) Full() bool { return len(p.nodes) >= p.cap }

// Add appends a child of parentIdx and returns its index. ok is false,
// and no node is added, once the pool is full.
func (p *Pool) Add(parentIdx int, boardHash uint64, mv core.Action, depth int) (idx int, ok bool) {
	if p.Full() {
		return 0, false
	}
	idx = len(p.nodes)
	p.nodes = append(p.nodes, Node{
		BoardHash: boardHash,
		Move:      mv,
		Depth:     depth,
		Parent:    parentIdx,
	})
	p.nodes[parentIdx].Children = append(p.nodes[parentIdx].Children, idx)
	return idx, true
}

// Backpropagate folds a simulated score into n and every ancestor up to
// the root, matching the original engine's backprop loop.
func (p *Pool) Backpropagate(idx int, score float64) {
	const rewardWindow = 32
	for i := idx; i != noParent; {
		n := &p.nodes[i]
		n.AccScore += score
		n.AccScoreSq += score * score
		n.Visits++
		n.RecentReward = append(n.RecentReward, score)
		if len(n.RecentReward) > rewardWindow {
			n.RecentReward = n.RecentReward[len(n.RecentReward)-rewardWindow:]
		}
		i = n.Parent
	}
}
