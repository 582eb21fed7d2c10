package core

// SimState is the mutable part of a mine: the board contents, the
// robot's position, the running score, lambdas collected so far, and
// whether the game has ended. BoardHash is maintained incrementally by
// the simulator via Fingerprint.Toggle rather than recomputed per step.
type SimState struct {
	Board            []Cell
	RobotPos         Position
	Score            int
	LambdasCollected int
	IsEnded          bool
	BoardHash        uint64
}

// Clone returns a deep copy safe to mutate independently of the
// receiver. The simulator clones its input at the start of every step,
// so each step produces a fresh SimState and callers never need to
// clone mid-search.
func (s SimState) Clone() SimState {
	board := make([]Cell, len(s.Board))
	copy(board, s.Board)
	s.Board = board
	return s
}

// At returns the cell at p given the map's width.
func (s SimState) At(width int, p Position) Cell {
	return s.Board[p.Y*width+p.X]
}
