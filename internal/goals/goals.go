// Package goals implements the board-reading goal proposer (spec.md
// §4.6): it scans a SimState once and nominates tiles the planner
// driver might usefully path to — lambdas, the open lift, earth tiles
// that pivot a rock fall, pushable rocks, and (when a rock overhead is
// about to fall) the robot's own tile as a "wait here" goal.
package goals

import "github.com/paiv/icfpc2012/internal/core"

// at returns the cell at (x,y), or the out-of-map sentinel if either
// coordinate is outside the board.
func at(m *core.MapInfo, s core.SimState, x, y int) core.Cell {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return s.Board[y*m.Width+x]
}

// Propose scans the board and returns the set of candidate goal tiles,
// plus whether waiting in place is itself a plausible goal (some rock
// overhead is in an imminent-fall configuration).
func Propose(m *core.MapInfo, s core.SimState) (map[core.Position]bool, bool) {
	goalSet := make(map[core.Position]bool)
	waitingOK := false

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			p := core.Position{X: col, Y: row}

			switch s.At(m.Width, p) {
			case core.Lambda, core.OpenLift:
				goalSet[p] = true

			case core.Earth:
				if isDigPivot(m, s, col, row) {
					goalSet[p] = true
				}

			case core.Rock:
				left := at(m, s, col-1, row)
				right := at(m, s, col+1, row)

				if left == core.Robot && right == core.Empty {
					goalSet[p] = true
				} else if right == core.Robot && left == core.Empty {
					goalSet[p] = true
				}

				if !waitingOK {
					waitingOK = rockIsImminent(m, s, col, row, left, right)
				}
			}
		}
	}

	if waitingOK {
		goalSet[s.RobotPos] = true
	}

	return goalSet, waitingOK
}

// isDigPivot reports whether digging the earth tile at (col,row) would
// trigger or enable a rock fall, per spec.md §4.6's earth-tile rules.
func isDigPivot(m *core.MapInfo, s core.SimState, col, row int) bool {
	up := at(m, s, col, row-1)
	left := at(m, s, col-1, row)
	upLeft := at(m, s, col-1, row-1)
	right := at(m, s, col+1, row)
	left2 := at(m, s, col-2, row)
	left3 := at(m, s, col-3, row)
	right2 := at(m, s, col+2, row)
	right3 := at(m, s, col+3, row)

	isOpen := func(c core.Cell) bool {
		return c == core.Empty || c == core.Earth || c == core.Lambda
	}

	switch {
	case up == core.Rock:
		return true
	case left == core.Rock:
		return isOpen(left2)
	case right == core.Rock:
		return isOpen(right2)
	case left == core.Lambda && upLeft == core.Rock:
		return true
	case left == core.Empty && left2 == core.Rock:
		return true
	case left == core.Empty && left2 == core.Empty && left3 == core.Rock:
		return true
	case right == core.Empty && right2 == core.Rock:
		return true
	case right == core.Empty && right2 == core.Empty && right3 == core.Rock:
		return true
	}
	return false
}

// rockIsImminent reports whether the rock at (col,row) is one gravity
// tick away from falling, per spec.md §4.6's waiting_ok rule.
func rockIsImminent(m *core.MapInfo, s core.SimState, col, row int, left, right core.Cell) bool {
	down := at(m, s, col, row+1)

	switch down {
	case core.Empty:
		return true
	case core.Rock:
		downRight := at(m, s, col+1, row+1)
		downLeft := at(m, s, col-1, row+1)
		return (right == core.Empty && downRight == core.Empty) ||
			(left == core.Empty && downLeft == core.Empty)
	case core.Lambda:
		downRight := at(m, s, col+1, row+1)
		return right == core.Empty && downRight == core.Empty
	}
	return false
}
