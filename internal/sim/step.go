// Package sim implements the mine simulator: single-step physics,
// legal-move enumeration and whole-program replay.
package sim

import "github.com/paiv/icfpc2012/internal/core"

const (
	scoreLambda  = 50
	scoreExit    = 25
	scoreCrush   = 25
	scoreStep    = -1
)

// setCell writes newCell at index into board and folds the change into
// hash via the map's fingerprint table. A no-op write costs nothing.
func setCell(m *core.MapInfo, board []core.Cell, hash *uint64, index int, newCell core.Cell) {
	old := board[index]
	if old == newCell {
		return
	}
	*hash = m.Fingerprint.Toggle(*hash, index, old)
	*hash = m.Fingerprint.Toggle(*hash, index, newCell)
	board[index] = newCell
}

func moveRobot(m *core.MapInfo, s *core.SimState, from, to core.Position) {
	setCell(m, s.Board, &s.BoardHash, from.Y*m.Width+from.X, core.Empty)
	setCell(m, s.Board, &s.BoardHash, to.Y*m.Width+to.X, core.Robot)
	s.RobotPos = to
}

func moveRock(m *core.MapInfo, board []core.Cell, hash *uint64, from, to core.Position) {
	setCell(m, board, hash, from.Y*m.Width+from.X, core.Empty)
	setCell(m, board, hash, to.Y*m.Width+to.X, core.Rock)
}

func openLift(m *core.MapInfo, s *core.SimState) {
	idx := m.LiftPos.Y*m.Width + m.LiftPos.X
	if s.Board[idx] == core.Lift {
		setCell(m, s.Board, &s.BoardHash, idx, core.OpenLift)
	}
}

// Step advances the simulation by one robot action: movement, rock
// pushing, lift opening and the subsequent gravity cascade, matching
// the original engine's run_step with the module's own scoring
// constants (see DESIGN.md open question #1: lambda pickup scores 50,
// the exit bonus is 25 per lambda collected, and a crush cancels that
// bonus rather than granting it).
func Step(m *core.MapInfo, state core.SimState, mv core.Action) core.SimState {
	s := state.Clone()
	currentPos := s.RobotPos

	switch mv {
	case core.Left, core.Right, core.Up, core.Down:
		nextPos := currentPos.Advance(mv)

		if m.InBounds(nextPos) {
			target := s.At(m.Width, nextPos)

			switch target {
			case core.Lambda:
				s.LambdasCollected++
				s.Score += scoreLambda
				moveRobot(m, &s, currentPos, nextPos)

			case core.OpenLift:
				s.IsEnded = true
				s.Score += scoreExit * s.LambdasCollected
				moveRobot(m, &s, currentPos, nextPos)

			case core.Empty, core.Earth:
				moveRobot(m, &s, currentPos, nextPos)

			case core.Rock:
				if mv == core.Left || mv == core.Right {
					rockPos := nextPos.Advance(mv)
					if rockPos.X >= 0 && rockPos.X < m.Width && s.At(m.Width, rockPos) == core.Empty {
						moveRock(m, s.Board, &s.BoardHash, nextPos, rockPos)
						moveRobot(m, &s, currentPos, nextPos)
					}
				}

			case core.Wall, core.Lift, core.Robot:
				// blocked, no change
			}
		}

		s.Score += scoreStep

	case core.Wait:
		s.Score += scoreStep

	case core.Abort:
		s.IsEnded = true
		s.Score += scoreExit * s.LambdasCollected
	}

	if s.LambdasCollected >= m.LambdasTotal {
		openLift(m, &s)
	}

	robotDestroyed := applyGravity(m, &s)

	if !s.IsEnded && robotDestroyed {
		s.IsEnded = true
		s.Score -= scoreCrush * s.LambdasCollected
	}

	return s
}

// applyGravity runs one cascade pass over the post-move board, moving
// every unsupported rock down (straight, or diagonally around another
// rock or a lambda) and reporting whether a falling rock crushed the
// robot. It reads from the board as it stood before gravity and writes
// into a copy, matching the original's read/write split so a rock
// falling into a freshly vacated cell is never itself read as a source
// again within the same pass.
func applyGravity(m *core.MapInfo, s *core.SimState) bool {
	before := s.Board
	next := make([]core.Cell, len(before))
	copy(next, before)
	robotPos := s.RobotPos
	destroyed := false

	at := func(p core.Position) core.Cell {
		return before[p.Y*m.Width+p.X]
	}

	fall := func(from, to core.Position) {
		moveRock(m, next, &s.BoardHash, from, to)
		if to.X == robotPos.X && to.Y+1 == robotPos.Y {
			destroyed = true
		}
	}

	for row := m.Height - 2; row >= 0; row-- {
		for col := 0; col < m.Width; col++ {
			here := core.Position{X: col, Y: row}
			if at(here) != core.Rock {
				continue
			}
			below := core.Position{X: col, Y: row + 1}

			switch at(below) {
			case core.Empty:
				fall(here, below)

			case core.Rock:
				right := core.Position{X: col + 1, Y: row}
				rightBelow := core.Position{X: col + 1, Y: row + 1}
				left := core.Position{X: col - 1, Y: row}
				leftBelow := core.Position{X: col - 1, Y: row + 1}

				if col+1 < m.Width && at(right) == core.Empty && at(rightBelow) == core.Empty {
					fall(here, rightBelow)
				} else if col-1 >= 0 && at(left) == core.Empty && at(leftBelow) == core.Empty {
					fall(here, leftBelow)
				}

			case core.Lambda:
				right := core.Position{X: col + 1, Y: row}
				rightBelow := core.Position{X: col + 1, Y: row + 1}
				if col+1 < m.Width && at(right) == core.Empty && at(rightBelow) == core.Empty {
					fall(here, rightBelow)
				}
			}
		}
	}

	s.Board = next
	return destroyed
}
