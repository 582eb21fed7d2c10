package sim

import "github.com/paiv/icfpc2012/internal/core"

// LegalMoves enumerates the actions that change the board in a useful
// way from the current state: directional moves into anything but a
// wall, the lift, another robot, or an immovable rock, plus Wait, in
// the fixed order left/right/up/down/wait (spec.md §4.4). Returns nil
// once the game has ended or prefixLen has reached the search depth
// cap width*height, and omits any action present in exclude. Abort is
// deliberately never generated here — it always ends the game, so goal
// search and planner rollouts only ever choose it implicitly by running
// out of other options, matching every original driver's use of
// legal_moves() as the in-game move set.
func LegalMoves(m *core.MapInfo, s core.SimState, prefixLen int, exclude map[core.Action]bool) []core.Action {
	if s.IsEnded || prefixLen >= m.Width*m.Height {
		return nil
	}

	moves := make([]core.Action, 0, 5)

	for _, mv := range [...]core.Action{core.Left, core.Right, core.Up, core.Down} {
		if exclude[mv] {
			continue
		}

		next := s.RobotPos.Advance(mv)
		if !m.InBounds(next) {
			continue
		}

		switch s.At(m.Width, next) {
		case core.Empty, core.Earth, core.Lambda, core.OpenLift:
			moves = append(moves, mv)

		case core.Rock:
			if mv != core.Left && mv != core.Right {
				continue
			}
			rockPos := next.Advance(mv)
			if rockPos.X >= 0 && rockPos.X < m.Width && s.At(m.Width, rockPos) == core.Empty {
				moves = append(moves, mv)
			}

		case core.Wall, core.Lift, core.Robot:
			// blocked
		}
	}

	if !exclude[core.Wait] {
		moves = append(moves, core.Wait)
	}
	return moves
}
