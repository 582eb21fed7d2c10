package sim

import "github.com/paiv/icfpc2012/internal/core"

// Run replays an entire program against an initial state, the way a
// finished planner output is scored. It caps the number of turns at
// width*height (the original engine's own runaway guard) and forces a
// final Abort if the program ends the loop without the game having
// ended on its own — so every replay produces a definite score.
func Run(m *core.MapInfo, state core.SimState, prog core.Program) core.SimState {
	s := state
	maxTurns := m.Width * m.Height
	turns := 0

	for _, mv := range prog {
		if s.IsEnded || turns >= maxTurns {
			break
		}
		s = Step(m, s, mv)
		turns++
	}

	if !s.IsEnded {
		s = Step(m, s, core.Abort)
	}

	return s
}
