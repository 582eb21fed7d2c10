// Package state manages the visualization state.
package state

import (
	"github.com/paiv/icfpc2012/internal/core"
	"github.com/paiv/icfpc2012/internal/planner"
)

// State holds everything the visualizer needs to replay a recorded run:
// the static map, the sequence of simulated states the program produced
// (one per move, including the initial state), and the playback cursor
// into that sequence.
type State struct {
	Map      *core.MapInfo
	Program  core.Program
	Frames   []core.SimState
	Playback *PlaybackState
}

// Record replays prog against the initial state one move at a time,
// capturing every intermediate SimState so the visualizer can scrub
// back and forth without re-simulating.
func Record(m *core.MapInfo, initial core.SimState, prog core.Program) *State {
	frames := make([]core.SimState, 0, len(prog)+1)
	frames = append(frames, initial)

	cur := planner.Initial(m, initial)
	for _, mv := range prog {
		if cur.Sim.IsEnded {
			break
		}
		cur = planner.Advance(m, cur, mv)
		frames = append(frames, cur.Sim)
	}

	return &State{
		Map:      m,
		Program:  prog,
		Frames:   frames,
		Playback: NewPlaybackState(len(frames) - 1),
	}
}

// Current returns the SimState at the current playback frame.
func (s *State) Current() core.SimState {
	return s.Frames[s.Playback.Frame]
}
