package sim

import (
	"testing"

	"github.com/paiv/icfpc2012/internal/core"
)

func TestWalkIntoEmptyCostsOnePoint(t *testing.T) {
	m, s := core.ReadMap("#####\n#R  #\n#####\n")
	s = Step(m, s, core.Right)

	if s.Score != -1 {
		t.Fatalf("score = %d, want -1", s.Score)
	}
	if s.RobotPos != (core.Position{X: 2, Y: 1}) {
		t.Fatalf("robot at %v, want {2 1}", s.RobotPos)
	}
}

func TestCollectLambdaScoresFifty(t *testing.T) {
	m, s := core.ReadMap("#####\n#R\\ #\n#####\n")
	s = Step(m, s, core.Right)

	if s.LambdasCollected != 1 {
		t.Fatalf("lambdas collected = %d, want 1", s.LambdasCollected)
	}
	if s.Score != scoreLambda-1 {
		t.Fatalf("score = %d, want %d", s.Score, scoreLambda-1)
	}
}

func TestLiftOpensOnlyAfterAllLambdas(t *testing.T) {
	m, s := core.ReadMap("#####\n#R\\L#\n#####\n")

	if s.At(m.Width, m.LiftPos) != core.Lift {
		t.Fatalf("lift should start closed")
	}

	s = Step(m, s, core.Right) // collect the lambda
	if s.At(m.Width, m.LiftPos) != core.OpenLift {
		t.Fatalf("lift should open once lambdas collected == total")
	}
}

func TestWalkIntoOpenLiftEndsGameWithExitBonus(t *testing.T) {
	m, s := core.ReadMap("#####\n#R\\L#\n#####\n")
	s = Step(m, s, core.Right) // collect lambda, opens lift
	s = Step(m, s, core.Right) // walk into the now-open lift

	if !s.IsEnded {
		t.Fatalf("game should have ended")
	}
	want := scoreLambda - 1 + scoreExit*1 - 1
	if s.Score != want {
		t.Fatalf("score = %d, want %d", s.Score, want)
	}
}

func TestPushRockIntoEmptySpace(t *testing.T) {
	m, s := core.ReadMap("######\n#R* ##\n######\n")
	s = Step(m, s, core.Right)

	if s.RobotPos != (core.Position{X: 2, Y: 1}) {
		t.Fatalf("robot at %v, want {2 1}", s.RobotPos)
	}
	if s.At(m.Width, core.Position{X: 3, Y: 1}) != core.Rock {
		t.Fatalf("rock should have been pushed one cell right")
	}
}

func TestRockCannotBePushedIntoWall(t *testing.T) {
	m, s := core.ReadMap("#####\n#R*##\n#####\n")
	s = Step(m, s, core.Right)

	if s.RobotPos != (core.Position{X: 1, Y: 1}) {
		t.Fatalf("robot should not move, rock is blocked")
	}
}

func TestRockFallsStraightDownIntoEmpty(t *testing.T) {
	// Rock at (2,1) over empty at (2,2); robot elsewhere so it isn't crushed.
	m, s := core.ReadMap("#####\n#R* #\n#   #\n#####\n")
	s = Step(m, s, core.Wait)

	if s.At(m.Width, core.Position{X: 2, Y: 2}) != core.Rock {
		t.Fatalf("rock should have fallen one row")
	}
	if s.At(m.Width, core.Position{X: 2, Y: 1}) != core.Empty {
		t.Fatalf("rock's old cell should be empty")
	}
}

func TestFallingRockCrushesRobotAndCancelsBonus(t *testing.T) {
	// A rock sits three rows above the robot's row; the robot first
	// steps onto a lambda directly below the rock's column (the rock
	// falls one row during that step), then waits while the rock falls
	// into the cell immediately above it.
	m, s := core.ReadMap("#####\n# * #\n#   #\n#   #\n#R\\ #\n#####\n")
	s = Step(m, s, core.Right)
	if s.LambdasCollected != 1 {
		t.Fatalf("expected to collect the lambda first, got %d collected", s.LambdasCollected)
	}
	before := s.Score
	s = Step(m, s, core.Wait)

	if !s.IsEnded {
		t.Fatalf("crush should end the game")
	}
	want := before - scoreCrush*s.LambdasCollected - 1
	if s.Score != want {
		t.Fatalf("score = %d, want %d (crush must cancel the exit bonus)", s.Score, want)
	}
}

func TestAbortEndsGameWithExitBonus(t *testing.T) {
	m, s := core.ReadMap("#####\n#R\\ #\n#####\n")
	s = Step(m, s, core.Right)
	s = Step(m, s, core.Abort)

	if !s.IsEnded {
		t.Fatalf("abort should end the game")
	}
}

func TestBoardHashChangesOnMutationAndIsReproducible(t *testing.T) {
	m, s0 := core.ReadMap("#####\n#R  #\n#####\n")
	s1 := Step(m, s0, core.Right)

	if s1.BoardHash == s0.BoardHash {
		t.Fatalf("hash should change when the board changes")
	}

	recomputed := m.Fingerprint.Hash(s1.Board)
	if recomputed != s1.BoardHash {
		t.Fatalf("incremental hash %d does not match recomputed hash %d", s1.BoardHash, recomputed)
	}
}

func TestRunForcesAbortWhenProgramEndsEarly(t *testing.T) {
	m, s := core.ReadMap("#####\n#R  #\n#####\n")
	final := Run(m, s, core.Program{core.Wait})

	if !final.IsEnded {
		t.Fatalf("Run must end the game even if the program doesn't abort explicitly")
	}
}

func TestLegalMovesExcludesBlockedDirections(t *testing.T) {
	m, s := core.ReadMap("#####\n#R*##\n#####\n")
	moves := LegalMoves(m, s, 0, nil)

	for _, mv := range moves {
		if mv == core.Right {
			t.Fatalf("pushing the rock into a wall should not be legal")
		}
	}
	found := false
	for _, mv := range moves {
		if mv == core.Wait {
			found = true
		}
	}
	if !found {
		t.Fatalf("Wait should always be legal")
	}
}

func TestLegalMovesEmptyWhenEnded(t *testing.T) {
	m, s := core.ReadMap("#####\n#R  #\n#####\n")
	s.IsEnded = true

	if moves := LegalMoves(m, s, 0, nil); moves != nil {
		t.Fatalf("ended state must have no legal moves, got %v", moves)
	}
}

func TestLegalMovesEmptyAtDepthCap(t *testing.T) {
	m, s := core.ReadMap("#####\n#R  #\n#####\n")

	if moves := LegalMoves(m, s, m.Width*m.Height, nil); moves != nil {
		t.Fatalf("prefix at depth cap must have no legal moves, got %v", moves)
	}
}

func TestLegalMovesHonorsExclude(t *testing.T) {
	m, s := core.ReadMap("#####\n#R  #\n#####\n")
	exclude := map[core.Action]bool{core.Right: true, core.Wait: true}

	for _, mv := range LegalMoves(m, s, 0, exclude) {
		if mv == core.Right || mv == core.Wait {
			t.Fatalf("excluded action %v returned", mv)
		}
	}
}
