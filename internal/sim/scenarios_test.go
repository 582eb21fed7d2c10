package sim

import (
	"testing"

	"github.com/paiv/icfpc2012/internal/core"
)

// Six concrete end-to-end maps exercising lambda pickup, lift exit,
// rock pushes and rock-fall crush together rather than in isolation.

func TestScenarioTrivialLambdaAndLift(t *testing.T) {
	m, s := core.ReadMap("L\\R\n")
	s = Run(m, s, core.ReadProgram("LL"))

	if !s.IsEnded {
		t.Fatalf("expected game to end")
	}
	if s.LambdasCollected != 1 {
		t.Fatalf("lambdas collected = %d, want 1", s.LambdasCollected)
	}
	if s.Score != 73 {
		t.Fatalf("score = %d, want 73", s.Score)
	}
}

func TestScenarioWaitThenWasteHitsTurnCap(t *testing.T) {
	m, s := core.ReadMap("L\\R\n")
	s = Run(m, s, core.ReadProgram("WWWLL"))

	if !s.IsEnded {
		t.Fatalf("expected game to end via forced abort at the turn cap")
	}
	if s.LambdasCollected != 0 {
		t.Fatalf("lambdas collected = %d, want 0 (turn cap of width*height=3 stops before LL runs)", s.LambdasCollected)
	}
	if s.Score != -3 {
		t.Fatalf("score = %d, want -3", s.Score)
	}
}

func TestScenarioRockFallsOntoRobot(t *testing.T) {
	m, s := core.ReadMap("* \n  \n R\nL#\n")
	s = Step(m, s, core.Left)

	if !s.IsEnded {
		t.Fatalf("expected crush to end the game")
	}
	if s.Score != -1 {
		t.Fatalf("score = %d, want -1", s.Score)
	}
}

func TestScenarioSinglePush(t *testing.T) {
	m, s := core.ReadMap("* \n R\nL#\n")

	s = Step(m, s, core.Left)
	if s.IsEnded {
		t.Fatalf("game should not have ended after the first move")
	}
	if s.RobotPos != (core.Position{X: 0, Y: 1}) {
		t.Fatalf("robot at %v, want {0 1}", s.RobotPos)
	}
	if s.Score != -1 {
		t.Fatalf("score after first move = %d, want -1", s.Score)
	}

	s = Step(m, s, core.Down)
	if !s.IsEnded {
		t.Fatalf("expected game to end after the second move")
	}
	if s.Score != -2 {
		t.Fatalf("score = %d, want -2", s.Score)
	}
}

func TestScenarioSafeWait(t *testing.T) {
	m, s := core.ReadMap("   \n * \n.*R\nL##\n")
	s = Step(m, s, core.Wait)

	if s.IsEnded {
		t.Fatalf("suspended rock cannot legally slide, game should continue")
	}
	if s.RobotPos != (core.Position{X: 2, Y: 2}) {
		t.Fatalf("robot at %v, want {2 2}", s.RobotPos)
	}
	if s.Score != -1 {
		t.Fatalf("score = %d, want -1", s.Score)
	}
}

func TestScenarioLambdaThenLiftViaPushedRock(t *testing.T) {
	m, s := core.ReadMap("* \n  \n  \nL\\R\n")
	s = Run(m, s, core.ReadProgram("LL"))

	if !s.IsEnded {
		t.Fatalf("expected game to end")
	}
	if s.LambdasCollected != 1 {
		t.Fatalf("lambdas collected = %d, want 1", s.LambdasCollected)
	}
	if s.Score != 73 {
		t.Fatalf("score = %d, want 73", s.Score)
	}
}
