package planner

import (
	"testing"
	"time"

	"github.com/paiv/icfpc2012/internal/core"
)

func noCancel() bool { return false }

const trivialMap = "#####\n#R\\L#\n#####\n"

func TestInitialStateNotWinUntilOnLift(t *testing.T) {
	m, s := core.ReadMap(trivialMap)
	init := Initial(m, s)
	if init.IsWin {
		t.Fatal("robot starts off the lift, should not be a win")
	}
}

func TestAdvanceAppendsProgramAndDetectsWin(t *testing.T) {
	m, s := core.ReadMap(trivialMap)
	init := Initial(m, s)

	afterLambda := Advance(m, init, core.Right)
	if len(afterLambda.Prog) != 1 || afterLambda.Prog[0] != core.Right {
		t.Fatalf("expected 1-move program ending in Right, got %v", afterLambda.Prog)
	}

	onLift := Advance(m, afterLambda, core.Right)
	if !onLift.IsWin {
		t.Fatalf("expected win once robot reaches the lift, state=%+v", onLift.Sim)
	}
}

func TestBFSGoalPlanReachesLift(t *testing.T) {
	m, s := core.ReadMap(trivialMap)
	init := Initial(m, s)

	best := BFSGoalPlan(m, init, 2*time.Second, noCancel, nil)
	if best.Sim.Score <= 0 {
		t.Fatalf("expected a positive score collecting lambda+exit, got %d", best.Sim.Score)
	}
}

func TestUCTMovePrefixImprovesOnInitial(t *testing.T) {
	m, s := core.ReadMap(trivialMap)
	init := Initial(m, s)

	best := UCTMovePrefix(m, init, 500*time.Millisecond, 2000, 2000, HeuristicDefault, noCancel, nil)
	if best.Sim.Score <= init.Sim.Score {
		t.Fatalf("expected UCT to improve score above %d, got %d", init.Sim.Score, best.Sim.Score)
	}
}

func TestUCTMovePrefixVarianceHeuristicRuns(t *testing.T) {
	m, s := core.ReadMap(trivialMap)
	init := Initial(m, s)

	best := UCTMovePrefix(m, init, 200*time.Millisecond, 500, 500, HeuristicVariance, noCancel, nil)
	if best.Sim.Score < init.Sim.Score {
		t.Fatalf("variance heuristic regressed score below initial %d, got %d", init.Sim.Score, best.Sim.Score)
	}
}

func TestRandomDiveReachesLift(t *testing.T) {
	m, s := core.ReadMap(trivialMap)
	init := Initial(m, s)

	best := RandomDive(m, init, time.Second, noCancel, nil)
	if best.Sim.Score <= 0 {
		t.Fatalf("expected random dive to find a positive score, got %d", best.Sim.Score)
	}
}

func TestGoalUCTReachesLift(t *testing.T) {
	m, s := core.ReadMap(trivialMap)
	init := Initial(m, s)

	best := GoalUCT(m, init, time.Second, 500, HeuristicDefault, noCancel, nil)
	if best.Sim.Score <= 0 {
		t.Fatalf("expected goal UCT to find a positive score, got %d", best.Sim.Score)
	}
}

func TestRetryKeepsBestAcrossAttempts(t *testing.T) {
	calls := 0
	driver := func(budget time.Duration, cancel func() bool) State {
		calls++
		return State{Sim: core.SimState{Score: calls * 10}}
	}

	best := Retry(3, 300*time.Millisecond, noCancel, driver)
	if best.Sim.Score != calls*10 {
		t.Fatalf("expected retry to keep the highest-scoring attempt, got %d after %d calls", best.Sim.Score, calls)
	}
}

func TestRunDispatchesByStrategy(t *testing.T) {
	m, s := core.ReadMap(trivialMap)
	init := Initial(m, s)

	cfg := Config{Strategy: StrategyBFS, PoolCap: 100, MemoCap: 100, Retries: 1}
	best, err := Run(m, init, cfg, time.Second, noCancel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best.Sim.Score <= 0 {
		t.Fatalf("expected positive score from bfs strategy, got %d", best.Sim.Score)
	}
}

func TestBFSGoalPlanReportsProgress(t *testing.T) {
	m, s := core.ReadMap(trivialMap)
	init := Initial(m, s)

	calls := 0
	progress := func(best State, nodesExplored int) { calls++ }

	BFSGoalPlan(m, init, 2*time.Second, noCancel, progress)
	if calls == 0 {
		t.Fatal("expected at least one progress callback (the final flush), got none")
	}
}

func TestRunThreadsProgressFromConfig(t *testing.T) {
	m, s := core.ReadMap(trivialMap)
	init := Initial(m, s)

	calls := 0
	cfg := Config{
		Strategy: StrategyBFS,
		Retries:  1,
		Progress: func(best State, nodesExplored int) { calls++ },
	}
	if _, err := Run(m, init, cfg, time.Second, noCancel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls == 0 {
		t.Fatal("expected Run to forward Config.Progress into the driver")
	}
}

func TestRunRejectsUnknownStrategy(t *testing.T) {
	m, s := core.ReadMap(trivialMap)
	init := Initial(m, s)

	cfg := Config{Strategy: "nonsense"}
	if _, err := Run(m, init, cfg, time.Millisecond, noCancel); err == nil {
		t.Fatal("expected an error for an unknown strategy")
	}
}
