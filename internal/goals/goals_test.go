package goals

import (
	"testing"

	"github.com/paiv/icfpc2012/internal/core"
)

func TestProposeFindsLambdaNotClosedLift(t *testing.T) {
	m, s := core.ReadMap("#####\n#R\\L#\n#####\n")

	set, waitingOK := Propose(m, s)

	if !set[core.Position{X: 2, Y: 1}] {
		t.Fatalf("lambda tile should be a goal")
	}
	if set[core.Position{X: 3, Y: 1}] {
		t.Fatalf("closed lift tile should not be a goal")
	}
	if waitingOK {
		t.Fatalf("no rock on this board, waiting should not be proposed")
	}
}

func TestProposeFindsPushableRock(t *testing.T) {
	m, s := core.ReadMap("#####\n#R* #\n#####\n")

	set, _ := Propose(m, s)

	if !set[core.Position{X: 2, Y: 1}] {
		t.Fatalf("rock adjacent to robot with empty far side should be a goal")
	}
}

func TestProposeFindsEarthPivotUnderRock(t *testing.T) {
	m, s := core.ReadMap("#####\n#*  #\n#.R #\n#####\n")

	set, _ := Propose(m, s)

	if !set[core.Position{X: 1, Y: 2}] {
		t.Fatalf("earth tile directly under a rock should be a dig-pivot goal")
	}
}

func TestProposeWaitingOKWhenRockAboutToFall(t *testing.T) {
	m, s := core.ReadMap("#####\n#*  #\n# R #\n#####\n")

	_, waitingOK := Propose(m, s)

	if !waitingOK {
		t.Fatalf("rock with empty cell below should mark waiting as plausible")
	}
}

func TestProposeNoWaitingWhenRockSuspended(t *testing.T) {
	m, s := core.ReadMap("#####\n#*# #\n#R# #\n#####\n")

	_, waitingOK := Propose(m, s)

	if waitingOK {
		t.Fatalf("rock boxed in by walls cannot fall, waiting should not be proposed")
	}
}
