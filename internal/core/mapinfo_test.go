package core

import "testing"

func TestReadMapBasic(t *testing.T) {
	text := "#####\n#R \\#\n#   #\n# L #\n#####\n"
	m, sim := ReadMap(text)

	if m.Width != 5 || m.Height != 5 {
		t.Fatalf("got %dx%d, want 5x5", m.Width, m.Height)
	}
	if m.LambdasTotal != 1 {
		t.Fatalf("got %d lambdas, want 1", m.LambdasTotal)
	}
	if sim.RobotPos != (Position{X: 1, Y: 1}) {
		t.Fatalf("got robot at %v, want {1 1}", sim.RobotPos)
	}
	if m.LiftPos != (Position{X: 2, Y: 3}) {
		t.Fatalf("got lift at %v, want {2 3}", m.LiftPos)
	}
	if sim.At(m.Width, sim.RobotPos) != Robot {
		t.Fatalf("robot cell not marked Robot")
	}
}

func TestReadMapRaggedRowsPadded(t *testing.T) {
	text := "#R\n#   \\\n##\n"
	m, _ := ReadMap(text)

	if m.Width != 5 {
		t.Fatalf("got width %d, want 5", m.Width)
	}
	if m.Height != 3 {
		t.Fatalf("got height %d, want 3", m.Height)
	}
}

func TestReadMapStopsAtBlankLine(t *testing.T) {
	text := "#R#\n\nextra garbage that must be ignored"
	m, _ := ReadMap(text)

	if m.Height != 1 {
		t.Fatalf("got height %d, want 1 (blank line terminates map)", m.Height)
	}
}

func TestReadMapStopsAtUnrecognizedByte(t *testing.T) {
	text := "#R#\n#Z#\n"
	m, _ := ReadMap(text)

	if m.Height != 2 {
		t.Fatalf("got height %d, want 2 (parse stops at the bad byte on row 2, keeping the cell before it)", m.Height)
	}
}

func TestReadProgramRoundTrip(t *testing.T) {
	cases := []string{"LLUUDDWWA", "", "LRUDWA\nignored-tail"}
	for _, s := range cases {
		prog := ReadProgram(s)
		if got := prog.String(); got != ReadProgram(got).String() {
			t.Fatalf("round trip mismatch for %q: got %q", s, got)
		}
	}
}

func TestReadMapEmptyInputYieldsZeroByZero(t *testing.T) {
	m, sim := ReadMap("")

	if m.Width != 0 || m.Height != 0 {
		t.Fatalf("got %dx%d, want 0x0", m.Width, m.Height)
	}
	if len(sim.Board) != 0 {
		t.Fatalf("got board of length %d, want 0", len(sim.Board))
	}
}

func TestReadMapSingleUnrecognizedByteYieldsZeroByZero(t *testing.T) {
	m, _ := ReadMap("Z")

	if m.Width != 0 || m.Height != 0 {
		t.Fatalf("got %dx%d, want 0x0", m.Width, m.Height)
	}
}

func TestReadMapCarriageReturnIgnored(t *testing.T) {
	withCR := "#####\r\n#R \\#\r\n#   #\r\n# L #\r\n#####\r\n"
	without := "#####\n#R \\#\n#   #\n# L #\n#####\n"

	m1, s1 := ReadMap(withCR)
	m2, s2 := ReadMap(without)

	if m1.Width != m2.Width || m1.Height != m2.Height {
		t.Fatalf("dims differ: %dx%d vs %dx%d", m1.Width, m1.Height, m2.Width, m2.Height)
	}
	if m1.LiftPos != m2.LiftPos || m1.LambdasTotal != m2.LambdasTotal {
		t.Fatalf("map metadata differs between CR and non-CR input")
	}
	if s1.RobotPos != s2.RobotPos {
		t.Fatalf("robot position differs between CR and non-CR input")
	}
	for i := range s1.Board {
		if s1.Board[i] != s2.Board[i] {
			t.Fatalf("board cell %d differs between CR and non-CR input", i)
		}
	}
}

func TestRenderBoardRoundTrips(t *testing.T) {
	text := "#####\n#R \\#\n#   #\n# L #\n#####\n"
	m, sim := ReadMap(text)

	rendered := RenderBoard(m, sim.Board)
	m2, sim2 := ReadMap(rendered)

	if m2.Width != m.Width || m2.Height != m.Height {
		t.Fatalf("dims changed across round trip: got %dx%d, want %dx%d", m2.Width, m2.Height, m.Width, m.Height)
	}
	for i := range sim.Board {
		if sim.Board[i] != sim2.Board[i] {
			t.Fatalf("board cell %d changed across round trip: got %v, want %v", i, sim2.Board[i], sim.Board[i])
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{3, 4}, 7},
		{Position{3, 4}, Position{0, 0}, 7},
	}
	for _, tc := range tests {
		if got := ManhattanDistance(tc.a, tc.b); got != tc.want {
			t.Fatalf("ManhattanDistance(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
