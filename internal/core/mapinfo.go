package core

// MapInfo is the static, immutable part of a mine: its dimensions, the
// lift location and the total lambda count. It never changes once
// parsed, unlike SimState which is rebuilt on every simulator step.
type MapInfo struct {
	Width, Height int
	LiftPos       Position
	LambdasTotal  int
	Fingerprint   *Fingerprint
}

// index returns the flat board offset for a board position.
func (m *MapInfo) index(p Position) int {
	return p.Y*m.Width + p.X
}

// InBounds reports whether a position lies on the board.
func (m *MapInfo) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// ReadMap parses a mine map from text. Parsing is lenient to match the
// original program-format contract: it stops at the first blank line or
// unrecognized byte rather than returning an error, and short rows are
// padded with Empty cells up to the widest row seen.
func ReadMap(text string) (*MapInfo, SimState) {
	var rows [][]Cell
	row := []Cell{}
	maxWidth := 0
	robot := Position{}
	lift := Position{}
	lambdas := 0

	flushRow := func() {
		if len(row) > maxWidth {
			maxWidth = len(row)
		}
		rows = append(rows, row)
		row = []Cell{}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '\n':
			if len(row) == 0 {
				goto done
			}
			flushRow()
		case '\r':
			// ignored
		case 'R':
			robot = Position{X: len(row), Y: len(rows)}
			row = append(row, Robot)
		case '\\':
			lambdas++
			row = append(row, Lambda)
		case 'L', 'O':
			lift = Position{X: len(row), Y: len(rows)}
			row = append(row, Cell(c))
		case ' ', '.', '#', '*':
			row = append(row, Cell(c))
		default:
			goto done
		}
	}
done:
	if len(row) > 0 {
		flushRow()
	}

	height := len(rows)
	width := maxWidth
	board := make([]Cell, width*height)
	for i := range board {
		board[i] = Empty
	}
	for y, r := range rows {
		for x, c := range r {
			board[y*width+x] = c
		}
	}

	m := &MapInfo{
		Width:        width,
		Height:       height,
		LiftPos:      lift,
		LambdasTotal: lambdas,
		Fingerprint:  NewFingerprintRandom(width * height),
	}

	sim := SimState{
		Board:    board,
		RobotPos: robot,
	}
	sim.BoardHash = m.Fingerprint.Hash(board)

	return m, sim
}

// RenderBoard writes board back out in the map-text format ReadMap
// accepts: one row per line, LF-terminated, no trailing blank line.
// read_map(RenderBoard(m, b)) reproduces b for any board whose rows all
// share m.Width (ReadMap itself pads ragged input to that invariant).
func RenderBoard(m *MapInfo, board []Cell) string {
	buf := make([]byte, 0, (m.Width+1)*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			buf = append(buf, byte(board[y*m.Width+x]))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
