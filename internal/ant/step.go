package ant

import "langton/internal/core"

// Step advances the automaton by one transition: the cell under the ant is
// flipped, the ant turns (clockwise on White, counter-clockwise on Black) and
// then moves one cell forward.
//
// A cell holding any other value yields a *CorruptedCellError and nothing is
// changed. A move off the grid yields a *BoundaryError; the flip and the turn
// stay applied but the position is not committed.
func Step(grid *core.Grid, a *Ant) error {
	idx := grid.Index(a.row, a.col)
	cells := grid.Cells()

	var turn int
	switch cells[idx] {
	case White:
		cells[idx] = Black
		turn = 1
	case Black:
		cells[idx] = White
		turn = -1
	default:
		return &CorruptedCellError{Row: a.row, Col: a.col, Value: cells[idx]}
	}
	a.facing = a.facing.Rotate(turn)

	dRow, dCol := a.facing.Vector()
	nextRow, nextCol := a.row+dRow, a.col+dCol
	if !grid.InBounds(nextRow, nextCol) {
		return &BoundaryError{Row: a.row, Col: a.col, NextRow: nextRow, NextCol: nextCol, Facing: a.facing}
	}
	a.row, a.col = nextRow, nextCol
	return nil
}
