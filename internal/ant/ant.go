package ant

import (
	"langton/internal/core"

	"github.com/pkg/errors"
)

// Cell colors stored in the grid.
const (
	White uint8 = 0
	Black uint8 = 1
)

// Ant is the position and facing of the walker. Its fields can only be
// changed by Step.
type Ant struct {
	row, col int
	facing   Direction
}

// NewAnt places an ant at (row, col) facing the given direction. The position
// must lie inside grid.
func NewAnt(grid *core.Grid, row, col int, facing Direction) (Ant, error) {
	if !facing.Valid() {
		return Ant{}, errors.WithMessagef(ErrInvalidDirectionSymbol, "direction %d", facing)
	}
	if !grid.InBounds(row, col) {
		return Ant{}, errors.WithMessagef(ErrInvalidArgument,
			"ant position (%d, %d) outside %dx%d grid", row, col, grid.Rows, grid.Cols)
	}
	return Ant{row: row, col: col, facing: facing}, nil
}

// Row returns the ant's row.
func (a Ant) Row() int { return a.row }

// Col returns the ant's column.
func (a Ant) Col() int { return a.col }

// Facing returns the ant's direction.
func (a Ant) Facing() Direction { return a.facing }
