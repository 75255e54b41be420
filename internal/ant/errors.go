package ant

import (
	"fmt"

	"github.com/pkg/errors"
)

// Input errors: the caller has to change its arguments.
var (
	ErrInvalidDirectionSymbol = errors.New("invalid direction symbol")
	ErrInvalidArgument        = errors.New("invalid argument")
)

// Run errors: the simulation cannot continue.
var (
	ErrBoundaryViolation  = errors.New("ant left the grid")
	ErrCorruptedGridState = errors.New("corrupted grid state")
)

// IsInputError reports whether err was caused by caller input rather than by
// the run itself.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidDirectionSymbol) || errors.Is(err, ErrInvalidArgument)
}

// BoundaryError describes a move that would have taken the ant off the grid.
// Row and Col are the last valid position; the cell there has already been
// flipped and Facing is the direction after the turn.
type BoundaryError struct {
	Row, Col         int
	NextRow, NextCol int
	Facing           Direction
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("%s: moving %s from (%d, %d) to (%d, %d)",
		ErrBoundaryViolation, e.Facing, e.Row, e.Col, e.NextRow, e.NextCol)
}

func (e *BoundaryError) Unwrap() error { return ErrBoundaryViolation }

// CorruptedCellError reports a grid cell holding neither White nor Black.
type CorruptedCellError struct {
	Row, Col int
	Value    uint8
}

func (e *CorruptedCellError) Error() string {
	return fmt.Sprintf("%s: cell (%d, %d) holds %d", ErrCorruptedGridState, e.Row, e.Col, e.Value)
}

func (e *CorruptedCellError) Unwrap() error { return ErrCorruptedGridState }

// StepError attaches the 1-based number of the failing step to a run error.
type StepError struct {
	Step int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
