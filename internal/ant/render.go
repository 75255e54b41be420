package ant

import (
	"strings"

	"langton/internal/core"
)

// Display characters for the two cell colors.
const (
	WhiteGlyph = '.'
	BlackGlyph = '#'
)

// Frame is a display-ready copy of a grid, one byte per cell.
type Frame [][]byte

// Render returns a new frame of the grid's dimensions with the ant's glyph
// drawn over its cell. The grid is not modified.
func Render(grid *core.Grid, a Ant) Frame {
	frame := make(Frame, grid.Rows)
	cells := grid.Cells()
	for r := range frame {
		row := make([]byte, grid.Cols)
		for c := range row {
			row[c] = cellGlyph(cells[grid.Index(r, c)])
		}
		frame[r] = row
	}
	frame[a.row][a.col] = a.facing.Glyph()
	return frame
}

func cellGlyph(v uint8) byte {
	if v == Black {
		return BlackGlyph
	}
	return WhiteGlyph
}

// Rows returns the frame as one string per row.
func (f Frame) Rows() []string {
	rows := make([]string, len(f))
	for i, row := range f {
		rows[i] = string(row)
	}
	return rows
}

func (f Frame) String() string { return strings.Join(f.Rows(), "\n") }
