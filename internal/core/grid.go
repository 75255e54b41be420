package core

// Grid stores a fixed-size 2D grid of byte-sized cell values in row-major
// order. Coordinates are (row, col) with row 0 at the top.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates a zeroed grid with the given dimensions. Callers are
// expected to validate the dimensions; non-positive values are clamped to 1 so
// the grid is never empty.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the value stored at (row, col). The coordinates must be in bounds.
func (g *Grid) At(row, col int) uint8 { return g.data[g.Index(row, col)] }

// Set stores v at (row, col). The coordinates must be in bounds.
func (g *Grid) Set(row, col int, v uint8) { g.data[g.Index(row, col)] = v }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{Rows: g.Rows, Cols: g.Cols, data: append([]uint8(nil), g.data...)}
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
