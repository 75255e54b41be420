package ant

import "github.com/pkg/errors"

// Direction is the facing of the ant. The values are ordered clockwise so a
// clockwise turn is the successor modulo 4.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left

	numDirections = 4
)

var (
	directionGlyphs  = [numDirections]byte{'^', '>', 'v', '<'}
	directionNames   = [numDirections]string{"up", "right", "down", "left"}
	directionVectors = [numDirections][2]int{
		{-1, 0},
		{0, 1},
		{1, 0},
		{0, -1},
	}
)

// ParseDirection maps one of the glyphs '^', '>', 'v', '<' to its Direction.
func ParseDirection(glyph byte) (Direction, error) {
	for d, g := range directionGlyphs {
		if g == glyph {
			return Direction(d), nil
		}
	}
	return Up, errors.WithMessagef(ErrInvalidDirectionSymbol, "%q is not one of %q", glyph, string(directionGlyphs[:]))
}

// Valid reports whether d is one of the four canonical directions.
func (d Direction) Valid() bool { return d < numDirections }

// Glyph returns the display character for d.
func (d Direction) Glyph() byte { return directionGlyphs[d%numDirections] }

// Rotate turns d by delta quarter turns; +1 is clockwise, -1 counter-clockwise.
func (d Direction) Rotate(delta int) Direction {
	n := (int(d) + delta) % numDirections
	if n < 0 {
		n += numDirections
	}
	return Direction(n)
}

// Vector returns the (row, col) unit offset of a move in direction d.
func (d Direction) Vector() (dRow, dCol int) {
	v := directionVectors[d%numDirections]
	return v[0], v[1]
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}
