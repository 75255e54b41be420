package ant

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	cases := []struct {
		glyph byte
		want  Direction
	}{
		{'^', Up},
		{'>', Right},
		{'v', Down},
		{'<', Left},
	}
	for _, tc := range cases {
		t.Run(string(tc.glyph), func(t *testing.T) {
			d, err := ParseDirection(tc.glyph)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d)
			assert.Equal(t, tc.glyph, d.Glyph(), "glyph must round-trip")
		})
	}
}

func TestParseDirectionRejectsUnknownGlyph(t *testing.T) {
	for _, glyph := range []byte{'V', 'x', ' ', '.', '#', 0} {
		_, err := ParseDirection(glyph)
		require.Errorf(t, err, "glyph %q", glyph)
		assert.True(t, errors.Is(err, ErrInvalidDirectionSymbol))
		assert.True(t, IsInputError(err))
	}
}

func TestRotate(t *testing.T) {
	assert.Equal(t, Right, Up.Rotate(1))
	assert.Equal(t, Down, Right.Rotate(1))
	assert.Equal(t, Left, Down.Rotate(1))
	assert.Equal(t, Up, Left.Rotate(1))

	assert.Equal(t, Left, Up.Rotate(-1))
	assert.Equal(t, Up, Right.Rotate(-1))
	assert.Equal(t, Right, Down.Rotate(-1))
	assert.Equal(t, Down, Left.Rotate(-1))

	for d := Up; d <= Left; d++ {
		assert.Equal(t, d, d.Rotate(1).Rotate(-1))
		assert.Equal(t, d, d.Rotate(4))
		assert.Equal(t, d, d.Rotate(-8))
	}
}

func TestVector(t *testing.T) {
	cases := map[Direction][2]int{
		Up:    {-1, 0},
		Right: {0, 1},
		Down:  {1, 0},
		Left:  {0, -1},
	}
	for d, want := range cases {
		dRow, dCol := d.Vector()
		assert.Equalf(t, want, [2]int{dRow, dCol}, "Vector(%s)", d)
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "invalid", Direction(9).String())
	assert.False(t, Direction(4).Valid())
}
