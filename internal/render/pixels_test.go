package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 9, G: 8, B: 7, A: 255},
	}
	cells := []uint8{0, 1, 5}
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)
	assert.Equal(t, []byte{
		1, 2, 3, 255,
		9, 8, 7, 255,
		9, 8, 7, 255,
	}, buf)
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 1, 1, 1, 2, 2, 2, 2}
	fillPaletteRGBA(buf, []uint8{0, 1}, nil)
	assert.Equal(t, make([]byte, 8), buf)
}
