package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridZeroed(t *testing.T) {
	g := NewGrid(3, 4)
	require.Equal(t, 3, g.Rows)
	require.Equal(t, 4, g.Cols)
	require.Len(t, g.Cells(), 12)
	for i, v := range g.Cells() {
		assert.Zerof(t, v, "cell %d", i)
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -2)
	assert.Equal(t, 1, g.Rows)
	assert.Equal(t, 1, g.Cols)
	assert.Len(t, g.Cells(), 1)
}

func TestGridRowMajor(t *testing.T) {
	g := NewGrid(2, 3)
	g.Set(1, 2, 7)
	assert.Equal(t, 5, g.Index(1, 2))
	assert.Equal(t, uint8(7), g.Cells()[5])
	assert.Equal(t, uint8(7), g.At(1, 2))
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid(2, 3)
	for _, rc := range [][2]int{{0, 0}, {1, 2}, {0, 2}, {1, 0}} {
		assert.Truef(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		assert.Falsef(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 1, 1)
	c := g.Clone()
	c.Set(0, 1, 0)
	c.Set(1, 1, 1)
	assert.Equal(t, []uint8{0, 1, 0, 0}, g.Cells())
	assert.Equal(t, []uint8{0, 0, 0, 1}, c.Cells())

	g.Clear()
	assert.Equal(t, []uint8{0, 0, 0, 0}, g.Cells())
}
