package ant

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFinalGridGolden(t *testing.T) {
	frame, err := ComputeFinalGrid(3, 4, 1, 1, '<', 7)
	require.NoError(t, err)
	assert.Equal(t, []string{
		".##.",
		"^.#.",
		"##..",
	}, frame.Rows())
}

func TestComputeFinalGridProgression(t *testing.T) {
	want := [][]string{
		{"....", ".<..", "...."},
		{".^..", ".#..", "...."},
		{".#>.", ".#..", "...."},
		{".##.", ".#v.", "...."},
		{".##.", ".<#.", "...."},
		{".##.", "..#.", ".v.."},
		{".##.", "..#.", "<#.."},
		{".##.", "^.#.", "##.."},
		{".##.", "#>#.", "##.."},
	}
	for steps, rows := range want {
		frame, err := ComputeFinalGrid(3, 4, 1, 1, '<', steps)
		require.NoError(t, err, "steps=%d", steps)
		assert.Equal(t, rows, frame.Rows(), "steps=%d", steps)
	}
}

func TestComputeFinalGridDeterministic(t *testing.T) {
	first, err := ComputeFinalGrid(11, 11, 5, 5, '^', 50)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := ComputeFinalGrid(11, 11, 5, 5, '^', 50)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []string{
		"...........",
		"...........",
		"...........",
		"...........",
		"....##.....",
		"...#..#....",
		"..#...^....",
		"..#..#.....",
		"...#..#....",
		"....##.....",
		"...........",
	}, first.Rows())
}

func TestComputeFinalGridZeroSteps(t *testing.T) {
	for _, glyph := range []byte{'^', '>', 'v', '<'} {
		frame, err := ComputeFinalGrid(2, 3, 1, 2, glyph, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"...", ".." + string(glyph)}, frame.Rows())
	}
}

func TestComputeFinalGridCellInvariant(t *testing.T) {
	frame, err := ComputeFinalGrid(9, 9, 4, 4, '>', 30)
	require.NoError(t, err)
	glyphs := 0
	for _, row := range frame {
		for _, c := range row {
			switch c {
			case WhiteGlyph, BlackGlyph:
			case '^', '>', 'v', '<':
				glyphs++
			default:
				t.Fatalf("unexpected cell %q in\n%s", c, frame)
			}
		}
	}
	assert.Equal(t, 1, glyphs)
}

func TestComputeFinalGridCorner(t *testing.T) {
	// On a White cell the ant turns before it moves, so facing up from the
	// top-left corner it walks right.
	frame, err := ComputeFinalGrid(2, 2, 0, 0, '^', 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"#>", ".."}, frame.Rows())

	frame, err = ComputeFinalGrid(2, 2, 0, 0, '<', 1)
	require.Error(t, err)
	assert.Nil(t, frame)
	assert.True(t, errors.Is(err, ErrBoundaryViolation))

	var se *StepError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Step)
}

func TestComputeFinalGridInputErrors(t *testing.T) {
	cases := []struct {
		name                 string
		rows, cols, row, col int
		glyph                byte
		steps                int
		want                 error
	}{
		{"BadGlyph", 3, 3, 1, 1, 'x', 1, ErrInvalidDirectionSymbol},
		{"BadGlyphBeforeBadGrid", 0, 0, 5, 5, 'x', -1, ErrInvalidDirectionSymbol},
		{"ZeroRows", 0, 3, 0, 0, '^', 1, ErrInvalidArgument},
		{"NegativeCols", 3, -1, 0, 0, '^', 1, ErrInvalidArgument},
		{"RowOutside", 3, 3, 3, 0, '^', 1, ErrInvalidArgument},
		{"ColOutside", 3, 3, 0, -1, '^', 1, ErrInvalidArgument},
		{"NegativeSteps", 3, 3, 1, 1, '^', -1, ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			frame, err := ComputeFinalGrid(tc.rows, tc.cols, tc.row, tc.col, tc.glyph, tc.steps)
			assert.Nil(t, frame)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
			assert.True(t, IsInputError(err))
		})
	}
}

func TestSimulatorHaltsOnBoundary(t *testing.T) {
	sim, err := NewSimulator(Config{Rows: 3, Cols: 4, Row: 1, Col: 1, Facing: '<'})
	require.NoError(t, err)

	err = sim.Run(100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBoundaryViolation))
	assert.Equal(t, 10, sim.Steps())
	assert.Same(t, err, sim.Err())

	var se *StepError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 11, se.Step)

	var be *BoundaryError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 2, be.Row)
	assert.Equal(t, 2, be.Col)
	assert.Equal(t, 3, be.NextRow)
	assert.Equal(t, 2, be.NextCol)
	assert.Equal(t, Down, be.Facing)

	halted := sim.Frame()
	assert.Equal(t, []string{".##.", "###.", "#.v."}, halted.Rows())

	// A halted simulator refuses to move and leaves its state alone.
	assert.Same(t, err, sim.Step())
	assert.Equal(t, halted, sim.Frame())
	assert.Equal(t, 10, sim.Steps())
}

func TestSimulatorCorruptedGrid(t *testing.T) {
	sim, err := NewSimulator(DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, sim.Run(3))

	a := sim.Ant()
	sim.grid.Set(a.Row(), a.Col(), 9)

	err = sim.Run(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorruptedGridState))
	assert.False(t, IsInputError(err))

	var se *StepError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 4, se.Step)
	assert.Equal(t, a, sim.Ant())
}

func TestSimulatorReset(t *testing.T) {
	sim, err := NewSimulator(DefaultConfig())
	require.NoError(t, err)
	initial := sim.Frame()

	require.Error(t, sim.Run(50))
	sim.Reset()
	assert.NoError(t, sim.Err())
	assert.Equal(t, 0, sim.Steps())
	assert.Equal(t, initial, sim.Frame())

	require.NoError(t, sim.RunConfigured())
	assert.Equal(t, 7, sim.Steps())
	assert.Equal(t, []string{".##.", "^.#.", "##.."}, sim.Frame().Rows())
}
