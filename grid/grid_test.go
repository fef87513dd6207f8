package grid_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/icebergs/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or oversized shapes and stray icebergs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		icebergs   []grid.Cell
		err        error
	}{
		{"ZeroRows", 0, 3, nil, grid.ErrEmptyGrid},
		{"ZeroCols", 3, 0, nil, grid.ErrEmptyGrid},
		{"Negative", -1, 2, nil, grid.ErrEmptyGrid},
		{"ProductOverflows", math.MaxInt, math.MaxInt, nil, grid.ErrTooLarge},
		{"ProductTooLarge", 1<<31 - 1, 1<<31 - 1, nil, grid.ErrTooLarge},
		{"JustOverMax", grid.MaxCells/2 + 1, 2, nil, grid.ErrTooLarge},
		{"IcebergBelow", 2, 2, []grid.Cell{{Row: 2, Col: 0}}, grid.ErrOutOfRange},
		{"IcebergLeft", 2, 2, []grid.Cell{{Row: 0, Col: -1}}, grid.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols, tc.icebergs...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFrom2D_Errors verifies that From2D rejects empty or ragged inputs.
func TestFrom2D_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]bool
		err   error
	}{
		{"EmptyRows", [][]bool{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{false, true}, {false}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.From2D(tc.cells)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFrom2D_CopiesInput ensures later edits to the source slice are not observed.
func TestFrom2D_CopiesInput(t *testing.T) {
	cells := [][]bool{{false, false}, {false, false}}
	g, err := grid.From2D(cells)
	require.NoError(t, err)

	cells[0][1] = true
	assert.True(t, g.MayStep(0, 1), "grid must not alias its input")
}

// TestParse checks symbol handling and error reporting.
func TestParse(t *testing.T) {
	g, err := grid.Parse([]string{
		"..X",
		"X..",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Columns())
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 2}, {Row: 1, Col: 0}}, g.Icebergs())

	_, err = grid.Parse([]string{".?"})
	assert.ErrorIs(t, err, grid.ErrBadCell)

	_, err = grid.Parse([]string{"é.?"})
	require.ErrorIs(t, err, grid.ErrBadCell)
	assert.Contains(t, err.Error(), "(0,0)")

	_, err = grid.Parse([]string{"X.", ".é"})
	require.ErrorIs(t, err, grid.ErrBadCell)
	assert.Contains(t, err.Error(), "(1,1)")

	_, err = grid.Parse([]string{"..", "."})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = grid.Parse(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestString_RoundTrip verifies that String output parses back to the same grid.
func TestString_RoundTrip(t *testing.T) {
	layout := []string{
		".X..",
		"..X.",
		"X...",
	}
	g, err := grid.Parse(layout)
	require.NoError(t, err)
	assert.Equal(t, ".X..\n..X.\nX...", g.String())

	back, err := grid.Parse(strings.Split(g.String(), "\n"))
	require.NoError(t, err)
	assert.Equal(t, g.Icebergs(), back.Icebergs())
}

//----------------------------------------------------------------------------//
// Predicates
//----------------------------------------------------------------------------//

// TestMayStep checks bounds and iceberg handling on a 2×3 grid.
func TestMayStep(t *testing.T) {
	g, err := grid.New(2, 3, grid.Cell{Row: 1, Col: 1})
	require.NoError(t, err)

	open := [][2]int{{0, 0}, {0, 2}, {1, 0}, {1, 2}}
	for _, rc := range open {
		assert.True(t, g.MayStep(rc[0], rc[1]), "MayStep(%d,%d)", rc[0], rc[1])
	}
	blocked := [][2]int{{1, 1}, {-1, 0}, {0, -1}, {2, 0}, {0, 3}}
	for _, rc := range blocked {
		assert.False(t, g.MayStep(rc[0], rc[1]), "MayStep(%d,%d)", rc[0], rc[1])
	}
	assert.True(t, g.IsIceberg(1, 1))
	assert.False(t, g.IsIceberg(5, 5), "out of bounds is not an iceberg")
}

// TestNilGrid checks that a nil *Grid reads as an empty grid.
func TestNilGrid(t *testing.T) {
	var g *grid.Grid
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, 0, g.Columns())
	assert.False(t, g.InBounds(0, 0))
	assert.False(t, g.MayStep(0, 0))
	assert.False(t, g.IsIceberg(0, 0))
}

// TestCoordinate checks the row-major index inverse.
func TestCoordinate(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)

	r, c := g.Coordinate(6)
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
}

//----------------------------------------------------------------------------//
// Random
//----------------------------------------------------------------------------//

// TestRandom_Deterministic ensures equal seeds produce equal grids.
func TestRandom_Deterministic(t *testing.T) {
	a, err := grid.Random(6, 7, grid.WithSeed(42), grid.WithDensity(0.4))
	require.NoError(t, err)
	b, err := grid.Random(6, 7, grid.WithSeed(42), grid.WithDensity(0.4))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

// TestRandom_Corners checks the corner policy at full density.
func TestRandom_Corners(t *testing.T) {
	open, err := grid.Random(3, 3, grid.WithDensity(1))
	require.NoError(t, err)
	assert.True(t, open.MayStep(0, 0))
	assert.True(t, open.MayStep(2, 2))
	assert.Len(t, open.Icebergs(), 7)

	closed, err := grid.Random(3, 3, grid.WithDensity(1), grid.WithOpenCorners(false))
	require.NoError(t, err)
	assert.Len(t, closed.Icebergs(), 9)
}

// TestRandom_Errors covers invalid shapes and densities.
func TestRandom_Errors(t *testing.T) {
	_, err := grid.Random(0, 3)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.Random(math.MaxInt, 2)
	assert.ErrorIs(t, err, grid.ErrTooLarge)

	_, err = grid.Random(3, 3, grid.WithDensity(1.5))
	assert.ErrorIs(t, err, grid.ErrBadDensity)

	_, err = grid.Random(3, 3, grid.WithDensity(-0.1))
	assert.ErrorIs(t, err, grid.ErrBadDensity)
}
