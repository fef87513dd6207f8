package grid

import (
	"fmt"
	"strings"
)

// MaxCells caps rows×cols for every constructor.
const MaxCells = 1 << 30

// checkShape validates dimensions without ever computing an overflowing product.
func checkShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrEmptyGrid
	}
	if rows > MaxCells/cols {
		return fmt.Errorf("%dx%d grid exceeds %d cells: %w", rows, cols, MaxCells, ErrTooLarge)
	}
	return nil
}

// New builds a rows×cols grid of open water with the given icebergs.
// Returns ErrEmptyGrid if rows or cols is below 1, ErrTooLarge if
// rows×cols exceeds MaxCells, and ErrOutOfRange (wrapped with the
// offending cell) for an iceberg outside the grid.
// Complexity: O(rows×cols + len(icebergs)).
func New(rows, cols int, icebergs ...Cell) (*Grid, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, blocked: make([]bool, rows*cols)}
	for _, c := range icebergs {
		if !g.InBounds(c.Row, c.Col) {
			return nil, fmt.Errorf("iceberg %s in %dx%d grid: %w", c, rows, cols, ErrOutOfRange)
		}
		g.blocked[g.index(c.Row, c.Col)] = true
	}

	return g, nil
}

// From2D builds a grid from a rectangular [][]bool where true marks an
// iceberg. The input is copied; later changes to cells do not affect the grid.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrTooLarge on malformed input.
func From2D(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if err := checkShape(h, w); err != nil {
		return nil, err
	}
	g := &Grid{rows: h, cols: w, blocked: make([]bool, h*w)}
	for r := 0; r < h; r++ {
		copy(g.blocked[r*w:(r+1)*w], cells[r])
	}

	return g, nil
}

// Parse builds a grid from text rows using Open ('.') and Iceberg ('X').
//
//	g, _ := grid.Parse([]string{
//		"..X",
//		"...",
//	})
//
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadCell (wrapped with
// the row and rune column of the unknown symbol).
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]bool, len(lines))
	for r, line := range lines {
		row := make([]bool, 0, len(line))
		for _, sym := range line {
			switch sym {
			case Open:
				row = append(row, false)
			case Iceberg:
				row = append(row, true)
			default:
				return nil, fmt.Errorf("symbol %q at (%d,%d): %w", sym, r, len(row), ErrBadCell)
			}
		}
		cells[r] = row
	}

	return From2D(cells)
}

// Rows returns the number of rows; 0 for a nil *Grid.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// Columns returns the number of columns; 0 for a nil *Grid.
func (g *Grid) Columns() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// InBounds reports whether (row,col) lies within the grid. A nil *Grid
// has no cells.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return g != nil && row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsIceberg reports whether (row,col) is in bounds and blocked.
func (g *Grid) IsIceberg(row, col int) bool {
	return g.InBounds(row, col) && g.blocked[g.index(row, col)]
}

// MayStep reports whether a path may stand on (row,col): the cell is in
// bounds and not an iceberg.
// Complexity: O(1).
func (g *Grid) MayStep(row, col int) bool {
	return g.InBounds(row, col) && !g.blocked[g.index(row, col)]
}

// Icebergs lists the blocked cells in row-major order.
func (g *Grid) Icebergs() []Cell {
	var out []Cell
	for i, b := range g.blocked {
		if b {
			r, c := g.Coordinate(i)
			out = append(out, Cell{Row: r, Col: c})
		}
	}
	return out
}

// String renders the grid one row per line, in the form Parse accepts.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if g.blocked[g.index(r, c)] {
				sb.WriteByte(Iceberg)
			} else {
				sb.WriteByte(Open)
			}
		}
	}
	return sb.String()
}

// index maps (row,col) to the row-major offset row*cols + col.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}
