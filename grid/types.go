package grid

import "fmt"

// Layout symbols accepted by Parse and produced by Grid.String.
const (
	// Open marks a passable cell.
	Open = '.'
	// Iceberg marks a blocked cell.
	Iceberg = 'X'
)

// Stepper is the read-only view a path needs: dimensions plus a
// passability predicate. *Grid implements it.
type Stepper interface {
	Rows() int
	Columns() int
	MayStep(row, col int) bool
}

// Cell addresses a single grid cell.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction selects one of the two monotone moves.
type Direction int

const (
	// StepDown advances the row.
	StepDown Direction = iota
	// StepRight advances the column.
	StepRight
)

// String returns "down" or "right".
func (d Direction) String() string {
	switch d {
	case StepDown:
		return "down"
	case StepRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// delta returns the (row, col) offset of a single step in direction d.
func (d Direction) delta() (dr, dc int) {
	if d == StepRight {
		return 0, 1
	}
	return 1, 0
}

// Grid is an immutable rectangular table of open cells and icebergs.
// blocked is stored row-major: blocked[row*cols+col].
type Grid struct {
	rows, cols int
	blocked    []bool
}
