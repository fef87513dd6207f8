package grid

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrTooLarge indicates rows×cols exceeds MaxCells.
	ErrTooLarge = errors.New("grid: grid has too many cells")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates a layout rune that is neither open water nor an iceberg.
	ErrBadCell = errors.New("grid: unknown cell symbol")
	// ErrOutOfRange indicates an iceberg coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: cell out of range")
	// ErrBadDensity indicates an iceberg density outside [0,1].
	ErrBadDensity = errors.New("grid: density must be within [0,1]")
	// ErrInvalidStep indicates a path step onto a blocked or out-of-bounds cell.
	ErrInvalidStep = errors.New("grid: invalid step")
)
