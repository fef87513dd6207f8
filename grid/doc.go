// Package grid provides the read-only grid the path counters walk over.
//
// What:
//
//   - Grid is a rectangle of cells; each cell is open water or an iceberg.
//   - Built by New (shape + iceberg list), From2D ([][]bool) or Parse
//     ('.' open, 'X' iceberg). Inputs are copied, so a Grid never changes
//     and can be shared between any number of counting calls.
//   - Path replays right/down steps from the origin; Random builds seeded
//     fixtures.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrTooLarge: rows×cols exceeds MaxCells.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a layout symbol other than '.' or 'X'.
//   - ErrOutOfRange: an iceberg outside the grid.
//   - ErrBadDensity: Random density outside [0,1].
//   - ErrInvalidStep: Path.AddStep onto a blocked or off-grid cell (panic).
package grid
