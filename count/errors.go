package count

import "errors"

// Errors:
//   - ErrEmptyGrid     — the grid has no rows or no columns.
//   - ErrGridTooLarge  — rows+cols-2 ≥ 64; the exhaustive bit enumeration
//     cannot represent the path.
//   - ErrTableTooLarge — the DP table would exceed maxTableCells entries.
//   - ErrCountOverflow — a DP entry no longer fits in uint64.
//   - ErrOutOfRange    — Table.At outside the table.
//   - ErrBadOptions    — unknown Algorithm or MemoryMode.
//
// The counters panic with the first four (precondition violations);
// Count returns them as values instead.
var (
	ErrEmptyGrid     = errors.New("count: grid must have at least one row and one column")
	ErrGridTooLarge  = errors.New("count: rows+columns-2 must be below 64 for exhaustive search")
	ErrTableTooLarge = errors.New("count: grid too large for the reachability table")
	ErrCountOverflow = errors.New("count: path count overflows uint64")
	ErrOutOfRange    = errors.New("count: table index out of range")
	ErrBadOptions    = errors.New("count: unknown algorithm or memory mode")
)
