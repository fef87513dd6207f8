package count

// Grid is the read-only view both counters consume.
//
//   - Rows, Columns — positive dimensions.
//   - MayStep(row, col) — true iff the cell is in bounds and open.
//
// *grid.Grid satisfies it; so does any caller-provided adapter.
type Grid interface {
	Rows() int
	Columns() int
	MayStep(row, col int) bool
}

// Algorithm selects the counting procedure used by Count.
type Algorithm int

const (
	// AlgoDynProg fills a reachability table in O(rows·cols).
	AlgoDynProg Algorithm = iota
	// AlgoExhaustive enumerates all 2^(rows+cols-2) move sequences.
	AlgoExhaustive
)

// String returns "dynprog" or "exhaustive".
func (a Algorithm) String() string {
	if a == AlgoExhaustive {
		return "exhaustive"
	}
	return "dynprog"
}

// MemoryMode controls how the DP counter stores its table.
//
//   - FullTable — keep every rows×cols entry. Memory: O(rows·cols).
//     Required when the whole table is wanted (Reachability).
//
//   - TwoRows — keep only the previous and current rows.
//     Memory: O(cols). Same count, no table.
type MemoryMode int

const (
	// FullTable stores the whole reachability table.
	FullTable MemoryMode = iota
	// TwoRows keeps a rolling pair of rows.
	TwoRows
)

// Options configures Count.
//
// Fields:
//   - Algorithm  — AlgoDynProg (default) or AlgoExhaustive.
//   - MemoryMode — table layout for AlgoDynProg; ignored by AlgoExhaustive.
type Options struct {
	Algorithm  Algorithm
	MemoryMode MemoryMode
}

// DefaultOptions returns the DP counter with a full table.
func DefaultOptions() Options {
	return Options{
		Algorithm:  AlgoDynProg,
		MemoryMode: FullTable,
	}
}

// Table is the reachability table: At(i, j) is the number of distinct
// right/down paths from (0,0) to (i,j) that avoid icebergs.
type Table struct {
	rows, cols int
	ways       []uint64
}

// Rows returns the table height.
func (t Table) Rows() int { return t.rows }

// Columns returns the table width.
func (t Table) Columns() int { return t.cols }

// At returns the path count into (i, j). Panics if (i, j) is out of range.
func (t Table) At(i, j int) uint64 {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		panic(ErrOutOfRange)
	}
	return t.ways[i*t.cols+j]
}

// ToSlice returns the table as a fresh [][]uint64.
func (t Table) ToSlice() [][]uint64 {
	out := make([][]uint64, t.rows)
	for i := range out {
		out[i] = make([]uint64, t.cols)
		copy(out[i], t.ways[i*t.cols:(i+1)*t.cols])
	}
	return out
}
