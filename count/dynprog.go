package count

import (
	"math/bits"
)

// maxTableCells caps the entries a single DP table may hold.
const maxTableCells = 1 << 30

// DynProg counts iceberg-avoiding right/down paths with dynamic programming.
//
// Algorithm Outline:
//  1. Allocate a rows×cols table A, sized from the grid at call time.
//  2. Visit cells in row-major order, so A[i-1][j] and A[i][j-1] are final
//     whenever A[i][j] is computed:
//     iceberg          → A[i][j] = 0
//     origin (0,0)     → A[i][j] = 1
//     otherwise        → A[i][j] = A[i-1][j] + A[i][j-1]
//     (a neighbour off the grid contributes 0)
//  3. Answer = A[rows-1][cols-1]; 0 when that cell is blocked or unreachable.
//
// Panics with ErrEmptyGrid on an empty grid, ErrTableTooLarge when
// rows·cols exceeds maxTableCells, and ErrCountOverflow when an entry
// exceeds uint64.
//
// Complexity: O(rows·cols) time and memory.
func DynProg(g Grid) uint64 {
	t := Reachability(g)
	return t.ways[len(t.ways)-1]
}

// Reachability returns the full table DynProg answers from.
// Same preconditions and complexity as DynProg.
func Reachability(g Grid) Table {
	mustSteps(g)
	rows, cols := g.Rows(), g.Columns()
	if rows > maxTableCells/cols {
		panic(ErrTableTooLarge)
	}
	t := Table{rows: rows, cols: cols, ways: make([]uint64, rows*cols)}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if !g.MayStep(i, j) {
				continue // zero from make
			}
			if i == 0 && j == 0 {
				t.ways[0] = 1
				continue
			}
			var above, left uint64
			if i > 0 {
				above = t.ways[(i-1)*cols+j]
			}
			if j > 0 {
				left = t.ways[i*cols+j-1]
			}
			t.ways[i*cols+j] = checkedAdd(above, left)
		}
	}

	return t
}

// DynProgRolling computes the same count as DynProg keeping only two rows.
// Panics with ErrTableTooLarge when cols exceeds maxTableCells.
// Complexity: O(rows·cols) time, O(cols) memory.
func DynProgRolling(g Grid) uint64 {
	mustSteps(g)
	rows, cols := g.Rows(), g.Columns()
	if cols > maxTableCells {
		panic(ErrTableTooLarge)
	}
	prev := make([]uint64, cols)
	curr := make([]uint64, cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			switch {
			case !g.MayStep(i, j):
				curr[j] = 0
			case i == 0 && j == 0:
				curr[j] = 1
			default:
				var left uint64
				if j > 0 {
					left = curr[j-1]
				}
				// prev is all zeros while i == 0.
				curr[j] = checkedAdd(prev[j], left)
			}
		}
		prev, curr = curr, prev
	}

	return prev[cols-1]
}

// checkedAdd returns a+b, panicking with ErrCountOverflow on carry.
func checkedAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		panic(ErrCountOverflow)
	}
	return sum
}
