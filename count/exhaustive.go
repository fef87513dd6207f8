package count

import (
	"github.com/katalvlaran/icebergs/grid"
)

// maxSteps bounds the path length the bit enumeration can represent.
const maxSteps = 64

// Exhaustive counts iceberg-avoiding right/down paths by brute force.
//
// Algorithm:
//  1. steps = rows + cols - 2; every path has exactly this many moves.
//  2. For each bit pattern b in [0, 2^steps):
//     replay the path from (0,0), bit k (LSB first) choosing
//     right (1) or down (0) for move k.
//  3. Abandon the candidate at its first move onto an iceberg or off the
//     grid; count it only when all steps moves succeed.
//
// A 1×1 grid has one path, the empty one, and never enters step 2's loop.
// A blocked origin yields 0.
//
// Panics with ErrEmptyGrid if the grid is empty and with ErrGridTooLarge
// if steps ≥ 64. This algorithm is for small grids only.
//
// Complexity: O(2^steps · steps) time, O(steps) memory.
func Exhaustive(g Grid) uint64 {
	var n uint64
	enumerate(g, func(*grid.Path) { n++ })
	return n
}

// ExhaustivePaths returns every valid path found by the same enumeration as
// Exhaustive, in bit-pattern order. The empty path of a 1×1 grid is
// returned as a single empty slice. Same preconditions as Exhaustive.
func ExhaustivePaths(g Grid) [][]grid.Direction {
	var out [][]grid.Direction
	enumerate(g, func(p *grid.Path) { out = append(out, p.Steps()) })
	return out
}

// enumerate calls visit once per valid candidate path.
func enumerate(g Grid, visit func(*grid.Path)) {
	steps := mustSteps(g)
	if !fitsBits(g.Rows(), g.Columns()) {
		panic(ErrGridTooLarge)
	}
	if !g.MayStep(0, 0) {
		return
	}

	total := uint64(1) << uint(steps)
	for bits := uint64(0); bits < total; bits++ {
		candidate := grid.NewPath(g)
		valid := true
		for k := 0; k < steps; k++ {
			dir := grid.StepDown
			if (bits>>uint(k))&1 == 1 {
				dir = grid.StepRight
			}
			if !candidate.IsStepValid(dir) {
				valid = false
				break
			}
			candidate.AddStep(dir)
		}
		if valid {
			visit(candidate)
		}
	}
}

// fitsBits reports whether rows+cols-2 < maxSteps without overflowing int.
func fitsBits(rows, cols int) bool {
	return rows <= maxSteps && cols <= maxSteps && rows+cols-2 < maxSteps
}

// mustSteps returns rows+cols-2, panicking with ErrEmptyGrid on an empty grid.
func mustSteps(g Grid) int {
	if g.Rows() < 1 || g.Columns() < 1 {
		panic(ErrEmptyGrid)
	}
	return g.Rows() + g.Columns() - 2
}
