package count

import (
	"errors"
	"math/bits"
)

// Count validates g against opts and runs the selected counter.
// Precondition violations come back as ErrEmptyGrid, ErrGridTooLarge,
// ErrTableTooLarge, ErrCountOverflow or ErrBadOptions instead of a panic.
// A nil *grid.Grid reports zero dimensions and yields ErrEmptyGrid; other
// Grid implementations must not panic on a nil receiver.
//
// Example:
//
//	n, err := count.Count(g, count.DefaultOptions())
func Count(g Grid, opts Options) (n uint64, err error) {
	if g == nil || g.Rows() < 1 || g.Columns() < 1 {
		return 0, ErrEmptyGrid
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, ErrCountOverflow) {
				n, err = 0, e
				return
			}
			panic(r)
		}
	}()

	switch opts.Algorithm {
	case AlgoExhaustive:
		if !fitsBits(g.Rows(), g.Columns()) {
			return 0, ErrGridTooLarge
		}
		return Exhaustive(g), nil
	case AlgoDynProg:
		switch opts.MemoryMode {
		case FullTable:
			if g.Rows() > maxTableCells/g.Columns() {
				return 0, ErrTableTooLarge
			}
			return DynProg(g), nil
		case TwoRows:
			if g.Columns() > maxTableCells {
				return 0, ErrTableTooLarge
			}
			return DynProgRolling(g), nil
		}
	}

	return 0, ErrBadOptions
}

// Binomial returns C(n, k), the number of paths across an open grid with
// n = rows+cols-2 and k = rows-1. Returns 0 when k > n and
// ErrCountOverflow if the result does not fit in uint64.
// Complexity: O(min(k, n-k)).
func Binomial(n, k uint64) (uint64, error) {
	if k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}
	c := uint64(1)
	for i := uint64(0); i < k; i++ {
		// c·(n-i) is divisible by i+1; do the product in 128 bits.
		hi, lo := bits.Mul64(c, n-i)
		if hi >= i+1 {
			return 0, ErrCountOverflow
		}
		c, _ = bits.Div64(hi, lo, i+1)
	}
	return c, nil
}
