// Package count implements two interchangeable path counters over a grid
// with icebergs: Exhaustive (bit enumeration, small grids only) and
// DynProg (reachability table, O(rows·cols)).
//
// Both count the minimal right/down paths from the top-left to the
// bottom-right cell that never stand on an iceberg, and agree on every grid.
// They panic on precondition violations; Count is the error-returning
// entry point for callers holding untrusted input.
package count
