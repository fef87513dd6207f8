// Package icebergs counts the right/down routes across a harbour of
// icebergs, from the top-left cell to the bottom-right one.
//
// What is in the box?
//
//	grid/     — immutable grid of open water and icebergs, path candidates,
//	            seeded random fixtures
//	count/    — Exhaustive (bit enumeration, rows+cols-2 < 64) and DynProg
//	            (reachability table, O(rows·cols)); they agree on every grid
//	gridfile/ — named grids from HCL documents
//	cmd/icebergs — command-line front end
//
// Quick ASCII example:
//
//	. . X
//	. X .
//	. . .
//
// has exactly one route: down, down, right, right.
//
//	go get github.com/katalvlaran/icebergs
package icebergs
