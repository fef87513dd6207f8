// Package gridfile loads named grids from HCL documents.
//
// A document holds one or more grid blocks, each either drawn as text
// rows or given as a shape plus a list of iceberg coordinates:
//
//	grid "harbour" {
//	  rows     = 3
//	  columns  = 4
//	  icebergs = [[0, 1], [2, 2]]
//	}
//
//	grid "drawn" {
//	  layout = [
//	    "..X",
//	    "...",
//	  ]
//	}
//
// Numeric attributes may reference variables supplied with WithVariables,
// e.g. `rows = size`.
package gridfile
