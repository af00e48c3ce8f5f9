// Package gridgraph treats a rectangular block of digits as a weighted grid.
//
// What:
//
//   - Grid wraps an immutable R×C matrix of entry costs in [0,9].
//   - Parse / Read build a Grid from text; NewGrid from an [][]int.
//   - CostAt and InBounds provide bounds-checked access for searches.
//
// Why:
//
//   - Route planning over terrain maps where each cell has a traversal cost.
//   - A single validated source of truth for every search over the same input.
//
// Complexity:
//
//   - Parse / NewGrid: O(R×C) time and memory.
//   - CostAt, InBounds: O(1).
//
// Errors:
//
//   - ErrMalformedInput: umbrella for every construction failure.
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a character or value outside 0..9.
//   - ErrOutOfBounds: CostAt outside the grid.
//
// Note: a non-digit or jagged input is fatal to construction; no partial grid
// is ever returned.
package gridgraph
