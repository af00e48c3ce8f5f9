// Package gridgraph defines the cost grid, positions, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/crucible.
package gridgraph

import "fmt"

// MaxCost is the largest cost a single cell may carry.
const MaxCost = 9

// Position addresses a cell by 0-indexed row and column.
type Position struct {
	Row, Col int
}

// Add returns p displaced by (dRow, dCol). The result may lie outside any grid.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Less orders positions row-major: first by Row, then by Col.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable rectangular matrix of cell entry costs in [0, MaxCost].
// The cost of a cell is paid when a route enters it; the start cell is free.
// A Grid is safe for concurrent readers once built.
type Grid struct {
	rows, cols int
	cells      []int // row-major, len == rows*cols
}
