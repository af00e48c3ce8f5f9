// Package gridgraph provides the immutable cost grid searched by crucible.
//
//   - Construction from digit text (Parse, Read) or an int matrix (NewGrid)
//   - Bounds-checked lookups (CostAt, InBounds)
//   - Fixed corners: Start is (0,0), Goal is (Rows-1, Cols-1)
//
// A Grid never exists in a partially built state: constructors either return
// a complete, validated grid or an error wrapping ErrMalformedInput.
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of costs.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and
// ErrInvalidCell if any value lies outside [0, MaxCost].
// Complexity: O(R×C) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]int, 0, h*w)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if v < 0 || v > MaxCost {
				return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrInvalidCell, v, r, c)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the top-left corner.
func (g *Grid) Start() Position { return Position{} }

// Goal returns the bottom-right corner.
func (g *Grid) Goal() Position { return Position{Row: g.rows - 1, Col: g.cols - 1} }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// CostAt returns the entry cost of cell p, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) CostAt(p Position) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}

	return g.cells[g.index(p)], nil
}

// String renders the grid back to digit text, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteByte(byte('0' + g.cells[r*g.cols+c]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// index maps p to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}
