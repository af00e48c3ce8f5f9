package gridgraph

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the umbrella for every construction failure.
// Use errors.Is(err, ErrMalformedInput) to test for any of the errors below.
var ErrMalformedInput = errors.New("gridgraph: malformed input")

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrInvalidCell indicates a cell that is not a decimal digit 0..9.
	ErrInvalidCell = fmt.Errorf("%w: cell must be a digit 0-9", ErrMalformedInput)
)

// ErrOutOfBounds is returned by CostAt for positions outside the grid.
var ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
