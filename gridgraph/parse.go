package gridgraph

import (
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from a block of equal-length lines of decimal digits.
// Each character becomes one cell. Both "\n" and "\r\n" line endings are
// accepted and trailing blank lines are ignored; a blank line between rows is
// a jagged row and is rejected.
//
// Errors (all wrap ErrMalformedInput):
//   - ErrEmptyGrid      if there are no rows.
//   - ErrNonRectangular if row lengths differ.
//   - ErrInvalidCell    if a character is not '0'..'9'.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyGrid
	}

	w := len(lines[0])
	cells := make([]int, 0, len(lines)*w)
	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), w)
		}
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCell, rune(ch), r, c)
			}
			cells = append(cells, int(ch-'0'))
		}
	}

	return &Grid{rows: len(lines), cols: w, cells: cells}, nil
}

// Read consumes r fully and parses it with Parse.
func Read(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}

	return Parse(string(data))
}
