package main

import (
	"strings"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

var arrows = map[movement.Direction]byte{
	movement.North: '^',
	movement.East:  '>',
	movement.South: 'v',
	movement.West:  '<',
}

// renderPath draws path over the grid digits, marking each entered cell with
// the arrow of the move that entered it.
func renderPath(g *gridgraph.Grid, path []dijkstra.State) string {
	rows := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	cells := make([][]byte, len(rows))
	for i, row := range rows {
		cells[i] = []byte(row)
	}
	for _, s := range path {
		if ch, ok := arrows[s.Dir]; ok {
			cells[s.Pos.Row][s.Pos.Col] = ch
		}
	}

	var b strings.Builder
	for _, row := range cells {
		b.Write(row)
		b.WriteByte('\n')
	}

	return b.String()
}
