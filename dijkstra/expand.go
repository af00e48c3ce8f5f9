package dijkstra

import (
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// Transition is one outgoing edge of the augmented graph.
type Transition struct {
	Next State
	Cost int // entry cost of Next.Pos
}

// Expand lists the states reachable from s in one step under policy p,
// each with the cost of entering its cell. Moves leaving the grid are dropped.
// Expand is pure.
func Expand(g *gridgraph.Grid, p movement.Policy, s State) []Transition {
	moves := p.Moves(s.Dir, s.Run)
	out := make([]Transition, 0, len(moves))
	for _, m := range moves {
		dr, dc := m.Dir.Offset()
		next := s.Pos.Add(dr, dc)
		cost, err := g.CostAt(next)
		if err != nil {
			continue // off the grid
		}
		out = append(out, Transition{
			Next: State{Pos: next, Dir: m.Dir, Run: m.Run},
			Cost: cost,
		})
	}

	return out
}
