package dijkstra_test

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// referenceGrid is the 13×13 sample used by both classic rule sets.
const referenceGrid = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// corridorGrid forces Ultra to run long straight stretches.
const corridorGrid = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func mustParse(text string) *gridgraph.Grid {
	g, err := gridgraph.Parse(text)
	if err != nil {
		panic(err)
	}

	return g
}

func mustPolicy(lo, hi int) movement.Policy {
	p, err := movement.NewPolicy(lo, hi)
	if err != nil {
		panic(err)
	}

	return p
}

// randomGrid builds an r×c grid of digits in [lo, 9] from a fixed seed.
func randomGrid(seed int64, r, c, lo int) *gridgraph.Grid {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for y := 0; y < r; y++ {
		for x := 0; x < c; x++ {
			sb.WriteByte(byte('0' + lo + rng.Intn(10-lo)))
		}
		sb.WriteByte('\n')
	}

	return mustParse(sb.String())
}

// bruteForce enumerates every route that never repeats an augmented state and
// returns the cheapest legal cost. It re-derives the movement rules from
// scratch instead of calling Policy.Moves.
func bruteForce(g *gridgraph.Grid, p movement.Policy) (int64, bool) {
	type key struct {
		pos gridgraph.Position
		dir movement.Direction
		run int
	}
	var (
		best  int64 = -1
		onRun       = map[key]bool{}
		walk  func(k key, cost int64)
	)
	walk = func(k key, cost int64) {
		if best >= 0 && cost >= best {
			return
		}
		if k.pos == g.Goal() && k.run >= p.MinRun {
			best = cost
			return
		}
		onRun[k] = true
		defer delete(onRun, k)
		for _, d := range movement.Directions {
			run := 1
			switch {
			case k.dir == movement.None:
			case d == k.dir.Opposite():
				continue
			case d == k.dir:
				run = k.run + 1
				if run > p.MaxRun {
					continue
				}
			default:
				if k.run < p.MinRun {
					continue
				}
			}
			dr, dc := d.Offset()
			next := k.pos.Add(dr, dc)
			c, err := g.CostAt(next)
			if err != nil {
				continue
			}
			nk := key{pos: next, dir: d, run: run}
			if onRun[nk] {
				continue
			}
			walk(nk, cost+int64(c))
		}
	}
	walk(key{pos: g.Start()}, 0)

	return best, best >= 0
}

// pathCost sums the entry costs along a path, skipping the start.
func pathCost(g *gridgraph.Grid, path []dijkstra.State) int64 {
	var total int64
	for _, s := range path[1:] {
		c, _ := g.CostAt(s.Pos)
		total += int64(c)
	}

	return total
}
