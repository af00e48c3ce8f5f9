// Package dijkstra implements Dijkstra's algorithm over the augmented state
// space of a gridgraph.Grid: position × last heading × run length.
//
// Edge weights are the entry costs of grid cells, all in [0,9], so the
// non-negative precondition of Dijkstra always holds.
//
// Complexity (S = R×C×4×MaxRun augmented states, E ≤ 3S transitions):
//
//   - Time:  O((S + E) log E)
//   - Each state is finalized at most once (visited set).
//   - Each transition may push one heap entry (lazy decrease-key).
//   - Space: O(S + E)
//
// Notes on implementation choices:
//
//   - The frontier is a binary min-heap ordered by cumulative cost. Ties are
//     broken on State (position row-major, then heading, then run) purely to
//     make pop order reproducible; the optimal cost does not depend on it.
//   - Duplicates of a state may sit in the heap; only the first pop is
//     authoritative and later ones are discarded.
//   - Ctx and MaxExpansions are checked at the top of every iteration.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// Solve computes the minimum total entry cost of a route from g.Start() to
// g.Goal() whose straight runs obey policy p.
//
// Returns:
//
//   - Result.Found == true and Result.Cost when the goal is reached by a state
//     whose run satisfies p.CanStop.
//   - Result.Found == false with a nil error when the frontier is exhausted.
//     This is a normal outcome (e.g. a grid shorter than p.MinRun); use
//     Result.Err to turn it into ErrNoPath.
//   - err for invalid input (ErrNilGrid, movement.ErrInvalidPolicy,
//     ErrOptionViolation), a done context, or ErrBudgetExceeded.
//
// Every call owns a fresh frontier and visited set, so concurrent calls on the
// same grid are safe.
func Solve(g *gridgraph.Grid, p movement.Policy, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	r := newRunner(g, p, cfg)
	r.init()
	if err := r.process(); err != nil {
		return Result{}, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *gridgraph.Grid
	policy  movement.Policy
	options Options
	start   State
	goal    gridgraph.Position
	pq      frontier           // min-heap of pending entries
	visited map[State]struct{} // finalized states
	prev    map[State]State    // predecessor of each finalized state; nil unless ReturnPath
	res     Result
}

func newRunner(g *gridgraph.Grid, p movement.Policy, cfg Options) *runner {
	// capacity hint, capped at 64k entries; MaxRun may be as large as math.MaxInt
	hint := 1 << 16
	if cells := g.Rows() * g.Cols(); p.MaxRun <= hint/(2*cells) {
		hint = cells * 2 * p.MaxRun
	}
	r := &runner{
		g:       g,
		policy:  p,
		options: cfg,
		start:   State{Pos: g.Start(), Dir: movement.None, Run: 0},
		goal:    g.Goal(),
		pq:      make(frontier, 0, hint),
		visited: make(map[State]struct{}, hint),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State, hint)
	}

	return r
}

// init seeds the frontier with the synthetic start state at cost 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.push(entry{state: r.start, cost: 0, from: r.start})
	r.res.Outcome = Running
}

// process is the relaxation loop. It pops the cheapest pending entry,
// discards it if its state is already final, otherwise finalizes it, tests
// the goal, and pushes every transition.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: search interrupted after %d expansions: %w", r.res.Expanded, err)
		}

		e := heap.Pop(&r.pq).(entry)
		if _, done := r.visited[e.state]; done {
			continue // stale duplicate
		}
		if limit := r.options.MaxExpansions; limit > 0 && r.res.Expanded >= limit {
			return fmt.Errorf("%w: %d states finalized", ErrBudgetExceeded, r.res.Expanded)
		}

		r.visited[e.state] = struct{}{}
		r.res.Expanded++
		if r.prev != nil && e.state != r.start {
			r.prev[e.state] = e.from
		}
		r.options.OnPop(e.state, e.cost)

		if e.state.Pos == r.goal && r.policy.CanStop(e.state.Run) {
			r.finish(e)
			return nil
		}

		for _, t := range Expand(r.g, r.policy, e.state) {
			if _, done := r.visited[t.Next]; done {
				continue
			}
			r.push(entry{state: t.Next, cost: e.cost + int64(t.Cost), from: e.state})
		}
	}
	r.res.Outcome = Exhausted

	return nil
}

// finish records a successful goal pop and, if requested, the path.
func (r *runner) finish(e entry) {
	r.res.Found = true
	r.res.Outcome = Found
	r.res.Cost = e.cost
	if r.prev == nil {
		return
	}
	path := []State{e.state}
	for cur := e.state; cur != r.start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	r.res.Path = path
}

func (r *runner) push(e entry) {
	heap.Push(&r.pq, e)
	r.res.Pushed++
}

// entry is a pending frontier item: a state, the cumulative cost of reaching
// it, and the state it was reached from.
type entry struct {
	state State
	cost  int64
	from  State
}

// frontier is a min-heap of entries ordered by cost, then by State.
// Outdated entries are left in place and skipped on pop via the visited set.
type frontier []entry

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by cost ascending; equal costs fall back to State order.
func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].state.less(pq[j].state)
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it moved the minimum to the end.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
