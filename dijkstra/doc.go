// Package dijkstra finds minimum-cost routes across a digit grid when the
// route's straight runs are constrained by a movement.Policy.
//
// Overview:
//
//   - A route starts in the top-left cell and ends in the bottom-right cell.
//     Entering a cell costs its digit; the start cell is free.
//   - The policy fixes how many consecutive steps in one heading are required
//     before turning or stopping (MinRun) and allowed at most (MaxRun).
//     Reversing is never allowed.
//   - Because legality depends on movement history, plain cell-level Dijkstra
//     is not enough: the search runs over States (cell, heading, run length).
//
// Components:
//
//   - Expand: the transition function, State → []Transition. Pure.
//   - frontier: a container/heap min-heap with lazy decrease-key.
//   - visited set: map[State]struct{}; a popped state already in it is stale.
//   - Solve: the driver. Seeds the start state, loops until the goal is
//     popped with run ≥ MinRun (Found) or the heap empties (Exhausted).
//   - SolveAll: runs several policies concurrently on one grid.
//
// One engine serves every policy: the two classic rule sets (movement.Standard
// and movement.Ultra) differ only in the Policy value passed in.
//
// Performance and complexity (S = R×C×4×MaxRun):
//
//   - Time:  O(S log S)
//   - Space: O(S)
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          nil grid.
//   - ErrOptionViolation:  invalid option (e.g. negative MaxExpansions).
//   - ErrBudgetExceeded:   MaxExpansions reached before the goal.
//   - ErrNoPath:           via Result.Err when the goal is unreachable.
//   - movement.ErrInvalidPolicy: inconsistent run bounds.
//   - context errors:      wrapped when Ctx is cancelled or times out.
//
// An unreachable goal is not an error from Solve: Result.Found is false and
// Result.Outcome is Exhausted. Grids too small to hold a single run of MinRun
// steps in either direction, and the 1×1 grid under any policy with MinRun > 0,
// end this way.
//
// Example:
//
//	g, err := gridgraph.Parse(input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := dijkstra.Solve(g, movement.Ultra, dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("unreachable")
//	    return
//	}
//	fmt.Println(res.Cost, len(res.Path))
//
// Thread safety:
//
//   - Grid and Policy are read-only and may be shared.
//   - Each Solve call owns its frontier and visited set; nothing is reused.
package dijkstra
