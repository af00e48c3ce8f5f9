// Package movement defines the four grid directions and the run-length
// policies that constrain how a route may move across a grid.
//
// Overview:
//
//   - Direction is a closed enumeration: None (only before the first move),
//     North, East, South, West. Each real direction knows its opposite and
//     its unit (row, col) offset.
//   - Policy is a (MinRun, MaxRun) pair. A run is the number of consecutive
//     steps already taken in the current direction.
//
// Rules applied by Policy.Moves:
//
//   - From None every direction is legal and starts a run of 1.
//   - Reversing is never legal.
//   - run < MinRun: only straight ahead (the route is locked in).
//   - MinRun ≤ run < MaxRun: straight ahead (run+1) or a 90° turn (run 1).
//   - run ≥ MaxRun: only a 90° turn.
//
// Policy.CanStop reports whether a route may end after a run of a given
// length (run ≥ MinRun).
//
// Predefined policies:
//
//   - Standard: MinRun 1, MaxRun 3.
//   - Ultra:    MinRun 4, MaxRun 10.
//
// Errors:
//
//   - ErrInvalidPolicy: MinRun < 0, MaxRun ≤ 0, or MinRun > MaxRun.
//   - ErrUnknownPolicy: Lookup was given a name it does not know.
package movement
