package movement

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPolicy indicates a (MinRun, MaxRun) pair that cannot describe any route.
	ErrInvalidPolicy = errors.New("movement: invalid policy")

	// ErrUnknownPolicy indicates a name that Lookup does not recognise.
	ErrUnknownPolicy = errors.New("movement: unknown policy")
)

// Policy bounds the length of straight runs.
//
//	MinRun – steps a run must reach before a turn or a stop is allowed (≥ 0).
//	MaxRun – steps after which a turn is forced (≥ 1, ≥ MinRun).
//
// The zero Policy is invalid; build one with NewPolicy or use Standard / Ultra.
type Policy struct {
	Name   string
	MinRun int
	MaxRun int
}

// Move is one legal next heading together with the run length it produces.
type Move struct {
	Dir Direction
	Run int
}

var (
	// Standard allows at most three steps in a row and turning at any time.
	Standard = Policy{Name: "standard", MinRun: 1, MaxRun: 3}

	// Ultra needs four steps before turning or stopping and forces a turn after ten.
	Ultra = Policy{Name: "ultra", MinRun: 4, MaxRun: 10}
)

// NewPolicy validates and returns an unnamed policy.
func NewPolicy(minRun, maxRun int) (Policy, error) {
	p := Policy{MinRun: minRun, MaxRun: maxRun}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}

// Named returns a copy of p carrying name.
func (p Policy) Named(name string) Policy {
	p.Name = name

	return p
}

// Validate returns ErrInvalidPolicy if the run bounds are inconsistent.
func (p Policy) Validate() error {
	switch {
	case p.MinRun < 0:
		return fmt.Errorf("%w: min run %d is negative", ErrInvalidPolicy, p.MinRun)
	case p.MaxRun <= 0:
		return fmt.Errorf("%w: max run %d must be positive", ErrInvalidPolicy, p.MaxRun)
	case p.MinRun > p.MaxRun:
		return fmt.Errorf("%w: min run %d exceeds max run %d", ErrInvalidPolicy, p.MinRun, p.MaxRun)
	}

	return nil
}

// Moves returns the headings legal after a run of length run in direction prev.
// The result is ordered straight-ahead first, then turns in Directions order.
func (p Policy) Moves(prev Direction, run int) []Move {
	if prev == None {
		moves := make([]Move, 0, len(Directions))
		for _, d := range Directions {
			moves = append(moves, Move{Dir: d, Run: 1})
		}

		return moves
	}

	moves := make([]Move, 0, 3)
	if run < p.MaxRun {
		moves = append(moves, Move{Dir: prev, Run: run + 1})
	}
	if run < p.MinRun {
		return moves
	}
	for _, d := range Directions {
		if d.Perpendicular(prev) {
			moves = append(moves, Move{Dir: d, Run: 1})
		}
	}

	return moves
}

// CanStop reports whether a route may end after a run of length run.
func (p Policy) CanStop(run int) bool {
	return run >= p.MinRun
}

// String renders the policy as "name[min..max]".
func (p Policy) String() string {
	name := p.Name
	if name == "" {
		name = "custom"
	}

	return fmt.Sprintf("%s[%d..%d]", name, p.MinRun, p.MaxRun)
}

// Lookup returns a predefined policy by name. "standard" and "a" select
// Standard; "ultra" and "b" select Ultra. Matching ignores case.
func Lookup(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "a":
		return Standard, nil
	case "ultra", "b":
		return Ultra, nil
	}

	return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
