// Package dijkstra defines the search state, configuration options, and result
// types for constrained-run shortest paths over a gridgraph.Grid.
//
// A search node is a State: the current cell, the heading of the last move,
// and how many consecutive steps were taken in that heading. Two States are
// the same node exactly when all three fields match, so State is used directly
// as a map key.
//
// Options:
//
//	– Ctx:           cancellation and deadlines, checked before every pop.
//	– MaxExpansions: cap on finalized states (0 = no cap).
//	– ReturnPath:    reconstruct the optimal State sequence.
//	– OnPop:         hook called for every authoritative pop.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the grid pointer is nil.
//	– ErrOptionViolation if an Option was given an invalid value.
//	– ErrBudgetExceeded  if MaxExpansions was reached before the goal.
//	– ErrNoPath          from Result.Err when the goal is unreachable.
package dijkstra

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Solve.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrBudgetExceeded indicates the expansion cap was hit before the goal.
	ErrBudgetExceeded = errors.New("dijkstra: expansion budget exceeded")

	// ErrNoPath indicates that no legal route reaches the goal.
	// Solve itself reports this through Result.Found; Result.Err converts it.
	ErrNoPath = errors.New("dijkstra: no path to goal")
)

// State is one node of the augmented search graph.
//
//	Pos – current cell.
//	Dir – heading of the last move (movement.None only for the start).
//	Run – consecutive steps taken in Dir (0 only for the start).
type State struct {
	Pos gridgraph.Position
	Dir movement.Direction
	Run int
}

// String renders the state as "(row,col) dir×run".
func (s State) String() string {
	return fmt.Sprintf("%s %s×%d", s.Pos, s.Dir, s.Run)
}

// less orders states for deterministic tie-breaking: Pos row-major, then Dir, then Run.
func (s State) less(o State) bool {
	if s.Pos != o.Pos {
		return s.Pos.Less(o.Pos)
	}
	if s.Dir != o.Dir {
		return s.Dir < o.Dir
	}

	return s.Run < o.Run
}

// Outcome is the terminal phase of a search driver.
type Outcome int

const (
	// Initialized: the frontier has not been seeded yet.
	Initialized Outcome = iota
	// Running: the relaxation loop is in progress.
	Running
	// Found: a goal state satisfying the policy was popped.
	Found
	// Exhausted: the frontier emptied without reaching the goal.
	Exhausted
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the outcome of a single Solve call.
//
//	Cost     – minimum total entry cost; meaningful only when Found.
//	Found    – whether the goal was reached under the policy.
//	Outcome  – Found or Exhausted.
//	Expanded – number of states finalized (popped and relaxed).
//	Pushed   – number of frontier insertions, including the start.
//	Path     – start-to-goal states when WithReturnPath was set and Found.
type Result struct {
	Cost     int64
	Found    bool
	Outcome  Outcome
	Expanded int
	Pushed   int
	Path     []State
}

// Err returns ErrNoPath when the goal was not reached, nil otherwise.
func (r Result) Err() error {
	if !r.Found {
		return ErrNoPath
	}

	return nil
}

// Options configures the search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts with ErrBudgetExceeded once this many
	// states have been finalized without reaching the goal.
	MaxExpansions int

	// ReturnPath fills Result.Path.
	ReturnPath bool

	// OnPop is called with every state that is finalized, in pop order,
	// together with its cumulative cost.
	OnPop func(s State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion cap
//   - no path reconstruction
//   - a no-op OnPop hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		ReturnPath:    false,
		OnPop:         func(State, int64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of finalized states.
//
//	n > 0: abort with ErrBudgetExceeded after n expansions
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithReturnPath enables reconstruction of the optimal State sequence.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnPop registers a callback run for every finalized state.
func WithOnPop(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}
