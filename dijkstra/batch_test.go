package dijkstra_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/movement"
)

// TestSolveAll_Order runs both classic policies concurrently and checks that
// results come back in input order.
func TestSolveAll_Order(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := mustParse(referenceGrid)
	policies := []movement.Policy{movement.Ultra, movement.Standard, mustPolicy(0, 13)}
	res, err := dijkstra.SolveAll(context.Background(), g, policies)
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.EqualValues(t, 94, res[0].Cost)
	require.EqualValues(t, 102, res[1].Cost)

	// With no run constraints the answer is plain cell Dijkstra, which can
	// only be cheaper.
	require.True(t, res[2].Found)
	require.LessOrEqual(t, res[2].Cost, res[1].Cost)
}

// TestSolveAll_MatchesSolve compares concurrent and sequential results.
func TestSolveAll_MatchesSolve(t *testing.T) {
	defer goleak.VerifyNone(t)

	policies := []movement.Policy{movement.Standard, movement.Ultra, mustPolicy(1, 1), mustPolicy(2, 5)}
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGrid(seed, 8, 9, 0)
		all, err := dijkstra.SolveAll(context.Background(), g, policies)
		require.NoError(t, err)
		for i, p := range policies {
			one, err := dijkstra.Solve(g, p)
			require.NoError(t, err)
			require.Equal(t, one, all[i], "seed %d policy %s", seed, p)
		}
	}
}

// TestSolveAll_FirstErrorWins reports the failing policy and stops the others.
func TestSolveAll_FirstErrorWins(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := mustParse(referenceGrid)
	bad := movement.Policy{Name: "broken", MinRun: 5, MaxRun: 1}
	_, err := dijkstra.SolveAll(context.Background(), g, []movement.Policy{movement.Standard, bad})
	require.ErrorIs(t, err, movement.ErrInvalidPolicy)
	require.Contains(t, err.Error(), "broken")
}

// TestSolveAll_Deadline propagates an expired deadline.
func TestSolveAll_Deadline(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	_, err := dijkstra.SolveAll(ctx, mustParse(referenceGrid), []movement.Policy{movement.Standard})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestSolveAll_NilContext behaves like context.Background().
func TestSolveAll_NilContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	var ctx context.Context
	res, err := dijkstra.SolveAll(ctx, mustParse(referenceGrid), []movement.Policy{movement.Standard})
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.EqualValues(t, 102, res[0].Cost)
}

func TestSolveAll_NilGrid(t *testing.T) {
	_, err := dijkstra.SolveAll(context.Background(), nil, []movement.Policy{movement.Standard})
	require.ErrorIs(t, err, dijkstra.ErrNilGrid)
}
