package dijkstra

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// SolveAll runs Solve once per policy, concurrently, and returns the results
// in the order of policies. The grid is shared read-only; every search gets
// its own frontier and visited set.
//
// The first error cancels the remaining searches and is returned with the
// name of the failing policy. A nil ctx means context.Background(). A
// WithContext option in opts is overridden by the group context derived from
// ctx, and an OnPop hook is called from several goroutines at once.
func SolveAll(ctx context.Context, g *gridgraph.Grid, policies []movement.Policy, opts ...Option) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]Result, len(policies))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, p := range policies {
		i, p := i, p
		eg.Go(func() error {
			// egCtx goes last so it wins over any caller-supplied context.
			res, err := Solve(g, p, append(append([]Option(nil), opts...), WithContext(egCtx))...)
			if err != nil {
				return fmt.Errorf("policy %s: %w", p, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
