package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

type solveFlags struct {
	policies      []string
	minRun        int
	maxRun        int
	maxExpansions int
	timeout       time.Duration
	showPath      bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Compute the minimum route cost for one or more policies",
		Long: `Reads a grid of digits from file, or from stdin when no file is given,
and prints "<policy>: <cost>" for every selected policy, or
"<policy>: unreachable" when no legal route exists.

Policies come from --policy (repeatable), from --min-run/--max-run for a
one-off custom policy, or default to every policy in the configuration.`,
		Example: `  crucible solve input.txt
  crucible solve --policy standard --policy ultra input.txt
  crucible solve --min-run 0 --max-run 2 --path < input.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, &f, args)
		},
	}
	fl := cmd.Flags()
	fl.StringSliceVarP(&f.policies, "policy", "p", nil, "policy name to run (repeatable)")
	fl.IntVar(&f.minRun, "min-run", 0, "custom policy: steps required before turning or stopping")
	fl.IntVar(&f.maxRun, "max-run", 0, "custom policy: steps after which a turn is forced")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "abort a search after this many states (0 = no cap)")
	fl.DurationVar(&f.timeout, "timeout", 0, "abort after this long (0 = no timeout)")
	fl.BoolVar(&f.showPath, "path", false, "draw the chosen route over the grid")

	return cmd
}

func runSolve(cmd *cobra.Command, a *app, f *solveFlags, args []string) error {
	g, err := readGrid(cmd, args)
	if err != nil {
		return err
	}
	a.logger.Debug("parsed grid", zap.Int("rows", g.Rows()), zap.Int("cols", g.Cols()))

	policies, err := selectPolicies(cmd, a, f)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := a.cfg.Search.Timeout
	if cmd.Flags().Changed("timeout") {
		timeout = f.timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	budget := a.cfg.Search.MaxExpansions
	if cmd.Flags().Changed("max-expansions") {
		budget = f.maxExpansions
	}
	opts := []dijkstra.Option{dijkstra.WithMaxExpansions(budget)}
	if f.showPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	start := time.Now()
	results, err := dijkstra.SolveAll(ctx, g, policies, opts...)
	if err != nil {
		a.logger.Error("search failed", zap.Error(err))
		return err
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	for i, res := range results {
		p := policies[i]
		a.logger.Info("solved",
			zap.String("policy", p.String()),
			zap.Bool("found", res.Found),
			zap.Int64("cost", res.Cost),
			zap.Int("expanded", res.Expanded),
			zap.Int("pushed", res.Pushed),
			zap.Duration("elapsed", elapsed),
		)
		if !res.Found {
			fmt.Fprintf(out, "%s: unreachable\n", p.Name)
			continue
		}
		fmt.Fprintf(out, "%s: %d\n", p.Name, res.Cost)
		if f.showPath {
			fmt.Fprint(out, renderPath(g, res.Path))
		}
	}

	return nil
}

// readGrid parses the file named in args, or stdin when args is empty or "-".
func readGrid(cmd *cobra.Command, args []string) (*gridgraph.Grid, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open grid: %w", err)
		}
		defer file.Close()
		r = file
	}

	return gridgraph.Read(r)
}

// selectPolicies resolves --min-run/--max-run, then --policy, then the config.
func selectPolicies(cmd *cobra.Command, a *app, f *solveFlags) ([]movement.Policy, error) {
	fl := cmd.Flags()
	if fl.Changed("min-run") || fl.Changed("max-run") {
		if len(f.policies) > 0 {
			return nil, errors.New("--policy cannot be combined with --min-run/--max-run")
		}
		p, err := movement.NewPolicy(f.minRun, f.maxRun)
		if err != nil {
			return nil, err
		}

		return []movement.Policy{p.Named("custom")}, nil
	}
	if len(f.policies) == 0 {
		return a.cfg.MovementPolicies(), nil
	}
	out := make([]movement.Policy, 0, len(f.policies))
	for _, name := range f.policies {
		p, err := a.cfg.Policy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}
