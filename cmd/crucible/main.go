// Command crucible computes minimum-cost routes across a digit grid under
// run-length movement policies.
//
// Usage:
//
//	crucible solve input.txt
//	crucible solve --policy ultra < input.txt
//	crucible solve --min-run 2 --max-run 5 --path input.txt
//	crucible solve --config crucible.yaml input.txt
//	crucible policies
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/crucible/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by every subcommand.
type app struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
	cfg        config.Config
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the command tree around a. A non-nil a.logger is kept,
// which lets tests inject zap.NewNop().
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "crucible",
		Short: "Minimum-cost grid routing with run-length constraints",
		Long: `crucible finds the cheapest route from the top-left to the bottom-right
cell of a grid of digits, where each digit is the cost of entering that cell.

Routes obey a movement policy: a minimum number of straight steps before a
turn or stop is allowed, and a maximum after which a turn is forced.
Reversing direction is never allowed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				zcfg := zap.NewProductionConfig()
				if a.verbose {
					zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				logger, err := zcfg.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = logger
			}

			a.cfg = config.Default()
			if a.configPath != "" {
				cfg, err := config.Load(a.configPath)
				if err != nil {
					return err
				}
				a.cfg = cfg
				a.logger.Debug("loaded config", zap.String("path", a.configPath), zap.Int("policies", len(cfg.Policies)))
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with named policies and search limits")

	root.AddCommand(newSolveCmd(a), newPoliciesCmd(a), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the crucible version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "crucible", version)
		},
	}
}
