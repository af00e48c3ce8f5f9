package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPoliciesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the configured movement policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tMIN RUN\tMAX RUN")
			for _, p := range a.cfg.MovementPolicies() {
				fmt.Fprintf(tw, "%s\t%d\t%d\n", p.Name, p.MinRun, p.MaxRun)
			}

			return tw.Flush()
		},
	}
}
