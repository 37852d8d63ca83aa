package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrasp/qbfpt"
)

func newTriplesCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "triples",
		Short: "Print the generated prohibited triples (1-based)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ts, err := qbfpt.Generate(n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range ts.Triples() {
				fmt.Fprintln(out, t)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 0, "number of variables")
	_ = cmd.MarkFlagRequired("n")

	return cmd
}
