package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stepkit/internal/config"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FLOW",
		Short: "Check a flow document without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			flow, err := config.ParseFlow(args[0])
			if err != nil {
				return err
			}
			seq, err := flow.Sequence()
			if err != nil {
				return err
			}
			if _, err := app.tokenTable(flow); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "flow %q is valid (%d steps)\n", flow.Name, seq.Len())
			return nil
		},
	}
}
