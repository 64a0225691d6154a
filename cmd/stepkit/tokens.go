package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "Print the resolved design tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			table, err := app.tokenTable(nil)
			if err != nil {
				return err
			}
			for _, line := range table.Describe() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
