package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	settingsPath string
	logLevel     string
	logFile      string
	theme        string
	tokens       string
	breakpoint   int
	noColor      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stepkit",
		Short:         "stepkit renders multi-step progress indicators in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.settingsPath, "settings", "", "Path to a stepkit settings file")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of discarding them")
	pf.StringVar(&flags.theme, "theme", "light", "Colour theme (light, dark)")
	pf.StringVar(&flags.tokens, "tokens", "", "Path to a design token override file")
	pf.IntVar(&flags.breakpoint, "breakpoint", 0, "Narrow viewport threshold in pixels")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colour output")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
