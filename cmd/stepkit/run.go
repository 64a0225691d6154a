package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stepkit/internal/config"
	"github.com/alexisbeaulieu97/stepkit/internal/tui"
)

var errNotInteractive = errors.New("run needs an interactive terminal; use render for one-shot output")

// programRunner starts the interactive program. Tests replace it.
var programRunner = func(m tui.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run FLOW",
		Short: "Walk through a flow interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
				return errNotInteractive
			}
			return runFlow(cmd, flags, args[0])
		},
	}
}

func runFlow(cmd *cobra.Command, flags *rootFlags, path string) error {
	app, err := loadAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	flow, err := config.ParseFlow(path)
	if err != nil {
		return err
	}

	theme, err := app.theme(flow)
	if err != nil {
		return err
	}

	m, err := tui.NewModel(flow, tui.Options{
		Theme:      theme,
		Logger:     app.log,
		Breakpoint: app.settings.Breakpoint,
	})
	if err != nil {
		return err
	}

	app.log.Info("starting interactive session")
	if err := programRunner(m); err != nil {
		app.log.Error(err, "interactive session failed")
		return err
	}
	return nil
}
