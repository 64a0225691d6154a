package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stepkit/internal/config"
	"github.com/alexisbeaulieu97/stepkit/internal/tui"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/stepper"
)

const fallbackWidth = 80

type renderOptions struct {
	active int
	width  int
	narrow bool
	wide   bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render FLOW",
		Short: "Print a flow once and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().IntVar(&opts.active, "active", 0, "Active step index (defaults to the flow's)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width in columns (defaults to the terminal width)")
	cmd.Flags().BoolVar(&opts.narrow, "narrow", false, "Force the narrow layout")
	cmd.Flags().BoolVar(&opts.wide, "wide", false, "Force the wide layout")
	cmd.MarkFlagsMutuallyExclusive("narrow", "wide")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts renderOptions, path string) error {
	app, err := loadAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	flow, err := config.ParseFlow(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("active") {
		flow.Active = opts.active
	}

	theme, err := app.theme(flow)
	if err != nil {
		return err
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth(os.Stdout, fallbackWidth)
	}

	m, err := tui.NewModel(flow, tui.Options{
		Theme:      theme,
		Logger:     app.log,
		Breakpoint: app.settings.Breakpoint,
		Viewport:   forcedViewport(opts),
	})
	if err != nil {
		return err
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: width})
	m = updated.(tui.Model)

	fmt.Fprintln(cmd.OutOrStdout(), m.Snapshot())
	return nil
}

// forcedViewport pins the layout when --narrow or --wide is given.
func forcedViewport(opts renderOptions) stepper.ViewportFunc {
	switch {
	case opts.narrow:
		return func() bool { return true }
	case opts.wide:
		return func() bool { return false }
	default:
		return nil
	}
}
