package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stepkit/internal/config"
	"github.com/alexisbeaulieu97/stepkit/internal/logger"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/components"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/tokens"
)

// flagKeys maps persistent flag names to settings keys.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"log-file":   "log_file",
	"theme":      "theme",
	"tokens":     "tokens",
	"breakpoint": "breakpoint",
	"no-color":   "no_color",
}

// appContext is what every subcommand needs after settings are resolved.
type appContext struct {
	settings *config.Settings
	log      *logger.Logger
	closeLog func() error
}

func loadAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	v, err := config.NewViper()
	if err != nil {
		return nil, err
	}

	persistent := cmd.Root().PersistentFlags()
	for name, key := range flagKeys {
		flag := persistent.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("binding --%s: %w", name, err)
		}
	}

	settings, err := config.LoadSettings(v, flags.settingsPath)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logger.OpenFile(settings.LogFile, logger.Options{Level: settings.LogLevel})
	if err != nil {
		return nil, err
	}

	configureColorProfile(settings.NoColor, os.Stdout)
	log.DebugFields("settings resolved", map[string]any{
		"theme":      settings.Theme,
		"tokens":     settings.Tokens,
		"breakpoint": settings.Breakpoint,
		"no_color":   settings.NoColor,
	})

	return &appContext{settings: settings, log: log, closeLog: closeLog}, nil
}

func (a *appContext) Close() {
	if a == nil || a.closeLog == nil {
		return
	}
	_ = a.closeLog()
}

// tokenTable resolves design tokens. The settings file wins over the
// flow's own reference; neither means the built-in table.
func (a *appContext) tokenTable(flow *config.Flow) (*tokens.Table, error) {
	path := a.settings.Tokens
	if path == "" && flow != nil {
		path = flow.Tokens
	}
	if path == "" {
		return tokens.Default(), nil
	}
	return tokens.Load(path)
}

func (a *appContext) theme(flow *config.Flow) (components.Theme, error) {
	table, err := a.tokenTable(flow)
	if err != nil {
		return components.Theme{}, err
	}
	return components.ThemeByName(a.settings.Theme, table), nil
}

// configureColorProfile drops colour when asked to, when NO_COLOR is set,
// or when out is not a terminal.
func configureColorProfile(noColor bool, out *os.File) {
	if noColor || os.Getenv("NO_COLOR") != "" || !isTerminal(out) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of out, or fallback when it is unknown.
func terminalWidth(out *os.File, fallback int) int {
	if !isTerminal(out) {
		return fallback
	}
	width, _, err := term.GetSize(int(out.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
