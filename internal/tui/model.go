package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stepkit/internal/config"
	"github.com/alexisbeaulieu97/stepkit/internal/logger"
	model "github.com/alexisbeaulieu97/stepkit/internal/stepper"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/components"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/stepper"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/tokens"
)

// Options configures the host beyond what the flow document says.
type Options struct {
	Theme  components.Theme
	Logger *logger.Logger
	// Breakpoint overrides the narrow threshold in pixels. Zero defers to
	// the flow, then to the token table.
	Breakpoint int
	// Viewport replaces the width based classification when set.
	Viewport stepper.ViewportFunc
}

// Model is the Bubbletea host for one flow. It owns the active index; the
// presenters it renders only report intents back to it.
type Model struct {
	flow     *config.Flow
	seq      *model.Sequence
	contents []string

	active       int
	width        int
	height       int
	breakpoint   int
	orientation  stepper.Orientation
	alignment    stepper.Alignment
	variant      stepper.Variant
	showOptional bool
	showActions  bool
	narrow       bool
	viewport     stepper.ViewportFunc

	theme    components.Theme
	log      *logger.Logger
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel builds the host for flow. The flow must already be validated.
func NewModel(flow *config.Flow, opts Options) (Model, error) {
	seq, err := flow.Sequence()
	if err != nil {
		return Model{}, err
	}

	theme := opts.Theme
	if theme.Tokens == nil {
		theme = components.DefaultTheme()
	}

	px := opts.Breakpoint
	if px <= 0 {
		px = flow.Layout.Breakpoint
	}
	breakpoint := theme.Table().NarrowColumns()
	if px > 0 {
		breakpoint = tokens.Columns(px)
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return Model{
		flow:         flow,
		seq:          seq,
		contents:     flow.Contents(),
		active:       seq.Clamp(flow.Active),
		breakpoint:   breakpoint,
		orientation:  stepper.ParseOrientation(flow.Layout.Orientation),
		alignment:    stepper.ParseAlignment(flow.Layout.Alignment),
		variant:      stepper.ParseVariant(flow.Layout.MobileVariant),
		showOptional: flow.Layout.ShowOptional,
		showActions:  !flow.Layout.HideActions,
		viewport:     opts.Viewport,
		theme:        theme,
		log:          log.WithFields(map[string]any{"flow": flow.Name}),
		keys:         DefaultKeyMap(),
		help:         help.New(),
	}, nil
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Active returns the index of the active step.
func (m Model) Active() int {
	return m.active
}

// Total returns the number of steps in the flow.
func (m Model) Total() int {
	return m.seq.Len()
}

// Width is the last known terminal width, zero before the first resize.
func (m Model) Width() int {
	return m.width
}

// Breakpoint is the narrow threshold in columns.
func (m Model) Breakpoint() int {
	return m.breakpoint
}

// IsNarrow reports the current viewport classification.
func (m Model) IsNarrow() bool {
	return m.viewportFunc()()
}

func (m Model) viewportFunc() stepper.ViewportFunc {
	if m.viewport != nil {
		return m.viewport
	}
	return stepper.NarrowBelow(m.breakpoint, m.Width)
}

// Orientation returns the wide layout direction.
func (m Model) Orientation() stepper.Orientation {
	return m.orientation
}

// Alignment returns the wide label alignment.
func (m Model) Alignment() stepper.Alignment {
	return m.alignment
}

// Variant returns the narrow indicator style.
func (m Model) Variant() stepper.Variant {
	return m.variant
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) responsive() *stepper.ResponsiveStepper {
	return stepper.NewResponsiveStepper(m.seq, m.viewportFunc()).
		WithActive(m.active).
		WithOrientation(m.orientation).
		WithAlignment(m.alignment).
		WithShowOptional(m.showOptional).
		WithMobileVariant(m.variant).
		WithBackText(m.flow.Buttons.Back).
		WithNextText(m.flow.Buttons.Next)
}

func (m Model) desktop() *stepper.DesktopStepper {
	d := stepper.NewDesktopStepper(m.seq).
		WithActive(m.active).
		WithOrientation(m.orientation).
		WithAlignment(m.alignment).
		WithShowOptional(m.showOptional).
		WithShowActions(m.showActions).
		WithBackText(m.flow.Buttons.Back).
		WithNextText(m.flow.Buttons.Continue)
	if content := m.contents[m.active]; content != "" {
		d.WithMarkdown(content)
	}
	return d
}

// navigator is what both layouts expose for keyboard navigation.
type navigator interface {
	Back() bool
	Next() bool
	Select(index int) bool
}
