package stepper

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	model "github.com/alexisbeaulieu97/stepkit/internal/stepper"
	"github.com/alexisbeaulieu97/stepkit/internal/ui"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/components"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/tokens"
)

// Orientation is the direction steps are laid out in.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation maps "vertical" to OrientationVertical and anything else
// to OrientationHorizontal.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(s, "vertical") {
		return OrientationVertical
	}
	return OrientationHorizontal
}

// Alignment is the placement of labels relative to their badge.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

func (a Alignment) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "left"
}

// ParseAlignment maps "center" to AlignCenter and anything else to AlignLeft.
func ParseAlignment(s string) Alignment {
	if strings.EqualFold(s, "center") {
		return AlignCenter
	}
	return AlignLeft
}

const minConnector = 2

// Stepper draws a full sequence with connectors between the steps.
type Stepper struct {
	seq          *model.Sequence
	active       int
	orientation  Orientation
	alignment    Alignment
	showOptional bool
	onSelect     func(index int)
}

// NewStepper creates a horizontal, left-aligned stepper over seq.
func NewStepper(seq *model.Sequence) *Stepper {
	return &Stepper{seq: seq}
}

// WithActive sets the active index. Out-of-range values are clamped when
// rendering.
func (s *Stepper) WithActive(index int) *Stepper {
	s.active = index
	return s
}

// WithOrientation sets the layout direction.
func (s *Stepper) WithOrientation(o Orientation) *Stepper {
	s.orientation = o
	return s
}

// WithAlignment sets the label alignment. Vertical steppers ignore it.
func (s *Stepper) WithAlignment(a Alignment) *Stepper {
	s.alignment = a
	return s
}

// WithShowOptional shows optional captions under labels.
func (s *Stepper) WithShowOptional(show bool) *Stepper {
	s.showOptional = show
	return s
}

// OnStepSelected registers the callback fired by Select.
func (s *Stepper) OnStepSelected(fn func(index int)) *Stepper {
	s.onSelect = fn
	return s
}

// Sequence returns the rendered sequence.
func (s *Stepper) Sequence() *model.Sequence {
	return s.seq
}

// Active returns the clamped active index.
func (s *Stepper) Active() int {
	if s.seq == nil {
		return 0
	}
	return s.seq.Clamp(s.active)
}

// Orientation returns the layout direction.
func (s *Stepper) Orientation() Orientation {
	return s.orientation
}

// EffectiveAlignment is the alignment actually drawn. Vertical layouts
// always place the label left, next to its badge.
func (s *Stepper) EffectiveAlignment() Alignment {
	if s.orientation == OrientationVertical {
		return AlignLeft
	}
	return s.alignment
}

// ViewStates returns the per-step states drawn by the next render.
func (s *Stepper) ViewStates() []model.ViewState {
	if s.seq == nil {
		return nil
	}
	return s.seq.ViewStates(s.active)
}

// Select reports that the user activated the step at index. It fires the
// callback once and returns true, unless the step does not exist or is
// disabled, in which case nothing happens.
func (s *Stepper) Select(index int) bool {
	if s.seq == nil || !s.seq.Contains(index) {
		return false
	}
	if s.seq.Step(index).Disabled {
		return false
	}
	if s.onSelect != nil {
		s.onSelect(index)
	}
	return true
}

// View renders the stepper with the default theme.
func (s *Stepper) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the stepper.
func (s *Stepper) ViewWithContext(ctx components.RenderContext) string {
	states := s.ViewStates()
	if len(states) == 0 {
		return ""
	}
	if s.orientation == OrientationVertical {
		return s.viewVertical(states, ctx)
	}
	return s.viewHorizontal(states, ctx)
}

func (s *Stepper) stepBlock(state model.ViewState, ctx components.RenderContext) ui.Renderable {
	theme := ctx.Theme
	badge := badgeFor(state, theme)
	label := labelBlock(state, s.showOptional, theme)

	if s.EffectiveAlignment() == AlignCenter {
		return components.VStack(badge, label).WithCrossAlign(components.CrossCenter)
	}
	gap := tokens.Columns(theme.Table().Stepper().LabelGap)
	return components.HStack(badge, label).WithGap(gap)
}

func (s *Stepper) viewHorizontal(states []model.ViewState, ctx components.RenderContext) string {
	blocks := make([]string, len(states))
	used := 0
	for i, state := range states {
		blocks[i] = components.Render(s.stepBlock(state, ctx), ctx)
		used += lipgloss.Width(blocks[i])
	}

	connectors := len(states) - 1
	length := minConnector * 2
	if width := ctx.AvailableWidth(); width > 0 && connectors > 0 {
		// Connectors share the free width, one cell of margin on each side.
		free := width - used - connectors*2
		length = max(minConnector, free/connectors)
	}

	parts := make([]ui.Renderable, 0, len(states)*2)
	for i, block := range blocks {
		if i > 0 {
			parts = append(parts, components.HorizontalDivider().
				WithLength(length).
				WithColor(connectorColour(states[i], ctx.Theme)))
		}
		parts = append(parts, ui.Static(block))
	}

	// Centered labels hang below the badge row, so connectors join the top.
	row := components.HStack(parts...).WithGap(1).WithCrossAlign(components.CrossStart).ViewWithContext(ctx)
	// Steps that still do not fit are clipped; the narrow layout covers
	// viewports below the breakpoint.
	if width := ctx.AvailableWidth(); width > 0 {
		row = lipgloss.NewStyle().MaxWidth(width).Render(row)
	}
	return row
}

func (s *Stepper) viewVertical(states []model.ViewState, ctx components.RenderContext) string {
	height := tokens.Rows(ctx.Theme.Table().Stepper().MinConnectorHeight)

	rows := make([]ui.Renderable, 0, len(states)*2)
	for i, state := range states {
		block := components.Render(s.stepBlock(state, ctx), ctx)
		if i > 0 {
			badgeWidth := lipgloss.Width(components.Render(badgeFor(state, ctx.Theme), ctx))
			line := components.VerticalDivider(height).
				WithColor(connectorColour(state, ctx.Theme)).
				ViewWithContext(ctx)
			rows = append(rows, ui.Static(lipgloss.NewStyle().PaddingLeft((badgeWidth-1)/2).Render(line)))
		}
		rows = append(rows, ui.Static(block))
	}

	return components.VStack(rows...).ViewWithContext(ctx)
}
