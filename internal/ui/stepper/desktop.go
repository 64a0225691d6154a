package stepper

import (
	"github.com/charmbracelet/lipgloss"

	model "github.com/alexisbeaulieu97/stepkit/internal/stepper"
	"github.com/alexisbeaulieu97/stepkit/internal/ui"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/components"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/tokens"
)

// PlaceholderText fills the content slot when no content is given.
const PlaceholderText = "Instance Slot"

const (
	contentMinHeightPx = 200
	contentPaddingPx   = 24
	defaultSlotWidth   = 60
)

var dashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

// DesktopStepper is a Stepper with a content slot under it and a
// Back / Continue action row.
type DesktopStepper struct {
	stepper      *Stepper
	content      ui.Renderable
	markdown     string
	onBack       func()
	onNext       func()
	backText     string
	nextText     string
	backDisabled bool
	nextDisabled bool
	showActions  bool
}

// NewDesktopStepper creates a desktop stepper over seq with actions shown.
func NewDesktopStepper(seq *model.Sequence) *DesktopStepper {
	return &DesktopStepper{
		stepper:     NewStepper(seq),
		backText:    "Back",
		nextText:    "Continue",
		showActions: true,
	}
}

// Stepper exposes the embedded sequence presenter.
func (d *DesktopStepper) Stepper() *Stepper {
	return d.stepper
}

// WithActive sets the active index.
func (d *DesktopStepper) WithActive(index int) *DesktopStepper {
	d.stepper.WithActive(index)
	return d
}

// WithOrientation sets the stepper direction.
func (d *DesktopStepper) WithOrientation(o Orientation) *DesktopStepper {
	d.stepper.WithOrientation(o)
	return d
}

// WithAlignment sets the stepper label alignment.
func (d *DesktopStepper) WithAlignment(a Alignment) *DesktopStepper {
	d.stepper.WithAlignment(a)
	return d
}

// WithShowOptional shows optional captions.
func (d *DesktopStepper) WithShowOptional(show bool) *DesktopStepper {
	d.stepper.WithShowOptional(show)
	return d
}

// OnStepSelected registers the step selection callback.
func (d *DesktopStepper) OnStepSelected(fn func(index int)) *DesktopStepper {
	d.stepper.OnStepSelected(fn)
	return d
}

// WithContent fills the slot with a renderable. It wins over markdown.
func (d *DesktopStepper) WithContent(content ui.Renderable) *DesktopStepper {
	d.content = content
	return d
}

// WithMarkdown fills the slot with rendered markdown.
func (d *DesktopStepper) WithMarkdown(markdown string) *DesktopStepper {
	d.markdown = markdown
	return d
}

// OnBack registers the back callback.
func (d *DesktopStepper) OnBack(fn func()) *DesktopStepper {
	d.onBack = fn
	return d
}

// OnNext registers the continue callback.
func (d *DesktopStepper) OnNext(fn func()) *DesktopStepper {
	d.onNext = fn
	return d
}

// WithBackText sets the back caption. Empty keeps the current one.
func (d *DesktopStepper) WithBackText(text string) *DesktopStepper {
	if text != "" {
		d.backText = text
	}
	return d
}

// WithNextText sets the continue caption. Empty keeps the current one.
func (d *DesktopStepper) WithNextText(text string) *DesktopStepper {
	if text != "" {
		d.nextText = text
	}
	return d
}

// WithBackDisabled disables back regardless of position.
func (d *DesktopStepper) WithBackDisabled(disabled bool) *DesktopStepper {
	d.backDisabled = disabled
	return d
}

// WithNextDisabled disables continue regardless of position.
func (d *DesktopStepper) WithNextDisabled(disabled bool) *DesktopStepper {
	d.nextDisabled = disabled
	return d
}

// WithShowActions toggles the action row.
func (d *DesktopStepper) WithShowActions(show bool) *DesktopStepper {
	d.showActions = show
	return d
}

func (d *DesktopStepper) total() int {
	if seq := d.stepper.Sequence(); seq != nil {
		return seq.Len()
	}
	return 1
}

// BackDisabled is true when the caller disabled back or the first step is active.
func (d *DesktopStepper) BackDisabled() bool {
	atStart, _ := model.Boundaries(d.stepper.active, d.total())
	return d.backDisabled || atStart
}

// NextDisabled is true when the caller disabled continue or the last step is active.
func (d *DesktopStepper) NextDisabled() bool {
	_, atEnd := model.Boundaries(d.stepper.active, d.total())
	return d.nextDisabled || atEnd
}

// Back fires the back callback once if enabled. Hidden actions cannot be
// pressed.
func (d *DesktopStepper) Back() bool {
	if !d.showActions || d.BackDisabled() {
		return false
	}
	if d.onBack != nil {
		d.onBack()
	}
	return true
}

// Next fires the continue callback once if enabled.
func (d *DesktopStepper) Next() bool {
	if !d.showActions || d.NextDisabled() {
		return false
	}
	if d.onNext != nil {
		d.onNext()
	}
	return true
}

// Select forwards to the stepper.
func (d *DesktopStepper) Select(index int) bool {
	return d.stepper.Select(index)
}

// View renders with the default theme.
func (d *DesktopStepper) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the stepper, the content slot and the actions.
func (d *DesktopStepper) ViewWithContext(ctx components.RenderContext) string {
	if d.stepper.Sequence() == nil {
		return ""
	}

	width := ctx.AvailableWidth()
	if width <= 0 {
		width = defaultSlotWidth
	}
	inset := tokens.Columns(16)

	stepperView := lipgloss.NewStyle().
		PaddingLeft(inset).
		PaddingRight(inset).
		Render(d.stepper.ViewWithContext(ctx.WithParentWidth(width - 2*inset)))

	children := []ui.Renderable{ui.Static(stepperView), ui.Static(d.slot(ctx, width))}
	if d.showActions {
		children = append(children, d.actions())
	}

	return components.VStack(children...).WithGap(1).ViewWithContext(ctx)
}

func (d *DesktopStepper) slot(ctx components.RenderContext, width int) string {
	theme := ctx.Theme
	padding := tokens.Columns(contentPaddingPx)
	inner := width - 2 - 2*padding
	if inner < 1 {
		inner = 1
	}

	var body string
	switch {
	case d.content != nil:
		body = components.Render(d.content, ctx.WithParentWidth(inner).WithConstraints(components.WithMaxWidth(inner)))
	case d.markdown != "":
		body = renderMarkdown(d.markdown, inner, theme.Dark)
	default:
		body = components.CaptionText(PlaceholderText).ViewWithContext(ctx)
	}

	return lipgloss.NewStyle().
		Border(dashedBorder).
		BorderForeground(theme.Stepper.DisabledText).
		PaddingLeft(padding).
		PaddingRight(padding).
		Width(width-2).
		Height(tokens.Rows(contentMinHeightPx)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (d *DesktopStepper) actions() ui.Renderable {
	back := components.TextButton(d.backText).WithDisabled(d.BackDisabled())
	next := components.ContainedButton(d.nextText).
		WithRole(tokens.RoleSecondary).
		WithDisabled(d.NextDisabled())
	return components.HStack(back, next).WithGap(2)
}
