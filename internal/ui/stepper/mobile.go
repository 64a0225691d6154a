package stepper

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	model "github.com/alexisbeaulieu97/stepkit/internal/stepper"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/components"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/tokens"
)

// Variant is the indicator style of a MobileStepper.
type Variant int

const (
	VariantDots Variant = iota
	VariantText
	VariantProgress
)

func (v Variant) String() string {
	switch v {
	case VariantText:
		return "text"
	case VariantProgress:
		return "progress"
	default:
		return "dots"
	}
}

// Next cycles dots, text, progress.
func (v Variant) Next() Variant {
	return (v + 1) % 3
}

// ParseVariant maps "text" and "progress" to their variant and anything
// else to VariantDots.
func ParseVariant(s string) Variant {
	switch strings.ToLower(s) {
	case "text":
		return VariantText
	case "progress":
		return VariantProgress
	default:
		return VariantDots
	}
}

// progressWidthPx is the fixed width of the progress bar.
const progressWidthPx = 200

// MobileStepper is the compact back / indicator / next row used on narrow
// viewports. It only knows the position and the total.
type MobileStepper struct {
	total        int
	active       int
	variant      Variant
	onBack       func()
	onNext       func()
	backDisabled bool
	nextDisabled bool
	backText     string
	nextText     string
}

// NewMobileStepper creates a dots stepper over total steps. A total below
// one is drawn as a single step.
func NewMobileStepper(total int) *MobileStepper {
	if total < 1 {
		total = 1
	}
	return &MobileStepper{
		total:    total,
		variant:  VariantDots,
		backText: "Back",
		nextText: "Next",
	}
}

// WithActive sets the active index.
func (m *MobileStepper) WithActive(index int) *MobileStepper {
	m.active = index
	return m
}

// WithVariant sets the indicator style.
func (m *MobileStepper) WithVariant(v Variant) *MobileStepper {
	m.variant = v
	return m
}

// OnBack registers the back callback.
func (m *MobileStepper) OnBack(fn func()) *MobileStepper {
	m.onBack = fn
	return m
}

// OnNext registers the next callback.
func (m *MobileStepper) OnNext(fn func()) *MobileStepper {
	m.onNext = fn
	return m
}

// WithBackDisabled disables the back button regardless of position.
func (m *MobileStepper) WithBackDisabled(disabled bool) *MobileStepper {
	m.backDisabled = disabled
	return m
}

// WithNextDisabled disables the next button regardless of position.
func (m *MobileStepper) WithNextDisabled(disabled bool) *MobileStepper {
	m.nextDisabled = disabled
	return m
}

// WithBackText sets the back caption. Empty keeps the current one.
func (m *MobileStepper) WithBackText(text string) *MobileStepper {
	if text != "" {
		m.backText = text
	}
	return m
}

// WithNextText sets the next caption. Empty keeps the current one.
func (m *MobileStepper) WithNextText(text string) *MobileStepper {
	if text != "" {
		m.nextText = text
	}
	return m
}

// Total returns the number of steps.
func (m *MobileStepper) Total() int {
	return m.total
}

// Active returns the clamped active index.
func (m *MobileStepper) Active() int {
	return model.ClampIndex(m.active, m.total)
}

// Variant returns the indicator style.
func (m *MobileStepper) Variant() Variant {
	return m.variant
}

// BackDisabled is true when the caller disabled back or the first step is active.
func (m *MobileStepper) BackDisabled() bool {
	atStart, _ := model.Boundaries(m.active, m.total)
	return m.backDisabled || atStart
}

// NextDisabled is true when the caller disabled next or the last step is active.
func (m *MobileStepper) NextDisabled() bool {
	_, atEnd := model.Boundaries(m.active, m.total)
	return m.nextDisabled || atEnd
}

// Back fires the back callback once if the button is enabled.
func (m *MobileStepper) Back() bool {
	if m.BackDisabled() {
		return false
	}
	if m.onBack != nil {
		m.onBack()
	}
	return true
}

// Next fires the next callback once if the button is enabled.
func (m *MobileStepper) Next() bool {
	if m.NextDisabled() {
		return false
	}
	if m.onNext != nil {
		m.onNext()
	}
	return true
}

// Fraction is the share of the progress bar that is filled.
func (m *MobileStepper) Fraction() float64 {
	return model.ProgressFraction(m.active, m.total)
}

// Indicator renders the variant between the two buttons.
func (m *MobileStepper) Indicator(ctx components.RenderContext) string {
	theme := ctx.Theme
	active := m.Active()

	switch m.variant {
	case VariantText:
		return components.BodyText(fmt.Sprintf("%d/%d", active+1, m.total)).ViewWithContext(ctx)
	case VariantProgress:
		bar := progress.New(
			progress.WithSolidFill(string(theme.Stepper.Active)),
			progress.WithoutPercentage(),
			progress.WithWidth(tokens.Columns(progressWidthPx)),
			progress.WithColorProfile(lipgloss.ColorProfile()),
		)
		return bar.ViewAs(m.Fraction())
	default:
		on := lipgloss.NewStyle().Foreground(theme.Stepper.Active)
		off := lipgloss.NewStyle().Foreground(theme.Stepper.Connector)
		dots := make([]string, m.total)
		for i := range dots {
			if i == active {
				dots[i] = on.Render(dotActive)
			} else {
				dots[i] = off.Render(dotIdle)
			}
		}
		return strings.Join(dots, " ")
	}
}

func (m *MobileStepper) buttons() (back, next *components.Button) {
	back = components.TextButton(backArrow + " " + m.backText).
		WithRole(tokens.RoleSecondary).
		WithDisabled(m.BackDisabled())
	next = components.TextButton(m.nextText + " " + nextArrow).
		WithRole(tokens.RoleSecondary).
		WithDisabled(m.NextDisabled())
	return back, next
}

// View renders the stepper with the default theme.
func (m *MobileStepper) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders back, indicator and next on one row. With a known
// width the indicator is centred between the buttons.
func (m *MobileStepper) ViewWithContext(ctx components.RenderContext) string {
	back, next := m.buttons()
	backView := back.ViewWithContext(ctx)
	nextView := next.ViewWithContext(ctx)
	indicator := m.Indicator(ctx)

	gap := 2
	if width := ctx.AvailableWidth(); width > 0 {
		free := width - lipgloss.Width(backView) - lipgloss.Width(nextView) - lipgloss.Width(indicator)
		if free > 2*gap {
			gap = free / 2
		}
	}
	indicator = lipgloss.NewStyle().PaddingLeft(gap).PaddingRight(gap).Render(indicator)

	return lipgloss.JoinHorizontal(lipgloss.Center, backView, indicator, nextView)
}
