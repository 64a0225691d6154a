package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stepkit/internal/ui/tokens"
)

// ButtonVariant mirrors the three button treatments of the token set.
type ButtonVariant int

const (
	ButtonVariantText ButtonVariant = iota
	ButtonVariantContained
	ButtonVariantOutlined
)

func (v ButtonVariant) String() string {
	switch v {
	case ButtonVariantContained:
		return "contained"
	case ButtonVariantOutlined:
		return "outlined"
	default:
		return "text"
	}
}

// Button is a visual button. It has no behaviour of its own; the owner
// decides what pressing it means.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	role     tokens.ColorRole
	disabled bool
	active   bool
}

// NewButton creates a text button in the primary role.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantText,
		role:          tokens.RolePrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	cs := theme.Role(b.role)
	if b.disabled {
		// Disabled buttons lose their fill and take the neutral disabled shade.
		disabled := theme.Role(tokens.RoleDefault).Disabled
		style = style.UnsetBackground().Foreground(disabled).BorderForeground(disabled).Faint(true)
		return style
	}

	switch b.variant {
	case ButtonVariantContained:
		style = style.Background(cs.Main).Foreground(cs.OnMain)
	case ButtonVariantOutlined:
		style = style.Foreground(cs.Main).BorderForeground(cs.Border)
	default:
		style = style.Foreground(cs.Main)
	}

	if b.active {
		style = style.Underline(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithRole sets the colour role.
func (b *Button) WithRole(role tokens.ColorRole) *Button {
	b.role = role
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive marks the button as focused.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Variant returns the button variant.
func (b *Button) Variant() ButtonVariant {
	return b.variant
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsActive returns true if the button is active.
func (b *Button) IsActive() bool {
	return b.active
}

// TextButton creates a borderless button.
func TextButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantText)
}

// ContainedButton creates a filled button.
func ContainedButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantContained)
}

// OutlinedButton creates a bordered button.
func OutlinedButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantOutlined)
}
