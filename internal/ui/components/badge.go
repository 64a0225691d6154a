package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stepkit/internal/ui/tokens"
)

// Badge is a small status indicator, used for step numbers and marks.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
	role    tokens.ColorRole
	colour  lipgloss.TerminalColor
	onColor lipgloss.TerminalColor
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantFilled BadgeVariant = iota
	BadgeVariantOutlined
)

// NewBadge creates a filled badge in the default role.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantFilled,
		role:          tokens.RoleDefault,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	cs := theme.Role(b.role)
	var colour, onColor lipgloss.TerminalColor = cs.Main, cs.OnMain
	if b.colour != nil {
		colour = b.colour
	}
	if b.onColor != nil {
		onColor = b.onColor
	}

	if b.variant == BadgeVariantOutlined {
		return style.Foreground(colour)
	}
	return style.Background(colour).Foreground(onColor)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithRole colours the badge from a token role.
func (b *Badge) WithRole(role tokens.ColorRole) *Badge {
	b.role = role
	return b
}

// WithColors overrides the role colours. Nil keeps the role colour.
func (b *Badge) WithColors(fill, text lipgloss.TerminalColor) *Badge {
	b.colour = fill
	b.onColor = text
	return b
}

// WithStyle sets the badge style.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}
