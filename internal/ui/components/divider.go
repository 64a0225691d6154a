package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider draws a straight line. Steppers use it for the connectors
// between steps.
type Divider struct {
	BaseComponent
	char      string
	length    int
	direction Direction
	colour    lipgloss.TerminalColor
}

// NewDivider creates a horizontal divider that fills the available width.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		direction:     DirectionHorizontal,
	}
}

// HorizontalDivider creates a horizontal divider.
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider of the given height.
func VerticalDivider(height int) *Divider {
	return NewDivider().WithChar("│").WithDirection(DirectionVertical).WithLength(height)
}

// DashedDivider creates a dashed horizontal divider.
func DashedDivider() *Divider {
	return NewDivider().WithChar("╌")
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. Without an explicit length a
// horizontal divider fills the context width, and a vertical one is one
// row tall.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.length
	if length <= 0 && d.direction == DirectionHorizontal {
		length = ctx.AvailableWidth()
	}
	if length <= 0 {
		if d.direction == DirectionHorizontal {
			length = 40
		} else {
			length = 1
		}
	}

	var content string
	if d.direction == DirectionHorizontal {
		content = strings.Repeat(d.char, length)
	} else {
		content = strings.TrimSuffix(strings.Repeat(d.char+"\n", length), "\n")
	}

	style := d.ComputeStyle(ctx.Theme)
	if d.colour != nil {
		style = style.Foreground(d.colour)
	}
	return style.Render(content)
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithLength sets the divider length in cells along its direction.
func (d *Divider) WithLength(length int) *Divider {
	d.length = length
	return d
}

// WithDirection sets the divider direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// WithColor sets the line colour.
func (d *Divider) WithColor(colour lipgloss.TerminalColor) *Divider {
	d.colour = colour
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}
