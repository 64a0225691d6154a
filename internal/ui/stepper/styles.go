package stepper

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	model "github.com/alexisbeaulieu97/stepkit/internal/stepper"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/components"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/tokens"
)

const (
	checkGlyph = "✓"
	errorGlyph = "!"
	dotActive  = "●"
	dotIdle    = "○"
	backArrow  = "‹"
	nextArrow  = "›"
)

// badgeFor builds the icon badge of one step. A caller icon replaces the
// glyph but keeps the state colours.
func badgeFor(state model.ViewState, theme components.Theme) *components.Badge {
	text := strconv.Itoa(state.Number())
	fill := theme.Stepper.Number

	switch state.Visual() {
	case model.VisualActive:
		fill = theme.Stepper.Active
	case model.VisualCompleted:
		fill = theme.Stepper.Completed
		text = checkGlyph
	case model.VisualError:
		fill = theme.Role(tokens.RoleError).Main
		text = errorGlyph
	}
	if state.Icon != nil {
		if icon := state.Icon.View(); icon != "" {
			text = icon
		}
	}

	return components.NewBadge(text).WithColors(fill, theme.Stepper.NumberText)
}

func labelStyle(state model.ViewState, theme components.Theme) lipgloss.Style {
	label := components.TypographyStyle(theme, components.TypographyVariantLabel)
	strong := components.TypographyStyle(theme, components.TypographyVariantLabelActive)

	switch {
	case state.Disabled:
		return label.Foreground(theme.Stepper.DisabledText)
	case state.Visual() == model.VisualError:
		return strong.Foreground(theme.Role(tokens.RoleError).Main)
	case state.Status == model.StatusActive:
		return strong
	case state.Status == model.StatusCompleted:
		return strong.Foreground(theme.Stepper.CompletedText)
	default:
		return label
	}
}

// labelBlock is the label plus, when shown, the optional caption under it.
func labelBlock(state model.ViewState, showOptional bool, theme components.Theme) *components.Stack {
	block := components.VStack(components.NewText(state.Label).WithStyle(labelStyle(state, theme)))
	if showOptional && state.OptionalNote != "" {
		caption := components.TypographyStyle(theme, components.TypographyVariantCaption).
			Foreground(theme.Stepper.OptionalText)
		block.Add(components.NewText(state.OptionalNote).WithStyle(caption))
	}
	return block
}

// connectorColour follows the step the connector leads into.
func connectorColour(next model.ViewState, theme components.Theme) lipgloss.TerminalColor {
	switch next.Status {
	case model.StatusActive:
		return theme.Stepper.Active
	case model.StatusCompleted:
		return theme.Stepper.Completed
	default:
		return theme.Stepper.Connector
	}
}
