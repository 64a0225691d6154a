package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stepkit/internal/ui/components"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/tokens"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.Snapshot(), m.help.View(m.keys))
}

// Snapshot renders the flow without the key help, for one-shot output.
func (m Model) Snapshot() string {
	ctx := components.DefaultContext().WithTheme(m.theme)
	if m.width > 0 {
		ctx = ctx.WithParentWidth(m.width)
	}

	sections := []string{titleStyle.Foreground(m.theme.Role(tokens.RolePrimary).Main).Render(m.title())}
	if desc := strings.TrimSpace(m.flow.Description); desc != "" {
		sections = append(sections, descriptionStyle.Render(desc))
	}

	sections = append(sections, sectionStyle.Render(m.presenter(ctx)))
	sections = append(sections, footerStyle.Render(m.Footer()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Footer is the position line under the presenter.
func (m Model) Footer() string {
	return fmt.Sprintf("Current Step: %d of %d", m.active+1, m.seq.Len())
}

func (m Model) presenter(ctx components.RenderContext) string {
	r := m.responsive()
	if r.IsNarrow() {
		return r.ViewWithContext(ctx)
	}
	return m.desktop().ViewWithContext(ctx)
}

func (m Model) title() string {
	if name := strings.TrimSpace(m.flow.Name); name != "" {
		return name
	}
	return "Stepper"
}
