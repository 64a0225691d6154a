package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	model "github.com/alexisbeaulieu97/stepkit/internal/stepper"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/stepper"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if narrow := m.IsNarrow(); narrow != m.narrow {
			m.narrow = narrow
			m.log.DebugFields("viewport changed", map[string]any{
				"width":  msg.Width,
				"narrow": narrow,
			})
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Back):
		m = m.navigate(model.DirectionBack)

	case key.Matches(msg, m.keys.Next):
		m = m.navigate(model.DirectionNext)

	case key.Matches(msg, m.keys.Select):
		n, err := strconv.Atoi(msg.String())
		if err == nil {
			m = m.selectStep(n - 1)
		}

	case key.Matches(msg, m.keys.Orientation):
		if m.orientation == stepper.OrientationHorizontal {
			m.orientation = stepper.OrientationVertical
		} else {
			m.orientation = stepper.OrientationHorizontal
		}

	case key.Matches(msg, m.keys.Alignment):
		if m.alignment == stepper.AlignLeft {
			m.alignment = stepper.AlignCenter
		} else {
			m.alignment = stepper.AlignLeft
		}

	case key.Matches(msg, m.keys.Variant):
		m.variant = m.variant.Next()
	}

	return m, nil
}

// navigate asks the current presenter to move. The presenter decides
// whether the button is enabled; the host applies the transition only when
// the intent was reported. The wide layout routes through the action row
// unless the flow hides it.
func (m Model) navigate(dir model.Direction) Model {
	intent := model.NavigationIntent{Direction: dir, FromIndex: m.active}

	fired := false
	mark := func() { fired = true }

	r := m.responsive().OnBack(mark).OnNext(mark)
	var nav navigator = r
	if !r.IsNarrow() && m.showActions {
		nav = m.desktop().OnBack(mark).OnNext(mark)
	}

	pressed := nav.Back
	if dir == model.DirectionNext {
		pressed = nav.Next
	}

	fields := map[string]any{
		"direction": dir.String(),
		"from":      intent.FromIndex,
		"narrow":    r.IsNarrow(),
	}
	if !pressed() || !fired {
		fields["ignored"] = true
		m.log.DebugFields("navigation intent", fields)
		return m
	}

	m.active = intent.Target(m.seq.Len())
	fields["to"] = m.active
	m.log.DebugFields("navigation intent", fields)
	return m
}

func (m Model) selectStep(index int) Model {
	selected := -1
	r := m.responsive()
	if !r.IsNarrow() {
		r.OnStepSelected(func(i int) { selected = i })
	}

	if !r.Select(index) || selected < 0 {
		m.log.DebugFields("step selection ignored", map[string]any{"index": index})
		return m
	}

	m.log.DebugFields("step selected", map[string]any{"from": m.active, "to": selected})
	m.active = selected
	return m
}
