package stepper

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/alexisbeaulieu97/stepkit/internal/stepper"
	"github.com/alexisbeaulieu97/stepkit/internal/ui"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/components"
)

func abc() *model.Sequence {
	return model.MustSequence(
		model.StepDescriptor{Label: "Alpha", Completed: true},
		model.StepDescriptor{Label: "Bravo", OptionalNote: "Optional"},
		model.StepDescriptor{Label: "Charlie"},
	)
}

func TestStepperHorizontal(t *testing.T) {
	t.Parallel()

	out := NewStepper(abc()).WithActive(1).View()
	for _, want := range []string{"✓", "2", "3", "Alpha", "Bravo", "Charlie", "─"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Optional", "captions are hidden by default")
	assert.Equal(t, 1, lipgloss.Height(out))
}

func TestStepperStatusesFollowModel(t *testing.T) {
	t.Parallel()

	s := NewStepper(abc()).WithActive(1)
	states := s.ViewStates()
	require.Len(t, states, 3)
	assert.Equal(t, model.StatusCompleted, states[0].Status)
	assert.Equal(t, model.StatusActive, states[1].Status)
	assert.Equal(t, model.StatusInactive, states[2].Status)
}

func TestStepperBadges(t *testing.T) {
	t.Parallel()

	seq := model.MustSequence(
		model.StepDescriptor{Label: "Done", Completed: true, Error: true},
		model.StepDescriptor{Label: "Custom", Icon: ui.Static("★")},
		model.StepDescriptor{Label: "Pending"},
	)
	out := NewStepper(seq).WithActive(1).View()

	assert.Contains(t, out, "!", "error wins over completed")
	assert.NotContains(t, out, "✓")
	assert.Contains(t, out, "★")
	assert.NotContains(t, out, " 2 ", "the custom icon replaces the number")
	assert.Contains(t, out, "3")
}

func TestStepperShowOptional(t *testing.T) {
	t.Parallel()

	out := NewStepper(abc()).WithShowOptional(true).View()
	assert.Contains(t, out, "Optional")
	assert.Equal(t, 2, lipgloss.Height(out))
}

func TestStepperCenterAlignment(t *testing.T) {
	t.Parallel()

	out := NewStepper(abc()).WithAlignment(AlignCenter).View()
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[0], "─", "connectors join the badge row")
	assert.NotContains(t, lines[0], "Alpha")
	assert.Contains(t, lines[1], "Alpha")
}

func TestStepperVertical(t *testing.T) {
	t.Parallel()

	s := NewStepper(abc()).WithOrientation(OrientationVertical).WithAlignment(AlignCenter)
	assert.Equal(t, AlignLeft, s.EffectiveAlignment())

	out := s.View()
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 5, "three steps and two connectors")
	assert.Contains(t, lines[0], "Alpha")
	assert.Contains(t, lines[1], "│")
	assert.Contains(t, lines[4], "Charlie")
}

func TestStepperFillsWidth(t *testing.T) {
	t.Parallel()

	s := NewStepper(abc())
	narrow := s.View()
	wide := s.ViewWithContext(components.DefaultContext().WithParentWidth(100))

	assert.Greater(t, lipgloss.Width(wide), lipgloss.Width(narrow))
	assert.LessOrEqual(t, lipgloss.Width(wide), 100)
}

func TestStepperHorizontalStaysWithinWidth(t *testing.T) {
	t.Parallel()

	for _, width := range []int{10, 20, 30} {
		out := NewStepper(abc()).ViewWithContext(components.DefaultContext().WithParentWidth(width))
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), width, "width %d", width)
		}
	}

	row := NewStepper(abc()).ViewWithContext(components.DefaultContext().WithParentWidth(30))
	assert.Contains(t, row, "Alpha")
}

func TestStepperClampsActive(t *testing.T) {
	t.Parallel()

	seq := abc()
	assert.Equal(t, NewStepper(seq).WithActive(2).View(), NewStepper(seq).WithActive(99).View())
	assert.Equal(t, NewStepper(seq).WithActive(0).View(), NewStepper(seq).WithActive(-5).View())
	assert.Equal(t, 2, NewStepper(seq).WithActive(99).Active())
}

func TestStepperSelect(t *testing.T) {
	t.Parallel()

	seq := model.MustSequence(
		model.StepDescriptor{Label: "One"},
		model.StepDescriptor{Label: "Two", Disabled: true},
		model.StepDescriptor{Label: "Three"},
	)

	var calls []int
	s := NewStepper(seq).OnStepSelected(func(i int) { calls = append(calls, i) })

	assert.True(t, s.Select(2))
	assert.False(t, s.Select(1), "disabled steps never fire")
	assert.False(t, s.Select(3))
	assert.False(t, s.Select(-1))
	assert.True(t, s.Select(0))
	assert.Equal(t, []int{2, 0}, calls)

	assert.True(t, NewStepper(seq).Select(0), "no callback is still a valid selection")
}

func TestStepperNilSequence(t *testing.T) {
	t.Parallel()

	s := NewStepper(nil)
	assert.Equal(t, "", s.View())
	assert.False(t, s.Select(0))
	assert.Nil(t, s.ViewStates())
	assert.Equal(t, 0, s.Active())
}

func TestParseLayoutEnums(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OrientationVertical, ParseOrientation("Vertical"))
	assert.Equal(t, OrientationHorizontal, ParseOrientation(""))
	assert.Equal(t, AlignCenter, ParseAlignment("center"))
	assert.Equal(t, AlignLeft, ParseAlignment("right"))
	assert.Equal(t, "vertical", OrientationVertical.String())
	assert.Equal(t, "center", AlignCenter.String())
}
