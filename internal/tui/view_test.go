package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stepkit/internal/ui/stepper"
)

func TestViewWideLayout(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, checkout(), Options{})
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	require.Contains(t, view, "Checkout")
	require.Contains(t, view, "Buy the thing")
	require.Contains(t, view, "Cart")
	require.Contains(t, view, "Shipping")
	require.Contains(t, view, stepper.PlaceholderText)
	require.Contains(t, view, "Current Step: 1 of 4")
	require.Contains(t, view, "quit")
}

func TestViewRendersStepContent(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, checkout(), Options{})
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30}, runes("l"))

	view := m.View()
	require.Contains(t, view, "carrier")
	require.NotContains(t, view, stepper.PlaceholderText)
	require.Contains(t, view, "Current Step: 2 of 4")
}

func TestViewNarrowLayout(t *testing.T) {
	t.Parallel()

	flow := checkout()
	flow.Layout.MobileVariant = "text"
	flow.Active = 2
	m := newTestModel(t, flow, Options{})
	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 30})

	view := m.View()
	require.Contains(t, view, "3/4")
	require.Contains(t, view, "BACK")
	require.Contains(t, view, "NEXT")
	require.NotContains(t, view, "Shipping")
	require.Contains(t, view, "Current Step: 3 of 4")
}

func TestViewUsesButtonCaptions(t *testing.T) {
	t.Parallel()

	flow := checkout()
	flow.Buttons.Back = "Prev"
	flow.Buttons.Next = "Forward"
	flow.Buttons.Continue = "Proceed"

	m := newTestModel(t, flow, Options{})
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	require.Contains(t, m.View(), "PROCEED")

	m = send(m, tea.WindowSizeMsg{Width: 50, Height: 30})
	require.Contains(t, m.View(), "FORWARD")
	require.Contains(t, m.View(), "PREV")
}

func TestFooter(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, checkout(), Options{})
	require.Equal(t, "Current Step: 1 of 4", m.Footer())
}

func TestSnapshotOmitsHelp(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, checkout(), Options{})
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	require.NotContains(t, m.Snapshot(), "quit")
	require.Contains(t, m.Snapshot(), "Current Step: 1 of 4")
}

func TestViewportOptionForcesLayout(t *testing.T) {
	t.Parallel()

	flow := checkout()
	flow.Layout.MobileVariant = "text"
	m := newTestModel(t, flow, Options{Viewport: func() bool { return true }})
	m = send(m, tea.WindowSizeMsg{Width: 200, Height: 30})

	require.True(t, m.IsNarrow())
	require.Contains(t, m.Snapshot(), "1/4")
}
