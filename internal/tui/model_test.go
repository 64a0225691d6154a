package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stepkit/internal/config"
	"github.com/alexisbeaulieu97/stepkit/internal/logger"
	"github.com/alexisbeaulieu97/stepkit/internal/ui/stepper"
)

func checkout() *config.Flow {
	return &config.Flow{
		Version:     "1.0",
		Name:        "Checkout",
		Description: "Buy the thing",
		Steps: []config.StepSpec{
			{Label: "Cart", Completed: true},
			{Label: "Shipping", Optional: "Optional", Content: "Pick a carrier."},
			{Label: "Payment"},
			{Label: "Review", Disabled: true},
		},
	}
}

func newTestModel(t *testing.T, flow *config.Flow, opts Options) Model {
	t.Helper()
	m, err := NewModel(flow, opts)
	require.NoError(t, err)
	return m
}

func debugLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	return log, buf
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, checkout(), Options{})
	require.Equal(t, 0, m.Active())
	require.Equal(t, 4, m.Total())
	require.Equal(t, 75, m.Breakpoint())
	require.Equal(t, stepper.OrientationHorizontal, m.Orientation())
	require.Equal(t, stepper.AlignLeft, m.Alignment())
	require.Equal(t, stepper.VariantDots, m.Variant())
	require.False(t, m.IsNarrow(), "unknown width is wide")
	require.Nil(t, m.Init())
}

func TestNewModelReadsLayout(t *testing.T) {
	t.Parallel()

	flow := checkout()
	flow.Active = 9
	flow.Layout = config.Layout{
		Orientation:   "vertical",
		Alignment:     "center",
		MobileVariant: "progress",
		Breakpoint:    400,
	}

	m := newTestModel(t, flow, Options{})
	require.Equal(t, 3, m.Active(), "active index is clamped")
	require.Equal(t, 50, m.Breakpoint())
	require.Equal(t, stepper.OrientationVertical, m.Orientation())
	require.Equal(t, stepper.AlignCenter, m.Alignment())
	require.Equal(t, stepper.VariantProgress, m.Variant())

	m = newTestModel(t, flow, Options{Breakpoint: 800})
	require.Equal(t, 100, m.Breakpoint(), "option overrides the flow")
}

func TestNewModelRejectsInvalidSequence(t *testing.T) {
	t.Parallel()

	_, err := NewModel(&config.Flow{Name: "Empty"}, Options{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Empty")
}
