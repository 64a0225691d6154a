package stepper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdvance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		from  int
		dir   Direction
		total int
		want  int
	}{
		{name: "next moves forward", from: 1, dir: DirectionNext, total: 4, want: 2},
		{name: "next at end is no-op", from: 3, dir: DirectionNext, total: 4, want: 3},
		{name: "back moves backward", from: 2, dir: DirectionBack, total: 4, want: 1},
		{name: "back at start is no-op", from: 0, dir: DirectionBack, total: 4, want: 0},
		{name: "out of range is clamped first", from: 10, dir: DirectionBack, total: 4, want: 2},
		{name: "single step never moves", from: 0, dir: DirectionNext, total: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Advance(tt.from, tt.dir, tt.total))
			intent := NavigationIntent{Direction: tt.dir, FromIndex: tt.from}
			require.Equal(t, tt.want, intent.Target(tt.total))
		})
	}
}

func TestBoundaries(t *testing.T) {
	t.Parallel()

	back, next := Boundaries(0, 4)
	require.True(t, back)
	require.False(t, next)

	back, next = Boundaries(3, 4)
	require.False(t, back)
	require.True(t, next)

	back, next = Boundaries(0, 1)
	require.True(t, back)
	require.True(t, next)

	t.Run("next at the end stays disabled", func(t *testing.T) {
		t.Parallel()
		at := Advance(3, DirectionNext, 4)
		_, next := Boundaries(at, 4)
		require.True(t, next)
	})

	t.Run("back at the start stays disabled", func(t *testing.T) {
		t.Parallel()
		at := Advance(0, DirectionBack, 4)
		back, _ := Boundaries(at, 4)
		require.True(t, back)
	})
}

func TestProgressFraction(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, ProgressFraction(0, 1))
	require.Equal(t, 1.0, ProgressFraction(0, 0))
	require.Equal(t, 0.5, ProgressFraction(2, 5))
	require.Equal(t, 0.0, ProgressFraction(0, 4))
	require.Equal(t, 1.0, ProgressFraction(7, 4))
	require.Equal(t, 0.0, ProgressFraction(-3, 4))
}

func TestDirectionString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "back", DirectionBack.String())
	require.Equal(t, "next", DirectionNext.String())
}

func TestClampIndex(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0, ClampIndex(-1, 4))
	require.Equal(t, 3, ClampIndex(9, 4))
	require.Equal(t, 2, ClampIndex(2, 4))
	require.Equal(t, 0, ClampIndex(5, 0))
}
