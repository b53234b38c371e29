package heuristic

import (
	"testing"

	"capture/game"

	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	h := NewHistory(3)

	_, ok := h.Recent(0)
	require.False(t, ok)

	for col := 0; col < 5; col++ {
		h.Push(game.At(pos(0, col)))
	}
	h.Push(game.Unknown)

	require.Equal(t, 3, h.Len())
	for i, want := range []game.Location{game.Unknown, game.At(pos(0, 4)), game.At(pos(0, 3))} {
		got, ok := h.Recent(i)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, ok = h.Recent(3)
	require.False(t, ok)
	_, ok = h.Recent(-1)
	require.False(t, ok)
}

func TestHistorySize(t *testing.T) {
	require.Equal(t, 2, Baseline().Offense.HistorySize())
	require.Equal(t, 10, Patrol().Offense.HistorySize())
}
