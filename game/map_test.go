package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	t.Run("parsing the default layout", func(t *testing.T) {
		l := DefaultLayout()

		require.Equal(t, 20, l.Width())
		require.Equal(t, 9, l.Height())
		require.Equal(t, 4, l.NumAgents())
		require.Equal(t, Position{Row: 1, Col: 1}, l.Start(0))
		require.Equal(t, Position{Row: 7, Col: 18}, l.Start(1))
		require.Len(t, l.food, 20)
		require.Len(t, l.capsules, 2)
	})

	t.Run("treating cells outside the board as walls", func(t *testing.T) {
		l := DefaultLayout()

		require.True(t, l.IsWall(Position{Row: -1, Col: 3}))
		require.True(t, l.IsWall(Position{Row: 3, Col: 20}))
		require.True(t, l.IsWall(Position{Row: 0, Col: 0}))
		require.False(t, l.IsWall(Position{Row: 1, Col: 2}))
	})

	t.Run("rejecting malformed layouts", func(t *testing.T) {
		cases := map[string]string{
			"ragged rows":       "%%%%\n%01%\n%%%",
			"odd agent count":   "%%%%%\n%012%\n%%%%%",
			"missing agent":     "%%%%\n%02%\n%%%%",
			"duplicate agent":   "%%%%%%\n%0011%\n%%%%%%",
			"unknown character": "%%%%%\n%0x1%\n%%%%%",
			"empty":             "",
		}
		for name, text := range cases {
			_, err := ParseLayout(text)
			require.Error(t, err, name)
		}
	})
}

func TestMazeDistance(t *testing.T) {
	state := NewGameState(DefaultLayout())

	t.Run("following corridors", func(t *testing.T) {
		d, err := MazeDistance(Position{Row: 1, Col: 1}, Position{Row: 1, Col: 4}, state)
		require.NoError(t, err)
		require.Equal(t, 3, d)

		d, err = MazeDistance(Position{Row: 1, Col: 1}, Position{Row: 1, Col: 1}, state)
		require.NoError(t, err)
		require.Equal(t, 0, d)
	})

	t.Run("routing around walls", func(t *testing.T) {
		// Joined through (2,1)
		d, err := MazeDistance(Position{Row: 1, Col: 1}, Position{Row: 3, Col: 1}, state)
		require.NoError(t, err)
		require.Equal(t, 2, d)

		d, err = MazeDistance(Position{Row: 1, Col: 6}, Position{Row: 3, Col: 6}, state)
		require.NoError(t, err)
		require.Greater(t, d, ManhattanDistance(Position{Row: 1, Col: 6}, Position{Row: 3, Col: 6}))
	})

	t.Run("being symmetric", func(t *testing.T) {
		a, b := Position{Row: 1, Col: 1}, Position{Row: 7, Col: 18}
		ab, err := MazeDistance(a, b, state)
		require.NoError(t, err)
		ba, err := MazeDistance(b, a, state)
		require.NoError(t, err)
		require.Equal(t, ab, ba)
	})

	t.Run("failing on walls and disconnected cells", func(t *testing.T) {
		_, err := MazeDistance(Position{Row: 0, Col: 0}, Position{Row: 1, Col: 1}, state)
		require.ErrorIs(t, err, ErrUnreachable)

		island := NewGameState(MustParseLayout("%%%%%%\n%0%1 %\n%%%%%%"))
		_, err = MazeDistance(Position{Row: 1, Col: 1}, Position{Row: 1, Col: 4}, island)
		require.ErrorIs(t, err, ErrUnreachable)

		d, err := MazeDistance(Position{Row: 1, Col: 3}, Position{Row: 1, Col: 4}, island)
		require.NoError(t, err)
		require.Equal(t, 1, d)
	})
}

func TestEuclideanDistance(t *testing.T) {
	require.InDelta(t, 5.0, EuclideanDistance(Position{Row: 0, Col: 0}, Position{Row: 3, Col: 4}), 1e-9)
	require.Equal(t, 7, ManhattanDistance(Position{Row: 0, Col: 0}, Position{Row: 3, Col: 4}))
}
