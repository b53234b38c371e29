package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmallestN(t *testing.T) {
	type item struct {
		name string
		key  int
	}
	items := []item{{"a", 3}, {"b", 1}, {"c", 3}, {"d", 0}, {"e", 1}}
	byKey := func(i item) int { return i.key }

	t.Run("keeping input order among equal keys", func(t *testing.T) {
		got := SmallestN(items, 3, byKey)
		require.Equal(t, []item{{"d", 0}, {"b", 1}, {"e", 1}}, got)
	})

	t.Run("returning everything for non-positive n", func(t *testing.T) {
		got := SmallestN(items, 0, byKey)
		require.Equal(t, []item{{"d", 0}, {"b", 1}, {"e", 1}, {"a", 3}, {"c", 3}}, got)
		require.Len(t, SmallestN(items, 10, byKey), 5)
	})

	t.Run("leaving the input untouched", func(t *testing.T) {
		_ = SmallestN(items, 2, byKey)
		require.Equal(t, "a", items[0].name)
	})

	t.Run("handling empty input", func(t *testing.T) {
		require.Empty(t, SmallestN([]item{}, 3, byKey))
	})
}

func TestMinMax(t *testing.T) {
	require.Equal(t, -2, Min([]int{3, -2, 7}))
	require.Equal(t, 7, Max([]int{3, -2, 7}))
	require.Equal(t, 1.5, Min([]float64{1.5}))
}
