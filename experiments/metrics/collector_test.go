package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start()
	c.AddCandidate(math.Inf(-1))
	c.AddCandidate(-12.5)
	c.AddCandidate(-40)
	c.SetCache(3, 7, 7)

	m := c.Complete()
	require.Equal(t, 3, m.Candidates)
	require.Equal(t, -12.5, m.BestScore)
	require.Equal(t, 3, m.CacheHits)
	require.Equal(t, 7, m.CacheMisses)
	require.Equal(t, 7, m.CacheSize)
	require.GreaterOrEqual(t, m.Duration.Nanoseconds(), int64(0))

	// Start resets the previous decision
	c.Start()
	require.Equal(t, 0, c.Complete().Candidates)
	require.Equal(t, math.Inf(-1), c.Complete().BestScore)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start()
	c.AddCandidate(1)
	c.SetCache(1, 1, 1)
	require.Equal(t, DecisionMetric{}, c.Complete())
}
