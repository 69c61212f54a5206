package generator

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomGenerator(t *testing.T) {
	g := NewRandom()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := g.NextID()
		require.False(t, seen[id], "ids must not repeat")
		seen[id] = true

		n, err := strconv.Atoi(g.JerseyNumber())
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 99)

		require.Contains(t, MockNames, g.PlayerName())
	}
}

func TestSequenceGeneratorIsDeterministic(t *testing.T) {
	g := NewSequence()

	require.Equal(t, "p1", g.NextID())
	require.Equal(t, "p2", g.NextID())
	require.Equal(t, "10", g.JerseyNumber())
	require.Contains(t, MockNames, g.PlayerName())
}
