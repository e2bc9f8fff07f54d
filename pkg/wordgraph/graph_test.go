package wordgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicAddRemove(t *testing.T) {
	g := New()
	g.Insert("hello", nil)
	g.Insert("world", nil)

	require.True(t, g.Has("hello"))
	require.True(t, g.Has("world"))
	require.False(t, g.Has("earth"))

	g.Remove("hello")
	require.False(t, g.Has("hello"))
	require.True(t, g.Has("world"))
	require.Equal(t, 1, g.Stats().Words)
}

func TestPrefixSharing(t *testing.T) {
	g := New()
	for _, w := range []string{"casa", "casas", "caso", "casos"} {
		g.Insert(w, nil)
	}

	stats := g.Stats()
	require.Equal(t, 4, stats.Words)
	require.Less(t, stats.Nodes, 20)

	require.True(t, g.HasPrefix("cas"))
	require.False(t, g.HasPrefix("casx"))
}

func TestIdempotentAdd(t *testing.T) {
	g := New()
	g.Insert("cat", []string{"A"})
	require.Equal(t, 1, g.Stats().Words)

	g.Insert("cat", []string{"B"})
	require.Equal(t, 1, g.Stats().Words)

	flags, ok := g.GetFlags("cat")
	require.True(t, ok)
	require.Equal(t, []string{"B"}, flags)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	g := New()
	g.Insert("cat", nil)
	g.Remove("dog")
	require.True(t, g.Has("cat"))
	require.Equal(t, 1, g.Stats().Words)
}

func TestExportImportRoundTrip(t *testing.T) {
	g := New()
	g.Insert("hello", []string{"A", "B"})
	g.Insert("world", nil)

	data, err := g.Export()
	require.NoError(t, err)

	g2, err := Import(data)
	require.NoError(t, err)

	require.True(t, g2.Has("hello"))
	flags, ok := g2.GetFlags("hello")
	require.True(t, ok)
	require.ElementsMatch(t, []string{"A", "B"}, flags)
	require.True(t, g2.Has("world"))
	require.Equal(t, g.Stats().Words, g2.Stats().Words)
}
