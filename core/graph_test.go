package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
)

func triangle() *core.Graph {
	g := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(0, 2, 1)

	return g
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph(2)
	require.ErrorIs(t, g.AddEdge(0, 2, 1), core.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(-1, 1, 1), core.ErrVertexOutOfRange)
}

func TestGraph_WeakContractionAndFinalize(t *testing.T) {
	g := triangle()
	g.WeaklyContractEdge(0, 1)
	require.Equal(t, 2, g.VertexCount())

	// Contracting an already-merged pair is a no-op.
	g.WeaklyContractEdge(1, 0)
	require.Equal(t, 2, g.VertexCount())

	g.Finalize()
	require.Equal(t, 2, g.VertexCount())
	// The 0-1 edge became a loop and vanished; the two unit edges into vertex 2
	// merged into one edge of weight 2.
	require.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 2}}, g.Edges())
}

func TestGraph_FinalizeRelabelsContiguously(t *testing.T) {
	g := core.NewGraph(5)
	_ = g.AddEdge(0, 4, 1)
	_ = g.AddEdge(1, 3, 2)
	g.WeaklyContractEdge(1, 3)
	g.Finalize()

	require.Equal(t, 4, g.VertexCount())
	for _, e := range g.Edges() {
		require.Less(t, e.From, 4)
		require.Less(t, e.To, 4)
	}
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := triangle()
	c := g.Clone()

	c.WeaklyContractEdge(0, 1)
	c.Finalize()

	require.Equal(t, 3, g.VertexCount())
	require.Len(t, g.Edges(), 3)
	require.Equal(t, 2, c.VertexCount())
}

func TestGraph_CompactRemovesSingletons(t *testing.T) {
	g := core.NewGraph(10)
	_ = g.AddEdge(7, 2, 5)
	_ = g.AddEdge(2, 9, 1)

	compacted := g.Compact()
	require.Equal(t, 3, compacted.VertexCount())
	require.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 1},
	}, compacted.Edges())
}

func TestGraph_FromEdgesCopyOnWrite(t *testing.T) {
	external := []core.Edge{{From: 0, To: 1, Weight: 1}}
	g := core.GraphFromEdges(2, external)
	g.Finalize()
	// The external list survives finalization untouched.
	require.Equal(t, core.Edge{From: 0, To: 1, Weight: 1}, external[0])
}
