package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
)

func TestEdgeSlice_AddEdgeNormalizes(t *testing.T) {
	s := core.NewEdgeSlice(0)
	require.NoError(t, s.AddEdge(5, 2, 7))
	require.Equal(t, core.Edge{From: 2, To: 5, Weight: 7}, s.Edges()[0])

	require.ErrorIs(t, s.AddEdge(0, 1, -3), core.ErrNegativeWeight)
}

func TestEdgeSlice_CopyOnWrite(t *testing.T) {
	external := []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}}
	s := core.Wrap(external)

	// Until a mutation, the slice aliases the external list.
	require.Same(t, &external[0], &s.Edges()[0])

	require.NoError(t, s.AddEdge(2, 3, 4))
	require.NotSame(t, &external[0], &s.Edges()[0])
	// The external list is untouched.
	require.Len(t, external, 2)
	require.Equal(t, 3, s.Len())
}

func TestEdgeSlice_ApplyMappingDropsLoops(t *testing.T) {
	s := core.Wrap([]core.Edge{
		{From: 0, To: 1, Weight: 3},
		{From: 1, To: 2, Weight: 4},
		{From: 2, To: 3, Weight: 5},
	})

	// Identify vertices 1 and 2; the middle edge becomes a loop and vanishes.
	require.NoError(t, s.ApplyMapping([]int{0, 1, 1, 2}))
	require.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 3},
		{From: 1, To: 2, Weight: 5},
	}, s.Edges())

	require.ErrorIs(t, s.ApplyMapping([]int{0}), core.ErrMappingLength)
}

func TestEdgeSlice_FinalizeCanonicalForm(t *testing.T) {
	s := core.Wrap([]core.Edge{
		{From: 3, To: 1, Weight: 2}, // denormalized
		{From: 1, To: 3, Weight: 5}, // parallel to the first
		{From: 2, To: 2, Weight: 9}, // loop
		{From: 0, To: 1, Weight: 1},
	})
	s.Finalize()

	require.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 3, Weight: 7},
	}, s.Edges())

	// Finalized slices are sorted, normalized, loop-free and duplicate-free.
	edges := s.Edges()
	for i := range edges {
		require.True(t, edges[i].Normalized())
		require.NotEqual(t, edges[i].From, edges[i].To)
		if i > 0 {
			require.True(t, edges[i-1].Less(edges[i]))
		}
	}
}

func TestEdgeSlice_TotalWeight(t *testing.T) {
	s := core.Wrap([]core.Edge{{From: 0, To: 1, Weight: 3}, {From: 1, To: 2, Weight: 4}})
	require.Equal(t, core.Weight(7), s.TotalWeight())
	require.Zero(t, core.NewEdgeSlice(0).TotalWeight())
}
