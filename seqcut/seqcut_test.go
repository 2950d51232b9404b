package seqcut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/rng"
	"github.com/katalvlaran/mincut/seqcut"
)

// buildGraph constructs a graph from an edge list (not finalized).
func buildGraph(t *testing.T, n int, edges []core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func triangleGraph(t *testing.T) *core.Graph {
	return buildGraph(t, 3, []core.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 0, To: 2, Weight: 1},
	})
}

// twoCliques is two 3-cliques joined by a single weight-5 bridge; min cut 5.
func twoCliques(t *testing.T) *core.Graph {
	return buildGraph(t, 6, []core.Edge{
		{From: 0, To: 1, Weight: 3}, {From: 1, To: 2, Weight: 3}, {From: 0, To: 2, Weight: 3},
		{From: 3, To: 4, Weight: 3}, {From: 4, To: 5, Weight: 3}, {From: 3, To: 5, Weight: 3},
		{From: 2, To: 3, Weight: 5},
	})
}

// bipartite33 is K_{3,3} with unit weights; min cut 3 (isolate any vertex).
func bipartite33(t *testing.T) *core.Graph {
	var edges []core.Edge
	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			edges = append(edges, core.Edge{From: i, To: j, Weight: 1})
		}
	}

	return buildGraph(t, 6, edges)
}

// twoK4s is a disconnected graph of two K4 components; min cut 0.
func twoK4s(t *testing.T) *core.Graph {
	var edges []core.Edge
	for _, base := range []int{0, 4} {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				edges = append(edges, core.Edge{From: base + i, To: base + j, Weight: 1})
			}
		}
	}

	return buildGraph(t, 8, edges)
}

func TestTargetVertices(t *testing.T) {
	// Below the base case the target is pinned to it.
	require.Equal(t, seqcut.BaseCaseSize, seqcut.TargetVertices(100))
	// ⌈1000/√2⌉+1 = 709.
	require.Equal(t, 709, seqcut.TargetVertices(1000))
}

func TestMinSuccessInOneTrial(t *testing.T) {
	require.Equal(t, 1.0, seqcut.MinSuccessInOneTrial(10))
	require.Equal(t, 1.0, seqcut.MinSuccessInOneTrial(seqcut.BaseCaseSize))

	p := seqcut.MinSuccessInOneTrial(129)
	require.Equal(t, 0.75, p) // 1-(1-1/2)² with an exact recursive step

	big := seqcut.MinSuccessInOneTrial(100000)
	require.Greater(t, big, 0.0)
	require.Less(t, big, 1.0)
}

func TestNumberOfTrials(t *testing.T) {
	require.Equal(t, 1, seqcut.NumberOfTrials(50, 0.99))
	require.Equal(t, 1, seqcut.NumberOfTrials(1000, 0))

	few := seqcut.NumberOfTrials(1000, 0.5)
	many := seqcut.NumberOfTrials(1000, 0.99)
	require.Greater(t, many, few)
	// The schedule must actually clear the failure target.
	p := seqcut.MinSuccessInOneTrial(1000)
	failure := 1.0
	for i := 0; i < many; i++ {
		failure *= 1 - p
	}
	require.Less(t, failure, 0.01)
}

func TestStoerWagner_KnownCuts(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		want core.Weight
	}{
		{"triangle", triangleGraph(t), 2},
		{"two cliques bridged", twoCliques(t), 5},
		{"K33", bipartite33(t), 3},
		{"disconnected", twoK4s(t), 0},
		{"path", buildGraph(t, 4, []core.Edge{
			{From: 0, To: 1, Weight: 4}, {From: 1, To: 2, Weight: 2}, {From: 2, To: 3, Weight: 7},
		}), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := seqcut.StoerWagner(seqcut.MatrixFromGraph(tc.g))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestStoerWagner_TooSmall(t *testing.T) {
	m, err := seqcut.NewMatrix(1, []int64{0})
	require.NoError(t, err)
	_, err = seqcut.StoerWagner(m)
	require.ErrorIs(t, err, seqcut.ErrTooFewVertices)
}

func TestNewMatrix_Validation(t *testing.T) {
	_, err := seqcut.NewMatrix(2, []int64{0})
	require.ErrorIs(t, err, seqcut.ErrMatrixShape)
}

// Below the base-case size a single randomized trial resolves
// deterministically through Stoer-Wagner, so small graphs are exact.
func TestMinimumCutTry_ExactBelowBaseCase(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cut, err := seqcut.MinimumCutTry(seqcut.MatrixFromGraph(twoCliques(t)), seed)
		require.NoError(t, err)
		require.Equal(t, core.Weight(5), cut)
	}
}

func TestMinimumCut_Dense(t *testing.T) {
	cut, err := seqcut.MinimumCut(seqcut.MatrixFromGraph(bipartite33(t)), 0.9, 3)
	require.NoError(t, err)
	require.Equal(t, core.Weight(3), cut)
}

func TestSparseMinimumCut_KnownCuts(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		want core.Weight
	}{
		{"triangle", triangleGraph(t), 2},
		{"two cliques bridged", twoCliques(t), 5},
		{"K33", bipartite33(t), 3},
		{"disconnected", twoK4s(t), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := seqcut.SparseMinimumCut(tc.g, 0.95, 17)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestIntermediateSize(t *testing.T) {
	// ⌈2·√100+1⌉ = 21.
	require.Equal(t, 21, seqcut.IntermediateSize(1000, 100, 2))
	// Clipped to the vertex count when the graph is already small.
	require.Equal(t, 3, seqcut.IntermediateSize(3, 3, 2))
}

// SquareRootTrial shrinks a unit cycle to the intermediate size; the quotient
// of a cycle is a smaller cycle, so the trial always reports the exact cut 2.
func TestSquareRootTrial_CyclePreservesCut(t *testing.T) {
	const n = 100
	var edges []core.Edge
	for i := 0; i < n; i++ {
		edges = append(edges, core.Edge{From: i, To: (i + 1) % n, Weight: 1})
	}

	r := rng.FromSeed(7)
	target := seqcut.IntermediateSize(n, n, 2)
	require.Equal(t, 21, target)

	for trial := 0; trial < 5; trial++ {
		g := buildGraph(t, n, edges)
		cut, err := seqcut.SquareRootTrial(g, r, target)
		require.NoError(t, err)
		require.Equal(t, core.Weight(2), cut)
	}
}

// Any trial's result upper-bounds the true minimum cut.
func TestSquareRootTrial_UpperBoundProperty(t *testing.T) {
	r := rng.FromSeed(99)
	for trial := 0; trial < 10; trial++ {
		g := twoCliques(t)
		cut, err := seqcut.SquareRootTrial(g, r, 4)
		require.NoError(t, err)
		require.GreaterOrEqual(t, cut, core.Weight(5))
	}
}
