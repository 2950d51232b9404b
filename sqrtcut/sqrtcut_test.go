package sqrtcut_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/graphio"
	"github.com/katalvlaran/mincut/seqcut"
	"github.com/katalvlaran/mincut/sqrtcut"
)

func input(name string, n int, edges []core.Edge) sqrtcut.Input {
	return graphio.NewMemory(name, n, edges)
}

func triangle() sqrtcut.Input {
	return input("triangle", 3, []core.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 0, To: 2, Weight: 1},
	})
}

func twoCliquesBridged() sqrtcut.Input {
	return input("cliques", 6, []core.Edge{
		{From: 0, To: 1, Weight: 3}, {From: 1, To: 2, Weight: 3}, {From: 0, To: 2, Weight: 3},
		{From: 3, To: 4, Weight: 3}, {From: 4, To: 5, Weight: 3}, {From: 3, To: 5, Weight: 3},
		{From: 2, To: 3, Weight: 5},
	})
}

func bipartite33() sqrtcut.Input {
	var edges []core.Edge
	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			edges = append(edges, core.Edge{From: i, To: j, Weight: 1})
		}
	}

	return input("k33", 6, edges)
}

func twoK4s() sqrtcut.Input {
	var edges []core.Edge
	for _, base := range []int{0, 4} {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				edges = append(edges, core.Edge{From: base + i, To: base + j, Weight: 1})
			}
		}
	}

	return input("twoK4", 8, edges)
}

func cycle(n int) sqrtcut.Input {
	var edges []core.Edge
	for i := 0; i < n; i++ {
		edges = append(edges, core.Edge{From: i, To: (i + 1) % n, Weight: 1})
	}

	return input(fmt.Sprintf("cycle%d", n), n, edges)
}

func TestRun_Validation(t *testing.T) {
	_, err := sqrtcut.Run(nil, sqrtcut.DefaultOptions())
	require.ErrorIs(t, err, sqrtcut.ErrNilInput)

	opts := sqrtcut.DefaultOptions()
	opts.SuccessProbability = 1
	_, err = sqrtcut.Run(triangle(), opts)
	require.ErrorIs(t, err, sqrtcut.ErrSuccessProbability)

	opts = sqrtcut.DefaultOptions()
	opts.Workers = 0
	_, err = sqrtcut.Run(triangle(), opts)
	require.ErrorIs(t, err, sqrtcut.ErrWorkers)

	opts = sqrtcut.DefaultOptions()
	opts.BaseCaseMultiplier = 0
	_, err = sqrtcut.Run(triangle(), opts)
	require.ErrorIs(t, err, sqrtcut.ErrMultiplier)

	_, err = sqrtcut.Run(input("empty", 1, nil), sqrtcut.DefaultOptions())
	require.ErrorIs(t, err, sqrtcut.ErrInputTooSmall)
}

func TestRun_Triangle(t *testing.T) {
	opts := sqrtcut.DefaultOptions()
	opts.Seed = 3

	result, err := sqrtcut.Run(triangle(), opts)
	require.NoError(t, err)
	require.Equal(t, core.Weight(2), result.Weight)
	require.Equal(t, sqrtcut.LowConcurrency, result.Variant)
	require.Equal(t, 3, result.Vertices)
	require.Equal(t, 3, result.Edges)
}

func TestRun_TwoCliquesBridged_AllWorkerCounts(t *testing.T) {
	for _, workers := range []int{1, 2, 3} {
		opts := sqrtcut.DefaultOptions()
		opts.Workers = workers
		opts.Seed = int64(workers)

		result, err := sqrtcut.Run(twoCliquesBridged(), opts)
		require.NoError(t, err)
		require.Equal(t, core.Weight(5), result.Weight, "workers=%d", workers)
	}
}

// With six workers the trial count (3) admits high concurrency: three groups
// of two, each running the full sampling + recursive-contract pipeline.
func TestRun_K33_HighConcurrency(t *testing.T) {
	opts := sqrtcut.DefaultOptions()
	opts.Workers = 6
	opts.Seed = 11

	result, err := sqrtcut.Run(bipartite33(), opts)
	require.NoError(t, err)
	require.Equal(t, sqrtcut.HighConcurrency, result.Variant)
	require.Equal(t, core.Weight(3), result.Weight)
	require.Equal(t, 2, result.Trials)
}

// The disconnected input must come out at zero through the distributed
// pipeline as well.
func TestRun_Disconnected_HighConcurrency(t *testing.T) {
	opts := sqrtcut.DefaultOptions()
	opts.Workers = 8
	opts.Seed = 23

	result, err := sqrtcut.Run(twoK4s(), opts)
	require.NoError(t, err)
	require.Equal(t, sqrtcut.HighConcurrency, result.Variant)
	require.Zero(t, result.Weight)
}

// Odd workers that do not fit the power-of-two grouping contribute the
// sentinel and must not disturb the result.
func TestRun_OddWorkersJoinSentinelGroup(t *testing.T) {
	opts := sqrtcut.DefaultOptions()
	opts.Workers = 7 // trials=3 → groups of 2, one worker left over
	opts.Seed = 2

	result, err := sqrtcut.Run(bipartite33(), opts)
	require.NoError(t, err)
	require.Equal(t, sqrtcut.HighConcurrency, result.Variant)
	require.Equal(t, core.Weight(3), result.Weight)
}

// Spec scenario: cycle of length 100, 4 workers, seed 7, p=0.95. The cut is
// 2 and the trial count follows the closed-form schedule.
func TestRun_Cycle100(t *testing.T) {
	opts := sqrtcut.DefaultOptions()
	opts.Workers = 4
	opts.Seed = 7
	opts.SuccessProbability = 0.95

	totalTrials, err := sqrtcut.NumberOfTrials(100, 100, 0.95, opts.BaseCaseMultiplier)
	require.NoError(t, err)
	require.Equal(t, 75, totalTrials)

	result, err := sqrtcut.Run(cycle(100), opts)
	require.NoError(t, err)
	require.Equal(t, core.Weight(2), result.Weight)
	require.Equal(t, sqrtcut.LowConcurrency, result.Variant)
	require.Equal(t, (totalTrials+3)/4, result.Trials)
	require.GreaterOrEqual(t, result.CuttingSeconds, 0.0)
	require.GreaterOrEqual(t, result.CommSeconds, 0.0)
}

// CLICK reproducibility: on the same materialized input, runs with different
// algorithm seeds agree with each other and with the Stoer-Wagner reference.
func TestRun_ClickAgainstStoerWagner(t *testing.T) {
	click := graphio.NewClick(60)
	edges := click.LoadSlice(0, 1, 42)
	in := input("click60", 60, edges)

	reference := referenceCut(t, 60, edges)

	var weights []core.Weight
	for _, seed := range []int64{1, 99} {
		opts := sqrtcut.DefaultOptions()
		opts.Workers = 2
		opts.Seed = seed

		result, err := sqrtcut.Run(in, opts)
		require.NoError(t, err)
		require.GreaterOrEqual(t, result.Weight, reference,
			"candidates upper-bound the reference")
		weights = append(weights, result.Weight)
	}
	require.Equal(t, weights[0], weights[1], "runs with different seeds agree")
	require.Equal(t, reference, weights[0])
}

func referenceCut(t *testing.T, n int, edges []core.Edge) core.Weight {
	t.Helper()
	g := core.NewGraph(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}
	cut, err := seqcut.StoerWagner(seqcut.MatrixFromGraph(g))
	require.NoError(t, err)

	return cut
}

func TestResult_CSV(t *testing.T) {
	r := sqrtcut.Result{
		Input:          "graph.txt",
		Seed:           7,
		Processors:     4,
		Vertices:       100,
		Edges:          100,
		CuttingSeconds: 0.25,
		CommSeconds:    0.125,
		Trials:         19,
		Variant:        sqrtcut.HighConcurrency,
		Weight:         2,
	}

	line := r.CSV()
	require.True(t, strings.HasPrefix(line, "graph.txt,7,4,100,100,"))
	require.True(t, strings.HasSuffix(line, ",19,high,2"))
	require.Equal(t, 10, len(strings.Split(line, ",")))
}

func TestVariantString(t *testing.T) {
	require.Equal(t, "low", sqrtcut.LowConcurrency.String())
	require.Equal(t, "high", sqrtcut.HighConcurrency.String())
}
