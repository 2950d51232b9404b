package seqcut

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mincut/core"
)

// IntermediateSize returns the square-root shrinking target for a graph with
// n vertices and m edges: ⌈c·√m + 1⌉, clipped to n. The multiplier c trades
// base-case work against shrinking risk; 2 is the production default.
func IntermediateSize(n, m int, multiplier float64) int {
	target := int(math.Ceil(multiplier*math.Sqrt(float64(m)) + 1))
	if target > n {
		return n
	}

	return target
}

// SquareRootTrial performs one sequential square-root cut trial: shrink the
// graph to target vertices by weighted iterated sampling, compact away the
// merged names, and finish with a single Karger-Stein execution. The graph is
// consumed.
//
// The result is an upper bound on the minimum cut of the input.
func SquareRootTrial(g *core.Graph, r *rand.Rand, target int) (core.Weight, error) {
	if g.VertexCount() < 2 {
		return 0, ErrTooFewVertices
	}

	if target < g.VertexCount() {
		if err := contractSparseTo(g, r, target); err != nil {
			return 0, err
		}
	}

	shrunk := g.Compact()
	if shrunk.VertexCount() < 2 {
		// Shrinking merged everything that carries weight. Any vertex that
		// disappeared in Compact was isolated, so a free cut exists exactly
		// when the original graph had more than one vertex left.
		if g.VertexCount() > 1 {
			return 0, nil
		}

		return 0, ErrTooFewVertices
	}

	// A single trial: the orchestrator accounts for success probability
	// across trials, not within one.
	return SparseMinimumCut(shrunk, 0, r.Int63())
}
