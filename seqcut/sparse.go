package seqcut

import (
	"math/rand"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/rng"
	"github.com/katalvlaran/mincut/sumtree"
)

// contractSparseTo shrinks an edge-list graph to the target vertex count by
// weighted iterated sampling: per round, draw a batch of edges proportionally
// to weight through a sum tree, contract them weakly, and finalize. The batch
// size equals the current vertex count so that heavy edges disappear quickly.
//
// Stops early when the graph runs out of edges (it is disconnected).
func contractSparseTo(g *core.Graph, r *rand.Rand, target int) error {
	for g.VertexCount() > target && g.EdgeCount() > 0 {
		edges := g.Edges()
		weights := make([]int64, len(edges))
		for i := range edges {
			weights[i] = edges[i].Weight
		}

		index, err := sumtree.New(weights)
		if err != nil {
			return err
		}
		if index.Total() == 0 {
			return nil
		}

		batch := g.VertexCount()
		for i := 0; i < batch && g.VertexCount() > target; i++ {
			// Draws are with replacement; re-contracting an already merged
			// pair is a harmless no-op of the weak contraction.
			e := edges[index.LowerBound(1+r.Int63n(index.Total()))]
			g.WeaklyContractEdge(e.From, e.To)
		}

		g.Finalize()
	}

	return nil
}

// recursiveSparse is the Karger-Stein recursion over the edge-list
// representation. Small or sparse graphs finish deterministically.
func recursiveSparse(g *core.Graph, r *rand.Rand, upper core.Weight) (core.Weight, error) {
	if totalWeight(g) == 0 {
		// No weight left to cross any bipartition: the graph is disconnected
		// or held together by zero-weight edges only, and some cut is free.
		return 0, nil
	}
	if g.EdgeCount() <= SparseBaseCaseSize || g.VertexCount() <= BaseCaseSize {
		return deterministicSparse(g, upper)
	}

	if err := contractSparseTo(g, r, TargetVertices(g.VertexCount())); err != nil {
		return 0, err
	}

	for i := 0; i < RecursiveFanout; i++ {
		cut, err := recursiveSparse(g.Clone(), r, upper)
		if err != nil {
			return 0, err
		}
		if cut < upper {
			upper = cut
		}
	}

	return upper, nil
}

// deterministicSparse applies the Padberg-Rinaldi reduction on the edge list
// (contract every edge at or above the bound), then finishes with
// Stoer-Wagner on the dense form of the remainder.
func deterministicSparse(g *core.Graph, upper core.Weight) (core.Weight, error) {
	contracted := true
	for contracted && g.VertexCount() > 2 {
		contracted = false
		for _, e := range g.Edges() {
			if e.Weight >= upper && g.VertexCount() > 2 {
				g.WeaklyContractEdge(e.From, e.To)
				contracted = true
			}
		}
		if contracted {
			g.Finalize()
		}
	}

	if g.VertexCount() < 2 {
		return upper, nil
	}
	if g.EdgeCount() == 0 {
		return 0, nil
	}

	cut, err := StoerWagner(MatrixFromGraph(g))
	if err != nil {
		return 0, err
	}
	if cut < upper {
		upper = cut
	}

	return upper, nil
}

func totalWeight(g *core.Graph) core.Weight {
	var total core.Weight
	for _, e := range g.Edges() {
		total += e.Weight
	}

	return total
}

// SparseMinimumCut computes the minimum cut of an edge-list graph with at
// least the requested success probability. A zero success probability runs a
// single trial, whose result is still a valid upper bound.
func SparseMinimumCut(g *core.Graph, successProbability float64, seed int64) (core.Weight, error) {
	if g.VertexCount() < 2 {
		return 0, ErrTooFewVertices
	}

	r := rng.FromSeed(seed)
	trials := NumberOfTrials(g.VertexCount(), successProbability)

	best := core.MaxWeight
	for i := 0; i < trials; i++ {
		cut, err := recursiveSparse(g.Clone(), r, best)
		if err != nil {
			return 0, err
		}
		if cut < best {
			best = cut
		}
	}

	return best, nil
}
