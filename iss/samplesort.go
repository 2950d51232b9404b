package iss

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mincut/comm"
	"github.com/katalvlaran/mincut/core"
)

// sampleSort sorts the group's distributed edge multiset globally by
// (from, to): every worker samples its slice with probability n^-1/2, the
// union of samples (shared by an all-gather) yields p-1 splitter pivots,
// edges are routed to the worker owning their pivot range, and each worker
// sorts its received range locally. Afterwards rank order equals sort order.
//
// The input slice is consumed. With too few samples to cut p ranges the
// trailing workers simply receive larger ranges; correctness does not depend
// on balance.
func sampleSort(c *comm.Comm, edges []core.Edge, r *rand.Rand) []core.Edge {
	p := c.Size()

	total := comm.Allreduce(c, len(edges), func(a, b int) int { return a + b })
	if total == 0 {
		return nil
	}

	// Sample locally.
	probability := math.Pow(float64(total), -0.5)
	var local []core.Edge
	for _, e := range edges {
		if r.Float64() <= probability {
			local = append(local, e)
		}
	}

	samples := comm.Allgatherv(c, local)
	core.SortEdges(samples)
	core.SortEdges(edges)

	// Select the splitter pivots. Worker i receives every edge e with
	// pivot[i-1] ≤ e < pivot[i]; the last worker takes the open tail.
	var pivots []core.Edge
	if k := len(samples) / p; k > 0 {
		for i := 1; i < p; i++ {
			pivots = append(pivots, samples[i*k])
		}
	}

	buckets := make([][]core.Edge, p)
	next := 0
	for ordinal := range pivots {
		start := next
		for next < len(edges) && edges[next].Less(pivots[ordinal]) {
			next++
		}
		buckets[ordinal] = edges[start:next]
	}
	buckets[p-1] = edges[next:]

	received := comm.Alltoallv(c, buckets)

	flat := make([]core.Edge, 0, len(edges))
	for _, part := range received {
		flat = append(flat, part...)
	}
	core.SortEdges(flat)

	return flat
}
