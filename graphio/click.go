package graphio

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/mincut/core"
)

// CLICK-model parameters. Vertices are grouped into clusters by v mod s; edge
// weights are drawn from a normal distribution with a higher mean inside a
// cluster than across clusters, clipped at zero.
const (
	// DefaultClusters is the built-in cluster count s.
	DefaultClusters = 10

	clickMateMu     = 8
	clickMateSigma  = 4
	clickOtherMu    = 4
	clickOtherSigma = 4
)

// Click synthesizes a complete weighted graph following the CLICK clustering
// model. It satisfies the same input contract as Reader.
type Click struct {
	vertices int
	clusters int
}

// NewClick creates a CLICK input on vertices vertices with the built-in
// cluster count.
func NewClick(vertices int) *Click {
	return &Click{vertices: vertices, clusters: DefaultClusters}
}

// Name returns the fixed display name of CLICK inputs.
func (c *Click) Name() string { return "CLICK" }

// VertexCount returns the number of vertices of the complete graph.
func (c *Click) VertexCount() int { return c.vertices }

// EdgeCount returns the number of vertex pairs, n(n-1)/2.
func (c *Click) EdgeCount() int { return c.vertices * (c.vertices - 1) / 2 }

// LoadSlice deterministically generates the contiguous portion of the pair
// enumeration assigned to rank. The generator is seeded fresh per call, and
// weight draws are consumed only for in-slice pairs, so the result depends
// only on (rank, groupSize, seed).
//
// Complexity: O(n²) enumeration per call; O(slice) weight draws.
func (c *Click) LoadSlice(rank, groupSize int, seed int64) []core.Edge {
	from, to := sliceBounds(c.EdgeCount(), rank, groupSize)

	src := rand.NewSource(uint64(seed))
	mates := distuv.Normal{Mu: clickMateMu, Sigma: clickMateSigma, Src: src}
	others := distuv.Normal{Mu: clickOtherMu, Sigma: clickOtherSigma, Src: src}

	edges := make([]core.Edge, 0, to-from)
	counter := 0
	for i := 0; i < c.vertices; i++ {
		for j := i + 1; j < c.vertices; j++ {
			if counter >= from && counter < to {
				var draw float64
				if i%c.clusters == j%c.clusters {
					draw = mates.Rand()
				} else {
					draw = others.Rand()
				}
				if draw < 0 {
					draw = 0
				}
				edges = append(edges, core.Edge{From: i, To: j, Weight: core.Weight(draw)})
			}
			counter++
		}
	}

	return edges
}
