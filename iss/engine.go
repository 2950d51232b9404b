package iss

import (
	"math/rand"

	"github.com/katalvlaran/mincut/comm"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/dsu"
	"github.com/katalvlaran/mincut/rng"
)

// engine carries the group state shared by the weighted and unweighted
// samplers: the communicator, the rank's random stream, and the replicated
// vertex counts updated in lockstep after every round.
type engine struct {
	comm *comm.Comm
	rng  *rand.Rand
	seed int64

	target             int
	vertexCount        int
	initialVertexCount int
	initialEdgeCount   int
}

func newEngine(c *comm.Comm, cfg Config) (engine, error) {
	if err := cfg.validate(); err != nil {
		return engine{}, err
	}

	return engine{
		comm:               c,
		rng:                rng.FromSeed(cfg.Seed),
		seed:               cfg.Seed,
		target:             cfg.TargetSize,
		vertexCount:        cfg.VertexCount,
		initialVertexCount: cfg.VertexCount,
		initialEdgeCount:   cfg.EdgeCount,
	}, nil
}

// root reports whether this rank leads the group.
func (e *engine) root() bool { return e.comm.Rank() == 0 }

// VertexCount returns the current replicated vertex count.
func (e *engine) VertexCount() int { return e.vertexCount }

// InitialEdgeCount returns the edge count the sampler was configured with.
func (e *engine) InitialEdgeCount() int { return e.initialEdgeCount }

// mapping is the root's broadcast decision for one round: a surjective vertex
// map onto [0, Count) and the new vertex count.
type mapping struct {
	Labels []int
	Count  int
}

// prefixComponents walks pairs in order through a disjoint-set union until
// the component count drops to target, then relabels the partition densely in
// order of first occurrence. Root-only.
//
// Complexity: O(S α(n) + n).
func prefixComponents(pairs []core.UnweightedEdge, vertices, target int) mapping {
	sets := dsu.New(vertices)
	for i := 0; i < len(pairs) && sets.Sets() > target; i++ {
		sets.Union(pairs[i].From, pairs[i].To)
	}

	labels, count := sets.Labels()

	return mapping{Labels: labels, Count: count}
}
