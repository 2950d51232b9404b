package iss

import (
	"github.com/katalvlaran/mincut/comm"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/sumtree"
)

// Weighted shrinks a weighted graph distributed edge-wise across its group.
// Every group member constructs one Weighted with the same configuration and
// participates in every call; the zero rank acts as the round coordinator.
type Weighted struct {
	engine
	slice *core.EdgeSlice
}

// NewWeighted creates this rank's endpoint of a weighted sampler group.
func NewWeighted(c *comm.Comm, cfg Config) (*Weighted, error) {
	e, err := newEngine(c, cfg)
	if err != nil {
		return nil, err
	}

	return &Weighted{engine: e, slice: core.NewEdgeSlice(0)}, nil
}

// SetSlice installs this worker's edge slice. The slice is aliased copy-on-
// write; the argument is never mutated.
func (w *Weighted) SetSlice(edges []core.Edge) { w.slice = core.Wrap(edges) }

// Slice exposes the current local slice; treat as read-only.
func (w *Weighted) Slice() []core.Edge { return w.slice.Edges() }

// BroadcastSlice shares this worker's slice with the equal-rank workers of
// sibling groups through the equivalence communicator; they install it with
// ReceiveSlice. The payload is shared memory, safe because slices are
// copy-on-write.
func (w *Weighted) BroadcastSlice(equivalence *comm.Comm) {
	comm.Bcast(equivalence, 0, w.slice.Edges())
}

// ReceiveSlice installs the slice broadcast by the equal-rank worker of the
// loading group.
func (w *Weighted) ReceiveSlice(equivalence *comm.Comm) {
	var none []core.Edge
	w.slice = core.Wrap(comm.Bcast(equivalence, 0, none))
}

// gatherWeights collects every slice's weight sum at the root (nil elsewhere).
func (w *Weighted) gatherWeights() []core.Weight {
	return comm.Gather(w.comm, 0, w.slice.TotalWeight())
}

// quotas assigns the round's sample budget across workers with probability
// proportional to their slice weights. Root-only. A group with no weight
// left anywhere gets an all-zero quota vector.
func (w *Weighted) quotas(weights []core.Weight) ([]int, error) {
	budget := weightedSampleBudget(w.initialVertexCount)
	perWorker := make([]int, len(weights))

	index, err := sumtree.New(weights)
	if err != nil {
		return nil, err
	}
	if index.Total() == 0 {
		return perWorker, nil
	}

	for i := 0; i < budget; i++ {
		perWorker[index.LowerBound(1+w.rng.Int63n(index.Total()))]++
	}

	return perWorker, nil
}

// sample draws count edges from the local slice, each with probability
// proportional to its weight, with replacement. A slice holding a single
// edge returns count copies of it without building a tree.
func (w *Weighted) sample(count int) ([]core.Edge, error) {
	edges := w.slice.Edges()

	if len(edges) <= 1 {
		drawn := make([]core.Edge, 0, count)
		if len(edges) == 1 {
			for i := 0; i < count; i++ {
				drawn = append(drawn, edges[0])
			}
		}

		return drawn, nil
	}

	weights := make([]int64, len(edges))
	for i := range edges {
		weights[i] = edges[i].Weight
	}
	index, err := sumtree.New(weights)
	if err != nil {
		return nil, err
	}

	drawn := make([]core.Edge, 0, count)
	for i := 0; i < count; i++ {
		drawn = append(drawn, edges[index.LowerBound(1+w.rng.Int63n(index.Total()))])
	}

	return drawn, nil
}

// round runs one full sampling round against the root-provided quota vector
// (consulted at the root only), applies the resulting vertex map, and returns
// the round's broadcast decision.
func (w *Weighted) round(quotas []int) (mapping, error) {
	mine := comm.Scatter(w.comm, 0, quotas)

	drawn, err := w.sample(mine)
	if err != nil {
		return mapping{}, err
	}
	gathered := comm.Gatherv(w.comm, 0, drawn)

	var decision mapping
	if w.root() {
		// Break the positional bias of the rank-ordered gather before the
		// order-sensitive prefix scan.
		w.rng.Shuffle(len(gathered), func(i, j int) {
			gathered[i], gathered[j] = gathered[j], gathered[i]
		})

		pairs := make([]core.UnweightedEdge, len(gathered))
		for i, e := range gathered {
			pairs[i] = core.UnweightedEdge{From: e.From, To: e.To}
		}
		decision = prefixComponents(pairs, w.vertexCount, w.target)
	}
	decision = comm.Bcast(w.comm, 0, decision)

	if err := w.slice.ApplyMapping(decision.Labels); err != nil {
		return mapping{}, err
	}
	w.vertexCount = decision.Count

	return decision, nil
}

// SamplingTrial runs one round and reports whether the target vertex count
// has been reached.
func (w *Weighted) SamplingTrial() (bool, error) {
	weights := w.gatherWeights()

	var perWorker []int
	var err error
	if w.root() {
		perWorker, err = w.quotas(weights)
		if err != nil {
			return false, err
		}
	}

	if _, err = w.round(perWorker); err != nil {
		return false, err
	}

	return w.vertexCount == w.target, nil
}

// Shrink drives sampling rounds until the group's vertex count reaches the
// target. If the group collectively runs out of weight first (the graph is
// disconnected below the target), Shrink halts at the closest achievable
// count; callers observe it through VertexCount.
func (w *Weighted) Shrink() error {
	previous := -1
	for {
		reached, err := w.SamplingTrial()
		if err != nil {
			return err
		}
		if reached || w.vertexCount == previous {
			return nil
		}
		previous = w.vertexCount
	}
}

// ConnectedComponents drives rounds until the group runs out of edge weight
// and returns the component labeling of the original vertices (root only;
// nil elsewhere) together with the component count. It must be invoked
// before any shrinking.
func (w *Weighted) ConnectedComponents() ([]int, int, error) {
	if w.vertexCount != w.initialVertexCount {
		return nil, 0, ErrShrunkGraph
	}

	var components []int
	if w.root() {
		components = make([]int, w.vertexCount)
		for i := range components {
			components[i] = i
		}
	}

	for {
		weights := w.gatherWeights()

		var total core.Weight
		var perWorker []int
		var err error
		if w.root() {
			for _, weight := range weights {
				total += weight
			}
			if total > 0 {
				perWorker, err = w.quotas(weights)
				if err != nil {
					return nil, 0, err
				}
			}
		}
		total = comm.Bcast(w.comm, 0, total)
		if total == 0 {
			return components, w.vertexCount, nil
		}

		decision, err := w.round(perWorker)
		if err != nil {
			return nil, 0, err
		}
		if w.root() {
			// Compose this round's relabeling onto the accumulated labels.
			for i := range components {
				components[i] = decision.Labels[components[i]]
			}
		}
	}
}
