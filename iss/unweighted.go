package iss

import (
	"github.com/katalvlaran/mincut/comm"
	"github.com/katalvlaran/mincut/core"
)

// Unweighted labels the connected components of an unweighted graph
// distributed edge-wise across its group. It shares the round structure of
// the weighted sampler but draws uniformly and budgets samples by slice size
// rather than weight.
type Unweighted struct {
	engine
	slice []core.UnweightedEdge
}

// NewUnweighted creates this rank's endpoint of an unweighted sampler group.
func NewUnweighted(c *comm.Comm, cfg Config) (*Unweighted, error) {
	e, err := newEngine(c, cfg)
	if err != nil {
		return nil, err
	}

	return &Unweighted{engine: e}, nil
}

// SetSlice installs this worker's pair slice. Ownership transfers to the
// sampler.
func (u *Unweighted) SetSlice(pairs []core.UnweightedEdge) { u.slice = pairs }

// Slice exposes the current local slice; treat as read-only.
func (u *Unweighted) Slice() []core.UnweightedEdge { return u.slice }

// countEdges returns the group-wide number of remaining edges, at every rank.
func (u *Unweighted) countEdges() int {
	return comm.Allreduce(u.comm, len(u.slice), func(a, b int) int { return a + b })
}

// available collects every slice's size at the root (nil elsewhere).
func (u *Unweighted) available() []int {
	return comm.Gather(u.comm, 0, len(u.slice))
}

// quotas distributes the round's sample budget across workers. Root-only.
//
// Slices below the sparsity threshold are asked to contribute whole; sampling
// with replacement would hammer them with requests for the same few edges.
// The remaining budget is split proportionally to the remaining slice sizes,
// capped by each slice's actual size, and any leftover is assigned greedily
// to workers with spare capacity. Empty slices are never asked for anything.
func (u *Unweighted) quotas(available []int) []int {
	total := 0
	for _, a := range available {
		total += a
	}

	budget := unweightedSampleBudget(u.initialVertexCount)
	if budget > total {
		budget = total
	}
	threshold := sparsityThreshold(u.comm.Size())

	perWorker := make([]int, len(available))
	remaining := budget
	proportionalBudget := budget
	for i, a := range available {
		if a <= threshold {
			perWorker[i] = a
			remaining -= a
			// Whole contributions leave the proportional pool.
			proportionalBudget -= a
		}
	}

	// Proportional share for the rest; the per-worker cap also keeps empty
	// slices at zero.
	for i, a := range available {
		if perWorker[i] != 0 || a <= threshold {
			continue
		}
		share := int(float64(proportionalBudget) * float64(a) / float64(total))
		if share > a {
			share = a
		}
		perWorker[i] = share
		remaining -= share
	}

	// Spill the rounding leftovers onto workers with spare capacity.
	for i := 0; remaining > 0 && i < len(available); i++ {
		if spare := available[i] - perWorker[i]; spare > 0 {
			grant := spare
			if grant > remaining {
				grant = remaining
			}
			perWorker[i] += grant
			remaining -= grant
		}
	}

	return perWorker
}

// sample draws count pairs uniformly with replacement. A request for the
// whole slice returns it directly.
func (u *Unweighted) sample(count int) []core.UnweightedEdge {
	if count == len(u.slice) {
		return u.slice
	}

	drawn := make([]core.UnweightedEdge, 0, count)
	for i := 0; i < count; i++ {
		drawn = append(drawn, u.slice[u.rng.Intn(len(u.slice))])
	}

	return drawn
}

// round runs one sampling round and returns the broadcast decision.
func (u *Unweighted) round(quotas []int) mapping {
	mine := comm.Scatter(u.comm, 0, quotas)
	gathered := comm.Gatherv(u.comm, 0, u.sample(mine))

	var decision mapping
	if u.root() {
		// The uniform shuffle is critical here: rank order correlates with
		// edge ranges, and the prefix scan is order-sensitive.
		u.rng.Shuffle(len(gathered), func(i, j int) {
			gathered[i], gathered[j] = gathered[j], gathered[i]
		})
		decision = prefixComponents(gathered, u.vertexCount, u.target)
	}
	decision = comm.Bcast(u.comm, 0, decision)

	u.applyMapping(decision.Labels)
	u.vertexCount = decision.Count

	return decision
}

// applyMapping rewrites endpoints and drops loops.
func (u *Unweighted) applyMapping(labels []int) {
	updated := u.slice[:0]
	for _, pair := range u.slice {
		pair.From = labels[pair.From]
		pair.To = labels[pair.To]
		if pair.From != pair.To {
			updated = append(updated, pair)
		}
	}
	u.slice = updated
}

// ConnectedComponents drives sampling rounds until the group runs out of
// edges and returns the component labeling of the original vertices (root
// only; nil elsewhere) together with the component count.
func (u *Unweighted) ConnectedComponents() ([]int, int, error) {
	if u.vertexCount != u.initialVertexCount {
		return nil, 0, ErrShrunkGraph
	}

	var components []int
	if u.root() {
		components = make([]int, u.vertexCount)
		for i := range components {
			components[i] = i
		}
	}

	for u.countEdges() > 0 {
		available := u.available()

		var perWorker []int
		if u.root() {
			perWorker = u.quotas(available)
		}

		decision := u.round(perWorker)
		if u.root() {
			for i := range components {
				components[i] = decision.Labels[components[i]]
			}
		}
	}

	return components, u.vertexCount, nil
}
