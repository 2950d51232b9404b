package contract

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mincut/comm"
	"github.com/katalvlaran/mincut/dsu"
	"github.com/katalvlaran/mincut/sumtree"
)

// sampleCount returns the per-level sample budget ⌊n^1.2⌋ + 1.
func sampleCount(vertices int) int {
	return int(math.Pow(float64(vertices), 1.2)) + 1
}

// contractionTarget returns the per-level target ⌈n/√2 + 1⌉.
func contractionTarget(vertices int) int {
	return int(math.Ceil(float64(vertices)/math.Sqrt2 + 1))
}

// selectCounts assigns samples to workers with probability proportional to
// their slice weight sums, remembering the assignment order so the gathered
// sample can be restored to draw order. Root-only.
func selectCounts(groupSize, samples int, sums []int64, r *rand.Rand) ([]int, []int, error) {
	index, err := sumtree.New(sums)
	if err != nil {
		return nil, nil, err
	}

	quotas := make([]int, groupSize)
	order := make([]int, 0, samples)
	if index.Total() == 0 {
		// No weight anywhere: nothing can be sampled.
		return quotas, order, nil
	}

	for i := 0; i < samples; i++ {
		pick := index.LowerBound(1 + r.Int63n(index.Total()))
		quotas[pick]++
		order = append(order, pick)
	}

	return quotas, order, nil
}

// parallelSampleEdges draws the level's edge sample across the group and
// returns it, in draw order, at the root (nil elsewhere).
//
// The gathered sample arrives grouped by worker; the root undoes that
// grouping by replaying the assignment order. Without this permutation,
// edges with smaller row indices would be over-represented early in the
// sequence and bias the prefix scan.
func parallelSampleEdges(c *comm.Comm, s *Slice, r *rand.Rand) ([]edgeSample, error) {
	sums := comm.Gather(c, 0, s.Accumulate())

	var quotas, order []int
	if c.Rank() == 0 {
		var err error
		quotas, order, err = selectCounts(c.Size(), sampleCount(s.Vertices()), sums, r)
		if err != nil {
			return nil, err
		}
	}
	mine := comm.Scatter(c, 0, quotas)

	local := make([]edgeSample, 0, mine)
	if mine > 0 {
		ix, err := newSliceIndex(s)
		if err != nil {
			return nil, err
		}
		for i := 0; i < mine; i++ {
			local = append(local, ix.selectEdge(r))
		}
	}

	gathered := comm.Gatherv(c, 0, local)
	if c.Rank() != 0 {
		return nil, nil
	}

	// Restore draw order: displacements point at each worker's next unread
	// sample; replaying the assignment order interleaves them correctly.
	displacements := make([]int, len(quotas))
	for i := 1; i < len(quotas); i++ {
		displacements[i] = displacements[i-1] + quotas[i-1]
	}
	sample := make([]edgeSample, len(order))
	for i, worker := range order {
		sample[i] = gathered[displacements[worker]]
		displacements[worker]++
	}

	return sample, nil
}

// relabeling is the root's broadcast contraction decision for one level.
type relabeling struct {
	Labels []int
	Count  int
}

// prefixComponents scans the sample through a disjoint-set union until the
// component count drops to target, then returns the dense relabeling of the
// partition. Root-only.
func prefixComponents(sample []edgeSample, vertices, target int) relabeling {
	sets := dsu.New(vertices)
	for i := 0; i < len(sample) && sets.Sets() > target; i++ {
		sets.Union(sample[i].Row, sample[i].Col)
	}

	labels, count := sets.Labels()

	return relabeling{Labels: labels, Count: count}
}

// combineColumns folds the columns of src through labels into dst (zeroed
// first): dst[r][labels[c]] += src[r][c]. Columns past the label range are
// padding and already zero.
//
// Complexity: O(rows · vertices).
func combineColumns(dst, src []int64, rows, size int, labels []int) {
	for i := range dst {
		dst[i] = 0
	}
	for r := 0; r < rows; r++ {
		srcRow := src[r*size : (r+1)*size]
		dstRow := dst[r*size : (r+1)*size]
		for c, label := range labels {
			if srcRow[c] != 0 {
				dstRow[label] += srcRow[c]
			}
		}
	}
}

// contractTry runs one contraction attempt and returns the resulting vertex
// count (which may exceed target when the sample was too sparse).
func contractTry(c *comm.Comm, s *Slice, r *rand.Rand, target int) (int, error) {
	sample, err := parallelSampleEdges(c, s, r)
	if err != nil {
		return 0, err
	}

	var decision relabeling
	if c.Rank() == 0 {
		decision = prefixComponents(sample, s.Vertices(), target)
	}
	decision = comm.Bcast(c, 0, decision)

	// Fold columns, transpose, fold columns again (the original rows), and
	// transpose back. Two distributed transposes keep the slice row-major.
	aux := make([]int64, len(s.data))
	combineColumns(aux, s.data, s.rows, s.size, decision.Labels)
	transposed := distributedTranspose(c, aux, s.rows, s.size)
	combineColumns(aux, transposed, s.rows, s.size, decision.Labels)
	s.data = distributedTranspose(c, aux, s.rows, s.size)

	s.SetVertices(decision.Count)
	s.RemoveLoops()

	return decision.Count, nil
}

// Contract contracts the group's matrix down to target vertices, retrying
// levels whose sample happened to be too sparse. If the graph cannot reach
// the target because it has fallen apart into fewer-than-target connectable
// pieces, Contract stops at the closest achievable count; the base case
// resolves such graphs to a zero cut.
func Contract(c *comm.Comm, s *Slice, r *rand.Rand, target int) error {
	previous := -1
	for {
		count, err := contractTry(c, s, r, target)
		if err != nil {
			return err
		}
		if count <= target || count == previous {
			return nil
		}
		previous = count
	}
}
