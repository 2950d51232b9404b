package contract

import (
	"math/rand"

	"github.com/katalvlaran/mincut/sumtree"
)

// edgeSample identifies one sampled matrix entry by global coordinates.
type edgeSample struct {
	Row, Col int
}

// sliceIndex is the two-level prefix-sum index over a matrix slice: an outer
// tree over per-row weight sums and one inner tree per row. It supports
// selecting an entry with probability proportional to its weight in O(log n).
type sliceIndex struct {
	rowOffset int
	rowTrees  []*sumtree.Tree
	rowSums   *sumtree.Tree
}

// newSliceIndex builds the index in O(rows · size).
func newSliceIndex(s *Slice) (*sliceIndex, error) {
	ix := &sliceIndex{
		rowOffset: s.Rank() * s.Rows(),
		rowTrees:  make([]*sumtree.Tree, s.Rows()),
	}

	sums := make([]int64, s.Rows())
	for r := 0; r < s.Rows(); r++ {
		tree, err := sumtree.New(s.Row(r))
		if err != nil {
			return nil, err
		}
		ix.rowTrees[r] = tree
		sums[r] = tree.Total()
	}

	rowSums, err := sumtree.New(sums)
	if err != nil {
		return nil, err
	}
	ix.rowSums = rowSums

	return ix, nil
}

// total returns the weight sum of the whole slice.
func (ix *sliceIndex) total() int64 { return ix.rowSums.Total() }

// selectEdge picks a matrix entry with probability proportional to its
// weight: first a row by row sum, then a column within that row. The slice
// must carry positive total weight.
//
// Complexity: O(log n).
func (ix *sliceIndex) selectEdge(r *rand.Rand) edgeSample {
	row := ix.rowSums.LowerBound(1 + r.Int63n(ix.rowSums.Total()))
	col := ix.rowTrees[row].LowerBound(1 + r.Int63n(ix.rowTrees[row].Total()))

	return edgeSample{Row: ix.rowOffset + row, Col: col}
}
