package contract

import (
	"math/rand"

	"github.com/katalvlaran/mincut/comm"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/rng"
	"github.com/katalvlaran/mincut/seqcut"
)

// ParallelRecursiveContract runs one root-to-leaf execution of the recursion:
// contract to ⌈n/√2+1⌉, halve the group (Reassign + Duplicate), recurse, and
// finish with the sequential base case once this worker's group is singular.
// The returned weight is an upper bound on the minimum cut of the matrix the
// group started from.
//
// Requires a power-of-two group size.
func ParallelRecursiveContract(c *comm.Comm, s *Slice, r *rand.Rand) (core.Weight, error) {
	for c.Size() > 1 {
		if c.Size()%2 != 0 {
			return 0, ErrGroupSizeOdd
		}

		if err := Contract(c, s, r, contractionTarget(s.Vertices())); err != nil {
			return 0, err
		}

		half := c.Size() / 2
		reassigned, err := Reassign(c, s, half)
		if err != nil {
			return 0, err
		}

		s, c, err = Duplicate(c, half, reassigned)
		if err != nil {
			return 0, err
		}
	}

	dense, err := s.DenseMatrix()
	if err != nil {
		return 0, err
	}
	matrix, err := seqcut.NewMatrix(s.Vertices(), dense)
	if err != nil {
		return 0, err
	}

	return seqcut.MinimumCutTry(matrix, r.Int63())
}

// ParallelCut performs trials independent recursive-contract executions over
// the group's matrix and returns this worker's local minimum. Each worker
// seeds its stream with seed+rank, so sibling groups created by duplication
// explore independent recursion paths. The caller reduces the local minima.
func ParallelCut(c *comm.Comm, s *Slice, trials int, seed int64) (core.Weight, error) {
	r := rng.FromSeed(seed + int64(c.Rank()))

	best := core.MaxWeight
	for i := 0; i < trials; i++ {
		cut, err := ParallelRecursiveContract(c, s.DeepCopy(), r)
		if err != nil {
			return 0, err
		}
		if cut < best {
			best = cut
		}
	}

	return best, nil
}
