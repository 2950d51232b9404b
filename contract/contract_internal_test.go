package contract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/comm"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/rng"
)

// striped builds each rank's slice of the given global square matrix.
func striped(global []int64, size, vertices, p, rank int) *Slice {
	rows := size / p
	data := make([]int64, rows*size)
	copy(data, global[rank*rows*size:(rank+1)*rows*size])
	s, err := NewSlice(vertices, rows, rank, size, data)
	if err != nil {
		panic(err)
	}

	return s
}

// gatherGlobal reassembles the global matrix from all ranks' slices.
func gatherGlobal(c *comm.Comm, s *Slice) []int64 {
	parts := comm.Gather(c, 0, append([]int64(nil), s.data...))

	var global []int64
	for _, part := range parts {
		global = append(global, part...)
	}

	return comm.Bcast(c, 0, global)
}

func TestDistributedTranspose(t *testing.T) {
	const p, size = 2, 4
	global := []int64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	want := []int64{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	}

	err := comm.Run(p, func(c *comm.Comm) error {
		s := striped(global, size, size, p, c.Rank())
		s.data = distributedTranspose(c, s.data, s.rows, s.size)

		got := gatherGlobal(c, s)
		require.Equal(t, want, got)

		return nil
	})
	require.NoError(t, err)
}

func TestSampleCountAndTarget(t *testing.T) {
	require.Equal(t, 2, sampleCount(1))
	// ⌊100^1.2⌋+1 = 251+1 = 252.
	require.Equal(t, 252, sampleCount(100))
	// ⌈10/√2 + 1⌉ = 9.
	require.Equal(t, 9, contractionTarget(10))
}

// One contraction level on the unit square 0-1-2-3-0 with target 3 must
// produce a symmetric, diagonal-zero matrix on 3 vertices whose total weight
// is the original minus the identified edges.
func TestContract_SquareToThreeVertices(t *testing.T) {
	const p, size = 2, 4
	square := []int64{
		0, 1, 0, 1,
		1, 0, 1, 0,
		0, 1, 0, 1,
		1, 0, 1, 0,
	}

	err := comm.Run(p, func(c *comm.Comm) error {
		s := striped(square, size, 4, p, c.Rank())
		r := rng.FromSeed(int64(31 + c.Rank()))

		require.NoError(t, Contract(c, s, r, 3))
		require.Equal(t, 3, s.Vertices())

		global := gatherGlobal(c, s)
		for i := 0; i < size; i++ {
			require.Zero(t, global[i*size+i], "diagonal")
			for j := 0; j < size; j++ {
				require.Equal(t, global[i*size+j], global[j*size+i], "symmetry")
				if i >= 3 || j >= 3 {
					require.Zero(t, global[i*size+j], "padding")
				}
			}
		}

		// One unit edge was identified; 3 of the 4 remain, counted twice.
		var total int64
		for _, w := range global {
			total += w
		}
		require.Equal(t, int64(6), total)

		return nil
	})
	require.NoError(t, err)
}

// Reassign must redistribute the matrix onto the surviving half, and
// Duplicate must hand both halves identical, independent copies.
func TestReassignAndDuplicate(t *testing.T) {
	const p, size = 4, 8
	// A 6-vertex matrix padded to 8, striped 2 rows per worker: entry (i,j)
	// encodes its coordinates so misplacement is visible.
	global := make([]int64, size*size)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if i != j {
				global[i*size+j] = int64(10*(i+1) + j + 1)
			}
		}
	}

	err := comm.Run(p, func(c *comm.Comm) error {
		s := striped(global, size, 6, p, c.Rank())

		half := p / 2
		reassigned, err := Reassign(c, s, half)
		require.NoError(t, err)
		if c.Rank() >= half {
			require.Nil(t, reassigned)
		} else {
			require.Equal(t, 6, reassigned.Vertices())
			require.Equal(t, 3, reassigned.Rows()) // ⌈6/2⌉
			require.Equal(t, 6, reassigned.Size())
		}

		mirror, sub, err := Duplicate(c, half, reassigned)
		require.NoError(t, err)
		require.Equal(t, half, sub.Size())
		require.Equal(t, c.Rank()%half, sub.Rank())

		// Both halves now reassemble the same 6x6 matrix.
		got := gatherGlobal(sub, mirror)
		want := make([]int64, 6*6)
		for i := 0; i < 6; i++ {
			copy(want[i*6:(i+1)*6], global[i*size:i*size+6])
		}
		require.Equal(t, want, got)

		return nil
	})
	require.NoError(t, err)
}

// A full parallel recursion on a group of two returns the exact cut for
// small graphs, because the base case resolves them deterministically.
func TestParallelCut_ExactOnSmallGraphs(t *testing.T) {
	const p = 2

	// Two triangles bridged by a weight-2 edge between 2 and 3; min cut 2.
	g := core.NewGraph(6)
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: 4}, {From: 1, To: 2, Weight: 4}, {From: 0, To: 2, Weight: 4},
		{From: 3, To: 4, Weight: 4}, {From: 4, To: 5, Weight: 4}, {From: 3, To: 5, Weight: 4},
		{From: 2, To: 3, Weight: 2},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	const size = 6
	global := make([]int64, size*size)
	for _, e := range g.Edges() {
		global[e.From*size+e.To] += e.Weight
		global[e.To*size+e.From] += e.Weight
	}

	results := make([]core.Weight, p)
	err := comm.Run(p, func(c *comm.Comm) error {
		s := striped(global, size, 6, p, c.Rank())

		cut, err := ParallelCut(c, s, 2, 5)
		require.NoError(t, err)
		results[c.Rank()] = cut

		return nil
	})
	require.NoError(t, err)

	for _, cut := range results {
		require.Equal(t, core.Weight(2), cut)
	}
}
