package seqcut

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/sumtree"
)

// Sentinel errors for the sequential routines.
var (
	// ErrMatrixShape indicates matrix data whose length is not n².
	ErrMatrixShape = errors.New("seqcut: matrix data length mismatch")

	// ErrTooFewVertices indicates a cut request on fewer than two vertices;
	// such a graph has no non-trivial bipartition.
	ErrTooFewVertices = errors.New("seqcut: graph has fewer than two vertices")
)

// Matrix is a dense symmetric weight matrix with zero diagonal, the input
// representation of the dense contraction routines.
type Matrix struct {
	n    int
	data []int64
}

// NewMatrix wraps row-major data as an n×n matrix without copying.
func NewMatrix(n int, data []int64) (*Matrix, error) {
	if n < 0 || len(data) != n*n {
		return nil, ErrMatrixShape
	}

	return &Matrix{n: n, data: data}, nil
}

// MatrixFromGraph materializes the dense matrix of an edge-list graph,
// summing parallel edges and skipping loops.
func MatrixFromGraph(g *core.Graph) *Matrix {
	n := g.VertexCount()
	data := make([]int64, n*n)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		data[e.From*n+e.To] += e.Weight
		data[e.To*n+e.From] += e.Weight
	}

	return &Matrix{n: n, data: data}
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// At returns the entry at (r, c).
func (m *Matrix) At(r, c int) int64 { return m.data[r*m.n+c] }

// contractState is the mutable working form of a dense contraction: the
// matrix over its original capacity, an active-prefix vertex count, and a
// sum tree over row sums for O(log n) weighted row selection. Contracted
// vertices are swapped past the active prefix.
type contractState struct {
	n    int // active vertex count
	cap  int
	w    []int64
	rows *sumtree.Tree
}

func newContractState(m *Matrix) (*contractState, error) {
	s := &contractState{n: m.n, cap: m.n, w: make([]int64, len(m.data))}
	copy(s.w, m.data)

	sums := make([]int64, m.n)
	for r := 0; r < m.n; r++ {
		var total int64
		for c := 0; c < m.n; c++ {
			total += s.w[r*m.n+c]
		}
		sums[r] = total
	}

	tree, err := sumtree.New(sums)
	if err != nil {
		return nil, err
	}
	s.rows = tree

	return s, nil
}

func (s *contractState) clone() *contractState {
	c := &contractState{n: s.n, cap: s.cap, w: make([]int64, len(s.w))}
	copy(c.w, s.w)

	sums := make([]int64, s.cap)
	for r := 0; r < s.cap; r++ {
		sums[r] = s.rowSum(r)
	}
	// Row sums are non-negative; reconstruction cannot fail.
	c.rows, _ = sumtree.New(sums)

	return c
}

func (s *contractState) at(r, c int) int64 { return s.w[r*s.cap+c] }

func (s *contractState) rowSum(r int) int64 {
	var total int64
	for c := 0; c < s.n; c++ {
		total += s.w[r*s.cap+c]
	}

	return total
}

// totalWeight returns the sum of all edge weights (each edge counted once).
func (s *contractState) totalWeight() int64 { return s.rows.Total() / 2 }

// randomEdge selects an edge with probability proportional to its weight:
// a row by row sum through the tree, then a column by scanning that row.
// Requires positive total weight.
func (s *contractState) randomEdge(r *rand.Rand) (int, int) {
	row := s.rows.LowerBound(1 + r.Int63n(s.rows.Total()))

	pick := 1 + r.Int63n(s.rowSum(row))
	var running int64
	for c := 0; c < s.n; c++ {
		running += s.at(row, c)
		if running >= pick {
			return row, c
		}
	}

	// Unreachable for a consistent state; the last active column closes the
	// prefix sum.
	return row, s.n - 1
}

// contract merges vertex v into vertex u and swaps the last active vertex
// into v's slot. The contracted edge weight is returned.
//
// Complexity: O(n log n) dominated by the row-sum refreshes.
func (s *contractState) contract(u, v int) int64 {
	if u > v {
		u, v = v, u
	}
	contracted := s.at(u, v)

	// Fold v's row and column into u.
	for c := 0; c < s.n; c++ {
		s.w[u*s.cap+c] += s.w[v*s.cap+c]
	}
	for r := 0; r < s.n; r++ {
		s.w[r*s.cap+u] += s.w[r*s.cap+v]
	}
	s.w[u*s.cap+u] = 0

	// Swap the last active vertex into v's slot and shrink the prefix.
	last := s.n - 1
	if v != last {
		for c := 0; c < s.n; c++ {
			s.w[v*s.cap+c] = s.w[last*s.cap+c]
		}
		for r := 0; r < s.n; r++ {
			s.w[r*s.cap+v] = s.w[r*s.cap+last]
		}
		s.w[v*s.cap+v] = s.w[last*s.cap+last]
	}
	for c := 0; c < s.cap; c++ {
		s.w[last*s.cap+c] = 0
		s.w[c*s.cap+last] = 0
	}
	s.n = last

	// Refresh the affected row sums.
	_ = s.rows.Update(last, 0)
	_ = s.rows.Update(u, s.rowSum(u))
	if v != last {
		_ = s.rows.Update(v, s.rowSum(v))
	}

	return contracted
}

// dense extracts the active n×n matrix.
func (s *contractState) dense() *Matrix {
	data := make([]int64, s.n*s.n)
	for r := 0; r < s.n; r++ {
		copy(data[r*s.n:(r+1)*s.n], s.w[r*s.cap:r*s.cap+s.n])
	}

	return &Matrix{n: s.n, data: data}
}
