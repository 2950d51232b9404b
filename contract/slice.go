package contract

import "errors"

// Sentinel errors for matrix-slice construction and group management.
var (
	// ErrSliceShape indicates inconsistent slice dimensions.
	ErrSliceShape = errors.New("contract: inconsistent slice shape")

	// ErrGroupSizeOdd indicates a recursion level entered with an odd group size.
	ErrGroupSizeOdd = errors.New("contract: group size must be even to halve")

	// ErrSliceIncomplete indicates a whole-matrix operation on a partial slice.
	ErrSliceIncomplete = errors.New("contract: slice does not hold the whole matrix")
)

// Slice is one worker's consecutive-row portion of a padded n″×n″ symmetric
// weight matrix. Row i of the logical matrix lives on the worker with
// rank ⌊i/rows⌋; data is stored row-major, rows × size entries.
//
// Invariants: the global matrix is symmetric with zero diagonal, and all
// entries with a coordinate ≥ Vertices() are zero (padding).
type Slice struct {
	vertices int // logical vertex count n'
	rows     int // rows per worker k
	rank     int // this slice's block index within the matrix
	size     int // padded dimension n″ = rows · groupSize
	data     []int64
}

// NewSlice wraps data (row-major, rows × size) as a matrix slice. The data is
// NOT copied; ownership transfers to the slice.
func NewSlice(vertices, rows, rank, size int, data []int64) (*Slice, error) {
	if vertices < 0 || rows <= 0 || rank < 0 || size <= 0 {
		return nil, ErrSliceShape
	}
	if size%rows != 0 || vertices > size || len(data) != rows*size {
		return nil, ErrSliceShape
	}

	return &Slice{vertices: vertices, rows: rows, rank: rank, size: size, data: data}, nil
}

// Vertices returns the current logical vertex count.
func (s *Slice) Vertices() int { return s.vertices }

// SetVertices records the logical vertex count after a contraction.
func (s *Slice) SetVertices(v int) { s.vertices = v }

// Rows returns the number of matrix rows held by this slice.
func (s *Slice) Rows() int { return s.rows }

// Rank returns the slice's block index; its first row is global row
// Rank()·Rows().
func (s *Slice) Rank() int { return s.rank }

// Size returns the padded matrix dimension n″.
func (s *Slice) Size() int { return s.size }

// Row returns local row r as a shared sub-slice.
func (s *Slice) Row(r int) []int64 { return s.data[r*s.size : (r+1)*s.size] }

// At returns the entry at local row r, global column c.
func (s *Slice) At(r, c int) int64 { return s.data[r*s.size+c] }

// Accumulate returns the sum of all entries of this slice, which is the total
// degree weight of the vertices whose rows it holds.
// Complexity: O(rows · size).
func (s *Slice) Accumulate() int64 {
	var total int64
	for _, w := range s.data {
		total += w
	}

	return total
}

// RemoveLoops zeroes the diagonal entries falling into this slice.
// Complexity: O(rows).
func (s *Slice) RemoveLoops() {
	for r := 0; r < s.rows; r++ {
		global := s.rank*s.rows + r
		if global < s.size {
			s.data[r*s.size+global] = 0
		}
	}
}

// DeepCopy returns an independent copy of the slice.
func (s *Slice) DeepCopy() *Slice {
	data := make([]int64, len(s.data))
	copy(data, s.data)

	return &Slice{vertices: s.vertices, rows: s.rows, rank: s.rank, size: s.size, data: data}
}

// PaddingIsZero reports whether every entry with a column ≥ Vertices() is
// zero. Row padding is owned by higher-ranked slices and checked there.
func (s *Slice) PaddingIsZero() bool {
	for r := 0; r < s.rows; r++ {
		row := s.Row(r)
		for c := s.vertices; c < s.size; c++ {
			if row[c] != 0 {
				return false
			}
		}
		if s.rank*s.rows+r >= s.vertices {
			for c := 0; c < s.size; c++ {
				if row[c] != 0 {
					return false
				}
			}
		}
	}

	return true
}

// DenseMatrix extracts the logical n'×n' matrix. Valid only when the slice
// holds every row of the matrix, which is the case once a recursion group has
// folded to a single worker.
func (s *Slice) DenseMatrix() ([]int64, error) {
	if s.rank != 0 || s.rows < s.vertices {
		return nil, ErrSliceIncomplete
	}

	n := s.vertices
	dense := make([]int64, n*n)
	for r := 0; r < n; r++ {
		copy(dense[r*n:(r+1)*n], s.data[r*s.size:r*s.size+n])
	}

	return dense, nil
}
