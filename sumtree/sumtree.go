package sumtree

import "errors"

// Sentinel errors for sum-tree construction and queries.
var (
	// ErrEmptyWeights indicates that New was called with no weights.
	ErrEmptyWeights = errors.New("sumtree: empty weight sequence")

	// ErrNegativeWeight indicates a negative weight in the input sequence.
	ErrNegativeWeight = errors.New("sumtree: negative weight")

	// ErrIndexOutOfRange indicates an Update index outside [0, Len).
	ErrIndexOutOfRange = errors.New("sumtree: index out of range")
)

// Tree is a segment tree of partial sums stored in a flat array.
//
// Layout: nodes is a 1-based binary heap of 2*base entries where base is the
// smallest power of two ≥ n. nodes[base+i] holds leaf i (zero for padding
// leaves); every internal node holds the sum of its two children.
type Tree struct {
	nodes []int64
	base  int
	n     int
}

// New builds a sum tree over weights in O(n).
// The weight slice is copied; later mutations of the argument do not affect
// the tree. Returns ErrEmptyWeights for an empty input and ErrNegativeWeight
// if any weight is negative.
func New(weights []int64) (*Tree, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrEmptyWeights
	}

	base := 1
	for base < n {
		base <<= 1
	}

	t := &Tree{
		nodes: make([]int64, 2*base),
		base:  base,
		n:     n,
	}

	var i int
	for i = 0; i < n; i++ {
		if weights[i] < 0 {
			return nil, ErrNegativeWeight
		}
		t.nodes[base+i] = weights[i]
	}
	for i = base - 1; i >= 1; i-- {
		t.nodes[i] = t.nodes[2*i] + t.nodes[2*i+1]
	}

	return t, nil
}

// Len returns the number of leaves (the length of the weight sequence).
func (t *Tree) Len() int { return t.n }

// Total returns the sum of all weights.
// Complexity: O(1).
func (t *Tree) Total() int64 { return t.nodes[1] }

// LowerBound returns the smallest index i such that the prefix sum
// w_0 + ... + w_i is ≥ value.
//
// Precondition: 1 ≤ value ≤ Total(). Values below 1 behave like 1; values
// above Total() return the last index carrying positive weight. The clamping
// keeps randomized callers panic-free in the presence of rounding slack.
//
// Complexity: O(log n).
func (t *Tree) LowerBound(value int64) int {
	if value < 1 {
		value = 1
	}
	if value > t.nodes[1] {
		value = t.nodes[1]
	}

	// Walk down from the root, descending left when the left subtree covers
	// the remaining value, otherwise subtracting it and descending right.
	idx := 1
	for idx < t.base {
		left := 2 * idx
		if t.nodes[left] >= value {
			idx = left
		} else {
			value -= t.nodes[left]
			idx = left + 1
		}
	}

	leaf := idx - t.base
	if leaf >= t.n {
		leaf = t.n - 1
	}

	return leaf
}

// Update replaces the weight at index with a new value and refreshes the
// O(log n) path to the root. Returns ErrIndexOutOfRange or ErrNegativeWeight
// on invalid input.
func (t *Tree) Update(index int, value int64) error {
	if index < 0 || index >= t.n {
		return ErrIndexOutOfRange
	}
	if value < 0 {
		return ErrNegativeWeight
	}

	idx := t.base + index
	t.nodes[idx] = value
	for idx > 1 {
		idx >>= 1
		t.nodes[idx] = t.nodes[2*idx] + t.nodes[2*idx+1]
	}

	return nil
}
