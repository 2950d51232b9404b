package seqcut

import "github.com/katalvlaran/mincut/core"

// StoerWagner computes the exact minimum cut of a dense weighted graph
// deterministically. Each phase grows a maximum-adjacency ordering; the last
// vertex added defines a minimum s-t cut ("cut of the phase") and is merged
// into its predecessor. The best phase cut over n-1 phases is the minimum cut.
//
// Disconnected graphs yield 0.
//
// Complexity: O(n³) time, O(n²) space.
func StoerWagner(m *Matrix) (core.Weight, error) {
	n := m.N()
	if n < 2 {
		return 0, ErrTooFewVertices
	}

	// Working copy; vertices are merged in place and the active prefix shrinks.
	w := make([]int64, len(m.data))
	copy(w, m.data)

	best := core.MaxWeight
	for size := n; size > 1; size-- {
		// Maximum adjacency ordering over the active prefix [0, size).
		added := make([]bool, size)
		weights := make([]int64, size)
		added[0] = true
		for j := 0; j < size; j++ {
			weights[j] = w[j] // row 0
		}

		prev := 0
		last := -1
		for i := 1; i < size; i++ {
			last = -1
			for j := 1; j < size; j++ {
				if !added[j] && (last == -1 || weights[j] > weights[last]) {
					last = j
				}
			}
			if i == size-1 {
				break
			}
			added[last] = true
			for j := 0; j < size; j++ {
				if !added[j] {
					weights[j] += w[last*n+j]
				}
			}
			prev = last
		}

		// The final vertex's connectivity to the rest is a cut of the phase.
		if weights[last] < best {
			best = weights[last]
		}

		// Merge last into prev.
		for j := 0; j < size; j++ {
			w[prev*n+j] += w[last*n+j]
			w[j*n+prev] += w[j*n+last]
		}
		w[prev*n+prev] = 0

		// Move the final active vertex into last's slot.
		if tail := size - 1; last != tail {
			for j := 0; j < size; j++ {
				w[last*n+j] = w[tail*n+j]
			}
			for j := 0; j < size; j++ {
				w[j*n+last] = w[j*n+tail]
			}
			w[last*n+last] = 0
		}
	}

	return best, nil
}
