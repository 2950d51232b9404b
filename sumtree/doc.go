// Package sumtree implements a flat-array segment tree of partial sums over a
// sequence of non-negative weights.
//
// The tree answers one recurring question of randomized contraction algorithms:
// "given weights w_1..w_n, pick index i with probability w_i / Σw" - drawn by
// choosing r uniformly in [1, Σw] and locating the first prefix whose running
// sum reaches r.
//
// Supported operations:
//
//   - New       - O(n) construction over a weight slice.
//   - Total     - O(1) sum of all weights (the root).
//   - LowerBound - O(log n) first index whose prefix sum is ≥ a query value.
//   - Update    - O(log n) point update of one weight.
//
// The tree is NOT goroutine-safe; each worker owns its own instance.
package sumtree
