// Package contract implements the distributed recursive contraction solver
// over a dense, row-striped adjacency matrix.
//
// A group of p workers (p a power of two) holds an n″×n″ symmetric weight
// matrix, k = n″/p consecutive rows per worker, padded with zero rows and
// columns so that p divides the dimension. One recursion level:
//
//  1. Sample ⌊n^1.2⌋+1 edges across the group, each drawn with probability
//     proportional to its weight through a two-level prefix-sum index
//     (an outer tree over per-row sums, an inner tree per row).
//  2. The root runs an incremental connected-components scan over the sample
//     prefix, stopping at the level target x = ⌈n/√2 + 1⌉, and broadcasts the
//     resulting vertex relabeling.
//  3. Every worker folds matrix columns through the relabeling, the group
//     performs a distributed transpose (an all-to-all of k×k blocks), columns
//     are folded again (which, post-transpose, folds the original rows), the
//     matrix is transposed back and its diagonal zeroed.
//  4. The group halves: Reassign redistributes the contracted matrix onto the
//     first p/2 workers, Duplicate copies it onto the other p/2, and the
//     communicator splits. Both halves recurse independently.
//
// When a group reaches a single worker, that worker owns the whole matrix and
// finishes with the sequential Karger-Stein base case. The value returned by
// one execution is an upper bound on the minimum cut; the orchestrator runs
// enough independent executions to reach the caller's success probability.
package contract
