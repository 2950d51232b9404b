// Package iss implements Iterated Sparse Sampling, the distributed primitive
// that shrinks a graph partitioned edge-wise across a worker group down to a
// target vertex count, or alternatively labels its connected components.
//
// One sampling round:
//
//  1. Workers gather per-slice metadata at the root: total edge weight for
//     the weighted variant, slice size for the unweighted one.
//  2. The root assigns per-worker sample quotas - proportionally to slice
//     weight through a sum tree for the weighted variant; for the unweighted
//     variant, slices below a sparsity threshold contribute whole and the
//     remaining budget is spread proportionally to slice sizes.
//  3. Quotas are scattered; each worker draws its quota locally (weighted
//     draws through a sum tree in O(log m) each, unweighted draws uniformly,
//     both with replacement) and the samples are gathered back.
//  4. The root permutes the gathered sample uniformly. The gather arrives
//     grouped by worker, which would bias the prefix scan toward the edge
//     ranges of low ranks.
//  5. The root runs an incremental connected-components scan over the sample
//     prefix, stopping once the component count drops to the target, and
//     broadcasts the resulting vertex map together with the new count.
//  6. Every worker rewrites its slice through the map, dropping loops.
//
// Shrink repeats rounds until the target is reached; ConnectedComponents
// repeats until the group runs out of edges. If the workers collectively run
// out of sampleable weight before reaching the target, the loop halts at the
// closest achievable count.
//
// Reduce converts the post-shrink edge slices into the row-striped dense
// matrix consumed by the recursive-contract solver: a distributed sample
// sort brings the slices into global (from, to) order, per-worker merging
// plus a boundary reconciliation pass coalesces parallel edges that cross
// worker boundaries, and an all-to-all routes each edge to the owner of its
// matrix row.
package iss
