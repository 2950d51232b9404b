// Package seqcut implements the sequential minimum-cut routines that anchor
// the distributed solver:
//
//   - the Karger-Stein recursive contraction on a dense adjacency matrix,
//     with Padberg-Rinaldi preprocessing and a deterministic Stoer-Wagner
//     fallback at small sizes (the base case entered when a recursion group
//     has folded to a single worker),
//   - the same recursion over a sparse edge-list graph, used after the
//     square-root shrinking step of the low-concurrency variant,
//   - the single-trial square-root cut (shrink the edge list to a target size
//     by weighted iterated sampling, compact, then contract recursively),
//   - the success-probability analysis shared with the trial orchestrator:
//     a lower bound on one trial's success and the trial count needed to
//     reach a requested overall probability.
//
// Every randomized routine here is Monte-Carlo: its result is always an upper
// bound on the true minimum cut, and equals it with the analyzed probability.
// Stoer-Wagner is deterministic and exact.
package seqcut
