// Package sqrtcut orchestrates the distributed square-root minimum-cut
// computation: it sizes the Monte-Carlo trial count for a requested success
// probability, picks an execution variant, runs the worker world, and reduces
// the per-trial candidates to the final answer.
//
// Variant choice. With T total trials required and p workers available:
//
//   - Low concurrency (p < 2·T): every worker receives the full edge list by
//     broadcast and runs ⌈T/p⌉ independent sequential square-root trials with
//     its own seed.
//   - High concurrency (otherwise): workers split into power-of-two groups,
//     one trial pipeline per group - iterated sparse sampling down to
//     ⌈c·√m+1⌉ vertices, reduction to a row-striped dense matrix, and the
//     parallel recursive contraction. Workers that do not fit the power-of-
//     two grouping join an odd communicator and contribute the MaxWeight
//     sentinel to the final reduction.
//
// The returned weight is always an upper bound on the true minimum cut and
// equals it with probability at least the requested one. Nothing is persisted;
// the orchestrator is batch-oriented.
package sqrtcut
