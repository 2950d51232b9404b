// Package core defines the central Edge, EdgeSlice, and Graph types shared by
// every cut algorithm in this module.
//
// An Edge is a weighted undirected connection between two integer vertices;
// in normalized form From ≤ To. An EdgeSlice is one worker's local, unordered
// portion of a distributed edge multiset, with copy-on-write semantics so that
// slices handed out by input readers are not duplicated until first mutation.
// A Graph is an edge-list graph on an integer vertex range supporting weak edge
// contraction through a disjoint-set structure and an explicit finalization
// step that renames endpoints, merges parallel edges, and drops loops.
//
// Invariants after EdgeSlice.Finalize and Graph.Finalize:
//
//   - every edge is normalized (From ≤ To),
//   - edges are sorted lexicographically by (From, To),
//   - no loops remain,
//   - no two edges share both endpoints (parallel edges merged by weight sum).
//
// None of the types in this package are goroutine-safe; each worker owns its
// slice exclusively.
package core
