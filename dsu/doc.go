// Package dsu provides a disjoint-set union (union-find) structure with
// union by rank and path compression, plus the compact relabeling used to
// turn a partition into a dense vertex map on [0, components).
//
// Both the incremental connected-components prefix scans and the weak edge
// contraction of the sequential cut algorithms are built on this structure.
//
// Complexity: a sequence of m Find/Union operations over n elements runs in
// O(m α(n)) where α is the inverse Ackermann function.
//
// The structure is NOT goroutine-safe; each worker owns its own instance.
package dsu
