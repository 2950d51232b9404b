// Package mincut computes (or approximates) the minimum edge cut of a large,
// undirected, positively weighted graph with a cluster of cooperating worker
// processes.
//
// 🚀 What is mincut?
//
//	A Monte-Carlo minimum-cut engine that trades certainty for parallel
//	speed, organized as independent packages:
//
//	  • Distributed shrinking: iterated sparse sampling over edge slices
//	  • Dense contraction: recursive contract on a row-striped matrix
//	  • Sequential anchors: Karger-Stein recursion, Stoer-Wagner exact cut
//	  • Orchestration: trial sizing, variant choice, global reduction
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/     — edge, edge-slice and contraction-graph primitives
//	comm/     — SPMD worker groups with typed collectives
//	sumtree/  — weighted random selection in O(log n)
//	dsu/      — union-find with compact relabeling
//	iss/      — iterated sparse sampling (shrink, components, reduce)
//	contract/ — parallel recursive contraction over matrix slices
//	seqcut/   — sequential Karger-Stein and Stoer-Wagner base cases
//	sqrtcut/  — the square-root cut trial orchestrator
//	graphio/  — graph file reader and the CLICK synthetic generator
//	cmd/      — the mincut command-line front end
//
// The returned cut weight is always an upper bound on the true minimum cut;
// it equals the minimum with a caller-chosen success probability.
//
//	go get github.com/katalvlaran/mincut
package mincut
