package iss

import (
	"github.com/katalvlaran/mincut/comm"
	"github.com/katalvlaran/mincut/contract"
	"github.com/katalvlaran/mincut/core"
)

// boundaryOffer is one worker's first post-merge edge, offered to its left
// neighbor during boundary reconciliation. Real distinguishes an offer from
// an empty slice.
type boundaryOffer struct {
	Edge core.Edge
	Real bool
}

// Reduce converts the post-shrink edge slices into the row-striped dense
// adjacency matrix consumed by the recursive-contract solver.
//
// Steps: normalize and sample-sort the slices into global (from, to) order;
// merge parallel edges locally; reconcile runs of identical edges crossing
// worker boundaries; mirror each edge to materialize both triangles of the
// symmetric matrix; route edges to the workers owning their rows through an
// all-to-all; scatter them into the zero-padded matrix slice.
func (w *Weighted) Reduce() (*contract.Slice, error) {
	p := w.comm.Size()
	rank := w.comm.Rank()

	// Normalize into a private copy so sorting compares endpoint pairs.
	edges := make([]core.Edge, len(w.slice.Edges()))
	for i, e := range w.slice.Edges() {
		edges[i] = e.Normalize()
	}

	sorted := sampleSort(w.comm, edges, w.rng)

	// Merge parallel edges locally; duplicates are adjacent after the sort.
	merged := sorted[:0]
	for _, e := range sorted {
		if len(merged) > 0 && merged[len(merged)-1].SameEndpoints(e) {
			merged[len(merged)-1].Weight += e.Weight
			continue
		}
		merged = append(merged, e)
	}

	merged = w.reconcileBoundaries(merged)

	// Mirror every edge to fill both triangles, then route by row owner.
	rows := (w.vertexCount + p - 1) / p
	size := rows * p

	buckets := make([][]core.Edge, p)
	for _, e := range merged {
		buckets[e.From/rows] = append(buckets[e.From/rows], e)
		mirror := core.Edge{From: e.To, To: e.From, Weight: e.Weight}
		buckets[mirror.From/rows] = append(buckets[mirror.From/rows], mirror)
	}
	incoming := comm.Alltoallv(w.comm, buckets)

	data := make([]int64, rows*size)
	rowOffset := rank * rows
	for _, part := range incoming {
		for _, e := range part {
			data[(e.From-rowOffset)*size+e.To] = e.Weight
		}
	}

	return contract.NewSlice(w.vertexCount, rows, rank, size, data)
}

// reconcileBoundaries merges runs of identical edges that cross worker
// boundaries after the distributed sort.
//
// Every worker offers its first edge to the left via an all-gather; every
// worker except the first then gives its first edge up. The leftmost worker
// of a streak of equal offers absorbs the whole run, summing weights; a run
// may span arbitrarily many workers, including empty slices interleaved at
// the tail.
func (w *Weighted) reconcileBoundaries(merged []core.Edge) []core.Edge {
	p := w.comm.Size()
	rank := w.comm.Rank()

	mine := boundaryOffer{Real: len(merged) > 0}
	if mine.Real {
		mine.Edge = merged[0]
	}
	offers := comm.Allgather(w.comm, mine)

	// Give up the edge we offered.
	if rank != 0 && len(merged) > 0 {
		merged = merged[1:]
	}

	// Absorb from the right when we are the leftmost worker of the streak.
	// Rank 0 kept its offer, so it is the absorber even when its own offer
	// continues the streak.
	if rank < p-1 && offers[rank+1].Real {
		inStreak := rank != 0 && offers[rank].Real && offers[rank].Edge.SameEndpoints(offers[rank+1].Edge)
		if !inStreak {
			next := rank + 1
			if len(merged) == 0 || !merged[len(merged)-1].SameEndpoints(offers[next].Edge) {
				merged = append(merged, offers[next].Edge)
				next++
			}
			for next < p && offers[next].Real && offers[next].Edge.SameEndpoints(merged[len(merged)-1]) {
				merged[len(merged)-1].Weight += offers[next].Edge.Weight
				next++
			}
		}
	}

	return merged
}
