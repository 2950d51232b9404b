package core

import "github.com/katalvlaran/mincut/dsu"

// Graph is an edge-list graph on the vertex range [0, VertexCount) supporting
// weak edge contraction. Contractions are recorded in a disjoint-set structure
// without touching the edge list; Finalize materializes them by renaming
// endpoints, merging parallel edges by weight summation, and dropping loops.
//
// The split into a weak phase and a finalization phase lets randomized
// contraction algorithms apply a whole sample of contractions before paying
// the O(m log m) cleanup once.
type Graph struct {
	slice       *EdgeSlice
	vertexCount int
	sets        *dsu.DSU
}

// NewGraph creates an empty graph on vertexCount vertices.
func NewGraph(vertexCount int) *Graph {
	return &Graph{
		slice:       NewEdgeSlice(0),
		vertexCount: vertexCount,
		sets:        dsu.New(vertexCount),
	}
}

// GraphFromEdges creates a graph over a copy-on-write view of edges. The
// argument is not copied until the first mutation; callers must not modify it
// while the graph is alive.
func GraphFromEdges(vertexCount int, edges []Edge) *Graph {
	return &Graph{
		slice:       Wrap(edges),
		vertexCount: vertexCount,
		sets:        dsu.New(vertexCount),
	}
}

// Clone returns an independent copy of the graph with the contraction state
// reset. Intended for repeated Monte-Carlo trials over the same input.
func (g *Graph) Clone() *Graph {
	edges := make([]Edge, len(g.slice.Edges()))
	copy(edges, g.slice.Edges())

	return &Graph{
		slice:       &EdgeSlice{edges: edges, owned: true},
		vertexCount: g.vertexCount,
		sets:        dsu.New(g.vertexCount),
	}
}

// VertexCount returns the current logical number of vertices, accounting for
// contractions recorded since the last Finalize.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of edges in the current representation. The
// count includes loops and parallel edges while contractions are pending.
func (g *Graph) EdgeCount() int { return g.slice.Len() }

// Edges exposes the current edge list; treat as read-only.
func (g *Graph) Edges() []Edge { return g.slice.Edges() }

// AddEdge appends an edge. Endpoints must lie in [0, VertexCount).
func (g *Graph) AddEdge(from, to int, weight Weight) error {
	if from < 0 || from >= g.vertexCount || to < 0 || to >= g.vertexCount {
		return ErrVertexOutOfRange
	}

	return g.slice.AddEdge(from, to, weight)
}

// WeaklyContractEdge identifies the partitions containing from and to.
// If they already share a partition (for example because an earlier
// contraction from the same sample merged them) no action is taken.
// Loops are not removed and parallel edges are not merged until Finalize;
// EdgeCount is not accurate while the representation is denormalized.
func (g *Graph) WeaklyContractEdge(from, to int) {
	if g.sets.Find(from) == g.sets.Find(to) {
		return
	}
	g.sets.Union(from, to)
	g.vertexCount--
}

// Finalize renames every endpoint to its partition representative, then
// normalizes, merges parallel edges and removes loops. Must be called after a
// series of WeaklyContractEdge calls before the edge list is read again.
//
// The partition labels are compacted onto [0, VertexCount) so that the graph
// is again a plain integer-range graph.
//
// Complexity: O(m log m + n α(n)).
func (g *Graph) Finalize() {
	labels, count := g.sets.Labels()

	g.slice.own()
	edges := g.slice.Edges()
	for i := range edges {
		edges[i].From = labels[edges[i].From]
		edges[i].To = labels[edges[i].To]
	}
	g.slice.Finalize()

	g.vertexCount = count
	g.sets = dsu.New(count)
}

// Compact returns a copy of the graph with singleton (isolated) vertices
// removed and the remaining vertices renamed, in order of first appearance in
// the edge list, onto a contiguous range.
func (g *Graph) Compact() *Graph {
	const unassigned = -1

	mapping := make([]int, g.maxVertexID()+1)
	for i := range mapping {
		mapping[i] = unassigned
	}

	next := 0
	for _, e := range g.slice.Edges() {
		if mapping[e.From] == unassigned {
			mapping[e.From] = next
			next++
		}
		if mapping[e.To] == unassigned {
			mapping[e.To] = next
			next++
		}
	}

	result := NewGraph(next)
	for _, e := range g.slice.Edges() {
		// Endpoints are in range by construction; AddEdge cannot fail here.
		_ = result.AddEdge(mapping[e.From], mapping[e.To], e.Weight)
	}

	return result
}

func (g *Graph) maxVertexID() int {
	max := 0
	for _, e := range g.slice.Edges() {
		if e.From > max {
			max = e.From
		}
		if e.To > max {
			max = e.To
		}
	}

	return max
}
