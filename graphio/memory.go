package graphio

import "github.com/katalvlaran/mincut/core"

// Memory is an input backed by an in-memory edge list, with the same slice
// extraction contract as Reader. Useful for tests and for feeding an already
// materialized graph (for example a generated one) through the cut pipeline.
type Memory struct {
	name     string
	vertices int
	edges    []core.Edge
}

// NewMemory wraps an edge list as an input. The list is not copied; callers
// must not mutate it afterwards.
func NewMemory(name string, vertices int, edges []core.Edge) *Memory {
	return &Memory{name: name, vertices: vertices, edges: edges}
}

// Name returns the display name supplied at construction.
func (m *Memory) Name() string { return m.name }

// VertexCount returns the vertex count supplied at construction.
func (m *Memory) VertexCount() int { return m.vertices }

// EdgeCount returns the number of edges.
func (m *Memory) EdgeCount() int { return len(m.edges) }

// Edges returns the full edge list; treat as read-only.
func (m *Memory) Edges() []core.Edge { return m.edges }

// LoadSlice returns the contiguous slice assigned to rank. The seed parameter
// is unused for memory input.
func (m *Memory) LoadSlice(rank, groupSize int, seed int64) []core.Edge {
	_ = seed
	from, to := sliceBounds(len(m.edges), rank, groupSize)

	return m.edges[from:to]
}
