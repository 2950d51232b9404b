package core

// EdgeSlice is a worker-local, unordered collection of edges.
//
// The zero value is an empty, owned slice. A slice wrapped around an external
// edge list with Wrap aliases that list until the first mutation; AddEdge,
// ApplyMapping and Finalize all take ownership by copying first (copy on
// write), so external lists are never modified.
type EdgeSlice struct {
	edges []Edge
	owned bool
}

// Wrap returns an EdgeSlice aliasing edges without copying. The caller must
// not mutate the argument while the slice is alive; the slice itself copies
// before its first mutation.
func Wrap(edges []Edge) *EdgeSlice {
	return &EdgeSlice{edges: edges, owned: false}
}

// NewEdgeSlice returns an empty slice with the given capacity hint.
func NewEdgeSlice(capacity int) *EdgeSlice {
	return &EdgeSlice{edges: make([]Edge, 0, capacity), owned: true}
}

// own makes the backing array private, copying the aliased edges if needed.
func (s *EdgeSlice) own() {
	if s.owned {
		return
	}
	private := make([]Edge, len(s.edges))
	copy(private, s.edges)
	s.edges = private
	s.owned = true
}

// Len returns the number of edges currently held.
func (s *EdgeSlice) Len() int { return len(s.edges) }

// Edges exposes the backing edge list. Callers must treat the result as
// read-only; it may alias an externally supplied list.
func (s *EdgeSlice) Edges() []Edge { return s.edges }

// TotalWeight returns the sum of all edge weights in the slice.
// Complexity: O(m).
func (s *EdgeSlice) TotalWeight() Weight {
	var total Weight
	for i := range s.edges {
		total += s.edges[i].Weight
	}

	return total
}

// AddEdge appends a (possibly non-normalized) edge. Amortized O(1).
// The endpoints are normalized on insertion; weights must be non-negative.
func (s *EdgeSlice) AddEdge(from, to int, weight Weight) error {
	if weight < 0 {
		return ErrNegativeWeight
	}
	s.own()
	s.edges = append(s.edges, Edge{From: from, To: to, Weight: weight}.Normalize())

	return nil
}

// ApplyMapping rewrites every endpoint through vertexMap, dropping edges that
// become loops. Parallel edges produced by the mapping are left to the next
// Finalize. The map must cover every endpoint currently present.
//
// Complexity: O(m).
func (s *EdgeSlice) ApplyMapping(vertexMap []int) error {
	for i := range s.edges {
		if s.edges[i].From >= len(vertexMap) || s.edges[i].To >= len(vertexMap) {
			return ErrMappingLength
		}
	}

	updated := make([]Edge, 0, len(s.edges))
	for _, e := range s.edges {
		e.From = vertexMap[e.From]
		e.To = vertexMap[e.To]
		if e.From != e.To {
			updated = append(updated, e)
		}
	}
	s.edges = updated
	s.owned = true

	return nil
}

// Finalize brings the slice into canonical form: endpoints normalized, edges
// sorted lexicographically by (From, To), consecutive duplicates merged by
// weight summation, loops dropped.
//
// Complexity: O(m log m).
func (s *EdgeSlice) Finalize() {
	s.own()

	for i := range s.edges {
		s.edges[i] = s.edges[i].Normalize()
	}
	SortEdges(s.edges)

	next := 0
	for _, e := range s.edges {
		if e.From == e.To {
			continue // loop
		}
		if next > 0 && s.edges[next-1].SameEndpoints(e) {
			s.edges[next-1].Weight += e.Weight
			continue
		}
		s.edges[next] = e
		next++
	}
	s.edges = s.edges[:next]
}
