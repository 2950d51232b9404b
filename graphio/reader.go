package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/mincut/core"
)

// Sentinel errors for input parsing.
var (
	// ErrMalformedHeader indicates a missing or unparsable "<vertices> <edges>" line.
	ErrMalformedHeader = errors.New("graphio: malformed header")

	// ErrMalformedEdge indicates an edge line that is not "<u> <v> <w>".
	ErrMalformedEdge = errors.New("graphio: malformed edge line")

	// ErrVertexOutOfRange indicates an endpoint outside [0, vertices).
	ErrVertexOutOfRange = errors.New("graphio: vertex out of range")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("graphio: edge weight must be positive")

	// ErrTruncatedInput indicates fewer edge lines than the header announced.
	ErrTruncatedInput = errors.New("graphio: fewer edges than header announced")
)

// sliceBounds returns the contiguous enumeration range assigned to rank:
// [⌈m·rank/g⌉, ⌈m·(rank+1)/g⌉).
func sliceBounds(m, rank, groupSize int) (int, int) {
	from := (m*rank + groupSize - 1) / groupSize
	to := (m*(rank+1) + groupSize - 1) / groupSize

	return from, to
}

// Reader holds a parsed graph input. It retains the full edge list in memory;
// LoadSlice hands out contiguous views without copying.
type Reader struct {
	name     string
	vertices int
	edges    []core.Edge
}

// Open reads and parses the graph file at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Parse(path, f)
}

// Parse reads a graph from r. The name is carried through to result reporting.
//
// Self-loops are dropped while reading, per the input contract; the header's
// edge count governs how many edge lines are consumed, while EdgeCount
// reflects the retained edges.
func Parse(name string, r io.Reader) (*Reader, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	header, err := nextLine(scanner)
	if err != nil {
		return nil, ErrMalformedHeader
	}
	if strings.HasPrefix(header, "#") {
		if header, err = nextLine(scanner); err != nil {
			return nil, ErrMalformedHeader
		}
	}

	var vertices, announced int
	if n, err := fmt.Sscanf(header, "%d %d", &vertices, &announced); n != 2 || err != nil {
		return nil, ErrMalformedHeader
	}
	if vertices < 0 || announced < 0 {
		return nil, ErrMalformedHeader
	}

	edges := make([]core.Edge, 0, announced)
	for i := 0; i < announced; i++ {
		line, err := nextLine(scanner)
		if err != nil {
			return nil, ErrTruncatedInput
		}

		var u, v int
		var w core.Weight
		if n, err := fmt.Sscanf(line, "%d %d %d", &u, &v, &w); n != 3 || err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEdge, line)
		}
		if u < 0 || u >= vertices || v < 0 || v >= vertices {
			return nil, fmt.Errorf("%w: %q", ErrVertexOutOfRange, line)
		}
		if w <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadWeight, line)
		}
		if u == v {
			continue // self-loops are ignored
		}
		edges = append(edges, core.Edge{From: u, To: v, Weight: w})
	}

	return &Reader{name: name, vertices: vertices, edges: edges}, nil
}

// nextLine returns the next non-empty line.
func nextLine(scanner *bufio.Scanner) (string, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// Name returns the input's display name (the file path for Open).
func (r *Reader) Name() string { return r.name }

// VertexCount returns the number of vertices declared by the header.
func (r *Reader) VertexCount() int { return r.vertices }

// EdgeCount returns the number of retained (non-loop) edges.
func (r *Reader) EdgeCount() int { return len(r.edges) }

// Edges returns the full edge list in file order; treat as read-only.
func (r *Reader) Edges() []core.Edge { return r.edges }

// LoadSlice returns the contiguous file-order slice assigned to rank within a
// group of groupSize workers. The seed parameter exists to satisfy the shared
// input contract and is unused for file input. The result aliases the
// reader's edge list; callers wrap it copy-on-write.
func (r *Reader) LoadSlice(rank, groupSize int, seed int64) []core.Edge {
	_ = seed
	from, to := sliceBounds(len(r.edges), rank, groupSize)

	return r.edges[from:to]
}
