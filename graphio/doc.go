// Package graphio reads weighted undirected graphs from their text
// representation and synthesizes CLICK-model inputs.
//
// File format:
//
//	# optional comment (single line, ignored)
//	<vertices> <edges>
//	<u> <v> <w>
//	...
//
// Vertices are 0-based integers in [0, vertices), weights are positive
// integers, and each undirected pair is listed once. Self-loops are permitted
// in the input and ignored by the reader.
//
// Both input kinds expose the same slice-extraction contract: given
// (rank, groupSize), LoadSlice returns the contiguous portion of the edge
// enumeration assigned to that rank, so a worker group can partition an input
// edge-wise without any worker materializing the whole graph. For file input
// the enumeration is file order; for CLICK it is the lexicographic pair
// enumeration of the complete graph.
package graphio
