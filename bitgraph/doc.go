// Package bitgraph defines the dense graph representations shared by the
// rest of the codec.
//
// Graph is a simple undirected graph over a symmetric boolean adjacency
// matrix, stored flat in row-major order (mirroring lvlath/matrix.Dense's
// flat-slice layout). BinaryGraph is the same graph with two auxiliary
// views added for the decoder's hot path: a 128-bit bitmask per row
// (bit j set iff edge (i,j) exists) for O(1)-word popcount-based
// neighbor intersection, and a ±1 signed matrix for full-rescan scoring.
//
// A Graph is built with NewGraph and then Connect; a BinaryGraph is a
// snapshot derived from it and does not change when the Graph later does.
package bitgraph
