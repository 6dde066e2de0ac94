// Package graphcodec is a noisy-channel graph codec for a game-style
// interactive judge.
//
// 🚀 What is graphcodec?
//
//	A deterministic, single-threaded codec that turns a parameter pair
//	(M, ε) into:
//
//	  • A codebook of M pairwise non-isomorphic graphs of equal order N
//	  • A vertex-blowup encoder (clique-of-size-r per vertex)
//	  • A simulated-annealing + VF2 decoder that survives ε edge noise
//	    and an unknown vertex permutation
//
// ✨ Design goals
//
//   - Deterministic   — every RNG stream is seeded explicitly, never from time
//   - Self-contained  — no persisted state, no environment variables
//   - Pure Go         — no cgo, only the standard library plus testify in tests
//
// Under the hood, everything is organized under seven subpackages:
//
//	bitgraph/  — dense adjacency Graph and 128-bit-row BinaryGraph
//	codebook/  — frozen non-isomorphic graph tables for k∈{4,5,6}
//	vf2/       — exact small-graph isomorphism testing
//	strategy/  — the frozen (M, ε) → (k, r, α) policy table
//	confusion/ — Monte-Carlo channel confusion-matrix builder
//	anneal/    — incremental bitset-packed simulated annealing
//	codec/     — the public façade wiring all of the above together
//
// cmd/graphcodec wires codec.Contract to the judge's line-delimited
// stdio protocol.
//
//	go get github.com/katalvlaran/graphcodec
package graphcodec
