// Package codebook enumerates the pairwise non-isomorphic graphs the
// codec transmits as symbols.
//
// For each order k ∈ {4, 5, 6} the full set of non-isomorphic simple
// graphs is hard-coded (sizes 11, 34, 156) rather than computed at
// runtime — generating and classifying them by brute-force permutation
// search is itself the job vf2 exists to avoid paying twice. Build picks
// the smallest k whose table has at least m representatives and returns
// the first m of them, in the table's fixed order, so codebook indices
// stay stable across runs.
package codebook
