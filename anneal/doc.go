// Package anneal implements the incremental bitset-packed simulated
// annealing search the decoder uses to partition a noisy N-vertex
// graph back into k groups of r vertices.
//
// State holds a candidate partition plus two running totals: per-group
// signed edge sums (self_counts) and between-group signed edge sums
// (cross_counts, flat triangular). Swapping one vertex between two
// groups updates both totals in O(k) via 128-bit popcount rather than
// rescanning all O(N^2) pairs, which is what makes thousands of
// annealing iterations per decode affordable.
package anneal
