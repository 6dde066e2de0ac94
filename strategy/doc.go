// Package strategy exposes the frozen (M, epsilon) -> (k, r, alpha)
// lookup table that picks the codeword order, the blowup redundancy,
// and the annealing score coefficient for a given symbol count and
// noise level.
//
// The table was produced offline by exhaustive simulation over the
// reference encoder's parameter space; this package only decodes it
// and clamps out-of-range M and epsilon to the table's edges, it does
// not recompute it.
package strategy
