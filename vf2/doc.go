// Package vf2 implements the Cordella–Foggia–Sansone–Vento backtracking
// algorithm for exact graph isomorphism, specialized for the small
// orders (≤ 6) this codec ever compares.
//
// Isomorphic pre-filters on vertex count and sorted degree sequence
// before falling back to the full backtracking search (grounded on
// checker.rs's DegreeChecker/Vf2Checker split from the original
// reference implementation), so the common "clearly not isomorphic"
// case never touches the recursive matcher.
package vf2
