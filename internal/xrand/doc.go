// Package xrand provides the codec's deterministic random sources.
//
// The original reference implementation drives every randomized step
// (initial partition shuffle, annealing acceptance, Monte-Carlo channel
// simulation) from rand_pcg::Pcg64Mcg — a 128-bit-state PCG generator
// seeded explicitly, never from wall-clock time. Go's math/rand/v2
// ships the same family (rand/v2.PCG, a 128-bit-state generator), so
// this package wraps it rather than vendoring a third-party port: no
// such port appears anywhere in the codebase this module was built
// from (see DESIGN.md).
//
// DeriveSeed mirrors lvlath/tsp's deriveSeed SplitMix64 mixing, used to
// spin up independent, reproducible per-trial RNG streams from one base
// seed without correlating them.
package xrand
