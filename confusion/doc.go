// Package confusion builds the confusion matrix used to turn one noisy
// VF2 restoration into a weighted vote over every codebook symbol.
//
// For a fixed noise rate, two codebook graphs of similar shape are
// more likely to be confused for one another after channel noise than
// two very different ones. Build measures that empirically by repeatedly
// corrupting each codebook entry and re-identifying it; the codec's
// Decode uses the resulting matrix to spread a single restoration's
// vote across every symbol it plausibly degraded from, rather than
// trusting the top VF2 match alone.
package confusion
