// Package codec wires strategy, codebook, confusion, anneal, and vf2
// into the uniform codec contract: encode a symbol by vertex blowup,
// decode a noisy graph by running several annealing trials and
// aggregating their VF2 identifications through the confusion matrix.
package codec
