// Package xmath holds the small numeric utilities shared across the
// codec: generic min/max setters (grounded on lvlath/tsp's SetMinMax
// idiom, itself a close cousin of the original Rust's ChangeMinMax
// trait) and the hex-nibble decoder used to unpack the frozen strategy
// table.
package xmath
