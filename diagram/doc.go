// Package diagram provides persistence diagrams, the multisets of
// birth/death pairs that summarize a persistence computation.
//
// A diagram collects the points of a single homology dimension. Points
// whose class never dies carry an infinite death value; Betti counts
// exactly those points, giving the Betti number of the underlying space
// when the diagram was computed over a full complex.
//
// FromPairing turns a persistence pairing back into diagrams by looking up
// simplex weights in the complex the pairing came from, one diagram per
// creator dimension, ordered by dimension.
package diagram
