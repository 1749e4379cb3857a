// Package builder constructs simplicial complexes: cones and suspensions
// over existing complexes, and Vietoris-Rips complexes from distance
// matrices.
//
// The Vietoris-Rips construction is split in two. VietorisRipsSkeleton
// turns a symmetric distance matrix into the one-skeleton at a given
// scale. Expander then grows the skeleton up to a target dimension by
// inductively adding cofaces over common lower neighbours, and offers
// weight assignment strategies for the new simplices.
//
// All builders return complexes in no particular filtration order; sort
// them with a comparator from the filtration package before deriving
// boundary matrices.
package builder
