// Package reduction implements matrix reduction for persistent homology
// and derives persistence pairings from the reduced matrix.
//
// Reduction repeatedly adds earlier columns onto later ones until every
// non-zero column has a unique lowest row, its pivot. Two strategies are
// provided behind the Algorithm interface:
//
//   - Standard is the textbook left-to-right reduction.
//   - Twist processes dimensions from high to low and clears the column of
//     every pivot row it finds, skipping work the standard algorithm would
//     redo. It is the default.
//
// Both produce the same pairing on the same input.
//
// # Pairings
//
// CalculatePairing reduces a copy of the matrix and reads off the pairing:
// a non-zero column j with pivot i destroys the feature created by column
// i, yielding the pair (i, j). Zero columns that no later column destroys
// become essential classes, recorded with Destroyer set to Unpaired. For a
// dualized matrix the indices are mirrored back so that pairs always refer
// to positions in the original filtration.
package reduction
