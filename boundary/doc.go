// Package boundary provides sparse boundary matrices over GF(2) and the
// operations persistence computations need from them: column addition,
// pivot lookup, dualization, and plain-text serialization.
//
// A boundary matrix records, for every simplex of a filtered complex, the
// indices of its codimension-one faces. Column j lists the row indices of
// the faces of the j-th simplex; the coefficient field is GF(2), so a
// column is fully described by the set of rows where it is non-zero.
//
// # Representations
//
// The Representation interface abstracts the column storage so that the
// reduction algorithms never touch a concrete container. Two variants are
// provided:
//
//   - VectorColumns keeps each column as an ascending-sorted slice of row
//     indices. Column addition is a linear merge. This is the default and
//     the fastest choice for typical workloads.
//   - SetColumns keeps each column as an ordered set backed by a red-black
//     tree. Addition toggles membership per row, which can win when columns
//     grow dense during reduction.
//
// Both variants implement exactly the same semantics; Matrix.Equal compares
// matrices column by column and is therefore representation-agnostic.
//
// # Building and dualizing
//
// Build assembles the matrix of a sorted core.Complex. The complex must
// list every face before any of its cofaces; a missing face is reported as
// ErrStructural. Dualize anti-transposes the matrix in place, which turns
// the reduction of the result into persistent cohomology; applying it twice
// restores the original matrix.
package boundary
