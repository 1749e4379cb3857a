// Package core provides the two central types of the library: Simplex,
// an immutable set of vertices carrying a filtration value, and Complex,
// an ordered arena of unique simplices.
//
// A Simplex with k+1 vertices models a k-dimensional cell. Its vertex
// set is stored in canonical (ascending) order, so two simplices with
// the same vertices compare equal regardless of construction order. The
// attached data value (the filtration weight) is deliberately excluded
// from equality: a simplicial complex cannot contain two simplices with
// identical vertex sets, no matter how they are weighted.
//
// A Complex keeps its simplices in an explicit total order - the
// filtration order - backed by a plain slice plus an auxiliary index
// map for O(1) position lookup. Re-sorting the complex (see Sort and
// SortWith) reassigns all indices; any previously obtained index is
// invalidated by structural changes.
//
// Why an arena with integer indices?
//
//   - Boundary faces are never stored as references. They are computed
//     on demand from vertex-set arithmetic (Simplex.Boundary) and mapped
//     to positions via Complex.Index. This avoids shared-ownership
//     cycles entirely.
//   - Downstream consumers (boundary matrices, reduction algorithms)
//     speak in column indices, so a stable position lookup is the only
//     capability they need from the complex.
//
// Duplicate policy: inserting a simplex whose vertex set is already
// present does not create a second entity. The stored simplex keeps its
// position and its data value is overwritten (last write wins). Callers
// that want "first write wins" must check Contains beforehand.
//
// Closure is not enforced: a Complex may deliberately lack faces of its
// simplices (quotient constructions rely on this). Routines that assume
// closure - boundary matrix construction above all - report a violation
// through their own error values.
//
// Errors:
//
//	ErrIndexOutOfRange - position lookup past the end of the complex.
//	ErrSimplexNotFound - identity lookup for a simplex that is absent.
package core
