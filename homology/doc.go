// Package homology is the orchestration layer: it turns filtered
// simplicial complexes into persistence diagrams.
//
// CalculateDiagrams runs the full pipeline of boundary matrix assembly,
// matrix reduction, and diagram readout. By default the matrix is
// dualized first, which computes persistent cohomology; the resulting
// pairing is identical and the reduction is usually much faster.
// BettiNumbers is a convenience wrapper that counts essential classes per
// dimension.
//
// For zero-dimensional persistence, ZeroDimensionalDiagram tracks
// connected components with a union-find structure over the one-skeleton
// instead of reducing a matrix. The result matches the degree-zero diagram
// of the full pipeline while only ever touching vertices and edges.
//
// CalculateIntersectionHomology implements the persistent intersection
// homology of Bendich and Harer: simplices are split into proper and
// improper ones with respect to a stratification and a perversity, the
// complex is partitioned so the proper prefix comes first, and the pairing
// is restricted to that prefix.
package homology
