// Package distance provides distances between persistence diagrams: the
// pointwise infinity metric, the Hausdorff distance, and the Wasserstein
// distance.
//
// The Wasserstein distance solves a minimum-cost assignment between the
// points of both diagrams. Every point may also be matched against its
// orthogonal projection onto the diagonal, so the cost matrix is square of
// order len(D1)+len(D2). The assignment itself is found with the Munkres
// (Hungarian) algorithm.
package distance
