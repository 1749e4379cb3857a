// Package norms provides summary statistics of persistence diagrams: the
// total persistence of degree p, the induced p-norm, and the infinity
// norm.
//
// Essential points carry infinite persistence and would dominate every
// sum, so all norms skip them. Accumulation uses compensated Kahan
// summation over a sorted copy of the values, which keeps the result
// independent of the order of the points in the diagram.
package norms
