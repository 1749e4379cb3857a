// Package aleph is your in-memory playground for building, filtering,
// and analyzing simplicial complexes — from core primitives to full
// persistent-homology pipelines.
//
// 🚀 What is aleph?
//
//	A modern library for persistent homology over GF(2) that brings together:
//		• Core primitives: simplices with canonical vertex order, weighted complexes
//		• Filtrations: dimension, sublevel, superlevel, lower-star & upper-star orders
//		• Boundary matrices: vector & set column representations, text I/O, dualization
//		• Reduction: standard & twist column reduction, persistence pairings
//		• Diagrams: per-dimension persistence diagrams, Betti numbers, norms
//		• Distances: bottleneck-style Hausdorff & Wasserstein matching
//		• Builders: Vietoris-Rips expansion, cones & suspensions
//		• Stratified spaces: persistent intersection homology under a perversity
//
// ✨ Why choose aleph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, exhaustively tested invariants
//   - Pure Go – no cgo, a small and well-known dependency set
//   - Extensible – swap matrix representations and reduction algorithms freely
//
// Under the hood, everything is organized into focused subpackages:
//
//	core/       — fundamental Simplex, Vertex & Complex types
//	filtration/ — orderings that turn a complex into a filtration
//	boundary/   — sparse GF(2) boundary matrices & representations
//	reduction/  — matrix reduction & persistence pairings
//	diagram/    — persistence diagrams & their bookkeeping
//	norms/      — total persistence, p-norms & stable summation
//	distance/   — metrics & distances between diagrams
//	homology/   — the end-to-end pipelines, Betti numbers & intersection homology
//	builder/    — Vietoris-Rips expansion, cones & suspensions
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a square of four vertices and four edges has one connected component
//	and one loop, so its Betti numbers are (1, 1).
//
// Dive into the per-package documentation for full examples, starting
// with package homology for the flagship pipelines.
//
//	go get github.com/A-Alaa/aleph
package aleph
