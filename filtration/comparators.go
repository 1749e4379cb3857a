package filtration

import (
	"math"

	"github.com/A-Alaa/aleph/core"
)

// ByDimension orders simplices by dimension, then lexicographically by
// vertex set. Since every proper face has strictly smaller dimension,
// this order always respects the face poset.
func ByDimension() core.Less {
	return func(s, t core.Simplex) bool {
		if s.Dimension() != t.Dimension() {
			return s.Dimension() < t.Dimension()
		}

		return s.Less(t)
	}
}

// ByData orders simplices by ascending data value. Ties are broken by
// dimension - lower-dimensional simplices first - and then
// lexicographically.
//
// The dimension tie-break is load-bearing: a face always has data less
// than or equal to that of its cofaces in a valid weight assignment, so
// sorting faces first within each data value guarantees that faces
// precede cofaces throughout.
func ByData() core.Less {
	return func(s, t core.Simplex) bool {
		if s.Data() != t.Data() {
			return s.Data() < t.Data()
		}
		if s.Dimension() != t.Dimension() {
			return s.Dimension() < t.Dimension()
		}

		return s.Less(t)
	}
}

// ByDataDescending mirrors ByData with descending data values, e.g. for
// superlevel-set computations on pre-weighted complexes. Ties are still
// broken dimension-then-lexicographically so that faces come first.
func ByDataDescending() core.Less {
	return func(s, t core.Simplex) bool {
		if s.Data() != t.Data() {
			return s.Data() > t.Data()
		}
		if s.Dimension() != t.Dimension() {
			return s.Dimension() < t.Dimension()
		}

		return s.Less(t)
	}
}

// LowerStar returns the lower-star comparator for the given vertex
// function: a simplex is ranked by the maximum value over its vertices.
// Vertices missing from values are treated as -Inf, which keeps them at
// the very beginning of the filtration.
func LowerStar(values map[core.Vertex]float64) core.Less {
	rank := func(s core.Simplex) float64 {
		max := math.Inf(-1)
		for i := 0; i < s.Len(); i++ {
			if v, ok := values[s.Vertex(i)]; ok && v > max {
				max = v
			}
		}

		return max
	}

	return func(s, t core.Simplex) bool {
		sv, tv := rank(s), rank(t)
		if sv != tv {
			return sv < tv
		}
		if s.Dimension() != t.Dimension() {
			return s.Dimension() < t.Dimension()
		}

		return s.Less(t)
	}
}

// UpperStar returns the upper-star comparator for the given vertex
// function: a simplex is ranked by the minimum value over its vertices,
// and larger ranks come first. Vertices missing from values are treated
// as +Inf.
func UpperStar(values map[core.Vertex]float64) core.Less {
	rank := func(s core.Simplex) float64 {
		min := math.Inf(1)
		for i := 0; i < s.Len(); i++ {
			if v, ok := values[s.Vertex(i)]; ok && v < min {
				min = v
			}
		}

		return min
	}

	return func(s, t core.Simplex) bool {
		sv, tv := rank(s), rank(t)
		if sv != tv {
			return sv > tv
		}
		if s.Dimension() != t.Dimension() {
			return s.Dimension() < t.Dimension()
		}

		return s.Less(t)
	}
}
