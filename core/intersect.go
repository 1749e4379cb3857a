package core

// Intersect returns the simplex spanned by the common vertices of s and
// t, or the empty simplex if they share none. The data value of the
// result is left at zero; it is up to the caller to assign a weight.
func Intersect(s, t Simplex) Simplex {
	var common []Vertex

	// Both vertex sequences are canonical, so a linear merge suffices.
	i, j := 0, 0
	for i < s.Len() && j < t.Len() {
		switch {
		case s.Vertex(i) == t.Vertex(j):
			common = append(common, s.Vertex(i))
			i++
			j++
		case s.Vertex(i) < t.Vertex(j):
			i++
		default:
			j++
		}
	}

	return Simplex{vertices: common}
}

// DeepestIntersection finds the highest-dimensional face of s (including
// s itself) that is contained in the complex K. It returns the stored
// simplex - with K's data value - and true, or the empty simplex and
// false if no face of s belongs to K.
//
// All vertex subsets of a given size are enumerated before descending
// to the next smaller size, so the result is the intersection of
// maximal dimension. The query-by-subset strategy is much cheaper than
// intersecting s against every simplex of a large complex.
func DeepestIntersection(k *Complex, s Simplex) (Simplex, bool) {
	vs := s.Vertices()

	for size := len(vs); size >= 1; size-- {
		var found Simplex
		ok := false

		forEachCombination(vs, size, func(subset []Vertex) bool {
			if stored, exists := k.Find(Simplex{vertices: subset}); exists {
				found = stored
				ok = true
				return true
			}

			return false
		})

		if ok {
			return found, true
		}
	}

	return Simplex{}, false
}

// forEachCombination enumerates all size-r subsequences of vs (which is
// already sorted) and calls fn for each. Enumeration stops early when
// fn returns true. The subset slice is reused between calls; fn must
// not retain it.
func forEachCombination(vs []Vertex, r int, fn func([]Vertex) bool) bool {
	subset := make([]Vertex, r)

	var recurse func(start, depth int) bool
	recurse = func(start, depth int) bool {
		if depth == r {
			return fn(subset)
		}

		for i := start; i <= len(vs)-(r-depth); i++ {
			subset[depth] = vs[i]
			if recurse(i+1, depth+1) {
				return true
			}
		}

		return false
	}

	return recurse(0, 0)
}
