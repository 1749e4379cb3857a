package core

import (
	"fmt"
	"sort"
)

// Less is a strict-weak-ordering predicate over simplices, used to
// establish a filtration order. The filtration package provides the
// standard comparators; any Less consistent with the face relation
// (faces precede cofaces) yields a valid filtration.
type Less func(s, t Simplex) bool

// Complex is an ordered collection of unique simplices. The slice order
// is the filtration order; an auxiliary map provides O(1) amortized
// identity-to-index lookup. See the package documentation for the
// duplicate and closure policies.
//
// Complex is not safe for concurrent mutation. Read-only use from
// multiple goroutines is fine once construction has finished.
type Complex struct {
	simplices []Simplex
	index     map[string]int
}

// NewComplex creates a complex from the given simplices, preserving
// their order. Duplicates by vertex set collapse onto the first
// occurrence, whose data value is overwritten (last write wins).
func NewComplex(simplices ...Simplex) *Complex {
	k := &Complex{index: make(map[string]int, len(simplices))}
	for _, s := range simplices {
		k.Push(s)
	}

	return k
}

// Push appends a simplex to the end of the current filtration order.
// If a simplex with the same vertex set already exists, its position is
// kept and its data value is replaced by s.Data().
func (k *Complex) Push(s Simplex) {
	if i, ok := k.index[s.key()]; ok {
		k.simplices[i] = k.simplices[i].WithData(s.Data())
		return
	}

	k.index[s.key()] = len(k.simplices)
	k.simplices = append(k.simplices, s)
}

// PushAll appends every simplex in order, applying the Push policy.
func (k *Complex) PushAll(simplices ...Simplex) {
	for _, s := range simplices {
		k.Push(s)
	}
}

// Len returns the number of simplices in the complex.
func (k *Complex) Len() int { return len(k.simplices) }

// Empty reports whether the complex has no simplices.
func (k *Complex) Empty() bool { return len(k.simplices) == 0 }

// Dimension returns the largest simplex dimension present, or 0 for an
// empty complex.
func (k *Complex) Dimension() int {
	d := 0
	for _, s := range k.simplices {
		if s.Dimension() > d {
			d = s.Dimension()
		}
	}

	return d
}

// At returns the simplex at position i of the current filtration order.
// Returns ErrIndexOutOfRange for invalid positions.
func (k *Complex) At(i int) (Simplex, error) {
	if i < 0 || i >= len(k.simplices) {
		return Simplex{}, fmt.Errorf("at %d of %d: %w", i, len(k.simplices), ErrIndexOutOfRange)
	}

	return k.simplices[i], nil
}

// Index returns the position of s in the current filtration order.
// Only the vertex set of s matters. Returns ErrSimplexNotFound if the
// complex does not contain the simplex.
func (k *Complex) Index(s Simplex) (int, error) {
	i, ok := k.index[s.key()]
	if !ok {
		return 0, fmt.Errorf("index of %v: %w", s, ErrSimplexNotFound)
	}

	return i, nil
}

// Contains reports whether the complex holds a simplex with the same
// vertex set as s. Data values are not compared.
func (k *Complex) Contains(s Simplex) bool {
	_, ok := k.index[s.key()]
	return ok
}

// Find returns the stored simplex matching the vertex set of s. The
// result carries the data value kept by the complex, which is the only
// authoritative weight for that simplex.
func (k *Complex) Find(s Simplex) (Simplex, bool) {
	i, ok := k.index[s.key()]
	if !ok {
		return Simplex{}, false
	}

	return k.simplices[i], true
}

// Simplices returns a copy of the backing sequence in filtration order.
func (k *Complex) Simplices() []Simplex {
	out := make([]Simplex, len(k.simplices))
	copy(out, k.simplices)

	return out
}

// Range returns the simplices of dimension d in filtration order.
// Runs in O(n) regardless of how the complex is sorted.
func (k *Complex) Range(d int) []Simplex {
	var out []Simplex
	for _, s := range k.simplices {
		if s.Dimension() == d {
			out = append(out, s)
		}
	}

	return out
}

// Vertices returns the distinct vertex identifiers of all 0-simplices,
// in ascending order.
func (k *Complex) Vertices() []Vertex {
	var out []Vertex
	for _, s := range k.simplices {
		if s.Dimension() == 0 {
			out = append(out, s.Vertex(0))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Sort reorders the complex by dimension, breaking ties
// lexicographically on vertex sets. This is the canonical
// face-before-coface order for unweighted complexes.
func (k *Complex) Sort() {
	k.SortWith(func(s, t Simplex) bool {
		if s.Dimension() != t.Dimension() {
			return s.Dimension() < t.Dimension()
		}

		return s.Less(t)
	})
}

// SortWith reorders the complex with the given comparator and rebuilds
// the index map. All previously obtained indices are invalidated.
//
// Supplying a comparator that is inconsistent with the face poset (a
// coface sorted before one of its faces) is not detected here; it will
// surface as ErrStructural during boundary matrix construction.
func (k *Complex) SortWith(less Less) {
	sort.SliceStable(k.simplices, func(i, j int) bool {
		return less(k.simplices[i], k.simplices[j])
	})

	k.reindex()
}

// Remove deletes the simplex with the vertex set of s, without checking
// that the complex stays closed under the face relation. This is the
// fast path for collapse-style algorithms that guarantee validity
// externally. All previously obtained indices are invalidated.
func (k *Complex) Remove(s Simplex) error {
	i, ok := k.index[s.key()]
	if !ok {
		return fmt.Errorf("remove %v: %w", s, ErrSimplexNotFound)
	}

	k.simplices = append(k.simplices[:i], k.simplices[i+1:]...)
	k.reindex()

	return nil
}

// Reweight replaces the data value of every simplex with f(s). The
// order of the complex is unchanged; callers typically re-sort with a
// data-driven comparator afterwards.
func (k *Complex) Reweight(f func(Simplex) float64) {
	for i, s := range k.simplices {
		k.simplices[i] = s.WithData(f(s))
	}
}

// Clone returns a deep copy of the complex.
func (k *Complex) Clone() *Complex {
	c := &Complex{
		simplices: make([]Simplex, len(k.simplices)),
		index:     make(map[string]int, len(k.index)),
	}

	copy(c.simplices, k.simplices)
	for key, i := range k.index {
		c.index[key] = i
	}

	return c
}

func (k *Complex) reindex() {
	k.index = make(map[string]int, len(k.simplices))
	for i, s := range k.simplices {
		k.index[s.key()] = i
	}
}
