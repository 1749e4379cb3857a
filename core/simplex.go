package core

import (
	"slices"
	"strconv"
	"strings"
)

// Vertex identifies a 0-dimensional point of a simplicial complex.
// Identifiers carry no geometric meaning; they only need to be unique.
type Vertex uint

// Simplex is a k-dimensional cell, stored as k+1 vertices in canonical
// (ascending) order plus a scalar data value used as filtration weight.
//
// Simplex is a value type and may be copied freely. The vertex set is
// immutable after construction; only the data value may change (see
// WithData and Complex.Reweight). Equality, ordering, and hashing-style
// keys are all defined on the vertex set alone.
//
// The zero value is the empty simplex: no vertices, dimension -1. It is
// used to signal "no intersection" by Intersect and friends.
type Simplex struct {
	vertices []Vertex
	data     float64
}

// NewSimplex creates a simplex from the given vertices with data 0.
// Vertices are sorted into canonical order; duplicates are dropped.
func NewSimplex(vertices ...Vertex) Simplex {
	return NewSimplexWithData(0, vertices...)
}

// NewSimplexWithData creates a simplex with an explicit data value.
func NewSimplexWithData(data float64, vertices ...Vertex) Simplex {
	vs := make([]Vertex, len(vertices))
	copy(vs, vertices)
	slices.Sort(vs)
	vs = slices.Compact(vs)

	return Simplex{vertices: vs, data: data}
}

// Empty reports whether the simplex has no vertices.
func (s Simplex) Empty() bool { return len(s.vertices) == 0 }

// Len returns the number of vertices, i.e. Dimension()+1.
func (s Simplex) Len() int { return len(s.vertices) }

// Dimension returns the dimension of the simplex: number of vertices
// minus one. The empty simplex has dimension -1.
func (s Simplex) Dimension() int { return len(s.vertices) - 1 }

// Data returns the filtration weight attached to the simplex.
func (s Simplex) Data() float64 { return s.data }

// WithData returns a copy of the simplex carrying the given data value.
// The vertex set (and hence identity) is unchanged.
func (s Simplex) WithData(data float64) Simplex {
	return Simplex{vertices: s.vertices, data: data}
}

// Vertex returns the i-th vertex in canonical order. The caller must
// ensure 0 <= i < Len.
func (s Simplex) Vertex(i int) Vertex { return s.vertices[i] }

// Vertices returns a copy of the canonical vertex sequence.
func (s Simplex) Vertices() []Vertex {
	vs := make([]Vertex, len(s.vertices))
	copy(vs, s.vertices)

	return vs
}

// Contains reports whether v is a vertex of the simplex. O(log k).
func (s Simplex) Contains(v Vertex) bool {
	_, ok := slices.BinarySearch(s.vertices, v)
	return ok
}

// Equal reports whether s and t have the same vertex set. Data values
// are ignored: two differently weighted simplices over the same
// vertices denote the same topological entity.
func (s Simplex) Equal(t Simplex) bool {
	return slices.Equal(s.vertices, t.vertices)
}

// Compare orders simplices lexicographically by their canonical vertex
// sequences and returns -1, 0, or +1. It induces a strict weak ordering
// suitable for map keys and sort tie-breaking.
func (s Simplex) Compare(t Simplex) int {
	return slices.Compare(s.vertices, t.vertices)
}

// Less reports s.Compare(t) < 0.
func (s Simplex) Less(t Simplex) bool { return s.Compare(t) < 0 }

// Boundary returns the codimension-1 faces of the simplex in
// index-complement order: face i omits the i-th canonical vertex. The
// faces carry data 0; weights of faces live in the owning complex, not
// in derived values. A 0-simplex (and the empty simplex) has no
// boundary.
func (s Simplex) Boundary() []Simplex {
	if len(s.vertices) < 2 {
		return nil
	}

	faces := make([]Simplex, 0, len(s.vertices))
	for i := range s.vertices {
		face := make([]Vertex, 0, len(s.vertices)-1)
		face = append(face, s.vertices[:i]...)
		face = append(face, s.vertices[i+1:]...)

		faces = append(faces, Simplex{vertices: face})
	}

	return faces
}

// String renders the vertex set and data value, e.g. "{0 1 2}:0.5".
func (s Simplex) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	for i, v := range s.vertices {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	sb.WriteByte('}')
	sb.WriteByte(':')
	sb.WriteString(strconv.FormatFloat(s.data, 'g', -1, 64))

	return sb.String()
}

// key builds the canonical identity key of the vertex set, used by the
// complex's index map. Distinct vertex sets map to distinct keys.
func (s Simplex) key() string {
	var sb strings.Builder

	for i, v := range s.vertices {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}

	return sb.String()
}
