package boundary

import (
	"slices"

	"github.com/A-Alaa/aleph/core"
)

// Matrix is a sparse boundary matrix over GF(2). It wraps a Representation
// and remembers whether it has been dualized, which the pairing readout
// needs in order to mirror indices correctly.
type Matrix struct {
	rep      Representation
	dualized bool
}

// New wraps an existing representation in a matrix.
func New(rep Representation) *Matrix {
	return &Matrix{rep: rep}
}

type buildOptions struct {
	newRep   func(n int) Representation
	maxIndex int
}

// Option configures Build and Load.
type Option func(*buildOptions)

// WithSetColumns selects the ordered-set representation instead of the
// default sorted-slice one.
func WithSetColumns() Option {
	return func(o *buildOptions) {
		o.newRep = func(n int) Representation { return NewSetColumns(n) }
	}
}

// WithRepresentation selects an arbitrary representation constructor.
func WithRepresentation(newRep func(n int) Representation) Option {
	return func(o *buildOptions) { o.newRep = newRep }
}

// WithMaxIndex stops filling in columns at the given index. The matrix
// keeps one column per simplex, but columns at or beyond max stay zero.
// This is the form required for persistent intersection homology, where
// only the proper prefix of a partitioned complex carries boundaries.
func WithMaxIndex(max int) Option {
	return func(o *buildOptions) { o.maxIndex = max }
}

func defaultBuildOptions() buildOptions {
	return buildOptions{
		newRep: func(n int) Representation { return NewVectorColumns(n) },
	}
}

// Build assembles the boundary matrix of a filtration-ordered complex.
// Column j lists the indices of the codimension-one faces of the j-th
// simplex. Every face must be present in the complex and must precede its
// coface; violations are reported as ErrStructural.
func Build(k *core.Complex, opts ...Option) (*Matrix, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := k.Len()
	rep := o.newRep(n)

	for j := 0; j < n; j++ {
		s, _ := k.At(j)

		if o.maxIndex > 0 && j >= o.maxIndex {
			rep.SetDimension(j, s.Dimension())
			continue
		}

		faces := s.Boundary()
		column := make([]int, 0, len(faces))
		for _, face := range faces {
			i, err := k.Index(face)
			if err != nil {
				return nil, ErrStructural
			}
			// A partitioned complex may list improper faces after their
			// cofaces, so the triangularity check only applies to the
			// unrestricted build.
			if o.maxIndex <= 0 && i >= j {
				return nil, ErrStructural
			}
			column = append(column, i)
		}
		slices.Sort(column)

		rep.SetColumn(j, column)
		rep.SetDimension(j, s.Dimension())
	}

	return &Matrix{rep: rep}, nil
}

// NumColumns reports the number of columns of the matrix.
func (m *Matrix) NumColumns() int { return m.rep.NumColumns() }

// Dimension reports the dimension associated with column j.
func (m *Matrix) Dimension(j int) int { return m.rep.Dimension(j) }

// Column returns the non-zero rows of column j in ascending order.
func (m *Matrix) Column(j int) []int { return m.rep.Column(j) }

// SetColumn replaces column j of the matrix.
func (m *Matrix) SetColumn(j int, rows []int) { m.rep.SetColumn(j, rows) }

// AddTo adds column source onto column target over GF(2).
func (m *Matrix) AddTo(source, target int) { m.rep.AddTo(source, target) }

// Low returns the largest non-zero row of column j, or false when the
// column is zero.
func (m *Matrix) Low(j int) (int, bool) { return m.rep.Low(j) }

// ClearColumn zeroes column j while keeping its dimension.
func (m *Matrix) ClearColumn(j int) { m.rep.ClearColumn(j) }

// Dualized reports whether the matrix has been dualized an odd number of
// times.
func (m *Matrix) Dualized() bool { return m.dualized }

// MaxDimension reports the largest column dimension, or 0 for an empty
// matrix.
func (m *Matrix) MaxDimension() int {
	max := 0
	for j := 0; j < m.rep.NumColumns(); j++ {
		if d := m.rep.Dimension(j); d > max {
			max = d
		}
	}
	return max
}

// Clone returns an independent deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rep: m.rep.Clone(), dualized: m.dualized}
}

// Dualize anti-transposes the matrix in place: entry (i, j) moves to
// (n-1-j, n-1-i). Reducing the dualized matrix computes persistent
// cohomology, which usually reduces faster while yielding the same
// pairing after index mirroring. Dualize is an involution.
func (m *Matrix) Dualize() {
	n := m.rep.NumColumns()

	columns := make([][]int, n)
	dims := make([]int, n)
	maxDim := 0
	for j := 0; j < n; j++ {
		dims[j] = m.rep.Dimension(j)
		if dims[j] > maxDim {
			maxDim = dims[j]
		}
		for _, r := range m.rep.Column(j) {
			columns[n-1-r] = append(columns[n-1-r], n-1-j)
		}
	}

	for j := 0; j < n; j++ {
		slices.Sort(columns[j])
		m.rep.SetColumn(j, columns[j])
		m.rep.SetDimension(j, maxDim-dims[n-1-j])
	}

	m.dualized = !m.dualized
}

// Equal reports whether two matrices have identical columns, dimensions,
// and dualization state. The comparison is representation-agnostic.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.dualized != other.dualized {
		return false
	}
	n := m.rep.NumColumns()
	if n != other.rep.NumColumns() {
		return false
	}
	for j := 0; j < n; j++ {
		if m.rep.Dimension(j) != other.rep.Dimension(j) {
			return false
		}
		if !slices.Equal(m.rep.Column(j), other.rep.Column(j)) {
			return false
		}
	}
	return true
}
