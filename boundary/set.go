package boundary

import (
	"slices"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// SetColumns stores every column as an ordered set of row indices backed by
// a red-black tree. Column addition toggles membership per row, which keeps
// individual additions cheap when columns fill in during reduction.
type SetColumns struct {
	columns []*redblacktree.Tree
	dims    []int
}

var _ Representation = (*SetColumns)(nil)

// NewSetColumns creates a zero matrix with n columns.
func NewSetColumns(n int) *SetColumns {
	s := &SetColumns{
		columns: make([]*redblacktree.Tree, n),
		dims:    make([]int, n),
	}
	for j := range s.columns {
		s.columns[j] = redblacktree.NewWithIntComparator()
	}
	return s
}

// NumColumns reports the number of columns of the matrix.
func (s *SetColumns) NumColumns() int { return len(s.columns) }

// Dimension reports the dimension associated with column j.
func (s *SetColumns) Dimension(j int) int { return s.dims[j] }

// SetDimension overrides the dimension associated with column j.
func (s *SetColumns) SetDimension(j, d int) { s.dims[j] = d }

// Column returns the non-zero rows of column j in ascending order.
func (s *SetColumns) Column(j int) []int {
	t := s.columns[j]
	rows := make([]int, 0, t.Size())
	it := t.Iterator()
	for it.Next() {
		rows = append(rows, it.Key().(int))
	}
	return rows
}

// SetColumn replaces column j and infers its dimension from the entry count.
func (s *SetColumns) SetColumn(j int, rows []int) {
	t := redblacktree.NewWithIntComparator()
	for _, r := range rows {
		t.Put(r, struct{}{})
	}
	s.columns[j] = t
	if len(rows) > 0 {
		s.dims[j] = len(rows) - 1
	} else {
		s.dims[j] = 0
	}
}

// AddTo adds column source onto column target over GF(2). Every row of the
// source column toggles its membership in the target column.
func (s *SetColumns) AddTo(source, target int) {
	src, dst := s.columns[source], s.columns[target]
	it := src.Iterator()
	for it.Next() {
		r := it.Key()
		if _, found := dst.Get(r); found {
			dst.Remove(r)
		} else {
			dst.Put(r, struct{}{})
		}
	}
}

// Low returns the largest non-zero row of column j, or false when the
// column is zero.
func (s *SetColumns) Low(j int) (int, bool) {
	t := s.columns[j]
	if t.Empty() {
		return 0, false
	}
	return t.Right().Key.(int), true
}

// ClearColumn zeroes column j while keeping its dimension.
func (s *SetColumns) ClearColumn(j int) {
	s.columns[j] = redblacktree.NewWithIntComparator()
}

// Clone returns an independent deep copy of the representation.
func (s *SetColumns) Clone() Representation {
	out := &SetColumns{
		columns: make([]*redblacktree.Tree, len(s.columns)),
		dims:    slices.Clone(s.dims),
	}
	for j, t := range s.columns {
		c := redblacktree.NewWithIntComparator()
		it := t.Iterator()
		for it.Next() {
			c.Put(it.Key(), struct{}{})
		}
		out.columns[j] = c
	}
	return out
}
