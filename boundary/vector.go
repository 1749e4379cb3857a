package boundary

import "slices"

// VectorColumns stores every column as an ascending-sorted slice of row
// indices. It is the default representation.
type VectorColumns struct {
	columns [][]int
	dims    []int
}

var _ Representation = (*VectorColumns)(nil)

// NewVectorColumns creates a zero matrix with n columns.
func NewVectorColumns(n int) *VectorColumns {
	return &VectorColumns{
		columns: make([][]int, n),
		dims:    make([]int, n),
	}
}

// NumColumns reports the number of columns of the matrix.
func (v *VectorColumns) NumColumns() int { return len(v.columns) }

// Dimension reports the dimension associated with column j.
func (v *VectorColumns) Dimension(j int) int { return v.dims[j] }

// SetDimension overrides the dimension associated with column j.
func (v *VectorColumns) SetDimension(j, d int) { v.dims[j] = d }

// Column returns a copy of the non-zero rows of column j in ascending order.
func (v *VectorColumns) Column(j int) []int {
	return slices.Clone(v.columns[j])
}

// SetColumn replaces column j and infers its dimension from the entry count.
func (v *VectorColumns) SetColumn(j int, rows []int) {
	v.columns[j] = slices.Clone(rows)
	if len(rows) > 0 {
		v.dims[j] = len(rows) - 1
	} else {
		v.dims[j] = 0
	}
}

// AddTo adds column source onto column target over GF(2).
func (v *VectorColumns) AddTo(source, target int) {
	a, b := v.columns[target], v.columns[source]
	merged := make([]int, 0, len(a)+len(b))
	i, k := 0, 0
	for i < len(a) && k < len(b) {
		switch {
		case a[i] < b[k]:
			merged = append(merged, a[i])
			i++
		case a[i] > b[k]:
			merged = append(merged, b[k])
			k++
		default:
			i++
			k++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[k:]...)
	v.columns[target] = merged
}

// Low returns the largest non-zero row of column j, or false when the
// column is zero.
func (v *VectorColumns) Low(j int) (int, bool) {
	c := v.columns[j]
	if len(c) == 0 {
		return 0, false
	}
	return c[len(c)-1], true
}

// ClearColumn zeroes column j while keeping its dimension.
func (v *VectorColumns) ClearColumn(j int) { v.columns[j] = nil }

// Clone returns an independent deep copy of the representation.
func (v *VectorColumns) Clone() Representation {
	out := &VectorColumns{
		columns: make([][]int, len(v.columns)),
		dims:    slices.Clone(v.dims),
	}
	for j, c := range v.columns {
		out.columns[j] = slices.Clone(c)
	}
	return out
}
