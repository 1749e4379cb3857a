package boundary

// Representation abstracts the column storage of a boundary matrix over
// GF(2). Row and column indices are zero-based; a column is the set of rows
// in which it is non-zero.
//
// SetColumn infers the dimension of the column from the number of entries:
// a simplex of dimension d has d+1 faces, so a non-empty column of k rows
// describes a simplex of dimension k-1, while an empty column describes a
// vertex. Dualization overrides this inference through SetDimension.
type Representation interface {
	// NumColumns reports the number of columns of the matrix.
	NumColumns() int

	// Dimension reports the dimension associated with column j.
	Dimension(j int) int

	// SetDimension overrides the dimension associated with column j.
	SetDimension(j, d int)

	// Column returns the non-zero rows of column j in ascending order.
	// The returned slice is a copy and may be retained by the caller.
	Column(j int) []int

	// SetColumn replaces column j with the given rows and infers its
	// dimension from the entry count. Rows must be in ascending order.
	SetColumn(j int, rows []int)

	// AddTo adds column source onto column target over GF(2), toggling
	// every row of source in target. Dimensions are unaffected.
	AddTo(source, target int)

	// Low returns the largest non-zero row of column j, or false when the
	// column is zero.
	Low(j int) (int, bool)

	// ClearColumn zeroes column j while keeping its dimension.
	ClearColumn(j int)

	// Clone returns an independent deep copy of the representation.
	Clone() Representation
}
