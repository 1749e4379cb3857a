package boundary

import "errors"

var (
	// ErrStructural is returned by Build when the complex violates the
	// face-precedes-coface ordering, i.e. a simplex appears before one of
	// its codimension-one faces, or a face is missing entirely.
	ErrStructural = errors.New("boundary: complex is not filtration-ordered")

	// ErrColumnOutOfRange is returned when a column index does not address
	// a column of the matrix.
	ErrColumnOutOfRange = errors.New("boundary: column index out of range")

	// ErrBadFormat is returned when textual matrix data cannot be parsed.
	ErrBadFormat = errors.New("boundary: malformed matrix data")
)
