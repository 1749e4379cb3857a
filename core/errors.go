package core

import "errors"

// Sentinel errors for complex lookups. Tests and callers match these
// via errors.Is; no function in this package panics on bad input.
var (
	// ErrIndexOutOfRange indicates that a positional lookup (At) used an
	// index outside [0, Len).
	ErrIndexOutOfRange = errors.New("core: simplex index out of range")

	// ErrSimplexNotFound indicates that an identity lookup (Index, Remove)
	// referenced a simplex that is not part of the complex.
	ErrSimplexNotFound = errors.New("core: simplex not found in complex")
)
