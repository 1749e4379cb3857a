package homology

import "errors"

// ErrStrataMismatch is returned when a stratification has fewer strata
// than the dimension of the complex requires.
var ErrStrataMismatch = errors.New("homology: stratification does not cover the complex dimension")
