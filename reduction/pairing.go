package reduction

import (
	"math"
	"slices"

	"github.com/A-Alaa/aleph/boundary"
)

// Unpaired marks the destroyer of an essential class, a feature that no
// column of the matrix destroys.
const Unpaired = math.MaxInt

// Pair records that the simplex at index Creator gives birth to a feature
// destroyed by the simplex at index Destroyer. Indices refer to positions
// in the original filtration even when the pairing was computed from a
// dualized matrix.
type Pair struct {
	Creator   int
	Destroyer int
}

// Essential reports whether the pair describes a class that never dies.
func (p Pair) Essential() bool { return p.Destroyer == Unpaired }

// Pairing is a persistence pairing sorted by creator, then destroyer.
type Pairing []Pair

// Contains reports whether some pair has the given creator index.
func (p Pairing) Contains(creator int) bool {
	_, found := slices.BinarySearchFunc(p, creator, func(pair Pair, c int) int {
		switch {
		case pair.Creator < c:
			return -1
		case pair.Creator > c:
			return 1
		default:
			return 0
		}
	})
	return found
}

type pairingOptions struct {
	algorithm           Algorithm
	allUnpairedCreators bool
	maxIndex            int
}

// PairingOption configures CalculatePairing.
type PairingOption func(*pairingOptions)

// WithAlgorithm selects the reduction strategy. The default is Twist.
func WithAlgorithm(a Algorithm) PairingOption {
	return func(o *pairingOptions) { o.algorithm = a }
}

// WithAllUnpairedCreators keeps every unpaired creator in the pairing
// regardless of its dimension. Without it, unpaired creators of the top
// dimension (or of dimension zero in a dualized matrix) are dropped, since
// no column of the matrix could ever destroy them. Betti number
// calculations over the full complex want them kept.
func WithAllUnpairedCreators() PairingOption {
	return func(o *pairingOptions) { o.allUnpairedCreators = true }
}

// WithMaxIndex drops every pair whose creator index is not below max.
// Persistent intersection homology uses this to restrict the pairing to
// the proper prefix of a partitioned complex.
func WithMaxIndex(max int) PairingOption {
	return func(o *pairingOptions) { o.maxIndex = max }
}

// CalculatePairing reduces a copy of the matrix and reads off the
// persistence pairing. The input matrix is left untouched.
func CalculatePairing(m *boundary.Matrix, opts ...PairingOption) Pairing {
	o := pairingOptions{algorithm: Twist{}}
	for _, opt := range opts {
		opt(&o)
	}

	b := m.Clone()
	o.algorithm.Reduce(b)

	n := b.NumColumns()
	topDim := b.MaxDimension()

	var pairing Pairing
	creators := make(map[int]struct{})

	for j := 0; j < n; j++ {
		if i, valid := b.Low(j); valid {
			// Column j destroys the feature created by its pivot row, so
			// row i is no longer a creator candidate.
			delete(creators, i)

			u, v := i, j
			if b.Dualized() {
				u = n - 1 - j
				v = n - 1 - i
			}

			if o.maxIndex <= 0 || u < o.maxIndex {
				pairing = append(pairing, Pair{Creator: u, Destroyer: v})
			}
			continue
		}

		// A zero column is a potential creator. Creators of the top
		// dimension (dimension zero when dualized) are skipped unless the
		// caller asked for all of them: nothing in the matrix could ever
		// destroy such a feature.
		if (!b.Dualized() && b.Dimension(j) != topDim) ||
			(b.Dualized() && b.Dimension(j) != 0) ||
			o.allUnpairedCreators {
			creators[j] = struct{}{}
		}
	}

	for creator := range creators {
		c := creator
		if b.Dualized() {
			c = n - 1 - creator
		}
		if o.maxIndex <= 0 || c < o.maxIndex {
			pairing = append(pairing, Pair{Creator: c, Destroyer: Unpaired})
		}
	}

	slices.SortFunc(pairing, func(a, b Pair) int {
		if a.Creator != b.Creator {
			if a.Creator < b.Creator {
				return -1
			}
			return 1
		}
		switch {
		case a.Destroyer < b.Destroyer:
			return -1
		case a.Destroyer > b.Destroyer:
			return 1
		default:
			return 0
		}
	})
	return pairing
}
