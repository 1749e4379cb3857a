package homology

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/A-Alaa/aleph/boundary"
	"github.com/A-Alaa/aleph/core"
	"github.com/A-Alaa/aleph/diagram"
	"github.com/A-Alaa/aleph/reduction"
)

// Perversity assigns an offset to every codimension. Values index
// codimensions starting at one; codimensions beyond the stored values
// default to zero.
type Perversity struct {
	values []int
}

// NewPerversity creates a perversity from per-codimension values, starting
// at codimension one.
func NewPerversity(values ...int) Perversity {
	return Perversity{values: values}
}

// GoreskyMacPherson returns the perversity p(k) = k-2 for codimensions two
// up to d. Codimension one is assigned zero.
func GoreskyMacPherson(d int) Perversity {
	values := make([]int, d)
	for k := 2; k <= d; k++ {
		values[k-1] = k - 2
	}
	return Perversity{values: values}
}

// String renders the stored per-codimension values.
func (p Perversity) String() string {
	return fmt.Sprintf("%v", p.values)
}

// Value returns the perversity of codimension k.
func (p Perversity) Value(k int) int {
	if k < 1 || k > len(p.values) {
		return 0
	}
	return p.values[k-1]
}

// Partition reorders a complex so that every simplex satisfying phi
// precedes every simplex that does not, preserving relative order within
// both groups. It returns the reordered complex and the number of
// simplices satisfying phi.
func Partition(k *core.Complex, phi func(core.Simplex) bool) (*core.Complex, int) {
	l := core.NewComplex()

	s := 0
	for _, simplex := range k.Simplices() {
		if phi(simplex) {
			l.Push(simplex)
			s++
		}
	}
	for _, simplex := range k.Simplices() {
		if !phi(simplex) {
			l.Push(simplex)
		}
	}

	return l, s
}

// admissible checks the Bendich--Harer allowability condition of a simplex
// with respect to a stratification X_0 ⊆ X_1 ⊆ ... and a perversity: for
// every codimension k up to the dimension d of the space, the intersection
// with X_{d-k} must satisfy dim(σ ∩ X_{d-k}) ≤ dim(σ) - k + p(k) + 1. An
// empty intersection always passes.
func admissible(s core.Simplex, strata []*core.Complex, d int, p Perversity) bool {
	i := s.Dimension()

	for k := 1; k <= d; k++ {
		intersection, ok := core.DeepestIntersection(strata[d-k], s)
		if !ok {
			continue
		}
		if intersection.Dimension() > i-k+p.Value(k)+1 {
			return false
		}
	}
	return true
}

// CalculateIntersectionHomology computes the persistent intersection
// homology of a complex in filtration order with respect to a
// stratification X_0 ⊆ X_1 ⊆ ... and a perversity. The stratification
// must provide at least d strata for a d-dimensional complex; the top
// stratum is the space itself and is never consulted. A simplex is proper
// when it and all of its faces are admissible; the complex is partitioned
// into proper simplices followed by improper ones, and the persistence
// pairing is restricted to the proper prefix.
func CalculateIntersectionHomology(k *core.Complex, strata []*core.Complex, p Perversity, opts ...Option) ([]*diagram.Diagram, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := k.Dimension()
	if len(strata) < d {
		return nil, ErrStrataMismatch
	}

	proper := func(s core.Simplex) bool {
		if !admissible(s, strata, d, p) {
			return false
		}
		for _, face := range s.Boundary() {
			if !admissible(face, strata, d, p) {
				return false
			}
		}
		return true
	}

	l, s := Partition(k, proper)

	buildOpts := []boundary.Option{boundary.WithMaxIndex(s)}
	if o.newRep != nil {
		buildOpts = append(buildOpts, boundary.WithRepresentation(o.newRep))
	}

	m, err := boundary.Build(l, buildOpts...)
	if err != nil {
		return nil, err
	}

	pairing := reduction.CalculatePairing(m,
		reduction.WithAlgorithm(o.algorithm),
		reduction.WithAllUnpairedCreators(),
		reduction.WithMaxIndex(s),
	)

	o.log.Debug("calculated intersection homology pairing",
		zap.Int("columns", m.NumColumns()),
		zap.Int("proper", s),
		zap.Int("pairs", len(pairing)),
	)

	return diagram.FromPairing(pairing, l), nil
}
