package homology

import (
	"go.uber.org/zap"

	"github.com/A-Alaa/aleph/boundary"
	"github.com/A-Alaa/aleph/core"
	"github.com/A-Alaa/aleph/diagram"
	"github.com/A-Alaa/aleph/reduction"
)

type options struct {
	dualize             bool
	allUnpairedCreators bool
	algorithm           reduction.Algorithm
	newRep              func(n int) boundary.Representation
	log                 *zap.Logger
}

// Option configures the persistence pipeline.
type Option func(*options)

// WithDualize controls whether the boundary matrix is dualized before
// reduction. The default is true: the pairing is the same and reduction of
// the dualized matrix is usually faster.
func WithDualize(dualize bool) Option {
	return func(o *options) { o.dualize = dualize }
}

// WithAllUnpairedCreators keeps unpaired creators of every dimension in
// the pairing. Required whenever Betti numbers are read off the diagrams.
func WithAllUnpairedCreators() Option {
	return func(o *options) { o.allUnpairedCreators = true }
}

// WithAlgorithm selects the reduction strategy. The default is Twist.
func WithAlgorithm(a reduction.Algorithm) Option {
	return func(o *options) { o.algorithm = a }
}

// WithRepresentation selects the boundary matrix representation.
func WithRepresentation(newRep func(n int) boundary.Representation) Option {
	return func(o *options) { o.newRep = newRep }
}

// WithLogger attaches a logger to the pipeline. Without it, logging is
// discarded.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

func defaultOptions() options {
	return options{
		dualize:   true,
		algorithm: reduction.Twist{},
		log:       zap.NewNop(),
	}
}

// CalculateDiagrams computes the persistence diagrams of a complex in
// filtration order: one diagram per dimension, ordered by dimension.
func CalculateDiagrams(k *core.Complex, opts ...Option) ([]*diagram.Diagram, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var buildOpts []boundary.Option
	if o.newRep != nil {
		buildOpts = append(buildOpts, boundary.WithRepresentation(o.newRep))
	}

	m, err := boundary.Build(k, buildOpts...)
	if err != nil {
		return nil, err
	}

	if o.dualize {
		m.Dualize()
	}

	pairingOpts := []reduction.PairingOption{reduction.WithAlgorithm(o.algorithm)}
	if o.allUnpairedCreators {
		pairingOpts = append(pairingOpts, reduction.WithAllUnpairedCreators())
	}

	pairing := reduction.CalculatePairing(m, pairingOpts...)

	o.log.Debug("calculated persistence pairing",
		zap.Int("columns", m.NumColumns()),
		zap.Int("pairs", len(pairing)),
		zap.Bool("dualized", m.Dualized()),
	)

	return diagram.FromPairing(pairing, k), nil
}

// BettiNumbers returns the Betti numbers of the complex, indexed by
// dimension. The slice always has Dimension(K)+1 entries.
func BettiNumbers(k *core.Complex, opts ...Option) ([]int, error) {
	opts = append(opts, WithAllUnpairedCreators())

	diagrams, err := CalculateDiagrams(k, opts...)
	if err != nil {
		return nil, err
	}

	betti := make([]int, k.Dimension()+1)
	for _, d := range diagrams {
		if d.Dimension() < len(betti) {
			betti[d.Dimension()] = d.Betti()
		}
	}
	return betti, nil
}
