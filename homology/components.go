package homology

import (
	"slices"

	"github.com/A-Alaa/aleph/core"
	"github.com/A-Alaa/aleph/diagram"
)

type zeroOptions struct {
	keepDiagonal bool
}

// ZeroOption configures ZeroDimensionalDiagram.
type ZeroOption func(*zeroOptions)

// WithDiagonalPoints keeps pairs whose birth and death coincide. They are
// dropped by default since they carry no persistence.
func WithDiagonalPoints() ZeroOption {
	return func(o *zeroOptions) { o.keepDiagonal = true }
}

// ZeroDimensionalDiagram computes the degree-zero persistence diagram of a
// complex in filtration order by tracking connected components with a
// union-find structure. Only vertices and edges are inspected, which makes
// this far cheaper than a full matrix reduction; the essential classes of
// the result agree with those of CalculateDiagrams.
func ZeroDimensionalDiagram(k *core.Complex, opts ...ZeroOption) (*diagram.Diagram, error) {
	var o zeroOptions
	for _, opt := range opts {
		opt(&o)
	}

	vertices := k.Vertices()
	uf := newUnionFind(vertices)
	d := diagram.New(0)

	for _, s := range k.Simplices() {
		// Only an edge can merge two components.
		if s.Dimension() != 1 {
			continue
		}

		younger := uf.find(s.Vertex(0))
		older := uf.find(s.Vertex(1))
		if younger == older {
			continue
		}

		uIndex, err := k.Index(core.NewSimplex(younger))
		if err != nil {
			return nil, err
		}
		vIndex, err := k.Index(core.NewSimplex(older))
		if err != nil {
			return nil, err
		}

		// The younger component was born later in the filtration, so its
		// root vertex has the larger index. It is the one that dies here.
		if uIndex < vIndex {
			younger, older = older, younger
			uIndex, vIndex = vIndex, uIndex
		}

		creator, _ := k.At(uIndex)
		creation := creator.Data()
		destruction := s.Data()

		uf.merge(younger, older)

		if creation != destruction || o.keepDiagonal {
			d.Add(creation, destruction)
		}
	}

	// Every remaining root is an essential class.
	roots := uf.roots()
	slices.Sort(roots)

	for _, root := range roots {
		creator, ok := k.Find(core.NewSimplex(root))
		if !ok {
			return nil, core.ErrSimplexNotFound
		}
		d.AddUnpaired(creator.Data())
	}

	return d, nil
}
