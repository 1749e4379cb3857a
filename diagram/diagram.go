package diagram

import (
	"math"
	"slices"

	"github.com/A-Alaa/aleph/core"
	"github.com/A-Alaa/aleph/reduction"
)

// Point is a single birth/death pair. An essential class has an infinite
// death value.
type Point struct {
	Birth float64
	Death float64
}

// Persistence returns the lifetime of the point.
func (p Point) Persistence() float64 { return p.Death - p.Birth }

// Unpaired reports whether the point describes an essential class.
func (p Point) Unpaired() bool { return math.IsInf(p.Death, 1) }

// Diagram is the persistence diagram of a single homology dimension.
type Diagram struct {
	dimension int
	points    []Point
}

// New creates an empty diagram for the given homology dimension.
func New(dimension int) *Diagram {
	return &Diagram{dimension: dimension}
}

// Dimension reports the homology dimension of the diagram.
func (d *Diagram) Dimension() int { return d.dimension }

// Len reports the number of points.
func (d *Diagram) Len() int { return len(d.points) }

// Points returns a copy of the points of the diagram.
func (d *Diagram) Points() []Point { return slices.Clone(d.points) }

// Add appends a finite point.
func (d *Diagram) Add(birth, death float64) {
	d.points = append(d.points, Point{Birth: birth, Death: death})
}

// AddUnpaired appends an essential point with infinite death.
func (d *Diagram) AddUnpaired(birth float64) {
	d.points = append(d.points, Point{Birth: birth, Death: math.Inf(1)})
}

// Betti counts the essential points of the diagram. For a diagram computed
// over a full complex this is the Betti number of the corresponding
// dimension.
func (d *Diagram) Betti() int {
	n := 0
	for _, p := range d.points {
		if p.Unpaired() {
			n++
		}
	}
	return n
}

// RemoveDiagonal drops every point with zero persistence. It is
// idempotent.
func (d *Diagram) RemoveDiagonal() {
	d.points = slices.DeleteFunc(d.points, func(p Point) bool {
		return p.Birth == p.Death
	})
}

// RemoveUnpaired drops every essential point.
func (d *Diagram) RemoveUnpaired() {
	d.points = slices.DeleteFunc(d.points, Point.Unpaired)
}

// Equal reports whether two diagrams have the same dimension and the same
// points in the same order.
func (d *Diagram) Equal(other *Diagram) bool {
	return d.dimension == other.dimension &&
		slices.Equal(d.points, other.points)
}

// FromPairing converts a persistence pairing into diagrams, one per
// creator dimension, ordered by dimension. The complex supplies the weight
// of every simplex the pairing refers to; it must be the complex the
// pairing was computed from.
func FromPairing(pairing reduction.Pairing, k *core.Complex) []*Diagram {
	byDimension := make(map[int]*Diagram)

	for _, pair := range pairing {
		s, err := k.At(pair.Creator)
		if err != nil {
			continue
		}

		dim := s.Dimension()
		d, ok := byDimension[dim]
		if !ok {
			d = New(dim)
			byDimension[dim] = d
		}

		if pair.Essential() || pair.Destroyer >= k.Len() {
			d.AddUnpaired(s.Data())
			continue
		}
		t, _ := k.At(pair.Destroyer)
		d.Add(s.Data(), t.Data())
	}

	result := make([]*Diagram, 0, len(byDimension))
	for _, d := range byDimension {
		result = append(result, d)
	}
	slices.SortFunc(result, func(a, b *Diagram) int {
		return a.dimension - b.dimension
	})
	return result
}

// FromPairingValues converts a pairing of a one-dimensional function into
// a single diagram, using the function values directly instead of a
// simplicial complex. Unpaired creators become essential points.
func FromPairingValues(pairing reduction.Pairing, values []float64) *Diagram {
	d := New(0)
	for _, pair := range pairing {
		if pair.Essential() || pair.Destroyer >= len(values) {
			d.AddUnpaired(values[pair.Creator])
			continue
		}
		d.Add(values[pair.Creator], values[pair.Destroyer])
	}
	return d
}
