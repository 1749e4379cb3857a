package distance

import (
	"math"

	"github.com/A-Alaa/aleph/diagram"
)

// Metric measures the distance between two diagram points.
type Metric interface {
	Distance(p, q diagram.Point) float64
}

// Infinity is the L-infinity metric on diagram points. Two infinite death
// values are considered equal, so essential points compare by birth alone.
type Infinity struct{}

// Distance implements Metric.
func (Infinity) Distance(p, q diagram.Point) float64 {
	dx := math.Abs(p.Birth - q.Birth)

	var dy float64
	switch {
	case p.Unpaired() && q.Unpaired():
		dy = 0
	default:
		dy = math.Abs(p.Death - q.Death)
	}

	return math.Max(dx, dy)
}

// Hausdorff returns the Hausdorff distance between two diagrams under the
// given metric: the largest distance from any point of one diagram to its
// nearest point in the other.
func Hausdorff(d1, d2 *diagram.Diagram, m Metric) float64 {
	if d1.Len() == 0 && d2.Len() == 0 {
		return 0
	}

	infimum := func(p diagram.Point, d *diagram.Diagram) float64 {
		inf := math.MaxFloat64
		for _, q := range d.Points() {
			inf = math.Min(inf, m.Distance(p, q))
		}
		return inf
	}

	supremum1 := -math.MaxFloat64
	for _, p := range d1.Points() {
		supremum1 = math.Max(supremum1, infimum(p, d2))
	}

	supremum2 := -math.MaxFloat64
	for _, p := range d2.Points() {
		supremum2 = math.Max(supremum2, infimum(p, d1))
	}

	return math.Max(supremum1, supremum2)
}
