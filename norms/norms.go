package norms

import (
	"errors"
	"math"

	"github.com/A-Alaa/aleph/diagram"
)

// ErrZeroPower is returned by PNorm when the power is zero.
var ErrZeroPower = errors.New("norms: power must be non-zero")

// TotalPersistence sums the k-th powers of the persistence values of all
// non-essential points of the diagram.
func TotalPersistence(d *diagram.Diagram, k float64) float64 {
	values := finitePersistences(d)
	for i, v := range values {
		values[i] = math.Pow(v, k)
	}
	return SumSorted(values)
}

// PNorm returns the p-th root of the total persistence of degree p.
func PNorm(d *diagram.Diagram, p float64) (float64, error) {
	if p == 0 {
		return 0, ErrZeroPower
	}
	return math.Pow(TotalPersistence(d, p), 1/p), nil
}

// InfinityNorm returns the largest persistence among the non-essential
// points of the diagram, or 0 for a diagram without such points.
func InfinityNorm(d *diagram.Diagram) float64 {
	max := 0.0
	for _, v := range finitePersistences(d) {
		if v > max {
			max = v
		}
	}
	return max
}

func finitePersistences(d *diagram.Diagram) []float64 {
	points := d.Points()
	values := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Unpaired() {
			continue
		}
		values = append(values, p.Persistence())
	}
	return values
}
