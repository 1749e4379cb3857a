package distance

import (
	"errors"
	"math"

	"github.com/A-Alaa/aleph/diagram"
)

// ErrDimensionMismatch is returned when two diagrams of different homology
// dimensions are compared.
var ErrDimensionMismatch = errors.New("distance: diagram dimensions do not coincide")

// maxCost marks forbidden entries of the assignment cost matrix.
const maxCost = math.MaxFloat64

// Wasserstein returns the Wasserstein distance of the given power between
// two diagrams of the same dimension, under the infinity metric on points.
//
// Each point may be matched to a point of the other diagram or to its own
// orthogonal projection onto the diagonal, which costs half its
// persistence. The optimal matching is found by solving an assignment
// problem of order len(d1)+len(d2).
func Wasserstein(d1, d2 *diagram.Diagram, power float64) (float64, error) {
	if d1.Dimension() != d2.Dimension() {
		return 0, ErrDimensionMismatch
	}

	p1 := d1.Points()
	p2 := d2.Points()
	n1, n2 := len(p1), len(p2)
	size := n1 + n2

	if size == 0 {
		return 0, nil
	}

	costs := make([][]float64, size)
	for i := range costs {
		costs[i] = make([]float64, size)
	}

	var metric Infinity

	// Distances between the points of both diagrams. The mirrored block
	// in the lower right pairs up the diagonal projections with each
	// other, which is free.
	for row, p := range p1 {
		for col, q := range p2 {
			costs[row][col] = math.Pow(metric.Distance(p, q), power)
			costs[n1+col][n2+row] = 0
		}
	}

	// Matching a point against the diagonal is only allowed for its own
	// orthogonal projection; any other projection is forbidden.
	for i, p := range p1 {
		for row := range p1 {
			costs[row][n2+i] = maxCost
		}
		costs[i][n2+i] = math.Pow(p.Persistence()/2, power)
	}
	for i, p := range p2 {
		for col := range p2 {
			costs[n1+i][col] = maxCost
		}
		costs[n1+i][i] = math.Pow(p.Persistence()/2, power)
	}

	stars := solveAssignment(costs)

	total := 0.0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if stars[row][col] {
				total += costs[row][col]
			}
		}
	}

	return math.Pow(total, 1/power), nil
}
