package reduction

import "github.com/A-Alaa/aleph/boundary"

// Algorithm reduces a boundary matrix in place so that every non-zero
// column has a unique pivot.
type Algorithm interface {
	Reduce(m *boundary.Matrix)
}

// Standard is the classical left-to-right column reduction. Every column
// is reduced against the pivots found so far until it becomes zero or its
// pivot is fresh.
type Standard struct{}

// Reduce implements Algorithm.
func (Standard) Reduce(m *boundary.Matrix) {
	n := m.NumColumns()

	// lut[i] is the column whose pivot is row i, or -1.
	lut := make([]int, n)
	for i := range lut {
		lut[i] = -1
	}

	for j := 0; j < n; j++ {
		i, valid := m.Low(j)
		for valid && lut[i] >= 0 {
			m.AddTo(lut[i], j)
			i, valid = m.Low(j)
		}
		if valid {
			lut[i] = j
		}
	}
}

// Twist is the reduction of Chen and Kerber. Columns are processed by
// descending dimension, and whenever a pivot in row i is found, column i
// is cleared: it is known to reduce to zero, so the work is skipped.
type Twist struct{}

// Reduce implements Algorithm.
func (Twist) Reduce(m *boundary.Matrix) {
	n := m.NumColumns()

	lut := make([]int, n)
	for i := range lut {
		lut[i] = -1
	}

	for d := m.MaxDimension(); d >= 1; d-- {
		for j := 0; j < n; j++ {
			if m.Dimension(j) != d {
				continue
			}

			i, valid := m.Low(j)
			for valid && lut[i] >= 0 {
				m.AddTo(lut[i], j)
				i, valid = m.Low(j)
			}
			if valid {
				lut[i] = j
				m.ClearColumn(i)
			}
		}
	}
}
