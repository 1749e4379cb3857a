package norms

import "slices"

// KahanSum accumulates floating point values with Kahan's compensation
// term, bounding the error independently of the number of addends.
type KahanSum struct {
	sum float64
	c   float64
}

// Add accumulates a single value.
func (k *KahanSum) Add(v float64) {
	y := v - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// Value returns the compensated sum.
func (k *KahanSum) Value() float64 { return k.sum }

// SumSorted sums the values over an ascending-sorted copy using Kahan
// compensation. Sorting first makes the result independent of input order.
func SumSorted(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	var sum KahanSum
	for _, v := range sorted {
		sum.Add(v)
	}
	return sum.Value()
}
