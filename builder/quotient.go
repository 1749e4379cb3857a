package builder

import "github.com/A-Alaa/aleph/core"

// Cone returns the cone over a complex: a fresh apex vertex, the original
// simplices, and the join of every original simplex with the apex. The
// result has 2n+1 simplices for an input of size n.
//
// The weight functor receives every original simplex and returns the
// weight of its join with the apex; called with the empty simplex, it
// returns the weight of the apex itself. A nil functor assigns zero.
func Cone(k *core.Complex, weight func(core.Simplex) float64) *core.Complex {
	if k.Empty() {
		return core.NewComplex()
	}
	if weight == nil {
		weight = func(core.Simplex) float64 { return 0 }
	}

	apex, ok := freshVertex(k)
	if !ok {
		return core.NewComplex()
	}

	l := k.Clone()
	l.Push(core.NewSimplexWithData(weight(core.Simplex{}), apex))

	for _, s := range k.Simplices() {
		l.Push(join(s, apex, weight(s)))
	}
	return l
}

// Suspension returns the suspension of a complex, the double cone with
// two fresh apex vertices. The result has 3n+2 simplices for an input of
// size n. Weights follow the same convention as Cone.
func Suspension(k *core.Complex, weight func(core.Simplex) float64) *core.Complex {
	if k.Empty() {
		return core.NewComplex()
	}
	if weight == nil {
		weight = func(core.Simplex) float64 { return 0 }
	}

	upper, ok := freshVertex(k)
	if !ok {
		return core.NewComplex()
	}
	lower := upper + 1

	l := k.Clone()
	l.Push(core.NewSimplexWithData(weight(core.Simplex{}), upper))
	l.Push(core.NewSimplexWithData(weight(core.Simplex{}), lower))

	for _, s := range k.Simplices() {
		l.Push(join(s, upper, weight(s)))
		l.Push(join(s, lower, weight(s)))
	}
	return l
}

func freshVertex(k *core.Complex) (core.Vertex, bool) {
	vertices := k.Vertices()
	if len(vertices) == 0 {
		return 0, false
	}
	return vertices[len(vertices)-1] + 1, true
}

func join(s core.Simplex, v core.Vertex, data float64) core.Simplex {
	vertices := append(s.Vertices(), v)
	return core.NewSimplexWithData(data, vertices...)
}
