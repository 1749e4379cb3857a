package builder

import (
	"errors"
	"slices"

	"github.com/A-Alaa/aleph/core"
)

// ErrInvalidDistances is returned when a distance matrix is not square.
var ErrInvalidDistances = errors.New("builder: distance matrix is not square")

// VietorisRipsSkeleton builds the one-skeleton of the Vietoris-Rips
// complex of a symmetric distance matrix at scale epsilon: one vertex per
// row with weight zero, and an edge for every pair at distance at most
// epsilon, weighted by that distance.
func VietorisRipsSkeleton(distances [][]float64, epsilon float64) (*core.Complex, error) {
	n := len(distances)
	for _, row := range distances {
		if len(row) != n {
			return nil, ErrInvalidDistances
		}
	}

	k := core.NewComplex()
	for u := 0; u < n; u++ {
		k.Push(core.NewSimplex(core.Vertex(u)))
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if d := distances[u][v]; d <= epsilon {
				k.Push(core.NewSimplexWithData(d, core.Vertex(u), core.Vertex(v)))
			}
		}
	}
	return k, nil
}

// Expander grows a one-skeleton into a full Vietoris-Rips complex.
type Expander struct{}

// Expand adds all cofaces up to the given dimension by joining simplices
// with common lower neighbours. Weights of vertices and edges are taken
// over from the input complex; higher simplices start at weight zero, to
// be assigned afterwards with AssignMaximumWeight.
func (e Expander) Expand(k *core.Complex, dimension int) *core.Complex {
	lower := lowerNeighbours(k)

	result := core.NewComplex()
	for _, vertex := range k.Vertices() {
		s := core.NewSimplex(vertex)
		result.Push(s)
		e.addCofaces(s, lower, lower[vertex], result, dimension)
	}

	// Carry over the original weights of the skeleton.
	for _, s := range result.Simplices() {
		if s.Dimension() > 1 {
			continue
		}
		if orig, ok := k.Find(s); ok {
			result.Push(s.WithData(orig.Data()))
		}
	}
	return result
}

func (e Expander) addCofaces(s core.Simplex, lower map[core.Vertex][]core.Vertex, neighbours []core.Vertex, result *core.Complex, dimension int) {
	if s.Dimension() >= dimension {
		return
	}

	for _, neighbour := range neighbours {
		coface := core.NewSimplex(append(s.Vertices(), neighbour)...)
		result.Push(coface)

		common := intersectVertices(lower[neighbour], neighbours)
		e.addCofaces(coface, lower, common, result, dimension)
	}
}

// AssignMaximumWeight reweights every simplex above the given dimension
// with the maximum weight among itself and its faces. Processing in
// dimension order propagates weights upwards through the whole complex.
func (e Expander) AssignMaximumWeight(k *core.Complex, minDimension int) *core.Complex {
	result := k.Clone()
	result.SortWith(func(s, t core.Simplex) bool {
		if s.Dimension() != t.Dimension() {
			return s.Dimension() < t.Dimension()
		}
		return s.Less(t)
	})

	result.Reweight(func(s core.Simplex) float64 {
		if s.Dimension() <= minDimension {
			return s.Data()
		}
		w := s.Data()
		for _, face := range s.Boundary() {
			if f, ok := result.Find(face); ok && f.Data() > w {
				w = f.Data()
			}
		}
		return w
	})
	return result
}

// AssignMaximumData reweights every simplex with the maximum of the given
// per-vertex values over its vertices.
func (e Expander) AssignMaximumData(k *core.Complex, values []float64) *core.Complex {
	result := k.Clone()
	result.Reweight(func(s core.Simplex) float64 {
		data := values[s.Vertex(0)]
		for _, v := range s.Vertices() {
			if values[v] > data {
				data = values[v]
			}
		}
		return data
	})
	return result
}

// lowerNeighbours maps every vertex to the vertices it is connected to
// that precede it. Only the one-skeleton is consulted.
func lowerNeighbours(k *core.Complex) map[core.Vertex][]core.Vertex {
	lower := make(map[core.Vertex][]core.Vertex)
	for _, s := range k.Range(1) {
		u, v := s.Vertex(0), s.Vertex(1)
		if u > v {
			u, v = v, u
		}
		lower[v] = append(lower[v], u)
	}
	for v := range lower {
		slices.Sort(lower[v])
	}
	return lower
}

func intersectVertices(a, b []core.Vertex) []core.Vertex {
	var result []core.Vertex
	for _, v := range a {
		if slices.Contains(b, v) {
			result = append(result, v)
		}
	}
	return result
}
