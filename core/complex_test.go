package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alaa/aleph/core"
)

func triangleBoundary() *core.Complex {
	return core.NewComplex(
		core.NewSimplex(0),
		core.NewSimplex(1),
		core.NewSimplex(2),
		core.NewSimplex(0, 1),
		core.NewSimplex(0, 2),
		core.NewSimplex(1, 2),
	)
}

func TestComplex_PushKeepsInsertionOrder(t *testing.T) {
	k := triangleBoundary()

	require.Equal(t, 6, k.Len())
	assert.Equal(t, 1, k.Dimension())

	s, err := k.At(3)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{0, 1}, s.Vertices())
}

func TestComplex_PushDuplicateOverwritesData(t *testing.T) {
	k := core.NewComplex()
	k.Push(core.NewSimplexWithData(1, 0, 1))
	k.Push(core.NewSimplexWithData(2, 1, 0))

	require.Equal(t, 1, k.Len())
	s, _ := k.At(0)
	assert.Equal(t, 2.0, s.Data())

	// Same policy, opposite insertion order.
	l := core.NewComplex()
	l.Push(core.NewSimplexWithData(2, 1, 0))
	l.Push(core.NewSimplexWithData(1, 0, 1))

	require.Equal(t, 1, l.Len())
	u, _ := l.At(0)
	assert.Equal(t, 1.0, u.Data())
}

func TestComplex_IndexAndAt(t *testing.T) {
	k := triangleBoundary()

	i, err := k.Index(core.NewSimplex(0, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, i)

	_, err = k.Index(core.NewSimplex(7))
	assert.ErrorIs(t, err, core.ErrSimplexNotFound)

	_, err = k.At(42)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestComplex_SortByDimensionThenLex(t *testing.T) {
	k := core.NewComplex(
		core.NewSimplex(1, 2),
		core.NewSimplex(2),
		core.NewSimplex(0, 1),
		core.NewSimplex(0),
		core.NewSimplex(1),
	)
	k.Sort()

	var got [][]core.Vertex
	for _, s := range k.Simplices() {
		got = append(got, s.Vertices())
	}
	assert.Equal(t, [][]core.Vertex{{0}, {1}, {2}, {0, 1}, {1, 2}}, got)

	// Indices reflect the new order.
	i, err := k.Index(core.NewSimplex(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, i)
}

func TestComplex_Vertices(t *testing.T) {
	k := triangleBoundary()

	assert.Equal(t, []core.Vertex{0, 1, 2}, k.Vertices())
}

func TestComplex_Range(t *testing.T) {
	k := triangleBoundary()

	edges := k.Range(1)
	require.Len(t, edges, 3)
	for _, s := range edges {
		assert.Equal(t, 1, s.Dimension())
	}
}

func TestComplex_Remove(t *testing.T) {
	k := triangleBoundary()

	require.NoError(t, k.Remove(core.NewSimplex(1, 2)))
	assert.Equal(t, 5, k.Len())
	assert.False(t, k.Contains(core.NewSimplex(1, 2)))

	err := k.Remove(core.NewSimplex(1, 2))
	assert.ErrorIs(t, err, core.ErrSimplexNotFound)
}

func TestComplex_Reweight(t *testing.T) {
	k := triangleBoundary()
	k.Reweight(func(s core.Simplex) float64 { return float64(s.Dimension()) })

	s, _ := k.At(5)
	assert.Equal(t, 1.0, s.Data())
}

func TestComplex_CloneIsIndependent(t *testing.T) {
	k := triangleBoundary()
	l := k.Clone()

	l.Push(core.NewSimplex(3))
	assert.Equal(t, 6, k.Len())
	assert.Equal(t, 7, l.Len())
}

func TestComplex_EmptyDimension(t *testing.T) {
	assert.Equal(t, 0, core.NewComplex().Dimension())
}
