package homology_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alaa/aleph/core"
	"github.com/A-Alaa/aleph/filtration"
	"github.com/A-Alaa/aleph/homology"
)

func TestZeroDimensionalDiagram(t *testing.T) {
	k := core.NewComplex(
		core.NewSimplexWithData(0, 0),
		core.NewSimplexWithData(1, 1),
		core.NewSimplexWithData(2, 2),
		core.NewSimplexWithData(3, 0, 1),
		core.NewSimplexWithData(4, 1, 2),
	)
	k.SortWith(filtration.ByData())

	d, err := homology.ZeroDimensionalDiagram(k)
	require.NoError(t, err)

	require.Equal(t, 3, d.Len())
	points := d.Points()

	// The younger component dies when the edge arrives.
	assert.Equal(t, 1.0, points[0].Birth)
	assert.Equal(t, 3.0, points[0].Death)
	assert.Equal(t, 2.0, points[1].Birth)
	assert.Equal(t, 4.0, points[1].Death)

	// One essential component remains, rooted at the oldest vertex.
	assert.Equal(t, 0.0, points[2].Birth)
	assert.True(t, math.IsInf(points[2].Death, 1))

	assert.Equal(t, 1, d.Betti())
}

func TestZeroDimensionalDiagram_SkipsDiagonalByDefault(t *testing.T) {
	k := core.NewComplex(
		core.NewSimplexWithData(0, 0),
		core.NewSimplexWithData(0, 1),
		core.NewSimplexWithData(0, 0, 1),
	)

	d, err := homology.ZeroDimensionalDiagram(k)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len(), "only the essential class remains")

	d, err = homology.ZeroDimensionalDiagram(k, homology.WithDiagonalPoints())
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
}

func TestZeroDimensionalDiagram_MatchesFullPipeline(t *testing.T) {
	k := circle()
	k.Push(core.NewSimplex(7))

	fast, err := homology.ZeroDimensionalDiagram(k)
	require.NoError(t, err)

	diagrams, err := homology.CalculateDiagrams(k, homology.WithAllUnpairedCreators())
	require.NoError(t, err)
	require.NotEmpty(t, diagrams)
	require.Equal(t, 0, diagrams[0].Dimension())

	assert.Equal(t, diagrams[0].Betti(), fast.Betti())
}

func TestZeroDimensionalDiagram_TwoComponents(t *testing.T) {
	k := core.NewComplex(
		core.NewSimplex(0),
		core.NewSimplex(1),
		core.NewSimplex(2),
		core.NewSimplex(3),
		core.NewSimplex(0, 1),
		core.NewSimplex(2, 3),
	)

	d, err := homology.ZeroDimensionalDiagram(k)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Betti())
}
