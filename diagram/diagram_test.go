package diagram_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alaa/aleph/core"
	"github.com/A-Alaa/aleph/diagram"
	"github.com/A-Alaa/aleph/reduction"
)

func TestFromPairing_GroupsByCreatorDimension(t *testing.T) {
	k := core.NewComplex(
		core.NewSimplexWithData(0, 0),
		core.NewSimplexWithData(1, 1),
		core.NewSimplexWithData(2, 0, 1),
	)

	pairing := reduction.Pairing{
		{Creator: 0, Destroyer: reduction.Unpaired},
		{Creator: 1, Destroyer: 2},
	}

	diagrams := diagram.FromPairing(pairing, k)
	require.Len(t, diagrams, 1)

	d := diagrams[0]
	assert.Equal(t, 0, d.Dimension())
	require.Equal(t, 2, d.Len())

	points := d.Points()
	assert.Equal(t, diagram.Point{Birth: 0, Death: math.Inf(1)}, points[0])
	assert.Equal(t, diagram.Point{Birth: 1, Death: 2}, points[1])
}

func TestFromPairing_OrdersDiagramsByDimension(t *testing.T) {
	k := core.NewComplex(
		core.NewSimplexWithData(0, 0),
		core.NewSimplexWithData(0, 1),
		core.NewSimplexWithData(1, 0, 1),
	)

	pairing := reduction.Pairing{
		{Creator: 0, Destroyer: reduction.Unpaired},
		{Creator: 2, Destroyer: reduction.Unpaired},
	}

	diagrams := diagram.FromPairing(pairing, k)
	require.Len(t, diagrams, 2)
	assert.Equal(t, 0, diagrams[0].Dimension())
	assert.Equal(t, 1, diagrams[1].Dimension())
}

func TestFromPairingValues(t *testing.T) {
	values := []float64{1, 3, 2}

	pairing := reduction.Pairing{
		{Creator: 0, Destroyer: reduction.Unpaired},
		{Creator: 1, Destroyer: 2},
	}

	d := diagram.FromPairingValues(pairing, values)
	require.Equal(t, 2, d.Len())

	points := d.Points()
	assert.True(t, points[0].Unpaired())
	assert.Equal(t, 1.0, points[0].Birth)
	assert.Equal(t, diagram.Point{Birth: 3, Death: 2}, points[1])
}

func TestBetti_CountsEssentialPoints(t *testing.T) {
	d := diagram.New(0)
	d.Add(0, 1)
	d.AddUnpaired(0)
	d.AddUnpaired(2)

	assert.Equal(t, 2, d.Betti())
}

func TestRemoveDiagonal_IsIdempotent(t *testing.T) {
	d := diagram.New(1)
	d.Add(1, 1)
	d.Add(1, 2)
	d.Add(3, 3)

	d.RemoveDiagonal()
	assert.Equal(t, 1, d.Len())

	d.RemoveDiagonal()
	assert.Equal(t, 1, d.Len())
}

func TestRemoveUnpaired(t *testing.T) {
	d := diagram.New(0)
	d.Add(0, 1)
	d.AddUnpaired(0)

	d.RemoveUnpaired()
	require.Equal(t, 1, d.Len())
	assert.False(t, d.Points()[0].Unpaired())
}

func TestPointPersistence(t *testing.T) {
	assert.Equal(t, 2.0, diagram.Point{Birth: 1, Death: 3}.Persistence())
	assert.True(t, math.IsInf(diagram.Point{Birth: 0, Death: math.Inf(1)}.Persistence(), 1))
}

func TestDiagramEqual(t *testing.T) {
	a := diagram.New(0)
	a.Add(0, 1)

	b := diagram.New(0)
	b.Add(0, 1)

	assert.True(t, a.Equal(b))

	b.AddUnpaired(0)
	assert.False(t, a.Equal(b))

	c := diagram.New(1)
	c.Add(0, 1)
	assert.False(t, a.Equal(c))
}

func TestWriteTo_Format(t *testing.T) {
	d := diagram.New(0)
	d.Add(0, 1.5)
	d.AddUnpaired(2)

	assert.Equal(t, "0 1.5\n2 inf\n", d.String())
}
