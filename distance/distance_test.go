package distance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alaa/aleph/diagram"
	"github.com/A-Alaa/aleph/distance"
)

func TestInfinityMetric(t *testing.T) {
	var m distance.Infinity

	p := diagram.Point{Birth: 0, Death: 2}
	q := diagram.Point{Birth: 1, Death: 5}

	assert.Equal(t, 3.0, m.Distance(p, q))
	assert.Equal(t, 3.0, m.Distance(q, p))
	assert.Zero(t, m.Distance(p, p))
}

func TestInfinityMetric_EssentialPoints(t *testing.T) {
	var m distance.Infinity

	p := diagram.Point{Birth: 0, Death: math.Inf(1)}
	q := diagram.Point{Birth: 1, Death: math.Inf(1)}

	// Two essential points compare by birth alone.
	assert.Equal(t, 1.0, m.Distance(p, q))
}

func TestHausdorff(t *testing.T) {
	d1 := diagram.New(0)
	d1.Add(0, 2)

	d2 := diagram.New(0)
	d2.Add(0, 1)

	got := distance.Hausdorff(d1, d2, distance.Infinity{})
	assert.Equal(t, 1.0, got)

	// Symmetry.
	assert.Equal(t, got, distance.Hausdorff(d2, d1, distance.Infinity{}))
}

func TestHausdorff_IdenticalDiagrams(t *testing.T) {
	d := diagram.New(0)
	d.Add(0, 2)
	d.Add(1, 3)

	assert.Zero(t, distance.Hausdorff(d, d, distance.Infinity{}))
}

func TestHausdorff_EmptyDiagrams(t *testing.T) {
	assert.Zero(t, distance.Hausdorff(diagram.New(0), diagram.New(0), distance.Infinity{}))
}

func TestWasserstein_Identical(t *testing.T) {
	d := diagram.New(0)
	d.Add(0, 2)

	got, err := distance.Wasserstein(d, d, 1)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestWasserstein_SinglePointAgainstEmpty(t *testing.T) {
	d1 := diagram.New(0)
	d1.Add(0, 2)

	// The only option is projecting the point onto the diagonal, which
	// costs half its persistence.
	got, err := distance.Wasserstein(d1, diagram.New(0), 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestWasserstein_PrefersDirectMatch(t *testing.T) {
	d1 := diagram.New(0)
	d1.Add(0, 2)

	d2 := diagram.New(0)
	d2.Add(0, 1)

	// Matching the points directly costs 1; projecting both onto the
	// diagonal costs 1.5.
	got, err := distance.Wasserstein(d1, d2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestWasserstein_PrefersDiagonal(t *testing.T) {
	d1 := diagram.New(0)
	d1.Add(0, 0.2)

	d2 := diagram.New(0)
	d2.Add(10, 10.4)

	// Direct matching costs 10.2; both projections together cost 0.3.
	got, err := distance.Wasserstein(d1, d2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, got, 1e-12)
}

func TestWasserstein_DimensionMismatch(t *testing.T) {
	_, err := distance.Wasserstein(diagram.New(0), diagram.New(1), 1)
	assert.ErrorIs(t, err, distance.ErrDimensionMismatch)
}

func TestWasserstein_EmptyDiagrams(t *testing.T) {
	got, err := distance.Wasserstein(diagram.New(0), diagram.New(0), 2)
	require.NoError(t, err)
	assert.Zero(t, got)
}
