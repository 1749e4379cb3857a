package boundary_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Alaa/aleph/boundary"
	"github.com/A-Alaa/aleph/core"
)

func filledTriangle() *core.Complex {
	return core.NewComplex(
		core.NewSimplex(0),
		core.NewSimplex(1),
		core.NewSimplex(2),
		core.NewSimplex(0, 1),
		core.NewSimplex(0, 2),
		core.NewSimplex(1, 2),
		core.NewSimplex(0, 1, 2),
	)
}

func TestBuild_FilledTriangle(t *testing.T) {
	m, err := boundary.Build(filledTriangle())
	require.NoError(t, err)

	require.Equal(t, 7, m.NumColumns())
	assert.Equal(t, 2, m.MaxDimension())

	// Vertices have empty boundaries.
	for j := 0; j < 3; j++ {
		assert.Empty(t, m.Column(j))
		assert.Equal(t, 0, m.Dimension(j))
	}

	assert.Equal(t, []int{0, 1}, m.Column(3))
	assert.Equal(t, []int{0, 2}, m.Column(4))
	assert.Equal(t, []int{1, 2}, m.Column(5))
	assert.Equal(t, []int{3, 4, 5}, m.Column(6))
	assert.Equal(t, 2, m.Dimension(6))
}

func TestBuild_MissingFace(t *testing.T) {
	k := core.NewComplex(
		core.NewSimplex(0),
		core.NewSimplex(1),
		core.NewSimplex(0, 1, 2),
	)

	_, err := boundary.Build(k)
	assert.ErrorIs(t, err, boundary.ErrStructural)
}

func TestBuild_FaceAfterCoface(t *testing.T) {
	k := core.NewComplex(
		core.NewSimplex(0),
		core.NewSimplex(0, 1),
		core.NewSimplex(1),
	)

	_, err := boundary.Build(k)
	assert.ErrorIs(t, err, boundary.ErrStructural)
}

func TestBuild_MaxIndexLeavesSuffixZero(t *testing.T) {
	m, err := boundary.Build(filledTriangle(), boundary.WithMaxIndex(6))
	require.NoError(t, err)

	require.Equal(t, 7, m.NumColumns())
	assert.Empty(t, m.Column(6))
	assert.Equal(t, 2, m.Dimension(6))
	assert.Equal(t, []int{1, 2}, m.Column(5))
}

func TestRepresentations_Agree(t *testing.T) {
	k := filledTriangle()

	vec, err := boundary.Build(k)
	require.NoError(t, err)

	set, err := boundary.Build(k, boundary.WithSetColumns())
	require.NoError(t, err)

	assert.True(t, vec.Equal(set))

	// Column addition behaves identically over GF(2).
	vec.AddTo(3, 4)
	set.AddTo(3, 4)
	assert.Equal(t, []int{1, 2}, vec.Column(4))
	assert.True(t, vec.Equal(set))

	vec.AddTo(3, 4)
	set.AddTo(3, 4)
	assert.Equal(t, []int{0, 2}, vec.Column(4))
	assert.True(t, vec.Equal(set))
}

func TestLow(t *testing.T) {
	m, err := boundary.Build(filledTriangle())
	require.NoError(t, err)

	_, ok := m.Low(0)
	assert.False(t, ok)

	low, ok := m.Low(6)
	require.True(t, ok)
	assert.Equal(t, 5, low)
}

func TestDualize_IsInvolution(t *testing.T) {
	m, err := boundary.Build(filledTriangle())
	require.NoError(t, err)

	d := m.Clone()
	d.Dualize()
	assert.True(t, d.Dualized())
	assert.False(t, d.Equal(m))

	d.Dualize()
	assert.False(t, d.Dualized())
	assert.True(t, d.Equal(m))
}

func TestDualize_AntiTransposes(t *testing.T) {
	// Vertex, vertex, edge: the edge column {0,1} anti-transposes into
	// columns {0} at both mirrored positions.
	k := core.NewComplex(
		core.NewSimplex(0),
		core.NewSimplex(1),
		core.NewSimplex(0, 1),
	)

	m, err := boundary.Build(k)
	require.NoError(t, err)
	m.Dualize()

	assert.Empty(t, m.Column(0))
	assert.Equal(t, []int{0}, m.Column(1))
	assert.Equal(t, []int{0}, m.Column(2))

	// Dual dimensions mirror the originals.
	assert.Equal(t, 0, m.Dimension(0))
	assert.Equal(t, 1, m.Dimension(1))
	assert.Equal(t, 1, m.Dimension(2))
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := boundary.Build(filledTriangle())
	require.NoError(t, err)

	c := m.Clone()
	c.ClearColumn(6)

	assert.Equal(t, []int{3, 4, 5}, m.Column(6))
	assert.Empty(t, c.Column(6))
}

func TestStoreLoad_RoundTrip(t *testing.T) {
	m, err := boundary.Build(filledTriangle())
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, m.Store(&sb))

	loaded, err := boundary.Load(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.True(t, m.Equal(loaded))
}

func TestLoad_CommentsAndBlankLines(t *testing.T) {
	input := "# boundary matrix\n\n0\n0\n1 1 0\n"

	m, err := boundary.Load(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 3, m.NumColumns())
	assert.Equal(t, []int{0, 1}, m.Column(2))
	assert.Equal(t, 1, m.Dimension(2))
}

func TestLoad_Malformed(t *testing.T) {
	_, err := boundary.Load(strings.NewReader("1 frog\n"))
	assert.ErrorIs(t, err, boundary.ErrBadFormat)
}
