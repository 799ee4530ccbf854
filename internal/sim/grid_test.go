package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsSmallDimensions(t *testing.T) {
	for dim := -1; dim < MinDimension; dim++ {
		_, err := New(dim)
		require.ErrorIs(t, err, ErrDimensionTooSmall, "dimension %d", dim)
	}

	g, err := New(MinDimension)
	require.NoError(t, err)
	require.Equal(t, MinDimension, g.Dimension())
}

func TestNewBuildsRestLattice(t *testing.T) {
	for _, dim := range []int{5, 9, 20} {
		g, err := NewWithSeed(dim, 1)
		require.NoError(t, err)

		pts := g.CurrentPositions()
		require.Len(t, pts, dim*dim)
		for r := 0; r < dim; r++ {
			for c := 0; c < dim; c++ {
				require.Equal(t, mgl32.Vec3{float32(c), 0, float32(r)}, pts[r*dim+c])
			}
		}
	}
}

func TestTriangleIndices(t *testing.T) {
	g, err := NewWithSeed(5, 1)
	require.NoError(t, err)

	idxs := g.TriangleIndices()
	require.Len(t, idxs, 6*4*4)
	for _, i := range idxs {
		require.Less(t, i, uint32(25))
	}

	// Cell (1,1) closes the first quad: upper-left 0, upper-right 1,
	// lower-left 5, lower-right 6.
	require.Equal(t, []uint32{0, 6, 1, 0, 5, 6}, idxs[:6])
}

func TestFlatten(t *testing.T) {
	g, err := NewWithSeed(16, 7)
	require.NoError(t, err)

	require.NoError(t, g.AddRandomSplash(-3, 1, 2))
	for i := 0; i < 5; i++ {
		g.Step()
	}

	g.Flatten()
	requireAllFlat(t, g)

	// Flattening again is a no-op.
	g.Flatten()
	requireAllFlat(t, g)

	// Buffer roles are back to their construction order: a perturbation
	// lands in scratch and leaves the displayed surface at rest.
	g.addPeak(3, 3, -2, 1)
	for _, p := range g.CurrentPositions() {
		require.Zero(t, p.Y())
	}
	require.Equal(t, float32(-2), g.scratch()[3*16+3].Y())
}

func requireAllFlat(t *testing.T, g *Grid) {
	t.Helper()
	for b := range g.points {
		for i, p := range g.points[b] {
			require.Zerof(t, p.Y(), "buffer %d index %d", b, i)
		}
	}
}
