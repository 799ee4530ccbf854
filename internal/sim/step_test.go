package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepKeepsRestStateFlat(t *testing.T) {
	g, err := NewWithSeed(9, 1)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		g.Step()
	}
	for i, p := range g.CurrentPositions() {
		require.Zerof(t, p.Y(), "index %d", i)
	}
}

// A single unit-cell splash of -3 becomes +2.88 after one step: neighbors
// are flat so the smoothing term is zero, the velocity term flips the sign,
// and damping scales it by 0.96.
func TestStepSingleSplash(t *testing.T) {
	g, err := NewWithSeed(5, 1)
	require.NoError(t, err)

	g.addPeak(2, 2, -3, 1)
	require.Equal(t, float32(-3), g.scratch()[2*5+2].Y())
	for _, p := range g.CurrentPositions() {
		require.Zero(t, p.Y())
	}

	g.Step()

	pts := g.CurrentPositions()
	require.InDelta(t, 2.88, pts[2*5+2].Y(), 1e-5)
	for i, p := range pts {
		if i == 2*5+2 {
			continue
		}
		require.Zerof(t, p.Y(), "index %d", i)
	}
}

// With damping below one the surface must ring down. Sampling the peak
// amplitude every hundred steps leaves plenty of room for waves reflecting
// off the walls while still pinning the long-run trend.
func TestStepEnergyDecays(t *testing.T) {
	g, err := NewWithSeed(9, 42)
	require.NoError(t, err)
	g.addPeak(4, 4, -3, 1)

	// One step moves the splash from the scratch buffer into the surface.
	g.Step()
	prev := maxAbsHeight(g)
	require.InDelta(t, 2.88, prev, 1e-5)

	for checkpoint := 0; checkpoint < 4; checkpoint++ {
		for i := 0; i < 100; i++ {
			g.Step()
		}
		cur := maxAbsHeight(g)
		require.LessOrEqual(t, cur, prev, "checkpoint %d", checkpoint)
		prev = cur
	}
	require.Less(t, prev, float32(0.1))
}

// The stencil treats rows and columns alike, so a transpose-symmetric
// perturbation stays transpose-symmetric up to float rounding.
func TestStepPreservesSymmetry(t *testing.T) {
	g, err := NewWithSeed(9, 1)
	require.NoError(t, err)
	g.addPeak(4, 4, -3, 1)

	for i := 0; i < 40; i++ {
		g.Step()
	}

	pts := g.CurrentPositions()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.InDeltaf(t, pts[r*9+c].Y(), pts[c*9+r].Y(), 1e-4,
				"cells (%d,%d) and (%d,%d)", r, c, c, r)
		}
	}
}

func BenchmarkStep(b *testing.B) {
	g, err := NewWithSeed(64, 1)
	if err != nil {
		b.Fatal(err)
	}
	g.addPeak(10, 10, -6, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}

func maxAbsHeight(g *Grid) float32 {
	var max float32
	for _, p := range g.CurrentPositions() {
		h := p.Y()
		if h < 0 {
			h = -h
		}
		if h > max {
			max = h
		}
	}
	return max
}
