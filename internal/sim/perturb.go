package sim

import "fmt"

// AddRandomSplash disturbs the surface with a width×width block of uniform
// height at a random anchor, as if a drop had just passed through it. The
// block height is basePeak plus a uniform jitter in (-delta, delta),
// truncated to a whole unit; a zero basePeak forces the jitter to zero so a
// disabled rain stays silent. Negative peaks read as drops punching the
// surface down, positive ones as bulges.
//
// Width must satisfy 1 <= width <= dimension/2; violations return
// ErrSplashWidth and leave the grid untouched.
func (g *Grid) AddRandomSplash(basePeak, delta float32, width int) error {
	if width < 1 || width > g.dim/2 {
		return fmt.Errorf("%w: width %d with dimension %d", ErrSplashWidth, width, g.dim)
	}

	// Continuous uniform over [0, dim-1) truncated to an int, so the last
	// row and column are never anchors. Kept as-is for seed compatibility;
	// do not swap for Intn.
	row := int(g.rng.Float64() * float64(g.dim-1))
	col := int(g.rng.Float64() * float64(g.dim-1))

	if basePeak == 0 {
		delta = 0
	}
	peak := basePeak + (2*g.rng.Float32()-1)*delta

	g.addPeak(row, col, float32(int(peak)), width)
	return nil
}

// addPeak adds value to the width×width block anchored at (row, col) in the
// scratch buffer. Anchors too close to the far edges shift back so the whole
// block always lands inside the grid; it is never clipped.
func (g *Grid) addPeak(row, col int, value float32, width int) {
	if row+width > g.dim {
		row = g.dim - width
	}
	if col+width > g.dim {
		col = g.dim - width
	}
	scratch := g.scratch()
	for r := row; r < row+width; r++ {
		for c := col; c < col+width; c++ {
			scratch[r*g.dim+c][1] += value
		}
	}
}

// InduceWaveWall lifts a band of waveWallRows full rows starting at row
// dimension/2-1, producing a wall of water that sweeps the tank. The band is
// clipped at the far edge. Grids smaller than waveWallMinDim have no room
// for it and are left untouched.
func (g *Grid) InduceWaveWall(height float32) {
	if g.dim < waveWallMinDim {
		return
	}
	start := g.dim/2 - 1
	end := start + waveWallRows
	if end > g.dim {
		end = g.dim
	}
	scratch := g.scratch()
	for r := start; r < end; r++ {
		for c := 0; c < g.dim; c++ {
			scratch[r*g.dim+c][1] += height
		}
	}
}
