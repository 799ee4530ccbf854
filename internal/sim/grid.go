// Package sim implements a rippling-water height field over a square
// lattice. The lattice doubles as renderable geometry: every cell is a
// vertex whose X/Z pin it to the grid and whose Y carries the wave height.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinDimension is the smallest grid edge the propagation stencil and the
	// splash width bound both support.
	MinDimension = 5

	// waveWallMinDim gates InduceWaveWall; smaller tanks have no room for
	// the band.
	waveWallMinDim = 15
	waveWallRows   = 20

	smoothingFactor = 2.0
	damping         = 0.96
)

// Grid is a square water surface double-buffered across two moments in time.
// The front buffer holds the displayable state (time t-1) and the back
// buffer holds the state one step older (t-2); Step writes t into the back
// buffer and swaps the labels, so no vertex data is ever copied.
//
// A Grid is not safe for concurrent use. Drive and read it from a single
// goroutine.
type Grid struct {
	dim     int
	points  [2][]mgl32.Vec3
	indices []uint32
	front   int
	rng     *rand.Rand
}

// New returns a dim×dim grid at rest, seeded from the wall clock.
// Dimensions below MinDimension are rejected.
func New(dim int) (*Grid, error) {
	return NewWithSeed(dim, time.Now().UnixNano())
}

// NewWithSeed is New with a caller-chosen random seed. Two grids built with
// the same dimension and seed produce identical splash sequences.
func NewWithSeed(dim int, seed int64) (*Grid, error) {
	if dim < MinDimension {
		return nil, fmt.Errorf("%w: got %d", ErrDimensionTooSmall, dim)
	}
	g := &Grid{
		dim: dim,
		rng: rand.New(rand.NewSource(seed)),
	}
	g.points[0] = buildLattice(dim)
	g.points[1] = buildLattice(dim)
	g.indices = buildTriangleIndices(dim)
	return g, nil
}

// buildLattice lays the vertices out row-major: index r*dim+c sits at
// X=c, Z=r, Y=0.
func buildLattice(dim int) []mgl32.Vec3 {
	pts := make([]mgl32.Vec3, dim*dim)
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			pts[r*dim+c] = mgl32.Vec3{float32(c), 0, float32(r)}
		}
	}
	return pts
}

// buildTriangleIndices emits two counter-wound triangles per lattice quad.
// Each cell with row>0 and col>0 closes the quad above-left of it.
func buildTriangleIndices(dim int) []uint32 {
	idxs := make([]uint32, 0, 6*(dim-1)*(dim-1))
	d := uint32(dim)
	for r := 1; r < dim; r++ {
		for c := 1; c < dim; c++ {
			i := uint32(r)*d + uint32(c)
			idxs = append(idxs,
				i-d-1, i, i-d,
				i-d-1, i-1, i,
			)
		}
	}
	return idxs
}

// Dimension returns the grid edge length in cells.
func (g *Grid) Dimension() int {
	return g.dim
}

// CurrentPositions exposes the displayable vertex buffer. The slice aliases
// grid state and is only valid until the next Step or Flatten; callers must
// not modify it.
func (g *Grid) CurrentPositions() []mgl32.Vec3 {
	return g.points[g.front]
}

// TriangleIndices exposes the static triangle list into CurrentPositions.
// It never changes after construction; callers must not modify it.
func (g *Grid) TriangleIndices() []uint32 {
	return g.indices
}

// scratch is the buffer Step will write into next. Perturbations accumulate
// here so the following Step picks them up as velocity.
func (g *Grid) scratch() []mgl32.Vec3 {
	return g.points[1-g.front]
}

// Flatten returns the whole surface to rest: every height in both buffers is
// zeroed and the buffer roles reset to their construction order. Flattening
// an already flat grid changes nothing.
func (g *Grid) Flatten() {
	for b := range g.points {
		pts := g.points[b]
		for i := range pts {
			pts[i][1] = 0
		}
	}
	g.front = 0
}
