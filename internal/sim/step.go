package sim

// Step advances the surface by one time step.
//
// For each cell it averages the cardinal neighbors' current heights (edge
// cells use only the neighbors that exist), subtracts the cell's own height
// from two steps back as a velocity term, and damps the result:
//
//	h(t) = damping * (smoothingFactor*avg(neighbors at t-1) - h(t-2))
//
// Every read sees pre-step values: neighbor heights come from the front
// buffer, which Step never writes, and each cell's t-2 height is read before
// its slot is overwritten. The buffers then swap roles by label.
func (g *Grid) Step() {
	curr := g.points[g.front]
	back := g.points[1-g.front]
	dim := g.dim

	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			i := r*dim + c

			var sum float32
			var n int
			if r > 0 {
				sum += curr[i-dim][1]
				n++
			}
			if r < dim-1 {
				sum += curr[i+dim][1]
				n++
			}
			if c > 0 {
				sum += curr[i-1][1]
				n++
			}
			if c < dim-1 {
				sum += curr[i+1][1]
				n++
			}

			smoothed := sum / float32(n)
			velocity := -back[i][1]
			back[i][1] = damping * (smoothingFactor*smoothed + velocity)
		}
	}
	g.front = 1 - g.front
}
