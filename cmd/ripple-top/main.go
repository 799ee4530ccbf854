// Command ripple-top is a top-down 2D viewer for the water simulation. It
// runs the same grid as the 3D app but maps heights onto a color ramp, which
// makes it handy for checking wave propagation without a GPU context that
// supports 4.1 core.
package main

import (
	"flag"
	"log"
	"time"

	"ripple-tank/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command-line flags mirroring the control panel settings of the 3D app.
var (
	// dimFlag sets the lattice edge length in cells.
	dimFlag = flag.Int("dim", 96, "grid dimension (cells per side, minimum 5)")

	// scaleFlag sets how many window pixels one cell covers.
	scaleFlag = flag.Int("scale", 6, "window pixels per cell")

	// seedFlag fixes the random seed; 0 seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed (0 = time-based)")

	// stepFlag is the minimum wall-clock time between simulation steps.
	stepFlag = flag.Int("step", 33, "simulation step period in ms")

	// rainFlag is the average time between raindrops.
	rainFlag = flag.Float64("rain", 35, "average raindrop period in ms (0 disables rain)")

	// peakFlag is the base splash height; negative values pull the surface down.
	peakFlag = flag.Float64("peak", -3, "base splash peak height")

	// deltaFlag is the random variation applied around the base peak.
	deltaFlag = flag.Float64("delta", 1, "splash peak variation")

	// widthFlag is the splash footprint edge length in cells.
	widthFlag = flag.Int("width", 2, "splash width in cells")
)

// waveWallHeight matches the surge height used by the 3D app.
const waveWallHeight = 2

// heightRange is the height that saturates the color ramp.
const heightRange = 6.0

// Game steps the shared water grid on a wall-clock gate and draws it as a
// height-colored pixel field.
type Game struct {
	grid  *sim.Grid
	drops *sim.DropScheduler

	pixels   []byte
	paused   bool
	lastStep time.Time

	// pendingDrops latches N presses and clicks that arrive on paused,
	// priming, or gated frames until the next processed step.
	pendingDrops int
}

// newGame builds the grid and scheduler from the parsed flags.
func newGame() (*Game, error) {
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := sim.NewWithSeed(*dimFlag, seed)
	if err != nil {
		return nil, err
	}

	dim := grid.Dimension()
	return &Game{
		grid:   grid,
		drops:  sim.NewDropScheduler(seed + 1),
		pixels: make([]byte, dim*dim*4),
	}, nil
}

// Update handles input and advances the simulation when the step period has
// elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.lastStep = time.Time{} // restart the gate clock
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.grid.Flatten()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.grid.InduceWaveWall(waveWallHeight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.pendingDrops++
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pendingDrops++
	}

	if g.paused {
		return nil
	}

	now := time.Now()
	if g.lastStep.IsZero() {
		g.lastStep = now
		return nil
	}
	elapsed := now.Sub(g.lastStep)
	if elapsed < time.Duration(*stepFlag)*time.Millisecond {
		return nil
	}

	g.splash(elapsed)
	g.grid.Step()
	g.lastStep = now
	return nil
}

// splash applies scheduled rain plus any latched manual drops.
func (g *Game) splash(elapsed time.Duration) {
	n := g.pendingDrops
	g.pendingDrops = 0
	if *rainFlag > 0 {
		frameMs := float64(elapsed) / float64(time.Millisecond)
		n += g.drops.NextEventCount(*rainFlag, frameMs)
	}
	if n == 0 {
		return
	}

	width := *widthFlag
	if max := g.grid.Dimension() / 2; width > max {
		width = max
	}
	for i := 0; i < n; i++ {
		if err := g.grid.AddRandomSplash(float32(*peakFlag), float32(*deltaFlag), width); err != nil {
			log.Printf("splash rejected: %v", err)
			return
		}
	}
}

// Draw maps cell heights onto a blue ramp and blits the whole field.
func (g *Game) Draw(screen *ebiten.Image) {
	positions := g.grid.CurrentPositions()
	for i, p := range positions {
		v := p.Y() / heightRange
		if v > 1 {
			v = 1
		}
		if v < -1 {
			v = -1
		}

		// Rest color, lifted toward cyan-white on crests and sunk toward
		// near-black on troughs.
		r, gc, b := float32(20), float32(60), float32(120)
		if v >= 0 {
			r += (160 - r) * v
			gc += (225 - gc) * v
			b += (255 - b) * v
		} else {
			r += (5 - r) * -v
			gc += (18 - gc) * -v
			b += (55 - b) * -v
		}

		base := i * 4
		g.pixels[base] = byte(r)
		g.pixels[base+1] = byte(gc)
		g.pixels[base+2] = byte(b)
		g.pixels[base+3] = 255
	}
	screen.WritePixels(g.pixels)
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	dim := g.grid.Dimension()
	return dim, dim
}

func main() {
	flag.Parse()

	g, err := newGame()
	if err != nil {
		log.Fatalf("ripple-top: %v", err)
	}

	dim := g.grid.Dimension()
	ebiten.SetWindowSize(dim**scaleFlag, dim**scaleFlag)
	ebiten.SetWindowTitle("ripple-top")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("ripple-top: %v", err)
	}
}
