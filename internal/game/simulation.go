package game

import (
	"log"
	"time"

	"ripple-tank/internal/config"
	"ripple-tank/internal/sim"
)

// waveWallHeight is the fixed surge height used by the wave-wall action.
const waveWallHeight = 2

// Simulation drives one water grid: it owns the frame gate clock, the
// raindrop scheduler, the pause flag, and one-shot action latches. All grid
// mutation happens inside Update, so the grid keeps its single-goroutine
// contract no matter which callback asked for an action.
type Simulation struct {
	grid  *sim.Grid
	drops *sim.DropScheduler

	paused    bool
	lastStep  time.Time
	wantWave  bool
	wantFlat  bool
	wantDrops int
}

func NewSimulation(grid *sim.Grid, drops *sim.DropScheduler) *Simulation {
	return &Simulation{grid: grid, drops: drops}
}

// Grid exposes the simulation's grid for rendering.
func (s *Simulation) Grid() *sim.Grid {
	return s.grid
}

// Update advances the water if enough wall time has passed since the last
// processed frame. Calls inside the gate window (and all calls while paused)
// change nothing, so the render loop can invoke it every frame at any rate.
func (s *Simulation) Update(now time.Time) {
	if s.paused {
		return
	}
	if s.lastStep.IsZero() {
		s.lastStep = now
		return
	}

	elapsed := now.Sub(s.lastStep)
	gate := time.Duration(config.GetRenderPeriodMs()) * time.Millisecond
	if elapsed < gate {
		return
	}

	if s.wantFlat {
		s.grid.Flatten()
		s.wantFlat = false
	}
	if s.wantWave {
		s.grid.InduceWaveWall(waveWallHeight)
		s.wantWave = false
	}

	s.applyRain(elapsed)
	s.grid.Step()
	s.lastStep = now
}

// applyRain asks the scheduler how many drops fit in the elapsed window,
// adds any manually requested drops, and splashes each one with the current
// rain settings.
func (s *Simulation) applyRain(elapsed time.Duration) {
	frameMs := float64(elapsed) / float64(time.Millisecond)
	n := s.drops.NextEventCount(config.GetRainPeriodMs(), frameMs) + s.wantDrops
	s.wantDrops = 0
	if n == 0 {
		return
	}

	peak := config.GetRainBasePeak()
	delta := config.GetRainDelta()
	width := config.GetRainWidth()
	if max := s.grid.Dimension() / 2; width > max {
		width = max
	}

	for i := 0; i < n; i++ {
		if err := s.grid.AddRandomSplash(peak, delta, width); err != nil {
			log.Printf("simulation: splash rejected: %v", err)
			return
		}
	}
}

// Paused reports whether simulation frames are being processed.
func (s *Simulation) Paused() bool {
	return s.paused
}

// SetPaused pauses or resumes frame processing. Resuming restarts the gate
// clock so the first frame back does not see a huge elapsed window.
func (s *Simulation) SetPaused(paused bool) {
	if s.paused && !paused {
		s.lastStep = time.Time{}
	}
	s.paused = paused
}

func (s *Simulation) TogglePause() {
	s.SetPaused(!s.paused)
}

// RequestDrop latches one extra splash for the next processed frame.
func (s *Simulation) RequestDrop() {
	s.wantDrops++
}

// RequestWaveWall latches a wave-wall surge for the next processed frame.
func (s *Simulation) RequestWaveWall() {
	s.wantWave = true
}

// RequestFlatten latches a full surface reset for the next processed frame.
func (s *Simulation) RequestFlatten() {
	s.wantFlat = true
}
