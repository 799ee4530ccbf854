package main

import (
	"testing"
	"time"

	"ripple-tank/internal/sim"
)

func newTestGame(t *testing.T, dim int) *Game {
	t.Helper()
	grid, err := sim.NewWithSeed(dim, 3)
	if err != nil {
		t.Fatalf("NewWithSeed(%d): %v", dim, err)
	}
	return &Game{
		grid:   grid,
		drops:  sim.NewDropScheduler(4),
		pixels: make([]byte, dim*dim*4),
	}
}

func flat(g *sim.Grid) bool {
	for _, p := range g.CurrentPositions() {
		if p.Y() != 0 {
			return false
		}
	}
	return true
}

// A drop requested on a frame the step gate skips must land on the next
// processed step instead of vanishing. Rain is disabled so the only splash
// in play is the latched manual one, and the step period is made generous
// enough that scheduling hiccups cannot sneak a frame through the gate.
func TestPendingDropsLatchAcrossGatedFrames(t *testing.T) {
	oldStep, oldRain := *stepFlag, *rainFlag
	*stepFlag, *rainFlag = 10000, 0
	defer func() { *stepFlag, *rainFlag = oldStep, oldRain }()

	g := newTestGame(t, 20)
	g.pendingDrops = 1

	// The first unpaused update only primes the gate clock.
	if err := g.Update(); err != nil {
		t.Fatalf("priming update: %v", err)
	}
	if g.pendingDrops != 1 {
		t.Fatal("priming frame discarded the pending drop")
	}
	if !flat(g.grid) {
		t.Fatal("priming frame stepped the grid")
	}

	// Inside the gate window the frame is skipped and the latch holds.
	if err := g.Update(); err != nil {
		t.Fatalf("gated update: %v", err)
	}
	if g.pendingDrops != 1 {
		t.Fatal("gated frame discarded the pending drop")
	}

	// Once the step period has elapsed the latch is consumed by the splash.
	g.lastStep = time.Now().Add(-time.Minute)
	if err := g.Update(); err != nil {
		t.Fatalf("processed update: %v", err)
	}
	if g.pendingDrops != 0 {
		t.Fatal("processed frame left the drop pending")
	}
	if flat(g.grid) {
		t.Fatal("processed frame left the surface flat")
	}
}

// Pausing must not eat latched drops: they stay pending until a processed
// frame consumes them.
func TestPendingDropsSurvivePause(t *testing.T) {
	g := newTestGame(t, 20)
	g.paused = true
	g.pendingDrops = 2

	for i := 0; i < 5; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("paused update %d: %v", i, err)
		}
	}
	if g.pendingDrops != 2 {
		t.Fatalf("paused frames changed the latch: %d drops pending, want 2", g.pendingDrops)
	}
	if !flat(g.grid) {
		t.Fatal("paused frame stepped the grid")
	}
}
