package config

import "sync"

// RenderSettings holds render loop configuration
type RenderSettings struct {
	mu             sync.RWMutex
	renderPeriodMs int // min elapsed ms between processed simulation frames
	fpsLimit       int // 0 = uncapped
	showMesh       bool
}

var globalRenderSettings = &RenderSettings{
	renderPeriodMs: 33, // ~30 simulation steps per second
	fpsLimit:       120,
}

// GetRenderPeriodMs returns the minimum elapsed milliseconds between
// processed simulation frames
func GetRenderPeriodMs() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.renderPeriodMs
}

// SetRenderPeriodMs sets the simulation frame gate in milliseconds
func SetRenderPeriodMs(ms int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if ms < 0 {
		ms = 0
	}
	if ms > 500 {
		ms = 500
	}

	globalRenderSettings.renderPeriodMs = ms
}

// GetFPSLimit returns the frame rate cap, 0 meaning uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap, 0 meaning uncapped
func SetFPSLimit(fps int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if fps < 0 {
		fps = 0
	}
	if fps > 480 {
		fps = 480
	}

	globalRenderSettings.fpsLimit = fps
}

// GetShowMesh returns whether the lattice line overlay is drawn
func GetShowMesh() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showMesh
}

// SetShowMesh enables or disables the lattice line overlay
func SetShowMesh(show bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showMesh = show
}

// ToggleShowMesh flips the lattice line overlay
func ToggleShowMesh() {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showMesh = !globalRenderSettings.showMesh
}
