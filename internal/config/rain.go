package config

import "sync"

// RainSettings holds raindrop perturbation configuration
type RainSettings struct {
	mu       sync.RWMutex
	periodMs float64 // average ms between drops
	basePeak float32 // drop height in surface units, negative punches down
	delta    float32 // uniform jitter applied around basePeak
	width    int     // drop footprint edge in cells
}

var globalRainSettings = &RainSettings{
	periodMs: 35,
	basePeak: -3,
	delta:    1,
	width:    2,
}

// GetRainPeriodMs returns the average milliseconds between raindrops
func GetRainPeriodMs() float64 {
	globalRainSettings.mu.RLock()
	defer globalRainSettings.mu.RUnlock()
	return globalRainSettings.periodMs
}

// SetRainPeriodMs sets the average milliseconds between raindrops
func SetRainPeriodMs(ms float64) {
	globalRainSettings.mu.Lock()
	defer globalRainSettings.mu.Unlock()

	// Clamp to reasonable values
	if ms < 1 {
		ms = 1
	}
	if ms > 5000 {
		ms = 5000
	}

	globalRainSettings.periodMs = ms
}

// GetRainBasePeak returns the base drop height
func GetRainBasePeak() float32 {
	globalRainSettings.mu.RLock()
	defer globalRainSettings.mu.RUnlock()
	return globalRainSettings.basePeak
}

// SetRainBasePeak sets the base drop height
func SetRainBasePeak(peak float32) {
	globalRainSettings.mu.Lock()
	defer globalRainSettings.mu.Unlock()

	// Clamp to reasonable values
	if peak < -12 {
		peak = -12
	}
	if peak > 12 {
		peak = 12
	}

	globalRainSettings.basePeak = peak
}

// GetRainDelta returns the jitter range around the base peak
func GetRainDelta() float32 {
	globalRainSettings.mu.RLock()
	defer globalRainSettings.mu.RUnlock()
	return globalRainSettings.delta
}

// SetRainDelta sets the jitter range around the base peak
func SetRainDelta(delta float32) {
	globalRainSettings.mu.Lock()
	defer globalRainSettings.mu.Unlock()

	// Clamp to reasonable values
	if delta < 0 {
		delta = 0
	}
	if delta > 6 {
		delta = 6
	}

	globalRainSettings.delta = delta
}

// GetRainWidth returns the drop footprint edge in cells. Callers must still
// clamp against the grid's own width bound.
func GetRainWidth() int {
	globalRainSettings.mu.RLock()
	defer globalRainSettings.mu.RUnlock()
	return globalRainSettings.width
}

// SetRainWidth sets the drop footprint edge in cells
func SetRainWidth(width int) {
	globalRainSettings.mu.Lock()
	defer globalRainSettings.mu.Unlock()

	// Clamp to reasonable values
	if width < 1 {
		width = 1
	}
	if width > 24 {
		width = 24
	}

	globalRainSettings.width = width
}
