package game

import (
	"time"

	"ripple-tank/internal/config"
)

// pausedFPS caps the loop while the simulation is paused so the panel stays
// responsive without burning a core.
const pausedFPS = 120

// spinWindow is how long before the deadline Wait stops sleeping and spins.
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces the render loop against config.GetFPSLimit using a
// hybrid sleep/spin wait. Sleeping alone overshoots by scheduler quanta at
// high caps; spinning the last stretch keeps the cadence tight.
type FPSLimiter struct {
	next time.Time
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame deadline. A zero or negative limit
// disables pacing entirely.
func (f *FPSLimiter) Wait(paused bool) {
	limit := config.GetFPSLimit()
	if paused {
		limit = pausedFPS
	}
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// After a hitch the deadline can fall a whole frame behind; resync
	// instead of fast-forwarding through the backlog.
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
