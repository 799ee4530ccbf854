package sim

import "math/rand"

// DropScheduler converts a configured average drop period into an integer
// number of drops per frame without biasing the long-run rate.
type DropScheduler struct {
	rng *rand.Rand
}

// NewDropScheduler returns a scheduler with its own random stream. The same
// seed reproduces the same event counts for the same inputs.
func NewDropScheduler(seed int64) *DropScheduler {
	return &DropScheduler{rng: rand.New(rand.NewSource(seed))}
}

// NextEventCount reports how many drops to apply during a frame of frameMs
// milliseconds when drops should arrive once per periodMs milliseconds on
// average. A non-positive period or frame disables drops entirely.
//
// The whole part of frameMs/periodMs is always returned; the fractional part
// becomes one extra drop with probability equal to the fraction. The mean
// converges to the configured rate, but this is stochastic rounding of a
// ratio, not a Poisson process: a frame shorter than the period never yields
// more than one drop.
func (s *DropScheduler) NextEventCount(periodMs, frameMs float64) int {
	if periodMs <= 0 || frameMs <= 0 {
		return 0
	}
	expected := frameMs / periodMs
	count := int(expected)
	if remainder := expected - float64(count); remainder > 0 {
		if s.rng.Float64() <= remainder {
			count++
		}
	}
	return count
}
