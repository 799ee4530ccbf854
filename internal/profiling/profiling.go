package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings for the tick loop. Cheap enough to stay on outside
// of debugging sessions.

// Entry is one tracked section with its accumulated time this frame.
type Entry struct {
	Name string
	Dur  time.Duration
}

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	for k := range frameTotals {
		delete(frameTotals, k)
	}
	mu.Unlock()
}

// Top returns up to n entries sorted by time spent, longest first. Sections
// that recorded no measurable time are dropped.
func Top(n int) []Entry {
	mu.Lock()
	list := make([]Entry, 0, len(frameTotals))
	for k, v := range frameTotals {
		if v > 0 {
			list = append(list, Entry{Name: k, Dur: v})
		}
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].Dur > list[j].Dur })
	if n < len(list) {
		list = list[:n]
	}
	return list
}

// TopN renders Top(n) as a single line for log output.
// Example: "renderer.renderSurface:4.2ms, sim.Update:2.1ms"
func TopN(n int) string {
	entries := Top(n)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Name+":"+formatMs(e.Dur))
	}
	return strings.Join(parts, ", ")
}

func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
