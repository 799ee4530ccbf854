package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextEventCountDisabled(t *testing.T) {
	s := NewDropScheduler(1)
	require.Zero(t, s.NextEventCount(0, 16.7))
	require.Zero(t, s.NextEventCount(-10, 16.7))
	require.Zero(t, s.NextEventCount(35, 0))
	require.Zero(t, s.NextEventCount(35, -1))
}

func TestNextEventCountWholeRatio(t *testing.T) {
	s := NewDropScheduler(1)
	for i := 0; i < 100; i++ {
		require.Equal(t, 3, s.NextEventCount(10, 30))
	}
}

func TestNextEventCountBounds(t *testing.T) {
	s := NewDropScheduler(7)
	// 25/10 = 2.5: always two drops, sometimes a third, never more.
	for i := 0; i < 1000; i++ {
		n := s.NextEventCount(10, 25)
		require.GreaterOrEqual(t, n, 2)
		require.LessOrEqual(t, n, 3)
	}
}

func TestNextEventCountMeanConverges(t *testing.T) {
	cases := []struct {
		period, frame float64
	}{
		{35, 16.67},
		{10, 25},
		{100, 16.67},
	}
	for _, tc := range cases {
		s := NewDropScheduler(1234)
		const n = 200000
		total := 0
		for i := 0; i < n; i++ {
			total += s.NextEventCount(tc.period, tc.frame)
		}
		mean := float64(total) / n
		require.InDeltaf(t, tc.frame/tc.period, mean, 0.01,
			"period %v frame %v", tc.period, tc.frame)
	}
}

func TestNextEventCountDeterministicBySeed(t *testing.T) {
	a := NewDropScheduler(55)
	b := NewDropScheduler(55)
	for i := 0; i < 500; i++ {
		require.Equal(t, a.NextEventCount(35, 16.67), b.NextEventCount(35, 16.67))
	}
}
