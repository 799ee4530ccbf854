package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliderNotifiesOncePerChange(t *testing.T) {
	var got []float32
	s := NewSlider(0, 0, 120, 14, 0.25, 5, "drop-period", func(v float32) {
		got = append(got, v)
	})

	s.apply(0.25)
	require.Empty(t, got, "unchanged value must not notify")

	s.apply(0.5)
	require.Equal(t, []float32{0.5}, got)
	require.Equal(t, float32(0.5), s.Value)

	s.apply(0.5)
	require.Equal(t, []float32{0.5}, got, "repeated value must not notify again")

	s.apply(0.75)
	require.Equal(t, []float32{0.5, 0.75}, got)
}

func TestSliderWithoutCallback(t *testing.T) {
	s := NewSlider(0, 0, 120, 14, 0, 0, "plain", nil)
	s.apply(0.75)
	require.Equal(t, float32(0.75), s.Value)
}
