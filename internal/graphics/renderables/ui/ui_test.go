package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapSliderValue(t *testing.T) {
	// Two steps snap to the endpoints.
	require.Equal(t, float32(0), snapSliderValue(0.49, 2))
	require.Equal(t, float32(1), snapSliderValue(0.51, 2))

	// Five steps quantize to quarters.
	require.Equal(t, float32(0.25), snapSliderValue(0.3, 5))
	require.Equal(t, float32(0.75), snapSliderValue(0.7, 5))

	// Out-of-range input clamps before snapping.
	require.Equal(t, float32(0), snapSliderValue(-3, 5))
	require.Equal(t, float32(1), snapSliderValue(42, 5))
}

func TestSnapSliderValueContinuous(t *testing.T) {
	// Zero or one step means no quantization, only the clamp.
	require.Equal(t, float32(0.37), snapSliderValue(0.37, 0))
	require.Equal(t, float32(0.37), snapSliderValue(0.37, 1))
	require.Equal(t, float32(1), snapSliderValue(1.5, 0))
}
