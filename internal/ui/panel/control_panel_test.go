package panel

import (
	"testing"

	"ripple-tank/internal/config"

	"github.com/stretchr/testify/require"
)

// The slider callbacks own the mapping from the 0..1 track position to the
// real config ranges; drive them directly and read the config back.
func TestSliderMappingsCoverConfigRanges(t *testing.T) {
	p := NewControlPanel()

	p.dropPeriod.OnChange(0)
	require.Equal(t, 5.0, config.GetRainPeriodMs())
	p.dropPeriod.OnChange(1)
	require.Equal(t, 500.0, config.GetRainPeriodMs())

	p.dropPeak.OnChange(0)
	require.Equal(t, float32(-12), config.GetRainBasePeak())
	p.dropPeak.OnChange(0.5)
	require.Equal(t, float32(0), config.GetRainBasePeak())
	p.dropPeak.OnChange(1)
	require.Equal(t, float32(12), config.GetRainBasePeak())

	p.peakJitter.OnChange(0)
	require.Equal(t, float32(0), config.GetRainDelta())
	p.peakJitter.OnChange(1)
	require.Equal(t, float32(6), config.GetRainDelta())

	p.dropWidth.OnChange(0)
	require.Equal(t, 1, config.GetRainWidth())
	p.dropWidth.OnChange(1)
	require.Equal(t, 24, config.GetRainWidth())

	p.simPeriod.OnChange(0)
	require.Equal(t, 0, config.GetRenderPeriodMs())
	p.simPeriod.OnChange(1)
	require.Equal(t, 200, config.GetRenderPeriodMs())

	p.fpsLimit.OnChange(0)
	require.Equal(t, 30, config.GetFPSLimit())
	p.fpsLimit.OnChange(0.5)
	require.Equal(t, 135, config.GetFPSLimit())
	p.fpsLimit.OnChange(1)
	require.Equal(t, 0, config.GetFPSLimit(), "full right means uncapped")
}

func TestSlidersInitializeFromConfig(t *testing.T) {
	config.SetRainPeriodMs(250)
	config.SetFPSLimit(0)

	p := NewControlPanel()
	require.InDelta(t, (250.0-5)/495, float64(p.dropPeriod.Value), 1e-6)
	require.Equal(t, float32(1), p.fpsLimit.Value)
}

func TestMeshToggleWritesConfig(t *testing.T) {
	config.SetShowMesh(false)
	p := NewControlPanel()
	require.False(t, p.mesh.IsOn)

	p.mesh.OnToggle(true)
	require.True(t, config.GetShowMesh())
}

func TestContainsTracksVisibility(t *testing.T) {
	p := NewControlPanel()
	require.True(t, p.Contains(float64(panelX)+1, float64(panelY)+1))
	require.False(t, p.Contains(float64(panelX+panelW)+1, float64(panelY)+1))

	p.ToggleVisible()
	require.False(t, p.Contains(float64(panelX)+1, float64(panelY)+1))
}
