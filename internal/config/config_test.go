package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderPeriodClamped(t *testing.T) {
	SetRenderPeriodMs(-10)
	require.Equal(t, 0, GetRenderPeriodMs())

	SetRenderPeriodMs(9999)
	require.Equal(t, 500, GetRenderPeriodMs())

	SetRenderPeriodMs(33)
	require.Equal(t, 33, GetRenderPeriodMs())
}

func TestFPSLimitClamped(t *testing.T) {
	SetFPSLimit(-1)
	require.Equal(t, 0, GetFPSLimit())

	SetFPSLimit(1000)
	require.Equal(t, 480, GetFPSLimit())

	SetFPSLimit(120)
	require.Equal(t, 120, GetFPSLimit())
}

func TestShowMeshToggle(t *testing.T) {
	SetShowMesh(false)
	require.False(t, GetShowMesh())

	ToggleShowMesh()
	require.True(t, GetShowMesh())

	ToggleShowMesh()
	require.False(t, GetShowMesh())
}

func TestRainSettingsClamped(t *testing.T) {
	SetRainPeriodMs(0)
	require.Equal(t, 1.0, GetRainPeriodMs())
	SetRainPeriodMs(99999)
	require.Equal(t, 5000.0, GetRainPeriodMs())

	SetRainBasePeak(-100)
	require.Equal(t, float32(-12), GetRainBasePeak())
	SetRainBasePeak(100)
	require.Equal(t, float32(12), GetRainBasePeak())

	SetRainDelta(-1)
	require.Equal(t, float32(0), GetRainDelta())
	SetRainDelta(10)
	require.Equal(t, float32(6), GetRainDelta())

	SetRainWidth(0)
	require.Equal(t, 1, GetRainWidth())
	SetRainWidth(100)
	require.Equal(t, 24, GetRainWidth())
}
