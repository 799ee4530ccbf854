package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func testCamera() *Camera {
	return NewCamera(800, 600, mgl32.Vec3{10, 0, 10}, 50)
}

func TestCameraCursorIgnoredWithoutDrag(t *testing.T) {
	c := testCamera()
	yaw, pitch := c.yaw, c.pitch

	c.CursorMoved(400, 400)
	require.Equal(t, yaw, c.yaw)
	require.Equal(t, pitch, c.pitch)
}

func TestCameraPitchClamped(t *testing.T) {
	c := testCamera()
	c.StartDrag(0, 0)

	c.CursorMoved(0, 1e6)
	require.Equal(t, float64(maxPitch), c.pitch)

	c.CursorMoved(0, -2e6)
	require.Equal(t, float64(minPitch), c.pitch)

	c.EndDrag()
	c.CursorMoved(0, 1e6)
	require.Equal(t, float64(minPitch), c.pitch, "ended drag must not orbit")
}

func TestCameraScrollClamped(t *testing.T) {
	c := testCamera()

	for i := 0; i < 200; i++ {
		c.Scroll(1) // zoom in
	}
	require.Equal(t, c.minDist, c.wantDist)

	for i := 0; i < 400; i++ {
		c.Scroll(-1) // zoom out
	}
	require.Equal(t, c.maxDist, c.wantDist)
}

func TestCameraZoomSpringConverges(t *testing.T) {
	c := testCamera()
	c.Scroll(-3)
	require.NotEqual(t, c.wantDist, c.distance)

	for i := 0; i < 300; i++ {
		c.Animate()
	}
	require.InDelta(t, c.wantDist, c.distance, 0.01)
}

func TestCameraPositionStaysOnOrbit(t *testing.T) {
	c := testCamera()
	c.StartDrag(0, 0)
	c.CursorMoved(123, -45)
	c.CursorMoved(-310, 88)

	offset := c.Position().Sub(c.Target)
	require.InDelta(t, c.distance, float64(offset.Len()), 1e-3)
}

func TestCameraViewMatrixCentersTarget(t *testing.T) {
	c := testCamera()

	v := c.GetViewMatrix().Mul4x1(c.Target.Vec4(1))
	require.InDelta(t, 0, float64(v.X()), 1e-4)
	require.InDelta(t, 0, float64(v.Y()), 1e-4)
	require.InDelta(t, -c.distance, float64(v.Z()), 1e-3)
}

func TestCameraSetViewportIgnoresZeroHeight(t *testing.T) {
	c := testCamera()
	before := c.AspectRatio

	c.SetViewport(1920, 0)
	require.Equal(t, before, c.AspectRatio)

	c.SetViewport(1920, 1080)
	require.InDelta(t, 1920.0/1080.0, float64(c.AspectRatio), 1e-6)
}
