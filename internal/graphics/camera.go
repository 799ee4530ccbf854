package graphics

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	orbitSensitivity = 0.005
	zoomStepFactor   = 1.12

	// Pitch stays above the surface and below the pole so LookAtV never
	// degenerates against the up vector.
	minPitch = 0.08
	maxPitch = 1.45
)

// Camera orbits a fixed target, which for this app is the center of the
// tank. Yaw and pitch follow the mouse directly; the orbit distance chases
// the scroll wheel through a spring so zooming glides instead of stepping.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	Target mgl32.Vec3

	yaw   float64
	pitch float64

	distance    float64
	distanceVel float64
	wantDist    float64
	minDist     float64
	maxDist     float64
	spring      harmonica.Spring

	dragging     bool
	lastX, lastY float64
}

// NewCamera places the camera on an orbit of radius distance around target.
func NewCamera(width, height int, target mgl32.Vec3, distance float64) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
		Target:      target,
		yaw:         math.Pi / 4,
		pitch:       0.7,
		distance:    distance,
		wantDist:    distance,
		minDist:     distance * 0.25,
		maxDist:     distance * 3,
		spring:      harmonica.NewSpring(harmonica.FPS(60), 7.0, 1.0),
	}
}

func (c *Camera) SetViewport(width, height int) {
	if height == 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// StartDrag begins an orbit drag from the given cursor position.
func (c *Camera) StartDrag(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

func (c *Camera) EndDrag() {
	c.dragging = false
}

// CursorMoved orbits the camera while a drag is active.
func (c *Camera) CursorMoved(x, y float64) {
	if !c.dragging {
		return
	}
	dx := x - c.lastX
	dy := y - c.lastY
	c.lastX, c.lastY = x, y

	c.yaw -= dx * orbitSensitivity
	c.pitch += dy * orbitSensitivity
	if c.pitch < minPitch {
		c.pitch = minPitch
	}
	if c.pitch > maxPitch {
		c.pitch = maxPitch
	}
}

// Scroll retargets the zoom spring; one wheel notch scales the orbit radius
// by zoomStepFactor.
func (c *Camera) Scroll(yoff float64) {
	c.wantDist *= math.Pow(zoomStepFactor, -yoff)
	if c.wantDist < c.minDist {
		c.wantDist = c.minDist
	}
	if c.wantDist > c.maxDist {
		c.wantDist = c.maxDist
	}
}

// Animate advances the zoom spring by one frame.
func (c *Camera) Animate() {
	c.distance, c.distanceVel = c.spring.Update(c.distance, c.distanceVel, c.wantDist)
}

// Position returns the camera eye point on its orbit.
func (c *Camera) Position() mgl32.Vec3 {
	sp, cp := math.Sincos(c.pitch)
	sy, cy := math.Sincos(c.yaw)
	offset := mgl32.Vec3{
		float32(c.distance * cp * sy),
		float32(c.distance * sp),
		float32(c.distance * cp * cy),
	}
	return c.Target.Add(offset)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}
