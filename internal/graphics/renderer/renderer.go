package renderer

import (
	"ripple-tank/internal/graphics"
	"ripple-tank/internal/sim"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer wires the camera to the given renderables and initializes
// them in draw order.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	renderer := &Renderer{
		renderables: rs,
		camera:      camera,
	}

	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render executes one frame: advance the camera spring, compute matrices,
// then walk the renderables in order.
func (r *Renderer) Render(grid *sim.Grid, dt float64) {
	gl.ClearColor(0.07, 0.09, 0.12, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.camera.Animate()

	ctx := RenderContext{
		Camera: r.camera,
		Grid:   grid,
		DT:     dt,
		View:   r.camera.GetViewMatrix(),
		Proj:   r.camera.GetProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport pushes new window dimensions to the camera and every
// renderable that lays out in screen space.
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
