package wireframe

import (
	"ripple-tank/internal/config"
	"ripple-tank/internal/graphics"
	"ripple-tank/internal/graphics/renderer"
	"ripple-tank/internal/profiling"
	"ripple-tank/internal/sim"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var wireVertShader = `#version 330 core
layout(location = 0) in vec3 aPos;
uniform mat4 view;
uniform mat4 proj;
void main() {
	gl_Position = proj * view * vec4(aPos, 1.0);
}
`

var wireFragShader = `#version 330 core
uniform vec3 color;
out vec4 FragColor;
void main() {
	FragColor = vec4(color, 1.0);
}
`

// Wireframe draws the lattice edges on top of the water surface. It reuses
// the surface topology but rasterizes the triangles in line mode, offset
// toward the viewer so the lines do not z-fight the filled mesh.
type Wireframe struct {
	grid   *sim.Grid
	shader *graphics.Shader

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	bufBytes   int
}

// NewWireframe creates a new wireframe renderable
func NewWireframe(grid *sim.Grid) *Wireframe {
	return &Wireframe{grid: grid}
}

// Init initializes the wireframe rendering system
func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(wireVertShader, wireFragShader)
	if err != nil {
		return err
	}

	indices := w.grid.TriangleIndices()
	w.indexCount = int32(len(indices))
	positions := w.grid.CurrentPositions()
	w.bufBytes = len(positions) * 3 * 4

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, w.bufBytes, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	gl.GenBuffers(1, &w.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, w.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return nil
}

// Render draws the mesh lines when the overlay is enabled.
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if !config.GetShowMesh() {
		return
	}
	defer profiling.Track("renderer.renderWireframe")()

	w.shader.Use()
	w.shader.SetMatrix4("proj", &ctx.Proj[0])
	w.shader.SetMatrix4("view", &ctx.View[0])
	w.shader.SetVector3("color", 0.8, 0.92, 1.0)

	positions := ctx.Grid.CurrentPositions()

	gl.BindVertexArray(w.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	// Deterministic orphan to avoid GPU stalls on dynamic updates
	gl.BufferData(gl.ARRAY_BUFFER, w.bufBytes, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, w.bufBytes, gl.Ptr(positions))

	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.POLYGON_OFFSET_LINE)
	gl.PolygonOffset(-1, -1)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	gl.LineWidth(1.0)

	gl.DrawElements(gl.TRIANGLES, w.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Disable(gl.POLYGON_OFFSET_LINE)
	gl.Enable(gl.CULL_FACE)

	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.ebo != 0 {
		gl.DeleteBuffers(1, &w.ebo)
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
	}
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}

func (w *Wireframe) SetViewport(width, height int) {}
