package tank

import (
	"ripple-tank/internal/graphics"
	"ripple-tank/internal/graphics/renderer"
	"ripple-tank/internal/sim"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var tankVertShader = `#version 330 core
layout(location = 0) in vec3 aPos;
uniform mat4 view;
uniform mat4 proj;
void main() {
	gl_Position = proj * view * vec4(aPos, 1.0);
}
`

var tankFragShader = `#version 330 core
uniform vec3 color;
out vec4 FragColor;
void main() {
	FragColor = vec4(color, 1.0);
}
`

// halfHeight is the tank wall extent above and below the rest surface. Rain
// peaks are clamped well inside it.
const halfHeight = float32(8)

// Tank draws the wireframe box holding the water: a rim above the surface,
// a floor rectangle below it, and the four corner posts.
type Tank struct {
	grid   *sim.Grid
	shader *graphics.Shader

	vao       uint32
	vbo       uint32
	vertCount int32
}

// NewTank creates the tank outline sized to the grid.
func NewTank(grid *sim.Grid) *Tank {
	return &Tank{grid: grid}
}

// Init compiles the line shader and uploads the static box edges.
func (t *Tank) Init() error {
	var err error
	t.shader, err = graphics.NewShader(tankVertShader, tankFragShader)
	if err != nil {
		return err
	}

	edge := float32(t.grid.Dimension() - 1)
	lo, hi := -halfHeight, halfHeight

	vertices := []float32{
		// Floor rectangle
		0, lo, 0, edge, lo, 0,
		edge, lo, 0, edge, lo, edge,
		edge, lo, edge, 0, lo, edge,
		0, lo, edge, 0, lo, 0,

		// Rim rectangle
		0, hi, 0, edge, hi, 0,
		edge, hi, 0, edge, hi, edge,
		edge, hi, edge, 0, hi, edge,
		0, hi, edge, 0, hi, 0,

		// Corner posts
		0, lo, 0, 0, hi, 0,
		edge, lo, 0, edge, hi, 0,
		edge, lo, edge, edge, hi, edge,
		0, lo, edge, 0, hi, edge,
	}
	t.vertCount = int32(len(vertices) / 3)

	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindVertexArray(0)
	return nil
}

// Render draws the box edges around the water volume.
func (t *Tank) Render(ctx renderer.RenderContext) {
	t.shader.Use()
	t.shader.SetMatrix4("proj", &ctx.Proj[0])
	t.shader.SetMatrix4("view", &ctx.View[0])
	t.shader.SetVector3("color", 0.45, 0.48, 0.52)

	gl.BindVertexArray(t.vao)
	gl.LineWidth(1.5)
	gl.DrawArrays(gl.LINES, 0, t.vertCount)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (t *Tank) Dispose() {
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
	}
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}

// SetViewport is a no-op; the projection matrix already tracks the window.
func (t *Tank) SetViewport(width, height int) {}
