package surface

import (
	"ripple-tank/internal/graphics"
	"ripple-tank/internal/graphics/renderer"
	"ripple-tank/internal/profiling"
	"ripple-tank/internal/sim"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var surfaceVertShader = `#version 330 core
layout(location = 0) in vec3 aPos;
uniform mat4 view;
uniform mat4 proj;
out vec3 FragPos;
void main() {
	FragPos = aPos;
	gl_Position = proj * view * vec4(aPos, 1.0);
}
`

// Normals come from screen-space derivatives so the vertex buffer stays a
// bare position stream and no CPU normal pass exists.
var surfaceFragShader = `#version 330 core
in vec3 FragPos;
uniform vec3 lightDir;
uniform vec3 shallowColor;
uniform vec3 deepColor;
uniform vec3 eyePos;
out vec4 FragColor;
void main() {
	vec3 n = normalize(cross(dFdx(FragPos), dFdy(FragPos)));
	if (n.y < 0.0) n = -n;
	float diff = max(dot(n, -lightDir), 0.25);
	float depth = clamp(0.5 - FragPos.y * 0.1, 0.0, 1.0);
	vec3 col = mix(shallowColor, deepColor, depth);
	vec3 viewDir = normalize(eyePos - FragPos);
	vec3 reflectDir = reflect(lightDir, n);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), 48.0);
	FragColor = vec4(col * diff + vec3(0.35) * spec, 1.0);
}
`

// Surface draws the water mesh. The triangle index buffer is uploaded once;
// the position buffer is re-uploaded every frame straight from the grid, so
// the GPU always sees the front buffer the simulation just produced.
type Surface struct {
	grid   *sim.Grid
	shader *graphics.Shader

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	bufBytes   int
}

// NewSurface creates the water surface renderable for the given grid.
func NewSurface(grid *sim.Grid) *Surface {
	return &Surface{grid: grid}
}

// Init compiles the water shader and uploads the static topology.
func (s *Surface) Init() error {
	var err error
	s.shader, err = graphics.NewShader(surfaceVertShader, surfaceFragShader)
	if err != nil {
		return err
	}

	positions := s.grid.CurrentPositions()
	indices := s.grid.TriangleIndices()
	s.indexCount = int32(len(indices))
	s.bufBytes = len(positions) * 3 * 4

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, s.bufBytes, gl.Ptr(positions), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.GenBuffers(1, &s.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return nil
}

// Render uploads the current front buffer and draws the mesh.
func (s *Surface) Render(ctx renderer.RenderContext) {
	defer profiling.Track("surface.Render")()

	s.shader.Use()
	s.shader.SetMatrix4("proj", &ctx.Proj[0])
	s.shader.SetMatrix4("view", &ctx.View[0])
	s.shader.SetVector3("lightDir", -0.35, -0.85, -0.4)
	s.shader.SetVector3("shallowColor", 0.22, 0.55, 0.78)
	s.shader.SetVector3("deepColor", 0.05, 0.18, 0.38)
	eye := ctx.Camera.Position()
	s.shader.SetVector3("eyePos", eye.X(), eye.Y(), eye.Z())

	positions := ctx.Grid.CurrentPositions()

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	// Deterministic orphan to avoid GPU stalls on dynamic updates
	gl.BufferData(gl.ARRAY_BUFFER, s.bufBytes, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, s.bufBytes, gl.Ptr(positions))

	// The sheet is visible from both sides at grazing pitch
	gl.Disable(gl.CULL_FACE)
	gl.DrawElements(gl.TRIANGLES, s.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.Enable(gl.CULL_FACE)

	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (s *Surface) Dispose() {
	if s.ebo != 0 {
		gl.DeleteBuffers(1, &s.ebo)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

// SetViewport is a no-op; the projection matrix already tracks the window.
func (s *Surface) SetViewport(width, height int) {}
