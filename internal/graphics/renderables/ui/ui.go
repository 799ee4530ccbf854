package ui

import (
	"ripple-tank/internal/graphics"
	"ripple-tank/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var uiVertShader = `#version 330 core
layout(location = 0) in vec2 aPos;
void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
}
`

var uiFragShader = `#version 330 core
uniform vec4 uColor;
out vec4 FragColor;
void main() {
	FragColor = uColor;
}
`

// UI implements screen-space rendering for rectangles and text. Widgets call
// back into it every frame, so it also owns the slider drag capture: only
// one slider may follow the mouse at a time, keyed by its ID.
type UI struct {
	shader       *graphics.Shader
	fontRenderer *graphics.FontRenderer
	vao          uint32
	vbo          uint32

	winW, winH float32

	// Cursor state cached once per frame by BeginFrame
	mouseX, mouseY float32
	leftDown       bool

	isDraggingSlider bool
	activeSliderID   string
}

// NewUI creates a new UI renderable
func NewUI() *UI {
	return &UI{winW: 1, winH: 1}
}

// SetFontRenderer attaches the text renderer used by DrawText
func (u *UI) SetFontRenderer(fr *graphics.FontRenderer) {
	u.fontRenderer = fr
}

// Init initializes the UI rendering system
func (u *UI) Init() error {
	var err error
	u.shader, err = graphics.NewShader(uiVertShader, uiFragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render is part of the Renderable interface. The control panel draws
// through explicit BeginFrame/Flush bookends after the 3D pass instead,
// because widget hit-testing needs the window, which the context lacks.
func (u *UI) Render(ctx renderer.RenderContext) {}

// Dispose cleans up OpenGL resources
func (u *UI) Dispose() {
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
	}
	if u.vbo != 0 {
		gl.DeleteBuffers(1, &u.vbo)
	}
	if u.shader != nil {
		u.shader.Delete()
	}
}

// SetViewport records the window size used for pixel-to-NDC conversion.
// Layout runs in logical window coordinates, so this takes the window size,
// not the framebuffer size.
func (u *UI) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	u.winW, u.winH = float32(width), float32(height)
	if u.fontRenderer != nil {
		u.fontRenderer.SetViewport(u.winW, u.winH)
	}
}

// BeginFrame caches the cursor state all widgets will see this frame.
func (u *UI) BeginFrame(window *glfw.Window) {
	cx, cy := window.GetCursorPos()
	u.mouseX, u.mouseY = float32(cx), float32(cy)
	u.leftDown = window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
}

// Flush ends the UI pass, releasing drag capture once the button is up.
func (u *UI) Flush() {
	if !u.leftDown {
		u.isDraggingSlider = false
		u.activeSliderID = ""
	}
}

// DrawSlider draws a horizontal slider with the given value (0.0-1.0) and
// returns the new value. Supports drag capture and optional step snapping
// with tick marks. sliderID must uniquely identify this slider so that only
// one slider is active during a drag.
func (u *UI) DrawSlider(x, y, w, h float32, value float32, steps int, sliderID string) float32 {
	trackColor := mgl32.Vec3{0.3, 0.3, 0.3}
	u.DrawFilledRect(x, y, w, h, trackColor, 0.8)

	// Step ticks, downsampled to ~10 so dense sliders stay readable
	if steps > 1 {
		tickHeight := h * 0.6
		tickY := y + (h-tickHeight)*0.5
		tickWidth := float32(2)
		tickColor := mgl32.Vec3{0.9, 0.9, 0.9}
		stepSpacing := steps / 10
		if stepSpacing < 1 {
			stepSpacing = 1
		}
		for i := 0; i < steps; i++ {
			if i != 0 && i != steps-1 && (i%stepSpacing) != 0 {
				continue
			}
			ratio := float32(i) / float32(steps-1)
			tx := x + ratio*w - tickWidth*0.5
			u.DrawFilledRect(tx, tickY, tickWidth, tickHeight, tickColor, 0.18)
		}
	}

	inside := u.mouseY >= y && u.mouseY <= y+h && u.mouseX >= x && u.mouseX <= x+w

	if u.isDraggingSlider && u.activeSliderID == sliderID {
		if u.leftDown {
			value = snapSliderValue((u.mouseX-x)/w, steps)
		} else {
			u.isDraggingSlider = false
			u.activeSliderID = ""
		}
	} else if !u.isDraggingSlider && u.leftDown && inside {
		u.isDraggingSlider = true
		u.activeSliderID = sliderID
		value = snapSliderValue((u.mouseX-x)/w, steps)
	}

	thumbWidth := float32(14)
	thumbX := x + (w-thumbWidth)*value
	u.DrawFilledRect(thumbX, y, thumbWidth, h, mgl32.Vec3{0.6, 0.6, 0.6}, 0.9)

	return value
}

// snapSliderValue clamps a raw track ratio to [0,1] and snaps it onto the
// step lattice when the slider is stepped.
func snapSliderValue(v float32, steps int) float32 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if steps > 1 {
		denom := float32(steps - 1)
		stepIndex := int(v*denom + 0.5)
		if stepIndex < 0 {
			stepIndex = 0
		}
		if stepIndex > steps-1 {
			stepIndex = steps - 1
		}
		v = float32(stepIndex) / denom
	}
	return v
}

// DrawFilledRect draws a screen-space rectangle (pixels, top-left origin) with RGBA color.
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	// Convert to NDC [-1,1]
	x0 := (x/u.winW)*2 - 1
	y0 := 1 - (y/u.winH)*2
	x1 := ((x+w)/u.winW)*2 - 1
	y1 := 1 - ((y+h)/u.winH)*2
	verts := []float32{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y0,
		x1, y1,
		x0, y1,
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	loc := gl.GetUniformLocation(u.shader.ID, gl.Str("uColor\x00"))
	gl.Uniform4f(loc, color.X(), color.Y(), color.Z(), alpha)

	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// DrawText draws a text string at (x,y) in window pixels.
func (u *UI) DrawText(text string, x, y, scale float32, color mgl32.Vec3) {
	if u.fontRenderer == nil {
		return
	}
	u.fontRenderer.Render(text, x, y, scale, color)
}

// MeasureText returns the pixel size of text at the given scale.
func (u *UI) MeasureText(text string, scale float32) (float32, float32) {
	if u.fontRenderer == nil {
		return 0, 0
	}
	return u.fontRenderer.Measure(text, scale)
}
