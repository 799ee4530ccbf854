package widget

import (
	"ripple-tank/internal/graphics/renderables/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Component is the contract panel widgets implement. Hover state is computed
// during Render and consumed by HandleInput on the following frame.
type Component interface {
	Render(u *ui.UI, window *glfw.Window)
	HandleInput(window *glfw.Window, justPressedLeft bool) bool
	SetPosition(x, y float32)
	SetSize(w, h float32)
	GetSize() (float32, float32)
}

// BaseComponent carries the shared rectangle geometry.
type BaseComponent struct {
	X, Y, W, H float32
}

func (b *BaseComponent) SetPosition(x, y float32)    { b.X, b.Y = x, y }
func (b *BaseComponent) SetSize(w, h float32)        { b.W, b.H = w, h }
func (b *BaseComponent) GetSize() (float32, float32) { return b.W, b.H }

// underCursor reports whether the mouse is inside the component rectangle.
func (b *BaseComponent) underCursor(window *glfw.Window) bool {
	mx, my := window.GetCursorPos()
	fx, fy := float32(mx), float32(my)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}
