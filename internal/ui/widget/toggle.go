package widget

import (
	"ripple-tank/internal/graphics/renderables/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type Toggle struct {
	BaseComponent
	Label     string
	IsOn      bool
	OnToggle  func(isOn bool)
	IsHovered bool
}

func NewToggle(label string, x, y, w, h float32, initial bool, onToggle func(isOn bool)) *Toggle {
	return &Toggle{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Label:         label,
		IsOn:          initial,
		OnToggle:      onToggle,
	}
}

func (t *Toggle) Render(u *ui.UI, window *glfw.Window) {
	t.IsHovered = t.underCursor(window)

	bgColor := mgl32.Vec3{0.2, 0.2, 0.2}
	if t.IsOn {
		bgColor = mgl32.Vec3{0.2, 0.5, 0.2} // Green when enabled
	} else {
		bgColor = mgl32.Vec3{0.5, 0.2, 0.2} // Red when disabled
	}
	if t.IsHovered {
		bgColor = bgColor.Mul(1.2) // Brighten on hover
	}

	u.DrawFilledRect(t.X, t.Y, t.W, t.H, bgColor, 0.85)

	// The label sits outside the box, so the caller places it.
}

func (t *Toggle) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	if t.IsHovered && justPressedLeft {
		t.IsOn = !t.IsOn
		if t.OnToggle != nil {
			t.OnToggle(t.IsOn)
		}
		return true
	}
	return false
}
