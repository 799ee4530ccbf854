package widget

import (
	"ripple-tank/internal/graphics/renderables/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Slider is a horizontal drag control over a normalized 0..1 value. Drawing,
// hover feedback, and drag capture live in the ui layer; the widget owns the
// value and fires OnChange when it moves.
type Slider struct {
	BaseComponent
	Value    float32 // normalized 0..1
	Steps    int     // quantization steps; 0 or 1 leaves the value continuous
	ID       string  // drag-capture key, unique within the panel
	OnChange func(val float32)
}

func NewSlider(x, y, w, h float32, initialVal float32, steps int, id string, onChange func(val float32)) *Slider {
	return &Slider{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Value:         initialVal,
		Steps:         steps,
		ID:            id,
		OnChange:      onChange,
	}
}

func (s *Slider) Render(u *ui.UI, window *glfw.Window) {
	s.apply(u.DrawSlider(s.X, s.Y, s.W, s.H, s.Value, s.Steps, s.ID))
}

// apply stores a value coming back from the draw layer and notifies exactly
// once per change.
func (s *Slider) apply(v float32) {
	if v == s.Value {
		return
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// HandleInput is a no-op: clicks and drags on the track are consumed by the
// ui layer's drag capture during Render.
func (s *Slider) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	return false
}
