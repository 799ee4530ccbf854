package widget

import (
	"ripple-tank/internal/graphics/renderables/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type Button struct {
	BaseComponent
	Text      string
	OnClick   func()
	IsHovered bool

	NormalColor mgl32.Vec3
	HoverColor  mgl32.Vec3
	TextColor   mgl32.Vec3
}

func NewButton(text string, x, y, w, h float32, onClick func()) *Button {
	return &Button{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Text:          text,
		OnClick:       onClick,
		NormalColor:   mgl32.Vec3{0.3, 0.3, 0.3},
		HoverColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		TextColor:     mgl32.Vec3{1, 1, 1},
	}
}

func (b *Button) Render(u *ui.UI, window *glfw.Window) {
	b.IsHovered = b.underCursor(window)

	color := b.NormalColor
	if b.IsHovered {
		color = b.HoverColor
	}

	u.DrawFilledRect(b.X, b.Y, b.W, b.H, color, 1.0)

	// Size the label to roughly half the button height, then shrink it
	// further if it would overflow the width.
	_, rawH := u.MeasureText(b.Text, 1.0)
	if rawH == 0 {
		rawH = 20
	}

	targetH := b.H * 0.5
	textScale := targetH / rawH

	textW, _ := u.MeasureText(b.Text, textScale)
	maxW := b.W * 0.90
	if textW > maxW {
		correction := maxW / textW
		textScale *= correction
		targetH *= correction
		textW = maxW
	}

	// y is the text baseline; ~75% of the line height below the top works
	// well for this font.
	textX := b.X + (b.W-textW)/2
	textY := b.Y + (b.H-targetH)/2 + targetH*0.75
	u.DrawText(b.Text, textX, textY, textScale, b.TextColor)
}

func (b *Button) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	if b.IsHovered && justPressedLeft {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}
