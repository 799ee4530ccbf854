package panel

import (
	"fmt"

	"ripple-tank/internal/config"
	"ripple-tank/internal/graphics/renderables/ui"
	"ripple-tank/internal/ui/widget"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Panel layout in window pixels. The panel is docked to the top-left corner.
const (
	panelX = float32(16)
	panelY = float32(16)
	panelW = float32(252)
	panelH = float32(480)

	padX    = float32(14)
	rowStep = float32(46)
	sliderW = float32(150)
	sliderH = float32(14)
)

// ControlPanel is the docked settings panel: sliders bound to the rain and
// timing configuration, plus flatten/wave buttons and the pause toggle.
type ControlPanel struct {
	visible bool

	dropPeriod *widget.Slider
	dropPeak   *widget.Slider
	peakJitter *widget.Slider
	dropWidth  *widget.Slider
	simPeriod  *widget.Slider
	fpsLimit   *widget.Slider
	mesh       *widget.Toggle
	paused     *widget.Toggle
	flatten    *widget.Button
	wave       *widget.Button
	clickables []widget.Component

	shouldFlatten     bool
	shouldWave        bool
	shouldTogglePause bool
}

func NewControlPanel() *ControlPanel {
	cp := &ControlPanel{visible: true}

	// Initialize sliders from the current config. Each OnChange writes the
	// mapped value straight back; the getters are the source of truth for
	// the value labels.

	// Drop period: 5-500 ms.
	curPeriod := config.GetRainPeriodMs()
	periodVal := float32(curPeriod-5) / float32(500-5)
	cp.dropPeriod = widget.NewSlider(0, 0, sliderW, sliderH, clamp01(periodVal), 100, "dropPeriod", func(val float32) {
		config.SetRainPeriodMs(float64(int(5 + val*495 + 0.5)))
	})

	// Drop peak: -12..12, integer steps. Negative pulls the surface down.
	curPeak := config.GetRainBasePeak()
	peakVal := (curPeak + 12) / 24
	cp.dropPeak = widget.NewSlider(0, 0, sliderW, sliderH, clamp01(peakVal), 25, "dropPeak", func(val float32) {
		config.SetRainBasePeak(float32(int(val*24+0.5)) - 12)
	})

	// Peak jitter: 0..6 in half steps.
	curJitter := config.GetRainDelta()
	jitterVal := curJitter / 6
	cp.peakJitter = widget.NewSlider(0, 0, sliderW, sliderH, clamp01(jitterVal), 13, "peakJitter", func(val float32) {
		config.SetRainDelta(float32(int(val*12+0.5)) / 2)
	})

	// Drop width: 1..24 cells. The simulation clamps it further against the
	// grid dimension.
	curWidth := config.GetRainWidth()
	widthVal := float32(curWidth-1) / float32(24-1)
	cp.dropWidth = widget.NewSlider(0, 0, sliderW, sliderH, clamp01(widthVal), 24, "dropWidth", func(val float32) {
		config.SetRainWidth(int(1 + val*23 + 0.5))
	})

	// Sim step period: 0-200 ms in 5 ms steps. 0 steps every frame.
	curSim := config.GetRenderPeriodMs()
	simVal := float32(curSim) / 200
	cp.simPeriod = widget.NewSlider(0, 0, sliderW, sliderH, clamp01(simVal), 41, "simPeriod", func(val float32) {
		config.SetRenderPeriodMs(int(val*40+0.5) * 5)
	})

	// FPS Limit: Range 30-240 (mapped), 0 (uncapped) at max.
	// Logic: 0.0-0.9 -> 30-240. >0.9 -> Uncapped.
	curFPS := config.GetFPSLimit()
	var fpsVal float32
	if curFPS <= 0 {
		fpsVal = 1.0
	} else {
		fpsVal = float32(curFPS-30) / float32(240-30)
		if fpsVal > 0.95 {
			fpsVal = 0.95 // Keep it within range to avoid accidental uncapped visual jump
		}
	}
	cp.fpsLimit = widget.NewSlider(0, 0, sliderW, sliderH, clamp01(fpsVal), 211, "fpsLimit", func(val float32) {
		if val > 0.99 {
			config.SetFPSLimit(0)
		} else {
			limit := int(30 + val*210 + 0.5)
			config.SetFPSLimit(limit)
		}
	})

	cp.mesh = widget.NewToggle("Mesh Lines", 0, 0, 40, 18, config.GetShowMesh(), func(isOn bool) {
		config.SetShowMesh(isOn)
	})

	cp.paused = widget.NewToggle("Simulation", 0, 0, 40, 18, false, func(isOn bool) {
		cp.shouldTogglePause = true
	})

	cp.flatten = widget.NewButton("Flatten", 0, 0, 104, 28, func() {
		cp.shouldFlatten = true
	})
	cp.flatten.NormalColor = mgl32.Vec3{0.2, 0.2, 0.2}
	cp.flatten.HoverColor = mgl32.Vec3{0.3, 0.3, 0.3}

	cp.wave = widget.NewButton("Wave Wall", 0, 0, 104, 28, func() {
		cp.shouldWave = true
	})
	cp.wave.NormalColor = mgl32.Vec3{0.2, 0.2, 0.2}
	cp.wave.HoverColor = mgl32.Vec3{0.3, 0.3, 0.3}

	cp.clickables = []widget.Component{cp.mesh, cp.paused, cp.flatten, cp.wave}

	return cp
}

func (p *ControlPanel) Visible() bool { return p.visible }

func (p *ControlPanel) ToggleVisible() { p.visible = !p.visible }

// Contains reports whether a window-space point falls inside the panel.
// Used to keep panel clicks from starting a camera drag.
func (p *ControlPanel) Contains(x, y float64) bool {
	if !p.visible {
		return false
	}
	fx, fy := float32(x), float32(y)
	return fx >= panelX && fx <= panelX+panelW && fy >= panelY && fy <= panelY+panelH
}

func (p *ControlPanel) Update(window *glfw.Window, justPressedLeft bool, paused bool) Action {
	p.shouldFlatten = false
	p.shouldWave = false
	p.shouldTogglePause = false

	// Pause and mesh lines can also be toggled from the keyboard, so resync
	// the visuals.
	p.paused.IsOn = paused
	p.mesh.IsOn = config.GetShowMesh()

	if !p.visible {
		return ActionNone
	}

	// Sliders handle input inside DrawSlider; clicks only need to reach the
	// toggles and the buttons.
	for _, c := range p.clickables {
		c.HandleInput(window, justPressedLeft)
	}

	if p.shouldFlatten {
		return ActionFlatten
	}
	if p.shouldWave {
		return ActionWaveWall
	}
	if p.shouldTogglePause {
		return ActionTogglePause
	}
	return ActionNone
}

func (p *ControlPanel) Render(u *ui.UI, window *glfw.Window) {
	if !p.visible {
		return
	}

	u.DrawFilledRect(panelX, panelY, panelW, panelH, mgl32.Vec3{0.05, 0.05, 0.07}, 0.78)

	x := panelX + padX
	y := panelY + 26

	u.DrawText("RIPPLE TANK", x, y, 1.0, mgl32.Vec3{1, 1, 1})
	y += 30

	y = p.sliderRow(u, window, p.dropPeriod, "Drop Period", x, y,
		fmt.Sprintf("%d ms", int(config.GetRainPeriodMs())))

	y = p.sliderRow(u, window, p.dropPeak, "Drop Peak", x, y,
		fmt.Sprintf("%.0f", config.GetRainBasePeak()))

	y = p.sliderRow(u, window, p.peakJitter, "Peak Jitter", x, y,
		fmt.Sprintf("%.1f", config.GetRainDelta()))

	y = p.sliderRow(u, window, p.dropWidth, "Drop Width", x, y,
		fmt.Sprintf("%d", config.GetRainWidth()))

	simText := fmt.Sprintf("%d ms", config.GetRenderPeriodMs())
	if config.GetRenderPeriodMs() == 0 {
		simText = "every frame"
	}
	y = p.sliderRow(u, window, p.simPeriod, "Step Period", x, y, simText)

	fpsText := "Uncapped"
	if limit := config.GetFPSLimit(); limit > 0 {
		fpsText = fmt.Sprintf("%d FPS", limit)
	}
	y = p.sliderRow(u, window, p.fpsLimit, "FPS Limit", x, y, fpsText)

	// Mesh lines toggle
	u.DrawText(p.mesh.Label, x, y, 1.0, mgl32.Vec3{1, 1, 1})
	p.mesh.SetPosition(x, y+7)
	p.mesh.Render(u, window)
	meshText := "off"
	if p.mesh.IsOn {
		meshText = "on"
	}
	u.DrawText(meshText, x+p.mesh.W+10, y+21, 1.0, mgl32.Vec3{0.8, 0.8, 0.8})
	y += rowStep

	// Pause toggle
	u.DrawText(p.paused.Label, x, y, 1.0, mgl32.Vec3{1, 1, 1})
	p.paused.SetPosition(x, y+7)
	p.paused.Render(u, window)
	statusText := "running"
	if p.paused.IsOn {
		statusText = "paused"
	}
	u.DrawText(statusText, x+p.paused.W+10, y+21, 1.0, mgl32.Vec3{0.8, 0.8, 0.8})
	y += rowStep

	p.flatten.SetPosition(x, y)
	p.flatten.Render(u, window)
	p.wave.SetPosition(x+114, y)
	p.wave.Render(u, window)
}

// sliderRow draws a label, the slider below it and the current value to its
// right. Returns the y of the next row.
func (p *ControlPanel) sliderRow(u *ui.UI, window *glfw.Window, s *widget.Slider, label string, x, y float32, valueText string) float32 {
	u.DrawText(label, x, y, 1.0, mgl32.Vec3{1, 1, 1})
	s.SetPosition(x, y+7)
	s.Render(u, window)
	u.DrawText(valueText, x+sliderW+10, y+19, 1.0, mgl32.Vec3{0.8, 0.8, 0.8})
	return y + rowStep
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
