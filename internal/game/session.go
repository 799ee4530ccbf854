package game

import (
	"time"

	"ripple-tank/internal/config"
	"ripple-tank/internal/graphics"
	"ripple-tank/internal/graphics/renderables/hud"
	"ripple-tank/internal/graphics/renderables/surface"
	"ripple-tank/internal/graphics/renderables/tank"
	"ripple-tank/internal/graphics/renderables/ui"
	"ripple-tank/internal/graphics/renderables/wireframe"
	"ripple-tank/internal/graphics/renderer"
	standardInput "ripple-tank/internal/input"
	"ripple-tank/internal/profiling"
	"ripple-tank/internal/sim"
	"ripple-tank/internal/ui/panel"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// defaultGridDimension is the lattice size the app opens with.
const defaultGridDimension = 64

type Session struct {
	Window      *glfw.Window
	Renderer    *renderer.Renderer
	UIRenderer  *ui.UI
	HUDRenderer *hud.HUD
	Sim         *Simulation
	Panel       *panel.ControlPanel

	Frames           int
	LastFPSCheckTime time.Time
}

func NewSession(window *glfw.Window) (*Session, error) {
	grid, err := sim.New(defaultGridDimension)
	if err != nil {
		return nil, err
	}
	drops := sim.NewDropScheduler(time.Now().UnixNano())
	simulation := NewSimulation(grid, drops)

	// Aim at the middle of the lattice from far enough out to see all of it.
	edge := float32(defaultGridDimension - 1)
	target := mgl32.Vec3{edge / 2, 0, edge / 2}
	width, height := window.GetSize()
	camera := graphics.NewCamera(width, height, target, float64(defaultGridDimension)*1.8)

	// Initialize renderable features
	surfaceRenderer := surface.NewSurface(grid)
	wireframeRenderer := wireframe.NewWireframe(grid)
	tankRenderer := tank.NewTank(grid)
	uiRenderer := ui.NewUI()
	hudRenderer := hud.NewHUD()

	// Initialize renderer with all features
	r, err := renderer.NewRenderer(
		camera,
		surfaceRenderer,
		wireframeRenderer,
		tankRenderer,
		uiRenderer,
		hudRenderer,
	)
	if err != nil {
		return nil, err
	}

	uiRenderer.SetFontRenderer(hudRenderer.FontRenderer())
	r.UpdateViewport(width, height)

	return &Session{
		Window:           window,
		Renderer:         r,
		UIRenderer:       uiRenderer,
		HUDRenderer:      hudRenderer,
		Sim:              simulation,
		Panel:            panel.NewControlPanel(),
		LastFPSCheckTime: time.Now(),
	}, nil
}

func (s *Session) Cleanup() {
	s.Renderer.Dispose()

	// Explicilty nil out
	s.Renderer = nil
	s.UIRenderer = nil
	s.HUDRenderer = nil
	s.Sim = nil
	s.Panel = nil
}

func (s *Session) Update(dt float64, im *standardInput.InputManager) {
	// Panel first, so a click landing on a widget is consumed there.
	action := s.Panel.Update(s.Window, im.JustPressed(standardInput.ActionMouseLeft), s.Sim.Paused())
	switch action {
	case panel.ActionFlatten:
		s.Sim.RequestFlatten()
	case panel.ActionWaveWall:
		s.Sim.RequestWaveWall()
	case panel.ActionTogglePause:
		s.Sim.TogglePause()
	}

	s.handleInputActions(im)

	func() {
		defer profiling.Track("sim.Update")()
		s.Sim.Update(time.Now())
	}()

	s.HUDRenderer.SetPaused(s.Sim.Paused())
}

func (s *Session) Render(dt float64) time.Duration {
	renderStart := time.Now()
	s.Renderer.Render(s.Sim.Grid(), dt)

	// Control panel goes over the 3D view
	s.UIRenderer.BeginFrame(s.Window)
	s.Panel.Render(s.UIRenderer, s.Window)
	s.UIRenderer.Flush()

	renderDur := time.Since(renderStart)
	s.HUDRenderer.ProfilingSetRenderDuration(renderDur)

	s.Frames++
	if time.Since(s.LastFPSCheckTime) >= time.Second {
		s.Frames = 0
		s.LastFPSCheckTime = time.Now()
	}

	return renderDur
}

func (s *Session) handleInputActions(im *standardInput.InputManager) {
	if im.JustPressed(standardInput.ActionPause) {
		s.Sim.TogglePause()
	}
	if im.JustPressed(standardInput.ActionFlatten) {
		s.Sim.RequestFlatten()
	}
	if im.JustPressed(standardInput.ActionWaveWall) {
		s.Sim.RequestWaveWall()
	}
	if im.JustPressed(standardInput.ActionDrop) {
		s.Sim.RequestDrop()
	}
	if im.JustPressed(standardInput.ActionTogglePanel) {
		s.Panel.ToggleVisible()
	}
	if im.JustPressed(standardInput.ActionToggleMesh) {
		config.ToggleShowMesh()
	}
	if im.JustPressed(standardInput.ActionToggleProfiling) {
		s.HUDRenderer.ToggleProfiling()
	}
	if im.JustPressed(standardInput.ActionQuit) {
		s.Window.SetShouldClose(true)
	}
}

// RefreshRender redraws immediately. Wired to the window refresh callback so
// the view stays live during interactive resizes.
func (s *Session) RefreshRender() {
	dt := 0.016
	s.Renderer.Render(s.Sim.Grid(), dt)
	s.UIRenderer.BeginFrame(s.Window)
	s.Panel.Render(s.UIRenderer, s.Window)
	s.UIRenderer.Flush()
	s.Window.SwapBuffers()
}
