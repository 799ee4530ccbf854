package game

import (
	"log"
	"time"

	standardInput "ripple-tank/internal/input"
	"ripple-tank/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type App struct {
	window       *glfw.Window
	inputManager *standardInput.InputManager

	session *Session

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

func NewApp(window *glfw.Window, im *standardInput.InputManager) (*App, error) {
	session, err := NewSession(window)
	if err != nil {
		return nil, err
	}

	return &App{
		window:       window,
		inputManager: im,
		session:      session,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}, nil
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
	a.session.Cleanup()
}

func (a *App) Session() *Session {
	return a.session
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	updateStart := time.Now()
	a.session.Update(dt, a.inputManager)
	a.session.HUDRenderer.ProfilingSetLastUpdateDuration(time.Since(updateStart))

	a.session.Render(dt)

	a.window.SwapBuffers()

	// Check if frame took too long (> 16ms)
	processingDuration := time.Since(startTick)
	if processingDuration > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}
	a.session.HUDRenderer.ProfilingSetLastTotalFrameDuration(processingDuration)

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	// FPS limit
	a.fpsLimiter.Wait(a.session.Sim.Paused())
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	a.session.RefreshRender()
}
