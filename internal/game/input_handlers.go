package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	// Mouse position callback
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		// The camera ignores moves unless a drag is active.
		app.session.Renderer.GetCamera().CursorMoved(xpos, ypos)
	})

	// Mouse button callback
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		// Update InputManager state first (globally tracking inputs)
		im.HandleMouseButtonEvent(button, action)

		s := app.session
		camera := s.Renderer.GetCamera()
		x, y := w.GetCursorPos()

		switch button {
		case glfw.MouseButtonRight, glfw.MouseButtonMiddle:
			if action == glfw.Press {
				camera.StartDrag(x, y)
			} else if action == glfw.Release {
				camera.EndDrag()
			}
		case glfw.MouseButtonLeft:
			// A left click on the water drops a splash; clicks on the
			// panel belong to the widgets.
			if action == glfw.Press && !s.Panel.Contains(x, y) {
				s.Sim.RequestDrop()
			}
		}
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		app.session.Renderer.GetCamera().Scroll(yoff)
	})

	// Handle keyboard actions
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

		// UI layout runs in window (logical) coordinates, so the viewport
		// propagation gets the window size, not the framebuffer size.
		winW, winH := w.GetSize()
		app.session.Renderer.UpdateViewport(winW, winH)
		// NOTE: Do not render here. Rely on SetRefreshCallback for smooth resizing on macOS.
	})

	// Window size callback
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		app.session.Renderer.UpdateViewport(width, height)
	})

	// Focus callback
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			app.session.Sim.SetPaused(true)
		}
	})

	// Refresh callback
	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
