package hud

import (
	"fmt"
	"time"

	"ripple-tank/internal/graphics"
	"ripple-tank/internal/graphics/renderer"
	"ripple-tank/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the status line and the optional profiling overlay.
type HUD struct {
	fontAtlas    *graphics.FontAtlasInfo
	fontRenderer *graphics.FontRenderer

	showProfiling bool
	paused        bool

	// FPS tracking
	frames       int
	lastFPSCheck time.Time
	currentFPS   int

	// Rolling render timing fed from the main loop
	renderHistory []time.Duration
	avgRender     time.Duration
	maxRender     time.Duration
	lastTotal     time.Duration
	lastUpdate    time.Duration
}

func NewHUD() *HUD {
	return &HUD{}
}

// Init bakes the font atlas and sets up the text renderer.
func (h *HUD) Init() error {
	atlas, err := graphics.BuildFontAtlas(basicfont.Face7x13)
	if err != nil {
		return err
	}

	fontRenderer, err := graphics.NewFontRenderer(atlas)
	if err != nil {
		return err
	}

	h.fontAtlas = atlas
	h.fontRenderer = fontRenderer
	return nil
}

// FontRenderer exposes the shared text renderer so the UI layer can draw
// through the same atlas.
func (h *HUD) FontRenderer() *graphics.FontRenderer {
	return h.fontRenderer
}

// Render draws the status line and, if enabled, the profiling overlay.
func (h *HUD) Render(ctx renderer.RenderContext) {
	if h.fontRenderer == nil {
		return
	}

	h.frames++
	if time.Since(h.lastFPSCheck) >= time.Second {
		h.currentFPS = h.frames
		h.lastFPSCheck = time.Now()
		h.frames = 0
	}

	h.renderStatusLine(ctx)

	if h.showProfiling {
		func() {
			defer profiling.Track("renderer.hud")()
			h.renderProfilingInfo()
		}()
	}
}

func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
	}
}

// SetViewport forwards the window size to the text projection.
func (h *HUD) SetViewport(width, height int) {
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(float32(width), float32(height))
	}
}

// SetPaused records the simulation state shown in the status line.
func (h *HUD) SetPaused(paused bool) {
	h.paused = paused
}

// ToggleProfiling toggles profiling HUD visibility
func (h *HUD) ToggleProfiling() {
	h.showProfiling = !h.showProfiling
}

// ShowProfiling returns whether profiling is enabled
func (h *HUD) ShowProfiling() bool {
	return h.showProfiling
}

// ProfilingSetRenderDuration stores the render() call duration for this frame
// and updates the rolling average over the last 60 frames.
func (h *HUD) ProfilingSetRenderDuration(d time.Duration) {
	if len(h.renderHistory) >= 60 {
		h.renderHistory = h.renderHistory[1:]
	}
	h.renderHistory = append(h.renderHistory, d)

	var total time.Duration
	max := time.Duration(0)
	for _, v := range h.renderHistory {
		total += v
		if v > max {
			max = v
		}
	}
	h.avgRender = total / time.Duration(len(h.renderHistory))
	h.maxRender = max
}

// ProfilingSetLastTotalFrameDuration stores the previous whole-frame duration.
func (h *HUD) ProfilingSetLastTotalFrameDuration(d time.Duration) {
	h.lastTotal = d
}

// ProfilingSetLastUpdateDuration stores the previous update-phase duration.
func (h *HUD) ProfilingSetLastUpdateDuration(d time.Duration) {
	h.lastUpdate = d
}

func (h *HUD) renderStatusLine(ctx renderer.RenderContext) {
	dim := 0
	if ctx.Grid != nil {
		dim = ctx.Grid.Dimension()
	}
	text := fmt.Sprintf("FPS: %d | grid %dx%d", h.currentFPS, dim, dim)
	if h.paused {
		text += " | PAUSED"
	}

	winW, _ := h.fontRenderer.ViewportSize()
	tw, _ := h.fontRenderer.Measure(text, 1.0)
	h.fontRenderer.Render(text, winW-tw-10, 22, 1.0, mgl32.Vec3{1, 1, 1})
}

func (h *HUD) renderProfilingInfo() {
	lines := make([]string, 0, 16)

	avgMs := float64(h.avgRender.Microseconds()) / 1000.0
	maxMs := float64(h.maxRender.Microseconds()) / 1000.0
	lines = append(lines, fmt.Sprintf("Frame(render): %.2fms avg | %.2fms max", avgMs, maxMs))

	if h.lastUpdate > 0 {
		updateMs := float64(h.lastUpdate.Microseconds()) / 1000.0
		lines = append(lines, fmt.Sprintf("Frame(update): %.2fms", updateMs))
	}

	if h.lastTotal > 0 {
		totalMs := float64(h.lastTotal.Microseconds()) / 1000.0
		lines = append(lines, fmt.Sprintf("Frame(total): %.2fms", totalMs))
	}

	// Top tracked sections this frame
	for _, e := range profiling.Top(8) {
		if e.Dur < 10*time.Microsecond {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %.2fms", e.Name, float64(e.Dur.Microseconds())/1000.0))
	}

	lines = append(lines,
		"",
		"space pause | f flatten | w wave",
		"n drop | tab panel | g mesh | p overlay",
		"right-drag orbit | scroll zoom | esc quit",
	)

	_, winH := h.fontRenderer.ViewportSize()
	lineStep := float32(17)
	startY := winH - float32(len(lines))*lineStep - 10
	h.fontRenderer.RenderLines(lines, 10, startY, lineStep, 1.0, mgl32.Vec3{1, 1, 1})
}
