package sdlkit

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/internal"
)

const (
	devWindowWidth  = 412
	devWindowHeight = 892
)

// Window wraps the SDL window and renderer the widgets are drawn into.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

func newWindow(title string, winOpts internal.WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = devWindowWidth, devWindowHeight
	}
	return newWindowWithSize(title, displayMode.W, displayMode.H, winOpts)
}

func newWindowWithSize(title string, width, height int32, winOpts internal.WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		winOpts.FullscreenDesktop = false

		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, devWindowWidth)
		height = envDimension(constants.WindowHeightEnvVar, devWindowHeight)
	}

	internal.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, windowFlags(winOpts))
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable; using software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		_ = window.Destroy()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	_ = renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window dimension; using default", "env", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// Size is the drawable size in pixels.
func (w *Window) Size() (int32, int32) {
	width, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		return w.Window.GetSize()
	}
	return width, height
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		frame := uint64(constants.FrameInterval.Milliseconds())
		if elapsed := now - w.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) close() {
	if w.Renderer != nil {
		_ = w.Renderer.Destroy()
	}
	if w.Window != nil {
		_ = w.Window.Destroy()
	}
}
