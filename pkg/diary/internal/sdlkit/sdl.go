// Package sdlkit is the SDL2 host layer: window, frame presentation, text and
// icon rendering of draw command lists.
package sdlkit

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/internal"
)

// Init brings up SDL, SDL_ttf and SDL_image and opens the window.
func Init(title string, winOpts internal.WindowOptions) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("ttf init: %w", err)
	}
	if err := img.Init(img.INIT_PNG); err != nil {
		internal.GetInternalLogger().Warn("SDL_image unavailable", "error", err)
	}

	// mouse and touch are handled separately by the host
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")
	sdl.SetHint(sdl.HINT_MOUSE_TOUCH_EVENTS, "0")

	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = internal.WindowOptions{Resizable: true}
		} else {
			winOpts = internal.WindowOptions{FullscreenDesktop: true, AllowHighDPI: true}
		}
	}

	window, err := newWindow(title, winOpts)
	if err != nil {
		ttf.Quit()
		img.Quit()
		sdl.Quit()
		return nil, err
	}
	return window, nil
}

// Cleanup tears down the window and SDL subsystems.
func Cleanup(window *Window) {
	if window != nil {
		window.close()
	}
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
