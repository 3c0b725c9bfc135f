package sdlkit

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/lounah/diary/pkg/diary/internal"
)

// windowFlags converts the options to SDL_CreateWindow flags.
func windowFlags(wo internal.WindowOptions) uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	if wo.Maximized {
		flags |= sdl.WINDOW_MAXIMIZED
	}

	if wo.AllowHighDPI {
		flags |= sdl.WINDOW_ALLOW_HIGHDPI
	}

	return flags
}
