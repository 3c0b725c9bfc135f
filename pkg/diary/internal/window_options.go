package internal

// WindowOptions selects SDL window flags. The zero value picks platform defaults.
type WindowOptions struct {
	Borderless        bool `toml:"borderless"`         // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool `toml:"resizable"`          // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool `toml:"fullscreen"`         // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool `toml:"fullscreen_desktop"` // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop       bool `toml:"always_on_top"`      // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Maximized         bool `toml:"maximized"`          // Start maximized (SDL_WINDOW_MAXIMIZED)
	Hidden            bool `toml:"hidden"`             // Start hidden (omits SDL_WINDOW_SHOWN)
	AllowHighDPI      bool `toml:"allow_high_dpi"`     // Request a full resolution drawable (SDL_WINDOW_ALLOW_HIGHDPI)
}

// IsZero reports whether no option was set.
func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}
