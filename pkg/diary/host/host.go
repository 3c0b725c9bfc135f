// Package host runs diary widgets in an SDL2 window: it owns the window, turns
// mouse, finger and raw touchscreen input into pointer events, advances
// animations each frame and draws the widgets' command lists.
package host

import (
	"log/slog"

	"github.com/lounah/diary/pkg/diary"
	"github.com/lounah/diary/pkg/diary/draw"
	"github.com/lounah/diary/pkg/diary/geom"
	"github.com/lounah/diary/pkg/diary/internal"
	"github.com/lounah/diary/pkg/diary/internal/sdlkit"
)

// App is an initialised SDL window with its renderer and fonts.
type App struct {
	opts     diary.Options
	metrics  geom.Metrics
	window   *sdlkit.Window
	fonts    *sdlkit.Fonts
	renderer *sdlkit.CommandRenderer
	log      *slog.Logger
}

// Init sets up logging, the locale and theme, then opens the window.
// Must be called from the main goroutine, before any other host function.
func Init(opts diary.Options) (*App, error) {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}
	if opts.LogLevel != "" {
		level := internal.ParseLogLevel(opts.LogLevel)
		internal.SetLogLevel(level)
		internal.SetInternalLogLevel(level)
	}

	if len(opts.Locale) > 0 {
		if err := diary.SetLocale(opts.Locale...); err != nil {
			return nil, err
		}
	}

	if opts.ThemePath != "" {
		theme, err := diary.LoadTheme(opts.ThemePath)
		if err != nil {
			return nil, err
		}
		diary.SetTheme(theme)
	}

	title := opts.WindowTitle
	if title == "" {
		title = diary.DefaultToolbarTitle()
	}
	window, err := sdlkit.Init(title, opts.WindowOptions)
	if err != nil {
		return nil, diary.NewInfrastructureError("init_window", err)
	}

	theme := diary.GetTheme()
	fonts, err := sdlkit.NewFonts(theme.FontPath, theme.BoldFontPath)
	if err != nil {
		sdlkit.Cleanup(window)
		return nil, diary.NewInfrastructureError("load_fonts", err)
	}

	app := &App{
		opts:     opts,
		metrics:  opts.Metrics(),
		window:   window,
		fonts:    fonts,
		renderer: sdlkit.NewCommandRenderer(window.Renderer, fonts),
		log:      internal.ComponentLogger("host"),
	}
	app.log.Debug("Host initialised", "title", title, "metrics", app.metrics)
	return app, nil
}

// Close releases all SDL resources.
// Must be called before program exit to prevent resource leaks.
func (a *App) Close() {
	a.renderer.Close()
	a.fonts.Close()
	sdlkit.Cleanup(a.window)
	internal.CloseLogger()
}

// Metrics is the density the widgets should be created with.
func (a *App) Metrics() geom.Metrics {
	return a.metrics
}

// Measurer measures text with the window's fonts.
func (a *App) Measurer() draw.TextMeasurer {
	return a.fonts
}

// Bounds is the full drawable area.
func (a *App) Bounds() geom.Rect {
	w, h := a.window.Size()
	return geom.NewRect(0, 0, float32(w), float32(h))
}

// HideWindow hides the application window.
func (a *App) HideWindow() {
	a.window.Window.Hide()
}

// ShowWindow shows the application window.
func (a *App) ShowWindow() {
	a.window.Window.Show()
}
