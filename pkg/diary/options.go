package diary

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/geom"
	"github.com/lounah/diary/pkg/diary/internal"
)

// WindowOptions selects SDL window flags.
type WindowOptions = internal.WindowOptions

// Options configures the host: window, logging, theme, locale and input.
type Options struct {
	WindowTitle   string        `toml:"window_title"` // Window title displayed in windowed mode
	WindowOptions WindowOptions `toml:"window"`       // SDL window flags (borderless, resizable, etc.)
	LogPath       string        `toml:"log_path"`     // Full path for log file including filename
	LogLevel      string        `toml:"log_level"`    // debug, info, warn or error
	ThemePath     string        `toml:"theme_path"`   // TOML theme file; empty for the built-in theme
	WatchTheme    bool          `toml:"watch_theme"`  // Reload the theme file when it changes
	Locale        []string      `toml:"locale"`       // Preferred languages, most preferred first
	DensityDPI    int           `toml:"density_dpi"`  // Display density; zero for 160
	FontScale     float32       `toml:"font_scale"`   // User font scale; zero for 1
	TouchDevice   string        `toml:"touch_device"` // evdev touchscreen; empty to use SDL input
	GrabTouch     bool          `toml:"grab_touch"`   // Take the touch device exclusively
}

// DefaultOptions returns the options used when no file is given.
func DefaultOptions() Options {
	return Options{
		WindowTitle: "Diary",
		LogLevel:    "error",
		Locale:      []string{"en"},
		DensityDPI:  geom.BaselineDPI,
		FontScale:   1,
	}
}

// LoadOptions reads a TOML options file over DefaultOptions and applies
// environment overrides.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, NewInfrastructureError("load_options", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		internal.GetInternalLogger().Warn("Unknown option keys ignored", "path", path, "keys", fmt.Sprint(undecoded))
	}
	opts.ApplyEnv()
	return opts, nil
}

// ApplyEnv overrides density, theme and touch device from the environment.
func (o *Options) ApplyEnv() {
	if v := os.Getenv(constants.DensityDPIEnvVar); v != "" {
		if dpi, err := strconv.Atoi(v); err == nil && dpi > 0 {
			o.DensityDPI = dpi
		} else {
			internal.GetInternalLogger().Warn("Invalid density; ignoring", "env", constants.DensityDPIEnvVar, "value", v)
		}
	}
	if v := os.Getenv(constants.ThemePathEnvVar); v != "" {
		o.ThemePath = v
	}
	if v := os.Getenv(constants.TouchDeviceEnvVar); v != "" {
		o.TouchDevice = v
	}
}

// Metrics converts the density settings for widgets.
func (o Options) Metrics() geom.Metrics {
	m := geom.Metrics{DensityDPI: o.DensityDPI, FontScale: o.FontScale}
	if m.DensityDPI <= 0 {
		m.DensityDPI = geom.BaselineDPI
	}
	if m.FontScale <= 0 {
		m.FontScale = 1
	}
	return m
}
