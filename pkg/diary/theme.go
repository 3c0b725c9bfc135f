package diary

import "github.com/lounah/diary/pkg/diary/internal"

// Theme holds the colours and fonts of every widget.
type Theme = internal.Theme

// Tag colour names.
const (
	TagBrown  = internal.TagBrown
	TagGreen  = internal.TagGreen
	TagPink   = internal.TagPink
	TagRed    = internal.TagRed
	TagBlue   = internal.TagBlue
	TagYellow = internal.TagYellow
	TagPurple = internal.TagPurple
)

// DefaultTheme returns the built-in light palette.
func DefaultTheme() Theme {
	return internal.DefaultTheme()
}

// LoadTheme reads a TOML theme file; unset keys keep their defaults.
func LoadTheme(path string) (Theme, error) {
	theme, err := internal.LoadTheme(path)
	if err != nil {
		return Theme{}, NewInfrastructureError("load_theme", err)
	}
	return theme, nil
}

// SetTheme replaces the theme new widgets pick up by default.
func SetTheme(theme Theme) {
	internal.SetTheme(theme)
}

// GetTheme returns the theme new widgets pick up by default.
func GetTheme() Theme {
	return internal.GetTheme()
}
