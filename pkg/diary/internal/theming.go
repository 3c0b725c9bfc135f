package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"github.com/lounah/diary/pkg/diary/draw"
)

// Tag colour names accepted in theme files and by the Tag widget.
const (
	TagBrown  = "brown"
	TagGreen  = "green"
	TagPink   = "pink"
	TagRed    = "red"
	TagBlue   = "blue"
	TagYellow = "yellow"
	TagPurple = "purple"
)

// Theme defines the colours and fonts of every widget.
type Theme struct {
	BarBackground     draw.Color // Bottom bar and toolbar background
	PanelBackground   draw.Color // Expanded sheet
	ShadowColor       draw.Color // Dimmed area above the open sheet; alpha is animated
	ElevationStart    draw.Color // Outer edge of elevation shadows
	ElevationEnd      draw.Color // Edge of elevation shadows touching the surface
	IconColor         draw.Color // Bar and toolbar icons
	FabColor          draw.Color // Floating action button disc
	FabIconColor      draw.Color // Glyph on the FAB
	PressedColor      draw.Color // Touch feedback disc
	TextColor         draw.Color // Sheet rows, toolbar title
	HintColor         draw.Color // Sheet headers
	DividerColor      draw.Color // Sheet row dividers
	SelectedRowColor  draw.Color // Background of the selected sheet row
	TagColors         map[string]draw.Color
	TagDarkTextColors []string // Tag colours that need dark text for contrast
	FontPath          string   // Regular UI font
	BoldFontPath      string   // Bold UI font; falls back to FontPath
}

// DefaultTheme is the light diary palette.
func DefaultTheme() Theme {
	return Theme{
		BarBackground:    draw.White,
		PanelBackground:  draw.White,
		ShadowColor:      draw.Gray.WithAlpha(20),
		ElevationStart:   draw.Color{A: 0},
		ElevationEnd:     draw.Color{R: 0x9E, G: 0x9E, B: 0x9E, A: 75},
		IconColor:        draw.Black,
		FabColor:         draw.Black,
		FabIconColor:     draw.White,
		PressedColor:     draw.Black.WithAlpha(30),
		TextColor:        draw.Black,
		HintColor:        draw.FromColor(colornames.Dimgray),
		DividerColor:     draw.FromColor(colornames.Gainsboro),
		SelectedRowColor: draw.FromColor(colornames.Whitesmoke),
		TagColors: map[string]draw.Color{
			TagBrown:  draw.FromColor(colornames.Tan),
			TagGreen:  draw.FromColor(colornames.Seagreen),
			TagPink:   draw.FromColor(colornames.Hotpink),
			TagRed:    draw.FromColor(colornames.Crimson),
			TagBlue:   draw.FromColor(colornames.Royalblue),
			TagYellow: draw.FromColor(colornames.Gold),
			TagPurple: draw.FromColor(colornames.Plum),
		},
		TagDarkTextColors: []string{TagBrown, TagYellow, TagPurple},
		FontPath:          "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		BoldFontPath:      "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	}
}

// TagColor resolves a tag colour name, falling back to blue.
func (t Theme) TagColor(name string) draw.Color {
	if c, ok := t.TagColors[name]; ok {
		return c
	}
	return t.TagColors[TagBlue]
}

// TagTextColor picks black or white text for a tag colour name.
func (t Theme) TagTextColor(name string) draw.Color {
	for _, dark := range t.TagDarkTextColors {
		if dark == name {
			return draw.Black
		}
	}
	return draw.White
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	themeMu.Lock()
	currentTheme = theme
	themeMu.Unlock()
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// themeFile is the on-disk TOML shape. Every key is optional and overrides
// the matching default.
type themeFile struct {
	BarBackground    string            `toml:"bar_background"`
	PanelBackground  string            `toml:"panel_background"`
	ShadowColor      string            `toml:"shadow_color"`
	ElevationStart   string            `toml:"elevation_start"`
	ElevationEnd     string            `toml:"elevation_end"`
	IconColor        string            `toml:"icon_color"`
	FabColor         string            `toml:"fab_color"`
	FabIconColor     string            `toml:"fab_icon_color"`
	PressedColor     string            `toml:"pressed_color"`
	TextColor        string            `toml:"text_color"`
	HintColor        string            `toml:"hint_color"`
	DividerColor     string            `toml:"divider_color"`
	SelectedRowColor string            `toml:"selected_row_color"`
	FontPath         string            `toml:"font_path"`
	BoldFontPath     string            `toml:"bold_font_path"`
	Tags             map[string]string `toml:"tags"`
	DarkTextTags     []string          `toml:"dark_text_tags"`
}

// LoadTheme reads a TOML theme file on top of DefaultTheme.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	return ParseTheme(string(data))
}

// ParseTheme decodes TOML theme data on top of DefaultTheme.
func ParseTheme(data string) (Theme, error) {
	var file themeFile
	meta, err := toml.Decode(data, &file)
	if err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		GetInternalLogger().Warn("Ignoring unknown theme keys", "keys", fmt.Sprint(undecoded))
	}

	theme := DefaultTheme()
	fields := []struct {
		raw string
		dst *draw.Color
	}{
		{file.BarBackground, &theme.BarBackground},
		{file.PanelBackground, &theme.PanelBackground},
		{file.ShadowColor, &theme.ShadowColor},
		{file.ElevationStart, &theme.ElevationStart},
		{file.ElevationEnd, &theme.ElevationEnd},
		{file.IconColor, &theme.IconColor},
		{file.FabColor, &theme.FabColor},
		{file.FabIconColor, &theme.FabIconColor},
		{file.PressedColor, &theme.PressedColor},
		{file.TextColor, &theme.TextColor},
		{file.HintColor, &theme.HintColor},
		{file.DividerColor, &theme.DividerColor},
		{file.SelectedRowColor, &theme.SelectedRowColor},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		c, err := ParseHexColor(f.raw)
		if err != nil {
			return Theme{}, err
		}
		*f.dst = c
	}

	for name, raw := range file.Tags {
		c, err := ParseHexColor(raw)
		if err != nil {
			return Theme{}, fmt.Errorf("tag %q: %w", name, err)
		}
		theme.TagColors[strings.ToLower(name)] = c
	}
	if file.DarkTextTags != nil {
		theme.TagDarkTextColors = file.DarkTextTags
	}
	if file.FontPath != "" {
		theme.FontPath = file.FontPath
	}
	if file.BoldFontPath != "" {
		theme.BoldFontPath = file.BoldFontPath
	}

	return theme, nil
}

// ParseHexColor accepts #RRGGBB and #RRGGBBAA, with or without the leading '#'.
func ParseHexColor(raw string) (draw.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(s) != 6 && len(s) != 8 {
		return draw.Color{}, fmt.Errorf("invalid colour %q: want #RRGGBB or #RRGGBBAA", raw)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return draw.Color{}, fmt.Errorf("invalid colour %q: %w", raw, err)
	}
	if len(s) == 6 {
		return draw.Hex(uint32(v)), nil
	}
	return draw.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
