package sdlkit

import (
	"fmt"
	"math"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/lounah/diary/pkg/diary/draw"
	"github.com/lounah/diary/pkg/diary/internal"
)

type fontKey struct {
	size int
	bold bool
}

// Fonts opens TTF fonts on demand at each requested pixel size and measures
// text with them.
type Fonts struct {
	regularPath string
	boldPath    string
	fonts       map[fontKey]*ttf.Font
}

// NewFonts verifies the regular font can be opened. An empty bold path reuses
// the regular font with a synthetic bold style.
func NewFonts(regularPath, boldPath string) (*Fonts, error) {
	f := &Fonts{
		regularPath: regularPath,
		boldPath:    boldPath,
		fonts:       make(map[fontKey]*ttf.Font),
	}
	if _, err := f.Font(16, false); err != nil {
		return nil, err
	}
	return f, nil
}

// Font returns the font for a pixel size, opening it if needed.
func (f *Fonts) Font(size float32, bold bool) (*ttf.Font, error) {
	key := fontKey{size: int(math.Round(float64(size))), bold: bold}
	if key.size < 1 {
		key.size = 1
	}
	if font, ok := f.fonts[key]; ok {
		return font, nil
	}

	path := f.regularPath
	synthetic := false
	if bold {
		if f.boldPath != "" {
			path = f.boldPath
		} else {
			synthetic = true
		}
	}

	font, err := ttf.OpenFont(path, key.size)
	if err != nil {
		if bold && !synthetic {
			internal.GetInternalLogger().Warn("Bold font unavailable; using regular", "path", path, "error", err)
			f.boldPath = ""
			return f.Font(size, bold)
		}
		return nil, fmt.Errorf("opening font %s at %dpx: %w", path, key.size, err)
	}
	if synthetic {
		font.SetStyle(ttf.STYLE_BOLD)
	}
	f.fonts[key] = font
	return font, nil
}

// MeasureText implements draw.TextMeasurer. Unopenable fonts measure as empty.
func (f *Fonts) MeasureText(text string, size float32, bold bool) draw.TextMetrics {
	font, err := f.Font(size, bold)
	if err != nil {
		internal.GetInternalLogger().Error("Cannot measure text", "error", err)
		return draw.TextMetrics{}
	}
	m := draw.TextMetrics{
		Ascent:  float32(font.Ascent()),
		Descent: float32(-font.Descent()),
	}
	if text != "" {
		w, _, err := font.SizeUTF8(text)
		if err == nil {
			m.Width = float32(w)
		}
	}
	return m
}

// Close releases every opened font.
func (f *Fonts) Close() {
	for key, font := range f.fonts {
		font.Close()
		delete(f.fonts, key)
	}
}
