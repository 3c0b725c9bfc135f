// Package draw describes what a widget wants on screen as a flat list of
// commands. Widgets build command lists from their state; a host renderer
// turns them into pixels. Nothing in this package touches a real canvas.
package draw

import (
	"image/color"

	"github.com/lounah/diary/pkg/diary/geom"
)

// Color is a straight (non-premultiplied) RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// Hex builds an opaque colour from 0xRRGGBB.
func Hex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// FromColor converts any image/color value, un-premultiplying its channels.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// WithAlpha returns the colour with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Black = Color{A: 255}
	Gray  = Color{R: 0x88, G: 0x88, B: 0x88, A: 255}
)

// Command is a single drawing instruction.
type Command interface {
	command()
}

// FillRect paints a solid rectangle.
type FillRect struct {
	Rect  geom.Rect
	Color Color
}

// FillRoundRect paints a rectangle with all four corners rounded.
type FillRoundRect struct {
	Rect   geom.Rect
	Radius float32
	Color  Color
}

// FillCircle paints a solid disc.
type FillCircle struct {
	Center geom.Point
	Radius float32
	Color  Color
}

// VerticalGradient paints a rectangle blending From at the top edge to To at the bottom edge.
type VerticalGradient struct {
	Rect geom.Rect
	From Color
	To   Color
}

// Icon paints a named vector icon scaled into Rect and tinted with Color.
type Icon struct {
	Name  string
	Rect  geom.Rect
	Color Color
}

// Text paints a single line of text whose baseline starts at (X, Baseline).
type Text struct {
	Text     string
	X        float32
	Baseline float32
	Size     float32
	Bold     bool
	Color    Color
}

func (FillRect) command()         {}
func (FillRoundRect) command()    {}
func (FillCircle) command()       {}
func (VerticalGradient) command() {}
func (Icon) command()             {}
func (Text) command()             {}

// Renderer consumes command lists produced by widgets.
type Renderer interface {
	Render(commands []Command) error
}

// TextMetrics describes a measured run of text. Ascent and Descent are both
// positive distances from the baseline.
type TextMetrics struct {
	Width   float32
	Ascent  float32
	Descent float32
}

// Height is the distance from the top of the tallest glyph to the bottom of the lowest.
func (m TextMetrics) Height() float32 {
	return m.Ascent + m.Descent
}

// TextMeasurer measures text for layout. The SDL host backs it with TTF fonts.
type TextMeasurer interface {
	MeasureText(text string, size float32, bold bool) TextMetrics
}
