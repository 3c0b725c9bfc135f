package sdlkit

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/lounah/diary/pkg/diary/draw"
	"github.com/lounah/diary/pkg/diary/internal"
)

const (
	iconCacheSize = 64
	textCacheSize = 128
)

// CommandRenderer draws command lists with an SDL renderer. Icon and text
// textures are kept in LRU caches keyed by their content.
type CommandRenderer struct {
	renderer *sdl.Renderer
	fonts    *Fonts
	icons    *internal.Cache[*sdl.Texture]
	texts    *internal.Cache[*sdl.Texture]
}

// NewCommandRenderer creates a renderer drawing into r with the given fonts.
func NewCommandRenderer(r *sdl.Renderer, fonts *Fonts) *CommandRenderer {
	destroy := func(_ string, t *sdl.Texture) { _ = t.Destroy() }
	return &CommandRenderer{
		renderer: r,
		fonts:    fonts,
		icons:    internal.NewCache(iconCacheSize, destroy),
		texts:    internal.NewCache(textCacheSize, destroy),
	}
}

// Clear fills the whole target with c.
func (cr *CommandRenderer) Clear(c draw.Color) error {
	if err := cr.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return cr.renderer.Clear()
}

// Render implements draw.Renderer. Every command is attempted; the errors of
// the ones that failed are joined.
func (cr *CommandRenderer) Render(commands []draw.Command) error {
	var errs []error
	for _, cmd := range commands {
		if err := cr.render(cmd); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (cr *CommandRenderer) render(cmd draw.Command) error {
	switch c := cmd.(type) {
	case draw.FillRect:
		return cr.fillRect(c)
	case draw.FillRoundRect:
		return cr.fillRoundRect(c)
	case draw.FillCircle:
		return cr.fillCircle(c)
	case draw.VerticalGradient:
		return cr.gradient(c)
	case draw.Icon:
		return cr.icon(c)
	case draw.Text:
		return cr.text(c)
	default:
		return fmt.Errorf("unsupported draw command %T", cmd)
	}
}

func toSDLRect(left, top, right, bottom float32) sdl.Rect {
	x := int32(math.Round(float64(left)))
	y := int32(math.Round(float64(top)))
	return sdl.Rect{
		X: x,
		Y: y,
		W: int32(math.Round(float64(right))) - x,
		H: int32(math.Round(float64(bottom))) - y,
	}
}

func (cr *CommandRenderer) fillRect(c draw.FillRect) error {
	if c.Rect.IsEmpty() {
		return nil
	}
	rect := toSDLRect(c.Rect.Left, c.Rect.Top, c.Rect.Right, c.Rect.Bottom)
	if err := cr.renderer.SetDrawColor(c.Color.R, c.Color.G, c.Color.B, c.Color.A); err != nil {
		return err
	}
	return cr.renderer.FillRect(&rect)
}

func (cr *CommandRenderer) fillRoundRect(c draw.FillRoundRect) error {
	if c.Rect.IsEmpty() {
		return nil
	}
	rect := toSDLRect(c.Rect.Left, c.Rect.Top, c.Rect.Right, c.Rect.Bottom)
	radius := int32(c.Radius)
	if maxRadius := min(rect.W, rect.H) / 2; radius > maxRadius {
		radius = maxRadius
	}
	if !gfx.RoundedBoxRGBA(cr.renderer, rect.X, rect.Y, rect.X+rect.W-1, rect.Y+rect.H-1, radius,
		c.Color.R, c.Color.G, c.Color.B, c.Color.A) {
		return fmt.Errorf("rounded box: %v", sdl.GetError())
	}
	return nil
}

func (cr *CommandRenderer) fillCircle(c draw.FillCircle) error {
	if c.Radius <= 0 {
		return nil
	}
	if !gfx.FilledCircleRGBA(cr.renderer,
		int32(math.Round(float64(c.Center.X))), int32(math.Round(float64(c.Center.Y))),
		int32(math.Round(float64(c.Radius))),
		c.Color.R, c.Color.G, c.Color.B, c.Color.A) {
		return fmt.Errorf("filled circle: %v", sdl.GetError())
	}
	return nil
}

func (cr *CommandRenderer) gradient(c draw.VerticalGradient) error {
	rect := toSDLRect(c.Rect.Left, c.Rect.Top, c.Rect.Right, c.Rect.Bottom)
	if rect.W <= 0 || rect.H <= 0 {
		return nil
	}
	lerp := func(a, b uint8, t float64) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	for row := int32(0); row < rect.H; row++ {
		t := 0.0
		if rect.H > 1 {
			t = float64(row) / float64(rect.H-1)
		}
		if err := cr.renderer.SetDrawColor(
			lerp(c.From.R, c.To.R, t),
			lerp(c.From.G, c.To.G, t),
			lerp(c.From.B, c.To.B, t),
			lerp(c.From.A, c.To.A, t),
		); err != nil {
			return err
		}
		y := rect.Y + row
		if err := cr.renderer.DrawLine(rect.X, y, rect.X+rect.W-1, y); err != nil {
			return err
		}
	}
	return nil
}

func (cr *CommandRenderer) icon(c draw.Icon) error {
	dst := toSDLRect(c.Rect.Left, c.Rect.Top, c.Rect.Right, c.Rect.Bottom)
	if dst.W <= 0 || dst.H <= 0 {
		return nil
	}
	size := int(max(dst.W, dst.H))
	key := internal.IconCacheKey(c.Name, size, c.Color)

	texture, ok := cr.icons.Get(key)
	if !ok {
		img, err := internal.RasterizeIcon(c.Name, size, c.Color)
		if err != nil {
			return err
		}
		texture, err = cr.renderer.CreateTexture(
			sdl.PIXELFORMAT_ABGR8888, // byte order R,G,B,A on little endian
			sdl.TEXTUREACCESS_STATIC, int32(size), int32(size))
		if err != nil {
			return fmt.Errorf("icon texture: %w", err)
		}
		if err := texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
			_ = texture.Destroy()
			return fmt.Errorf("icon upload: %w", err)
		}
		_ = texture.SetBlendMode(sdl.BLENDMODE_BLEND)
		cr.icons.Set(key, texture)
	}
	return cr.renderer.Copy(texture, nil, &dst)
}

func (cr *CommandRenderer) text(c draw.Text) error {
	if c.Text == "" {
		return nil
	}
	font, err := cr.fonts.Font(c.Size, c.Bold)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s|%.0f|%t|%02x%02x%02x%02x", c.Text, c.Size, c.Bold, c.Color.R, c.Color.G, c.Color.B, c.Color.A)
	texture, ok := cr.texts.Get(key)
	if !ok {
		surface, err := font.RenderUTF8Blended(c.Text, sdl.Color{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: c.Color.A})
		if err != nil {
			return fmt.Errorf("rendering text: %w", err)
		}
		texture, err = cr.renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return fmt.Errorf("text texture: %w", err)
		}
		cr.texts.Set(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return err
	}
	dst := sdl.Rect{
		X: int32(math.Round(float64(c.X))),
		Y: int32(math.Round(float64(c.Baseline))) - int32(font.Ascent()),
		W: w,
		H: h,
	}
	return cr.renderer.Copy(texture, nil, &dst)
}

// Close destroys cached textures.
func (cr *CommandRenderer) Close() {
	cr.icons.Purge()
	cr.texts.Purge()
}
