package internal

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/draw"
)

const iconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="%s" d="%s"/></svg>`

// RasterizeIcon renders a named icon into a size x size RGBA image tinted with c.
func RasterizeIcon(name string, size int, c draw.Color) (*image.RGBA, error) {
	path, ok := constants.IconPaths[name]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", name)
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	fill := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	icon, err := oksvg.ReadIconStream(strings.NewReader(fmt.Sprintf(iconSVG, fill, path)), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing icon %q: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), float64(c.A)/255)
	return img, nil
}

// IconCacheKey identifies a rasterised icon variant.
func IconCacheKey(name string, size int, c draw.Color) string {
	return fmt.Sprintf("%s@%d#%02x%02x%02x%02x", name, size, c.R, c.G, c.B, c.A)
}
