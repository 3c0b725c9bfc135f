package geom

import "math"

// BaselineDPI is the density at which one dp equals one pixel.
const BaselineDPI = 160

// Metrics describes the display the widgets are laid out for.
type Metrics struct {
	DensityDPI int     // Dots per inch of the display
	FontScale  float32 // User font scale applied on top of density for sp values
}

// DefaultMetrics returns baseline metrics where 1dp == 1sp == 1px.
func DefaultMetrics() Metrics {
	return Metrics{DensityDPI: BaselineDPI, FontScale: 1}
}

func (m Metrics) density() float64 {
	if m.DensityDPI <= 0 {
		return 1
	}
	return float64(m.DensityDPI) / BaselineDPI
}

// DpToPx converts density independent pixels to whole pixels, rounding to nearest.
func (m Metrics) DpToPx(dp int) int {
	return int(math.Round(float64(dp) * m.density()))
}

// Dp is DpToPx as a float32, the unit every layout computation uses.
func (m Metrics) Dp(dp int) float32 {
	return float32(m.DpToPx(dp))
}

// PxToDp converts pixels back to density independent pixels.
func (m Metrics) PxToDp(px int) float32 {
	return float32(float64(px) / m.density())
}

// SpToPx converts scale independent pixels to pixels, truncating.
func (m Metrics) SpToPx(sp float32) int {
	scale := m.FontScale
	if scale <= 0 {
		scale = 1
	}
	return int(float64(sp) * m.density() * float64(scale))
}

// Sp is SpToPx as a float32.
func (m Metrics) Sp(sp float32) float32 {
	return float32(m.SpToPx(sp))
}

// IsLandscape reports whether a surface of the given size is wider than tall.
func IsLandscape(width, height float32) bool {
	return width > height
}
