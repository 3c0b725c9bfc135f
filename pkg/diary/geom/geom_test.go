package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_ContainsTolerant(t *testing.T) {
	r := Rect{Left: 100, Top: 100, Right: 150, Bottom: 150}

	assert.True(t, r.ContainsTolerant(95, 95, 20), "inside the tolerance band")
	assert.True(t, r.ContainsTolerant(80, 170, 20), "corner of the expanded box")
	assert.True(t, r.ContainsTolerant(125, 125, 20))
	assert.False(t, r.ContainsTolerant(70, 70, 20), "beyond the tolerance band")
	assert.False(t, r.ContainsTolerant(171, 125, 20))
}

func TestRect_EmptyNeverContains(t *testing.T) {
	cases := []Rect{
		{},
		{Left: 10, Top: 10, Right: 10, Bottom: 40},
		{Left: 50, Top: 50, Right: 20, Bottom: 20},
	}
	for _, r := range cases {
		assert.True(t, r.IsEmpty())
		assert.False(t, r.ContainsTolerant(r.Left, r.Top, 20))
	}
}

func TestRect_OffsetAndCenter(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	assert.Equal(t, Rect{Left: 10, Top: 20, Right: 40, Bottom: 60}, r)
	assert.Equal(t, Point{X: 25, Y: 40}, r.Center())

	moved := r.Offset(5, -5)
	assert.Equal(t, float32(15), moved.Left)
	assert.Equal(t, float32(15), moved.Top)
	assert.Equal(t, r.Width(), moved.Width())
	assert.Equal(t, r.Height(), moved.Height())
}

func TestMetrics_Conversions(t *testing.T) {
	xxhdpi := Metrics{DensityDPI: 480, FontScale: 1}

	assert.Equal(t, 48, xxhdpi.DpToPx(16))
	assert.Equal(t, 870, xxhdpi.DpToPx(290))
	assert.Equal(t, float32(16), xxhdpi.PxToDp(48))
	assert.Equal(t, 54, xxhdpi.SpToPx(18))

	large := Metrics{DensityDPI: 480, FontScale: 1.5}
	assert.Equal(t, 81, large.SpToPx(18))
}

func TestMetrics_ZeroValueFallsBackToBaseline(t *testing.T) {
	var m Metrics
	assert.Equal(t, 290, m.DpToPx(290))
	assert.Equal(t, 18, m.SpToPx(18))
}

func TestIsLandscape(t *testing.T) {
	assert.True(t, IsLandscape(1280, 720))
	assert.False(t, IsLandscape(720, 1280))
	assert.False(t, IsLandscape(500, 500))
}
