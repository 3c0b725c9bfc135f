package diary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/draw"
	"github.com/lounah/diary/pkg/diary/geom"
)

func newTestToolbar(gravity TitleGravity) *Toolbar {
	tb := NewToolbar(ToolbarOptions{
		Title:          "Diary",
		TitleGravity:   gravity,
		NavigationIcon: constants.IconBack,
		MenuIcon:       constants.IconMore,
		Theme:          DefaultTheme(),
		Measurer:       testMeasurer,
	})
	w, h := tb.Measure(Constraint{Mode: Exactly, Size: 400}, Unbounded())
	tb.Layout(geom.NewRect(0, 0, w, h))
	return tb
}

func findText(cmds []draw.Command) (draw.Text, bool) {
	for _, cmd := range cmds {
		if text, ok := cmd.(draw.Text); ok {
			return text, true
		}
	}
	return draw.Text{}, false
}

func TestToolbar_Measure(t *testing.T) {
	tb := NewToolbar(ToolbarOptions{})
	w, h := tb.Measure(Constraint{Mode: Exactly, Size: 320}, Unbounded())
	assert.Equal(t, float32(320), w)
	assert.Equal(t, float32(56), h)

	_, h = tb.Measure(Unbounded(), Constraint{Mode: AtMost, Size: 40})
	assert.Equal(t, float32(40), h)
}

func TestToolbar_TitlePlacement(t *testing.T) {
	center := newTestToolbar(TitleGravityCenter)
	text, ok := findText(center.Render())
	require.True(t, ok)
	assert.Equal(t, float32(200-25), text.X, "five glyphs of 10px centred")
	assert.Equal(t, float32(28+20), text.Baseline)
	assert.True(t, text.Bold)
	assert.Equal(t, float32(23), text.Size)

	start := newTestToolbar(TitleGravityStart)
	text, ok = findText(start.Render())
	require.True(t, ok)
	assert.Equal(t, float32(26+24+26), text.X)

	start.SetTitle("")
	_, ok = findText(start.Render())
	assert.False(t, ok)
}

func TestToolbar_IconClicks(t *testing.T) {
	tb := newTestToolbar(TitleGravityCenter)
	var nav, menu int
	tb.SetListener(ToolbarListener{
		OnNavigationIconClicked: func() { nav++ },
		OnMenuIconClicked:       func() { menu++ },
	})

	// navigation icon spans [26,16,50,40]
	assert.True(t, tb.PointerDown(10, 10))
	assert.Equal(t, RegionMenuToggle, tb.Pressed())
	assert.True(t, tb.HandlePointer(PointerEvent{Action: PointerUp, X: 200, Y: 200}))
	assert.Equal(t, RegionNone, tb.Pressed())

	assert.True(t, tb.HandlePointer(PointerEvent{Action: PointerDown, X: 362, Y: 28}))
	assert.Equal(t, RegionMore, tb.Pressed())
	tb.PointerUp(0, 0)

	assert.False(t, tb.PointerDown(200, 28), "title is not interactive")
	assert.Equal(t, 1, nav)
	assert.Equal(t, 1, menu)
}

func TestToolbar_NoIconsNoRegions(t *testing.T) {
	tb := NewToolbar(ToolbarOptions{Title: "Diary"})
	tb.Layout(geom.NewRect(0, 0, 400, 56))
	assert.False(t, tb.PointerDown(38, 28))
}

func TestToolbar_Shadow(t *testing.T) {
	tb := newTestToolbar(TitleGravityCenter)
	_, isGradient := tb.Render()[0].(draw.VerticalGradient)
	assert.False(t, isGradient)

	tb.SetShowShadow(true)
	grad, ok := tb.Render()[0].(draw.VerticalGradient)
	require.True(t, ok)
	assert.Equal(t, float32(56), grad.Rect.Top)
	assert.Equal(t, float32(60), grad.Rect.Bottom)
}
