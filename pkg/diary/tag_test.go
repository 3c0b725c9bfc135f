package diary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lounah/diary/pkg/diary/draw"
	"github.com/lounah/diary/pkg/diary/geom"
)

// fixedMeasurer gives every rune the same advance.
type fixedMeasurer struct {
	advance float32
	ascent  float32
	descent float32
}

func (f fixedMeasurer) MeasureText(text string, size float32, bold bool) draw.TextMetrics {
	return draw.TextMetrics{
		Width:   f.advance * float32(len([]rune(text))),
		Ascent:  f.ascent,
		Descent: f.descent,
	}
}

var testMeasurer = fixedMeasurer{advance: 10, ascent: 14, descent: 4}

func TestTag_Measure(t *testing.T) {
	tag := NewTag(TagOptions{Text: "work", Color: TagGreen, Measurer: testMeasurer})

	w, h := tag.Measure(Unbounded(), Unbounded())
	assert.Equal(t, float32(16*2+40), w)
	assert.Equal(t, float32(8*2+18), h)

	w, h = tag.Measure(Constraint{Mode: AtMost, Size: 50}, Constraint{Mode: Exactly, Size: 40})
	assert.Equal(t, float32(50), w)
	assert.Equal(t, float32(40), h)

	tag.SetText("travelling")
	w, _ = tag.Measure(Unbounded(), Unbounded())
	assert.Equal(t, float32(16*2+100), w)
}

func TestTag_MeasureAtHighDensity(t *testing.T) {
	tag := NewTag(TagOptions{
		Text:     "x",
		Metrics:  geom.Metrics{DensityDPI: 480, FontScale: 1},
		Measurer: testMeasurer,
	})
	w, h := tag.Measure(Unbounded(), Unbounded())
	assert.Equal(t, float32(48*2+10), w)
	assert.Equal(t, float32(24*2+18), h)
}

func TestTag_TextColourFollowsBackground(t *testing.T) {
	tag := NewTag(TagOptions{Text: "idea", Theme: DefaultTheme()})

	assert.Equal(t, TagBlue, tag.Color(), "blue by default")
	assert.Equal(t, draw.White, tag.TextColor())

	for _, name := range []string{TagBrown, TagYellow, TagPurple} {
		tag.SetColor(name)
		assert.Equal(t, draw.Black, tag.TextColor(), name)
	}
	for _, name := range []string{TagGreen, TagPink, TagRed, TagBlue} {
		tag.SetColor(name)
		assert.Equal(t, draw.White, tag.TextColor(), name)
	}
}

func TestTag_Render(t *testing.T) {
	theme := DefaultTheme()
	tag := NewTag(TagOptions{Text: "home", Color: TagRed, Theme: theme, Measurer: testMeasurer})
	assert.Nil(t, tag.Render(), "not laid out")

	w, h := tag.Measure(Unbounded(), Unbounded())
	tag.Layout(geom.NewRect(10, 100, w, h))
	cmds := tag.Render()
	require.Len(t, cmds, 2)

	bg, ok := cmds[0].(draw.FillRoundRect)
	require.True(t, ok)
	assert.Equal(t, float32(20), bg.Radius)
	assert.Equal(t, theme.TagColor(TagRed), bg.Color)

	text, ok := cmds[1].(draw.Text)
	require.True(t, ok)
	assert.Equal(t, "home", text.Text)
	assert.Equal(t, float32(26), text.X)
	// box is 34 tall: 100 + 17 + (14-4)/2
	assert.Equal(t, float32(122), text.Baseline)
	assert.Equal(t, draw.White, text.Color)
}

func TestTag_RenderEmptyText(t *testing.T) {
	tag := NewTag(TagOptions{Measurer: testMeasurer})
	tag.Layout(geom.NewRect(0, 0, 32, 34))
	assert.Len(t, tag.Render(), 1)
}
