package diary

import (
	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/draw"
	"github.com/lounah/diary/pkg/diary/geom"
)

// TagOptions configures a Tag chip.
type TagOptions struct {
	Text     string
	Color    string // One of the Tag* colour names; unknown names render blue
	Metrics  geom.Metrics
	Theme    Theme
	Measurer draw.TextMeasurer
}

// Tag is a rounded, coloured label. Brown, yellow and purple chips use black
// text; every other colour uses white.
type Tag struct {
	text     string
	color    string
	metrics  geom.Metrics
	theme    Theme
	measurer draw.TextMeasurer

	textMetrics draw.TextMetrics
	bounds      geom.Rect
}

// NewTag creates a chip. A nil Measurer leaves the text unmeasured, so the chip
// measures to its padding only.
func NewTag(opts TagOptions) *Tag {
	if opts.Metrics.DensityDPI == 0 {
		opts.Metrics = geom.DefaultMetrics()
	}
	if opts.Theme.TagColors == nil {
		opts.Theme = GetTheme()
	}
	if opts.Color == "" {
		opts.Color = TagBlue
	}
	t := &Tag{
		text:     opts.Text,
		color:    opts.Color,
		metrics:  opts.Metrics,
		theme:    opts.Theme,
		measurer: opts.Measurer,
	}
	t.measureText()
	return t
}

// Text is the chip's label.
func (t *Tag) Text() string {
	return t.text
}

// SetText changes the label and re-measures it.
func (t *Tag) SetText(text string) {
	t.text = text
	t.measureText()
}

// Color is the chip's colour name.
func (t *Tag) Color() string {
	return t.color
}

// SetColor changes the background colour; the text colour follows it.
func (t *Tag) SetColor(name string) {
	t.color = name
}

// SetTheme swaps the palette.
func (t *Tag) SetTheme(theme Theme) {
	t.theme = theme
}

// TextColor is the colour the label is drawn in.
func (t *Tag) TextColor() draw.Color {
	return t.theme.TagTextColor(t.color)
}

func (t *Tag) textSize() float32 {
	return t.metrics.Sp(constants.TagTextSp)
}

func (t *Tag) measureText() {
	if t.measurer == nil {
		t.textMetrics = draw.TextMetrics{}
		return
	}
	t.textMetrics = t.measurer.MeasureText(t.text, t.textSize(), false)
}

// Measure returns the chip's size: the text plus 16dp either side and 8dp
// above and below, resolved against the constraints.
func (t *Tag) Measure(width, height Constraint) (float32, float32) {
	m := t.metrics
	desiredW := m.Dp(constants.TagHorizontalPaddingDp)*2 + t.textMetrics.Width
	desiredH := m.Dp(constants.TagVerticalPaddingDp)*2 + t.textMetrics.Height()
	return ResolveSize(desiredW, width), ResolveSize(desiredH, height)
}

// Layout places the chip.
func (t *Tag) Layout(bounds geom.Rect) {
	t.bounds = bounds
}

// Bounds is the rectangle passed to the last Layout.
func (t *Tag) Bounds() geom.Rect {
	return t.bounds
}

// Render draws the chip into its bounds.
func (t *Tag) Render() []draw.Command {
	if t.bounds.IsEmpty() {
		return nil
	}
	r := t.bounds
	cmds := []draw.Command{draw.FillRoundRect{
		Rect:   r,
		Radius: t.metrics.Dp(constants.TagCornerRadiusDp),
		Color:  t.theme.TagColor(t.color),
	}}
	if t.text == "" {
		return cmds
	}

	// centre the glyph box vertically
	tm := t.textMetrics
	baseline := r.Top + r.Height()/2 + (tm.Ascent-tm.Descent)/2
	return append(cmds, draw.Text{
		Text:     t.text,
		X:        r.Left + t.metrics.Dp(constants.TagHorizontalPaddingDp),
		Baseline: baseline,
		Size:     t.textSize(),
		Color:    t.TextColor(),
	})
}
