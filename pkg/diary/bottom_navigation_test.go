package diary

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/draw"
	"github.com/lounah/diary/pkg/diary/geom"
)

// At the baseline density one dp is one pixel, so the layout below is:
//
//	menu toggle [16,756,48,784]  more [320,760,344,784]  search [360,760,384,784]
//	add         [184,724,216,756]  bar top 740  sheet top 510  rows from 518
var testBounds = geom.Rect{Left: 0, Top: 0, Right: 400, Bottom: 800}

var testItems = []MenuItem{
	NewMenuHeader("Sections"),
	NewMenuItem("All notes", constants.IconNote),
	NewMenuItem("Tagged", constants.IconTag),
	NewMenuItem("Settings", constants.IconGear),
}

type recorder struct {
	states   []MenuState
	clicks   []string
	selected []MenuItem
}

func (r *recorder) listener() BottomNavigationListener {
	return BottomNavigationListener{
		OnMenuToggleClicked: func() { r.clicks = append(r.clicks, "menu") },
		OnAddButtonClicked:  func() { r.clicks = append(r.clicks, "add") },
		OnSearchIconClicked: func() { r.clicks = append(r.clicks, "search") },
		OnMoreIconClicked:   func() { r.clicks = append(r.clicks, "more") },
		OnMenuItemSelected:  func(item MenuItem) { r.selected = append(r.selected, item) },
		OnMenuStateChanged:  func(s MenuState) { r.states = append(r.states, s) },
	}
}

func newTestBar(t *testing.T) (*BottomNavigation, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts := DefaultBottomNavigationOptions()
	opts.Theme = DefaultTheme()
	opts.Listener = rec.listener()
	b := NewBottomNavigation(opts)
	b.SetMenuItems(testItems)
	b.Layout(testBounds)
	return b, rec
}

func settle(t *testing.T, b *BottomNavigation) {
	t.Helper()
	for i := 0; i < 200 && b.IsAnimating(); i++ {
		b.Tick(constants.FrameInterval)
	}
	require.False(t, b.IsAnimating(), "animations did not finish")
}

func TestBottomNavigation_ExpandCollapseSequence(t *testing.T) {
	b, rec := newTestBar(t)
	require.Equal(t, MenuStateCollapsed, b.State())

	assert.True(t, b.PointerDown(30, 770))
	assert.Equal(t, MenuStateExpanding, b.State())
	assert.Equal(t, RegionMenuToggle, b.Pressed())
	b.PointerUp(30, 770)
	settle(t, b)
	assert.Equal(t, MenuStateExpanded, b.State())
	assert.Equal(t, float32(290), b.PanelOffset())
	assert.Equal(t, float32(510), b.PanelTop())
	assert.Equal(t, uint8(constants.ShadowAlphaMax), b.ShadowAlpha())

	assert.True(t, b.PointerDown(30, 770))
	b.PointerUp(30, 770)
	settle(t, b)

	assert.Equal(t, []MenuState{
		MenuStateExpanding,
		MenuStateExpanded,
		MenuStateCollapsing,
		MenuStateCollapsed,
	}, rec.states)
	assert.Equal(t, []string{"menu", "menu"}, rec.clicks)
}

func TestBottomNavigation_RoundTripRestoresChannels(t *testing.T) {
	b, _ := newTestBar(t)

	require.True(t, b.ToggleMenu())
	settle(t, b)
	require.True(t, b.ToggleMenu())
	settle(t, b)

	assert.Equal(t, MenuStateCollapsed, b.State())
	assert.Equal(t, float32(0), b.PanelOffset())
	assert.Equal(t, testBounds.Bottom, b.PanelTop())
	assert.Equal(t, uint8(constants.ShadowAlphaMin), b.ShadowAlpha())
}

func TestBottomNavigation_ToggleIgnoredWhileAnimating(t *testing.T) {
	b, rec := newTestBar(t)

	require.True(t, b.ToggleMenu())
	b.Tick(50 * time.Millisecond)
	offset := b.PanelOffset()

	assert.False(t, b.ToggleMenu())
	assert.True(t, b.PointerDown(30, 770), "the tap still lands on the toggle")
	assert.Equal(t, MenuStateExpanding, b.State())
	assert.Equal(t, offset, b.PanelOffset())
	assert.Equal(t, []MenuState{MenuStateExpanding}, rec.states)

	settle(t, b)
	require.True(t, b.ToggleMenu())
	b.Tick(50 * time.Millisecond)
	assert.False(t, b.ToggleMenu())
	assert.Equal(t, MenuStateCollapsing, b.State())
}

func TestBottomNavigation_AlwaysSettles(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		b, rec := newTestBar(t)
		for step := 0; step < 40; step++ {
			if rng.Intn(3) == 0 {
				b.ToggleMenu()
			} else {
				b.Tick(time.Duration(rng.Intn(120)) * time.Millisecond)
			}
			assert.GreaterOrEqual(t, b.PanelOffset(), float32(0))
			assert.LessOrEqual(t, b.PanelOffset(), float32(290))
			assert.GreaterOrEqual(t, b.ShadowAlpha(), uint8(constants.ShadowAlphaMin))
			assert.LessOrEqual(t, b.ShadowAlpha(), uint8(constants.ShadowAlphaMax))
		}
		settle(t, b)

		require.True(t, b.State().IsSettled(), "run %d ended in %s", run, b.State())
		switch b.State() {
		case MenuStateExpanded:
			assert.Equal(t, float32(290), b.PanelOffset())
			assert.Equal(t, uint8(constants.ShadowAlphaMax), b.ShadowAlpha())
		case MenuStateCollapsed:
			assert.Equal(t, float32(0), b.PanelOffset())
			assert.Equal(t, uint8(constants.ShadowAlphaMin), b.ShadowAlpha())
		}

		// every reported transition follows the cycle
		prev := MenuStateCollapsed
		for _, s := range rec.states {
			assert.Equal(t, (prev+1)%4, s)
			prev = s
		}
	}
}

func TestBottomNavigation_ShadowFinishingFirstStillSettles(t *testing.T) {
	b, _ := newTestBar(t)

	require.True(t, b.ToggleMenu())
	b.Tick(40 * time.Millisecond)
	b.shadowAnim.End()
	b.Tick(40 * time.Millisecond)
	assert.Equal(t, MenuStateExpanding, b.State())

	settle(t, b)
	assert.Equal(t, MenuStateExpanded, b.State())
	assert.Equal(t, uint8(constants.ShadowAlphaMax), b.ShadowAlpha())
}

func TestBottomNavigation_PanelFinishingFirstEndsShadow(t *testing.T) {
	b, _ := newTestBar(t)

	require.True(t, b.ToggleMenu())
	b.Tick(40 * time.Millisecond)
	b.panelAnim.End()
	b.Tick(constants.FrameInterval)

	assert.Equal(t, MenuStateExpanded, b.State())
	assert.False(t, b.shadowAnim.IsRunning())
	assert.Equal(t, uint8(constants.ShadowAlphaMax), b.ShadowAlpha())
	assert.Equal(t, float32(290), b.PanelOffset())
}

func TestBottomNavigation_HitToleranceBox(t *testing.T) {
	b, _ := newTestBar(t)
	search, ok := b.RegionRect(RegionSearch)
	require.True(t, ok)

	assert.Equal(t, RegionSearch, b.RegionAt(search.Left-5, search.Top-5))
	assert.Equal(t, RegionSearch, b.RegionAt(search.Right+20, search.Bottom+10))
	assert.Equal(t, RegionNone, b.RegionAt(search.Right+21, search.CenterY()))
	assert.Equal(t, RegionNone, b.RegionAt(search.CenterX(), search.Top-30))

	// more and search are 16px apart, so their boxes overlap; search wins
	assert.Equal(t, RegionSearch, b.RegionAt(search.Left-10, search.CenterY()))
}

func TestBottomNavigation_RegionClicks(t *testing.T) {
	b, rec := newTestBar(t)

	for _, tc := range []struct {
		x, y   float32
		region Region
	}{
		{200, 740, RegionAdd},
		{372, 772, RegionSearch},
		{326, 772, RegionMore},
	} {
		assert.True(t, b.PointerDown(tc.x, tc.y))
		assert.Equal(t, tc.region, b.Pressed())
		assert.True(t, b.PointerUp(tc.x, tc.y))
	}
	assert.Equal(t, []string{"add", "search", "more"}, rec.clicks)
	assert.Equal(t, MenuStateCollapsed, b.State())
}

func TestBottomNavigation_PointerUpClearsPressedAnywhere(t *testing.T) {
	b, _ := newTestBar(t)

	require.True(t, b.PointerDown(372, 772))
	assert.False(t, b.HandlePointer(PointerEvent{Action: PointerMove, X: 10, Y: 10}))
	assert.Equal(t, RegionSearch, b.Pressed())

	assert.True(t, b.HandlePointer(PointerEvent{Action: PointerUp, X: 0, Y: 0}))
	assert.Equal(t, RegionNone, b.Pressed())
	assert.False(t, b.PointerUp(0, 0), "nothing left to release")
}

func TestBottomNavigation_OutsideTapCollapses(t *testing.T) {
	b, rec := newTestBar(t)
	b.ToggleMenu()
	settle(t, b)

	assert.False(t, b.PointerDown(200, 515), "between the sheet top and the first row")
	assert.Equal(t, MenuStateExpanded, b.State())

	assert.True(t, b.PointerDown(200, 100))
	assert.Equal(t, MenuStateCollapsing, b.State())
	assert.Equal(t, RegionNone, b.Pressed())
	settle(t, b)
	assert.Equal(t, MenuStateCollapsed, b.State())
	assert.Empty(t, rec.selected)

	assert.False(t, b.PointerDown(200, 100), "collapsed bar ignores taps above it")
}

func TestBottomNavigation_SelectMenuItem(t *testing.T) {
	b, rec := newTestBar(t)

	_, err := b.Selected()
	require.ErrorIs(t, err, ErrNoSelection)
	assert.True(t, IsNoSelection(err))

	b.ToggleMenu()
	settle(t, b)

	assert.True(t, b.PointerDown(200, 540), "header row swallows the tap")
	assert.Equal(t, MenuStateExpanded, b.State())
	assert.Empty(t, rec.selected)

	assert.True(t, b.PointerDown(200, 590))
	assert.Equal(t, MenuStateCollapsing, b.State())
	require.Len(t, rec.selected, 1)
	assert.Equal(t, "All notes", rec.selected[0].Title)

	got, err := b.Selected()
	require.NoError(t, err)
	assert.Equal(t, testItems[1], got)
}

func TestBottomNavigation_SetMenuItemsCopies(t *testing.T) {
	b, _ := newTestBar(t)
	items := []MenuItem{NewMenuItem("One", "")}
	b.SetMenuItems(items)
	items[0].Title = "Changed"

	assert.Equal(t, "One", b.MenuItems()[0].Title)
}

func TestBottomNavigation_EmptyBoundsHaveNoRegions(t *testing.T) {
	b, rec := newTestBar(t)
	b.Layout(geom.Rect{})

	for _, r := range []Region{RegionMenuToggle, RegionAdd, RegionSearch, RegionMore} {
		_, ok := b.RegionRect(r)
		assert.False(t, ok, r.String())
	}
	assert.Equal(t, RegionNone, b.RegionAt(0, 0))
	assert.False(t, b.PointerDown(0, 0))
	assert.False(t, b.PointerDown(30, 770))
	assert.Nil(t, b.Render())
	assert.Empty(t, rec.clicks)

	b.Layout(geom.Rect{Left: 10, Top: 10, Right: 5, Bottom: 400})
	assert.Equal(t, RegionNone, b.RegionAt(10, 390))
}

func TestBottomNavigation_ShortBoundsCapPanel(t *testing.T) {
	b, _ := newTestBar(t)
	b.Layout(geom.Rect{Right: 400, Bottom: 200})

	b.ToggleMenu()
	settle(t, b)
	assert.Equal(t, float32(200), b.PanelOffset())
	assert.Equal(t, float32(0), b.PanelTop())
}

func TestBottomNavigation_FabModeMovesAfterHide(t *testing.T) {
	b, _ := newTestBar(t)
	require.Equal(t, float32(200), b.FabCenterX())

	b.ChangeFabActionState()
	assert.Equal(t, FabModeInAction, b.FabMode())
	assert.Equal(t, float32(200), b.FabCenterX(), "moves only once hidden")

	b.Tick(constants.FabAnimationDuration)
	assert.False(t, b.FabShown())
	assert.Equal(t, float32(336), b.FabCenterX())
	add, ok := b.RegionRect(RegionAdd)
	require.True(t, ok)
	assert.Equal(t, float32(336), add.CenterX())

	settle(t, b)
	assert.True(t, b.FabShown())

	b.ChangeFabActionState()
	settle(t, b)
	assert.Equal(t, FabModeNormal, b.FabMode())
	assert.Equal(t, float32(200), b.FabCenterX())
	assert.True(t, b.FabShown())
}

func TestBottomNavigation_FabDoubleToggleReturnsHome(t *testing.T) {
	b, _ := newTestBar(t)

	b.ChangeFabActionState()
	b.Tick(30 * time.Millisecond)
	b.ChangeFabActionState()
	settle(t, b)

	assert.Equal(t, FabModeNormal, b.FabMode())
	assert.Equal(t, float32(200), b.FabCenterX())
	assert.True(t, b.FabShown())
}

func TestBottomNavigation_HideAndShow(t *testing.T) {
	b, _ := newTestBar(t)
	b.ToggleMenu()
	settle(t, b)

	b.Hide()
	assert.True(t, b.Hidden())
	assert.Equal(t, MenuStateCollapsing, b.State())
	assert.False(t, b.PointerDown(372, 772), "hidden bar ignores input")

	settle(t, b)
	assert.Equal(t, MenuStateCollapsed, b.State())
	assert.Equal(t, float32(60), b.TranslationY())
	assert.False(t, b.FabShown())

	b.Show()
	assert.False(t, b.Hidden())
	settle(t, b)
	assert.Equal(t, float32(0), b.TranslationY())
	assert.True(t, b.FabShown())
	assert.True(t, b.PointerDown(372, 772))
}

func TestBottomNavigation_HideWhileExpandingCollapses(t *testing.T) {
	b, rec := newTestBar(t)
	b.ToggleMenu()
	b.Tick(50 * time.Millisecond)
	require.Equal(t, MenuStateExpanding, b.State())

	b.Hide()
	settle(t, b)
	assert.True(t, b.Hidden())
	assert.Equal(t, MenuStateCollapsed, b.State())
	assert.Equal(t, float32(testBounds.Bottom), b.PanelTop())
	assert.Equal(t, []MenuState{
		MenuStateExpanding, MenuStateExpanded, MenuStateCollapsing, MenuStateCollapsed,
	}, rec.states)

	b.Show()
	settle(t, b)
	assert.Equal(t, MenuStateCollapsed, b.State())
	assert.True(t, b.PointerDown(30, 770))
	assert.Equal(t, MenuStateExpanding, b.State())
}

func TestBottomNavigation_FabModeChangeWhileHiddenStaysHidden(t *testing.T) {
	b, _ := newTestBar(t)
	b.Hide()
	settle(t, b)
	require.False(t, b.FabShown())

	b.ChangeFabActionState()
	settle(t, b)
	assert.False(t, b.FabShown())
	assert.Equal(t, float32(336), b.FabCenterX())

	b.Show()
	settle(t, b)
	assert.True(t, b.FabShown())
	assert.Equal(t, float32(336), b.FabCenterX())
}

func TestBottomNavigation_RedrawRequests(t *testing.T) {
	invalidations := 0
	opts := DefaultBottomNavigationOptions()
	opts.OnInvalidate = func() { invalidations++ }
	b := NewBottomNavigation(opts)

	assert.True(t, b.ConsumeRedraw(), "a new bar needs its first frame")
	assert.False(t, b.ConsumeRedraw())

	b.Layout(testBounds)
	assert.True(t, b.ConsumeRedraw())
	assert.False(t, b.Tick(constants.FrameInterval), "idle tick")
	assert.False(t, b.ConsumeRedraw())

	b.ToggleMenu()
	assert.True(t, b.Tick(constants.FrameInterval))
	assert.True(t, b.ConsumeRedraw())
	assert.Positive(t, invalidations)
}

func TestBottomNavigation_Render(t *testing.T) {
	b, _ := newTestBar(t)
	theme := DefaultTheme()

	collapsed := b.Render()
	require.NotEmpty(t, collapsed)
	for _, cmd := range collapsed {
		if fill, ok := cmd.(draw.FillRect); ok {
			assert.NotEqual(t, theme.ShadowColor.WithAlpha(constants.ShadowAlphaMin), fill.Color,
				"no shadow while collapsed")
		}
	}

	b.SetSelected(testItems[2])
	b.ToggleMenu()
	settle(t, b)
	expanded := b.Render()

	var texts []string
	var shadow, selectedRow bool
	for _, cmd := range expanded {
		switch c := cmd.(type) {
		case draw.Text:
			texts = append(texts, c.Text)
		case draw.FillRect:
			if c.Color == theme.ShadowColor.WithAlpha(constants.ShadowAlphaMax) {
				shadow = true
				assert.Equal(t, float32(740), c.Rect.Bottom)
			}
			if c.Color == theme.SelectedRowColor {
				selectedRow = true
				assert.Equal(t, float32(614), c.Rect.Top)
			}
		}
	}
	assert.Equal(t, []string{"SECTIONS", "All notes", "Tagged", "Settings"}, texts)
	assert.True(t, shadow)
	assert.True(t, selectedRow)
}

func TestBottomNavigation_RenderFollowsSlide(t *testing.T) {
	b, _ := newTestBar(t)
	b.Hide()
	settle(t, b)

	for _, cmd := range b.Render() {
		if fill, ok := cmd.(draw.FillRect); ok && fill.Color == DefaultTheme().BarBackground {
			assert.Equal(t, float32(800), fill.Rect.Top)
			return
		}
	}
	t.Fatal("bar background not drawn")
}

func TestMenuState_String(t *testing.T) {
	assert.Equal(t, "COLLAPSED", MenuStateCollapsed.String())
	assert.Equal(t, "EXPANDING", MenuStateExpanding.String())
	assert.Equal(t, "EXPANDED", MenuStateExpanded.String())
	assert.Equal(t, "COLLAPSING", MenuStateCollapsing.String())
	assert.False(t, MenuStateExpanding.IsSettled())
	assert.Equal(t, "IN_ACTION", FabModeInAction.String())
}
