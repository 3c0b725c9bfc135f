package diary

import (
	"log/slog"
	"math"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lounah/diary/pkg/diary/anim"
	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/geom"
	"github.com/lounah/diary/pkg/diary/internal"
)

// BottomNavigationListener receives the bar's outbound events. Every field is
// optional. Callbacks run synchronously on the goroutine that fed the input or
// tick that caused them.
type BottomNavigationListener struct {
	OnMenuToggleClicked func()
	OnAddButtonClicked  func()
	OnSearchIconClicked func()
	OnMoreIconClicked   func()
	OnMenuItemSelected  func(item MenuItem)
	OnMenuStateChanged  func(state MenuState)
}

// BottomNavigationOptions configures a BottomNavigation.
type BottomNavigationOptions struct {
	Metrics       geom.Metrics
	Theme         Theme
	Locale        language.Tag      // Used to upper-case sheet headers
	Interpolator  anim.Interpolator // Easing of every bar animation
	MenuDuration  time.Duration     // Sheet open/close
	FabDuration   time.Duration     // FAB shrink/grow
	SlideDuration time.Duration     // Whole bar hide/show
	Listener      BottomNavigationListener
	OnInvalidate  func() // Called whenever the bar needs to be redrawn
}

// DefaultBottomNavigationOptions returns baseline metrics, the current theme and
// the platform default timings.
func DefaultBottomNavigationOptions() BottomNavigationOptions {
	return BottomNavigationOptions{
		Metrics:       geom.DefaultMetrics(),
		Theme:         internal.GetTheme(),
		Locale:        language.English,
		Interpolator:  anim.AccelerateDecelerate,
		MenuDuration:  constants.MenuAnimationDuration,
		FabDuration:   constants.FabAnimationDuration,
		SlideDuration: constants.BarSlideDuration,
	}
}

type sheetRow struct {
	index int
	rect  geom.Rect // position while the sheet is fully expanded
}

// BottomNavigation is a bottom app bar with a menu toggle, search and overflow
// icons, a floating action button, and an expandable sheet of menu items.
//
// The sheet runs a four-state machine: COLLAPSED -> EXPANDING -> EXPANDED ->
// COLLAPSING -> COLLAPSED. The transient states exist only while the panel
// animator runs; they are left when Tick observes it complete.
//
// All methods must be called from a single goroutine, the host's UI loop.
type BottomNavigation struct {
	metrics  geom.Metrics
	theme    Theme
	listener BottomNavigationListener
	onDirty  func()
	log      *slog.Logger
	caser    cases.Caser

	bounds  geom.Rect
	laidOut bool
	regions map[Region]geom.Rect
	rows    []sheetRow

	items    []MenuItem
	selected selection

	state   MenuState
	pressed Region

	panelAnim   *anim.Animator
	shadowAnim  *anim.Animator
	panelOffset float64
	shadowAlpha float64
	panelMax    float64

	fabMode       FabMode
	fabPlacedMode FabMode
	fabShown      bool
	fabRadius     float64
	fabHideAnim   *anim.Animator
	fabShowAnim   *anim.Animator
	fabCenterX    float32
	fabRelocate   bool // grow back at the new mode's position once hidden

	hidden       bool
	slideAnim    *anim.Animator
	translationY float64

	dirty *atomic.Bool
}

// NewBottomNavigation creates a collapsed bar. Call Layout before routing input to it.
func NewBottomNavigation(opts BottomNavigationOptions) *BottomNavigation {
	defaults := DefaultBottomNavigationOptions()
	if opts.Metrics.DensityDPI == 0 {
		opts.Metrics = defaults.Metrics
	}
	if opts.Theme.TagColors == nil {
		opts.Theme = defaults.Theme
	}
	if opts.Locale == language.Und {
		opts.Locale = defaults.Locale
	}
	if opts.Interpolator == nil {
		opts.Interpolator = defaults.Interpolator
	}
	if opts.MenuDuration == 0 {
		opts.MenuDuration = defaults.MenuDuration
	}
	if opts.FabDuration == 0 {
		opts.FabDuration = defaults.FabDuration
	}
	if opts.SlideDuration == 0 {
		opts.SlideDuration = defaults.SlideDuration
	}

	m := opts.Metrics
	easing := anim.WithInterpolator(opts.Interpolator)
	fabRadius := float64(m.Dp(constants.FabRadiusDp))
	panelMax := float64(m.Dp(constants.ExpandedPanelHeightDp))

	return &BottomNavigation{
		metrics:  m,
		theme:    opts.Theme,
		listener: opts.Listener,
		onDirty:  opts.OnInvalidate,
		log:      internal.ComponentLogger("bottom_navigation"),
		caser:    cases.Upper(opts.Locale),
		regions:  make(map[Region]geom.Rect),

		panelAnim:   anim.New(0, panelMax, opts.MenuDuration, easing),
		shadowAnim:  anim.New(constants.ShadowAlphaMin, constants.ShadowAlphaMax, opts.MenuDuration, easing),
		shadowAlpha: constants.ShadowAlphaMin,
		panelMax:    panelMax,

		fabShown:    true,
		fabRadius:   fabRadius,
		fabHideAnim: anim.New(0, fabRadius, opts.FabDuration, easing),
		fabShowAnim: anim.New(0, fabRadius, opts.FabDuration, easing),

		slideAnim: anim.New(0, float64(m.Dp(constants.BottomBarHeightDp)), opts.SlideDuration, easing),

		dirty: atomic.NewBool(true),
	}
}

// SetListener replaces the outbound callbacks.
func (b *BottomNavigation) SetListener(l BottomNavigationListener) {
	b.listener = l
}

// SetTheme swaps colours and fonts and requests a redraw.
func (b *BottomNavigation) SetTheme(theme Theme) {
	b.theme = theme
	b.invalidate()
}

// SetMenuItems replaces the sheet rows. The slice is copied; the bar never
// modifies the caller's items.
func (b *BottomNavigation) SetMenuItems(items []MenuItem) {
	b.items = append([]MenuItem(nil), items...)
	b.layoutRows()
	b.invalidate()
}

// MenuItems returns a copy of the sheet rows.
func (b *BottomNavigation) MenuItems() []MenuItem {
	return append([]MenuItem(nil), b.items...)
}

// SetSelected marks item as the current selection.
func (b *BottomNavigation) SetSelected(item MenuItem) {
	b.selected = selection{item: item, valid: true}
	b.invalidate()
}

// Selected returns the current selection, or ErrNoSelection if none was ever made.
func (b *BottomNavigation) Selected() (MenuItem, error) {
	return b.selected.get()
}

// State is the current menu state.
func (b *BottomNavigation) State() MenuState {
	return b.state
}

// Pressed is the region currently held down, or RegionNone.
func (b *BottomNavigation) Pressed() Region {
	return b.pressed
}

// PanelOffset is how far the sheet has travelled up from its collapsed position.
func (b *BottomNavigation) PanelOffset() float32 {
	return float32(b.panelOffset)
}

// PanelTop is the y coordinate of the sheet's top edge.
func (b *BottomNavigation) PanelTop() float32 {
	return b.bounds.Bottom - float32(b.panelOffset)
}

// ShadowAlpha is the current opacity of the dimmed area above the sheet.
func (b *BottomNavigation) ShadowAlpha() uint8 {
	return uint8(math.Round(b.shadowAlpha))
}

// FabMode is the requested FAB mode. The button moves once its hide animation ends.
func (b *BottomNavigation) FabMode() FabMode {
	return b.fabMode
}

// FabShown reports whether the FAB glyph is visible.
func (b *BottomNavigation) FabShown() bool {
	return b.fabShown
}

// FabCenterX is the horizontal centre of the FAB disc.
func (b *BottomNavigation) FabCenterX() float32 {
	return b.fabCenterX
}

// Hidden reports whether the bar has been slid off screen with Hide.
func (b *BottomNavigation) Hidden() bool {
	return b.hidden
}

// TranslationY is the current downward slide of the whole bar.
func (b *BottomNavigation) TranslationY() float32 {
	return float32(b.translationY)
}

// IsAnimating reports whether any animation is in flight.
func (b *BottomNavigation) IsAnimating() bool {
	return b.panelAnim.IsRunning() || b.shadowAnim.IsRunning() ||
		b.fabHideAnim.IsRunning() || b.fabShowAnim.IsRunning() ||
		b.slideAnim.IsRunning()
}

// ConsumeRedraw reports whether a redraw was requested since the last call and
// clears the request. Safe to call from any goroutine.
func (b *BottomNavigation) ConsumeRedraw() bool {
	return b.dirty.Swap(false)
}

func (b *BottomNavigation) invalidate() {
	b.dirty.Store(true)
	if b.onDirty != nil {
		b.onDirty()
	}
}

// ToggleMenu opens a collapsed sheet or closes an expanded one. While an
// animation is in flight it does nothing and returns false.
func (b *BottomNavigation) ToggleMenu() bool {
	switch b.state {
	case MenuStateCollapsed:
		b.startMenuTransition(MenuStateExpanding, anim.Forward)
		return true
	case MenuStateExpanded:
		b.startMenuTransition(MenuStateCollapsing, anim.Reverse)
		return true
	default:
		b.log.Debug("Ignoring menu toggle during animation", "state", b.state)
		return false
	}
}

func (b *BottomNavigation) startMenuTransition(next MenuState, dir anim.Direction) {
	b.shadowAnim.Start(dir)
	b.panelAnim.Start(dir)
	b.setState(next)
	b.invalidate()
}

func (b *BottomNavigation) setState(next MenuState) {
	prev := b.state
	if prev == next {
		return
	}
	b.state = next
	b.log.Debug("Menu state changed", "from", prev, "to", next)
	if b.listener.OnMenuStateChanged != nil {
		b.listener.OnMenuStateChanged(next)
	}
}

// Tick advances every running animation by dt and settles the menu state when
// the panel animation has finished. It returns true if anything moved.
func (b *BottomNavigation) Tick(dt time.Duration) bool {
	moved := b.tickMenu(dt)
	moved = b.tickFab(dt) || moved
	moved = b.tickSlide(dt) || moved
	if moved {
		b.invalidate()
	}
	return moved
}

func (b *BottomNavigation) tickMenu(dt time.Duration) bool {
	if !b.panelAnim.IsRunning() && !b.shadowAnim.IsRunning() && b.state.IsSettled() {
		return false
	}

	opening := b.state == MenuStateExpanding

	if b.shadowAnim.IsRunning() {
		b.shadowAnim.Tick(dt)
		step := math.Abs(b.shadowAnim.Delta())
		if !opening {
			step = -step
		}
		b.shadowAlpha = clamp(b.shadowAlpha+step, constants.ShadowAlphaMin, constants.ShadowAlphaMax)
		if b.shadowAnim.IsComplete() {
			b.shadowAlpha = b.shadowAnim.EndValue()
		}
	}

	if b.panelAnim.IsRunning() {
		b.panelAnim.Tick(dt)
		step := math.Abs(b.panelAnim.Delta())
		if !opening {
			step = -step
		}
		b.panelOffset = clamp(b.panelOffset+step, 0, b.panelMax)
	}

	if !b.panelAnim.IsRunning() && !b.state.IsSettled() {
		b.settleMenu()
	}
	return true
}

// settleMenu leaves a transient state. A shadow animation still running at
// this point is finished early so both channels land on their end values.
func (b *BottomNavigation) settleMenu() {
	if b.shadowAnim.IsRunning() {
		b.shadowAnim.End()
	}

	switch b.state {
	case MenuStateExpanding:
		b.panelOffset = b.panelMax
		b.shadowAlpha = constants.ShadowAlphaMax
		b.setState(MenuStateExpanded)
		if b.hidden {
			// Hide ran mid-opening; finish the collapse it skipped.
			b.startMenuTransition(MenuStateCollapsing, anim.Reverse)
		}
	case MenuStateCollapsing:
		b.panelOffset = 0
		b.shadowAlpha = constants.ShadowAlphaMin
		b.setState(MenuStateCollapsed)
	}
}

func (b *BottomNavigation) tickFab(dt time.Duration) bool {
	switch {
	case b.fabHideAnim.IsRunning():
		b.fabRadius = b.fabHideAnim.EndValue() - b.fabHideAnim.Tick(dt)
		if b.fabHideAnim.IsComplete() {
			b.fabShown = false
			if b.fabRelocate {
				b.fabRelocate = false
				b.placeFab(b.fabMode)
				if !b.hidden {
					b.ShowFab()
				}
			}
		}
		return true
	case b.fabShowAnim.IsRunning():
		b.fabRadius = b.fabShowAnim.Tick(dt)
		if b.fabShowAnim.IsComplete() {
			b.fabShown = true
		}
		return true
	}
	return false
}

func (b *BottomNavigation) tickSlide(dt time.Duration) bool {
	if !b.slideAnim.IsRunning() {
		return false
	}
	b.translationY = b.slideAnim.Tick(dt)
	return true
}

// HideFab shrinks the floating action button away.
func (b *BottomNavigation) HideFab() {
	b.fabShowAnim.Cancel()
	b.fabHideAnim.SetRange(0, b.fabRadius)
	b.fabHideAnim.Start(anim.Forward)
	b.invalidate()
}

// ShowFab grows the floating action button back.
func (b *BottomNavigation) ShowFab() {
	b.fabHideAnim.Cancel()
	b.fabShowAnim.Start(anim.Forward)
	b.fabRadius = b.fabShowAnim.Value()
	b.invalidate()
}

// ChangeFabActionState flips between FabModeNormal and FabModeInAction. The
// button shrinks, moves to the new mode's position, then grows back.
func (b *BottomNavigation) ChangeFabActionState() {
	if b.fabMode == FabModeNormal {
		b.fabMode = FabModeInAction
	} else {
		b.fabMode = FabModeNormal
	}
	b.log.Debug("FAB mode changed", "mode", b.fabMode)

	b.fabRelocate = true
	if !b.fabHideAnim.IsRunning() {
		b.HideFab()
	}
}

// Hide slides the bar off the bottom edge, closing an open sheet and the FAB
// on the way. A sheet still opening collapses as soon as it settles. A hidden
// bar ignores pointer input.
func (b *BottomNavigation) Hide() {
	if b.hidden {
		return
	}
	if b.state == MenuStateExpanded {
		b.ToggleMenu()
	}
	b.HideFab()
	b.hidden = true
	b.slideAnim.Start(anim.Forward)
	b.invalidate()
}

// Show slides a hidden bar back into place.
func (b *BottomNavigation) Show() {
	if !b.hidden {
		return
	}
	b.ShowFab()
	b.hidden = false
	b.slideAnim.Start(anim.Reverse)
	b.invalidate()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
