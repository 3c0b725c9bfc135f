package diary

import (
	"log/slog"

	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/draw"
	"github.com/lounah/diary/pkg/diary/geom"
	"github.com/lounah/diary/pkg/diary/internal"
)

// TitleGravity positions the toolbar title.
type TitleGravity int

const (
	TitleGravityCenter TitleGravity = iota // Centred in the toolbar
	TitleGravityStart                      // After the navigation icon
)

// ToolbarListener receives toolbar icon taps.
type ToolbarListener struct {
	OnNavigationIconClicked func()
	OnMenuIconClicked       func()
}

// ToolbarOptions configures a Toolbar.
type ToolbarOptions struct {
	Title          string
	TitleGravity   TitleGravity
	TitleSize      float32 // Title size in px; zero for 23sp
	NavigationIcon string  // Icon name; empty for none
	MenuIcon       string  // Icon name; empty for none
	ShowShadow     bool
	ElevationDp    int // Shadow height below the toolbar; zero for 4dp
	Metrics        geom.Metrics
	Theme          Theme
	Measurer       draw.TextMeasurer
	Listener       ToolbarListener
}

// Toolbar is a top app bar with a title and optional navigation and menu icons.
type Toolbar struct {
	opts ToolbarOptions
	log  *slog.Logger

	titleWidth float32
	bounds     geom.Rect
	navRect    geom.Rect
	menuRect   geom.Rect
	pressed    Region
}

// NewToolbar creates a toolbar.
func NewToolbar(opts ToolbarOptions) *Toolbar {
	if opts.Metrics.DensityDPI == 0 {
		opts.Metrics = geom.DefaultMetrics()
	}
	if opts.Theme.TagColors == nil {
		opts.Theme = GetTheme()
	}
	if opts.TitleSize <= 0 {
		opts.TitleSize = opts.Metrics.Sp(constants.ToolbarTitleSp)
	}
	if opts.ElevationDp <= 0 {
		opts.ElevationDp = constants.BottomBarElevationDp
	}
	tb := &Toolbar{opts: opts, log: internal.ComponentLogger("toolbar")}
	tb.measureTitle()
	return tb
}

// Title is the toolbar title.
func (tb *Toolbar) Title() string {
	return tb.opts.Title
}

// SetTitle changes the title text.
func (tb *Toolbar) SetTitle(title string) {
	tb.opts.Title = title
	tb.measureTitle()
}

// SetTitleGravity moves the title.
func (tb *Toolbar) SetTitleGravity(g TitleGravity) {
	tb.opts.TitleGravity = g
}

// SetShowShadow toggles the elevation shadow below the toolbar.
func (tb *Toolbar) SetShowShadow(show bool) {
	tb.opts.ShowShadow = show
}

// SetTheme swaps colours.
func (tb *Toolbar) SetTheme(theme Theme) {
	tb.opts.Theme = theme
}

// SetListener replaces the icon callbacks.
func (tb *Toolbar) SetListener(l ToolbarListener) {
	tb.opts.Listener = l
}

func (tb *Toolbar) measureTitle() {
	tb.titleWidth = 0
	if tb.opts.Measurer != nil && tb.opts.Title != "" {
		tb.titleWidth = tb.opts.Measurer.MeasureText(tb.opts.Title, tb.opts.TitleSize, true).Width
	}
}

// Measure fills the available width at a fixed 56dp height unless constrained.
func (tb *Toolbar) Measure(width, height Constraint) (float32, float32) {
	return ResolveSize(width.Size, width), ResolveSize(tb.opts.Metrics.Dp(constants.ToolbarHeightDp), height)
}

// Layout places the toolbar and its icons.
func (tb *Toolbar) Layout(bounds geom.Rect) {
	tb.bounds = bounds
	tb.navRect, tb.menuRect = geom.Rect{}, geom.Rect{}
	if bounds.IsEmpty() {
		return
	}

	m := tb.opts.Metrics
	margin := m.Dp(constants.ToolbarMarginDp)
	icon := m.Dp(constants.ToolbarIconDp)
	top := bounds.CenterY() - icon/2

	if tb.opts.NavigationIcon != "" {
		tb.navRect = geom.Rect{Left: bounds.Left + margin, Top: top, Right: bounds.Left + margin + icon, Bottom: top + icon}
	}
	if tb.opts.MenuIcon != "" {
		tb.menuRect = geom.Rect{Left: bounds.Right - margin - icon, Top: top, Right: bounds.Right - margin, Bottom: top + icon}
	}
}

// TitleX is the x coordinate the title starts at.
func (tb *Toolbar) TitleX() float32 {
	if tb.opts.TitleGravity == TitleGravityStart {
		m := tb.opts.Metrics
		return tb.bounds.Left + m.Dp(constants.ToolbarMarginDp)*2 + m.Dp(constants.ToolbarIconDp)
	}
	return tb.bounds.CenterX() - tb.titleWidth/2
}

// Render draws the toolbar.
func (tb *Toolbar) Render() []draw.Command {
	if tb.bounds.IsEmpty() {
		return nil
	}
	t := tb.opts.Theme
	r := tb.bounds

	var cmds []draw.Command
	if tb.opts.ShowShadow {
		cmds = append(cmds, draw.Elevation(
			geom.Rect{Left: r.Left, Top: r.Bottom, Right: r.Right, Bottom: r.Bottom},
			tb.opts.Metrics.Dp(tb.opts.ElevationDp),
			draw.GravityBottom,
			t.ElevationEnd,
			t.ElevationStart,
		))
	}
	cmds = append(cmds, draw.FillRect{Rect: r, Color: t.BarBackground})

	if tb.pressed != RegionNone {
		target := tb.navRect
		if tb.pressed == RegionMore {
			target = tb.menuRect
		}
		cmds = append(cmds, draw.PressedCircle(target, tb.opts.Metrics.Dp(constants.PressedExtraRadiusDp), t.PressedColor))
	}
	if tb.opts.NavigationIcon != "" {
		cmds = append(cmds, draw.Icon{Name: tb.opts.NavigationIcon, Rect: tb.navRect, Color: t.IconColor})
	}
	if tb.opts.MenuIcon != "" {
		cmds = append(cmds, draw.Icon{Name: tb.opts.MenuIcon, Rect: tb.menuRect, Color: t.IconColor})
	}

	if tb.opts.Title != "" {
		cmds = append(cmds, draw.Text{
			Text:     tb.opts.Title,
			X:        tb.TitleX(),
			Baseline: r.CenterY() + constants.ToolbarTitleNudgePx,
			Size:     tb.opts.TitleSize,
			Bold:     true,
			Color:    t.TextColor,
		})
	}
	return cmds
}

// PointerDown fires the callback of the icon under the pointer. The navigation
// icon reports as RegionMenuToggle and the menu icon as RegionMore.
func (tb *Toolbar) PointerDown(x, y float32) bool {
	l := tb.opts.Listener
	switch {
	case tb.navRect.ContainsTolerant(x, y, constants.TouchTolerancePx):
		tb.pressed = RegionMenuToggle
		tb.log.Debug("Navigation icon clicked")
		if l.OnNavigationIconClicked != nil {
			l.OnNavigationIconClicked()
		}
		return true
	case tb.menuRect.ContainsTolerant(x, y, constants.TouchTolerancePx):
		tb.pressed = RegionMore
		tb.log.Debug("Menu icon clicked")
		if l.OnMenuIconClicked != nil {
			l.OnMenuIconClicked()
		}
		return true
	}
	return false
}

// PointerUp releases a pressed icon.
func (tb *Toolbar) PointerUp(x, y float32) bool {
	if tb.pressed == RegionNone {
		return false
	}
	tb.pressed = RegionNone
	return true
}

// HandlePointer routes a pointer event and reports whether the toolbar consumed it.
func (tb *Toolbar) HandlePointer(ev PointerEvent) bool {
	switch ev.Action {
	case PointerDown:
		return tb.PointerDown(ev.X, ev.Y)
	case PointerUp:
		return tb.PointerUp(ev.X, ev.Y)
	default:
		return false
	}
}

// Pressed is the icon held down: RegionMenuToggle, RegionMore or RegionNone.
func (tb *Toolbar) Pressed() Region {
	return tb.pressed
}
