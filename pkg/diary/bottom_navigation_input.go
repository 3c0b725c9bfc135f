package diary

import (
	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/geom"
)

var hitTestOrder = []Region{RegionMenuToggle, RegionAdd, RegionSearch, RegionMore}

// Layout places the bar in bounds and recomputes every interactive region.
// Empty or inverted bounds leave the bar with no regions at all.
func (b *BottomNavigation) Layout(bounds geom.Rect) {
	b.bounds = bounds
	b.regions = make(map[Region]geom.Rect)
	b.rows = nil

	if bounds.IsEmpty() {
		b.laidOut = false
		b.log.Debug("Bottom navigation has no area; input disabled", "bounds", bounds)
		b.invalidate()
		return
	}
	b.laidOut = true

	m := b.metrics
	margin := m.Dp(constants.BottomBarMarginDp)
	icon := m.Dp(constants.BottomBarIconDp)

	b.regions[RegionMenuToggle] = geom.Rect{
		Left:   bounds.Left + margin,
		Top:    bounds.Bottom - margin - icon - m.Dp(4),
		Right:  bounds.Left + margin + icon + m.Dp(8),
		Bottom: bounds.Bottom - margin,
	}
	search := geom.Rect{
		Left:   bounds.Right - margin - icon,
		Top:    bounds.Bottom - margin - icon,
		Right:  bounds.Right - margin,
		Bottom: bounds.Bottom - margin,
	}
	b.regions[RegionSearch] = search
	b.regions[RegionMore] = search.Offset(-(icon + margin), 0)

	b.panelMax = float64(min(m.Dp(constants.ExpandedPanelHeightDp), bounds.Height()))
	b.panelAnim.SetRange(0, b.panelMax)
	if b.state == MenuStateExpanded {
		b.panelOffset = b.panelMax
	} else {
		b.panelOffset = clamp(b.panelOffset, 0, b.panelMax)
	}

	b.placeFab(b.fabPlacedMode)
	b.layoutRows()
	b.invalidate()
}

// Bounds is the rectangle passed to the last Layout.
func (b *BottomNavigation) Bounds() geom.Rect {
	return b.bounds
}

// RegionRect returns the un-padded rectangle of an interactive region.
func (b *BottomNavigation) RegionRect(r Region) (geom.Rect, bool) {
	rect, ok := b.regions[r]
	return rect, ok
}

func (b *BottomNavigation) barTop() float32 {
	return b.bounds.Bottom - b.metrics.Dp(constants.BottomBarHeightDp)
}

func (b *BottomNavigation) expandedTop() float32 {
	return b.bounds.Bottom - float32(b.panelMax)
}

// placeFab moves the FAB disc and its hit region to the position of mode.
func (b *BottomNavigation) placeFab(mode FabMode) {
	b.fabPlacedMode = mode
	if !b.laidOut {
		return
	}

	m := b.metrics
	if mode == FabModeInAction {
		b.fabCenterX = b.bounds.Right - m.Dp(constants.FabActionInsetDp)
	} else {
		b.fabCenterX = b.bounds.Left + b.bounds.Width()/2
	}

	half := m.Dp(constants.FabHalfIconDp)
	top := b.barTop()
	b.regions[RegionAdd] = geom.Rect{
		Left:   b.fabCenterX - half,
		Top:    top - half,
		Right:  b.fabCenterX + half,
		Bottom: top + half,
	}
	b.invalidate()
}

// layoutRows stacks sheet rows from the top of the fully expanded panel down to
// the bar. Rows that do not fit are not shown.
func (b *BottomNavigation) layoutRows() {
	b.rows = nil
	if !b.laidOut {
		return
	}

	m := b.metrics
	rowHeight := m.Dp(constants.SheetItemHeightDp)
	top := b.expandedTop() + m.Dp(constants.SheetItemPaddingDp)
	limit := b.barTop()

	for i := range b.items {
		if top+rowHeight > limit {
			break
		}
		b.rows = append(b.rows, sheetRow{
			index: i,
			rect:  geom.Rect{Left: b.bounds.Left, Top: top, Right: b.bounds.Right, Bottom: top + rowHeight},
		})
		top += rowHeight
	}
}

// RegionAt returns the interactive region under a window coordinate, using the
// touch tolerance box.
func (b *BottomNavigation) RegionAt(x, y float32) Region {
	return b.regionAt(x, y-float32(b.translationY))
}

func (b *BottomNavigation) regionAt(x, y float32) Region {
	if !b.laidOut {
		return RegionNone
	}
	for _, r := range hitTestOrder {
		if rect, ok := b.regions[r]; ok && rect.ContainsTolerant(x, y, constants.TouchTolerancePx) {
			return r
		}
	}
	return RegionNone
}

func (b *BottomNavigation) rowAt(x, y float32) int {
	for _, row := range b.rows {
		if row.rect.Contains(x, y) {
			return row.index
		}
	}
	return -1
}

// HandlePointer routes a pointer event and reports whether the bar consumed it.
func (b *BottomNavigation) HandlePointer(ev PointerEvent) bool {
	switch ev.Action {
	case PointerDown:
		return b.PointerDown(ev.X, ev.Y)
	case PointerMove:
		return b.PointerMove(ev.X, ev.Y)
	case PointerUp:
		return b.PointerUp(ev.X, ev.Y)
	default:
		return false
	}
}

// PointerDown presses the region under the pointer and fires its action. With
// the sheet expanded, a press above the sheet closes it and a press on a row
// selects that row.
func (b *BottomNavigation) PointerDown(x, y float32) bool {
	if !b.laidOut || b.hidden {
		return false
	}
	y -= float32(b.translationY)

	if region := b.regionAt(x, y); region != RegionNone {
		b.pressed = region
		b.invalidate()
		b.click(region)
		return true
	}

	if b.state != MenuStateExpanded {
		return false
	}

	if y < b.bounds.Bottom-b.metrics.Dp(constants.ExpandedPanelHeightDp) {
		b.log.Debug("Tap outside sheet; collapsing", "x", x, "y", y)
		b.ToggleMenu()
		return true
	}

	if idx := b.rowAt(x, y); idx >= 0 {
		item := b.items[idx]
		if item.IsHeader {
			return true
		}
		b.selected = selection{item: item, valid: true}
		b.log.Debug("Menu item selected", "title", item.Title)
		if b.listener.OnMenuItemSelected != nil {
			b.listener.OnMenuItemSelected(item)
		}
		b.ToggleMenu()
		return true
	}

	return false
}

// PointerMove is accepted for completeness; the bar has no drag behaviour.
func (b *BottomNavigation) PointerMove(x, y float32) bool {
	return false
}

// PointerUp releases any pressed region wherever the pointer is lifted.
func (b *BottomNavigation) PointerUp(x, y float32) bool {
	if b.pressed == RegionNone {
		return false
	}
	b.pressed = RegionNone
	b.invalidate()
	return true
}

func (b *BottomNavigation) click(region Region) {
	l := b.listener
	switch region {
	case RegionMenuToggle:
		if l.OnMenuToggleClicked != nil {
			l.OnMenuToggleClicked()
		}
		b.ToggleMenu()
	case RegionAdd:
		if l.OnAddButtonClicked != nil {
			l.OnAddButtonClicked()
		}
	case RegionSearch:
		if l.OnSearchIconClicked != nil {
			l.OnSearchIconClicked()
		}
	case RegionMore:
		if l.OnMoreIconClicked != nil {
			l.OnMoreIconClicked()
		}
	}
}
