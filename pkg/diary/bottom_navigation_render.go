package diary

import (
	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/draw"
	"github.com/lounah/diary/pkg/diary/geom"
)

// Render returns the bar's draw commands for its current state. It has no side
// effects and may be called any number of times between ticks.
func (b *BottomNavigation) Render() []draw.Command {
	if !b.laidOut {
		return nil
	}

	m := b.metrics
	t := b.theme
	bounds := b.bounds
	barTop := b.barTop()

	cmds := []draw.Command{
		draw.Elevation(
			geom.Rect{Left: bounds.Left, Top: barTop, Right: bounds.Right, Bottom: barTop},
			m.Dp(constants.BottomBarElevationDp),
			draw.GravityTop,
			t.ElevationStart,
			t.ElevationEnd,
		),
		draw.FillRect{
			Rect:  geom.Rect{Left: bounds.Left, Top: barTop, Right: bounds.Right, Bottom: bounds.Bottom},
			Color: t.BarBackground,
		},
	}

	if b.pressed != RegionNone && b.pressed != RegionAdd {
		if rect, ok := b.regions[b.pressed]; ok {
			cmds = append(cmds, draw.PressedCircle(rect, m.Dp(constants.PressedExtraRadiusDp), t.PressedColor))
		}
	}

	cmds = append(cmds,
		draw.Icon{Name: constants.IconMenu, Rect: b.regions[RegionMenuToggle], Color: t.IconColor},
		draw.Icon{Name: constants.IconMore, Rect: b.regions[RegionMore], Color: t.IconColor},
		draw.Icon{Name: constants.IconSearch, Rect: b.regions[RegionSearch], Color: t.IconColor},
	)

	cmds = append(cmds, b.renderFab(barTop)...)

	if b.state != MenuStateCollapsed {
		cmds = append(cmds, draw.FillRect{
			Rect:  geom.Rect{Left: bounds.Left, Top: bounds.Top, Right: bounds.Right, Bottom: barTop},
			Color: t.ShadowColor.WithAlpha(b.ShadowAlpha()),
		})
		cmds = append(cmds, b.renderSheet()...)
	}

	return draw.Translate(cmds, 0, float32(b.translationY))
}

func (b *BottomNavigation) renderFab(barTop float32) []draw.Command {
	if b.fabRadius <= 0 {
		return nil
	}
	t := b.theme
	cmds := []draw.Command{draw.FillCircle{
		Center: geom.Point{X: b.fabCenterX, Y: barTop},
		Radius: float32(b.fabRadius),
		Color:  t.FabColor,
	}}

	if b.fabShown {
		name := constants.IconAdd
		if b.fabPlacedMode == FabModeInAction {
			name = constants.IconDone
		}
		cmds = append(cmds, draw.Icon{Name: name, Rect: b.regions[RegionAdd], Color: t.FabIconColor})
	}
	return cmds
}

func (b *BottomNavigation) renderSheet() []draw.Command {
	m := b.metrics
	t := b.theme
	panelTop := b.PanelTop()

	cmds := draw.TopRoundRect(
		geom.Rect{Left: b.bounds.Left, Top: panelTop, Right: b.bounds.Right, Bottom: b.bounds.Bottom},
		m.Dp(constants.PanelCornerRadiusDp),
		t.PanelBackground,
	)

	// rows are laid out for the fully expanded sheet and ride along with it
	dy := panelTop - b.expandedTop()
	margin := m.Dp(constants.BottomBarMarginDp)
	icon := m.Dp(constants.BottomBarIconDp)
	textSize := m.Sp(constants.SheetItemTextSp)
	selected, selErr := b.selected.get()

	for _, row := range b.rows {
		item := b.items[row.index]
		rect := row.rect.Offset(0, dy)

		if selErr == nil && !item.IsHeader && item == selected {
			cmds = append(cmds, draw.FillRect{Rect: rect, Color: t.SelectedRowColor})
		}

		textX := rect.Left + margin
		if item.Icon != "" && !item.IsHeader {
			iconTop := rect.CenterY() - icon/2
			cmds = append(cmds, draw.Icon{
				Name:  item.Icon,
				Rect:  geom.Rect{Left: textX, Top: iconTop, Right: textX + icon, Bottom: iconTop + icon},
				Color: t.IconColor,
			})
			textX += icon + margin*2
		}

		title, color := item.Title, t.TextColor
		if item.IsHeader {
			title, color = b.caser.String(item.Title), t.HintColor
		}
		cmds = append(cmds, draw.Text{
			Text:     title,
			X:        textX,
			Baseline: rect.CenterY() + textSize*0.35,
			Size:     textSize,
			Bold:     item.IsHeader,
			Color:    color,
		})

		if item.HasDivider {
			cmds = append(cmds, draw.FillRect{
				Rect:  geom.Rect{Left: rect.Left, Top: rect.Bottom - 1, Right: rect.Right, Bottom: rect.Bottom},
				Color: t.DividerColor,
			})
		}
	}
	return cmds
}
