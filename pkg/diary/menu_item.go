package diary

import (
	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/internal"
)

// MenuItem is one row of the expandable bottom sheet.
type MenuItem struct {
	Title      string // Display text for the row
	Icon       string // Icon name, see constants.IconPaths; empty for none
	IsHeader   bool   // Section header: drawn in caps and not selectable
	HasDivider bool   // Draw a divider line under the row
}

// NewMenuItem creates a selectable row with a divider.
func NewMenuItem(title, icon string) MenuItem {
	return MenuItem{Title: title, Icon: icon, HasDivider: true}
}

// NewMenuHeader creates a non-selectable section header.
func NewMenuHeader(title string) MenuItem {
	return MenuItem{Title: title, IsHeader: true, HasDivider: true}
}

// selection holds the currently selected item, or nothing.
type selection struct {
	item  MenuItem
	valid bool
}

func (s selection) get() (MenuItem, error) {
	if !s.valid {
		return MenuItem{}, ErrNoSelection
	}
	return s.item, nil
}

// DefaultMenuItems is the stock sheet content in the current locale.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		NewMenuHeader(internal.Localize(internal.MsgMenuSections)),
		NewMenuItem(internal.Localize(internal.MsgMenuAllNotes), constants.IconNote),
		NewMenuItem(internal.Localize(internal.MsgMenuTagged), constants.IconTag),
		NewMenuItem(internal.Localize(internal.MsgMenuSettings), constants.IconGear),
	}
}

// DefaultToolbarTitle is the app title in the current locale.
func DefaultToolbarTitle() string {
	return internal.Localize(internal.MsgToolbarTitle)
}
