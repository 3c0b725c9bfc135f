package diary

// MenuState is the state of the expandable bottom sheet.
type MenuState int

const (
	MenuStateCollapsed  MenuState = iota // Sheet hidden; initial state
	MenuStateExpanding                   // Opening animation running
	MenuStateExpanded                    // Sheet fully open
	MenuStateCollapsing                  // Closing animation running
)

func (s MenuState) String() string {
	switch s {
	case MenuStateCollapsed:
		return "COLLAPSED"
	case MenuStateExpanding:
		return "EXPANDING"
	case MenuStateExpanded:
		return "EXPANDED"
	case MenuStateCollapsing:
		return "COLLAPSING"
	default:
		return "UNKNOWN"
	}
}

// IsSettled reports whether no menu animation is in flight.
func (s MenuState) IsSettled() bool {
	return s == MenuStateCollapsed || s == MenuStateExpanded
}

// FabMode selects the floating action button's position and glyph.
type FabMode int

const (
	FabModeNormal   FabMode = iota // Centred, shows "add"
	FabModeInAction                // Right-aligned, shows "done"
)

func (m FabMode) String() string {
	if m == FabModeInAction {
		return "IN_ACTION"
	}
	return "NORMAL"
}

// Region identifies an interactive area of the bottom bar.
type Region int

const (
	RegionNone       Region = iota
	RegionMenuToggle        // Hamburger icon, opens and closes the sheet
	RegionAdd               // Floating action button
	RegionSearch            // Search icon
	RegionMore              // Overflow icon
)

func (r Region) String() string {
	switch r {
	case RegionMenuToggle:
		return "menu_toggle"
	case RegionAdd:
		return "add"
	case RegionSearch:
		return "search"
	case RegionMore:
		return "more"
	default:
		return "none"
	}
}

// PointerAction is the phase of a pointer event.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a single touch or mouse event in window pixels.
type PointerEvent struct {
	Action PointerAction
	X      float32
	Y      float32
}
