// Package constants defines shared constants, types, and configuration values
// used throughout the diary widgets.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at start-up.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	DensityDPIEnvVar   = "DIARY_DENSITY_DPI"
	ThemePathEnvVar    = "DIARY_THEME"
	TouchDeviceEnvVar  = "DIARY_TOUCH_DEVICE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// TouchTolerancePx is added to every side of an interactive region when hit
// testing. It is in raw pixels and does not scale with density.
const TouchTolerancePx float32 = 20

// Bottom navigation dimensions, in dp.
const (
	BottomBarHeightDp     = 60
	BottomBarMarginDp     = 16
	BottomBarIconDp       = 24
	BottomBarElevationDp  = 4
	ExpandedPanelHeightDp = 290
	PanelCornerRadiusDp   = 16
	SheetItemHeightDp     = 48
	SheetItemPaddingDp    = 8
	FabRadiusDp           = 28
	FabHalfIconDp         = 16
	FabActionInsetDp      = 64
	PressedExtraRadiusDp  = 8
)

// Shadow opacity range of the dimmed area above an open panel.
const (
	ShadowAlphaMin = 20
	ShadowAlphaMax = 175
)

// Bar elevation strip opacity.
const ElevationAlpha = 75

// Animation timings.
const (
	MenuAnimationDuration = 300 * time.Millisecond
	FabAnimationDuration  = 100 * time.Millisecond
	BarSlideDuration      = 150 * time.Millisecond
)

// Toolbar dimensions.
const (
	ToolbarHeightDp     = 56
	ToolbarMarginDp     = 26
	ToolbarIconDp       = 24
	ToolbarTitleSp      = 23
	ToolbarTitleNudgePx = 20
)

// Tag chip dimensions.
const (
	TagHorizontalPaddingDp = 16
	TagVerticalPaddingDp   = 8
	TagCornerRadiusDp      = 20
	TagTextSp              = 18
)

// Sheet menu text size.
const SheetItemTextSp = 16

// FrameInterval is the target frame period of the host loop.
const FrameInterval = 16 * time.Millisecond
