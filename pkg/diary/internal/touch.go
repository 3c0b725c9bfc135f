package internal

// TouchAction mirrors the pointer actions the widgets understand.
type TouchAction int

const (
	TouchDown TouchAction = iota
	TouchMove
	TouchUp
)

// TouchEvent is a single-finger touchscreen sample in window pixels.
type TouchEvent struct {
	Action TouchAction
	X, Y   float32
}

// TouchConfig describes a raw touchscreen and the window it maps onto.
type TouchConfig struct {
	DevicePath   string // e.g. /dev/input/event1
	ScreenWidth  int32
	ScreenHeight int32
	Grab         bool // Take the device exclusively
}

// scaleAxis maps a raw axis value onto [0, size).
func scaleAxis(value, minimum, maximum int32, size int32) float32 {
	if maximum <= minimum {
		return float32(value)
	}
	return float32(value-minimum) / float32(maximum-minimum) * float32(size)
}
