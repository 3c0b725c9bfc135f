//go:build linux

package internal

import (
	"context"
	"fmt"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// TouchReader turns evdev events from a touchscreen into TouchEvents.
type TouchReader struct {
	cfg    TouchConfig
	dev    *evdev.InputDevice
	closed *atomic.Bool

	minX, maxX int32
	minY, maxY int32

	x, y     int32
	touching bool
	wasDown  bool
	moved    bool
}

// OpenTouch opens the device in cfg and reads its axis ranges.
func OpenTouch(cfg TouchConfig) (*TouchReader, error) {
	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("opening touch device %s: %w", cfg.DevicePath, err)
	}

	r := &TouchReader{cfg: cfg, dev: dev, closed: atomic.NewBool(false)}

	infos, err := dev.AbsInfos()
	if err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("reading axis ranges of %s: %w", cfg.DevicePath, err)
	}
	r.minX, r.maxX = axisRange(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	r.minY, r.maxY = axisRange(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)

	if cfg.Grab {
		if err := dev.Grab(); err != nil {
			GetInternalLogger().Warn("Could not grab touch device", "path", cfg.DevicePath, "error", err)
		}
	}

	name, _ := dev.Name()
	GetInternalLogger().Debug("Touch device opened",
		"path", cfg.DevicePath, "name", name,
		"x_range", []int32{r.minX, r.maxX}, "y_range", []int32{r.minY, r.maxY})
	return r, nil
}

func axisRange(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) (int32, int32) {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return info.Minimum, info.Maximum
		}
	}
	return 0, 0
}

// Run forwards touches to out until ctx is cancelled or the device fails.
// Cancelling ctx closes the device.
func (r *TouchReader) Run(ctx context.Context, out chan<- TouchEvent) error {
	go func() {
		<-ctx.Done()
		r.Close()
	}()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if r.closed.Load() {
				return nil
			}
			return fmt.Errorf("reading touch device: %w", err)
		}

		touch, ok := r.handle(ev)
		if !ok {
			continue
		}
		select {
		case out <- touch:
		case <-ctx.Done():
			return nil
		}
	}
}

// handle folds one evdev event into the reader state and returns a TouchEvent
// at the end of each report.
func (r *TouchReader) handle(ev *evdev.InputEvent) (TouchEvent, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			r.x = ev.Value
			r.moved = true
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			r.y = ev.Value
			r.moved = true
		}
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			r.touching = ev.Value != 0
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			return r.report()
		}
	}
	return TouchEvent{}, false
}

func (r *TouchReader) report() (TouchEvent, bool) {
	ev := TouchEvent{
		X: scaleAxis(r.x, r.minX, r.maxX, r.cfg.ScreenWidth),
		Y: scaleAxis(r.y, r.minY, r.maxY, r.cfg.ScreenHeight),
	}
	moved := r.moved
	r.moved = false

	switch {
	case r.touching && !r.wasDown:
		ev.Action = TouchDown
	case !r.touching && r.wasDown:
		ev.Action = TouchUp
	case r.touching && moved:
		ev.Action = TouchMove
	default:
		return TouchEvent{}, false
	}
	r.wasDown = r.touching
	return ev, true
}

// Close releases the device. It is safe to call more than once.
func (r *TouchReader) Close() {
	if r.closed.Swap(true) {
		return
	}
	if r.cfg.Grab {
		_ = r.dev.Ungrab()
	}
	if err := r.dev.Close(); err != nil {
		GetInternalLogger().Debug("Closing touch device", "error", err)
	}
}
