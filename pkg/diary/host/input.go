package host

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/lounah/diary/pkg/diary"
	"github.com/lounah/diary/pkg/diary/internal"
)

// pointerFromSDL converts mouse and finger events to pointer events. Finger
// coordinates are normalised by SDL and scaled here to the drawable size.
// Synthetic mouse events for touches are disabled in sdlkit.Init.
func pointerFromSDL(event sdl.Event, width, height int32) (diary.PointerEvent, bool) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return diary.PointerEvent{}, false
		}
		action := diary.PointerUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			action = diary.PointerDown
		}
		return diary.PointerEvent{Action: action, X: float32(e.X), Y: float32(e.Y)}, true

	case *sdl.MouseMotionEvent:
		if e.State&sdl.ButtonLMask() == 0 {
			return diary.PointerEvent{}, false
		}
		return diary.PointerEvent{Action: diary.PointerMove, X: float32(e.X), Y: float32(e.Y)}, true

	case *sdl.TouchFingerEvent:
		ev := diary.PointerEvent{X: e.X * float32(width), Y: e.Y * float32(height)}
		switch e.Type {
		case sdl.FINGERDOWN:
			ev.Action = diary.PointerDown
		case sdl.FINGERUP:
			ev.Action = diary.PointerUp
		default:
			ev.Action = diary.PointerMove
		}
		return ev, true
	}
	return diary.PointerEvent{}, false
}

func pointerFromTouch(t internal.TouchEvent) diary.PointerEvent {
	ev := diary.PointerEvent{X: t.X, Y: t.Y}
	switch t.Action {
	case internal.TouchDown:
		ev.Action = diary.PointerDown
	case internal.TouchUp:
		ev.Action = diary.PointerUp
	default:
		ev.Action = diary.PointerMove
	}
	return ev
}
