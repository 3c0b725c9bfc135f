package host

import (
	"context"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/sync/errgroup"

	"github.com/lounah/diary/pkg/diary"
	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/geom"
	"github.com/lounah/diary/pkg/diary/internal"
)

// Screen is one full-window page: a toolbar on top, a row of tag chips below
// it and the bottom navigation bar over everything. Any of them may be nil.
type Screen struct {
	Toolbar *diary.Toolbar
	Tags    []*diary.Tag
	Bar     *diary.BottomNavigation

	app    *App
	log    *slog.Logger
	bounds geom.Rect
	dirty  bool
}

// NewScreen creates a screen drawn into the app's window.
func (a *App) NewScreen(toolbar *diary.Toolbar, tags []*diary.Tag, bar *diary.BottomNavigation) *Screen {
	return &Screen{
		Toolbar: toolbar,
		Tags:    tags,
		Bar:     bar,
		app:     a,
		log:     internal.ComponentLogger("screen"),
		dirty:   true,
	}
}

// Layout places every widget in bounds.
func (s *Screen) Layout(bounds geom.Rect) {
	s.bounds = bounds
	s.dirty = true
	m := s.app.metrics
	top := bounds.Top

	if s.Toolbar != nil {
		_, h := s.Toolbar.Measure(diary.Constraint{Mode: diary.Exactly, Size: bounds.Width()}, diary.Unbounded())
		s.Toolbar.Layout(geom.Rect{Left: bounds.Left, Top: top, Right: bounds.Right, Bottom: top + h})
		top += h
	}

	gap := m.Dp(constants.SheetItemPaddingDp)
	x := bounds.Left + m.Dp(constants.BottomBarMarginDp)
	top += gap
	for _, tag := range s.Tags {
		w, h := tag.Measure(diary.Constraint{Mode: diary.AtMost, Size: bounds.Right - x}, diary.Unbounded())
		tag.Layout(geom.NewRect(x, top, w, h))
		x += w + gap
	}

	if s.Bar != nil {
		s.Bar.Layout(bounds)
	}
}

// Run shows the screen until the window is closed or ctx is done. Closing
// the window returns diary.ErrCancelled. The theme watcher and touchscreen
// reader run in the background for the duration of the call.
func (s *Screen) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	themes := make(chan diary.Theme, 1)
	touches := make(chan internal.TouchEvent, 64)

	opts := s.app.opts
	if opts.WatchTheme && opts.ThemePath != "" {
		g.Go(func() error {
			return internal.WatchTheme(gctx, opts.ThemePath, themes)
		})
	}
	if opts.TouchDevice != "" {
		w, h := s.app.window.Size()
		reader, err := internal.OpenTouch(internal.TouchConfig{
			DevicePath:   opts.TouchDevice,
			ScreenWidth:  w,
			ScreenHeight: h,
			Grab:         opts.GrabTouch,
		})
		if err != nil {
			s.log.Warn("Touch device unavailable; using SDL input only", "error", err)
		} else {
			g.Go(func() error {
				return reader.Run(gctx, touches)
			})
		}
	}

	err := s.loop(gctx, themes, touches)
	cancel()
	if werr := g.Wait(); werr != nil && err == nil {
		err = diary.NewInfrastructureError("background", werr)
	}
	if err == nil {
		err = ctx.Err()
	}
	return err
}

func (s *Screen) loop(ctx context.Context, themes <-chan diary.Theme, touches <-chan internal.TouchEvent) error {
	s.Layout(s.app.Bounds())
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if event := sdl.WaitEventTimeout(int(constants.FrameInterval.Milliseconds())); event != nil {
			for ; event != nil; event = sdl.PollEvent() {
				if err := s.handleEvent(event); err != nil {
					return err
				}
			}
		}

	drain:
		for {
			select {
			case theme := <-themes:
				s.applyTheme(theme)
			case t := <-touches:
				s.dispatch(pointerFromTouch(t))
			default:
				break drain
			}
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now
		if s.Bar != nil {
			s.Bar.Tick(dt)
			if s.Bar.ConsumeRedraw() {
				s.dirty = true
			}
		}

		if s.dirty {
			if err := s.render(); err != nil {
				s.log.Error("Render failed", "error", err)
			}
			s.dirty = false
		}
	}
}

func (s *Screen) handleEvent(event sdl.Event) error {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.log.Debug("Window closed")
		return diary.ErrCancelled
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
			s.Layout(s.app.Bounds())
		case sdl.WINDOWEVENT_EXPOSED:
			s.dirty = true
		}
	default:
		w, h := s.app.window.Size()
		if ev, ok := pointerFromSDL(event, w, h); ok {
			s.dispatch(ev)
		}
	}
	return nil
}

// dispatch offers a pointer event to the bar first since its sheet and shadow
// cover the other widgets while open. Releases go to every widget.
func (s *Screen) dispatch(ev diary.PointerEvent) {
	s.dirty = true
	if ev.Action == diary.PointerUp {
		if s.Bar != nil {
			s.Bar.HandlePointer(ev)
		}
		if s.Toolbar != nil {
			s.Toolbar.HandlePointer(ev)
		}
		return
	}
	if s.Bar != nil && s.Bar.HandlePointer(ev) {
		return
	}
	if s.Bar != nil && s.Bar.State() != diary.MenuStateCollapsed {
		return
	}
	if s.Toolbar != nil {
		s.Toolbar.HandlePointer(ev)
	}
}

func (s *Screen) applyTheme(theme diary.Theme) {
	s.log.Debug("Theme reloaded")
	diary.SetTheme(theme)
	if s.Bar != nil {
		s.Bar.SetTheme(theme)
	}
	if s.Toolbar != nil {
		s.Toolbar.SetTheme(theme)
	}
	for _, tag := range s.Tags {
		tag.SetTheme(theme)
	}
	s.dirty = true
}

func (s *Screen) render() error {
	r := s.app.renderer
	if err := r.Clear(diary.GetTheme().PanelBackground); err != nil {
		return err
	}
	var err error
	if s.Toolbar != nil {
		err = r.Render(s.Toolbar.Render())
	}
	for _, tag := range s.Tags {
		if terr := r.Render(tag.Render()); terr != nil && err == nil {
			err = terr
		}
	}
	if s.Bar != nil {
		if berr := r.Render(s.Bar.Render()); berr != nil && err == nil {
			err = berr
		}
	}
	s.app.window.Present()
	return err
}
