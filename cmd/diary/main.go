package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/lounah/diary/pkg/diary"
	"github.com/lounah/diary/pkg/diary/constants"
	"github.com/lounah/diary/pkg/diary/host"
)

func init() {
	// SDL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to a TOML options file")
	themePath := flag.String("theme", "", "Path to a TOML theme file (overrides the config)")
	watch := flag.Bool("watch-theme", false, "Reload the theme file when it changes")
	locale := flag.String("locale", "", "Preferred language, e.g. en or ru")
	touch := flag.String("touch", "", "evdev touchscreen device, e.g. /dev/input/event1")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	help := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Println("Usage: diary [options]")
		fmt.Println("\nRuns the diary bottom navigation demo.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	opts := diary.DefaultOptions()
	if *configPath != "" {
		loaded, err := diary.LoadOptions(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading options: %v\n", err)
			os.Exit(1)
		}
		opts = loaded
	} else {
		opts.ApplyEnv()
	}
	if *themePath != "" {
		opts.ThemePath = *themePath
	}
	if *watch {
		opts.WatchTheme = true
	}
	if *locale != "" {
		opts.Locale = []string{*locale, "en"}
	}
	if *touch != "" {
		opts.TouchDevice = *touch
	}
	if *logLevel != "" {
		opts.LogLevel = *logLevel
	}
	if constants.IsDevMode() {
		opts.LogLevel = "debug"
	}

	if err := run(opts); err != nil && !diary.IsCancelled(err) && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts diary.Options) error {
	app, err := host.Init(opts)
	if err != nil {
		return err
	}
	defer app.Close()

	log := diary.GetLogger()
	metrics := app.Metrics()
	theme := diary.GetTheme()

	var bar *diary.BottomNavigation
	toolbar := diary.NewToolbar(diary.ToolbarOptions{
		Title:          diary.DefaultToolbarTitle(),
		TitleGravity:   diary.TitleGravityStart,
		NavigationIcon: constants.IconBack,
		MenuIcon:       constants.IconMore,
		ShowShadow:     true,
		Metrics:        metrics,
		Theme:          theme,
		Measurer:       app.Measurer(),
		Listener: diary.ToolbarListener{
			OnNavigationIconClicked: func() {
				if bar.Hidden() {
					bar.Show()
				} else {
					bar.Hide()
				}
			},
			OnMenuIconClicked: func() { log.Info("Toolbar menu clicked") },
		},
	})

	var tags []*diary.Tag
	for _, t := range []struct{ text, color string }{
		{"work", diary.TagBlue},
		{"travel", diary.TagYellow},
		{"ideas", diary.TagPurple},
	} {
		tags = append(tags, diary.NewTag(diary.TagOptions{
			Text:     t.text,
			Color:    t.color,
			Metrics:  metrics,
			Theme:    theme,
			Measurer: app.Measurer(),
		}))
	}

	navOpts := diary.DefaultBottomNavigationOptions()
	navOpts.Metrics = metrics
	navOpts.Theme = theme
	navOpts.Listener = diary.BottomNavigationListener{
		OnAddButtonClicked:  func() { bar.ChangeFabActionState() },
		OnSearchIconClicked: func() { log.Info("Search clicked") },
		OnMoreIconClicked:   func() { log.Info("More clicked") },
		OnMenuItemSelected: func(item diary.MenuItem) {
			log.Info("Menu item selected", "title", item.Title)
			toolbar.SetTitle(item.Title)
		},
		OnMenuStateChanged: func(state diary.MenuState) {
			log.Debug("Menu state", "state", state)
		},
	}
	bar = diary.NewBottomNavigation(navOpts)
	bar.SetMenuItems(diary.DefaultMenuItems())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return app.NewScreen(toolbar, tags, bar).Run(ctx)
}
