// monthpop is a borderless, draggable month calendar popup.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cpuguy83/monthpop/internal/calendar"
	"github.com/cpuguy83/monthpop/internal/config"
	"github.com/cpuguy83/monthpop/internal/tray"
	"github.com/cpuguy83/monthpop/internal/ui"
	"github.com/cpuguy83/monthpop/internal/ui/text"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (default: ~/.config/monthpop/config.yaml)")
		verbose    = flag.Bool("v", false, "verbose logging")
		printMonth = flag.Bool("print", false, "print the month to stdout and exit")
		monthFlag  = flag.String("month", "", "month to show first, as YYYY-MM (default: current month)")
	)
	flag.Parse()

	// Setup logging
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	now := time.Now()
	month, err := initialMonth(*monthFlag, now)
	if err != nil {
		slog.Error("invalid -month", "error", err)
		os.Exit(2)
	}

	if *printMonth {
		if err := text.Print(os.Stdout, month, now); err != nil {
			slog.Error("print failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Load configuration
	var cfg *config.Config
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting monthpop",
		"month", month,
		"theme", cfg.UI.Theme,
		"tray", cfg.Tray.Enabled,
	)

	app := &App{
		cfg:   cfg,
		month: month,
		now:   time.Now,
	}

	if err := app.Run(); err != nil {
		slog.Error("app failed", "error", err)
		os.Exit(1)
	}
}

// initialMonth returns the month to display first: the -month flag if set,
// otherwise the month containing now.
func initialMonth(flagValue string, now time.Time) (calendar.Month, error) {
	if flagValue == "" {
		return calendar.MonthOf(now), nil
	}
	return calendar.ParseMonth(flagValue)
}

// App is the main monthpop application.
type App struct {
	cfg   *config.Config
	month calendar.Month
	now   func() time.Time

	// newPopup builds the popup window. Nil means ui.NewPopup.
	newPopup func(ui.Config) ui.UI

	popup ui.UI
	tray  *tray.Tray

	// today is the last date pushed to the popup and tray.
	today time.Time

	// quit stops the main loop.
	quit func()

	// activateErr is the first activation failure, returned by Run.
	activateErr error
}

// activate builds the popup and, if enabled, the tray icon. Later
// activations, such as launching a second instance, only present the
// existing popup. Must be called from the GTK main thread.
func (a *App) activate() error {
	if a.popup != nil {
		a.popup.Show()
		return nil
	}

	a.today = a.now()

	newPopup := a.newPopup
	if newPopup == nil {
		newPopup = func(cfg ui.Config) ui.UI {
			return ui.NewPopup(cfg)
		}
	}
	popup := newPopup(ui.NewConfig(a.cfg, a.month, a.today))
	if err := popup.Init(); err != nil {
		return fmt.Errorf("init popup: %w", err)
	}
	a.popup = popup

	if a.cfg.Tray.Enabled {
		if err := a.startTray(); err != nil {
			// The popup is still usable without a tray.
			slog.Warn("tray unavailable", "error", err)
			a.tray = nil
		}
	}

	a.popup.OnClose(a.onClose)
	a.popup.Show()

	slog.Info("monthpop running", "today", a.today.Format(time.DateOnly))
	return nil
}

func (a *App) startTray() error {
	t, err := tray.New(a.today)
	if err != nil {
		return fmt.Errorf("create tray: %w", err)
	}
	t.OnActivate(func() {
		slog.Debug("tray activated, toggling popup")
		a.popup.Toggle()
	})
	t.OnScroll(a.popup.Step)

	if err := t.Start(); err != nil {
		t.Stop()
		return fmt.Errorf("start tray: %w", err)
	}
	a.tray = t
	return nil
}

// onClose handles the in-window close control. With a tray icon the popup
// only hides so it can be reopened; otherwise the application exits.
func (a *App) onClose() {
	if a.tray != nil {
		a.popup.Hide()
		return
	}
	if a.quit != nil {
		a.quit()
	}
}

// checkToday pushes a new current date to the popup and tray once the day
// changes. It reports whether an update was made.
func (a *App) checkToday() bool {
	now := a.now()
	if sameDay(now, a.today) {
		return false
	}

	slog.Debug("day changed", "from", a.today.Format(time.DateOnly), "to", now.Format(time.DateOnly))
	a.today = now
	if a.popup != nil {
		a.popup.SetToday(now)
	}
	if a.tray != nil {
		a.tray.SetToday(now)
	}
	return true
}

// exitError returns the error Run reports once the main loop has exited
// with code.
func (a *App) exitError(code int) error {
	if a.activateErr != nil {
		return fmt.Errorf("activate: %w", a.activateErr)
	}
	if code != 0 {
		return fmt.Errorf("GTK application exited with code %d", code)
	}
	return nil
}

// cleanup releases resources when the app is shutting down.
func (a *App) cleanup() {
	if a.tray != nil {
		if err := a.tray.Stop(); err != nil {
			slog.Debug("tray stop", "error", err)
		}
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
