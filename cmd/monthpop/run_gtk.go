//go:build !nogtk && cgo

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// dayCheckInterval is how often, in milliseconds, the current date is re-read.
const dayCheckInterval = 60 * 1000

// Run starts the application with the GTK main loop.
func (a *App) Run() error {
	gtkApp := gtk.NewApplication("com.github.cpuguy83.monthpop", gio.ApplicationFlagsNone)
	a.quit = gtkApp.Quit

	gtkApp.ConnectActivate(func() {
		first := a.popup == nil
		if first {
			// The popup window is not attached to the application, so hold it
			// open until Quit is called explicitly.
			gtkApp.Hold()
		}

		if err := a.activate(); err != nil {
			slog.Error("activation failed", "error", err)
			a.activateErr = err
			gtkApp.Quit()
			return
		}
		if !first {
			return
		}

		glib.TimeoutAdd(dayCheckInterval, func() bool {
			a.checkToday()
			return true
		})
	})

	// Handle signals to quit GTK gracefully
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		slog.Info("received signal, shutting down")
		glib.IdleAdd(func() {
			gtkApp.Quit()
		})
	}()

	// Run GTK main loop (blocks until app.Quit() is called)
	code := gtkApp.Run(nil)
	a.cleanup()
	return a.exitError(code)
}
