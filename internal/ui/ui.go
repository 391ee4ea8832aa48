// Package ui provides the calendar popup window and its styling.
package ui

import (
	"time"

	"github.com/cpuguy83/monthpop/internal/calendar"
	"github.com/cpuguy83/monthpop/internal/config"
)

// UI is the interface for the calendar popup.
type UI interface {
	// Init builds the window. Must be called before other methods.
	Init() error

	// Show displays the popup.
	Show()

	// Hide hides the popup.
	Hide()

	// Toggle shows or hides the popup.
	Toggle()

	// Step moves the displayed month forward (n > 0) or back (n < 0).
	Step(n int)

	// SetToday updates the date used for the current-day highlight.
	SetToday(today time.Time)

	// OnClose sets the callback for the in-window close control.
	OnClose(fn func())
}

// Config holds popup configuration.
type Config struct {
	Width       int
	Height      int
	X, Y        int // Initial offset from the top-left screen corner (layer shell only)
	AlwaysOnTop bool
	Theme       string // "system", "light", "dark"
	Style       Style

	Month calendar.Month // Month shown first
	Today time.Time
}

// NewConfig converts the loaded configuration into popup settings.
func NewConfig(cfg *config.Config, month calendar.Month, today time.Time) Config {
	return Config{
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		X:           cfg.Window.X,
		Y:           cfg.Window.Y,
		AlwaysOnTop: cfg.Window.AlwaysOnTop,
		Theme:       cfg.UI.Theme,
		Style:       StyleFromConfig(cfg.UI),
		Month:       month,
		Today:       today,
	}
}
