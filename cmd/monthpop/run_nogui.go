//go:build nogtk || !cgo

package main

import (
	"log/slog"
	"os"

	"github.com/cpuguy83/monthpop/internal/ui/text"
)

// Run prints the month to stdout; there is no window without GTK.
func (a *App) Run() error {
	slog.Warn("built without GTK support, printing the month instead")
	return text.Print(os.Stdout, a.month, a.now())
}
