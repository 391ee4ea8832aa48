//go:build nogtk || !cgo

package ui

import "time"

var _ UI = (*Popup)(nil)

// Popup is a stub when GTK is not available.
type Popup struct{}

// NewPopup returns nil when GTK is not available.
func NewPopup(cfg Config) *Popup {
	return nil
}

// Init is a no-op stub.
func (p *Popup) Init() error {
	return nil
}

// Show is a no-op stub.
func (p *Popup) Show() {}

// Hide is a no-op stub.
func (p *Popup) Hide() {}

// Toggle is a no-op stub.
func (p *Popup) Toggle() {}

// Step is a no-op stub.
func (p *Popup) Step(n int) {}

// SetToday is a no-op stub.
func (p *Popup) SetToday(today time.Time) {}

// OnClose is a no-op stub.
func (p *Popup) OnClose(fn func()) {}
