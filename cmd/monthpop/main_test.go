package main

import (
	"errors"
	"testing"
	"time"

	"github.com/cpuguy83/monthpop/internal/calendar"
	"github.com/cpuguy83/monthpop/internal/config"
	"github.com/cpuguy83/monthpop/internal/tray"
	"github.com/cpuguy83/monthpop/internal/ui"
)

// fakeUI records calls made by the app.
type fakeUI struct {
	initErr error
	today   []time.Time
	shown   int
	hidden  int
	steps   []int
}

func (f *fakeUI) Init() error { return f.initErr }

func (f *fakeUI) Show() { f.shown++ }

func (f *fakeUI) Hide() { f.hidden++ }

func (f *fakeUI) Toggle() {}

func (f *fakeUI) Step(n int) { f.steps = append(f.steps, n) }

func (f *fakeUI) SetToday(today time.Time) { f.today = append(f.today, today) }

func (f *fakeUI) OnClose(fn func()) {}

func TestInitialMonth(t *testing.T) {
	now := time.Date(2026, time.October, 18, 10, 0, 0, 0, time.Local)

	got, err := initialMonth("", now)
	if err != nil {
		t.Fatalf("initialMonth: %v", err)
	}
	if want := (calendar.Month{Year: 2026, Month: time.October}); got != want {
		t.Errorf("initialMonth(\"\") = %v, want %v", got, want)
	}

	got, err = initialMonth("1999-12", now)
	if err != nil {
		t.Fatalf("initialMonth: %v", err)
	}
	if want := (calendar.Month{Year: 1999, Month: time.December}); got != want {
		t.Errorf("initialMonth(1999-12) = %v, want %v", got, want)
	}

	if _, err := initialMonth("december", now); err == nil {
		t.Error("expected error for malformed month")
	}
}

func TestCheckToday(t *testing.T) {
	clock := time.Date(2026, time.October, 18, 23, 58, 0, 0, time.Local)
	fake := &fakeUI{}
	a := &App{
		cfg:   config.Default(),
		now:   func() time.Time { return clock },
		popup: fake,
		today: clock,
	}

	clock = clock.Add(time.Minute)
	if a.checkToday() {
		t.Error("checkToday reported a change within the same day")
	}
	if len(fake.today) != 0 {
		t.Errorf("SetToday called %d times, want 0", len(fake.today))
	}

	clock = clock.Add(2 * time.Minute)
	if !a.checkToday() {
		t.Fatal("checkToday missed the day change")
	}
	if len(fake.today) != 1 || fake.today[0].Day() != 19 {
		t.Errorf("SetToday calls = %v, want one call for the 19th", fake.today)
	}
	if a.today.Day() != 19 {
		t.Errorf("a.today = %v, want the 19th", a.today)
	}
}

func TestOnCloseQuitsWithoutTray(t *testing.T) {
	fake := &fakeUI{}
	quit := 0
	a := &App{
		cfg:   config.Default(),
		popup: fake,
		quit:  func() { quit++ },
	}

	a.onClose()
	if quit != 1 {
		t.Errorf("quit called %d times, want 1", quit)
	}
	if fake.hidden != 0 {
		t.Errorf("Hide called %d times, want 0", fake.hidden)
	}
}

func TestOnCloseHidesWithTray(t *testing.T) {
	fake := &fakeUI{}
	quit := 0
	a := &App{
		cfg:   config.Default(),
		popup: fake,
		tray:  &tray.Tray{},
		quit:  func() { quit++ },
	}

	a.onClose()
	if fake.hidden != 1 {
		t.Errorf("Hide called %d times, want 1", fake.hidden)
	}
	if quit != 0 {
		t.Errorf("quit called %d times, want 0", quit)
	}
}

func TestActivateTwiceReusesPopup(t *testing.T) {
	fake := &fakeUI{}
	built := 0
	a := &App{
		cfg:   config.Default(),
		month: calendar.Month{Year: 2026, Month: time.October},
		now:   time.Now,
		newPopup: func(ui.Config) ui.UI {
			built++
			return fake
		},
	}

	for i := 0; i < 2; i++ {
		if err := a.activate(); err != nil {
			t.Fatalf("activate #%d: %v", i+1, err)
		}
	}
	if built != 1 {
		t.Errorf("popup built %d times, want 1", built)
	}
	if fake.shown != 2 {
		t.Errorf("Show called %d times, want 2", fake.shown)
	}
}

func TestActivateInitError(t *testing.T) {
	initErr := errors.New("no display")
	a := &App{
		cfg: config.Default(),
		now: time.Now,
		newPopup: func(ui.Config) ui.UI {
			return &fakeUI{initErr: initErr}
		},
	}

	err := a.activate()
	if !errors.Is(err, initErr) {
		t.Fatalf("activate = %v, want %v", err, initErr)
	}
	if a.popup != nil {
		t.Error("popup kept after a failed Init")
	}

	a.activateErr = err
	if err := a.exitError(0); !errors.Is(err, initErr) {
		t.Errorf("exitError(0) = %v, want it to wrap %v", err, initErr)
	}
}

func TestExitError(t *testing.T) {
	a := &App{}
	if err := a.exitError(0); err != nil {
		t.Errorf("exitError(0) = %v, want nil", err)
	}
	if err := a.exitError(2); err == nil {
		t.Error("exitError(2) = nil, want an error")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local)
	if !sameDay(a, a.Add(23*time.Hour)) {
		t.Error("sameDay false within the same date")
	}
	if sameDay(a, a.AddDate(1, 0, 0)) {
		t.Error("sameDay true across years")
	}
}
