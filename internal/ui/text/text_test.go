package text

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cpuguy83/monthpop/internal/calendar"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func plainRenderer() *Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return newRenderer(r)
}

func TestRenderLayout(t *testing.T) {
	out := plainRenderer().Render(calendar.Month{Year: 2024, Month: time.January}, time.Time{})
	lines := strings.Split(out, "\n")

	// header + weekdays + 5 week rows
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	if got := strings.TrimSpace(lines[0]); got != "January 2024" {
		t.Errorf("header = %q, want %q", got, "January 2024")
	}
	if got, want := lines[1], "  S  M  T  W  T  F  S"; got != want {
		t.Errorf("weekdays = %q, want %q", got, want)
	}
	if got, want := lines[2], "     1  2  3  4  5  6"; got != want {
		t.Errorf("first week = %q, want %q", got, want)
	}
	if got, want := lines[6], " 28 29 30 31         "; got != want {
		t.Errorf("last week = %q, want %q", got, want)
	}
}

func TestRenderHighlightsToday(t *testing.T) {
	buf := &bytes.Buffer{}
	lr := lipgloss.NewRenderer(buf)
	lr.SetColorProfile(termenv.TrueColor)
	r := newRenderer(lr)

	today := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.Local)
	highlighted := r.today.Render("18")

	out := r.Render(calendar.Month{Year: 2026, Month: time.October}, today)
	if n := strings.Count(out, highlighted); n != 1 {
		t.Errorf("today highlighted %d times, want 1", n)
	}

	out = r.Render(calendar.Month{Year: 2026, Month: time.November}, today)
	if strings.Contains(out, highlighted) {
		t.Error("today highlighted in a month that does not contain it")
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, calendar.Month{Year: 2024, Month: time.February}, time.Time{}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if !strings.Contains(buf.String(), "February 2024") {
		t.Errorf("output missing header:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "29") {
		t.Errorf("output missing leap day:\n%s", buf.String())
	}
}
