// Package text renders the month grid for terminals.
package text

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cpuguy83/monthpop/internal/calendar"

	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 3

// Renderer draws a month as a 7-column grid with today highlighted.
type Renderer struct {
	header  lipgloss.Style
	weekday lipgloss.Style
	day     lipgloss.Style
	today   lipgloss.Style
}

// NewRenderer creates a Renderer whose color profile is detected from w.
func NewRenderer(w io.Writer) *Renderer {
	return newRenderer(lipgloss.NewRenderer(w))
}

func newRenderer(r *lipgloss.Renderer) *Renderer {
	width := cellWidth * calendar.Columns
	cell := r.NewStyle().Width(cellWidth).Align(lipgloss.Right)

	return &Renderer{
		header: r.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1e3264", Dark: "#E0E0E0"}),
		weekday: cell.Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "#A0B0C0"}),
		day:     cell,
		today: cell.
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5078AA")),
	}
}

// Render returns the grid for m. The cell matching today is highlighted.
func (r *Renderer) Render(m calendar.Month, today time.Time) string {
	lines := []string{r.header.Render(m.String())}

	initials := make([]string, 0, calendar.Columns)
	for _, initial := range calendar.WeekdayInitials {
		initials = append(initials, r.weekday.Render(initial))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, initials...))

	rows := make([][]string, calendar.Rows(m))
	for i := range rows {
		rows[i] = make([]string, calendar.Columns)
		for col := range rows[i] {
			rows[i][col] = r.day.Render("")
		}
	}
	for _, cell := range calendar.Grid(m, today) {
		style := r.day
		if cell.Today {
			style = r.today
		}
		rows[cell.Row][cell.Col] = style.Render(strconv.Itoa(cell.Day))
	}
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return strings.Join(lines, "\n")
}

// Print writes the grid for m to w, detecting colors from w.
func Print(w io.Writer, m calendar.Month, today time.Time) error {
	if _, err := fmt.Fprintln(w, NewRenderer(w).Render(m, today)); err != nil {
		return fmt.Errorf("print month: %w", err)
	}
	return nil
}
