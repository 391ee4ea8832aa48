package ui

import (
	"fmt"
	"strings"

	"github.com/cpuguy83/monthpop/internal/config"
)

// Style holds the visual parameters of the popup.
type Style struct {
	GradientStart string
	GradientEnd   string
	Radius        int
	Font          string
	CellSize      int
}

// StyleFromConfig builds a Style from UI configuration.
func StyleFromConfig(cfg config.UIConfig) Style {
	return Style{
		GradientStart: cfg.GradientStart,
		GradientEnd:   cfg.GradientEnd,
		Radius:        cfg.Radius,
		Font:          cfg.Font,
		CellSize:      30,
	}
}

// CSS renders the stylesheet for the popup widgets.
func (s Style) CSS() string {
	var b strings.Builder

	cell := s.CellSize
	if cell <= 0 {
		cell = 30
	}

	// The toplevel stays transparent so the rounded container shows the desktop behind it.
	b.WriteString(`
		window.monthpop,
		window.monthpop > windowhandle {
			background: transparent;
			box-shadow: none;
		}
`)

	fmt.Fprintf(&b, `
		.calendar-container {
			background-image: linear-gradient(to bottom right, %s, %s);
			border: 1px solid #444466;
			border-radius: %dpx;
			padding: 15px 20px 20px 20px;
		}
`, s.GradientStart, s.GradientEnd, s.Radius)

	if s.Font != "" {
		fmt.Fprintf(&b, `
		.calendar-container label,
		.calendar-container button {
			font-family: %s;
		}
`, s.Font)
	}

	fmt.Fprintf(&b, `
		.calendar-container label {
			color: #E0E0E0;
		}

		.month-label {
			font-size: 16pt;
			font-weight: bold;
		}

		.year-label {
			font-size: 14pt;
			font-weight: bold;
		}

		.nav-button,
		.close-button {
			color: #A0B0C0;
			background: transparent;
			box-shadow: none;
			min-width: %[1]dpx;
			min-height: %[1]dpx;
			padding: 0;
			font-size: 14px;
		}

		.nav-button {
			border: 1px solid transparent;
			border-radius: %[2]dpx;
		}

		.nav-button:hover {
			color: #6D8CB0;
			border-color: #6D8CB0;
			background: rgba(109, 140, 176, 0.1);
		}

		.close-button {
			color: #AAAAAA;
			border: none;
			font-size: 16px;
		}

		.close-button:hover {
			color: #FFFFFF;
		}

		.weekday-label,
		.day-label {
			min-width: %[1]dpx;
			font-size: 10pt;
		}

		.day-label {
			min-height: %[1]dpx;
		}

		.day-label.current-day {
			background-image: radial-gradient(circle farthest-side at 40%% 40%%, #3A5F8A, #5078AA 70%%, #6D8CB0);
			border-radius: %[2]dpx;
			color: white;
			font-weight: bold;
		}
`, cell, cell/2)

	return b.String()
}
