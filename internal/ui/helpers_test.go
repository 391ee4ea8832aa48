package ui

import (
	"time"

	"github.com/cpuguy83/monthpop/internal/calendar"
)

var refToday = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.Local)

func calendarMonth(year int, month time.Month) calendar.Month {
	return calendar.Month{Year: year, Month: month}
}
