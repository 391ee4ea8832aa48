package calendar

import "time"

// Columns is the number of days in a grid row.
const Columns = 7

// WeekdayInitials labels the grid columns, Sunday first.
var WeekdayInitials = [Columns]string{"S", "M", "T", "W", "T", "F", "S"}

// Cell is a single day in the month grid.
type Cell struct {
	Row   int
	Col   int
	Day   int
	Today bool // matches the real-world current date
}

// Grid lays out the days of m in a 7-column grid starting on Sunday.
// Only the cell matching today's year, month and day is marked Today.
func Grid(m Month, today time.Time) []Cell {
	days := m.Days()
	offset := m.FirstWeekdayOffset()
	highlight := 0
	if m.Contains(today) {
		highlight = today.Day()
	}

	cells := make([]Cell, 0, days)
	for day := 1; day <= days; day++ {
		pos := offset + day - 1
		cells = append(cells, Cell{
			Row:   pos / Columns,
			Col:   pos % Columns,
			Day:   day,
			Today: day == highlight,
		})
	}
	return cells
}

// Rows returns how many grid rows m occupies.
func Rows(m Month) int {
	return (m.FirstWeekdayOffset() + m.Days() + Columns - 1) / Columns
}
