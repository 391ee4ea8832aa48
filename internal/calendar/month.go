// Package calendar provides the month model and grid layout for the popup.
package calendar

import (
	"fmt"
	"time"
)

// Month is the year and month currently shown in the grid.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Normalize folds an out-of-range month into [1,12], carrying into the year.
func (m Month) Normalize() Month {
	idx := int(m.Month) - 1
	year := m.Year + idx/12
	idx %= 12
	if idx < 0 {
		idx += 12
		year--
	}
	return Month{Year: year, Month: time.Month(idx + 1)}
}

// Next returns the following month.
func (m Month) Next() Month {
	return m.add(1)
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	return m.add(-1)
}

func (m Month) add(n int) Month {
	return Month{Year: m.Year, Month: m.Month + time.Month(n)}.Normalize()
}

// First returns midnight on the first day of the month in loc.
func (m Month) First(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	switch m.Month {
	case time.February:
		if IsLeap(m.Year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FirstWeekdayOffset returns the grid column of day 1, with Sunday as column 0.
func (m Month) FirstWeekdayOffset() int {
	return int(m.First(time.UTC).Weekday()) % 7
}

// Contains reports whether t falls in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// ParseMonth parses a month in YYYY-MM form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
