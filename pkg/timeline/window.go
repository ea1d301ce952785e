// Package timeline maps calendar dates onto a fixed-width scrolling grid
// and drives the pointer-drag interaction that edits schedules on it.
package timeline

import "tableflip.dev/gantt/pkg/schedule"

// The visible window is one pivot day plus padding days either side for
// context and margin days either side as scroll buffer.
const (
	DatePadding = 7
	DateMargin  = 7

	// Size is the number of day columns on the grid.
	Size = 1 + 2*DatePadding + 2*DateMargin
)

// Window is the contiguous range of calendar days currently on the grid,
// inclusive on both ends.
type Window struct {
	First schedule.Date
	Last  schedule.Date
}

// NewWindow derives the window from a pivot date and a (possibly negative)
// scroll offset in days.
func NewWindow(pivot schedule.Date, dateOffset int) Window {
	anchor := pivot.AddDays(dateOffset)
	return Window{
		First: anchor.AddDays(-(DatePadding + DateMargin)),
		Last:  anchor.AddDays(DatePadding + DateMargin),
	}
}

// Day is one header cell of the grid.
type Day struct {
	Date      schedule.Date
	Key       string // ISO date, unique per column
	Label     string // day-of-month
	IsWeekend bool
	IsHoliday bool // holiday calendar intentionally unimplemented
}

// Days returns the window's Size consecutive days, first to last.
func (w Window) Days() []Day {
	days := make([]Day, 0, Size)
	for i := 0; i < Size; i++ {
		d := w.First.AddDays(i)
		days = append(days, Day{
			Date:      d,
			Key:       d.String(),
			Label:     d.Label(),
			IsWeekend: d.IsWeekend(),
			IsHoliday: false,
		})
	}
	return days
}

// Contains reports whether the date falls inside the window.
func (w Window) Contains(d schedule.Date) bool {
	return !d.Before(w.First) && !d.After(w.Last)
}
