// Package schedule holds the calendar logic behind the weekly schedule view:
// week-window arithmetic, the fetch cycle that builds a consistent snapshot of
// one week, and the binder that resolves assignments onto day columns.
package schedule

import (
	"github.com/shiftdeck/shiftdeck/pkg/core/model"
)

// WeekWindow is a Monday-to-Sunday date range. End is always Start+6 days.
type WeekWindow struct {
	Start model.Date
	End   model.Date
}

// StartOfWeek returns the Monday on or before d. Calling it on its own output
// returns the same date.
func StartOfWeek(d model.Date) model.Date {
	// Weekday() has Sunday = 0; shift so Monday = 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// EndOfWeek returns the Sunday of the week starting at weekStart.
func EndOfWeek(weekStart model.Date) model.Date {
	return weekStart.AddDays(6)
}

// PreviousWeek returns the Monday one week before weekStart.
func PreviousWeek(weekStart model.Date) model.Date {
	return weekStart.AddDays(-7)
}

// NextWeek returns the Monday one week after weekStart.
func NextWeek(weekStart model.Date) model.Date {
	return weekStart.AddDays(7)
}

// WindowFor returns the week window containing d.
func WindowFor(d model.Date) WeekWindow {
	start := StartOfWeek(d)
	return WeekWindow{Start: start, End: EndOfWeek(start)}
}

// Previous returns the window one week before w.
func (w WeekWindow) Previous() WeekWindow {
	return WindowFor(PreviousWeek(w.Start))
}

// Next returns the window one week after w.
func (w WeekWindow) Next() WeekWindow {
	return WindowFor(NextWeek(w.Start))
}

// Contains reports whether d falls inside the window, inclusive on both ends.
func (w WeekWindow) Contains(d model.Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Days returns the 7 calendar days of the week starting at weekStart, in
// order: [weekStart .. weekStart+6].
func Days(weekStart model.Date) []model.Date {
	days := make([]model.Date, 7)
	for i := range days {
		days[i] = weekStart.AddDays(i)
	}
	return days
}
