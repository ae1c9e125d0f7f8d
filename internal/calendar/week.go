package calendar

import (
	"slices"
	"time"
)

// Day holds the events starting on a single calendar day.
type Day struct {
	Date   time.Time
	events []Event // sorted by StartTime
}

// NewDay creates an empty Day for the given date.
func NewDay(date time.Time) *Day {
	return &Day{Date: TruncateToDay(date)}
}

// Add inserts an event, keeping the slice sorted by start time.
// Overlapping events are allowed; the grid renders them stacked.
func (d *Day) Add(e Event) {
	d.events = append(d.events, e)
	slices.SortStableFunc(d.events, func(a, b Event) int {
		return a.StartTime.Compare(b.StartTime)
	})
}

// Events returns a copy of the day's events.
func (d *Day) Events() []Event {
	result := make([]Event, len(d.events))
	copy(result, d.events)
	return result
}

// EventsAtHour returns the events rendering in this day's given hour row.
func (d *Day) EventsAtHour(hour int) []Event {
	return EventsInCell(d.events, d.Date, hour)
}

// Len returns the number of events on the day.
func (d *Day) Len() int {
	return len(d.events)
}

// Week holds seven days starting from Sunday.
type Week struct {
	StartDate time.Time // Sunday of the week
	Days      [DaysPerWeek]*Day
}

// NewWeek creates a Week covering the week that contains date.
func NewWeek(date time.Time) *Week {
	sunday := WeekOf(date)
	w := &Week{StartDate: sunday}
	for i := range w.Days {
		w.Days[i] = NewDay(sunday.AddDate(0, 0, i))
	}
	return w
}

// NewWeekFromEvents creates a Week and distributes events to their
// start days. Events outside the week are ignored.
func NewWeekFromEvents(date time.Time, events []Event) *Week {
	w := NewWeek(date)
	for _, e := range events {
		if day := w.DayByDate(e.StartTime); day != nil {
			day.Add(e)
		}
	}
	return w
}

// DayByDate returns the Day for the given date, nil if not in this week.
func (w *Week) DayByDate(date time.Time) *Day {
	truncated := TruncateToDay(date)
	for _, day := range w.Days {
		if day.Date.Equal(truncated) {
			return day
		}
	}
	return nil
}

// EndDate returns the Saturday of the week.
func (w *Week) EndDate() time.Time {
	return w.StartDate.AddDate(0, 0, DaysPerWeek-1)
}

// AllEvents returns all events across the week in day and start order.
func (w *Week) AllEvents() []Event {
	var result []Event
	for _, day := range w.Days {
		result = append(result, day.Events()...)
	}
	return result
}
