package calendar

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Grid constants.
const (
	// HoursPerDay is the number of hour rows in the grid. All 24 are
	// always rendered, empty hours are never collapsed.
	HoursPerDay = 24
	// DaysPerWeek is the number of day columns.
	DaysPerWeek = 7
	// DefaultEventDuration is the span of a freshly placed event.
	DefaultEventDuration = time.Hour
	// MinEventHeightPercent keeps very short events visible and
	// clickable in an hour row.
	MinEventHeightPercent = 5.0
)

// Slot addressing errors. These indicate caller bugs, not runtime
// conditions to recover from.
var (
	ErrHourOutOfRange     = errors.New("hour must be in [0,23]")
	ErrFractionOutOfRange = errors.New("fraction must be in [0,1)")
)

// CellStart converts a grid cell plus a fractional offset within the
// cell into a wall-clock instant. The fraction is the vertical drop
// position inside the hour row; the minute is floor(fraction*60).
func CellStart(day time.Time, hour int, fraction float64) (time.Time, error) {
	if hour < 0 || hour >= HoursPerDay {
		return time.Time{}, fmt.Errorf("%w: %d", ErrHourOutOfRange, hour)
	}
	if fraction < 0 || fraction >= 1 {
		return time.Time{}, fmt.Errorf("%w: %v", ErrFractionOutOfRange, fraction)
	}
	minute := int(math.Floor(fraction * 60))
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

// CellSpan is CellStart plus the default event duration. It is the
// timing of an event created by clicking or dropping on an empty slot.
func CellSpan(day time.Time, hour int, fraction float64) (start, end time.Time, err error) {
	start, err = CellStart(day, hour, fraction)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(DefaultEventDuration), nil
}

// EventGeometry converts an event span back into grid geometry: the
// top offset and height of the block, both as percentages of one hour
// row. Height may exceed 100 for multi-hour events; the renderer lets
// the block overflow into the rows below. Spans reaching past the end
// of the start day are clamped to midnight, matching the grid's
// start-day-only rendering of cross-midnight events.
func EventGeometry(start, end time.Time) (topPercent, heightPercent float64) {
	topPercent = float64(start.Minute()) / 60 * 100

	dayEnd := TruncateToDay(start).AddDate(0, 0, 1)
	if end.After(dayEnd) {
		end = dayEnd
	}
	duration := end.Sub(start).Minutes()
	heightPercent = duration / 60 * 100
	if heightPercent < MinEventHeightPercent {
		heightPercent = MinEventHeightPercent
	}
	return topPercent, heightPercent
}

// WeekOf returns the Sunday starting the week that contains t.
func WeekOf(t time.Time) time.Time {
	t = TruncateToDay(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// WeekDays enumerates the seven consecutive days of the week
// containing t, starting on Sunday.
func WeekDays(t time.Time) [DaysPerWeek]time.Time {
	var days [DaysPerWeek]time.Time
	sunday := WeekOf(t)
	for i := range days {
		days[i] = sunday.AddDate(0, 0, i)
	}
	return days
}

// TruncateToDay returns t with the time component set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay returns true if a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// InCell reports whether the event renders in the cell (day, hour).
// An event belongs to a cell iff it starts on that day and the hour
// row intersects [hour(start), hour(end)). Multi-hour events are
// members of every intersected row; the renderer merges them into one
// block via EventGeometry. An event ending on a later day only
// appears under its start day's rows.
func (e Event) InCell(day time.Time, hour int) bool {
	return SameDay(e.StartTime, day) &&
		e.StartTime.Hour() <= hour && hour < e.EndTime.Hour()
}

// ParseClock parses a wall-clock "HH:MM" string.
func ParseClock(s string) (hour, minute int, err error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, ErrInvalidTimeFormat
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, ErrInvalidTimeFormat
	}
	return t.Hour(), t.Minute(), nil
}

// Clock formats an hour and minute as "HH:MM". Values outside a
// single day are clamped.
func Clock(hour, minute int) string {
	total := hour*60 + minute
	if total < 0 {
		total = 0
	}
	if total >= HoursPerDay*60 {
		total = HoursPerDay*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// At combines a calendar day with a wall-clock "HH:MM" string.
func At(day time.Time, clock string) (time.Time, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}
