package ui

import (
	"fmt"
	"strings"
	"time"

	"weekplan/internal/calendar"
)

// PrintEventRow prints a single event row with consistent formatting.
// The marker dot carries the event's display color: the explicit
// override when set, otherwise the category color.
func PrintEventRow(e calendar.Event, maxTitleWidth int) {
	span := fmt.Sprintf("%s-%s",
		e.StartTime.Format("15:04"),
		e.EndTime.Format("15:04"),
	)

	title := e.Title
	if maxTitleWidth > 0 && len(title) > maxTitleWidth {
		title = title[:maxTitleWidth-1] + "…"
	}

	dot := formatCategory(e.Category, "●")
	extra := ""
	if e.Color != "" {
		extra = formatMuted(" " + e.Color)
	}
	if e.Location != "" {
		extra += formatMuted(" @" + e.Location)
	}

	fmt.Printf("  %s %s  %-*s %s%s\n",
		dot,
		span,
		maxTitleWidth, title,
		formatMuted(fmt.Sprintf("%dm", int(e.Duration().Minutes()))),
		extra,
	)
}

// maxTitleWidth sizes the title column from the terminal width.
// Overhead: "  ● HH:MM-HH:MM  " plus the duration suffix.
func maxTitleWidth(defaultWidth int) int {
	available := termWidth() - 26
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// printDayHeader prints a day separator like the week table uses.
func printDayHeader(day time.Time) {
	fmt.Printf("  %s\n", formatHeader(day.Format("Mon Jan 2")))
}

// printRule prints a horizontal separator.
func printRule() {
	fmt.Println(strings.Repeat("─", 74))
}

// parseDay parses a --date flag, defaulting to today.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return calendar.TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format, got %q", s)
	}
	return t, nil
}
