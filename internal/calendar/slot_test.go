package calendar

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestCellStart(t *testing.T) {
	day := date(2024, time.January, 1)

	tests := []struct {
		name     string
		hour     int
		fraction float64
		want     time.Time
		wantErr  error
	}{
		{name: "top of hour", hour: 9, fraction: 0, want: at(2024, time.January, 1, 9, 0)},
		{name: "quarter past", hour: 14, fraction: 0.25, want: at(2024, time.January, 1, 14, 15)},
		{name: "fraction floors not rounds", hour: 10, fraction: 0.99, want: at(2024, time.January, 1, 10, 59)},
		{name: "just below half", hour: 8, fraction: 0.49, want: at(2024, time.January, 1, 8, 29)},
		{name: "midnight slot", hour: 0, fraction: 0, want: at(2024, time.January, 1, 0, 0)},
		{name: "last slot", hour: 23, fraction: 0, want: at(2024, time.January, 1, 23, 0)},
		{name: "hour too high", hour: 24, fraction: 0, wantErr: ErrHourOutOfRange},
		{name: "hour negative", hour: -1, fraction: 0, wantErr: ErrHourOutOfRange},
		{name: "fraction one", hour: 9, fraction: 1, wantErr: ErrFractionOutOfRange},
		{name: "fraction negative", hour: 9, fraction: -0.1, wantErr: ErrFractionOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CellStart(day, tt.hour, tt.fraction)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CellStart() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CellStart() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("CellStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellSpan(t *testing.T) {
	day := date(2024, time.March, 15)

	start, end, err := CellSpan(day, 10, 0.5)
	if err != nil {
		t.Fatalf("CellSpan() unexpected error: %v", err)
	}
	if wantStart := at(2024, time.March, 15, 10, 30); !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if got := end.Sub(start); got != DefaultEventDuration {
		t.Errorf("span duration = %v, want %v", got, DefaultEventDuration)
	}

	// A span starting at 23:xx runs into the next calendar day.
	start, end, err = CellSpan(day, 23, 0.5)
	if err != nil {
		t.Fatalf("CellSpan() unexpected error: %v", err)
	}
	if wantEnd := at(2024, time.March, 16, 0, 30); !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
	if start.Day() == end.Day() {
		t.Error("expected span to cross midnight")
	}
}

func TestEventGeometry(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		wantTop    float64
		wantHeight float64
	}{
		{
			name:  "full hour at top",
			start: at(2024, time.January, 1, 9, 0), end: at(2024, time.January, 1, 10, 0),
			wantTop: 0, wantHeight: 100,
		},
		{
			name:  "half hour at quarter past",
			start: at(2024, time.January, 1, 9, 15), end: at(2024, time.January, 1, 9, 45),
			wantTop: 25, wantHeight: 50,
		},
		{
			name:  "two hour block overflows its row",
			start: at(2024, time.January, 1, 9, 30), end: at(2024, time.January, 1, 11, 30),
			wantTop: 50, wantHeight: 200,
		},
		{
			name:  "tiny event gets the minimum height",
			start: at(2024, time.January, 1, 9, 0), end: at(2024, time.January, 1, 9, 2),
			wantTop: 0, wantHeight: MinEventHeightPercent,
		},
		{
			name:  "cross midnight clamps to end of day",
			start: at(2024, time.January, 1, 23, 0), end: at(2024, time.January, 2, 1, 0),
			wantTop: 0, wantHeight: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, height := EventGeometry(tt.start, tt.end)
			if top != tt.wantTop {
				t.Errorf("top = %v, want %v", top, tt.wantTop)
			}
			if height != tt.wantHeight {
				t.Errorf("height = %v, want %v", height, tt.wantHeight)
			}
		})
	}
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "wednesday", in: at(2024, time.January, 3, 15, 30), want: date(2023, time.December, 31)},
		{name: "sunday is its own week start", in: date(2024, time.January, 7), want: date(2024, time.January, 7)},
		{name: "saturday", in: date(2024, time.January, 6), want: date(2023, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekOf(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("WeekOf(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Weekday() != time.Sunday {
				t.Errorf("week start weekday = %v, want Sunday", got.Weekday())
			}
		})
	}
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(date(2024, time.January, 3))

	if len(days) != DaysPerWeek {
		t.Fatalf("got %d days, want %d", len(days), DaysPerWeek)
	}
	if days[0].Weekday() != time.Sunday {
		t.Errorf("first day = %v, want Sunday", days[0].Weekday())
	}
	for i := 1; i < len(days); i++ {
		if got := days[i].Sub(days[i-1]); got != 24*time.Hour {
			t.Errorf("gap between day %d and %d = %v, want 24h", i-1, i, got)
		}
	}
}

func TestEventInCell(t *testing.T) {
	day := date(2024, time.January, 1)
	otherDay := date(2024, time.January, 2)

	tests := []struct {
		name  string
		event Event
		day   time.Time
		hour  int
		want  bool
	}{
		{
			name:  "start hour matches",
			event: Event{StartTime: at(2024, time.January, 1, 9, 0), EndTime: at(2024, time.January, 1, 10, 0)},
			day:   day, hour: 9, want: true,
		},
		{
			name:  "end hour is exclusive",
			event: Event{StartTime: at(2024, time.January, 1, 9, 0), EndTime: at(2024, time.January, 1, 10, 0)},
			day:   day, hour: 10, want: false,
		},
		{
			name:  "middle row of a long event",
			event: Event{StartTime: at(2024, time.January, 1, 9, 0), EndTime: at(2024, time.January, 1, 12, 0)},
			day:   day, hour: 10, want: true,
		},
		{
			name:  "wrong day",
			event: Event{StartTime: at(2024, time.January, 1, 9, 0), EndTime: at(2024, time.January, 1, 10, 0)},
			day:   otherDay, hour: 9, want: false,
		},
		{
			name:  "event inside a single hour matches no cell",
			event: Event{StartTime: at(2024, time.January, 1, 10, 15), EndTime: at(2024, time.January, 1, 10, 45)},
			day:   day, hour: 10, want: false,
		},
		{
			name:  "cross midnight only on start day",
			event: Event{StartTime: at(2024, time.January, 1, 23, 0), EndTime: at(2024, time.January, 2, 1, 0)},
			day:   otherDay, hour: 0, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.InCell(tt.day, tt.hour); got != tt.want {
				t.Errorf("InCell(%v, %d) = %v, want %v", tt.day, tt.hour, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantHour int
		wantMin  int
		wantErr  bool
	}{
		{name: "morning", in: "09:30", wantHour: 9, wantMin: 30},
		{name: "midnight", in: "00:00", wantHour: 0, wantMin: 0},
		{name: "last minute", in: "23:59", wantHour: 23, wantMin: 59},
		{name: "missing leading zero", in: "9:30", wantErr: true},
		{name: "no separator", in: "0930", wantErr: true},
		{name: "out of range hour", in: "25:00", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, err := ParseClock(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimeFormat) {
					t.Fatalf("ParseClock(%q) error = %v, want ErrInvalidTimeFormat", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.in, err)
			}
			if h != tt.wantHour || m != tt.wantMin {
				t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tt.in, h, m, tt.wantHour, tt.wantMin)
			}
		})
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{9, 0, "09:00"},
		{14, 15, "14:15"},
		{0, 0, "00:00"},
		{23, 59, "23:59"},
		{24, 0, "23:59"},  // clamped to end of day
		{10, 75, "11:15"}, // minute overflow carries into the hour
		{-1, 0, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Clock(tt.hour, tt.minute); got != tt.want {
				t.Errorf("Clock(%d, %d) = %q, want %q", tt.hour, tt.minute, got, tt.want)
			}
		})
	}
}
