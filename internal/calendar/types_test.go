package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestNewEventDraft(t *testing.T) {
	start := at(2024, time.January, 1, 9, 0)
	end := at(2024, time.January, 1, 10, 0)

	tests := []struct {
		name     string
		title    string
		category Category
		start    time.Time
		end      time.Time
		wantErr  error
	}{
		{name: "valid", title: "Standup", category: CategoryWork, start: start, end: end},
		{name: "empty title", title: "", category: CategoryWork, start: start, end: end, wantErr: ErrEmptyTitle},
		{name: "unknown category", title: "Standup", category: Category("gaming"), start: start, end: end, wantErr: ErrInvalidCategory},
		{name: "end equals start", title: "Standup", category: CategoryWork, start: start, end: start, wantErr: ErrEndBeforeStart},
		{name: "end before start", title: "Standup", category: CategoryWork, start: end, end: start, wantErr: ErrEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := NewEventDraft(tt.title, tt.category, tt.start, tt.end)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewEventDraft() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewEventDraft() unexpected error: %v", err)
			}
			if draft.Title != tt.title || draft.Category != tt.category {
				t.Errorf("draft = %+v", draft)
			}
		})
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	for _, c := range []Category{"", "gaming", "Work", "WORK"} {
		if c.Valid() {
			t.Errorf("%q should be invalid", c)
		}
	}
}

func TestCategoryColor(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryExercise, "#22C55E"},
		{CategoryEating, "#EAB308"},
		{CategoryWork, "#3B82F6"},
		{CategoryRelax, "#A855F7"},
		{CategoryFamily, "#EC4899"},
		{CategorySocial, "#F97316"},
		{CategoryOther, "#6B7280"},
		{Category("unknown"), "#6B7280"}, // falls back to other
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := tt.category.Color(); got != tt.want {
				t.Errorf("Color() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventDisplayColor(t *testing.T) {
	e := Event{Category: CategoryWork}
	if got := e.DisplayColor(); got != "#3B82F6" {
		t.Errorf("DisplayColor() = %q, want category color", got)
	}

	e.Color = "#123456"
	if got := e.DisplayColor(); got != "#123456" {
		t.Errorf("DisplayColor() = %q, explicit override must win", got)
	}
}
